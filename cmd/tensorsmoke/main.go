package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"codereview-backend/internal/tensor"
)

func main() {
	size := flag.Int("size", 3, "Grid dimension")
	seed := flag.Uint64("seed", 0, "Random seed (0 uses the clock)")
	flag.Parse()

	s := *seed
	if s == 0 {
		s = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(s, s>>1))

	report, err := tensor.Run(*size, rng)
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Printf("x =\n%s\n\n", tensor.Format(report.X))
	fmt.Printf("y =\n%s\n\n", tensor.Format(report.Y))
	fmt.Printf("z = x + y =\n%s\n\n", tensor.Format(report.Z))
	if report.Accelerator.Available {
		fmt.Printf("GPU available: true (%s); computed on CPU\n", report.Accelerator.Source)
	} else {
		fmt.Println("GPU available: false; computed on CPU")
	}
}
