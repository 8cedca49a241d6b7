// Package tensor is a minimal numeric smoke test: two random grids, their
// element-wise sum, and a report of whether a GPU is visible to the host.
package tensor

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"os/exec"

	"gonum.org/v1/gonum/mat"
)

// ErrShapeMismatch is returned when grids of different shapes are combined.
var ErrShapeMismatch = errors.New("tensor: shape mismatch")

// RandomGrid returns a rows x cols matrix with values drawn uniformly from [0, 1).
func RandomGrid(rows, cols int, rng *rand.Rand) *mat.Dense {
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = rng.Float64()
	}
	return mat.NewDense(rows, cols, data)
}

// Add returns the element-wise sum of a and b.
func Add(a, b mat.Matrix) (*mat.Dense, error) {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ar != br || ac != bc {
		return nil, fmt.Errorf("%w: %dx%d vs %dx%d", ErrShapeMismatch, ar, ac, br, bc)
	}
	var sum mat.Dense
	sum.Add(a, b)
	return &sum, nil
}

// Format renders m with four decimal places, one row per line.
func Format(m mat.Matrix) string {
	return fmt.Sprintf("%.4f", mat.Formatted(m, mat.Squeeze()))
}

// Accelerator describes the GPU probe result.
type Accelerator struct {
	Available bool
	Source    string
}

// Probe locations; variables so tests can point them elsewhere.
var (
	deviceNode = "/dev/nvidia0"
	smiBinary  = "nvidia-smi"
)

// DetectAccelerator reports whether an NVIDIA device is visible. Arithmetic in
// this package always runs on the CPU regardless of the result.
func DetectAccelerator() Accelerator {
	if _, err := os.Stat(deviceNode); err == nil {
		return Accelerator{Available: true, Source: deviceNode}
	}
	if path, err := exec.LookPath(smiBinary); err == nil {
		return Accelerator{Available: true, Source: path}
	}
	return Accelerator{}
}

// Report is the outcome of one smoke run.
type Report struct {
	X, Y, Z     *mat.Dense
	Accelerator Accelerator
}

// Run builds two size x size grids from rng, adds them and probes for a GPU.
func Run(size int, rng *rand.Rand) (Report, error) {
	if size <= 0 {
		return Report{}, fmt.Errorf("tensor: size must be positive, got %d", size)
	}
	x := RandomGrid(size, size, rng)
	y := RandomGrid(size, size, rng)
	z, err := Add(x, y)
	if err != nil {
		return Report{}, err
	}
	return Report{X: x, Y: y, Z: z, Accelerator: DetectAccelerator()}, nil
}
