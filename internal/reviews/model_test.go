package reviews

import (
	"encoding/json"
	"testing"
)

func TestLineNumberJSON(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		want     LineNumber
		wantJSON string
	}{
		{name: "int", in: `12`, want: Line(12), wantJSON: `12`},
		{name: "whole float", in: `4.0`, want: Line(4), wantJSON: `4`},
		{name: "numeric string", in: `" 9 "`, want: Line(9), wantJSON: `9`},
		{name: "placeholder", in: `"-"`, want: UnknownLine(), wantJSON: `"-"`},
		{name: "words", in: `"N/A"`, want: UnknownLine(), wantJSON: `"-"`},
		{name: "null", in: `null`, want: UnknownLine(), wantJSON: `"-"`},
		{name: "fraction", in: `2.5`, want: UnknownLine(), wantJSON: `"-"`},
		{name: "too large", in: `99999999999999999999`, want: UnknownLine(), wantJSON: `"-"`},
		{name: "too small", in: `-99999999999999999999`, want: UnknownLine(), wantJSON: `"-"`},
		{name: "too large string", in: `"99999999999999999999"`, want: UnknownLine(), wantJSON: `"-"`},
		{name: "int64 boundary", in: `9223372036854775808`, want: UnknownLine(), wantJSON: `"-"`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			var got LineNumber
			if err := json.Unmarshal([]byte(tt.in), &got); err != nil {
				t.Fatalf("unmarshal %s: %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("got %#v, want %#v", got, tt.want)
			}
			out, err := json.Marshal(got)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			if string(out) != tt.wantJSON {
				t.Fatalf("marshal = %s, want %s", out, tt.wantJSON)
			}
		})
	}
}

func TestFindingJSONShape(t *testing.T) {
	out, err := json.Marshal(GeneralFinding("raw text"))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"issue_type":"general","description":"raw text","line_number":"-","suggested_fix":""}`
	if string(out) != want {
		t.Fatalf("got %s, want %s", out, want)
	}
}
