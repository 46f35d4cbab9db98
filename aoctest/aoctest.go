// Package aoctest checks puzzle solvers against the samples in their doc
// comments.
package aoctest

import (
	"fmt"
	"io/fs"
	"testing"

	"github.com/puzzlebox/aoc"
)

// CheckSamples runs every part of slvr on its sample, one subtest per part,
// and fails the subtest if the answer differs from the sample's want=
// value. Parts without a sample are skipped.
func CheckSamples(t *testing.T, year int, src fs.FS, slvr any) {
	t.Helper()
	cases, err := aoc.SampleCases(year, src, slvr)
	if err != nil {
		t.Fatalf("SampleCases: %v", err)
	}
	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			if !c.HasSample {
				t.Skip("no sample")
			}
			got, err := c.Run()
			if err != nil {
				t.Fatalf("%s on sample: %v", c.Name, err)
			}
			if g := fmt.Sprint(got); g != c.Want {
				t.Errorf("%s on sample = %v, want %v", c.Name, g, c.Want)
			}
		})
	}
}
