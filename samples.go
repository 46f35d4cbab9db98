package aoc

import (
	"io/fs"
	"reflect"
	"slices"

	"go.uber.org/zap"
	"golang.org/x/exp/maps"
)

// SampleCase is one part of a solver paired with the sample from its doc
// comment.
type SampleCase struct {
	Name      string
	Want      string
	HasSample bool

	run func() (any, error)
}

// Run solves the part on its sample input. It must not be called when
// HasSample is false.
func (c SampleCase) Run() (any, error) {
	return c.run()
}

// SampleCases returns a case for every part of slvr, ordered by day and
// then part.
func SampleCases(year int, src fs.FS, slvr any) ([]SampleCase, error) {
	samples, err := extractSamples(src)
	if err != nil {
		return nil, err
	}
	days, err := extractMethods(slvr)
	if err != nil {
		return nil, err
	}
	dayNums := maps.Keys(days)
	slices.Sort(dayNums)
	var cases []SampleCase
	for _, dn := range dayNums {
		d := days[dn]
		for _, ps := range d.parts {
			d, ps := d, ps
			s, ok := samples[ps.Name]
			cases = append(cases, SampleCase{
				Name:      ps.Name,
				Want:      s.want,
				HasSample: ok,
				run: func() (any, error) {
					p := &Puzzle{
						year:       year,
						day:        d,
						SampleMode: true,
						solver:     ps,
						samples:    samples,
						log:        zap.NewNop().Sugar(),
					}
					reflect.ValueOf(slvr).Elem().FieldByName("Puzzle").Set(reflect.ValueOf(p))
					return solve(ps)
				},
			})
		}
	}
	return cases, nil
}
