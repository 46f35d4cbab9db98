// Package aoc is a small harness for daily coding puzzles. A year's
// solutions are methods named D{day}p{part} on a struct embedding *Puzzle;
// Run finds them, checks each one against the worked example in its doc
// comment and then runs it on the real input.
package aoc

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"slices"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/exp/maps"
)

var (
	// ErrNoInput is returned when a day's input file does not exist.
	ErrNoInput = errors.New("no puzzle input")

	// ErrSampleMismatch is returned when a part's answer on its sample
	// differs from the want= value in its doc comment.
	ErrSampleMismatch = errors.New("sample answer mismatch")
)

type sample struct {
	input string
	want  string
}

var sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

func parseSample(comment string) (sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	if m := sampleRx.FindStringSubmatch(text); m != nil {
		s := sample{
			want:  m[1],
			input: m[2],
		}
		return s, true
	}
	var zero sample
	return zero, false
}

// extractSamples reads the doc comments of every non-test .go file at the
// top of src. A sample without input reuses the input of the previous
// sample in the same file, so part 2 can share part 1's example.
func extractSamples(src fs.FS) (map[string]sample, error) {
	names, err := fs.Glob(src, "*.go")
	if err != nil {
		return nil, err
	}
	fset := token.NewFileSet()
	samples := make(map[string]sample)
	for _, name := range names {
		if strings.HasSuffix(name, "_test.go") {
			continue
		}
		b, err := fs.ReadFile(src, name)
		if err != nil {
			return nil, err
		}
		f, err := parser.ParseFile(fset, name, b, parser.ParseComments)
		if err != nil {
			return nil, fmt.Errorf("parsing %s to extract samples: %w", name, err)
		}
		var lastInput string
		for _, d := range f.Decls {
			fd, ok := d.(*ast.FuncDecl)
			if !ok || fd.Doc == nil {
				continue
			}
			for _, c := range fd.Doc.List {
				s, ok := parseSample(c.Text)
				if ok {
					s.input = Or(s.input, lastInput)
					samples[fd.Name.Name] = s
					lastInput = s.input
					break
				}
			}
		}
	}
	return samples, nil
}

// Puzzle is embedded in a solver struct and gives each part access to its
// input.
type Puzzle struct {
	year       int
	day        day
	SampleMode bool

	solver    partSolver
	samples   map[string]sample
	inputPath string
	input     []byte
	log       *zap.SugaredLogger
}

// Input returns the input for the running part: its sample in sample mode,
// otherwise the contents of the day's input file. A missing file panics
// with an error wrapping ErrNoInput.
func (p *Puzzle) Input() []byte {
	if p.SampleMode {
		return []byte(p.Sample().input)
	}
	return MustGet(p.loadInput())
}

// Text is Input as a string.
func (p *Puzzle) Text() string {
	return string(p.Input())
}

func (p *Puzzle) loadInput() ([]byte, error) {
	if p.input != nil {
		return p.input, nil
	}
	b, err := readInput(p.inputPath)
	if err != nil {
		return nil, err
	}
	p.input = b
	return b, nil
}

func readInput(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNoInput, path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return b, nil
}

func (p *Puzzle) Debug(v ...any) {
	p.log.Debug(v...)
}

// Debugf logs only while running the sample, where the output is small
// enough to read.
func (p *Puzzle) Debugf(format string, args ...any) {
	if p.SampleMode {
		p.log.Debugf(format, args...)
	}
}

func (p *Puzzle) Sample() sample {
	sample, ok := p.samples[p.solver.Name]
	if !ok {
		panic(fmt.Sprintf("no sample found for %v", p.solver.Name))
	}
	return sample
}

func (p *Puzzle) hasSample() bool {
	_, ok := p.samples[p.solver.Name]
	return ok
}

type day struct {
	day   int
	parts []partSolver
}

type partSolver struct {
	fn   func() any
	Part string
	Name string
}

var methodRx = regexp.MustCompile(`^D(\d+)p(\d+.*)$`)

// extractMethods collects the methods of x named D{day}p{part}. They must
// have the signature func() any.
func extractMethods(x any) (map[int]day, error) {
	rv := reflect.ValueOf(x)
	if rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("solver: got %T; want pointer to struct", x)
	}
	v := rv.Elem()
	if f, ok := v.Type().FieldByName("Puzzle"); !ok || f.Type != reflect.TypeOf(&Puzzle{}) {
		return nil, fmt.Errorf("solver %T does not embed *aoc.Puzzle", x)
	}
	vt := v.Type()
	byDays := map[int][]partSolver{}
	for i := 0; i < vt.NumMethod(); i++ {
		mn := vt.Method(i).Name
		matches := methodRx.FindStringSubmatch(mn)
		if len(matches) != 3 {
			continue
		}
		m, ok := v.Method(i).Interface().(func() any)
		if !ok {
			return nil, fmt.Errorf("%s has signature %v; want func() any", mn, v.Method(i).Type())
		}
		d := Int(matches[1])
		byDays[d] = append(byDays[d], partSolver{
			fn:   m,
			Part: matches[2],
			Name: mn,
		})
	}
	days := make(map[int]day, len(byDays))
	for d, parts := range byDays {
		slices.SortFunc(parts, func(i, j partSolver) int {
			return strings.Compare(i.Part, j.Part)
		})
		days[d] = day{parts: parts, day: d}
	}
	return days, nil
}

type runner struct {
	year    int
	solver  any
	days    map[int]day
	samples map[string]sample
	opts    options
	out     io.Writer
	log     *zap.SugaredLogger
}

func (r *runner) inputPath(d int) string {
	if r.opts.InputFile != "" {
		return r.opts.InputFile
	}
	return filepath.Join(r.opts.InputDir, fmt.Sprint(r.year), fmt.Sprintf("%d.input", d))
}

func (r *runner) run() error {
	if r.opts.Day != -1 {
		day, ok := r.days[r.opts.Day]
		if !ok {
			return fmt.Errorf("no day %d", r.opts.Day)
		}
		return r.runDay(day)
	}

	dayNums := maps.Keys(r.days)
	slices.Sort(dayNums)
	for i, d := range dayNums {
		if i > 0 {
			fmt.Fprintln(r.out)
		}
		if err := r.runDay(r.days[d]); err != nil {
			return err
		}
	}
	return nil
}

func (r *runner) runDay(d day) error {
	p := &Puzzle{
		year:      r.year,
		day:       d,
		samples:   r.samples,
		inputPath: r.inputPath(d.day),
		log:       r.log.With("day", d.day),
	}
	fmt.Fprintln(r.out, "Running day", d.day)
	reflect.ValueOf(r.solver).Elem().FieldByName("Puzzle").Set(reflect.ValueOf(p))
	for _, ps := range d.parts {
		if r.opts.Part != "" && ps.Part != r.opts.Part {
			continue
		}
		p.solver = ps

		for _, sm := range []bool{true, false} {
			if !sm && r.opts.OnlySample {
				continue
			} else if sm && r.opts.SkipSample {
				continue
			}
			if sm && !p.hasSample() {
				p.log.Debugw("no sample", "part", ps.Part)
				continue
			}
			p.SampleMode = sm
			if !sm {
				// Prime the input so reading it isn't timed.
				if _, err := p.loadInput(); err != nil {
					return err
				}
			}
			t0 := time.Now()
			got, err := solve(ps)
			if err != nil {
				return fmt.Errorf("day %d part %s (sample=%v): %w", d.day, ps.Part, sm, err)
			}
			if sm {
				want := p.Sample().want
				if fmt.Sprint(got) != want {
					fmt.Fprintf(r.out, "part %s: %v ❌; want %v\n", ps.Part, got, want)
					return fmt.Errorf("day %d part %s: %w", d.day, ps.Part, ErrSampleMismatch)
				}
				fmt.Fprintf(r.out, "part %s sample: %v ✅ (%v) \n", ps.Part, got, time.Since(t0).Round(time.Microsecond))
			} else {
				fmt.Fprintf(r.out, "part %s: %v (took %v) \n", ps.Part, got, time.Since(t0).Round(time.Microsecond))
			}
		}
	}
	return nil
}

// solve runs one part, turning a panic from MustGet and friends into an
// error.
func solve(ps partSolver) (got any, err error) {
	defer func() {
		if v := recover(); v != nil {
			if e, ok := v.(error); ok {
				err = e
			} else {
				err = fmt.Errorf("%v", v)
			}
		}
	}()
	return ps.fn(), nil
}

// Run runs the solutions of slvr, a pointer to a struct embedding *Puzzle,
// for the given year. src holds the solution sources, from which the
// samples are read. It exits the process with status 1 on failure.
func Run(year int, src fs.FS, slvr any) {
	if err := NewCommand(year, src, slvr).Execute(); err != nil {
		os.Exit(1)
	}
}
