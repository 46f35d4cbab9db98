package aoc

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeInput writes the input for year 2020, day d under dir.
func writeInput(t *testing.T, dir string, d int, data string) {
	t.Helper()
	p := filepath.Join(dir, "2020", strconv.Itoa(d)+".input")
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0700))
	require.NoError(t, os.WriteFile(p, []byte(data), 0644))
}

func runCommand(t *testing.T, slvr any, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errb bytes.Buffer
	cmd := NewCommand(2020, testSource, slvr)
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errb)
	err = cmd.Execute()
	return out.String(), errb.String(), err
}

func TestRunAllDays(t *testing.T) {
	dir := t.TempDir()
	writeInput(t, dir, 1, "a a a a\nb\n")
	writeInput(t, dir, 2, "z")
	cfg := filepath.Join(dir, "aoc.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("input_dir: "+dir+"\n"), 0644))

	out, _, err := runCommand(t, &testSolver{}, "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "Running day 1\n")
	assert.Contains(t, out, "part 1 sample: 3 ✅")
	assert.Contains(t, out, "part 1: 5 (took")
	assert.Contains(t, out, "part 2 sample: 1 ✅")
	assert.Contains(t, out, "part 2: 4 (took")
	assert.Contains(t, out, "Running day 2\n")
	assert.Contains(t, out, "part 1: 122 (took")
	assert.Less(t, bytes.Index([]byte(out), []byte("Running day 1")), bytes.Index([]byte(out), []byte("Running day 2")))
}

func TestRunSingleDayWithInputFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "custom.txt")
	require.NoError(t, os.WriteFile(in, []byte("x y"), 0644))

	out, _, err := runCommand(t, &testSolver{}, "--config", filepath.Join(dir, "missing.yaml"), "--day", "1", "--part", "1", "--input", in)
	require.NoError(t, err)
	assert.Contains(t, out, "part 1: 2 (took")
	assert.NotContains(t, out, "part 2")
	assert.NotContains(t, out, "Running day 2")
}

func TestRunOnlySample(t *testing.T) {
	dir := t.TempDir()
	out, _, err := runCommand(t, &testSolver{}, "--config", filepath.Join(dir, "missing.yaml"), "--day", "1", "--sample")
	require.NoError(t, err)
	assert.Contains(t, out, "part 1 sample: 3 ✅")
	assert.Contains(t, out, "part 2 sample: 1 ✅")
	assert.NotContains(t, out, "took")
}

func TestRunMissingInput(t *testing.T) {
	dir := t.TempDir()
	_, stderr, err := runCommand(t, &testSolver{}, "--config", filepath.Join(dir, "missing.yaml"), "--day", "1", "--skip-sample", "--input", filepath.Join(dir, "nope.input"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoInput)
	assert.Contains(t, err.Error(), "nope.input")
	assert.Contains(t, stderr, "run failed")
}

type wrongSolver struct {
	*Puzzle
}

func (wrongSolver) D1p1() any { return 42 }

func TestRunSampleMismatch(t *testing.T) {
	dir := t.TempDir()
	out, _, err := runCommand(t, &wrongSolver{}, "--config", filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, ErrSampleMismatch)
	assert.Contains(t, out, "part 1: 42 ❌; want 3")
	assert.NotContains(t, out, "took")
}

type panicSolver struct {
	*Puzzle
}

func (s panicSolver) D1p1() any {
	MustDo(os.ErrInvalid)
	return nil
}

func TestRunPartPanics(t *testing.T) {
	dir := t.TempDir()
	_, _, err := runCommand(t, &panicSolver{}, "--config", filepath.Join(dir, "missing.yaml"), "--day", "1")
	require.ErrorIs(t, err, os.ErrInvalid)
	assert.Contains(t, err.Error(), "day 1 part 1")
}

func TestRunBadFlags(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "missing.yaml")
	tests := []struct {
		args []string
		want string // in stderr
	}{
		{[]string{"--config", cfg, "--input", "x"}, "--input requires --day"},
		{[]string{"--config", cfg, "--sample", "--skip-sample"}, "mutually exclusive"},
		{[]string{"--config", cfg, "--day", "9"}, "no day 9"},
		{[]string{"--config", cfg, "extra-arg"}, `unknown command "extra-arg"`},
		{[]string{"--config", cfg, "--dya", "4"}, "unknown flag: --dya"},
		{[]string{"--config", cfg, "--day", "four"}, "invalid argument"},
	}
	for _, tt := range tests {
		_, stderr, err := runCommand(t, &testSolver{}, tt.args...)
		assert.Error(t, err, "args %q", tt.args)
		assert.Contains(t, stderr, tt.want, "args %q", tt.args)
	}
}

func TestRunSampleFlagBeatsConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "aoc.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("skip_sample: true\n"), 0644))

	out, _, err := runCommand(t, &testSolver{}, "--config", cfg, "--day", "1", "--sample")
	require.NoError(t, err)
	assert.Contains(t, out, "part 1 sample: 3 ✅")
	assert.NotContains(t, out, "took")
}

func TestRunDebugLogging(t *testing.T) {
	dir := t.TempDir()
	_, stderr, err := runCommand(t, &testSolver{}, "--config", filepath.Join(dir, "missing.yaml"), "--day", "2", "--sample", "--debug")
	require.NoError(t, err)
	assert.Contains(t, stderr, "no sample")
}
