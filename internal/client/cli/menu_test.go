package cli

import (
	"bufio"
	"context"
	"errors"
	"strings"
	"testing"
)

type fakeExec struct {
	calls []string
	err   error

	// reader simulates a command that prompts for its own input on the
	// shared reader; lines it consumes land in inputs.
	reader *bufio.Reader
	inputs []string
}

func (f *fakeExec) record(name string) error {
	f.calls = append(f.calls, name)
	return f.err
}

func (f *fakeExec) ListAll(ctx context.Context) error { return f.record("list") }

func (f *fakeExec) GetByID(ctx context.Context) error {
	if f.reader != nil {
		line, _ := f.reader.ReadString('\n')
		f.inputs = append(f.inputs, strings.TrimSpace(line))
	}
	return f.record("get")
}

func (f *fakeExec) Create(ctx context.Context) error       { return f.record("create") }
func (f *fakeExec) ReplaceFull(ctx context.Context) error  { return f.record("replace") }
func (f *fakeExec) MergePartial(ctx context.Context) error { return f.record("merge") }
func (f *fakeExec) Delete(ctx context.Context) error       { return f.record("delete") }
func (f *fakeExec) Paginated(ctx context.Context) error    { return f.record("paginate") }
func (f *fakeExec) SystemInfo(ctx context.Context) error   { return f.record("info") }

func stubOutput(t *testing.T) {
	t.Helper()
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })
}

func TestRunMenu_DispatchAndExit(t *testing.T) {
	stubOutput(t)

	input := bufio.NewReader(strings.NewReader(strings.Join([]string{
		"1", "2", "3", "4", "5", "6", "7", "8", "9",
	}, "\n")))

	exec := &fakeExec{}
	runMenu(context.Background(), exec, input)

	want := []string{"list", "get", "create", "replace", "merge", "delete", "paginate", "info"}
	if len(exec.calls) != len(want) {
		t.Fatalf("calls mismatch: got %v, want %v", exec.calls, want)
	}
	for i, c := range exec.calls {
		if c != want[i] {
			t.Fatalf("call %d: got %q, want %q", i, c, want[i])
		}
	}
}

func TestRunMenu_SharedReaderFeedsCommands(t *testing.T) {
	stubOutput(t)

	// Menu choice, the command's own answer, next menu choice and exit all
	// travel through one reader; nothing may be buffered away between them.
	reader := bufio.NewReader(strings.NewReader("2\n42\n2\n7\n9\n"))
	exec := &fakeExec{reader: reader}

	runMenu(context.Background(), exec, reader)

	if len(exec.calls) != 2 || exec.calls[0] != "get" || exec.calls[1] != "get" {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
	if len(exec.inputs) != 2 || exec.inputs[0] != "42" || exec.inputs[1] != "7" {
		t.Fatalf("command prompts read wrong lines: %v", exec.inputs)
	}
}

func TestRunMenu_InvalidAndBlankChoices(t *testing.T) {
	stubOutput(t)

	input := bufio.NewReader(strings.NewReader("0\n\nfoo\n42\n9\n"))
	exec := &fakeExec{}

	runMenu(context.Background(), exec, input)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}

func TestRunMenu_HandlerErrorDoesNotAbort(t *testing.T) {
	stubOutput(t)

	input := bufio.NewReader(strings.NewReader("1\n1\n9\n"))
	exec := &fakeExec{err: errors.New("boom")}

	runMenu(context.Background(), exec, input)

	if len(exec.calls) != 2 {
		t.Fatalf("expected two calls despite errors, got %v", exec.calls)
	}
}

func TestRunMenu_EOFStopsLoop(t *testing.T) {
	stubOutput(t)

	input := bufio.NewReader(strings.NewReader("1\n"))
	exec := &fakeExec{}

	runMenu(context.Background(), exec, input)

	if len(exec.calls) != 1 {
		t.Fatalf("expected one call before EOF, got %v", exec.calls)
	}
}
