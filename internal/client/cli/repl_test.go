package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	args  [][]string
}

func (f *fakeExec) record(name string, args []string) {
	f.calls = append(f.calls, name)
	f.args = append(f.args, args)
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error {
	f.record("register", nil)
	return nil
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.record("login", nil)
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.record("logout", nil)
	f.loggedIn = false
	return nil
}
func (f *fakeExec) ResetPassword(ctx context.Context) error {
	f.record("resetpw", nil)
	return nil
}
func (f *fakeExec) WhoAmI(ctx context.Context) error {
	f.record("whoami", nil)
	return nil
}
func (f *fakeExec) SubmitReport(ctx context.Context) error {
	f.record("report", nil)
	return nil
}
func (f *fakeExec) ListReports(ctx context.Context, args []string) error {
	f.record("list", args)
	return nil
}
func (f *fakeExec) NearbyReports(ctx context.Context) error {
	f.record("nearby", nil)
	return nil
}
func (f *fakeExec) ShowReport(ctx context.Context, args []string) error {
	f.record("show", args)
	return nil
}
func (f *fakeExec) SetReportStatus(ctx context.Context, args []string) error {
	f.record("status", args)
	return nil
}
func (f *fakeExec) DeleteReport(ctx context.Context, args []string) error {
	f.record("delete", args)
	return nil
}
func (f *fakeExec) AddComment(ctx context.Context, args []string) error {
	f.record("comment", args)
	return nil
}
func (f *fakeExec) SetRole(ctx context.Context, args []string) error {
	f.record("setrole", args)
	return nil
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"help",
		"report",
		"list verified",
		"show r1",
		"comment r1",
		"foobar",
		"exit",
	}, "\n"))

	exec := &fakeExec{loggedIn: false}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	wantOrder := []string{"login", "report", "list", "show", "comment"}
	if len(exec.calls) < len(wantOrder) {
		t.Fatalf("few calls: %+v", exec.calls)
	}
	idx := 0
	for _, c := range exec.calls {
		if idx < len(wantOrder) && c == wantOrder[idx] {
			idx++
		}
	}
	if idx != len(wantOrder) {
		t.Fatalf("commands order mismatch: got %v, want subseq %v", exec.calls, wantOrder)
	}
}

func TestRunREPL_ArgsArePassedThrough(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("status r1 verified\nsetrole u1 volunteer\nquit\n")
	exec := &fakeExec{loggedIn: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	if len(exec.calls) != 2 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
	if exec.args[0][0] != "r1" || exec.args[0][1] != "verified" {
		t.Fatalf("status args: %v", exec.args[0])
	}
	if exec.args[1][0] != "u1" || exec.args[1][1] != "volunteer" {
		t.Fatalf("setrole args: %v", exec.args[1])
	}
}

func TestRunREPL_QuitOnEOF(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	exec := &fakeExec{}
	sc := bufio.NewScanner(strings.NewReader(""))
	runREPL(context.Background(), exec, func() string { return "" }, sc)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}
