package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/dmitrijs2005/medico/internal/client/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	args  []string

	// errs maps a command to the error its handler returns.
	errs map[string]error
}

func (f *fakeExec) record(name string, args ...string) error {
	f.calls = append(f.calls, name)
	f.args = append(f.args, args...)
	return f.errs[name]
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Login(ctx context.Context) error {
	f.loggedIn = true
	return f.record("login")
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.loggedIn = false
	return f.record("logout")
}
func (f *fakeExec) WhoAmI(ctx context.Context) error       { return f.record("whoami") }
func (f *fakeExec) Appointments(ctx context.Context) error { return f.record("citas") }
func (f *fakeExec) History(ctx context.Context) error      { return f.record("historial") }
func (f *fakeExec) Patient(ctx context.Context, id string) error {
	return f.record("paciente", id)
}
func (f *fakeExec) Attend(ctx context.Context, visitID string) error {
	if err := f.record("atender", visitID); err != nil {
		if client.KindOf(err) == client.KindExpired {
			f.loggedIn = false
		}
		return err
	}
	return nil
}
func (f *fakeExec) Journal(ctx context.Context) error { return f.record("journal") }

// captureOutput swaps printlnFn for a buffer of printed lines.
func captureOutput(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func reader(lines ...string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(strings.Join(lines, "\n")))
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	captureOutput(t)

	exec := &fakeExec{}
	in := reader(
		"help",
		"login",
		"help",
		"whoami",
		"citas",
		"historial",
		"paciente 7",
		"atender 12",
		"journal",
		"foobar",
		"logout",
		"exit",
	)

	runREPL(context.Background(), exec, func() string { return "status" }, in)

	assert.Equal(t, []string{"login", "whoami", "citas", "historial", "paciente", "atender", "journal", "logout"}, exec.calls)
	assert.Equal(t, []string{"7", "12"}, exec.args)
}

func TestRunREPL_AnonymousIsRefused(t *testing.T) {
	out := captureOutput(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "anónimo" }, reader("citas", "atender 3", "journal", "quit"))

	assert.Equal(t, []string{"journal"}, exec.calls)
	assert.Contains(t, strings.Join(*out, "\n"), "Inicie sesión primero")
}

func TestRunREPL_UsageAndEOF(t *testing.T) {
	out := captureOutput(t)

	exec := &fakeExec{loggedIn: true}
	runREPL(context.Background(), exec, func() string { return "s" }, reader("paciente", "atender"))

	assert.Empty(t, exec.calls)
	joined := strings.Join(*out, "\n")
	assert.Contains(t, joined, "Uso: paciente <id>")
	assert.Contains(t, joined, "Uso: atender <cita_id>")
}

func TestRunREPL_LastLineWithoutNewlineRuns(t *testing.T) {
	captureOutput(t)

	exec := &fakeExec{loggedIn: true}
	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewReader(strings.NewReader("citas")))

	assert.Equal(t, []string{"citas"}, exec.calls)
}

func TestRunREPL_ExpiredSessionAsksForLogin(t *testing.T) {
	out := captureOutput(t)

	exec := &fakeExec{loggedIn: true, errs: map[string]error{"atender": client.ErrSessionExpired}}
	status := func() string {
		if exec.loggedIn {
			return "dr"
		}
		return "anónimo"
	}

	runREPL(context.Background(), exec, status, reader("atender 4", "citas", "exit"))

	require.Equal(t, []string{"atender"}, exec.calls)
	joined := strings.Join(*out, "\n")
	assert.Contains(t, joined, "La sesión ha expirado")
	assert.Contains(t, joined, "medico (anónimo) > ")
}
