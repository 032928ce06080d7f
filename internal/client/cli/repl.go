package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Appointments(ctx context.Context) error
	History(ctx context.Context) error
	Patient(ctx context.Context, id string) error
	Attend(ctx context.Context, visitID string) error
	Journal(ctx context.Context) error
}

// needsLogin lists commands refused while anonymous.
var needsLogin = map[string]bool{
	"whoami":    true,
	"citas":     true,
	"historial": true,
	"paciente":  true,
	"atender":   true,
}

// runREPL reads commands line by line from reader and dispatches them to a.
// The loop exits on EOF or when the user types "exit" or "quit".
//
//	Anonymous:
//	  - help                 show available commands
//	  - login                authenticate
//	  - journal              recent local submissions
//	  - exit | quit          leave the program
//
//	Logged in, additionally:
//	  - whoami               profile of the logged-in doctor
//	  - citas                approved appointments
//	  - historial            history search
//	  - paciente <id>        patient detail
//	  - atender <cita_id>    record an encounter
//	  - logout               drop the session
//
// Handler errors are reported to the user and never end the loop.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("medico (%s) > ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if needsLogin[cmd] && !a.isLoggedIn() {
			warn("Inicie sesión primero con 'login'.")
			continue
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Comandos: whoami, citas, historial, paciente <id>, atender <cita_id>, journal, logout, exit")
			} else {
				printlnFn("Comandos: login, journal, exit")
			}

		case "login":
			reportErr(a.Login(ctx))

		case "logout":
			reportErr(a.Logout(ctx))

		case "whoami":
			reportErr(a.WhoAmI(ctx))

		case "citas":
			reportErr(a.Appointments(ctx))

		case "historial":
			reportErr(a.History(ctx))

		case "paciente":
			if len(args) == 0 {
				printlnFn("Uso: paciente <id>")
				continue
			}
			reportErr(a.Patient(ctx, args[0]))

		case "atender":
			if len(args) == 0 {
				printlnFn("Uso: atender <cita_id>")
				continue
			}
			reportErr(a.Attend(ctx, args[0]))

		case "journal":
			reportErr(a.Journal(ctx))

		case "exit", "quit":
			printlnFn("¡Hasta luego!")
			return

		default:
			printlnFn("Comando desconocido:", cmd)
		}

		if err != nil {
			return
		}
	}
}
