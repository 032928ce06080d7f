package cli

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and authenticates. On success the prompt
// switches to the doctor's name when the profile can be read.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Usuario", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}

	id, err := a.auth.Login(ctx, userName, password)
	if err != nil {
		if !a.isLoggedIn() {
			a.userName = ""
		}
		return err
	}

	a.userName = userName
	if p, perr := a.auth.Profile(ctx); perr == nil {
		if full := strings.TrimSpace(p.FirstName + " " + p.LastName); full != "" {
			a.userName = full
		}
	}

	success(fmt.Sprintf("Sesión iniciada (usuario #%s).", id.SubjectID))
	return nil
}

// Logout drops the session. It never fails.
func (a *App) Logout(ctx context.Context) error {
	a.auth.Logout(ctx)
	a.userName = ""
	success("Sesión cerrada.")
	return nil
}

// WhoAmI shows the doctor's home screen: profile and session expiry.
func (a *App) WhoAmI(ctx context.Context) error {
	p, err := a.auth.Profile(ctx)
	if err != nil {
		return err
	}

	heading("Perfil del médico")
	printlnFn(fmt.Sprintf("Nombre:       %s %s", p.FirstName, p.LastName))
	printlnFn(fmt.Sprintf("Especialidad: %s", orDash(p.Details.Specialty)))
	printlnFn(fmt.Sprintf("Edad:         %d", p.Age))
	printlnFn(fmt.Sprintf("Ubicación:    %s", orDash(p.Location)))

	if id, ok := a.auth.Identity(); ok && !id.ExpiresAt.IsZero() {
		printlnFn(fmt.Sprintf("Sesión válida hasta %s", id.ExpiresAt.Local().Format(time.DateTime)))
	}
	return nil
}
