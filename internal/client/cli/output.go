package cli

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/medico/internal/client/client"
	"github.com/dmitrijs2005/medico/internal/client/models"
	"github.com/fatih/color"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

var (
	headingColor = color.New(color.FgCyan, color.Bold)
	okColor      = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	errColor     = color.New(color.FgRed)
)

func heading(s string)                 { printlnFn(headingColor.Sprint(s)) }
func success(s string)                 { printlnFn(okColor.Sprint(s)) }
func warn(s string)                    { printlnFn(warnColor.Sprint(s)) }
func failf(format string, args ...any) { printlnFn(errColor.Sprintf(format, args...)) }

// reportErr tells the user what went wrong in terms of what they can do
// about it.
func reportErr(err error) {
	if err == nil {
		return
	}

	var se *client.StatusError
	switch client.KindOf(err) {
	case client.KindTransport:
		failf("No se pudo contactar con el servidor: %v", err)
	case client.KindAuthentication:
		switch {
		case errors.Is(err, client.ErrWrongRole):
			failf("Acceso denegado: esta aplicación es solo para médicos.")
		case errors.Is(err, client.ErrInvalidCredentials):
			failf("Usuario o contraseña incorrectos.")
		default:
			failf("No se pudo validar la sesión: %v", err)
		}
	case client.KindExpired:
		warn("La sesión ha expirado. Inicie sesión de nuevo con 'login'.")
	case client.KindDenied:
		failf("No tiene permiso para esta operación.")
	case client.KindResource:
		failf("No se pudo leer un archivo: %v", err)
	case client.KindServer:
		if errors.As(err, &se) {
			failf("Error del servidor (%d): %s", se.Code, se.Body)
		} else {
			failf("Respuesta inesperada del servidor: %v", err)
		}
	default:
		if errors.Is(err, models.ErrMissingField) {
			failf("Formulario incompleto: %v", err)
			return
		}
		failf("Error: %v", err)
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
