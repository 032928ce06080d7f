package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/dmitrijs2005/medico/internal/client/models"
	"github.com/dmitrijs2005/medico/internal/client/services"
)

var getMultiline = GetMultiline
var getLines = GetLines

func (a *App) Appointments(ctx context.Context) error {
	list, err := a.clinic.Appointments(ctx)
	if err != nil {
		return err
	}

	heading("Citas aprobadas")
	if len(list) == 0 {
		printlnFn("No hay citas aprobadas.")
		return nil
	}
	for _, c := range list {
		printlnFn(fmt.Sprintf("[%s] %s  %s  paciente #%s  %s",
			c.VisitID(), orDash(c.When()), orDash(c.Patient), orDash(string(c.PatientRef())), c.Specialty))
	}
	printlnFn("Use 'atender <cita_id>' para registrar la atención.")
	return nil
}

// History asks for optional filters; leaving both empty lists everything.
func (a *App) History(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Nombre del paciente (opcional)", a.out)
	if err != nil {
		return err
	}
	ident, err := getSimpleText(a.reader, "Identificación (opcional)", a.out)
	if err != nil {
		return err
	}

	list, err := a.clinic.History(ctx, models.HistoryFilter{Name: name, Identification: ident})
	if err != nil {
		return err
	}

	heading("Historial")
	if len(list) == 0 {
		printlnFn("Sin resultados.")
		return nil
	}
	for _, h := range list {
		printlnFn(fmt.Sprintf("%s %s  %s (%s)  %s", h.Date, h.Time, h.Patient, orDash(h.Identification), h.Specialty))
		printlnFn(fmt.Sprintf("  Sistema: %s", orDash(h.System)))
		printlnFn(fmt.Sprintf("  Diagnóstico: %s", orDash(h.Diagnosis)))
		printlnFn(fmt.Sprintf("  Recomendaciones: %s", orDash(h.Recommendations)))
	}
	return nil
}

func (a *App) Patient(ctx context.Context, id string) error {
	p, err := a.clinic.Patient(ctx, models.ID(id))
	if err != nil {
		return err
	}

	heading("Paciente #" + id)
	printlnFn(fmt.Sprintf("Nombre:                %s", orDash(p.Name)))
	printlnFn(fmt.Sprintf("Email:                 %s", orDash(p.Email)))
	printlnFn(fmt.Sprintf("Edad:                  %d", p.Age))
	printlnFn(fmt.Sprintf("Peso:                  %.1f kg", p.Weight))
	printlnFn(fmt.Sprintf("Altura:                %.2f m", p.Height))
	printlnFn(fmt.Sprintf("Tipo:                  %s", orDash(p.PatientType)))
	printlnFn(fmt.Sprintf("Enfermedades crónicas: %s", orDash(p.ChronicConditions)))
	return nil
}

// Attend collects the encounter form for visitID and submits it with the
// listed images.
func (a *App) Attend(ctx context.Context, visitID string) error {
	heading("Atención de la cita #" + visitID)

	system, err := getSimpleText(a.reader, "Sistema", a.out)
	if err != nil {
		return err
	}
	diagnosis, err := getMultiline(a.reader, "Diagnóstico", a.out)
	if err != nil {
		return err
	}
	recommendations, err := getMultiline(a.reader, "Recomendaciones", a.out)
	if err != nil {
		return err
	}
	paths, err := getLines(a.reader, "Rutas de imágenes, una por línea", a.out)
	if err != nil {
		return err
	}

	payload := models.EncounterPayload{
		VisitID:         models.ID(visitID),
		System:          system,
		Diagnosis:       diagnosis,
		Recommendations: recommendations,
	}
	for _, p := range paths {
		p = strings.TrimSpace(p)
		payload.Attachments = append(payload.Attachments, models.Attachment{Name: filepath.Base(p), Path: p})
	}

	res, err := a.clinic.SubmitEncounter(ctx, payload)
	if err != nil {
		return err
	}

	success(orDash(res.Message))
	if res.EncounterID != "" {
		printlnFn("Atención #" + string(res.EncounterID))
	}

	pairs, err := res.Pair(payload.Attachments)
	if err != nil {
		return err
	}
	for _, p := range pairs {
		if best, ok := models.Best(p.Detections); ok {
			printlnFn(fmt.Sprintf("  %s: %s (%.0f%%)", p.Attachment.Name, best.Class, best.Confidence*100))
		} else {
			printlnFn(fmt.Sprintf("  %s: sin hallazgos", p.Attachment.Name))
		}
	}
	return nil
}

func (a *App) Journal(ctx context.Context) error {
	list, err := a.clinic.Journal(ctx, services.DefaultJournalLimit)
	if err != nil {
		return err
	}

	heading("Envíos recientes")
	if len(list) == 0 {
		printlnFn("Sin envíos registrados.")
		return nil
	}
	for _, s := range list {
		line := fmt.Sprintf("%s  cita #%s  %d imágenes  %s",
			s.SubmittedAt.Local().Format(time.DateTime), s.VisitID, s.Attachments, s.Status)
		if s.Message != "" {
			line += "  " + s.Message
		}
		printlnFn(line)
		for _, d := range s.Detections {
			printlnFn(fmt.Sprintf("    %s: %s (%.0f%%)", d.Attachment, d.Class, d.Confidence*100))
		}
	}
	return nil
}
