package client

import (
	"context"

	"github.com/dmitrijs2005/medico/internal/client/models"
)

// Client is the backend API as seen by the services.
type Client interface {
	Login(ctx context.Context, username, password string) (string, error)
	Profile(ctx context.Context) (*models.Profile, error)
	ApprovedAppointments(ctx context.Context) ([]models.Appointment, error)
	History(ctx context.Context, filter models.HistoryFilter) ([]models.HistoryRecord, error)
	Patient(ctx context.Context, id models.ID) (*models.Patient, error)
	SubmitEncounter(ctx context.Context, payload models.EncounterPayload) (*models.EncounterResult, error)
}

var _ Client = (*HTTPClient)(nil)
