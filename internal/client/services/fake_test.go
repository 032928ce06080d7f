package services

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/medico/internal/client/client"
	"github.com/dmitrijs2005/medico/internal/client/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

// fakeClient implements client.Client for service tests.
type fakeClient struct {
	LoginToken string
	LoginErr   error
	LoginCalls int

	ProfileRet   *models.Profile
	ProfileErr   error
	ProfileCalls int
	// ProfileToken is the per-call override seen by the last Profile call.
	ProfileToken string

	AppointmentsRet []models.Appointment
	HistoryRet      []models.HistoryRecord
	HistoryFilter   models.HistoryFilter
	PatientRet      *models.Patient
	PatientID       models.ID
	ReadErr         error

	SubmitRet   *models.EncounterResult
	SubmitErr   error
	SubmitCalls int
}

var _ client.Client = (*fakeClient)(nil)

func (f *fakeClient) Login(ctx context.Context, username, password string) (string, error) {
	f.LoginCalls++
	return f.LoginToken, f.LoginErr
}

func (f *fakeClient) Profile(ctx context.Context) (*models.Profile, error) {
	f.ProfileCalls++
	f.ProfileToken, _ = client.AccessTokenFrom(ctx)
	return f.ProfileRet, f.ProfileErr
}

func (f *fakeClient) ApprovedAppointments(ctx context.Context) ([]models.Appointment, error) {
	return f.AppointmentsRet, f.ReadErr
}

func (f *fakeClient) History(ctx context.Context, filter models.HistoryFilter) ([]models.HistoryRecord, error) {
	f.HistoryFilter = filter
	return f.HistoryRet, f.ReadErr
}

func (f *fakeClient) Patient(ctx context.Context, id models.ID) (*models.Patient, error) {
	f.PatientID = id
	return f.PatientRet, f.ReadErr
}

func (f *fakeClient) SubmitEncounter(ctx context.Context, payload models.EncounterPayload) (*models.EncounterResult, error) {
	f.SubmitCalls++
	return f.SubmitRet, f.SubmitErr
}

var testKey = []byte("test-signing-key")

// mintToken signs claims with HS256. The services never verify signatures,
// any key works.
func mintToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testKey)
	require.NoError(t, err)
	return s
}

func doctorToken(t *testing.T, subject string, role int, exp time.Time) string {
	t.Helper()
	return mintToken(t, jwt.MapClaims{
		"sub":    subject,
		"rol_id": role,
		"exp":    exp.Unix(),
	})
}

func intPtr(v int) *int { return &v }
