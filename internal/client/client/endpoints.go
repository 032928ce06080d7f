package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/medico/internal/client/models"
)

type loginRequest struct {
	Username string `json:"nombre_usuario"`
	Password string `json:"contrasena"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Login exchanges credentials for an access token. It never touches the
// session; storing the token is the caller's decision.
func (c *HTTPClient) Login(ctx context.Context, username, password string) (string, error) {
	body, err := json.Marshal(loginRequest{Username: username, Password: password})
	if err != nil {
		return "", fmt.Errorf("encode login: %w", err)
	}
	req, err := c.newRequest(ctx, http.MethodPost, "/Usuario/login", nil, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.send(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))
		return "", fmt.Errorf("%w (status %d)", ErrInvalidCredentials, resp.StatusCode)
	}

	var lr loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&lr); err != nil {
		return "", fmt.Errorf("%w: login: %v", ErrMalformedResponse, err)
	}
	if lr.AccessToken == "" {
		return "", fmt.Errorf("%w: login: no access_token", ErrMalformedResponse)
	}
	return lr.AccessToken, nil
}

func (c *HTTPClient) Profile(ctx context.Context) (*models.Profile, error) {
	var p models.Profile
	if err := c.getJSON(ctx, "/Usuario/perfil", nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *HTTPClient) ApprovedAppointments(ctx context.Context) ([]models.Appointment, error) {
	var body struct {
		Appointments []models.Appointment `json:"citas_aprobadas"`
	}
	if err := c.getJSON(ctx, "/Medico/citas/aprobadas", nil, &body); err != nil {
		return nil, err
	}
	return body.Appointments, nil
}

// History searches past encounters. Only the non-empty filter fields are
// sent as query parameters.
func (c *HTTPClient) History(ctx context.Context, filter models.HistoryFilter) ([]models.HistoryRecord, error) {
	var body struct {
		History []models.HistoryRecord `json:"historial"`
	}
	if err := c.getJSON(ctx, "/Medico/historial", filter.Query(), &body); err != nil {
		return nil, err
	}
	return body.History, nil
}

func (c *HTTPClient) Patient(ctx context.Context, id models.ID) (*models.Patient, error) {
	if id == "" {
		return nil, fmt.Errorf("patient id is required")
	}
	var p models.Patient
	if err := c.getJSON(ctx, "/Medico/paciente/"+url.PathEscape(string(id)), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}
