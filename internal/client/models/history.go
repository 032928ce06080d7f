package models

import (
	"net/url"
	"strings"
)

// HistoryRecord is one past encounter returned by the history search.
type HistoryRecord struct {
	Patient         string `json:"paciente"`
	Identification  string `json:"identificacion"`
	Date            string `json:"fecha"`
	Time            string `json:"hora_cita"`
	Diagnosis       string `json:"diagnostico"`
	Recommendations string `json:"recomendaciones"`
	System          string `json:"sistema"`
	Specialty       string `json:"especialidad"`
}

// HistoryFilter narrows the history search. Empty fields are not sent.
type HistoryFilter struct {
	Name           string
	Identification string
}

func (f HistoryFilter) Query() url.Values {
	q := url.Values{}
	if v := strings.TrimSpace(f.Name); v != "" {
		q.Set("nombre", v)
	}
	if v := strings.TrimSpace(f.Identification); v != "" {
		q.Set("identificacion", v)
	}
	return q
}
