package models

// Appointment is an approved appointment waiting to be attended.
//
// The backend has used both cita_id/id and usuario_paciente_id/paciente_id
// for the same values; VisitID and PatientRef hide the difference.
type Appointment struct {
	CitaID        ID     `json:"cita_id"`
	ID            ID     `json:"id"`
	PatientUserID ID     `json:"usuario_paciente_id"`
	PatientID     ID     `json:"paciente_id"`
	Patient       string `json:"paciente"`
	Specialty     string `json:"especialidad"`
	Date          string `json:"fecha_cita"`
	Time          string `json:"hora_cita"`
}

func (a Appointment) VisitID() ID {
	return a.CitaID.Or(a.ID)
}

func (a Appointment) PatientRef() ID {
	return a.PatientUserID.Or(a.PatientID)
}

// When joins date and time, omitting whichever is missing.
func (a Appointment) When() string {
	switch {
	case a.Date == "":
		return a.Time
	case a.Time == "":
		return a.Date
	default:
		return a.Date + " " + a.Time
	}
}
