package services

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"time"

	"github.com/dmitrijs2005/medico/internal/client/client"
	"github.com/dmitrijs2005/medico/internal/client/models"
	"github.com/dmitrijs2005/medico/internal/client/repositories/submissions"
	"github.com/dmitrijs2005/medico/internal/dbx"
	"github.com/dmitrijs2005/medico/internal/logging"
	"github.com/google/uuid"
)

// DefaultJournalLimit is how many journal rows Journal returns when asked
// for a non-positive amount.
const DefaultJournalLimit = 20

// ClinicService is what the doctor does once logged in: browse approved
// appointments, search history, look up patients and record encounters.
type ClinicService interface {
	Appointments(ctx context.Context) ([]models.Appointment, error)
	History(ctx context.Context, filter models.HistoryFilter) ([]models.HistoryRecord, error)
	Patient(ctx context.Context, id models.ID) (*models.Patient, error)
	SubmitEncounter(ctx context.Context, payload models.EncounterPayload) (*models.EncounterResult, error)
	Journal(ctx context.Context, limit int) ([]models.Submission, error)
}

type clinicService struct {
	client client.Client
	db     *sql.DB
	log    logging.Logger
	now    func() time.Time
	newID  func() string
}

// NewClinicService returns a ClinicService. db holds the submission journal;
// nil disables journaling.
func NewClinicService(c client.Client, db *sql.DB, log logging.Logger) ClinicService {
	if log == nil {
		log = logging.Discard()
	}
	return &clinicService{client: c, db: db, log: log, now: time.Now, newID: uuid.NewString}
}

func (s *clinicService) Appointments(ctx context.Context) ([]models.Appointment, error) {
	return s.client.ApprovedAppointments(ctx)
}

func (s *clinicService) History(ctx context.Context, filter models.HistoryFilter) ([]models.HistoryRecord, error) {
	return s.client.History(ctx, filter)
}

func (s *clinicService) Patient(ctx context.Context, id models.ID) (*models.Patient, error) {
	return s.client.Patient(ctx, id)
}

// SubmitEncounter validates the form, sends it and journals the attempt.
// An invalid form is never sent nor journaled. Journal failures are logged
// and do not change the result.
func (s *clinicService) SubmitEncounter(ctx context.Context, payload models.EncounterPayload) (*models.EncounterResult, error) {
	if err := payload.Validate(); err != nil {
		return nil, err
	}

	res, err := s.client.SubmitEncounter(ctx, payload)

	if jerr := s.record(ctx, payload, res, err); jerr != nil {
		s.log.Warn(ctx, "journal write failed", "visit", string(payload.VisitID), "err", jerr)
	}

	return res, err
}

func (s *clinicService) record(ctx context.Context, payload models.EncounterPayload, res *models.EncounterResult, sendErr error) error {
	if s.db == nil {
		return nil
	}

	sub := &models.Submission{
		ID:          s.newID(),
		VisitID:     payload.VisitID,
		SubmittedAt: s.now(),
		Attachments: len(payload.Attachments),
		Status:      models.SubmissionOK,
	}

	if sendErr != nil {
		sub.Status = models.SubmissionFailed
		sub.Message = sendErr.Error()
	} else if res != nil {
		sub.Message = res.Message
		pairs, err := res.Pair(payload.Attachments)
		if err != nil {
			return fmt.Errorf("pair detections: %w", err)
		}
		for i, p := range pairs {
			for _, d := range p.Detections {
				sub.Detections = append(sub.Detections, models.SubmissionDetection{
					Position:   i,
					Attachment: attachmentName(p.Attachment),
					Class:      d.Class,
					Confidence: d.Confidence,
				})
			}
		}
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return submissions.NewSQLiteRepository(tx).Add(ctx, sub)
	})
}

// Journal lists the most recent journaled submissions.
func (s *clinicService) Journal(ctx context.Context, limit int) ([]models.Submission, error) {
	if s.db == nil {
		return []models.Submission{}, nil
	}
	if limit <= 0 {
		limit = DefaultJournalLimit
	}
	list, err := submissions.NewSQLiteRepository(s.db).Recent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("read journal: %w", err)
	}
	return list, nil
}

func attachmentName(a models.Attachment) string {
	if a.Name != "" {
		return a.Name
	}
	return filepath.Base(a.Path)
}
