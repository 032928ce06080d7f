package submissions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/medico/internal/client/models"
	"github.com/dmitrijs2005/medico/internal/dbx"
)

var ErrInvalidSubmission = errors.New("invalid submission")

var _ Repository = (*SQLiteRepository)(nil)

// SQLiteRepository implements Repository over a DBTX.
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Add writes the submission row and one row per detection. Bind the
// repository to a transaction to make the pair atomic.
func (r *SQLiteRepository) Add(ctx context.Context, s *models.Submission) error {
	if s == nil || s.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidSubmission)
	}

	query := `insert into submissions (id, visit_id, submitted_at, attachments, status, message)
			values (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID, string(s.VisitID), s.SubmittedAt.UTC(), s.Attachments, s.Status, s.Message)
	if err != nil {
		return fmt.Errorf("failed to insert submission: %w", err)
	}

	query = `insert into submission_detections (submission_id, position, attachment, class_label, confidence)
			values (?, ?, ?, ?, ?)`
	for _, d := range s.Detections {
		if _, err := r.db.ExecContext(ctx, query, s.ID, d.Position, d.Attachment, d.Class, d.Confidence); err != nil {
			return fmt.Errorf("failed to insert detection: %w", err)
		}
	}

	return nil
}

// Recent lists the newest submissions first. A non-positive limit returns
// nothing.
func (r *SQLiteRepository) Recent(ctx context.Context, limit int) ([]models.Submission, error) {
	if limit <= 0 {
		return []models.Submission{}, nil
	}

	query := `select id, visit_id, submitted_at, attachments, status, message
			from submissions order by submitted_at desc, rowid desc limit ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to select submissions: %w", err)
	}
	defer rows.Close()

	result := []models.Submission{}
	index := map[string]int{}
	for rows.Next() {
		var (
			item    models.Submission
			visitID string
			at      time.Time
		)
		if err := rows.Scan(&item.ID, &visitID, &at, &item.Attachments, &item.Status, &item.Message); err != nil {
			return nil, err
		}
		item.VisitID = models.ID(visitID)
		item.SubmittedAt = at.UTC()
		index[item.ID] = len(result)
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()

	for id, i := range index {
		ds, err := r.detections(ctx, id)
		if err != nil {
			return nil, err
		}
		result[i].Detections = ds
	}

	return result, nil
}

func (r *SQLiteRepository) detections(ctx context.Context, submissionID string) ([]models.SubmissionDetection, error) {
	query := `select position, attachment, class_label, confidence
			from submission_detections where submission_id = ? order by position, rowid`
	rows, err := r.db.QueryContext(ctx, query, submissionID)
	if err != nil {
		return nil, fmt.Errorf("failed to select detections: %w", err)
	}
	defer rows.Close()

	var result []models.SubmissionDetection
	for rows.Next() {
		var d models.SubmissionDetection
		if err := rows.Scan(&d.Position, &d.Attachment, &d.Class, &d.Confidence); err != nil {
			return nil, err
		}
		result = append(result, d)
	}
	return result, rows.Err()
}
