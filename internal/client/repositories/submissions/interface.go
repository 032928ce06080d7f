package submissions

import (
	"context"

	"github.com/dmitrijs2005/medico/internal/client/models"
)

// Repository stores and lists journaled submissions.
type Repository interface {
	// Add inserts a submission together with its detections.
	Add(ctx context.Context, s *models.Submission) error

	// Recent returns up to limit submissions, newest first.
	Recent(ctx context.Context, limit int) ([]models.Submission, error)
}
