package practitionerRepo

import (
	"context"

	"medibook/models"
)

// PractitionerRepository defines methods for roster data access.
type PractitionerRepository interface {
	// GetByID retrieves a practitioner by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Practitioner, error)
	// GetByIDs retrieves the roster documents for the given IDs. Missing IDs are
	// silently skipped; callers decide how to treat absent practitioners.
	GetByIDs(ctx context.Context, ids []string) ([]models.Practitioner, error)
	// GetByVertical returns active practitioners in a vertical.
	GetByVertical(ctx context.Context, vertical string) ([]models.Practitioner, error)
	// Create inserts a new roster record.
	Create(ctx context.Context, practitioner *models.Practitioner) error
	// Update replaces an existing roster record.
	Update(ctx context.Context, practitioner *models.Practitioner) error
	// Delete removes a roster record by its ID.
	Delete(ctx context.Context, id string) error
}
