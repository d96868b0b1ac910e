package practitioner

import (
	"context"

	practitionerRepo "medibook/database/repository/practitioner"
	"medibook/models"
	"medibook/services/availability"
)

// PractitionerService defines directory and roster lookups for practitioners.
// It doubles as the availability service's RosterLookup collaborator.
type PractitionerService interface {
	availability.RosterLookup

	// GetByID retrieves the directory view of a practitioner.
	GetByID(ctx context.Context, id string) (*models.PractitionerSummary, error)
	// GetByVertical lists active practitioners in a vertical.
	GetByVertical(ctx context.Context, vertical string) ([]models.PractitionerSummary, error)

	// Create validates and inserts a roster record, filling defaults.
	Create(ctx context.Context, p *models.Practitioner) error
	// Update validates and replaces an existing roster record.
	Update(ctx context.Context, p *models.Practitioner) error
	// Delete removes a roster record.
	Delete(ctx context.Context, id string) error
}

// DefaultPractitionerService is the concrete implementation.
type DefaultPractitionerService struct {
	Repo practitionerRepo.PractitionerRepository
}
