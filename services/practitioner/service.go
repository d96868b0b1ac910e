package practitioner

import (
	"context"
	"fmt"
	"time"

	"medibook/models"
	"medibook/services/availability"

	"github.com/google/uuid"
)

var allowedStatuses = map[string]bool{
	"active":     true,
	"paused":     true,
	"offboarded": true,
}

func (s *DefaultPractitionerService) GetByID(ctx context.Context, id string) (*models.PractitionerSummary, error) {
	p, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, NotFoundError{ID: id}
	}
	summary := p.Summary()
	return &summary, nil
}

func (s *DefaultPractitionerService) GetByVertical(ctx context.Context, vertical string) ([]models.PractitionerSummary, error) {
	practitioners, err := s.Repo.GetByVertical(ctx, vertical)
	if err != nil {
		return nil, err
	}
	summaries := make([]models.PractitionerSummary, 0, len(practitioners))
	for _, p := range practitioners {
		summaries = append(summaries, p.Summary())
	}
	return summaries, nil
}

// Create inserts a roster record. A missing ID gets a generated one and a
// missing status defaults to active.
func (s *DefaultPractitionerService) Create(ctx context.Context, p *models.Practitioner) error {
	if p.Vertical == "" {
		return InvalidInputError{Message: "vertical is required"}
	}
	if p.MaxCapacity < 0 {
		return InvalidInputError{Message: "maxCapacity cannot be negative"}
	}
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.Status == "" {
		p.Status = "active"
	}
	if !allowedStatuses[p.Status] {
		return InvalidInputError{Message: fmt.Sprintf("unknown status %q", p.Status)}
	}
	return s.Repo.Create(ctx, p)
}

// Update replaces an existing roster record.
func (s *DefaultPractitionerService) Update(ctx context.Context, p *models.Practitioner) error {
	if p.ID == "" {
		return InvalidInputError{Message: "id is required"}
	}
	if p.Status != "" && !allowedStatuses[p.Status] {
		return InvalidInputError{Message: fmt.Sprintf("unknown status %q", p.Status)}
	}
	existing, err := s.Repo.GetByID(ctx, p.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return NotFoundError{ID: p.ID}
	}
	return s.Repo.Update(ctx, p)
}

// Delete removes a roster record.
func (s *DefaultPractitionerService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return InvalidInputError{Message: "id is required"}
	}
	existing, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return NotFoundError{ID: id}
	}
	return s.Repo.Delete(ctx, id)
}

// FilterByVertical keeps only the IDs whose practitioner is active in the
// given vertical.
func (s *DefaultPractitionerService) FilterByVertical(ctx context.Context, practitionerIDs []string, vertical string) ([]string, error) {
	practitioners, err := s.Repo.GetByIDs(ctx, practitionerIDs)
	if err != nil {
		return nil, err
	}
	var kept []string
	for _, p := range practitioners {
		if p.IsSearchable() && p.Vertical == vertical {
			kept = append(kept, p.ID)
		}
	}
	return kept, nil
}

// FilterPrescribers keeps only the IDs whose practitioner can prescribe.
func (s *DefaultPractitionerService) FilterPrescribers(ctx context.Context, practitionerIDs []string) ([]string, error) {
	practitioners, err := s.Repo.GetByIDs(ctx, practitionerIDs)
	if err != nil {
		return nil, err
	}
	var kept []string
	for _, p := range practitioners {
		if p.IsSearchable() && p.CanPrescribe {
			kept = append(kept, p.ID)
		}
	}
	return kept, nil
}

// RosterEntries returns per-practitioner capacity and minimum bookable
// duration. Practitioners absent from the roster are left out of the map and
// treated as ineligible by the caller.
func (s *DefaultPractitionerService) RosterEntries(ctx context.Context, practitionerIDs []string) (map[string]availability.RosterEntry, error) {
	practitioners, err := s.Repo.GetByIDs(ctx, practitionerIDs)
	if err != nil {
		return nil, err
	}
	entries := make(map[string]availability.RosterEntry, len(practitioners))
	for _, p := range practitioners {
		entries[p.ID] = availability.RosterEntry{
			Capacity:        p.MaxCapacity,
			MinimumDuration: time.Duration(p.MinimumBookableMinutes()) * time.Minute,
		}
	}
	return entries, nil
}
