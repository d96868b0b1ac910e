package practitioner

import (
	"context"
	"testing"
	"time"

	"medibook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePractitionerRepo struct {
	practitioners map[string]models.Practitioner
}

func (f *fakePractitionerRepo) GetByID(_ context.Context, id string) (*models.Practitioner, error) {
	p, ok := f.practitioners[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (f *fakePractitionerRepo) GetByIDs(_ context.Context, ids []string) ([]models.Practitioner, error) {
	var found []models.Practitioner
	for _, id := range ids {
		if p, ok := f.practitioners[id]; ok {
			found = append(found, p)
		}
	}
	return found, nil
}

func (f *fakePractitionerRepo) GetByVertical(_ context.Context, vertical string) ([]models.Practitioner, error) {
	var found []models.Practitioner
	for _, p := range f.practitioners {
		if p.Vertical == vertical && p.Status == "active" {
			found = append(found, p)
		}
	}
	return found, nil
}

func (f *fakePractitionerRepo) Create(_ context.Context, p *models.Practitioner) error {
	f.practitioners[p.ID] = *p
	return nil
}

func (f *fakePractitionerRepo) Update(_ context.Context, p *models.Practitioner) error {
	f.practitioners[p.ID] = *p
	return nil
}

func (f *fakePractitionerRepo) Delete(_ context.Context, id string) error {
	delete(f.practitioners, id)
	return nil
}

func testRoster() *fakePractitionerRepo {
	return &fakePractitionerRepo{
		practitioners: map[string]models.Practitioner{
			"prac-1": {
				ID: "prac-1", FirstName: "Ada", LastName: "Osei",
				Vertical: "therapy", Status: "active", MaxCapacity: 2,
				Products: []models.BookableProduct{
					{ID: "p1", DurationMinutes: 45, Active: true},
					{ID: "p2", DurationMinutes: 30, Active: true},
				},
			},
			"prac-2": {
				ID: "prac-2", FirstName: "Ben", LastName: "Ndegwa",
				Vertical: "psychiatry", Status: "active", CanPrescribe: true, MaxCapacity: 1,
				Products: []models.BookableProduct{
					{ID: "p3", DurationMinutes: 60, Active: true},
				},
			},
			"prac-3": {
				ID: "prac-3", FirstName: "Cleo", LastName: "Mwangi",
				Vertical: "therapy", Status: "paused", MaxCapacity: 1,
				Products: []models.BookableProduct{
					{ID: "p4", DurationMinutes: 45, Active: true},
				},
			},
		},
	}
}

func TestGetByID(t *testing.T) {
	svc := &DefaultPractitionerService{Repo: testRoster()}

	summary, err := svc.GetByID(context.Background(), "prac-1")
	require.NoError(t, err)
	assert.Equal(t, "Ada", summary.FirstName)
	assert.Equal(t, "therapy", summary.Vertical)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := &DefaultPractitionerService{Repo: testRoster()}

	_, err := svc.GetByID(context.Background(), "prac-404")
	var notFound NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "prac-404", notFound.ID)
}

func TestFilterByVertical_ExcludesPausedPractitioners(t *testing.T) {
	svc := &DefaultPractitionerService{Repo: testRoster()}

	kept, err := svc.FilterByVertical(context.Background(), []string{"prac-1", "prac-2", "prac-3"}, "therapy")
	require.NoError(t, err)
	assert.Equal(t, []string{"prac-1"}, kept)
}

func TestFilterPrescribers(t *testing.T) {
	svc := &DefaultPractitionerService{Repo: testRoster()}

	kept, err := svc.FilterPrescribers(context.Background(), []string{"prac-1", "prac-2"})
	require.NoError(t, err)
	assert.Equal(t, []string{"prac-2"}, kept)
}

func TestCreate_FillsDefaults(t *testing.T) {
	repo := testRoster()
	svc := &DefaultPractitionerService{Repo: repo}

	p := &models.Practitioner{FirstName: "Dana", LastName: "Okafor", Vertical: "nutrition"}
	require.NoError(t, svc.Create(context.Background(), p))

	assert.NotEmpty(t, p.ID, "an ID is generated when absent")
	assert.Equal(t, "active", p.Status)
	_, stored := repo.practitioners[p.ID]
	assert.True(t, stored)
}

func TestCreate_RejectsMissingVertical(t *testing.T) {
	svc := &DefaultPractitionerService{Repo: testRoster()}

	err := svc.Create(context.Background(), &models.Practitioner{FirstName: "Dana"})
	var invalid InvalidInputError
	assert.ErrorAs(t, err, &invalid)
}

func TestCreate_RejectsUnknownStatus(t *testing.T) {
	svc := &DefaultPractitionerService{Repo: testRoster()}

	err := svc.Create(context.Background(), &models.Practitioner{Vertical: "therapy", Status: "retired"})
	var invalid InvalidInputError
	assert.ErrorAs(t, err, &invalid)
}

func TestUpdate_UnknownPractitioner(t *testing.T) {
	svc := &DefaultPractitionerService{Repo: testRoster()}

	err := svc.Update(context.Background(), &models.Practitioner{ID: "prac-404", Vertical: "therapy"})
	var notFound NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "prac-404", notFound.ID)
}

func TestDelete(t *testing.T) {
	repo := testRoster()
	svc := &DefaultPractitionerService{Repo: repo}

	require.NoError(t, svc.Delete(context.Background(), "prac-1"))
	_, remains := repo.practitioners["prac-1"]
	assert.False(t, remains)

	err := svc.Delete(context.Background(), "prac-1")
	var notFound NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestRosterEntries(t *testing.T) {
	svc := &DefaultPractitionerService{Repo: testRoster()}

	entries, err := svc.RosterEntries(context.Background(), []string{"prac-1", "prac-2", "prac-404"})
	require.NoError(t, err)

	require.Len(t, entries, 2)
	assert.Equal(t, 2, entries["prac-1"].Capacity)
	assert.Equal(t, 30*time.Minute, entries["prac-1"].MinimumDuration)
	assert.Equal(t, 60*time.Minute, entries["prac-2"].MinimumDuration)

	_, ok := entries["prac-404"]
	assert.False(t, ok, "unknown IDs stay out of the roster map")
}
