package repository

import (
	"context"
	"testing"
	"time"

	"denuncias-be/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newReport(t *testing.T, reporter primitive.ObjectID, createdAt time.Time) *models.Report {
	t.Helper()
	area, err := models.NewRiskArea(
		models.GeoPoint{Lat: -5.19, Lng: -80.63},
		models.GeoPoint{Lat: -5.20, Lng: -80.64},
		models.GeoPoint{Lat: -5.21, Lng: -80.65},
	)
	require.NoError(t, err)

	report, err := models.NewReport(reporter, models.ReportMetadata{
		Type:        models.Theft,
		Description: "robo en la calle",
	}, area, models.ExactLocation{}, nil)
	require.NoError(t, err)
	report.CreatedAt = createdAt
	return report
}

func TestSaveAssignsID(t *testing.T) {
	repo := NewMemoryReports()
	reporter := primitive.NewObjectID()

	stored, err := repo.Save(context.Background(), newReport(t, reporter, time.Now()))
	require.NoError(t, err)

	assert.False(t, stored.ID.IsZero())
	assert.Equal(t, models.StatusSubmitted, stored.Status)
	assert.Equal(t, reporter, stored.ReporterID)
}

func TestFindByOwnerNewestFirst(t *testing.T) {
	repo := NewMemoryReports()
	ctx := context.Background()
	owner := primitive.NewObjectID()
	other := primitive.NewObjectID()

	base := time.Now()
	older, err := repo.Save(ctx, newReport(t, owner, base.Add(-time.Hour)))
	require.NoError(t, err)
	newer, err := repo.Save(ctx, newReport(t, owner, base))
	require.NoError(t, err)
	_, err = repo.Save(ctx, newReport(t, other, base.Add(-time.Minute)))
	require.NoError(t, err)

	reports, err := repo.FindByOwner(ctx, owner)
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, newer.ID, reports[0].ID)
	assert.Equal(t, older.ID, reports[1].ID)
}

func TestRiskAreaSurvivesStorage(t *testing.T) {
	repo := NewMemoryReports()
	ctx := context.Background()

	stored, err := repo.Save(ctx, newReport(t, primitive.NewObjectID(), time.Now()))
	require.NoError(t, err)

	reports, err := repo.FindByOwner(ctx, stored.ReporterID)
	require.NoError(t, err)
	require.Len(t, reports, 1)

	verts, ok := reports[0].RiskArea.Polygon()
	require.True(t, ok)
	assert.Equal(t, []models.GeoPoint{
		{Lat: -5.19, Lng: -80.63},
		{Lat: -5.20, Lng: -80.64},
		{Lat: -5.21, Lng: -80.65},
	}, verts)
}

func TestFindAllJoinsReporterIdentity(t *testing.T) {
	repo := NewMemoryReports()
	ctx := context.Background()

	user := models.User{
		ID:              primitive.NewObjectID(),
		DNI:             "45678912",
		FirstNames:      "Ana Lucía",
		PaternalSurname: "Ramos",
		Email:           "ana@example.com",
		Phone:           "987654321",
	}
	repo.AddUser(user)

	_, err := repo.Save(ctx, newReport(t, user.ID, time.Now()))
	require.NoError(t, err)

	entries, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	assert.Equal(t, user.ID, entries[0].Report.ReporterID)
	assert.Equal(t, "Ana Lucía", entries[0].Reporter.FirstNames)
	assert.Equal(t, "45678912", entries[0].Reporter.DNI)
}

func TestFindPublicRedactsReporter(t *testing.T) {
	repo := NewMemoryReports()
	ctx := context.Background()

	_, err := repo.Save(ctx, newReport(t, primitive.NewObjectID(), time.Now()))
	require.NoError(t, err)

	reports, err := repo.FindPublic(ctx)
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.True(t, reports[0].ReporterID.IsZero())

	_, ok := reports[0].RiskArea.Polygon()
	assert.True(t, ok, "geometry is not part of the redaction")
}

func TestUpdateStatus(t *testing.T) {
	repo := NewMemoryReports()
	ctx := context.Background()
	owner := primitive.NewObjectID()

	stored, err := repo.Save(ctx, newReport(t, owner, time.Now()))
	require.NoError(t, err)

	updated, err := repo.UpdateStatus(ctx, stored.ID, models.StatusResolved)
	require.NoError(t, err)
	assert.Equal(t, models.StatusResolved, updated.Status)

	// Both the admin view and the owner view reflect the new status.
	entries, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, models.StatusResolved, entries[0].Report.Status)

	own, err := repo.FindByOwner(ctx, owner)
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, models.StatusResolved, own[0].Status)
}

func TestUpdateStatusNotFound(t *testing.T) {
	repo := NewMemoryReports()
	_, err := repo.UpdateStatus(context.Background(), primitive.NewObjectID(), models.StatusDismissed)
	assert.ErrorIs(t, err, models.ErrNotFound)
}
