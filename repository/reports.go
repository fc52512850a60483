package repository

import (
	"context"

	"denuncias-be/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AdminReport pairs a stored report with the reporter's identity for the
// administrator listing.
type AdminReport struct {
	Report   models.Report
	Reporter models.ReporterIdentity
}

// ReportRepository is the persistence boundary for incident reports. The
// domain defines the interface; implementations live alongside it.
//
// All listings are ordered by creation time, newest first. FindPublic returns
// reports with the reporter reference cleared; it is the only projection that
// ever leaves the system without an ownership or admin check upstream.
type ReportRepository interface {
	// Save persists a new report, assigning its ID.
	Save(ctx context.Context, report *models.Report) (*models.Report, error)

	// FindByOwner lists reports created by the given user.
	FindByOwner(ctx context.Context, reporterID primitive.ObjectID) ([]models.Report, error)

	// FindAll lists every report joined with reporter identity.
	FindAll(ctx context.Context) ([]AdminReport, error)

	// FindPublic lists every report with reporter identity redacted.
	FindPublic(ctx context.Context) ([]models.Report, error)

	// UpdateStatus relabels one report's status atomically and returns the
	// updated report. Fails with models.ErrNotFound for unknown ids.
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.ReportStatus) (*models.Report, error)
}
