package models

import (
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReportType enum. The set is extensible: unknown values are stored as-is and
// get a default display treatment client-side, they are not a data-layer error.
type ReportType string

const (
	Theft              ReportType = "theft"
	Robbery            ReportType = "robbery"
	Harassment         ReportType = "harassment"
	Vandalism          ReportType = "vandalism"
	GangActivity       ReportType = "gang-activity"
	SuspiciousActivity ReportType = "suspicious-activity"
)

// ReportStatus enum. A flat relabeling, not a state machine: any recognized
// status may follow any other.
type ReportStatus string

const (
	StatusSubmitted   ReportStatus = "submitted"
	StatusUnderReview ReportStatus = "under-review"
	StatusResolved    ReportStatus = "resolved"
	StatusDismissed   ReportStatus = "dismissed"
)

// ValidStatus reports whether s is one of the recognized status labels.
func ValidStatus(s ReportStatus) bool {
	switch s {
	case StatusSubmitted, StatusUnderReview, StatusResolved, StatusDismissed:
		return true
	}
	return false
}

// ReportMetadata carries the free-form incident fields supplied at creation.
// Only Type and Description are required.
type ReportMetadata struct {
	Type              ReportType
	Description       string
	Date              string
	Time              string
	Witnesses         string
	AdditionalDetails string
	StolenItems       string
	ApproximateAmount string
}

// Report is an incident report as the domain sees it: geometry held as value
// types, never as raw storage text. Immutable after creation except Status.
type Report struct {
	ID                primitive.ObjectID
	ReporterID        primitive.ObjectID
	Type              ReportType
	Description       string
	Date              string
	Time              string
	Witnesses         string
	AdditionalDetails string
	StolenItems       string
	ApproximateAmount string
	RiskArea          RiskArea
	ExactLocation     ExactLocation
	Images            []string
	Status            ReportStatus
	CreatedAt         time.Time
}

// NewReport assembles a report from validated geometry and metadata. It fails
// before anything touches storage, so no report is ever persisted half-valid.
func NewReport(reporterID primitive.ObjectID, meta ReportMetadata, area RiskArea, loc ExactLocation, images []string) (*Report, error) {
	if strings.TrimSpace(string(meta.Type)) == "" {
		return nil, fmt.Errorf("%w: type", ErrMissingRequiredField)
	}
	if strings.TrimSpace(meta.Description) == "" {
		return nil, fmt.Errorf("%w: description", ErrMissingRequiredField)
	}

	return &Report{
		ReporterID:        reporterID,
		Type:              meta.Type,
		Description:       meta.Description,
		Date:              meta.Date,
		Time:              meta.Time,
		Witnesses:         meta.Witnesses,
		AdditionalDetails: meta.AdditionalDetails,
		StolenItems:       meta.StolenItems,
		ApproximateAmount: meta.ApproximateAmount,
		RiskArea:          area,
		ExactLocation:     loc,
		Images:            images,
		Status:            StatusSubmitted,
		CreatedAt:         time.Now(),
	}, nil
}

// TransitionStatus relabels the report's status. Only administrators may do
// this, and only to a recognized label; on failure the report is unchanged.
func (r *Report) TransitionStatus(newStatus ReportStatus, actor Caller) error {
	if !actor.IsAdmin() {
		return fmt.Errorf("%w: only administrators may change report status", ErrForbidden)
	}
	if !ValidStatus(newStatus) {
		return fmt.Errorf("%w: %q", ErrInvalidTransition, newStatus)
	}
	r.Status = newStatus
	return nil
}
