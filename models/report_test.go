package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func testArea(t *testing.T) RiskArea {
	t.Helper()
	area, err := NewRiskArea(
		GeoPoint{Lat: -5.19, Lng: -80.63},
		GeoPoint{Lat: -5.20, Lng: -80.64},
		GeoPoint{Lat: -5.21, Lng: -80.65},
	)
	require.NoError(t, err)
	return area
}

func TestNewReport(t *testing.T) {
	reporter := primitive.NewObjectID()
	meta := ReportMetadata{
		Type:        Theft,
		Description: "Me robaron el celular en la avenida",
		Witnesses:   "2",
		StolenItems: "celular",
	}

	report, err := NewReport(reporter, meta, testArea(t), ExactLocation{}, nil)
	require.NoError(t, err)

	assert.Equal(t, StatusSubmitted, report.Status)
	assert.Equal(t, reporter, report.ReporterID)
	assert.False(t, report.CreatedAt.IsZero())
	assert.True(t, report.ID.IsZero(), "id is assigned by the repository")

	verts, ok := report.RiskArea.Polygon()
	require.True(t, ok)
	assert.Equal(t, GeoPoint{Lat: -5.19, Lng: -80.63}, verts[0])
}

func TestNewReportMissingRequiredFields(t *testing.T) {
	reporter := primitive.NewObjectID()

	_, err := NewReport(reporter, ReportMetadata{Description: "algo"}, RiskArea{}, ExactLocation{}, nil)
	assert.ErrorIs(t, err, ErrMissingRequiredField)

	_, err = NewReport(reporter, ReportMetadata{Type: Robbery}, RiskArea{}, ExactLocation{}, nil)
	assert.ErrorIs(t, err, ErrMissingRequiredField)

	_, err = NewReport(reporter, ReportMetadata{Type: " ", Description: "   "}, RiskArea{}, ExactLocation{}, nil)
	assert.ErrorIs(t, err, ErrMissingRequiredField)
}

func TestNewReportUnknownTypeAccepted(t *testing.T) {
	report, err := NewReport(primitive.NewObjectID(), ReportMetadata{
		Type:        "pickpocketing",
		Description: "tipo fuera del catálogo",
	}, RiskArea{}, ExactLocation{}, nil)
	require.NoError(t, err)
	assert.Equal(t, ReportType("pickpocketing"), report.Type)
}

func TestTransitionStatus(t *testing.T) {
	admin := Caller{UserID: primitive.NewObjectID(), EmailVerified: true, Admin: true}
	user := Caller{UserID: primitive.NewObjectID(), EmailVerified: true}

	report, err := NewReport(user.UserID, ReportMetadata{
		Type:        Vandalism,
		Description: "pintas en la pared",
	}, RiskArea{}, ExactLocation{}, nil)
	require.NoError(t, err)

	err = report.TransitionStatus(StatusResolved, user)
	assert.ErrorIs(t, err, ErrForbidden)
	assert.Equal(t, StatusSubmitted, report.Status, "status unchanged after forbidden attempt")

	err = report.TransitionStatus("archived", admin)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, StatusSubmitted, report.Status)

	require.NoError(t, report.TransitionStatus(StatusResolved, admin))
	assert.Equal(t, StatusResolved, report.Status)

	// Flat relabeling: resolved back to under-review is allowed.
	require.NoError(t, report.TransitionStatus(StatusUnderReview, admin))
	assert.Equal(t, StatusUnderReview, report.Status)
}

func TestValidStatus(t *testing.T) {
	for _, s := range []ReportStatus{StatusSubmitted, StatusUnderReview, StatusResolved, StatusDismissed} {
		assert.True(t, ValidStatus(s), string(s))
	}
	assert.False(t, ValidStatus("closed"))
	assert.False(t, ValidStatus(""))
}
