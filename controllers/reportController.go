package controllers

import (
	"errors"
	"net/http"

	"denuncias-be/middlewares"
	"denuncias-be/models"
	"denuncias-be/repository"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReportController serves the incident report endpoints against an injected
// repository, so storage can be swapped out in tests.
type ReportController struct {
	repo repository.ReportRepository
}

func NewReportController(repo repository.ReportRepository) *ReportController {
	return &ReportController{repo: repo}
}

// pointInput keeps coordinates as pointers so a point missing either value is
// rejected instead of defaulting to zero.
type pointInput struct {
	Lat *float64 `json:"lat"`
	Lng *float64 `json:"lng"`
}

type createReportInput struct {
	Type              string       `json:"type"`
	Description       string       `json:"description" binding:"max=2000"`
	Date              string       `json:"date,omitempty"`
	Time              string       `json:"time,omitempty"`
	Witnesses         string       `json:"witnesses,omitempty"`
	AdditionalDetails string       `json:"additionalDetails,omitempty"`
	StolenItems       string       `json:"stolenItems,omitempty"`
	ApproximateAmount string       `json:"approximateAmount,omitempty"`
	Points            []pointInput `json:"points"`
	ExactLocation     *pointInput  `json:"exactLocation,omitempty"`
	Images            []string     `json:"images,omitempty"`
}

// errorKind maps taxonomy errors to the stable kind string clients switch on.
func errorKind(err error) string {
	switch {
	case errors.Is(err, models.ErrInvalidCoordinate):
		return "invalid-coordinate"
	case errors.Is(err, models.ErrAreaFull):
		return "area-full"
	case errors.Is(err, models.ErrMissingRequiredField):
		return "missing-required-field"
	case errors.Is(err, models.ErrInvalidGeometry):
		return "invalid-geometry"
	case errors.Is(err, models.ErrInvalidTransition):
		return "invalid-transition"
	case errors.Is(err, models.ErrForbidden):
		return "forbidden"
	case errors.Is(err, models.ErrNotFound):
		return "not-found"
	default:
		return "persistence-error"
	}
}

func errorStatus(err error) int {
	switch errorKind(err) {
	case "forbidden":
		return http.StatusForbidden
	case "not-found":
		return http.StatusNotFound
	case "persistence-error":
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

func abortWithError(c *gin.Context, err error) {
	c.JSON(errorStatus(err), gin.H{
		"success": false,
		"kind":    errorKind(err),
		"error":   err.Error(),
	})
}

// reportJSON is the wire shape of a stored report. The reporter id is
// omitted when redacted.
func reportJSON(r models.Report) gin.H {
	out := gin.H{
		"id":          r.ID,
		"type":        r.Type,
		"description": r.Description,
		"status":      r.Status,
		"points":      r.RiskArea.Points(),
		"createdAt":   r.CreatedAt,
	}
	if !r.ReporterID.IsZero() {
		out["reporterId"] = r.ReporterID
	}
	if r.Date != "" {
		out["date"] = r.Date
	}
	if r.Time != "" {
		out["time"] = r.Time
	}
	if r.Witnesses != "" {
		out["witnesses"] = r.Witnesses
	}
	if r.AdditionalDetails != "" {
		out["additionalDetails"] = r.AdditionalDetails
	}
	if r.StolenItems != "" {
		out["stolenItems"] = r.StolenItems
	}
	if r.ApproximateAmount != "" {
		out["approximateAmount"] = r.ApproximateAmount
	}
	if p, ok := r.ExactLocation.Point(); ok {
		out["exactLocation"] = p
	}
	if len(r.Images) > 0 {
		out["images"] = r.Images
	}
	return out
}

// CreateReport handles the creation of a new incident report
func (rc *ReportController) CreateReport(c *gin.Context) {
	caller, ok := middlewares.CallerFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var input createReportInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := models.CanCreateReport(caller); err != nil {
		abortWithError(c, err)
		return
	}

	area, err := riskAreaFromInput(input.Points)
	if err != nil {
		abortWithError(c, err)
		return
	}

	var loc models.ExactLocation
	if input.ExactLocation != nil {
		p, err := models.NewGeoPoint(input.ExactLocation.Lat, input.ExactLocation.Lng)
		if err != nil {
			abortWithError(c, err)
			return
		}
		loc = models.SetExactLocation(p)
	}

	meta := models.ReportMetadata{
		Type:              models.ReportType(input.Type),
		Description:       input.Description,
		Date:              input.Date,
		Time:              input.Time,
		Witnesses:         input.Witnesses,
		AdditionalDetails: input.AdditionalDetails,
		StolenItems:       input.StolenItems,
		ApproximateAmount: input.ApproximateAmount,
	}

	report, err := models.NewReport(caller.UserID, meta, area, loc, input.Images)
	if err != nil {
		abortWithError(c, err)
		return
	}

	stored, err := rc.repo.Save(c.Request.Context(), report)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Reporte creado exitosamente",
		"report":  reportJSON(*stored),
	})
}

func riskAreaFromInput(points []pointInput) (models.RiskArea, error) {
	var area models.RiskArea
	if len(points) > models.MaxRiskAreaPoints {
		return area, models.ErrAreaFull
	}
	for _, in := range points {
		p, err := models.NewGeoPoint(in.Lat, in.Lng)
		if err != nil {
			return area, err
		}
		next, err := area.AddPoint(p)
		if err != nil {
			return area, err
		}
		area = next
	}
	return area, nil
}

// MyReports lists the caller's own reports, newest first. The optional
// userId query parameter is rejected unless it names the caller.
func (rc *ReportController) MyReports(c *gin.Context) {
	caller, ok := middlewares.CallerFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	ownerID := caller.UserID
	if raw := c.Query("userId"); raw != "" {
		parsed, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
			return
		}
		ownerID = parsed
	}

	if err := models.CanListOwn(caller, ownerID); err != nil {
		abortWithError(c, err)
		return
	}

	reports, err := rc.repo.FindByOwner(c.Request.Context(), ownerID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	out := make([]gin.H, 0, len(reports))
	for _, r := range reports {
		out = append(out, reportJSON(r))
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "reports": out})
}

// AllReports lists every report with reporter identity, for administrators.
func (rc *ReportController) AllReports(c *gin.Context) {
	caller, ok := middlewares.CallerFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if err := models.CanListAll(caller); err != nil {
		abortWithError(c, err)
		return
	}

	entries, err := rc.repo.FindAll(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}

	out := make([]gin.H, 0, len(entries))
	for _, e := range entries {
		item := reportJSON(e.Report)
		item["reporter"] = e.Reporter
		out = append(out, item)
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "reports": out})
}

// PublicReports lists every report with reporter identity redacted. Still
// behind authentication: "public" means identity-free, not anonymous access.
func (rc *ReportController) PublicReports(c *gin.Context) {
	caller, ok := middlewares.CallerFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if err := models.CanListPublic(caller); err != nil {
		abortWithError(c, err)
		return
	}

	reports, err := rc.repo.FindPublic(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}

	out := make([]gin.H, 0, len(reports))
	for _, r := range reports {
		out = append(out, reportJSON(r))
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "reports": out})
}

// UpdateStatus relabels a report's status. Administrator only.
func (rc *ReportController) UpdateStatus(c *gin.Context) {
	caller, ok := middlewares.CallerFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	reportID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report ID"})
		return
	}

	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := models.CanUpdateStatus(caller); err != nil {
		abortWithError(c, err)
		return
	}

	newStatus := models.ReportStatus(input.Status)
	if !models.ValidStatus(newStatus) {
		abortWithError(c, models.ErrInvalidTransition)
		return
	}

	updated, err := rc.repo.UpdateStatus(c.Request.Context(), reportID, newStatus)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"report":  reportJSON(*updated),
	})
}
