package services

import (
	"context"
	"time"

	"afyajirani-backend/internal/access"
	"afyajirani-backend/internal/aggregate"
	"afyajirani-backend/internal/analytics"
	"afyajirani-backend/internal/apperr"
	"afyajirani-backend/internal/models"
	"afyajirani-backend/internal/store"
	"afyajirani-backend/pkg/utils"

	"go.uber.org/zap"
)

// CaseForwarder hands a stored case to the analytics service.
type CaseForwarder interface {
	ReportCase(ctx context.Context, report analytics.CaseReport) error
}

// Reports records clinician case reports and serves the case views.
type Reports struct {
	cases     store.CaseStore
	forwarder CaseForwarder
	loc       *time.Location
	now       func() time.Time
	logger    *zap.Logger
}

func NewReports(cases store.CaseStore, forwarder CaseForwarder, loc *time.Location, logger *zap.Logger) *Reports {
	if loc == nil {
		loc = time.UTC
	}
	return &Reports{cases: cases, forwarder: forwarder, loc: loc, now: time.Now, logger: logger.Named("reports")}
}

type SubmitResult struct {
	Case            *models.Case `json:"case"`
	AnalyticsSynced bool         `json:"analytics_synced"`
}

// Submit stores the case, then forwards it to the analytics service. The
// stored row is the record; a failed forward is logged and reported back
// as analytics_synced=false.
func (r *Reports) Submit(ctx context.Context, in models.CreateCaseInput, actor access.Actor) (*SubmitResult, error) {
	if _, err := time.ParseInLocation(models.DateLayout, in.Date, r.loc); err != nil {
		return nil, apperr.Validation("Date must be YYYY-MM-DD")
	}
	if (in.Lat == nil) != (in.Lng == nil) {
		return nil, apperr.Validation("Latitude and longitude must be given together")
	}

	c := &models.Case{
		Disease:    in.Disease,
		Symptoms:   utils.CleanText(in.Symptoms),
		Location:   utils.CleanText(in.Location),
		AgeGroup:   in.AgeGroup,
		Gender:     utils.CleanText(in.Gender),
		Date:       in.Date,
		Lat:        in.Lat,
		Lng:        in.Lng,
		DoctorName: utils.CleanText(in.DoctorName),
		ClinicName: utils.CleanText(in.ClinicName),
		ReportedBy: actor.UserID,
		HospitalID: actor.HospitalID,
	}
	if in.PatientCode != nil {
		if code := utils.CleanText(*in.PatientCode); code != "" {
			c.PatientCode = &code
		}
	}
	if c.Symptoms == "" || c.Location == "" {
		return nil, apperr.Validation("Symptoms and location are required")
	}

	if err := r.cases.Create(ctx, c); err != nil {
		return nil, err
	}

	synced := true
	if err := r.forwarder.ReportCase(ctx, analytics.CaseReport{
		Disease:     c.Disease,
		Symptoms:    c.Symptoms,
		Location:    c.Location,
		AgeGroup:    c.AgeGroup,
		Gender:      c.Gender,
		Date:        c.Date,
		PatientCode: c.PatientCode,
		DoctorName:  c.DoctorName,
		ClinicName:  c.ClinicName,
	}); err != nil {
		synced = false
		r.logger.Warn("case not forwarded to analytics", zap.Uint64("case_id", c.ID), zap.Error(err))
	}

	return &SubmitResult{Case: c, AnalyticsSynced: synced}, nil
}

// Outbreaks lists recent cases for the community feed.
func (r *Reports) Outbreaks(ctx context.Context, search string, limit int) ([]models.Case, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return r.cases.List(ctx, models.CaseFilter{Search: search, Limit: limit})
}

// Trends aggregates every stored case into the chart series, with the
// seven-day window ending today in the configured timezone.
func (r *Reports) Trends(ctx context.Context) (aggregate.Series, error) {
	rows, err := r.cases.List(ctx, models.CaseFilter{})
	if err != nil {
		return aggregate.Series{}, err
	}
	return aggregate.Summarize(rows, r.now().In(r.loc)), nil
}
