package dashboard

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"afyajirani-backend/internal/access"
	"afyajirani-backend/internal/aggregate"
	"afyajirani-backend/internal/analytics"
	"afyajirani-backend/internal/apperr"
	"afyajirani-backend/internal/models"
	"afyajirani-backend/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var (
	_ Insights            = (*fakeInsights)(nil)
	_ CaseViews           = (*fakeCases)(nil)
	_ PatientDirectory    = (*fakePatients)(nil)
	_ store.ContentStore  = (*fakeContent)(nil)
	_ store.HospitalStore = (*fakeHospitals)(nil)
)

type fakeInsights struct {
	failRisk     bool
	predicted    []string
	riskLocation string
	mu           sync.Mutex
}

func (f *fakeInsights) Predict(_ context.Context, disease string, days int) (*analytics.Prediction, error) {
	f.mu.Lock()
	f.predicted = append(f.predicted, disease)
	f.mu.Unlock()
	pts := make([]analytics.PredictionPoint, days)
	for i := range pts {
		pts[i] = analytics.PredictionPoint{DaysFromNow: i, PredictedCases: 1.4}
	}
	return &analytics.Prediction{Disease: disease, Predictions: pts}, nil
}

func (f *fakeInsights) Risk(_ context.Context, location string, _ int) (*analytics.RiskReport, error) {
	f.mu.Lock()
	f.riskLocation = location
	f.mu.Unlock()
	if f.failRisk {
		return nil, apperr.Analytics(analytics.MsgRisk, errors.New("status 500"))
	}
	return &analytics.RiskReport{RiskScores: map[string]analytics.Risk{"Cholera": {Risk: "low"}}}, nil
}

func (f *fakeInsights) Hotspots(context.Context, int, int) ([]analytics.Hotspot, error) {
	return []analytics.Hotspot{}, nil
}

func (f *fakeInsights) PersonalizedTips(context.Context, string) ([]string, error) {
	return []string{"Sleep under a treated net"}, nil
}

type fakeCases struct{}

func (fakeCases) Outbreaks(context.Context, string, int) ([]models.Case, error) {
	return []models.Case{{Disease: "Cholera", Location: "Kibera"}}, nil
}

func (fakeCases) Trends(context.Context) (aggregate.Series, error) {
	return aggregate.Summarize(nil, time.Date(2024, 6, 7, 0, 0, 0, 0, time.UTC)), nil
}

type fakePatients struct{}

func (fakePatients) Patients(_ context.Context, actor access.Actor) ([]models.Patient, error) {
	return []models.Patient{{ID: 1, HospitalID: actor.HospitalID}}, nil
}

type fakeContent struct {
	err error
}

func (f fakeContent) ListTips(context.Context) ([]models.Tip, error)               { return nil, f.err }
func (f fakeContent) ListClinics(context.Context, string) ([]models.Clinic, error) { return nil, f.err }
func (f fakeContent) ListHelplines(context.Context) ([]models.Helpline, error)     { return nil, f.err }
func (f fakeContent) ListFAQ(context.Context) ([]models.FAQ, error)                { return nil, f.err }
func (fakeContent) CreateTip(context.Context, *models.Tip) error                   { return nil }
func (fakeContent) CreateClinic(context.Context, *models.Clinic) error             { return nil }
func (fakeContent) CreateHelpline(context.Context, *models.Helpline) error         { return nil }
func (fakeContent) CreateFAQ(context.Context, *models.FAQ) error                   { return nil }

type fakeHospitals struct {
	store.HospitalStore
}

func (fakeHospitals) ListApplications(context.Context, string) ([]models.HospitalApplication, error) {
	return []models.HospitalApplication{{ID: 1, Status: models.ApplicationPending}}, nil
}

func (fakeHospitals) ListHospitals(context.Context) ([]models.Hospital, error) {
	return []models.Hospital{{ID: 1}, {ID: 2}}, nil
}

type fakeUsers struct {
	store.UserStore
}

func (fakeUsers) CountByRole(context.Context) (map[string]int64, error) {
	return map[string]int64{models.RoleDoctor: 3}, nil
}

type fakeCaseStats struct {
	store.CaseStore
}

func (fakeCaseStats) CountByDisease(context.Context) (map[string]int64, error) {
	return nil, apperr.Data("Failed to count cases", errors.New("timeout"))
}

type fakeAudit struct {
	store.AuditStore
}

func (fakeAudit) Recent(context.Context, int) ([]models.AuditLog, error) {
	return []models.AuditLog{{Action: "application_approved"}}, nil
}

func sources(insights *fakeInsights, contentErr error) Sources {
	return Sources{
		Insights:  insights,
		Cases:     fakeCases{},
		Patients:  fakePatients{},
		Content:   fakeContent{err: contentErr},
		Hospitals: fakeHospitals{},
		Users:     fakeUsers{},
		CaseStats: fakeCaseStats{},
		Audit:     fakeAudit{},
	}
}

func names(d *Dashboard) []string {
	out := make([]string, len(d.Panels))
	for i, p := range d.Panels {
		out[i] = p.Name
	}
	return out
}

func TestCommunityDashboard(t *testing.T) {
	insights := &fakeInsights{}
	c := New(sources(insights, nil), zap.NewNop())

	d, err := c.Compose(context.Background(), Community, access.Authenticated(1, models.RoleCommunity, nil), Params{})
	require.NoError(t, err)

	assert.Equal(t, []string{"outbreaks", "tips", "clinics", "helplines", "faq", "prediction", "risk", "hotspots", "personalized_tips"}, names(d))
	for _, p := range d.Panels {
		assert.True(t, p.OK, p.Name)
	}

	pred, ok := d.Panel("prediction")
	require.True(t, ok)
	view := pred.Data.(PredictionView)
	assert.Equal(t, models.DiseaseMalaria, view.Disease)
	assert.Equal(t, 10, view.PredictedTotal) // 7 * 1.4 = 9.8
	assert.Equal(t, DefaultLocation, insights.riskLocation)
}

func TestFailingPanelDoesNotBlockSiblings(t *testing.T) {
	c := New(sources(&fakeInsights{failRisk: true}, apperr.Data("Failed to load tips", errors.New("db down"))), zap.NewNop())

	d, err := c.Compose(context.Background(), Community, access.Authenticated(1, models.RoleCommunity, nil), Params{})
	require.NoError(t, err)

	risk, _ := d.Panel("risk")
	assert.False(t, risk.OK)
	assert.Equal(t, analytics.MsgRisk, risk.Error)
	assert.Nil(t, risk.Data)

	tips, _ := d.Panel("tips")
	assert.False(t, tips.OK)
	assert.Equal(t, "Failed to load tips", tips.Error)

	for _, name := range []string{"outbreaks", "prediction", "hotspots", "personalized_tips"} {
		p, _ := d.Panel(name)
		assert.True(t, p.OK, name)
	}
}

func TestClinicianDashboardUsesSelectedDisease(t *testing.T) {
	insights := &fakeInsights{}
	c := New(sources(insights, nil), zap.NewNop())
	hospitalID := uint64(4)
	doctor := access.Authenticated(2, models.RoleDoctor, &hospitalID)

	d, err := c.Compose(context.Background(), Clinician, doctor, Params{})
	require.NoError(t, err)
	assert.Equal(t, []string{"trends", "prediction", "risk", "hotspots", "personalized_tips", "patients"}, names(d))

	_, err = c.Compose(context.Background(), Clinician, doctor, Params{Disease: models.DiseaseCOVID, Location: "Kisumu"})
	require.NoError(t, err)

	assert.Equal(t, []string{models.DiseaseCholera, models.DiseaseCOVID}, insights.predicted)
	assert.Equal(t, "Kisumu", insights.riskLocation)

	trends, _ := d.Panel("trends")
	assert.Len(t, trends.Data.(aggregate.Series).CasesOverTime, 7)
}

func TestAdminDashboardStatsFailureIsInline(t *testing.T) {
	c := New(sources(&fakeInsights{}, nil), zap.NewNop())

	d, err := c.Compose(context.Background(), Admin, access.Authenticated(1, models.RoleAdmin, nil), Params{})
	require.NoError(t, err)

	stats, _ := d.Panel("stats")
	assert.False(t, stats.OK)
	assert.Equal(t, "Failed to count cases", stats.Error)

	pending, _ := d.Panel("pending_applications")
	assert.True(t, pending.OK)
	audit, _ := d.Panel("audit_log")
	assert.True(t, audit.OK)
}

// barriers returns n panels that only succeed when all n are in flight
// together.
func barriers(names []string) []panelSpec {
	var started sync.WaitGroup
	started.Add(len(names))
	specs := make([]panelSpec, len(names))
	for i, name := range names {
		specs[i] = panelSpec{name: name, fetch: func(ctx context.Context, _ access.Actor, _ Params) (interface{}, error) {
			started.Done()
			done := make(chan struct{})
			go func() { started.Wait(); close(done) }()
			select {
			case <-done:
				return name, nil
			case <-time.After(2 * time.Second):
				return nil, errors.New("panels ran one after another")
			}
		}}
	}
	return specs
}

func TestPanelsRunConcurrently(t *testing.T) {
	c := &Composer{
		variants: map[Variant][]panelSpec{Admin: barriers([]string{"a", "b", "c"})},
		logger:   zap.NewNop(),
	}

	d, err := c.Compose(context.Background(), Admin, access.Authenticated(1, models.RoleAdmin, nil), Params{})
	require.NoError(t, err)
	for _, p := range d.Panels {
		assert.True(t, p.OK, p.Error)
	}
}

func TestEveryVariantStartsAllPanelsAtOnce(t *testing.T) {
	std := New(sources(&fakeInsights{}, nil), zap.NewNop())
	require.Len(t, std.variants[Community], 9)

	for v, specs := range std.variants {
		t.Run(string(v), func(t *testing.T) {
			names := make([]string, len(specs))
			for i, spec := range specs {
				names[i] = spec.name
			}
			c := &Composer{variants: map[Variant][]panelSpec{v: barriers(names)}, logger: zap.NewNop()}

			d, err := c.Compose(context.Background(), v, access.Authenticated(1, models.RoleAdmin, nil), Params{})
			require.NoError(t, err)
			require.Len(t, d.Panels, len(specs))
			for _, p := range d.Panels {
				assert.True(t, p.OK, p.Name+": "+p.Error)
			}
		})
	}
}

func TestCancelledRequestDiscardsDashboard(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	sawCancel := make(chan bool, 1)
	c := &Composer{
		variants: map[Variant][]panelSpec{Admin: {{name: "slow", fetch: func(ctx context.Context, _ access.Actor, _ Params) (interface{}, error) {
			cancel()
			<-ctx.Done()
			sawCancel <- true
			return nil, ctx.Err()
		}}}},
		logger: zap.NewNop(),
	}

	d, err := c.Compose(ctx, Admin, access.Anonymous, Params{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, d)
	assert.True(t, <-sawCancel, "the in-flight fetch observed the cancellation")
}

func TestUnknownVariant(t *testing.T) {
	c := New(sources(&fakeInsights{}, nil), zap.NewNop())
	_, err := c.Compose(context.Background(), Variant("finance"), access.Anonymous, Params{})
	assert.Error(t, err)
}
