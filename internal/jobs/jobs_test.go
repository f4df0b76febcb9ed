package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crm-commissions/internal/metrics"
	"crm-commissions/internal/services/commissions/repository"
	proto "crm-commissions/proto/protogen/commissions"
)

type fakeFinder struct {
	pairs   []repository.ApporteurPeriode
	err     error
	periode string
}

func (f *fakeFinder) FindApporteursSansBordereau(_ context.Context, periode string) ([]repository.ApporteurPeriode, error) {
	f.periode = periode
	return f.pairs, f.err
}

type fakeGenerator struct {
	calls []*proto.GenererBordereauRequest
	fail  map[string]bool
}

func (g *fakeGenerator) GenererBordereau(_ context.Context, req *proto.GenererBordereauRequest) (*proto.GenererBordereauResponse, error) {
	g.calls = append(g.calls, req)
	if g.fail[req.ApporteurId] {
		return nil, errors.New("generation failed")
	}
	return &proto.GenererBordereauResponse{Bordereau: &proto.Bordereau{Id: "b-" + req.ApporteurId}}, nil
}

func TestPreviousPeriode(t *testing.T) {
	assert.Equal(t, "2026-02", PreviousPeriode(time.Date(2026, 3, 1, 3, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2025-12", PreviousPeriode(time.Date(2026, 1, 31, 23, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2026-02", PreviousPeriode(time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)))
}

func TestPeriodCloseJob_Run(t *testing.T) {
	finder := &fakeFinder{pairs: []repository.ApporteurPeriode{
		{OrganisationID: "org-1", ApporteurID: "app-1"},
		{OrganisationID: "org-1", ApporteurID: "app-2"},
		{OrganisationID: "org-2", ApporteurID: "app-3"},
	}}
	gen := &fakeGenerator{fail: map[string]bool{"app-2": true}}
	m := metrics.New(prometheus.NewRegistry())
	job := NewPeriodCloseJob(finder, gen, nil, m)
	job.now = func() time.Time { return time.Date(2026, 3, 1, 3, 0, 0, 0, time.UTC) }

	result, err := job.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2026-02", finder.periode)
	assert.Equal(t, PeriodCloseResult{Periode: "2026-02", Generated: 2, Failed: 1}, result)

	require.Len(t, gen.calls, 3, "a failing pair does not stop the batch")
	for _, call := range gen.calls {
		assert.Equal(t, "2026-02", call.Periode)
		assert.Equal(t, SystemUser, call.CreePar)
	}
	assert.Equal(t, "org-2", gen.calls[2].OrganisationId)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.JobRuns.WithLabelValues("partial")))
}

func TestPeriodCloseJob_FinderError(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	job := NewPeriodCloseJob(&fakeFinder{err: errors.New("db down")}, &fakeGenerator{}, nil, m)

	_, err := job.RunPeriode(context.Background(), "2026-02")
	require.Error(t, err)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.JobRuns.WithLabelValues("error")))
}

func TestPeriodCloseJob_StopsOnCancelledContext(t *testing.T) {
	finder := &fakeFinder{pairs: []repository.ApporteurPeriode{{OrganisationID: "org-1", ApporteurID: "app-1"}}}
	gen := &fakeGenerator{}
	job := NewPeriodCloseJob(finder, gen, nil, metrics.New(prometheus.NewRegistry()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := job.RunPeriode(ctx, "2026-02")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, gen.calls)
}

func TestCronManager_SetupJobs(t *testing.T) {
	job := NewPeriodCloseJob(&fakeFinder{}, &fakeGenerator{}, nil, metrics.New(prometheus.NewRegistry()))
	cm := NewCronManager(job, nil)

	require.NoError(t, cm.SetupJobs("0 3 1 * *"))
	require.Len(t, cm.Entries(), 1)
	next := cm.Entries()[0].Schedule.Next(time.Date(2026, 2, 14, 0, 0, 0, 0, time.Local))
	assert.Equal(t, time.Date(2026, 3, 1, 3, 0, 0, 0, time.Local), next)

	assert.Error(t, NewCronManager(job, nil).SetupJobs("every month"))
}
