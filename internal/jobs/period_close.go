package jobs

import (
	"context"
	"time"

	"crm-commissions/internal/logger"
	"crm-commissions/internal/metrics"
	"crm-commissions/internal/services/commissions/engine"
	"crm-commissions/internal/services/commissions/repository"
	proto "crm-commissions/proto/protogen/commissions"
)

// SystemUser is recorded as cree_par on statements generated by the scheduler.
const SystemUser = "system:period-close"

type PendingFinder interface {
	FindApporteursSansBordereau(ctx context.Context, periode string) ([]repository.ApporteurPeriode, error)
}

type BordereauGenerator interface {
	GenererBordereau(ctx context.Context, req *proto.GenererBordereauRequest) (*proto.GenererBordereauResponse, error)
}

// PeriodCloseResult counts the outcome of one run.
type PeriodCloseResult struct {
	Periode   string
	Generated int
	Failed    int
}

// PeriodCloseJob generates the statements of the previous period for every apporteur that
// has commissions but no bordereau yet.
type PeriodCloseJob struct {
	finder    PendingFinder
	generator BordereauGenerator
	log       logger.Logger
	metrics   *metrics.Metrics
	now       func() time.Time
}

func NewPeriodCloseJob(finder PendingFinder, generator BordereauGenerator, log logger.Logger, m *metrics.Metrics) *PeriodCloseJob {
	if log == nil {
		log = logger.Nop()
	}
	if m == nil {
		m = metrics.Default
	}
	return &PeriodCloseJob{
		finder:    finder,
		generator: generator,
		log:       log,
		metrics:   m,
		now:       time.Now,
	}
}

// PreviousPeriode returns the YYYY-MM period before the month containing t.
func PreviousPeriode(t time.Time) string {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return engine.PeriodeOf(first.AddDate(0, -1, 0))
}

func (j *PeriodCloseJob) Run(ctx context.Context) (PeriodCloseResult, error) {
	return j.RunPeriode(ctx, PreviousPeriode(j.now()))
}

// RunPeriode walks the pending pairs one at a time. A failing pair is logged and counted,
// the batch carries on.
func (j *PeriodCloseJob) RunPeriode(ctx context.Context, periode string) (PeriodCloseResult, error) {
	result := PeriodCloseResult{Periode: periode}
	pending, err := j.finder.FindApporteursSansBordereau(ctx, periode)
	if err != nil {
		j.metrics.JobRuns.WithLabelValues("error").Inc()
		return result, err
	}
	j.log.Info("period close started", "periode", periode, "pending", len(pending))

	for _, p := range pending {
		if err := ctx.Err(); err != nil {
			j.metrics.JobRuns.WithLabelValues("error").Inc()
			return result, err
		}
		resp, err := j.generator.GenererBordereau(ctx, &proto.GenererBordereauRequest{
			OrganisationId: p.OrganisationID,
			ApporteurId:    p.ApporteurID,
			Periode:        periode,
			CreePar:        SystemUser,
		})
		if err != nil {
			result.Failed++
			j.log.Error("period close failed for apporteur",
				"organisation_id", p.OrganisationID,
				"apporteur_id", p.ApporteurID,
				"periode", periode,
				"error", err,
			)
			continue
		}
		result.Generated++
		j.log.Debug("bordereau generated", "bordereau_id", resp.Bordereau.Id, "apporteur_id", p.ApporteurID)
	}

	outcome := "success"
	if result.Failed > 0 {
		outcome = "partial"
	}
	j.metrics.JobRuns.WithLabelValues(outcome).Inc()
	j.log.Info("period close finished", "periode", periode, "generated", result.Generated, "failed", result.Failed)
	return result, nil
}
