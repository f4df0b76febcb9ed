package handler

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"crm-commissions/internal/database/models"
	proto "crm-commissions/proto/protogen/commissions"
)

func TestDeclencherReprise(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	resp, err := env.handler.DeclencherReprise(ctx, &proto.DeclencherRepriseRequest{
		CommissionId: "com-1",
		TypeReprise:  "IMPAYE",
		Motif:        "echeance rejetee",
	})
	require.NoError(t, err)
	assert.True(t, resp.SuspendRecurrence)
	assert.Equal(t, "impaye", resp.Reprise.TypeReprise)
	assert.Equal(t, "en_attente", resp.Reprise.Statut)
	assert.Equal(t, "30.00", resp.Reprise.MontantReprise)
	assert.Equal(t, "100.00", resp.Reprise.MontantOriginal)
	assert.Equal(t, "30.00", resp.Reprise.TauxReprise)
	assert.Equal(t, "2026-02", resp.Reprise.PeriodeApplication)
	assert.True(t, testNow.Equal(resp.Reprise.DateEvenement.AsTime()))

	var contrat models.Contrat
	require.NoError(t, env.db.First(&contrat, "id = ?", "contrat-1").Error)
	assert.True(t, contrat.RecurrenceSuspendue)
	assert.Equal(t, 1.0, testutil.ToFloat64(env.metrics.ReprisesDeclenchees.WithLabelValues("impaye")))

	logs, err := env.handler.GetAuditLogs(ctx, &proto.GetAuditLogsRequest{OrganisationId: "org-1", Scope: "recurrence"})
	require.NoError(t, err)
	require.Len(t, logs.Logs, 1)
	assert.Equal(t, "recurrence_stopped", logs.Logs[0].Action)
}

func TestDeclencherReprise_ResiliationKeepsRecurrence(t *testing.T) {
	env := newTestEnv(t)

	resp, err := env.handler.DeclencherReprise(context.Background(), &proto.DeclencherRepriseRequest{
		CommissionId:       "com-2",
		TypeReprise:        "resiliation",
		PeriodeApplication: "2026-03",
	})
	require.NoError(t, err)
	assert.False(t, resp.SuspendRecurrence)
	assert.Equal(t, "2026-03", resp.Reprise.PeriodeApplication)
	assert.Equal(t, "200.00", resp.Reprise.MontantOriginal)

	var contrat models.Contrat
	require.NoError(t, env.db.First(&contrat, "id = ?", "contrat-2").Error)
	assert.False(t, contrat.RecurrenceSuspendue)
}

func TestDeclencherReprise_Errors(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.handler.DeclencherReprise(ctx, &proto.DeclencherRepriseRequest{TypeReprise: "impaye"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = env.handler.DeclencherReprise(ctx, &proto.DeclencherRepriseRequest{CommissionId: "missing", TypeReprise: "impaye"})
	assert.Equal(t, codes.NotFound, status.Code(err))

	_, err = env.handler.DeclencherReprise(ctx, &proto.DeclencherRepriseRequest{CommissionId: "com-1", TypeReprise: "impaye", PeriodeApplication: "02-2026"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	var count int64
	require.NoError(t, env.db.Model(&models.RepriseCommission{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestRegulariserReprise(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	bordereauID := env.generate(t).Bordereau.Id

	_, err := env.handler.GetBordereau(ctx, &proto.GetBordereauRequest{Id: bordereauID, OrganisationId: "org-1"})
	require.NoError(t, err)

	resp, err := env.handler.RegulariserReprise(ctx, &proto.RegulariserRepriseRequest{RepriseId: "rep-1", Reglee: true})
	require.NoError(t, err)
	require.NotNil(t, resp.Ligne)
	assert.Equal(t, "regularisation", resp.Ligne.TypeLigne)
	assert.Equal(t, "30.00", resp.Ligne.MontantNet)
	assert.Equal(t, "rep-1", resp.Ligne.RepriseId)
	assert.Equal(t, int32(5), resp.Ligne.Ordre)
	require.NotNil(t, resp.Reprise.DateRegularisation)
	assert.False(t, env.mr.Exists(COMMISSION_BORDEREAU_CACHE_PREFIX+bordereauID))
	assert.Equal(t, 1.0, testutil.ToFloat64(env.metrics.RegularisationLignes.WithLabelValues("reprise")))

	var contrat models.Contrat
	require.NoError(t, env.db.First(&contrat, "id = ?", "contrat-1").Error)
	assert.False(t, contrat.RecurrenceSuspendue)

	got, err := env.handler.GetBordereau(ctx, &proto.GetBordereauRequest{Id: bordereauID, OrganisationId: "org-1"})
	require.NoError(t, err)
	assert.Equal(t, int32(6), got.Bordereau.NombreLignes)
	assert.Equal(t, "-40.00", got.Bordereau.TotalNetAPayer, "regularisation lines stay out of the totals")

	_, err = env.handler.ValiderBordereau(ctx, &proto.ValiderBordereauRequest{Id: bordereauID, ValidePar: "manager-1", OrganisationId: "org-1"})
	require.NoError(t, err)

	_, err = env.handler.RegulariserReprise(ctx, &proto.RegulariserRepriseRequest{RepriseId: "rep-1", Reglee: true})
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))
}

func TestRegulariserReprise_NotSettled(t *testing.T) {
	env := newTestEnv(t)
	env.generate(t)

	resp, err := env.handler.RegulariserReprise(context.Background(), &proto.RegulariserRepriseRequest{RepriseId: "rep-1"})
	require.NoError(t, err)
	assert.Nil(t, resp.Ligne)
	assert.Nil(t, resp.Reprise.DateRegularisation)

	var contrat models.Contrat
	require.NoError(t, env.db.First(&contrat, "id = ?", "contrat-1").Error)
	assert.True(t, contrat.RecurrenceSuspendue)
}

func TestRegulariserReprise_NotApplied(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.handler.RegulariserReprise(context.Background(), &proto.RegulariserRepriseRequest{RepriseId: "rep-1", Reglee: true})
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))

	_, err = env.handler.RegulariserReprise(context.Background(), &proto.RegulariserRepriseRequest{})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestTauxReprise(t *testing.T) {
	assert.Equal(t, "30", tauxReprise(dec("30"), dec("100")).String())
	assert.Equal(t, "33.33", tauxReprise(dec("10"), dec("30")).String())
	assert.True(t, tauxReprise(dec("12"), dec("0")).IsZero())
}
