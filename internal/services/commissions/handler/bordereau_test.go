package handler

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	"crm-commissions/internal/database/models"
	proto "crm-commissions/proto/protogen/commissions"
)

func TestCalculerCommission(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	resp, err := env.handler.CalculerCommission(ctx, &proto.CalculerCommissionRequest{ContratId: "contrat-2"})
	require.NoError(t, err)
	assert.Equal(t, "bareme-std-v1", resp.Calcul.BaremeId)
	assert.Equal(t, "200.00", resp.Calcul.MontantBase)
	assert.Equal(t, "20.00", resp.Calcul.MontantCalcule)
	assert.Equal(t, "20.00", resp.Calcul.MontantTotal)
	assert.Equal(t, "pourcentage", resp.Calcul.TypeCalcul)

	resp, err = env.handler.CalculerCommission(ctx, &proto.CalculerCommissionRequest{ContratId: "contrat-2", MontantBase: 37})
	require.NoError(t, err)
	assert.Equal(t, "3.70", resp.Calcul.MontantCalcule)

	logs, err := env.handler.GetAuditLogs(ctx, &proto.GetAuditLogsRequest{RefId: "contrat-2", Action: "commission_calculated"})
	require.NoError(t, err)
	assert.Len(t, logs.Logs, 2)
}

func TestCalculerCommission_NoBaremeInForce(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.handler.CalculerCommission(context.Background(), &proto.CalculerCommissionRequest{
		ContratId: "contrat-1", DateCalcul: timestamppb.New(day(2024, 6, 1)),
	})
	assert.Equal(t, codes.NotFound, status.Code(err))

	_, err = env.handler.CalculerCommission(context.Background(), &proto.CalculerCommissionRequest{})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestGenererBordereau(t *testing.T) {
	env := newTestEnv(t)
	resp := env.generate(t)

	b := resp.Bordereau
	assert.Equal(t, "brouillon", b.Statut)
	assert.Equal(t, "2026-02", b.Periode)
	assert.Equal(t, "30.00", b.TotalBrut)
	assert.Equal(t, "30.00", b.TotalReprises)
	assert.Equal(t, "40.00", b.TotalAcomptes)
	assert.Equal(t, "-40.00", b.TotalNetAPayer)
	require.Len(t, b.Lignes, 5)
	assert.Equal(t, []string{"commission", "commission", "reprise", "prime", "acompte"}, typesOf(b.Lignes))

	assert.Equal(t, 2, int(resp.Summary.NombreCommissions))
	assert.Equal(t, 1, int(resp.Summary.NombreReprises))
	require.NotNil(t, resp.ReportNegatif)
	assert.Equal(t, "2026-03", resp.ReportNegatif.PeriodeCible)
	assert.Equal(t, "40.00", resp.ReportNegatif.MontantRestant)

	assert.Equal(t, 1.0, testutil.ToFloat64(env.metrics.BordereauxGeneres.WithLabelValues("success")))
}

func typesOf(lignes []*proto.LigneBordereau) []string {
	var types []string
	for _, l := range lignes {
		types = append(types, l.TypeLigne)
	}
	return types
}

func TestGenererBordereau_IncludesRecurrenceGeneratedBeforehand(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	generated, err := env.handler.GenererRecurrence(ctx, &proto.GenererRecurrenceRequest{
		ContratId: "contrat-3", EcheanceId: "ech-3", DateEncaissement: timestamppb.New(day(2026, 2, 5)),
	})
	require.NoError(t, err)
	require.True(t, generated.Creee)
	assert.Empty(t, generated.Recurrence.BordereauId)

	b := env.generate(t).Bordereau
	assert.Equal(t, []string{"commission", "commission", "reprise", "prime", "acompte"}, typesOf(b.Lignes))
	prime := b.Lignes[3]
	assert.Equal(t, "9.00", prime.MontantNet)
	assert.Equal(t, "REC-2026-02-1", prime.ContratReference)
	assert.Equal(t, "contrat-3", prime.ContratId)

	var recurrences []models.CommissionRecurrente
	require.NoError(t, env.db.Find(&recurrences, "contrat_id = ?", "contrat-3").Error)
	require.Len(t, recurrences, 1, "the collected installment is not generated twice")
	require.NotNil(t, recurrences[0].BordereauID)
	assert.Equal(t, b.Id, *recurrences[0].BordereauID)

	logs, err := env.handler.GetAuditLogs(ctx, &proto.GetAuditLogsRequest{RefId: generated.Recurrence.Id, Action: "recurrence_included"})
	require.NoError(t, err)
	require.Len(t, logs.Logs, 1)
	assert.Equal(t, b.Id, logs.Logs[0].AfterData.AsMap()["bordereauId"])
}

func TestGenererBordereau_AuditsSkippedRecurrence(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.db.Model(&models.Contrat{}).Where("id = ?", "contrat-3").Update("statut", "RESILIE").Error)

	b := env.generate(t).Bordereau
	assert.Equal(t, []string{"commission", "commission", "reprise", "acompte"}, typesOf(b.Lignes))

	logs, err := env.handler.GetAuditLogs(context.Background(), &proto.GetAuditLogsRequest{RefId: "ech-3", Scope: "recurrence"})
	require.NoError(t, err)
	require.Len(t, logs.Logs, 1)
	assert.Equal(t, "recurrence_skipped", logs.Logs[0].Action)
	assert.Equal(t, "contrat-3", logs.Logs[0].ContratId)
	assert.Equal(t, "CONTRAT_RESILIE", logs.Logs[0].Metadata.AsMap()["motif"])
}

func TestGenererBordereau_Errors(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.handler.GenererBordereau(ctx, &proto.GenererBordereauRequest{ApporteurId: "app-1", Periode: "2026-02"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = env.handler.GenererBordereau(ctx, &proto.GenererBordereauRequest{OrganisationId: "org-1", ApporteurId: "app-1", Periode: "2026-13"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	env.generate(t)
	_, err = env.handler.GenererBordereau(ctx, &proto.GenererBordereauRequest{OrganisationId: "org-1", ApporteurId: "app-1", Periode: "2026-02"})
	require.Error(t, err)
	assert.Equal(t, 2.0, testutil.ToFloat64(env.metrics.BordereauxGeneres.WithLabelValues("error")))

	var count int64
	require.NoError(t, env.db.Model(&models.BordereauCommission{}).Where("periode = ?", "2026-02").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestGenererBordereau_MissingBaremeRollsBack(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.db.Where("1 = 1").Delete(&models.BaremeCommission{}).Error)

	_, err := env.handler.GenererBordereau(context.Background(), &proto.GenererBordereauRequest{
		OrganisationId: "org-1", ApporteurId: "app-1", Periode: "2026-02",
	})
	assert.Equal(t, codes.NotFound, status.Code(err))

	var count int64
	require.NoError(t, env.db.Model(&models.BordereauCommission{}).Where("periode = ?", "2026-02").Count(&count).Error)
	assert.Zero(t, count)
	var reprise models.RepriseCommission
	require.NoError(t, env.db.First(&reprise, "id = ?", "rep-1").Error)
	assert.Equal(t, "en_attente", reprise.Statut)
}

func TestGetBordereau_Cache(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	id := env.generate(t).Bordereau.Id

	first, err := env.handler.GetBordereau(ctx, &proto.GetBordereauRequest{Id: id, OrganisationId: "org-1"})
	require.NoError(t, err)
	assert.Equal(t, 1.0, testutil.ToFloat64(env.metrics.CacheMisses.WithLabelValues("bordereau")))
	assert.True(t, env.mr.Exists(COMMISSION_BORDEREAU_CACHE_PREFIX+id))
	assert.Equal(t, DEFAULT_CACHE_TTL, env.mr.TTL(COMMISSION_BORDEREAU_CACHE_PREFIX+id))

	second, err := env.handler.GetBordereau(ctx, &proto.GetBordereauRequest{Id: id, OrganisationId: "org-1"})
	require.NoError(t, err)
	assert.Equal(t, 1.0, testutil.ToFloat64(env.metrics.CacheHits.WithLabelValues("bordereau")))
	assert.Equal(t, first.Bordereau.TotalNetAPayer, second.Bordereau.TotalNetAPayer)
	assert.Len(t, second.Bordereau.Lignes, 5)

	_, err = env.handler.GetBordereau(ctx, &proto.GetBordereauRequest{Id: "missing", OrganisationId: "org-1"})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestGetBordereau_ScopedByOrganisation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	id := env.generate(t).Bordereau.Id

	_, err := env.handler.GetBordereau(ctx, &proto.GetBordereauRequest{Id: id, OrganisationId: "org-2"})
	assert.Equal(t, codes.PermissionDenied, status.Code(err))

	_, err = env.handler.GetBordereau(ctx, &proto.GetBordereauRequest{Id: id, OrganisationId: "org-1"})
	require.NoError(t, err)

	_, err = env.handler.GetBordereau(ctx, &proto.GetBordereauRequest{Id: id, OrganisationId: "org-2"})
	assert.Equal(t, codes.PermissionDenied, status.Code(err), "a cached bordereau is still scoped")

	_, err = env.handler.GetBordereau(ctx, &proto.GetBordereauRequest{Id: id})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestGetBordereau_RedisDownFallsBackToDB(t *testing.T) {
	env := newTestEnv(t)
	id := env.generate(t).Bordereau.Id
	env.mr.Close()

	resp, err := env.handler.GetBordereau(context.Background(), &proto.GetBordereauRequest{Id: id, OrganisationId: "org-1"})
	require.NoError(t, err)
	assert.Equal(t, id, resp.Bordereau.Id)
}

func TestGetBordereau_UnreadableCacheEntry(t *testing.T) {
	env := newTestEnv(t)
	id := env.generate(t).Bordereau.Id
	require.NoError(t, env.mr.Set(COMMISSION_BORDEREAU_CACHE_PREFIX+id, "{not json"))

	resp, err := env.handler.GetBordereau(context.Background(), &proto.GetBordereauRequest{Id: id, OrganisationId: "org-1"})
	require.NoError(t, err)
	assert.Equal(t, "-40.00", resp.Bordereau.TotalNetAPayer)
}

func TestValiderBordereau(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	id := env.generate(t).Bordereau.Id

	_, err := env.handler.GetBordereau(ctx, &proto.GetBordereauRequest{Id: id, OrganisationId: "org-1"})
	require.NoError(t, err)

	resp, err := env.handler.ValiderBordereau(ctx, &proto.ValiderBordereauRequest{Id: id, ValidePar: "manager-1", OrganisationId: "org-1"})
	require.NoError(t, err)
	assert.Equal(t, "valide", resp.Bordereau.Statut)
	assert.Equal(t, "manager-1", resp.Bordereau.ValidePar)
	require.NotNil(t, resp.Bordereau.DateValidation)
	assert.True(t, testNow.Equal(resp.Bordereau.DateValidation.AsTime()))
	for _, l := range resp.Bordereau.Lignes {
		if l.TypeLigne == "commission" {
			assert.Equal(t, "validee", l.StatutLigne)
		}
	}
	assert.False(t, env.mr.Exists(COMMISSION_BORDEREAU_CACHE_PREFIX+id), "validation drops the cached draft")

	_, err = env.handler.ValiderBordereau(ctx, &proto.ValiderBordereauRequest{Id: id, ValidePar: "manager-1", OrganisationId: "org-1"})
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))

	_, err = env.handler.ValiderBordereau(ctx, &proto.ValiderBordereauRequest{Id: id, OrganisationId: "org-1"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestValiderBordereau_OtherOrganisation(t *testing.T) {
	env := newTestEnv(t)
	id := env.generate(t).Bordereau.Id

	_, err := env.handler.ValiderBordereau(context.Background(), &proto.ValiderBordereauRequest{Id: id, ValidePar: "manager-1", OrganisationId: "org-2"})
	assert.Equal(t, codes.PermissionDenied, status.Code(err))

	var row models.BordereauCommission
	require.NoError(t, env.db.First(&row, "id = ?", id).Error)
	assert.Equal(t, "brouillon", row.Statut)
}

func TestValiderBordereau_TamperedTotals(t *testing.T) {
	env := newTestEnv(t)
	id := env.generate(t).Bordereau.Id
	require.NoError(t, env.db.Model(&models.BordereauCommission{}).Where("id = ?", id).Update("total_brut", dec("31")).Error)

	_, err := env.handler.ValiderBordereau(context.Background(), &proto.ValiderBordereauRequest{Id: id, ValidePar: "manager-1", OrganisationId: "org-1"})
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))

	var row models.BordereauCommission
	require.NoError(t, env.db.First(&row, "id = ?", id).Error)
	assert.Equal(t, "brouillon", row.Statut)
}

func TestPreselectionnerLignes(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	encaissee := false
	require.NoError(t, env.db.Model(&models.Commission{}).Where("id = ?", "com-2").Update("echeance_encaissee", &encaissee).Error)

	b := env.generate(t).Bordereau
	com1, com2 := b.Lignes[0], b.Lignes[1]
	require.False(t, com2.Selectionne)
	require.Equal(t, "NON_ELIGIBLE_ADV", com2.MotifDeselection)

	_, err := env.handler.GetBordereau(ctx, &proto.GetBordereauRequest{Id: b.Id, OrganisationId: "org-1"})
	require.NoError(t, err)

	resp, err := env.handler.PreselectionnerLignes(ctx, &proto.PreselectionnerLignesRequest{
		BordereauId: b.Id, OrganisationId: "org-1", LigneIds: []string{com2.Id},
	})
	require.NoError(t, err)
	assert.Equal(t, int32(5), resp.NombreLignesTotal)
	assert.Equal(t, int32(5), resp.NombreLignesSelectionnees)
	assert.Contains(t, resp.LigneIdsSelectionnees, com2.Id)
	assert.False(t, env.mr.Exists(COMMISSION_BORDEREAU_CACHE_PREFIX+b.Id), "selection drops the cached draft")

	var stored models.LigneBordereau
	require.NoError(t, env.db.First(&stored, "id = ?", com2.Id).Error)
	assert.True(t, stored.Selectionne)
	assert.Equal(t, "selectionnee", stored.StatutLigne)
	assert.Nil(t, stored.MotifDeselection, "selecting overrides the eligibility exclusion")

	resp, err = env.handler.PreselectionnerLignes(ctx, &proto.PreselectionnerLignesRequest{
		BordereauId: b.Id, OrganisationId: "org-1", LigneIds: []string{com1.Id}, Deselectionner: true,
	})
	require.NoError(t, err)
	assert.Equal(t, int32(4), resp.NombreLignesSelectionnees)
	assert.NotContains(t, resp.LigneIdsSelectionnees, com1.Id)
	require.NoError(t, env.db.First(&stored, "id = ?", com1.Id).Error)
	assert.Equal(t, "deselectionnee", stored.StatutLigne)
	require.NotNil(t, stored.MotifDeselection)
	assert.Equal(t, "DESELECTION_MANUELLE", *stored.MotifDeselection)

	logs, err := env.handler.GetAuditLogs(ctx, &proto.GetAuditLogsRequest{RefId: b.Id, Action: "lignes_selection_updated"})
	require.NoError(t, err)
	assert.Len(t, logs.Logs, 2)

	validated, err := env.handler.ValiderBordereau(ctx, &proto.ValiderBordereauRequest{Id: b.Id, ValidePar: "manager-1", OrganisationId: "org-1"})
	require.NoError(t, err)
	assert.Equal(t, "rejetee", validated.Bordereau.Lignes[0].StatutLigne)
	assert.Equal(t, "validee", validated.Bordereau.Lignes[1].StatutLigne)
}

func TestPreselectionnerLignes_Errors(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	b := env.generate(t).Bordereau

	_, err := env.handler.PreselectionnerLignes(ctx, &proto.PreselectionnerLignesRequest{OrganisationId: "org-1"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = env.handler.PreselectionnerLignes(ctx, &proto.PreselectionnerLignesRequest{BordereauId: b.Id, OrganisationId: "org-2"})
	assert.Equal(t, codes.PermissionDenied, status.Code(err))

	_, err = env.handler.PreselectionnerLignes(ctx, &proto.PreselectionnerLignesRequest{
		BordereauId: b.Id, OrganisationId: "org-1", LigneIds: []string{"ligne-inconnue"},
	})
	assert.Equal(t, codes.NotFound, status.Code(err))

	_, err = env.handler.PreselectionnerLignes(ctx, &proto.PreselectionnerLignesRequest{BordereauId: "bordereau-janvier", OrganisationId: "org-1"})
	assert.Equal(t, codes.FailedPrecondition, status.Code(err), "validated statements are frozen")
}

func TestRecalculerTotauxBordereau(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	b := env.generate(t).Bordereau
	com1, com2 := b.Lignes[0], b.Lignes[1]

	resp, err := env.handler.RecalculerTotauxBordereau(ctx, &proto.RecalculerTotauxBordereauRequest{BordereauId: b.Id, OrganisationId: "org-1"})
	require.NoError(t, err)
	assert.Equal(t, b.TotalBrut, resp.TotalBrut)
	assert.Equal(t, b.TotalReprises, resp.TotalReprises)
	assert.Equal(t, b.TotalAcomptes, resp.TotalAcomptes)
	assert.Equal(t, b.TotalNetAPayer, resp.TotalNet)
	assert.Equal(t, int32(5), resp.NombreLignesSelectionnees)

	_, err = env.handler.PreselectionnerLignes(ctx, &proto.PreselectionnerLignesRequest{
		BordereauId: b.Id, OrganisationId: "org-1", LigneIds: []string{com2.Id}, Deselectionner: true,
	})
	require.NoError(t, err)
	resp, err = env.handler.RecalculerTotauxBordereau(ctx, &proto.RecalculerTotauxBordereauRequest{BordereauId: b.Id, OrganisationId: "org-1"})
	require.NoError(t, err)
	assert.Equal(t, "10.00", resp.TotalBrut)
	assert.Equal(t, "-60.00", resp.TotalNet)
	assert.Equal(t, int32(4), resp.NombreLignesSelectionnees)

	resp, err = env.handler.RecalculerTotauxBordereau(ctx, &proto.RecalculerTotauxBordereauRequest{
		BordereauId: b.Id, OrganisationId: "org-1", LigneIdsSelectionnees: []string{com1.Id, com2.Id},
	})
	require.NoError(t, err)
	assert.Equal(t, "30.00", resp.TotalBrut)
	assert.Equal(t, "0.00", resp.TotalReprises)
	assert.Equal(t, "30.00", resp.TotalNet)
	assert.Equal(t, int32(2), resp.NombreLignesSelectionnees)

	var row models.BordereauCommission
	require.NoError(t, env.db.First(&row, "id = ?", b.Id).Error)
	assert.Equal(t, "30", row.TotalBrut.String(), "recalculation is a preview")

	_, err = env.handler.RecalculerTotauxBordereau(ctx, &proto.RecalculerTotauxBordereauRequest{BordereauId: b.Id, OrganisationId: "org-2"})
	assert.Equal(t, codes.PermissionDenied, status.Code(err))
}

func TestGenererRecurrence(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	encaissement := time.Date(2026, 2, 5, 10, 0, 0, 0, time.UTC)

	resp, err := env.handler.GenererRecurrence(ctx, &proto.GenererRecurrenceRequest{
		ContratId: "contrat-3", EcheanceId: "ech-3", DateEncaissement: timestamppb.New(encaissement),
	})
	require.NoError(t, err)
	require.True(t, resp.Creee)
	require.NotNil(t, resp.Recurrence)
	assert.Equal(t, "9.00", resp.Recurrence.MontantCalcule)
	assert.Equal(t, int32(1), resp.Recurrence.NumeroMois)
	assert.Equal(t, "2026-02", resp.Recurrence.Periode)
	assert.Equal(t, "org-1", resp.Recurrence.OrganisationId)

	_, err = env.handler.GenererRecurrence(ctx, &proto.GenererRecurrenceRequest{ContratId: "contrat-3"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}
