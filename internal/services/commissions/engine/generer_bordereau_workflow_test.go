package engine

import (
	"bytes"
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crm-commissions/internal/logger"
)

var fixedNow = time.Date(2026, 2, 28, 18, 30, 0, 0, time.UTC)

func scenarioRepo() *memRepo {
	repo := newMemRepo()
	grille := &Bareme{ID: "bareme-10", Version: 1, TypeCalcul: TypeCalculPourcentage, TauxPourcentage: 10}
	repo.baremes["contrat-1"] = grille
	repo.baremes["contrat-2"] = grille
	repo.commissions = []Commission{
		{ID: "com-1", OrganisationID: "org-1", ApporteurID: "app-1", ContratID: "contrat-1", Reference: "COM-001", MontantBrut: 100, StatutID: "statut-a-payer", Periode: "2026-02"},
		{ID: "com-2", OrganisationID: "org-1", ApporteurID: "app-1", ContratID: "contrat-2", Reference: "COM-002", MontantBrut: 200, StatutID: "statut-a-payer", Periode: "2026-02"},
	}

	repo.reprises = []Reprise{{ID: "rep-1", CommissionOriginaleID: "com-0", ContratID: "contrat-1", ApporteurID: "app-1", TypeReprise: TypeRepriseImpaye, PeriodeApplication: "2026-02"}}
	repo.versees["contrat-1"] = []float64{30, 30}
	repo.dues["contrat-1"] = 30

	repo.candidates = []RecurrenceCandidate{{ID: "enc-1", ContratID: "contrat-3", EcheanceID: "ech-3", DateEncaissement: ptr(date(2026, 2, 5))}}
	repo.echeancesReglees["ech-3"] = true
	repo.contrats["contrat-3"] = &Contrat{ID: "contrat-3", OrganisationID: "org-1", Statut: "ACTIF", MontantBase: 100}
	repo.baremeVersions = []Bareme{{ID: "bareme-rec", Version: 1, RecurrenceActive: true, TauxRecurrence: ptr(9.0), DateEffet: date(2025, 1, 1)}}

	repo.reports = []ReportNegatif{{ID: "rn-1", ApporteurID: "app-1", PeriodeOrigine: "2026-01", MontantRestant: 40}}
	return repo
}

func newWorkflow(repo *memRepo, opts ...WorkflowOption) *GenererBordereauWorkflowService {
	opts = append([]WorkflowOption{WithClock(func() time.Time { return fixedNow })}, opts...)
	return NewGenererBordereauWorkflowService(
		repo,
		NewCommissionCalculationService(),
		NewRepriseCalculationService(repo),
		NewRecurrenceGenerationService(repo),
		opts...,
	)
}

func TestGenererBordereau_EndToEndScenario(t *testing.T) {
	repo := scenarioRepo()
	out, err := newWorkflow(repo).Execute(context.Background(), BordereauInput{OrganisationID: "org-1", ApporteurID: "app-1", Periode: "2026-02"})
	require.NoError(t, err)

	assert.Equal(t, Totaux{TotalBrut: 30, TotalReprises: 30, TotalAcomptes: 40, TotalNetAPayer: -40}, out.Totaux)
	assert.Equal(t, BordereauSummary{
		NombreCommissions: 2,
		NombreReprises:    1,
		NombrePrimes:      1,
		TotalBrut:         "30.00",
		TotalReprises:     "30.00",
		TotalNet:          "-40.00",
	}, out.Summary)

	require.NotNil(t, out.Bordereau)
	assert.Equal(t, "BRD-2026-02-"+strconv.FormatInt(fixedNow.UnixMilli(), 10), out.Bordereau.Reference)
	assert.Equal(t, 5, out.Bordereau.NombreLignes)
	assert.Equal(t, -40.0, out.Bordereau.TotalNetAPayer)

	require.Len(t, repo.lignes, 5)
	types := []TypeLigne{}
	for i, l := range repo.lignes {
		assert.Equal(t, i, l.Ordre)
		assert.Equal(t, out.Bordereau.ID, l.BordereauID)
		types = append(types, l.TypeLigne)
	}
	assert.Equal(t, []TypeLigne{TypeLigneCommission, TypeLigneCommission, TypeLigneReprise, TypeLignePrime, TypeLigneAcompte}, types)

	assert.Equal(t, 10.0, repo.lignes[0].MontantBrut)
	assert.Equal(t, 20.0, repo.lignes[1].MontantBrut)
	assert.Equal(t, -30.0, repo.lignes[2].MontantNet)
	assert.Equal(t, 9.0, repo.lignes[3].MontantNet)
	assert.Equal(t, -40.0, repo.lignes[4].MontantNet)
	assert.Equal(t, "report-rn-1", repo.lignes[4].ContratID)
	assert.Equal(t, "REPORT-2026-01", repo.lignes[4].ContratReference)

	assert.Equal(t, RepriseUpdate{MontantReprise: 30, Statut: StatutRepriseAppliquee, DateApplication: fixedNow, BordereauID: out.Bordereau.ID}, repo.repriseUpdates["rep-1"])
	assert.Equal(t, []string{"contrat-1"}, repo.suspended)
	assert.Equal(t, []string{"rn-1"}, repo.apures)

	require.NotNil(t, out.Report)
	assert.Equal(t, 40.0, out.Report.MontantRestant)
	assert.Equal(t, "2026-02", out.Report.PeriodeOrigine)

	assert.Equal(t, []AuditAction{
		ActionBordereauCreated,
		ActionCommissionCalculated,
		ActionCommissionCalculated,
		ActionRepriseApplied,
		ActionRecurrenceStopped,
		ActionRecurrenceGenerated,
		ActionReportNegatifApplied,
		ActionBordereauCreated,
		ActionReportNegatifCreated,
	}, repo.auditActions())

	final := repo.audits[7]
	assert.Equal(t, ScopeBordereau, final.Scope)
	assert.Equal(t, -40.0, final.AfterData["totalNet"])
	assert.Equal(t, 5, final.AfterData["nombreLignes"])
}

func TestGenererBordereau_IneligibleCommissionIsDeselectedButCounted(t *testing.T) {
	repo := scenarioRepo()
	repo.reprises, repo.candidates, repo.reports = nil, nil, nil
	repo.commissions[0].ContratValideCQ = ptr(false)
	repo.commissions[1].StatutID = "statut-en-attente"

	out, err := newWorkflow(repo).Execute(context.Background(), BordereauInput{OrganisationID: "org-1", ApporteurID: "app-1", Periode: "2026-02"})
	require.NoError(t, err)

	for _, l := range repo.lignes {
		assert.False(t, l.Selectionne)
		assert.Equal(t, StatutLigneDeselectionnee, l.StatutLigne)
		assert.Equal(t, MotifNonEligibleADV, l.MotifDeselection)
	}
	assert.Equal(t, 30.0, out.Totaux.TotalBrut)
	assert.Nil(t, out.Report)
}

func TestGenererBordereau_MissingStatutAPayerDeselectsEveryCommission(t *testing.T) {
	repo := scenarioRepo()
	repo.reprises, repo.candidates, repo.reports = nil, nil, nil
	repo.statutAPayer = nil

	out, err := newWorkflow(repo).Execute(context.Background(), BordereauInput{OrganisationID: "org-1", ApporteurID: "app-1", Periode: "2026-02"})
	require.NoError(t, err)

	require.Len(t, repo.lignes, 2)
	for _, l := range repo.lignes {
		assert.False(t, l.Selectionne)
		assert.Equal(t, MotifNonEligibleADV, l.MotifDeselection)
	}
	assert.Equal(t, 2, out.Summary.NombreCommissions)
	assert.Equal(t, 30.0, out.Totaux.TotalBrut)
}

func TestCommissionEligible(t *testing.T) {
	c := Commission{StatutID: "a_payer"}
	assert.True(t, c.Eligible("a_payer"))
	assert.False(t, c.Eligible(""))
	assert.False(t, c.Eligible("autre"))

	c.EcheanceEncaissee = ptr(false)
	assert.False(t, c.Eligible("a_payer"))
	c.EcheanceEncaissee = ptr(true)
	c.ContratValideCQ = ptr(true)
	assert.True(t, c.Eligible("a_payer"))
}

func TestGenererBordereau_ZeroRepriseStillProducesLine(t *testing.T) {
	repo := scenarioRepo()
	repo.commissions, repo.candidates, repo.reports = nil, nil, nil
	repo.versees = map[string][]float64{}
	repo.reprises[0].TypeReprise = TypeRepriseResiliation

	out, err := newWorkflow(repo).Execute(context.Background(), BordereauInput{OrganisationID: "org-1", ApporteurID: "app-1", Periode: "2026-02"})
	require.NoError(t, err)

	require.Len(t, repo.lignes, 1)
	assert.Equal(t, TypeLigneReprise, repo.lignes[0].TypeLigne)
	assert.Equal(t, 0.0, repo.lignes[0].MontantReprise)
	assert.Empty(t, repo.suspended)
	assert.Equal(t, []string{"2025-03..2026-02"}, repo.fenetresDemandees)
	assert.Equal(t, 1, out.Summary.NombreReprises)
}

func TestGenererBordereau_SkipsUncreatedRecurrenceAndCurrentPeriodReports(t *testing.T) {
	repo := scenarioRepo()
	repo.commissions, repo.reprises = nil, nil
	repo.echeancesReglees["ech-3"] = false
	repo.reports = append(repo.reports, ReportNegatif{ID: "rn-courant", PeriodeOrigine: "2026-02", MontantRestant: 5})

	out, err := newWorkflow(repo).Execute(context.Background(), BordereauInput{OrganisationID: "org-1", ApporteurID: "app-1", Periode: "2026-02"})
	require.NoError(t, err)

	require.Len(t, repo.lignes, 1)
	assert.Equal(t, TypeLigneAcompte, repo.lignes[0].TypeLigne)
	assert.Equal(t, 0, out.Summary.NombrePrimes)
	assert.Equal(t, []string{"rn-1"}, repo.apures)

	var skipped *AuditEntry
	for i := range repo.audits {
		if repo.audits[i].Action == ActionRecurrenceSkipped {
			skipped = &repo.audits[i]
		}
	}
	require.NotNil(t, skipped)
	assert.Equal(t, ScopeRecurrence, skipped.Scope)
	assert.Equal(t, "ech-3", skipped.RefID)
	assert.Equal(t, "contrat-3", skipped.ContratID)
	assert.Equal(t, string(MotifEcheanceNonReglee), skipped.Metadata["motif"])
	assert.Equal(t, "2026-02-05", skipped.Metadata["dateEncaissement"])
}

func TestGenererBordereau_IncludesPreviouslyGeneratedRecurrences(t *testing.T) {
	repo := scenarioRepo()
	repo.commissions, repo.reprises, repo.candidates, repo.reports = nil, nil, nil, nil
	repo.generees = []CommissionRecurrente{
		{ID: "rec-1", ContratID: "contrat-3", EcheanceID: "ech-3", BaremeID: "bareme-rec", Periode: "2026-01", NumeroMois: 2, TauxRecurrence: 9, MontantCalcule: 9},
		{ID: "rec-2", ContratID: "contrat-3", EcheanceID: "ech-4", BaremeID: "bareme-rec", Periode: "2026-02", NumeroMois: 3, TauxRecurrence: 9, MontantCalcule: 9},
	}

	out, err := newWorkflow(repo).Execute(context.Background(), BordereauInput{OrganisationID: "org-1", ApporteurID: "app-1", Periode: "2026-02"})
	require.NoError(t, err)

	require.Len(t, repo.lignes, 2)
	for _, l := range repo.lignes {
		assert.Equal(t, TypeLignePrime, l.TypeLigne)
		assert.Equal(t, 9.0, l.MontantNet)
		assert.True(t, l.Selectionne)
	}
	assert.Equal(t, "REC-2026-01-2", repo.lignes[0].ContratReference)
	assert.Equal(t, 2, out.Summary.NombrePrimes)
	assert.Equal(t, map[string]string{"rec-1": out.Bordereau.ID, "rec-2": out.Bordereau.ID}, repo.incluses)
	assert.Empty(t, repo.persisted)
	assert.Equal(t, 0.0, out.Totaux.TotalNetAPayer)
	assert.Equal(t, []AuditAction{
		ActionBordereauCreated,
		ActionRecurrenceIncluded,
		ActionRecurrenceIncluded,
		ActionBordereauCreated,
	}, repo.auditActions())
}

func TestGenererBordereau_MarksGeneratedRecurrenceIncluded(t *testing.T) {
	repo := scenarioRepo()
	repo.commissions, repo.reprises, repo.reports = nil, nil, nil

	out, err := newWorkflow(repo).Execute(context.Background(), BordereauInput{OrganisationID: "org-1", ApporteurID: "app-1", Periode: "2026-02"})
	require.NoError(t, err)

	require.Len(t, repo.persisted, 1)
	assert.Equal(t, out.Bordereau.ID, repo.incluses[repo.persisted[0].ID])
}

func TestGenererBordereau_RecurrenceDateAndEcheanceFallbacks(t *testing.T) {
	repo := scenarioRepo()
	repo.commissions, repo.reprises, repo.reports = nil, nil, nil
	repo.candidates = []RecurrenceCandidate{{ID: "enc-9", ContratID: "contrat-3"}}
	repo.echeancesReglees["enc-9"] = true

	_, err := newWorkflow(repo).Execute(context.Background(), BordereauInput{OrganisationID: "org-1", ApporteurID: "app-1", Periode: "2026-02"})
	require.NoError(t, err)

	require.Len(t, repo.persisted, 1)
	assert.Equal(t, "enc-9", repo.persisted[0].EcheanceID)
	assert.Equal(t, fixedNow, repo.persisted[0].DateEncaissement)
}

func TestGenererBordereau_InvalidPeriode(t *testing.T) {
	repo := scenarioRepo()
	_, err := newWorkflow(repo).Execute(context.Background(), BordereauInput{OrganisationID: "org-1", ApporteurID: "app-1", Periode: "02-2026"})
	assert.True(t, IsCode(err, CodeInvalidPeriode))
	assert.Empty(t, repo.bordereaux)
}

func TestGenererBordereau_MissingBareme(t *testing.T) {
	repo := scenarioRepo()
	delete(repo.baremes, "contrat-2")

	_, err := newWorkflow(repo).Execute(context.Background(), BordereauInput{OrganisationID: "org-1", ApporteurID: "app-1", Periode: "2026-02"})
	assert.True(t, IsCode(err, CodeBaremeIntrouvable))
}

func TestGenererBordereau_PropagatesCollaboratorErrors(t *testing.T) {
	for _, op := range []string{"CreateBordereau", "FindCommissionsForPeriode", "FindRecurrencesNonIncluses", "Audit"} {
		t.Run(op, func(t *testing.T) {
			repo := scenarioRepo()
			repo.failOn = op

			_, err := newWorkflow(repo).Execute(context.Background(), BordereauInput{OrganisationID: "org-1", ApporteurID: "app-1", Periode: "2026-02"})
			require.Error(t, err)
			assert.Contains(t, err.Error(), op)
		})
	}
}

func TestGenererBordereau_LogsSummary(t *testing.T) {
	var buf bytes.Buffer
	repo := scenarioRepo()

	_, err := newWorkflow(repo, WithLogger(logger.NewWithWriter(&buf, "info"))).Execute(context.Background(), BordereauInput{OrganisationID: "org-1", ApporteurID: "app-1", Periode: "2026-02"})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"msg":"bordereau generated"`)
	assert.Contains(t, buf.String(), `"total_net":"-40.00"`)
}
