package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculerReprise_CappedByDue(t *testing.T) {
	repo := newMemRepo()
	repo.versees["contrat-1"] = []float64{30, 15.5}
	repo.dues["contrat-1"] = 30
	svc := NewRepriseCalculationService(repo)

	res, err := svc.CalculerReprise(context.Background(), "contrat-1", TypeRepriseResiliation, 12, "2026-02")
	require.NoError(t, err)
	assert.Equal(t, 30.0, res.MontantReprise)
	assert.Equal(t, 45.5, res.TotalVerse)
	assert.Equal(t, 30.0, res.MontantDu)
	assert.False(t, res.SuspendRecurrence)
	assert.True(t, res.CreerLigneReprise)
	assert.Equal(t, []string{"2025-03..2026-02"}, repo.fenetresDemandees)
}

func TestCalculerReprise_CappedByPaid(t *testing.T) {
	repo := newMemRepo()
	repo.versees["contrat-1"] = []float64{0.1, 0.2}
	repo.dues["contrat-1"] = 100
	svc := NewRepriseCalculationService(repo)

	res, err := svc.CalculerReprise(context.Background(), "contrat-1", TypeRepriseAnnulation, 3, "2026-02")
	require.NoError(t, err)
	assert.Equal(t, 0.3, res.MontantReprise)
	assert.Equal(t, "2025-12", res.PeriodeDebut)
	assert.Equal(t, "2026-02", res.PeriodeFin)
}

func TestCalculerReprise_EmptyPaidListYieldsZeroLine(t *testing.T) {
	repo := newMemRepo()
	repo.dues["contrat-1"] = 50
	svc := NewRepriseCalculationService(repo)

	res, err := svc.CalculerReprise(context.Background(), "contrat-1", TypeRepriseImpaye, 3, "2026-02")
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.MontantReprise)
	assert.True(t, res.CreerLigneReprise)
	assert.True(t, res.SuspendRecurrence)
}

func TestCalculerReprise_InvalidFenetre(t *testing.T) {
	svc := NewRepriseCalculationService(newMemRepo())
	for _, fenetre := range []int{0, -1, -12} {
		_, err := svc.CalculerReprise(context.Background(), "contrat-1", TypeRepriseImpaye, fenetre, "2026-02")
		assert.True(t, IsCode(err, CodeInvalidFenetre), "fenetre %d", fenetre)
	}
}

func TestCalculerReprise_SuspendOnlyForImpaye(t *testing.T) {
	svc := NewRepriseCalculationService(newMemRepo())
	for _, typ := range []TypeReprise{TypeRepriseResiliation, TypeRepriseAnnulation, TypeRepriseRegularisation} {
		res, err := svc.CalculerReprise(context.Background(), "c", typ, 3, "2026-02")
		require.NoError(t, err)
		assert.False(t, res.SuspendRecurrence, "type %s", typ)
	}
}

func TestCalculerReportNegatif(t *testing.T) {
	svc := NewRepriseCalculationService(newMemRepo())

	res, err := svc.CalculerReportNegatif("app-1", "2025-12", 30, 30, 40)
	require.NoError(t, err)
	assert.True(t, res.CreerReport)
	assert.Equal(t, -40.0, res.Solde)
	assert.Equal(t, 40.0, res.Montant)
	assert.Equal(t, "2025-12", res.PeriodeOrigine)
	assert.Equal(t, "2026-01", res.PeriodeCible)

	res, err = svc.CalculerReportNegatif("app-1", "2026-02", 100, 30, 40)
	require.NoError(t, err)
	assert.False(t, res.CreerReport)
	assert.Equal(t, 30.0, res.Solde)
	assert.Equal(t, 0.0, res.Montant)

	_, err = svc.CalculerReportNegatif("app-1", "2026-2", 0, 0, 0)
	assert.True(t, IsCode(err, CodeInvalidPeriode))
}

func TestGenererRegularisationReprise(t *testing.T) {
	svc := NewRepriseCalculationService(newMemRepo())
	reprise := RepriseRegularisable{RepriseID: "r1", CommissionID: "c1", BordereauID: "b1", TypeReprise: TypeRepriseImpaye, MontantReprise: 30, Reglee: true}

	reg := svc.GenererRegularisationReprise(reprise)
	assert.True(t, reg.CreerLigne)
	assert.Equal(t, 30.0, reg.Montant)
	assert.Equal(t, "r1", reg.RepriseID)
	assert.Equal(t, "b1", reg.BordereauID)

	reprise.Reglee = false
	reg = svc.GenererRegularisationReprise(reprise)
	assert.False(t, reg.CreerLigne)
	assert.Equal(t, 0.0, reg.Montant)

	reprise.Reglee = true
	reprise.TypeReprise = TypeRepriseResiliation
	reg = svc.GenererRegularisationReprise(reprise)
	assert.False(t, reg.CreerLigne)
}

func TestGenererRegularisationContestation(t *testing.T) {
	svc := NewRepriseCalculationService(newMemRepo())
	reg := svc.GenererRegularisationContestation(ContestationAcceptee{
		ContestationID:   "ct1",
		CommissionID:     "c1",
		BordereauID:      "b1",
		MontantNetAPayer: 12.345,
	})
	assert.True(t, reg.CreerLigne)
	assert.Equal(t, 12.35, reg.Montant)
	assert.Equal(t, "c1", reg.CommissionID)
	assert.Equal(t, "b1", reg.BordereauID)
	assert.Equal(t, "ct1", reg.ContestationID)
}
