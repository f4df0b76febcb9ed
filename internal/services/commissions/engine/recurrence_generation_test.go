package engine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recurrenceRepo() *memRepo {
	repo := newMemRepo()
	repo.echeancesReglees["ech-1"] = true
	repo.contrats["contrat-1"] = &Contrat{ID: "contrat-1", OrganisationID: "org-1", Statut: "ACTIF", MontantBase: 100, DateDebut: date(2025, 1, 1)}
	repo.baremeVersions = []Bareme{{
		ID:               "bareme-v1",
		Code:             "REC",
		Version:          1,
		RecurrenceActive: true,
		TauxRecurrence:   ptr(9.0),
		DateEffet:        date(2025, 1, 1),
	}}
	return repo
}

func TestGenererRecurrence_Created(t *testing.T) {
	repo := recurrenceRepo()
	svc := NewRecurrenceGenerationService(repo)

	res, err := svc.GenererRecurrence(context.Background(), "contrat-1", "ech-1", date(2026, 2, 10))
	require.NoError(t, err)
	require.True(t, res.Creee)
	require.NotNil(t, res.Recurrence)
	assert.Equal(t, 9.0, res.Recurrence.MontantCalcule)
	assert.Equal(t, "bareme-v1", res.Recurrence.BaremeID)
	assert.Equal(t, 1, res.Recurrence.BaremeVersion)
	assert.Equal(t, "2026-02", res.Recurrence.Periode)
	assert.Equal(t, 1, res.Recurrence.NumeroMois)
	assert.Equal(t, StatutRecurrenceActive, res.Recurrence.Statut)
	assert.Len(t, repo.persisted, 1)
}

func TestGenererRecurrence_UnpaidInstallmentWinsOverEverything(t *testing.T) {
	repo := recurrenceRepo()
	repo.echeancesReglees["ech-1"] = false
	repo.contrats["contrat-1"].Statut = "RESILIE"
	repo.monthNumbers["contrat-1"] = 999
	repo.baremeVersions = nil
	svc := NewRecurrenceGenerationService(repo)

	res, err := svc.GenererRecurrence(context.Background(), "unknown-contrat", "ech-1", date(2026, 2, 10))
	require.NoError(t, err)
	assert.Equal(t, RecurrenceResult{Creee: false, Motif: MotifEcheanceNonReglee}, res)
	assert.Empty(t, repo.persisted)
}

func TestGenererRecurrence_Ineligible(t *testing.T) {
	cases := map[string]func(*memRepo){
		"recurrence inactive": func(r *memRepo) { r.baremeVersions[0].RecurrenceActive = false },
		"no recurring rate":   func(r *memRepo) { r.baremeVersions[0].TauxRecurrence = nil },
		"zero recurring rate": func(r *memRepo) { r.baremeVersions[0].TauxRecurrence = ptr(0.0) },
		"contract suspended":  func(r *memRepo) { r.contrats["contrat-1"].Statut = "SUSPENDU" },
		"collected after end": func(r *memRepo) { r.contrats["contrat-1"].DateFin = ptr(date(2026, 1, 31)) },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			repo := recurrenceRepo()
			mutate(repo)
			svc := NewRecurrenceGenerationService(repo)

			res, err := svc.GenererRecurrence(context.Background(), "contrat-1", "ech-1", date(2026, 2, 10))
			require.NoError(t, err)
			assert.False(t, res.Creee)
			assert.Equal(t, MotifContratResilie, res.Motif)
			assert.Empty(t, repo.persisted)
		})
	}
}

func TestGenererRecurrence_EndDateInSamePeriodIsEligible(t *testing.T) {
	repo := recurrenceRepo()
	repo.contrats["contrat-1"].DateFin = ptr(date(2026, 2, 1))
	repo.contrats["contrat-1"].Statut = "valide"
	svc := NewRecurrenceGenerationService(repo)

	res, err := svc.GenererRecurrence(context.Background(), "contrat-1", "ech-1", date(2026, 2, 27))
	require.NoError(t, err)
	assert.True(t, res.Creee)
}

func TestGenererRecurrence_DurationCap(t *testing.T) {
	repo := recurrenceRepo()
	repo.baremeVersions[0].DureeRecurrenceMois = ptr(12)
	repo.monthNumbers["contrat-1"] = 13
	svc := NewRecurrenceGenerationService(repo)

	res, err := svc.GenererRecurrence(context.Background(), "contrat-1", "ech-1", date(2026, 2, 10))
	require.NoError(t, err)
	assert.Equal(t, RecurrenceResult{Creee: false, Motif: MotifDureeMaxAtteinte}, res)

	repo.monthNumbers["contrat-1"] = 12
	res, err = svc.GenererRecurrence(context.Background(), "contrat-1", "ech-1", date(2026, 2, 10))
	require.NoError(t, err)
	assert.True(t, res.Creee)
}

func TestGenererRecurrence_NullCapIsUnlimited(t *testing.T) {
	repo := recurrenceRepo()
	repo.monthNumbers["contrat-1"] = 48
	svc := NewRecurrenceGenerationService(repo)

	res, err := svc.GenererRecurrence(context.Background(), "contrat-1", "ech-1", date(2026, 2, 10))
	require.NoError(t, err)
	require.True(t, res.Creee)
	assert.Equal(t, 48, res.Recurrence.NumeroMois)
}

func TestGenererRecurrence_NonRetroactive(t *testing.T) {
	repo := recurrenceRepo()
	repo.baremeVersions[0].DateFin = ptr(date(2026, 2, 14))
	repo.baremeVersions = append(repo.baremeVersions, Bareme{
		ID:               "bareme-v2",
		Code:             "REC",
		Version:          2,
		RecurrenceActive: true,
		TauxRecurrence:   ptr(12.0),
		DateEffet:        date(2026, 2, 15),
	})
	repo.echeancesReglees["ech-mars"] = true
	svc := NewRecurrenceGenerationService(repo)

	janvier, err := svc.GenererRecurrence(context.Background(), "contrat-1", "ech-1", date(2026, 1, 20))
	require.NoError(t, err)
	mars, err := svc.GenererRecurrence(context.Background(), "contrat-1", "ech-mars", date(2026, 3, 20))
	require.NoError(t, err)

	assert.Equal(t, 1, janvier.Recurrence.BaremeVersion)
	assert.Equal(t, 9.0, janvier.Recurrence.MontantCalcule)
	assert.Equal(t, 2, mars.Recurrence.BaremeVersion)
	assert.Equal(t, 12.0, mars.Recurrence.MontantCalcule)
	assert.Equal(t, 9.0, repo.persisted[0].MontantCalcule)
}

func TestGenererRecurrence_NoBaremeInForce(t *testing.T) {
	repo := recurrenceRepo()
	svc := NewRecurrenceGenerationService(repo)

	_, err := svc.GenererRecurrence(context.Background(), "contrat-1", "ech-1", time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	assert.True(t, IsCode(err, CodeBaremeIntrouvable))
}

func TestGenererRecurrence_RoundsBaseAndRate(t *testing.T) {
	repo := recurrenceRepo()
	repo.contrats["contrat-1"].MontantBase = 99.999
	repo.baremeVersions[0].TauxRecurrence = ptr(3.333)
	svc := NewRecurrenceGenerationService(repo)

	res, err := svc.GenererRecurrence(context.Background(), "contrat-1", "ech-1", date(2026, 2, 10))
	require.NoError(t, err)
	assert.Equal(t, 100.0, res.Recurrence.MontantBase)
	assert.Equal(t, 3.33, res.Recurrence.TauxRecurrence)
	assert.Equal(t, 3.33, res.Recurrence.MontantCalcule)
}
