package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculerDateLimite(t *testing.T) {
	svc := NewContestationWorkflowService()

	assert.Equal(t, date(2026, 3, 15), svc.CalculerDateLimite(date(2026, 1, 15)))
	assert.Equal(t, date(2027, 1, 10), svc.CalculerDateLimite(date(2026, 11, 10)))
	assert.Equal(t, date(2026, 2, 28), svc.CalculerDateLimite(date(2025, 12, 31)))
	assert.Equal(t, date(2028, 2, 29), svc.CalculerDateLimite(date(2027, 12, 31)))
	assert.Equal(t, date(2026, 6, 30), svc.CalculerDateLimite(date(2026, 4, 30)))
}

func TestVerifierDelaiContestation(t *testing.T) {
	svc := NewContestationWorkflowService()
	publication := date(2026, 1, 15)

	assert.NoError(t, svc.VerifierDelaiContestation(publication, date(2026, 2, 1)))
	assert.NoError(t, svc.VerifierDelaiContestation(publication, date(2026, 3, 15)))
	assert.NoError(t, svc.VerifierDelaiContestation(publication, time.Date(2026, 3, 15, 23, 59, 0, 0, time.UTC)))

	err := svc.VerifierDelaiContestation(publication, date(2026, 3, 16))
	require.Error(t, err)
	assert.True(t, IsCode(err, CodeDeadlineExceeded))
}

func TestVerifierDelaiContestation_UsesPublicationTimeZone(t *testing.T) {
	svc := NewContestationWorkflowService()
	paris := time.FixedZone("CET", 3600)
	publication := time.Date(2026, 1, 15, 0, 0, 0, 0, paris)

	assert.NoError(t, svc.VerifierDelaiContestation(publication, time.Date(2026, 3, 15, 10, 0, 0, 0, paris)))
	assert.True(t, IsCode(svc.VerifierDelaiContestation(publication, time.Date(2026, 3, 15, 23, 30, 0, 0, time.UTC)), CodeDeadlineExceeded))
}

func TestValiderResolution(t *testing.T) {
	svc := NewContestationWorkflowService()

	for _, comment := range []string{"", "   ", "\n\t"} {
		assert.True(t, IsCode(svc.ValiderResolution(comment), CodeCommentRequired), "comment %q", comment)
	}
	assert.NoError(t, svc.ValiderResolution("montant corrigé"))
}

func TestDeterminerStatutResolution(t *testing.T) {
	svc := NewContestationWorkflowService()

	statut, err := svc.DeterminerStatutResolution(true, "erreur de barème confirmée")
	require.NoError(t, err)
	assert.Equal(t, StatutContestationAcceptee, statut)

	statut, err = svc.DeterminerStatutResolution(false, "calcul conforme")
	require.NoError(t, err)
	assert.Equal(t, StatutContestationRejetee, statut)

	_, err = svc.DeterminerStatutResolution(true, " ")
	assert.True(t, IsCode(err, CodeCommentRequired))
}
