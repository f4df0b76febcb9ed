package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotauxFromLignes_ExcludesPrimeAndRegularisation(t *testing.T) {
	lignes := []Ligne{
		{TypeLigne: TypeLigneCommission, MontantBrut: 10, MontantNet: 10},
		{TypeLigne: TypeLigneCommission, MontantBrut: 20, MontantNet: 20},
		{TypeLigne: TypeLigneReprise, MontantReprise: 30, MontantNet: -30},
		{TypeLigne: TypeLignePrime, MontantBrut: 9, MontantNet: 9},
		{TypeLigne: TypeLigneAcompte, MontantAcompte: 40, MontantNet: -40},
		{TypeLigne: TypeLigneRegularisation, MontantBrut: 15, MontantNet: 15},
	}

	assert.Equal(t, Totaux{TotalBrut: 30, TotalReprises: 30, TotalAcomptes: 40, TotalNetAPayer: -40}, TotauxFromLignes(lignes))
	assert.Equal(t, Totaux{}, TotauxFromLignes(nil))
}

func TestVerifierTotaux(t *testing.T) {
	lignes := []Ligne{{TypeLigne: TypeLigneCommission, MontantBrut: 0.1}, {TypeLigne: TypeLigneCommission, MontantBrut: 0.2}}

	assert.NoError(t, VerifierTotaux(Totaux{TotalBrut: 0.3, TotalNetAPayer: 0.3}, lignes))
	assert.True(t, IsCode(VerifierTotaux(Totaux{TotalBrut: 0.31, TotalNetAPayer: 0.31}, lignes), CodeTotauxIncoherents))
}
