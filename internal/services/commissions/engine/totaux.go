package engine

import "crm-commissions/internal/money"

// Totaux are the four statement totals.
//
// Only commission lines feed TotalBrut, reprise lines TotalReprises and acompte
// lines TotalAcomptes. Prime and regularisation lines carry their own net but are
// not part of the settled totals.
type Totaux struct {
	TotalBrut      float64 `json:"total_brut"`
	TotalReprises  float64 `json:"total_reprises"`
	TotalAcomptes  float64 `json:"total_acomptes"`
	TotalNetAPayer float64 `json:"total_net_a_payer"`
}

func (t *Totaux) ajouter(ligne Ligne) {
	switch ligne.TypeLigne {
	case TypeLigneCommission:
		t.TotalBrut = money.Round2(t.TotalBrut + ligne.MontantBrut)
	case TypeLigneReprise:
		t.TotalReprises = money.Round2(t.TotalReprises + ligne.MontantReprise)
	case TypeLigneAcompte:
		t.TotalAcomptes = money.Round2(t.TotalAcomptes + ligne.MontantAcompte)
	}
	t.TotalNetAPayer = money.Round2(t.TotalBrut - t.TotalReprises - t.TotalAcomptes)
}

// TotauxFromLignes folds lines in insertion order.
func TotauxFromLignes(lignes []Ligne) Totaux {
	var t Totaux
	for _, ligne := range lignes {
		t.ajouter(ligne)
	}
	return t
}

// VerifierTotaux fails with TOTAUX_INCOHERENTS when t differs from the totals of lignes.
func VerifierTotaux(t Totaux, lignes []Ligne) error {
	attendu := TotauxFromLignes(lignes)
	if t != attendu {
		return newDomainError(CodeTotauxIncoherents, "totaux %+v do not match lignes %+v", t, attendu)
	}
	return nil
}
