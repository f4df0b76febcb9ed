package engine

import (
	"math"

	"crm-commissions/internal/money"
)

// CalculDetails echoes the inputs of a commission calculation.
type CalculDetails struct {
	Reference       string     `json:"reference"`
	BaremeID        string     `json:"bareme_id"`
	BaremeVersion   int        `json:"bareme_version"`
	TypeCalcul      TypeCalcul `json:"type_calcul"`
	MontantBase     float64    `json:"montant_base"`
	TauxPourcentage float64    `json:"taux_pourcentage"`
	MontantFixe     float64    `json:"montant_fixe"`
}

type PrimePalier struct {
	PalierID string  `json:"palier_id"`
	Code     string  `json:"code"`
	Montant  float64 `json:"montant"`
}

type CommissionResult struct {
	MontantCalcule float64
	TypeCalcul     TypeCalcul
	Details        CalculDetails
	Primes         []PrimePalier
	// MontantTotal is MontantCalcule plus every palier prime.
	MontantTotal float64
	// MontantExact is the exact-decimal rendition of MontantCalcule.
	MontantExact money.Exact
}

// Divergent reports whether the float result drifted from the exact decimal one.
func (r CommissionResult) Divergent() bool {
	return money.Diverges(r.MontantCalcule, r.MontantExact)
}

type CommissionCalculationService struct{}

func NewCommissionCalculationService() *CommissionCalculationService {
	return &CommissionCalculationService{}
}

// Calculer computes the commission for a base amount under one bareme version.
func (s *CommissionCalculationService) Calculer(reference string, bareme Bareme, montantBase float64) (CommissionResult, error) {
	if math.IsNaN(montantBase) || math.IsInf(montantBase, 0) || montantBase < 0 {
		return CommissionResult{}, newDomainError(CodeMontantBaseInvalid, "montant base must be a finite amount >= 0, got %v", montantBase)
	}

	typeCalcul := bareme.TypeCalcul
	if typeCalcul == "" {
		typeCalcul = TypeCalculPourcentage
	}

	var montant float64
	var exact money.Exact
	switch typeCalcul {
	case TypeCalculPourcentage:
		montant = money.Percent(montantBase, bareme.TauxPourcentage)
		exact = money.ExactPercent(montantBase, bareme.TauxPourcentage)
	case TypeCalculFixe:
		montant = money.Round2(bareme.MontantFixe)
		exact = money.ToDecimal(bareme.MontantFixe)
	case TypeCalculMixte:
		montant = money.Round2(money.Percent(montantBase, bareme.TauxPourcentage) + money.Round2(bareme.MontantFixe))
		exact = money.ExactPercent(montantBase, bareme.TauxPourcentage).Add(money.ToDecimal(bareme.MontantFixe))
	default:
		return CommissionResult{}, newDomainError(CodeTypeCalculInconnu, "unknown type de calcul %q", bareme.TypeCalcul)
	}

	result := CommissionResult{
		MontantCalcule: montant,
		TypeCalcul:     typeCalcul,
		Details: CalculDetails{
			Reference:       reference,
			BaremeID:        bareme.ID,
			BaremeVersion:   bareme.Version,
			TypeCalcul:      typeCalcul,
			MontantBase:     montantBase,
			TauxPourcentage: bareme.TauxPourcentage,
			MontantFixe:     bareme.MontantFixe,
		},
		MontantTotal: montant,
		MontantExact: exact,
	}

	for _, palier := range bareme.Paliers {
		if !palier.Actif || !palier.Contient(montantBase) {
			continue
		}
		prime := money.Round2(palier.MontantPrime + money.Percent(montantBase, palier.TauxBonus))
		result.Primes = append(result.Primes, PrimePalier{PalierID: palier.ID, Code: palier.Code, Montant: prime})
		result.MontantTotal = money.Round2(result.MontantTotal + prime)
	}

	return result, nil
}
