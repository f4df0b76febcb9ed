package engine

import (
	"context"
	"math"

	"crm-commissions/internal/money"
)

type RepriseResult struct {
	MontantReprise    float64
	SuspendRecurrence bool
	// CreerLigneReprise is always true, including for a zero amount.
	CreerLigneReprise bool
	TotalVerse        float64
	MontantDu         float64
	PeriodeDebut      string
	PeriodeFin        string
}

type ReportNegatifResult struct {
	ApporteurID    string
	PeriodeOrigine string
	PeriodeCible   string
	Solde          float64
	Montant        float64
	CreerReport    bool
}

// RepriseRegularisable is a clawback considered for regularisation.
type RepriseRegularisable struct {
	RepriseID      string
	CommissionID   string
	ContratID      string
	BordereauID    string
	TypeReprise    TypeReprise
	MontantReprise float64
	// Reglee is set when the unpaid invoice behind the clawback was later fully paid.
	Reglee bool
}

type ContestationAcceptee struct {
	ContestationID   string
	CommissionID     string
	BordereauID      string
	MontantNetAPayer float64
}

// Regularisation is a positive corrective amount to append as a new line.
type Regularisation struct {
	CreerLigne     bool
	Montant        float64
	RepriseID      string
	ContestationID string
	CommissionID   string
	BordereauID    string
	ContratID      string
}

type RepriseCalculationService struct {
	lookup RepriseLookup
}

func NewRepriseCalculationService(lookup RepriseLookup) *RepriseCalculationService {
	return &RepriseCalculationService{lookup: lookup}
}

// CalculerReprise caps the clawback at both what was paid in the window and what is due this period.
func (s *RepriseCalculationService) CalculerReprise(ctx context.Context, contratID string, typeReprise TypeReprise, fenetreMois int, periode string) (RepriseResult, error) {
	if fenetreMois <= 0 {
		return RepriseResult{}, newDomainError(CodeInvalidFenetre, "fenetre must be positive, got %d", fenetreMois)
	}
	debut, fin, err := FenetrePeriodes(periode, fenetreMois)
	if err != nil {
		return RepriseResult{}, err
	}

	versees, err := s.lookup.FindCommissionsVerseesDansFenetre(ctx, contratID, debut, fin)
	if err != nil {
		return RepriseResult{}, err
	}
	totalVerse := 0.0
	for _, montant := range versees {
		totalVerse = money.Round2(totalVerse + montant)
	}

	du, err := s.lookup.FindCommissionDuePeriode(ctx, contratID, periode)
	if err != nil {
		return RepriseResult{}, err
	}
	du = money.Round2(du)

	return RepriseResult{
		MontantReprise:    money.Round2(math.Min(totalVerse, du)),
		SuspendRecurrence: typeReprise == TypeRepriseImpaye,
		CreerLigneReprise: true,
		TotalVerse:        totalVerse,
		MontantDu:         du,
		PeriodeDebut:      debut,
		PeriodeFin:        fin,
	}, nil
}

// CalculerReportNegatif flags a negative statement balance for carry-forward to the next period.
func (s *RepriseCalculationService) CalculerReportNegatif(apporteurID, periode string, brut, reprises, acomptes float64) (ReportNegatifResult, error) {
	suivante, err := PeriodeSuivante(periode)
	if err != nil {
		return ReportNegatifResult{}, err
	}
	solde := money.Round2(brut - reprises - acomptes)
	result := ReportNegatifResult{
		ApporteurID:    apporteurID,
		PeriodeOrigine: periode,
		PeriodeCible:   suivante,
		Solde:          solde,
	}
	if solde < 0 {
		result.Montant = money.Round2(math.Abs(solde))
		result.CreerReport = true
	}
	return result, nil
}

// GenererRegularisationReprise refunds an unpaid clawback once the invoice was settled.
func (s *RepriseCalculationService) GenererRegularisationReprise(reprise RepriseRegularisable) Regularisation {
	reg := Regularisation{
		RepriseID:    reprise.RepriseID,
		CommissionID: reprise.CommissionID,
		BordereauID:  reprise.BordereauID,
		ContratID:    reprise.ContratID,
	}
	if reprise.TypeReprise != TypeRepriseImpaye || !reprise.Reglee {
		return reg
	}
	reg.CreerLigne = true
	reg.Montant = money.Round2(reprise.MontantReprise)
	return reg
}

// GenererRegularisationContestation pays back the disputed commission net amount.
func (s *RepriseCalculationService) GenererRegularisationContestation(contestation ContestationAcceptee) Regularisation {
	return Regularisation{
		CreerLigne:     true,
		Montant:        money.Round2(contestation.MontantNetAPayer),
		ContestationID: contestation.ContestationID,
		CommissionID:   contestation.CommissionID,
		BordereauID:    contestation.BordereauID,
	}
}
