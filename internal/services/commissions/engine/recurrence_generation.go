package engine

import (
	"context"
	"time"

	"crm-commissions/internal/money"
)

// RecurrenceResult carries either the persisted line or the reason none was produced.
type RecurrenceResult struct {
	Creee      bool
	Motif      MotifRecurrence
	Recurrence *CommissionRecurrente
}

type RecurrenceGenerationService struct {
	lookup RecurrenceLookup
}

func NewRecurrenceGenerationService(lookup RecurrenceLookup) *RecurrenceGenerationService {
	return &RecurrenceGenerationService{lookup: lookup}
}

func nonCreee(motif MotifRecurrence) RecurrenceResult {
	return RecurrenceResult{Creee: false, Motif: motif}
}

// GenererRecurrence produces the recurring line for one collected installment, using
// the bareme version in force at the collection date.
func (s *RecurrenceGenerationService) GenererRecurrence(ctx context.Context, contratID, echeanceID string, dateEncaissement time.Time) (RecurrenceResult, error) {
	reglee, err := s.lookup.IsEcheanceReglee(ctx, echeanceID)
	if err != nil {
		return RecurrenceResult{}, err
	}
	if !reglee {
		return nonCreee(MotifEcheanceNonReglee), nil
	}

	contrat, err := s.lookup.FindContratByID(ctx, contratID)
	if err != nil {
		return RecurrenceResult{}, err
	}
	bareme, err := s.lookup.FindBaremeAtDate(ctx, *contrat, dateEncaissement)
	if err != nil {
		return RecurrenceResult{}, err
	}
	if bareme == nil {
		return RecurrenceResult{}, newDomainError(CodeBaremeIntrouvable, "no bareme in force for contrat %s at %s", contratID, dateEncaissement.Format(time.DateOnly))
	}

	if !eligibleRecurrence(*contrat, *bareme, dateEncaissement) {
		return nonCreee(MotifContratResilie), nil
	}

	numeroMois, err := s.lookup.GetRecurrenceMonthNumber(ctx, contratID)
	if err != nil {
		return RecurrenceResult{}, err
	}
	if bareme.DureeRecurrenceMois != nil && numeroMois > *bareme.DureeRecurrenceMois {
		return nonCreee(MotifDureeMaxAtteinte), nil
	}

	base := money.Round2(contrat.MontantBase)
	taux := money.Round2(*bareme.TauxRecurrence)
	recurrence, err := s.lookup.PersistRecurrence(ctx, CommissionRecurrente{
		OrganisationID:   contrat.OrganisationID,
		ContratID:        contratID,
		EcheanceID:       echeanceID,
		BaremeID:         bareme.ID,
		BaremeVersion:    bareme.Version,
		Periode:          PeriodeOf(dateEncaissement),
		NumeroMois:       numeroMois,
		MontantBase:      base,
		TauxRecurrence:   taux,
		MontantCalcule:   money.Round2(base * taux / 100),
		DateEncaissement: dateEncaissement,
		Statut:           StatutRecurrenceActive,
	})
	if err != nil {
		return RecurrenceResult{}, err
	}
	return RecurrenceResult{Creee: true, Recurrence: recurrence}, nil
}

func eligibleRecurrence(contrat Contrat, bareme Bareme, dateEncaissement time.Time) bool {
	if !bareme.RecurrenceActive || bareme.TauxRecurrence == nil || *bareme.TauxRecurrence <= 0 {
		return false
	}
	if !contrat.Actif() {
		return false
	}
	if contrat.DateFin != nil && AvantPeriode(PeriodeOf(*contrat.DateFin), PeriodeOf(dateEncaissement)) {
		return false
	}
	return true
}
