package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"crm-commissions/internal/database/models"
	"crm-commissions/internal/money"
	"crm-commissions/internal/services/commissions/engine"
)

// statutsVerses are the bordereau statuses whose selected commission lines count as paid.
var statutsVerses = []string{
	string(engine.StatutBordereauValide),
	string(engine.StatutBordereauExporte),
	string(engine.StatutBordereauArchive),
}

func (r *CommissionRepository) FindCommissionsVerseesDansFenetre(ctx context.Context, contratID, debut, fin string) ([]float64, error) {
	var montants []decimal.Decimal
	err := r.db.WithContext(ctx).
		Model(&models.LigneBordereau{}).
		Joins("JOIN bordereaux_commission b ON b.id = lignes_bordereau.bordereau_id").
		Where("lignes_bordereau.contrat_id = ? AND lignes_bordereau.type_ligne = ? AND lignes_bordereau.selectionne = ?",
			contratID, string(engine.TypeLigneCommission), true).
		Where("b.statut IN ? AND b.periode BETWEEN ? AND ?", statutsVerses, debut, fin).
		Order("b.periode asc, lignes_bordereau.ordre asc").
		Pluck("lignes_bordereau.montant_net", &montants).Error
	if err != nil {
		return nil, TranslateError(err, "commissions versees of contrat %s", contratID)
	}
	out := make([]float64, 0, len(montants))
	for _, m := range montants {
		out = append(out, money.FromDecimal(m))
	}
	return out, nil
}

func (r *CommissionRepository) FindCommissionDuePeriode(ctx context.Context, contratID, periode string) (float64, error) {
	var montants []decimal.Decimal
	err := r.db.WithContext(ctx).
		Model(&models.Commission{}).
		Where("contrat_id = ? AND periode = ?", contratID, periode).
		Order("date_creation asc").
		Pluck("montant_net_a_payer", &montants).Error
	if err != nil {
		return 0, TranslateError(err, "commission due of contrat %s", contratID)
	}
	du := 0.0
	for _, m := range montants {
		du = money.Round2(du + money.FromDecimal(m))
	}
	return du, nil
}

func (r *CommissionRepository) IsEcheanceReglee(ctx context.Context, echeanceID string) (bool, error) {
	var echeance models.Echeance
	if err := r.db.WithContext(ctx).First(&echeance, "id = ?", echeanceID).Error; err != nil {
		return false, TranslateError(err, "echeance %s", echeanceID)
	}
	return echeance.Statut == models.EcheancePayee, nil
}

func (r *CommissionRepository) FindContratByID(ctx context.Context, id string) (*engine.Contrat, error) {
	row, err := r.FindContratModel(ctx, id)
	if err != nil {
		return nil, err
	}
	out := ContratToEngine(*row)
	return &out, nil
}

func (r *CommissionRepository) FindContratModel(ctx context.Context, id string) (*models.Contrat, error) {
	var row models.Contrat
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return nil, TranslateError(err, "contrat %s", id)
	}
	return &row, nil
}

// FindBaremeAtDate returns the highest version of the contract's grid whose effective
// range contains date. It never falls back to the current version.
func (r *CommissionRepository) FindBaremeAtDate(ctx context.Context, contrat engine.Contrat, date time.Time) (*engine.Bareme, error) {
	row, err := r.FindBaremeVersionAt(ctx, contrat.OrganisationID, contrat.BaremeCode, date)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	out := BaremeToEngine(*row)
	return &out, nil
}

func (r *CommissionRepository) FindBaremeVersionAt(ctx context.Context, organisationID, code string, date time.Time) (*models.BaremeCommission, error) {
	var row models.BaremeCommission
	err := r.db.WithContext(ctx).
		Preload("Paliers", func(db *gorm.DB) *gorm.DB { return db.Order("ordre asc") }).
		Where("organisation_id = ? AND code = ? AND date_effet <= ?", organisationID, code, date).
		Where("date_fin IS NULL OR date_fin >= ?", date).
		Order("version desc").
		First(&row).Error
	if err != nil {
		return nil, TranslateError(err, "bareme %s at %s", code, date.Format(time.DateOnly))
	}
	return &row, nil
}

func (r *CommissionRepository) GetRecurrenceMonthNumber(ctx context.Context, contratID string) (int, error) {
	var last int
	err := r.db.WithContext(ctx).
		Model(&models.CommissionRecurrente{}).
		Where("contrat_id = ?", contratID).
		Select("COALESCE(MAX(numero_mois), 0)").
		Scan(&last).Error
	if err != nil {
		return 0, TranslateError(err, "recurrence month number of contrat %s", contratID)
	}
	return last + 1, nil
}

func (r *CommissionRepository) PersistRecurrence(ctx context.Context, recurrence engine.CommissionRecurrente) (*engine.CommissionRecurrente, error) {
	row := models.CommissionRecurrente{
		OrganisationID:   recurrence.OrganisationID,
		ContratID:        recurrence.ContratID,
		EcheanceID:       recurrence.EcheanceID,
		BaremeID:         recurrence.BaremeID,
		BaremeVersion:    recurrence.BaremeVersion,
		Periode:          recurrence.Periode,
		NumeroMois:       recurrence.NumeroMois,
		MontantBase:      money.ToDecimal(recurrence.MontantBase),
		TauxRecurrence:   decimal.NewFromFloat(recurrence.TauxRecurrence),
		MontantCalcule:   money.ToDecimal(recurrence.MontantCalcule),
		DateEncaissement: recurrence.DateEncaissement,
		Statut:           string(recurrence.Statut),
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, TranslateError(err, "recurrence of contrat %s for echeance %s", recurrence.ContratID, recurrence.EcheanceID)
	}
	out := RecurrenceToEngine(row)
	return &out, nil
}
