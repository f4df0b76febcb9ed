package repository

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"gorm.io/gorm"

	"crm-commissions/internal/database"
	"crm-commissions/internal/database/models"
	"crm-commissions/internal/money"
	"crm-commissions/internal/services/commissions/engine"
)

func (r *CommissionRepository) FindCommissionsForPeriode(ctx context.Context, in engine.BordereauInput) ([]engine.Commission, error) {
	var rows []models.Commission
	err := r.db.WithContext(ctx).
		Where("organisation_id = ? AND apporteur_id = ? AND periode = ?", in.OrganisationID, in.ApporteurID, in.Periode).
		Order("date_creation asc, reference asc").
		Find(&rows).Error
	if err != nil {
		return nil, TranslateError(err, "commissions for periode %s", in.Periode)
	}
	out := make([]engine.Commission, 0, len(rows))
	for _, row := range rows {
		out = append(out, CommissionToEngine(row))
	}
	return out, nil
}

// FindBaremeForCommission resolves the grid of the commission's contract in force at the commission date.
func (r *CommissionRepository) FindBaremeForCommission(ctx context.Context, commission engine.Commission) (*engine.Bareme, error) {
	contrat, err := r.FindContratByID(ctx, commission.ContratID)
	if err != nil {
		return nil, err
	}
	return r.FindBaremeAtDate(ctx, *contrat, commission.DateCreation)
}

func (r *CommissionRepository) FindStatutAPayer(ctx context.Context) (*engine.Statut, error) {
	statut, err := r.FindStatutByCode(ctx, database.StatutAPayer)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &engine.Statut{ID: statut.ID, Code: statut.Code}, nil
}

func (r *CommissionRepository) FindReprisesForPeriode(ctx context.Context, in engine.BordereauInput) ([]engine.Reprise, error) {
	var rows []models.RepriseCommission
	err := r.db.WithContext(ctx).
		Where("organisation_id = ? AND apporteur_id = ? AND periode_application = ? AND statut = ?",
			in.OrganisationID, in.ApporteurID, in.Periode, string(engine.StatutRepriseEnAttente)).
		Order("created_at asc, reference asc").
		Find(&rows).Error
	if err != nil {
		return nil, TranslateError(err, "reprises for periode %s", in.Periode)
	}
	out := make([]engine.Reprise, 0, len(rows))
	for _, row := range rows {
		out = append(out, engine.Reprise{
			ID:                    row.ID,
			CommissionOriginaleID: row.CommissionOriginaleID,
			ContratID:             row.ContratID,
			ApporteurID:           row.ApporteurID,
			TypeReprise:           engine.ParseTypeReprise(row.TypeReprise),
			PeriodeApplication:    row.PeriodeApplication,
		})
	}
	return out, nil
}

func (r *CommissionRepository) UpdateReprise(ctx context.Context, id string, update engine.RepriseUpdate) error {
	updates := map[string]interface{}{
		"montant_reprise":  money.ToDecimal(update.MontantReprise),
		"statut":           string(update.Statut),
		"date_application": update.DateApplication,
	}
	if update.BordereauID != "" {
		updates["bordereau_id"] = update.BordereauID
	}
	res := r.db.WithContext(ctx).Model(&models.RepriseCommission{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return TranslateError(res.Error, "reprise %s", id)
	}
	if res.RowsAffected == 0 {
		return TranslateError(gorm.ErrRecordNotFound, "reprise %s", id)
	}
	return nil
}

// FindRecurrencesForPeriode lists installments collected during the period on the apporteur's
// contracts that have no recurring line yet. Contracts with suspended recurrence are skipped.
func (r *CommissionRepository) FindRecurrencesForPeriode(ctx context.Context, in engine.BordereauInput) ([]engine.RecurrenceCandidate, error) {
	debut, err := engine.DebutPeriode(in.Periode)
	if err != nil {
		return nil, err
	}
	fin := debut.AddDate(0, 1, 0)

	var rows []models.Echeance
	err = r.db.WithContext(ctx).
		Joins("JOIN contrats ON contrats.id = echeances.contrat_id").
		Where("contrats.organisation_id = ? AND contrats.apporteur_id = ?", in.OrganisationID, in.ApporteurID).
		Where("contrats.recurrence_suspendue = ?", false).
		Where("echeances.statut = ?", models.EcheancePayee).
		Where("echeances.date_paiement >= ? AND echeances.date_paiement < ?", debut, fin).
		Where("NOT EXISTS (SELECT 1 FROM commissions_recurrentes cr WHERE cr.contrat_id = echeances.contrat_id AND cr.echeance_id = echeances.id)").
		Order("echeances.date_paiement asc, echeances.numero asc").
		Find(&rows).Error
	if err != nil {
		return nil, TranslateError(err, "recurrences for periode %s", in.Periode)
	}
	out := make([]engine.RecurrenceCandidate, 0, len(rows))
	for _, row := range rows {
		out = append(out, engine.RecurrenceCandidate{
			ID:               row.ID,
			ContratID:        row.ContratID,
			EcheanceID:       row.ID,
			DateEncaissement: row.DatePaiement,
		})
	}
	return out, nil
}

// FindRecurrencesNonIncluses lists active recurring lines of the apporteur's contracts, generated
// up to the period, that no statement carries yet.
func (r *CommissionRepository) FindRecurrencesNonIncluses(ctx context.Context, in engine.BordereauInput) ([]engine.CommissionRecurrente, error) {
	var rows []models.CommissionRecurrente
	err := r.db.WithContext(ctx).
		Where("organisation_id = ? AND statut = ? AND bordereau_id IS NULL AND periode <= ?",
			in.OrganisationID, string(engine.StatutRecurrenceActive), in.Periode).
		Where("contrat_id IN (?)", r.db.Model(&models.Contrat{}).Select("id").Where("apporteur_id = ?", in.ApporteurID)).
		Order("periode asc, numero_mois asc").
		Find(&rows).Error
	if err != nil {
		return nil, TranslateError(err, "recurrences non incluses of apporteur %s", in.ApporteurID)
	}
	out := make([]engine.CommissionRecurrente, 0, len(rows))
	for _, row := range rows {
		out = append(out, RecurrenceToEngine(row))
	}
	return out, nil
}

func (r *CommissionRepository) MarquerRecurrenceIncluse(ctx context.Context, id, bordereauID string) error {
	res := r.db.WithContext(ctx).Model(&models.CommissionRecurrente{}).
		Where("id = ? AND bordereau_id IS NULL", id).
		Update("bordereau_id", bordereauID)
	if res.Error != nil {
		return TranslateError(res.Error, "recurrence %s", id)
	}
	if res.RowsAffected == 0 {
		return status.Errorf(codes.FailedPrecondition, "recurrence %s already included or missing", id)
	}
	return nil
}

func (r *CommissionRepository) SuspendRecurrences(ctx context.Context, contratID string) error {
	return r.setRecurrenceSuspendue(ctx, contratID, true, engine.StatutRecurrenceActive, engine.StatutRecurrenceSuspendue)
}

func (r *CommissionRepository) ResumeRecurrences(ctx context.Context, contratID string) error {
	return r.setRecurrenceSuspendue(ctx, contratID, false, engine.StatutRecurrenceSuspendue, engine.StatutRecurrenceActive)
}

func (r *CommissionRepository) setRecurrenceSuspendue(ctx context.Context, contratID string, suspendue bool, from, to engine.StatutRecurrence) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Contrat{}).Where("id = ?", contratID).Update("recurrence_suspendue", suspendue)
		if res.Error != nil {
			return TranslateError(res.Error, "contrat %s", contratID)
		}
		if res.RowsAffected == 0 {
			return TranslateError(gorm.ErrRecordNotFound, "contrat %s", contratID)
		}
		err := tx.Model(&models.CommissionRecurrente{}).
			Where("contrat_id = ? AND statut = ?", contratID, string(from)).
			Update("statut", string(to)).Error
		return TranslateError(err, "recurrences of contrat %s", contratID)
	})
}

func (r *CommissionRepository) FindReportsNegatifs(ctx context.Context, in engine.BordereauInput) ([]engine.ReportNegatif, error) {
	var rows []models.ReportNegatif
	err := r.db.WithContext(ctx).
		Where("organisation_id = ? AND apporteur_id = ? AND statut = ? AND periode_origine < ?",
			in.OrganisationID, in.ApporteurID, string(engine.StatutReportEnCours), in.Periode).
		Order("periode_origine asc, created_at asc").
		Find(&rows).Error
	if err != nil {
		return nil, TranslateError(err, "reports negatifs of apporteur %s", in.ApporteurID)
	}
	out := make([]engine.ReportNegatif, 0, len(rows))
	for _, row := range rows {
		out = append(out, reportToEngine(row))
	}
	return out, nil
}

func reportToEngine(row models.ReportNegatif) engine.ReportNegatif {
	return engine.ReportNegatif{
		ID:             row.ID,
		ApporteurID:    row.ApporteurID,
		PeriodeOrigine: row.PeriodeOrigine,
		MontantRestant: money.FromDecimal(row.MontantRestant),
	}
}

func (r *CommissionRepository) ApurerReport(ctx context.Context, id, bordereauID string) error {
	res := r.db.WithContext(ctx).Model(&models.ReportNegatif{}).
		Where("id = ? AND statut = ?", id, string(engine.StatutReportEnCours)).
		Updates(map[string]interface{}{
			"statut":                   string(engine.StatutReportApure),
			"montant_restant":          money.ToDecimal(0),
			"bordereau_application_id": bordereauID,
		})
	if res.Error != nil {
		return TranslateError(res.Error, "report negatif %s", id)
	}
	if res.RowsAffected == 0 {
		return TranslateError(gorm.ErrRecordNotFound, "report negatif %s", id)
	}
	return nil
}

func (r *CommissionRepository) CreateReportNegatif(ctx context.Context, organisationID string, report engine.ReportNegatifResult) (*engine.ReportNegatif, error) {
	row := models.ReportNegatif{
		OrganisationID: organisationID,
		ApporteurID:    report.ApporteurID,
		PeriodeOrigine: report.PeriodeOrigine,
		PeriodeCible:   report.PeriodeCible,
		MontantInitial: money.ToDecimal(report.Montant),
		MontantRestant: money.ToDecimal(report.Montant),
		Statut:         string(engine.StatutReportEnCours),
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, TranslateError(err, "report negatif for periode %s", report.PeriodeOrigine)
	}
	out := reportToEngine(row)
	return &out, nil
}

func (r *CommissionRepository) CreateBordereau(ctx context.Context, in engine.BordereauInput) (*engine.Bordereau, error) {
	row := models.BordereauCommission{
		OrganisationID: in.OrganisationID,
		ApporteurID:    in.ApporteurID,
		Periode:        in.Periode,
		Reference:      in.Reference,
		Statut:         string(engine.StatutBordereauBrouillon),
		CreePar:        strPtr(in.CreePar),
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, TranslateError(err, "bordereau for apporteur %s and periode %s", in.ApporteurID, in.Periode)
	}
	out := BordereauToEngine(row)
	return &out, nil
}

func (r *CommissionRepository) CreateLigne(ctx context.Context, ligne engine.Ligne) (*engine.Ligne, error) {
	row := LigneFromEngine(ligne)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, TranslateError(err, "ligne %d of bordereau %s", ligne.Ordre, ligne.BordereauID)
	}
	out := LigneToEngine(row)
	return &out, nil
}

func (r *CommissionRepository) UpdateBordereau(ctx context.Context, id string, update engine.BordereauUpdate) (*engine.Bordereau, error) {
	var row models.BordereauCommission
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&row, "id = ?", id).Error; err != nil {
			return err
		}
		return tx.Model(&row).Updates(map[string]interface{}{
			"nombre_lignes":     update.NombreLignes,
			"total_brut":        money.ToDecimal(update.Totaux.TotalBrut),
			"total_reprises":    money.ToDecimal(update.Totaux.TotalReprises),
			"total_acomptes":    money.ToDecimal(update.Totaux.TotalAcomptes),
			"total_net_a_payer": money.ToDecimal(update.Totaux.TotalNetAPayer),
		}).Error
	})
	if err != nil {
		return nil, TranslateError(err, "bordereau %s", id)
	}
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return nil, TranslateError(err, "bordereau %s", id)
	}
	out := BordereauToEngine(row)
	return &out, nil
}

func (r *CommissionRepository) Audit(ctx context.Context, entry engine.AuditEntry) error {
	row := models.CommissionAuditLog{
		OrganisationID: entry.OrganisationID,
		Scope:          string(entry.Scope),
		Action:         string(entry.Action),
		RefID:          entry.RefID,
		ContratID:      strPtr(entry.ContratID),
		ApporteurID:    strPtr(entry.ApporteurID),
		Periode:        strPtr(entry.Periode),
		BeforeData:     jsonMap(entry.BeforeData),
		AfterData:      jsonMap(entry.AfterData),
		Metadata:       jsonMap(entry.Metadata),
	}
	return TranslateError(r.db.WithContext(ctx).Create(&row).Error, "audit %s on %s", entry.Action, entry.RefID)
}

func jsonMap(data map[string]any) models.JSONMap {
	if data == nil {
		return nil
	}
	return models.JSONMap(data)
}
