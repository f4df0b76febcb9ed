package repository

import (
	"context"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"crm-commissions/internal/database/models"
	"crm-commissions/internal/services/commissions/engine"
)

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

func (r *CommissionRepository) forUpdate(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"})
}

// --- Statuts & Commissions ---

func (r *CommissionRepository) FindStatutByCode(ctx context.Context, code string) (*models.StatutCommission, error) {
	var row models.StatutCommission
	if err := r.db.WithContext(ctx).First(&row, "code = ?", code).Error; err != nil {
		return nil, TranslateError(err, "statut %s", code)
	}
	return &row, nil
}

func (r *CommissionRepository) FindCommissionModel(ctx context.Context, id string) (*models.Commission, error) {
	var row models.Commission
	if err := r.db.WithContext(ctx).Preload("Statut").First(&row, "id = ?", id).Error; err != nil {
		return nil, TranslateError(err, "commission %s", id)
	}
	return &row, nil
}

func (r *CommissionRepository) UpdateCommissionStatut(ctx context.Context, id, statutID string) error {
	res := r.db.WithContext(ctx).Model(&models.Commission{}).Where("id = ?", id).Update("statut_id", statutID)
	if res.Error != nil {
		return TranslateError(res.Error, "commission %s", id)
	}
	if res.RowsAffected == 0 {
		return TranslateError(gorm.ErrRecordNotFound, "commission %s", id)
	}
	return nil
}

// --- Baremes ---

func (r *CommissionRepository) FindBaremeModel(ctx context.Context, id string) (*models.BaremeCommission, error) {
	var row models.BaremeCommission
	err := r.db.WithContext(ctx).
		Preload("Paliers", func(db *gorm.DB) *gorm.DB { return db.Order("ordre asc") }).
		First(&row, "id = ?", id).Error
	if err != nil {
		return nil, TranslateError(err, "bareme %s", id)
	}
	return &row, nil
}

// LatestBaremeVersion locks and returns the highest version of a grid code.
func (r *CommissionRepository) LatestBaremeVersion(ctx context.Context, organisationID, code string) (*models.BaremeCommission, error) {
	var row models.BaremeCommission
	err := r.forUpdate(ctx).
		Where("organisation_id = ? AND code = ?", organisationID, code).
		Order("version desc").
		First(&row).Error
	if err != nil {
		return nil, TranslateError(err, "bareme %s", code)
	}
	return &row, nil
}

// CreateBareme inserts a new grid version with its paliers. Existing versions are never updated.
func (r *CommissionRepository) CreateBareme(ctx context.Context, bareme *models.BaremeCommission) error {
	if err := r.db.WithContext(ctx).Create(bareme).Error; err != nil {
		return TranslateError(err, "bareme %s version %d", bareme.Code, bareme.Version)
	}
	return nil
}

// --- Bordereaux ---

func (r *CommissionRepository) FindBordereauModel(ctx context.Context, id string) (*models.BordereauCommission, error) {
	var row models.BordereauCommission
	err := r.db.WithContext(ctx).
		Preload("Lignes", func(db *gorm.DB) *gorm.DB { return db.Order("ordre asc") }).
		First(&row, "id = ?", id).Error
	if err != nil {
		return nil, TranslateError(err, "bordereau %s", id)
	}
	return &row, nil
}

func (r *CommissionRepository) LockBordereau(ctx context.Context, id string) (*models.BordereauCommission, error) {
	var row models.BordereauCommission
	if err := r.forUpdate(ctx).First(&row, "id = ?", id).Error; err != nil {
		return nil, TranslateError(err, "bordereau %s", id)
	}
	return &row, nil
}

func (r *CommissionRepository) FindLignes(ctx context.Context, bordereauID string) ([]models.LigneBordereau, error) {
	var rows []models.LigneBordereau
	if err := r.db.WithContext(ctx).Where("bordereau_id = ?", bordereauID).Order("ordre asc").Find(&rows).Error; err != nil {
		return nil, TranslateError(err, "lignes of bordereau %s", bordereauID)
	}
	return rows, nil
}

func (r *CommissionRepository) CommissionInBordereau(ctx context.Context, bordereauID, commissionID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.LigneBordereau{}).
		Where("bordereau_id = ? AND commission_id = ? AND type_ligne = ?", bordereauID, commissionID, string(engine.TypeLigneCommission)).
		Count(&count).Error
	if err != nil {
		return false, TranslateError(err, "lignes of bordereau %s", bordereauID)
	}
	return count > 0, nil
}

// AppendLigne adds a line after the existing ones without touching them or the totals.
func (r *CommissionRepository) AppendLigne(ctx context.Context, ligne engine.Ligne) (*engine.Ligne, error) {
	bordereau, err := r.LockBordereau(ctx, ligne.BordereauID)
	if err != nil {
		return nil, err
	}
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.LigneBordereau{}).Where("bordereau_id = ?", bordereau.ID).Count(&count).Error; err != nil {
		return nil, TranslateError(err, "lignes of bordereau %s", bordereau.ID)
	}
	ligne.OrganisationID = bordereau.OrganisationID
	ligne.Ordre = int(count)

	created, err := r.CreateLigne(ctx, ligne)
	if err != nil {
		return nil, err
	}
	err = r.db.WithContext(ctx).Model(&models.BordereauCommission{}).
		Where("id = ?", bordereau.ID).
		Update("nombre_lignes", count+1).Error
	if err != nil {
		return nil, TranslateError(err, "bordereau %s", bordereau.ID)
	}
	return created, nil
}

// ValiderBordereau locks line selection: selected lines become validee, the others rejetee.
func (r *CommissionRepository) ValiderBordereau(ctx context.Context, id, validateurID string, dateValidation time.Time) error {
	db := r.db.WithContext(ctx)
	if err := db.Model(&models.LigneBordereau{}).
		Where("bordereau_id = ? AND selectionne = ?", id, true).
		Update("statut_ligne", string(engine.StatutLigneValidee)).Error; err != nil {
		return TranslateError(err, "lignes of bordereau %s", id)
	}
	if err := db.Model(&models.LigneBordereau{}).
		Where("bordereau_id = ? AND selectionne = ?", id, false).
		Update("statut_ligne", string(engine.StatutLigneRejetee)).Error; err != nil {
		return TranslateError(err, "lignes of bordereau %s", id)
	}
	err := db.Model(&models.BordereauCommission{}).Where("id = ?", id).Updates(map[string]interface{}{
		"statut":          string(engine.StatutBordereauValide),
		"valide_par":      validateurID,
		"date_validation": dateValidation,
	}).Error
	return TranslateError(err, "bordereau %s", id)
}

// ApporteurPeriode identifies a statement still to generate.
type ApporteurPeriode struct {
	OrganisationID string
	ApporteurID    string
}

// FindApporteursSansBordereau lists the pairs with commissions in periode and no bordereau yet.
func (r *CommissionRepository) FindApporteursSansBordereau(ctx context.Context, periode string) ([]ApporteurPeriode, error) {
	var rows []ApporteurPeriode
	err := r.db.WithContext(ctx).
		Model(&models.Commission{}).
		Distinct("commissions.organisation_id", "commissions.apporteur_id").
		Where("commissions.periode = ?", periode).
		Where("NOT EXISTS (SELECT 1 FROM bordereaux_commission b WHERE b.organisation_id = commissions.organisation_id AND b.apporteur_id = commissions.apporteur_id AND b.periode = ?)", periode).
		Order("commissions.organisation_id asc, commissions.apporteur_id asc").
		Scan(&rows).Error
	if err != nil {
		return nil, TranslateError(err, "apporteurs for periode %s", periode)
	}
	return rows, nil
}

// --- Reprises ---

func (r *CommissionRepository) CreateReprise(ctx context.Context, reprise *models.RepriseCommission) error {
	if err := r.db.WithContext(ctx).Create(reprise).Error; err != nil {
		return TranslateError(err, "reprise %s", reprise.Reference)
	}
	return nil
}

func (r *CommissionRepository) LockReprise(ctx context.Context, id string) (*models.RepriseCommission, error) {
	var row models.RepriseCommission
	if err := r.forUpdate(ctx).First(&row, "id = ?", id).Error; err != nil {
		return nil, TranslateError(err, "reprise %s", id)
	}
	return &row, nil
}

func (r *CommissionRepository) MarkRepriseRegularisee(ctx context.Context, id string, date time.Time) error {
	err := r.db.WithContext(ctx).Model(&models.RepriseCommission{}).Where("id = ?", id).Update("date_regularisation", date).Error
	return TranslateError(err, "reprise %s", id)
}

// --- Contestations ---

func (r *CommissionRepository) CreateContestation(ctx context.Context, contestation *models.ContestationCommission) error {
	if err := r.db.WithContext(ctx).Create(contestation).Error; err != nil {
		return TranslateError(err, "contestation of commission %s", contestation.CommissionID)
	}
	return nil
}

func (r *CommissionRepository) HasContestationEnCours(ctx context.Context, commissionID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.ContestationCommission{}).
		Where("commission_id = ? AND statut = ?", commissionID, string(engine.StatutContestationEnCours)).
		Count(&count).Error
	if err != nil {
		return false, TranslateError(err, "contestations of commission %s", commissionID)
	}
	return count > 0, nil
}

func (r *CommissionRepository) LockContestation(ctx context.Context, id string) (*models.ContestationCommission, error) {
	var row models.ContestationCommission
	if err := r.forUpdate(ctx).First(&row, "id = ?", id).Error; err != nil {
		return nil, TranslateError(err, "contestation %s", id)
	}
	return &row, nil
}

func (r *CommissionRepository) SaveContestation(ctx context.Context, contestation *models.ContestationCommission) error {
	return TranslateError(r.db.WithContext(ctx).Save(contestation).Error, "contestation %s", contestation.ID)
}

// --- Audit ---

// AuditFilter narrows an audit trail query. Empty fields match everything.
type AuditFilter struct {
	OrganisationID string
	RefID          string
	Scope          string
	Action         string
}

func (r *CommissionRepository) ListAuditLogs(ctx context.Context, filter AuditFilter) ([]models.CommissionAuditLog, error) {
	q := r.db.WithContext(ctx)
	if filter.OrganisationID != "" {
		q = q.Where("organisation_id = ?", filter.OrganisationID)
	}
	if filter.RefID != "" {
		q = q.Where("ref_id = ?", filter.RefID)
	}
	if filter.Scope != "" {
		q = q.Where("scope = ?", filter.Scope)
	}
	if filter.Action != "" {
		q = q.Where("action = ?", filter.Action)
	}
	var rows []models.CommissionAuditLog
	if err := q.Order("sequence asc").Find(&rows).Error; err != nil {
		return nil, TranslateError(err, "audit logs")
	}
	return rows, nil
}

// --- Listings ---

const (
	DEFAULT_PAGE_LIMIT = 20
	MAX_PAGE_LIMIT     = 100
)

// Page is a 1-based page of at most Limit rows. Zero values fall back to the first default page.
type Page struct {
	Page  int
	Limit int
}

func (p Page) apply(q *gorm.DB) *gorm.DB {
	limit := p.Limit
	if limit <= 0 {
		limit = DEFAULT_PAGE_LIMIT
	}
	if limit > MAX_PAGE_LIMIT {
		limit = MAX_PAGE_LIMIT
	}
	page := p.Page
	if page < 1 {
		page = 1
	}
	return q.Offset((page - 1) * limit).Limit(limit)
}

// ContestationFilter narrows a contestation listing. Empty fields match everything.
type ContestationFilter struct {
	OrganisationID string
	CommissionID   string
	BordereauID    string
	ApporteurID    string
	Statut         string
}

func (r *CommissionRepository) ListContestations(ctx context.Context, filter ContestationFilter, page Page) ([]models.ContestationCommission, int64, error) {
	q := r.db.WithContext(ctx).Model(&models.ContestationCommission{}).Where("organisation_id = ?", filter.OrganisationID)
	if filter.CommissionID != "" {
		q = q.Where("commission_id = ?", filter.CommissionID)
	}
	if filter.BordereauID != "" {
		q = q.Where("bordereau_id = ?", filter.BordereauID)
	}
	if filter.ApporteurID != "" {
		q = q.Where("apporteur_id = ?", filter.ApporteurID)
	}
	if filter.Statut != "" {
		q = q.Where("statut = ?", filter.Statut)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, TranslateError(err, "contestations")
	}
	var rows []models.ContestationCommission
	if err := page.apply(q).Order("date_contestation desc, id asc").Find(&rows).Error; err != nil {
		return nil, 0, TranslateError(err, "contestations")
	}
	return rows, total, nil
}

// RecurrenceFilter narrows a recurrence listing. Empty fields match everything.
type RecurrenceFilter struct {
	OrganisationID string
	ApporteurID    string
	ContratID      string
	Statut         string
	Periode        string
}

func (r *CommissionRepository) ListRecurrences(ctx context.Context, filter RecurrenceFilter, page Page) ([]models.CommissionRecurrente, int64, error) {
	q := r.db.WithContext(ctx).Model(&models.CommissionRecurrente{}).Where("organisation_id = ?", filter.OrganisationID)
	if filter.ApporteurID != "" {
		q = q.Where("contrat_id IN (?)", r.db.Model(&models.Contrat{}).Select("id").Where("apporteur_id = ?", filter.ApporteurID))
	}
	if filter.ContratID != "" {
		q = q.Where("contrat_id = ?", filter.ContratID)
	}
	if filter.Statut != "" {
		q = q.Where("statut = ?", filter.Statut)
	}
	if filter.Periode != "" {
		q = q.Where("periode = ?", filter.Periode)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, TranslateError(err, "recurrences")
	}
	var rows []models.CommissionRecurrente
	if err := page.apply(q).Order("periode desc, numero_mois desc").Find(&rows).Error; err != nil {
		return nil, 0, TranslateError(err, "recurrences")
	}
	return rows, total, nil
}

// ReportFilter narrows a carry-forward listing. Empty fields match everything.
type ReportFilter struct {
	OrganisationID string
	ApporteurID    string
	Statut         string
}

func (r *CommissionRepository) ListReportsNegatifs(ctx context.Context, filter ReportFilter, page Page) ([]models.ReportNegatif, int64, error) {
	q := r.db.WithContext(ctx).Model(&models.ReportNegatif{}).Where("organisation_id = ?", filter.OrganisationID)
	if filter.ApporteurID != "" {
		q = q.Where("apporteur_id = ?", filter.ApporteurID)
	}
	if filter.Statut != "" {
		q = q.Where("statut = ?", filter.Statut)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, TranslateError(err, "reports negatifs")
	}
	var rows []models.ReportNegatif
	if err := page.apply(q).Order("periode_origine desc, created_at desc").Find(&rows).Error; err != nil {
		return nil, 0, TranslateError(err, "reports negatifs")
	}
	return rows, total, nil
}

// --- Selection ---

// SelectionUpdate is the selection state written on the lines of a draft bordereau.
type SelectionUpdate struct {
	Selectionne      bool
	StatutLigne      engine.StatutLigne
	MotifDeselection string
}

// UpdateSelection applies update to the given lines of a bordereau and returns how many rows changed.
func (r *CommissionRepository) UpdateSelection(ctx context.Context, bordereauID string, ligneIDs []string, update SelectionUpdate) (int64, error) {
	if len(ligneIDs) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).Model(&models.LigneBordereau{}).
		Where("bordereau_id = ? AND id IN ?", bordereauID, ligneIDs).
		Updates(map[string]interface{}{
			"selectionne":       update.Selectionne,
			"statut_ligne":      string(update.StatutLigne),
			"motif_deselection": strPtr(update.MotifDeselection),
		})
	if res.Error != nil {
		return 0, TranslateError(res.Error, "lignes of bordereau %s", bordereauID)
	}
	return res.RowsAffected, nil
}
