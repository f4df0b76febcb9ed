package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// JSONMap stores free-form audit payloads as a JSON text column.
type JSONMap map[string]any

func (m *JSONMap) Scan(value interface{}) error {
	if value == nil {
		*m = nil
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("failed to scan JSONMap: %v", value)
	}
	return json.Unmarshal(bytes, m)
}

func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Base carries the uuid primary key and timestamps shared by every table.
type Base struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

type StatutCommission struct {
	Base
	Code string `gorm:"type:varchar(32);uniqueIndex;not null" json:"code"`
	Nom  string `gorm:"type:varchar(64);not null" json:"nom"`
}

func (StatutCommission) TableName() string { return "statuts_commission" }

// BaremeCommission is one immutable version of a rate grid.
type BaremeCommission struct {
	Base
	OrganisationID      string              `gorm:"type:varchar(36);uniqueIndex:idx_bareme_version;not null" json:"organisation_id"`
	Code                string              `gorm:"type:varchar(64);uniqueIndex:idx_bareme_version;not null" json:"code"`
	Version             int                 `gorm:"uniqueIndex:idx_bareme_version;not null" json:"version"`
	Nom                 string              `gorm:"type:varchar(128);not null" json:"nom"`
	TypeCalcul          string              `gorm:"type:varchar(16);not null" json:"type_calcul"`
	TauxPourcentage     decimal.Decimal     `gorm:"type:decimal(8,4);not null;default:0" json:"taux_pourcentage"`
	MontantFixe         decimal.Decimal     `gorm:"type:decimal(12,2);not null;default:0" json:"montant_fixe"`
	RecurrenceActive    bool                `gorm:"not null;default:false" json:"recurrence_active"`
	TauxRecurrence      decimal.NullDecimal `gorm:"type:decimal(8,4)" json:"taux_recurrence"`
	DureeRecurrenceMois *int                `json:"duree_recurrence_mois"`
	TauxReprise         decimal.Decimal     `gorm:"type:decimal(8,4);not null;default:100" json:"taux_reprise"`
	DureeReprisesMois   int                 `gorm:"not null;default:3" json:"duree_reprises_mois"`
	TypeProduit         *string             `gorm:"type:varchar(64)" json:"type_produit"`
	CanalVente          *string             `gorm:"type:varchar(64)" json:"canal_vente"`
	DateEffet           time.Time           `gorm:"index;not null" json:"date_effet"`
	DateFin             *time.Time          `json:"date_fin"`
	CreePar             *string             `gorm:"type:varchar(36)" json:"cree_par"`
	MotifModification   *string             `gorm:"type:text" json:"motif_modification"`

	Paliers []PalierCommission `gorm:"foreignKey:BaremeID" json:"paliers"`
}

func (BaremeCommission) TableName() string { return "baremes_commission" }

type PalierCommission struct {
	Base
	BaremeID     string              `gorm:"type:varchar(36);index;not null" json:"bareme_id"`
	Code         string              `gorm:"type:varchar(64);not null" json:"code"`
	Nom          string              `gorm:"type:varchar(128)" json:"nom"`
	TypePalier   string              `gorm:"type:varchar(32);not null;default:volume" json:"type_palier"`
	SeuilMin     decimal.Decimal     `gorm:"type:decimal(12,2);not null" json:"seuil_min"`
	SeuilMax     decimal.NullDecimal `gorm:"type:decimal(12,2)" json:"seuil_max"`
	MontantPrime decimal.Decimal     `gorm:"type:decimal(12,2);not null;default:0" json:"montant_prime"`
	TauxBonus    decimal.Decimal     `gorm:"type:decimal(8,4);not null;default:0" json:"taux_bonus"`
	Ordre        int                 `gorm:"not null;default:0" json:"ordre"`
	Actif        bool                `gorm:"not null" json:"actif"`
}

func (PalierCommission) TableName() string { return "paliers_commission" }

type Contrat struct {
	Base
	OrganisationID string          `gorm:"type:varchar(36);index;not null" json:"organisation_id"`
	ApporteurID    string          `gorm:"type:varchar(36);index;not null" json:"apporteur_id"`
	Reference      string          `gorm:"type:varchar(64);uniqueIndex;not null" json:"reference"`
	Statut         string          `gorm:"type:varchar(32);not null" json:"statut"`
	BaremeCode     string          `gorm:"type:varchar(64);not null" json:"bareme_code"`
	MontantBase    decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"montant_base"`
	DateDebut      time.Time       `gorm:"not null" json:"date_debut"`
	DateFin        *time.Time      `json:"date_fin"`
	ValideCQ       *bool           `json:"valide_cq"`
	// RecurrenceSuspendue halts recurring commission after an unpaid clawback.
	RecurrenceSuspendue bool `gorm:"not null;default:false" json:"recurrence_suspendue"`
}

func (Contrat) TableName() string { return "contrats" }

const (
	EcheanceEnAttente = "en_attente"
	EcheancePayee     = "payee"
	EcheanceImpayee   = "impayee"
)

type Echeance struct {
	Base
	ContratID    string          `gorm:"type:varchar(36);index;not null" json:"contrat_id"`
	Numero       int             `gorm:"not null" json:"numero"`
	DateEcheance time.Time       `gorm:"not null" json:"date_echeance"`
	Montant      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"montant"`
	Statut       string          `gorm:"type:varchar(16);index;not null" json:"statut"`
	DatePaiement *time.Time      `gorm:"index" json:"date_paiement"`
}

func (Echeance) TableName() string { return "echeances" }

type Commission struct {
	Base
	OrganisationID    string            `gorm:"type:varchar(36);index:idx_commission_scope;not null" json:"organisation_id"`
	ApporteurID       string            `gorm:"type:varchar(36);index:idx_commission_scope;not null" json:"apporteur_id"`
	Periode           string            `gorm:"type:varchar(7);index:idx_commission_scope;not null" json:"periode"`
	ContratID         string            `gorm:"type:varchar(36);index;not null" json:"contrat_id"`
	Reference         string            `gorm:"type:varchar(64);uniqueIndex;not null" json:"reference"`
	MontantBrut       decimal.Decimal   `gorm:"type:decimal(12,2);not null" json:"montant_brut"`
	MontantReprises   decimal.Decimal   `gorm:"type:decimal(12,2);not null;default:0" json:"montant_reprises"`
	MontantAcomptes   decimal.Decimal   `gorm:"type:decimal(12,2);not null;default:0" json:"montant_acomptes"`
	MontantNetAPayer  decimal.Decimal   `gorm:"type:decimal(12,2);not null" json:"montant_net_a_payer"`
	StatutID          string            `gorm:"type:varchar(36);index;not null" json:"statut_id"`
	Statut            *StatutCommission `gorm:"foreignKey:StatutID" json:"statut,omitempty"`
	EcheanceID        *string           `gorm:"type:varchar(36)" json:"echeance_id"`
	DateCreation      time.Time         `gorm:"not null" json:"date_creation"`
	ContratValideCQ   *bool             `json:"contrat_valide_cq"`
	EcheanceEncaissee *bool             `json:"echeance_encaissee"`
}

func (Commission) TableName() string { return "commissions" }

type RepriseCommission struct {
	Base
	OrganisationID        string          `gorm:"type:varchar(36);index;not null" json:"organisation_id"`
	Reference             string          `gorm:"type:varchar(64);uniqueIndex;not null" json:"reference"`
	CommissionOriginaleID string          `gorm:"type:varchar(36);index;not null" json:"commission_originale_id"`
	ContratID             string          `gorm:"type:varchar(36);index;not null" json:"contrat_id"`
	ApporteurID           string          `gorm:"type:varchar(36);index:idx_reprise_application;not null" json:"apporteur_id"`
	TypeReprise           string          `gorm:"type:varchar(32);not null" json:"type_reprise"`
	MontantReprise        decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"montant_reprise"`
	TauxReprise           decimal.Decimal `gorm:"type:decimal(8,4);not null;default:100" json:"taux_reprise"`
	MontantOriginal       decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"montant_original"`
	PeriodeOrigine        string          `gorm:"type:varchar(7);not null" json:"periode_origine"`
	PeriodeApplication    string          `gorm:"type:varchar(7);index:idx_reprise_application;not null" json:"periode_application"`
	DateEvenement         time.Time       `gorm:"not null" json:"date_evenement"`
	DateApplication       *time.Time      `json:"date_application"`
	Statut                string          `gorm:"type:varchar(16);index;not null" json:"statut"`
	BordereauID           *string         `gorm:"type:varchar(36);index" json:"bordereau_id"`
	Motif                 *string         `gorm:"type:text" json:"motif"`
	DateRegularisation    *time.Time      `json:"date_regularisation"`
}

func (RepriseCommission) TableName() string { return "reprises_commission" }

type CommissionRecurrente struct {
	Base
	OrganisationID   string          `gorm:"type:varchar(36);index;not null" json:"organisation_id"`
	ContratID        string          `gorm:"type:varchar(36);uniqueIndex:idx_recurrence_echeance;not null" json:"contrat_id"`
	EcheanceID       string          `gorm:"type:varchar(36);uniqueIndex:idx_recurrence_echeance;not null" json:"echeance_id"`
	BaremeID         string          `gorm:"type:varchar(36);not null" json:"bareme_id"`
	BaremeVersion    int             `gorm:"not null" json:"bareme_version"`
	Periode          string          `gorm:"type:varchar(7);index;not null" json:"periode"`
	NumeroMois       int             `gorm:"not null" json:"numero_mois"`
	MontantBase      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"montant_base"`
	TauxRecurrence   decimal.Decimal `gorm:"type:decimal(8,4);not null" json:"taux_recurrence"`
	MontantCalcule   decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"montant_calcule"`
	DateEncaissement time.Time       `gorm:"not null" json:"date_encaissement"`
	Statut           string          `gorm:"type:varchar(16);index;not null" json:"statut"`
	BordereauID      *string         `gorm:"type:varchar(36);index" json:"bordereau_id"`
}

func (CommissionRecurrente) TableName() string { return "commissions_recurrentes" }

type ReportNegatif struct {
	Base
	OrganisationID         string          `gorm:"type:varchar(36);index;not null" json:"organisation_id"`
	ApporteurID            string          `gorm:"type:varchar(36);index;not null" json:"apporteur_id"`
	PeriodeOrigine         string          `gorm:"type:varchar(7);not null" json:"periode_origine"`
	PeriodeCible           string          `gorm:"type:varchar(7);not null" json:"periode_cible"`
	MontantInitial         decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"montant_initial"`
	MontantRestant         decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"montant_restant"`
	Statut                 string          `gorm:"type:varchar(16);index;not null" json:"statut"`
	BordereauApplicationID *string         `gorm:"type:varchar(36)" json:"bordereau_application_id"`
}

func (ReportNegatif) TableName() string { return "reports_negatifs" }

type BordereauCommission struct {
	Base
	OrganisationID string          `gorm:"type:varchar(36);uniqueIndex:idx_bordereau_scope;not null" json:"organisation_id"`
	ApporteurID    string          `gorm:"type:varchar(36);uniqueIndex:idx_bordereau_scope;not null" json:"apporteur_id"`
	Periode        string          `gorm:"type:varchar(7);uniqueIndex:idx_bordereau_scope;not null" json:"periode"`
	Reference      string          `gorm:"type:varchar(64);uniqueIndex;not null" json:"reference"`
	Statut         string          `gorm:"type:varchar(16);index;not null" json:"statut"`
	NombreLignes   int             `gorm:"not null;default:0" json:"nombre_lignes"`
	TotalBrut      decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"total_brut"`
	TotalReprises  decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"total_reprises"`
	TotalAcomptes  decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"total_acomptes"`
	TotalNetAPayer decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"total_net_a_payer"`
	CreePar        *string         `gorm:"type:varchar(36)" json:"cree_par"`
	ValidePar      *string         `gorm:"type:varchar(36)" json:"valide_par"`
	DateValidation *time.Time      `json:"date_validation"`

	Lignes []LigneBordereau `gorm:"foreignKey:BordereauID" json:"lignes,omitempty"`
}

func (BordereauCommission) TableName() string { return "bordereaux_commission" }

type LigneBordereau struct {
	Base
	OrganisationID   string          `gorm:"type:varchar(36);not null" json:"organisation_id"`
	BordereauID      string          `gorm:"type:varchar(36);index;not null" json:"bordereau_id"`
	CommissionID     *string         `gorm:"type:varchar(36);index" json:"commission_id"`
	RepriseID        *string         `gorm:"type:varchar(36)" json:"reprise_id"`
	ContestationID   *string         `gorm:"type:varchar(36)" json:"contestation_id"`
	TypeLigne        string          `gorm:"type:varchar(16);not null" json:"type_ligne"`
	ContratID        string          `gorm:"type:varchar(64);not null" json:"contrat_id"`
	ContratReference string          `gorm:"type:varchar(64)" json:"contrat_reference"`
	MontantBrut      decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"montant_brut"`
	MontantReprise   decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"montant_reprise"`
	MontantAcompte   decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"montant_acompte"`
	MontantNet       decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"montant_net"`
	BaseCalcul       *string         `gorm:"type:varchar(16)" json:"base_calcul"`
	TauxApplique     decimal.Decimal `gorm:"type:decimal(8,4);not null;default:0" json:"taux_applique"`
	BaremeID         *string         `gorm:"type:varchar(36)" json:"bareme_id"`
	StatutLigne      string          `gorm:"type:varchar(16);not null" json:"statut_ligne"`
	Selectionne      bool            `gorm:"not null" json:"selectionne"`
	MotifDeselection *string         `gorm:"type:varchar(64)" json:"motif_deselection"`
	Ordre            int             `gorm:"not null" json:"ordre"`
}

func (LigneBordereau) TableName() string { return "lignes_bordereau" }

type ContestationCommission struct {
	Base
	OrganisationID              string     `gorm:"type:varchar(36);index;not null" json:"organisation_id"`
	CommissionID                string     `gorm:"type:varchar(36);index;not null" json:"commission_id"`
	BordereauID                 string     `gorm:"type:varchar(36);index;not null" json:"bordereau_id"`
	ApporteurID                 string     `gorm:"type:varchar(36);not null" json:"apporteur_id"`
	Motif                       string     `gorm:"type:text;not null" json:"motif"`
	DateContestation            time.Time  `gorm:"not null" json:"date_contestation"`
	DateLimite                  time.Time  `gorm:"not null" json:"date_limite"`
	Statut                      string     `gorm:"type:varchar(16);index;not null" json:"statut"`
	StatutCommissionPrecedentID string     `gorm:"type:varchar(36);not null" json:"statut_commission_precedent_id"`
	Commentaire                 *string    `gorm:"type:text" json:"commentaire"`
	ResoluPar                   *string    `gorm:"type:varchar(36)" json:"resolu_par"`
	DateResolution              *time.Time `json:"date_resolution"`
	LigneRegularisationID       *string    `gorm:"type:varchar(36)" json:"ligne_regularisation_id"`
}

func (ContestationCommission) TableName() string { return "contestations_commission" }

var auditSequence atomic.Int64

// nextAuditSequence is strictly increasing within the process so audit rows keep insertion order.
func nextAuditSequence() int64 {
	for {
		last := auditSequence.Load()
		next := time.Now().UnixNano()
		if next <= last {
			next = last + 1
		}
		if auditSequence.CompareAndSwap(last, next) {
			return next
		}
	}
}

// CommissionAuditLog is insert-only.
type CommissionAuditLog struct {
	ID             string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	OrganisationID string    `gorm:"type:varchar(36);index;not null" json:"organisation_id"`
	Scope          string    `gorm:"type:varchar(16);not null" json:"scope"`
	Action         string    `gorm:"type:varchar(64);index;not null" json:"action"`
	RefID          string    `gorm:"type:varchar(64);index;not null" json:"ref_id"`
	ContratID      *string   `gorm:"type:varchar(64)" json:"contrat_id"`
	ApporteurID    *string   `gorm:"type:varchar(36)" json:"apporteur_id"`
	Periode        *string   `gorm:"type:varchar(7)" json:"periode"`
	BeforeData     JSONMap   `gorm:"type:text" json:"before_data"`
	AfterData      JSONMap   `gorm:"type:text" json:"after_data"`
	Metadata       JSONMap   `gorm:"type:text" json:"metadata"`
	Sequence       int64     `gorm:"index;not null" json:"sequence"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (CommissionAuditLog) TableName() string { return "commission_audit_logs" }

func (l *CommissionAuditLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	if l.Sequence == 0 {
		l.Sequence = nextAuditSequence()
	}
	return nil
}

// BeforeUpdate rejects any attempt to rewrite an audit record.
func (l *CommissionAuditLog) BeforeUpdate(tx *gorm.DB) error {
	return fmt.Errorf("commission audit log %s is append-only", l.ID)
}

func (l *CommissionAuditLog) BeforeDelete(tx *gorm.DB) error {
	return fmt.Errorf("commission audit log %s is append-only", l.ID)
}
