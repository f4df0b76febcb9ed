package engine

import (
	"strings"
	"time"
)

type TypeCalcul string

const (
	TypeCalculPourcentage TypeCalcul = "pourcentage"
	TypeCalculFixe        TypeCalcul = "fixe"
	TypeCalculMixte       TypeCalcul = "mixte"
)

type TypeReprise string

const (
	TypeRepriseResiliation    TypeReprise = "resiliation"
	TypeRepriseImpaye         TypeReprise = "impaye"
	TypeRepriseAnnulation     TypeReprise = "annulation"
	TypeRepriseRegularisation TypeReprise = "regularisation"
)

// ParseTypeReprise normalises a stored reprise type. Unknown values fall back to resiliation.
func ParseTypeReprise(value string) TypeReprise {
	switch TypeReprise(strings.ToLower(strings.TrimSpace(value))) {
	case TypeRepriseImpaye:
		return TypeRepriseImpaye
	case TypeRepriseAnnulation:
		return TypeRepriseAnnulation
	case TypeRepriseRegularisation:
		return TypeRepriseRegularisation
	default:
		return TypeRepriseResiliation
	}
}

// FenetreReprise is the clawback window in months for a reprise type.
func FenetreReprise(t TypeReprise) int {
	if t == TypeRepriseResiliation {
		return 12
	}
	return 3
}

type StatutReprise string

const (
	StatutRepriseEnAttente StatutReprise = "en_attente"
	StatutRepriseAppliquee StatutReprise = "appliquee"
	StatutRepriseAnnulee   StatutReprise = "annulee"
)

type TypeLigne string

const (
	TypeLigneCommission     TypeLigne = "commission"
	TypeLigneReprise        TypeLigne = "reprise"
	TypeLigneAcompte        TypeLigne = "acompte"
	TypeLignePrime          TypeLigne = "prime"
	TypeLigneRegularisation TypeLigne = "regularisation"
)

type StatutLigne string

const (
	StatutLigneSelectionnee   StatutLigne = "selectionnee"
	StatutLigneDeselectionnee StatutLigne = "deselectionnee"
	StatutLigneValidee        StatutLigne = "validee"
	StatutLigneRejetee        StatutLigne = "rejetee"
)

// MotifNonEligibleADV marks a commission line excluded by the payable/validated/collected gate.
const MotifNonEligibleADV = "NON_ELIGIBLE_ADV"

// MotifDeselectionManuelle is recorded on lines an operator removed from a draft bordereau.
const MotifDeselectionManuelle = "DESELECTION_MANUELLE"

type StatutBordereau string

const (
	StatutBordereauBrouillon StatutBordereau = "brouillon"
	StatutBordereauValide    StatutBordereau = "valide"
	StatutBordereauExporte   StatutBordereau = "exporte"
	StatutBordereauArchive   StatutBordereau = "archive"
)

type StatutContestation string

const (
	StatutContestationEnCours  StatutContestation = "en_cours"
	StatutContestationAcceptee StatutContestation = "acceptee"
	StatutContestationRejetee  StatutContestation = "rejetee"
)

type StatutRecurrence string

const (
	StatutRecurrenceActive    StatutRecurrence = "active"
	StatutRecurrenceSuspendue StatutRecurrence = "suspendue"
	StatutRecurrenceTerminee  StatutRecurrence = "terminee"
	StatutRecurrenceAnnulee   StatutRecurrence = "annulee"
)

type StatutReport string

const (
	StatutReportEnCours StatutReport = "en_cours"
	StatutReportApure   StatutReport = "apure"
	StatutReportAnnule  StatutReport = "annule"
)

// MotifRecurrence explains why no recurring line was produced.
type MotifRecurrence string

const (
	MotifEcheanceNonReglee MotifRecurrence = "ECHEANCE_NON_REGLEE"
	MotifContratResilie    MotifRecurrence = "CONTRAT_RESILIE"
	MotifDureeMaxAtteinte  MotifRecurrence = "DUREE_MAX_ATTEINTE"
)

type AuditScope string

const (
	ScopeCommission AuditScope = "commission"
	ScopeRecurrence AuditScope = "recurrence"
	ScopeReprise    AuditScope = "reprise"
	ScopeReport     AuditScope = "report"
	ScopeBordereau  AuditScope = "bordereau"
	ScopeLigne      AuditScope = "ligne"
	ScopeBareme     AuditScope = "bareme"
	ScopePalier     AuditScope = "palier"
	ScopeEngine     AuditScope = "engine"
)

type AuditAction string

const (
	ActionCommissionCalculated AuditAction = "commission_calculated"
	ActionRecurrenceGenerated  AuditAction = "recurrence_generated"
	ActionRecurrenceStopped    AuditAction = "recurrence_stopped"
	ActionRecurrenceResumed    AuditAction = "recurrence_resumed"
	ActionRecurrenceIncluded   AuditAction = "recurrence_included"
	ActionRecurrenceSkipped    AuditAction = "recurrence_skipped"
	ActionRepriseCreated       AuditAction = "reprise_created"
	ActionRepriseApplied       AuditAction = "reprise_applied"
	ActionRepriseCancelled     AuditAction = "reprise_cancelled"
	ActionRepriseRegularized   AuditAction = "reprise_regularized"
	ActionReportNegatifCreated AuditAction = "report_negatif_created"
	ActionReportNegatifApplied AuditAction = "report_negatif_applied"
	ActionBordereauCreated     AuditAction = "bordereau_created"
	ActionBordereauValidated   AuditAction = "bordereau_validated"
	ActionLignesSelection      AuditAction = "lignes_selection_updated"
	ActionLigneRegularisation  AuditAction = "ligne_regularisation_created"
	ActionContestationCreated  AuditAction = "contestation_created"
	ActionContestationResolved AuditAction = "contestation_resolved"
	ActionBaremeVersionCreated AuditAction = "bareme_version_created"
)

// Palier is an additive bonus tier nested under a bareme.
type Palier struct {
	ID           string
	Code         string
	SeuilMin     float64
	SeuilMax     *float64
	MontantPrime float64
	TauxBonus    float64
	Actif        bool
}

// Contient reports whether base falls inside [SeuilMin, SeuilMax]. A nil max is open.
func (p Palier) Contient(base float64) bool {
	if base < p.SeuilMin {
		return false
	}
	return p.SeuilMax == nil || base <= *p.SeuilMax
}

// Bareme is one immutable version of a rate grid.
type Bareme struct {
	ID                  string
	OrganisationID      string
	Code                string
	TypeCalcul          TypeCalcul
	TauxPourcentage     float64
	MontantFixe         float64
	RecurrenceActive    bool
	TauxRecurrence      *float64
	DureeRecurrenceMois *int
	TauxReprise         float64
	DureeReprisesMois   int
	Version             int
	DateEffet           time.Time
	DateFin             *time.Time
	Paliers             []Palier
}

// EnVigueur reports whether the version's effective range contains date.
func (b Bareme) EnVigueur(date time.Time) bool {
	if date.Before(b.DateEffet) {
		return false
	}
	return b.DateFin == nil || !date.After(*b.DateFin)
}

// Commission is a payable amount for one contract and period.
type Commission struct {
	ID                string
	OrganisationID    string
	ApporteurID       string
	ContratID         string
	Reference         string
	MontantBrut       float64
	MontantReprises   float64
	MontantAcomptes   float64
	MontantNetAPayer  float64
	StatutID          string
	Periode           string
	DateCreation      time.Time
	ContratValideCQ   *bool
	EcheanceEncaissee *bool
}

// Eligible applies the three-way payment gate. Unknown validation or collection flags count as satisfied.
func (c Commission) Eligible(statutAPayerID string) bool {
	if statutAPayerID == "" || c.StatutID != statutAPayerID {
		return false
	}
	if c.ContratValideCQ != nil && !*c.ContratValideCQ {
		return false
	}
	return c.EcheanceEncaissee == nil || *c.EcheanceEncaissee
}

type Statut struct {
	ID   string
	Code string
}

// Reprise is a pending clawback to apply on a statement.
type Reprise struct {
	ID                    string
	CommissionOriginaleID string
	ContratID             string
	ApporteurID           string
	TypeReprise           TypeReprise
	PeriodeApplication    string
}

// RepriseUpdate is written back when a clawback is applied.
type RepriseUpdate struct {
	MontantReprise  float64
	Statut          StatutReprise
	DateApplication time.Time
	BordereauID     string
}

// RecurrenceCandidate is a collected installment that may produce a recurring line.
type RecurrenceCandidate struct {
	ID               string
	ContratID        string
	EcheanceID       string
	DateEncaissement *time.Time
	MontantCalcule   float64
}

type ReportNegatif struct {
	ID             string
	ApporteurID    string
	PeriodeOrigine string
	MontantRestant float64
}

type Contrat struct {
	ID             string
	OrganisationID string
	Reference      string
	Statut         string
	BaremeCode     string
	MontantBase    float64
	DateDebut      time.Time
	DateFin        *time.Time
}

// Actif reports whether the contract status allows recurring commission.
func (c Contrat) Actif() bool {
	switch strings.ToUpper(strings.TrimSpace(c.Statut)) {
	case "ACTIF", "ACTIVE", "VALIDE":
		return true
	}
	return false
}

// CommissionRecurrente is a generated recurring line with the grid version actually used.
type CommissionRecurrente struct {
	ID               string
	OrganisationID   string
	ContratID        string
	EcheanceID       string
	BaremeID         string
	BaremeVersion    int
	Periode          string
	NumeroMois       int
	MontantBase      float64
	TauxRecurrence   float64
	MontantCalcule   float64
	DateEncaissement time.Time
	Statut           StatutRecurrence
	// BordereauID is the statement carrying the recurrence, empty until included.
	BordereauID string
}

type BordereauInput struct {
	OrganisationID string
	ApporteurID    string
	Periode        string
	CreePar        string
	Reference      string
}

type Bordereau struct {
	ID             string
	OrganisationID string
	ApporteurID    string
	Reference      string
	Periode        string
	Statut         StatutBordereau
	NombreLignes   int
	TotalBrut      float64
	TotalReprises  float64
	TotalAcomptes  float64
	TotalNetAPayer float64
}

// Ligne is one typed statement line.
type Ligne struct {
	ID               string
	OrganisationID   string
	BordereauID      string
	CommissionID     string
	RepriseID        string
	ContestationID   string
	TypeLigne        TypeLigne
	ContratID        string
	ContratReference string
	MontantBrut      float64
	MontantReprise   float64
	MontantAcompte   float64
	MontantNet       float64
	BaseCalcul       TypeCalcul
	TauxApplique     float64
	BaremeID         string
	StatutLigne      StatutLigne
	Selectionne      bool
	MotifDeselection string
	Ordre            int
}

type BordereauUpdate struct {
	NombreLignes int
	Totaux       Totaux
}

// AuditEntry is one write-once audit record.
type AuditEntry struct {
	OrganisationID string
	Scope          AuditScope
	Action         AuditAction
	RefID          string
	ContratID      string
	ApporteurID    string
	Periode        string
	BeforeData     map[string]any
	AfterData      map[string]any
	Metadata       map[string]any
}
