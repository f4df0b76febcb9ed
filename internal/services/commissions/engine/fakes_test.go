package engine

import (
	"context"
	"fmt"
	"time"
)

// memRepo is an in-memory implementation of every engine port.
type memRepo struct {
	statutAPayer *Statut
	commissions  []Commission
	baremes      map[string]*Bareme
	reprises     []Reprise
	candidates   []RecurrenceCandidate
	generees     []CommissionRecurrente
	reports      []ReportNegatif

	versees map[string][]float64
	dues    map[string]float64

	echeancesReglees map[string]bool
	contrats         map[string]*Contrat
	baremeVersions   []Bareme
	monthNumbers     map[string]int

	bordereaux        []*Bordereau
	lignes            []Ligne
	repriseUpdates    map[string]RepriseUpdate
	persisted         []CommissionRecurrente
	suspended         []string
	resumed           []string
	apures            []string
	createdReports    []ReportNegatif
	audits            []AuditEntry
	fenetresDemandees []string
	incluses          map[string]string

	failOn string
	seq    int
}

func newMemRepo() *memRepo {
	return &memRepo{
		statutAPayer:     &Statut{ID: "statut-a-payer", Code: "a_payer"},
		baremes:          map[string]*Bareme{},
		versees:          map[string][]float64{},
		dues:             map[string]float64{},
		echeancesReglees: map[string]bool{},
		contrats:         map[string]*Contrat{},
		monthNumbers:     map[string]int{},
		repriseUpdates:   map[string]RepriseUpdate{},
		incluses:         map[string]string{},
	}
}

func (m *memRepo) nextID(prefix string) string {
	m.seq++
	return fmt.Sprintf("%s-%d", prefix, m.seq)
}

func (m *memRepo) fail(op string) error {
	if m.failOn == op {
		return fmt.Errorf("%s: store unavailable", op)
	}
	return nil
}

func (m *memRepo) FindCommissionsForPeriode(_ context.Context, _ BordereauInput) ([]Commission, error) {
	return m.commissions, m.fail("FindCommissionsForPeriode")
}

func (m *memRepo) FindBaremeForCommission(_ context.Context, c Commission) (*Bareme, error) {
	return m.baremes[c.ContratID], m.fail("FindBaremeForCommission")
}

func (m *memRepo) FindStatutAPayer(context.Context) (*Statut, error) {
	return m.statutAPayer, nil
}

func (m *memRepo) FindReprisesForPeriode(context.Context, BordereauInput) ([]Reprise, error) {
	return m.reprises, nil
}

func (m *memRepo) UpdateReprise(_ context.Context, id string, update RepriseUpdate) error {
	m.repriseUpdates[id] = update
	return nil
}

func (m *memRepo) FindRecurrencesForPeriode(context.Context, BordereauInput) ([]RecurrenceCandidate, error) {
	return m.candidates, nil
}

func (m *memRepo) FindRecurrencesNonIncluses(context.Context, BordereauInput) ([]CommissionRecurrente, error) {
	if err := m.fail("FindRecurrencesNonIncluses"); err != nil {
		return nil, err
	}
	return m.generees, nil
}

func (m *memRepo) MarquerRecurrenceIncluse(_ context.Context, id, bordereauID string) error {
	if _, ok := m.incluses[id]; ok {
		return fmt.Errorf("recurrence %s already included", id)
	}
	m.incluses[id] = bordereauID
	return nil
}

func (m *memRepo) SuspendRecurrences(_ context.Context, contratID string) error {
	m.suspended = append(m.suspended, contratID)
	return nil
}

func (m *memRepo) ResumeRecurrences(_ context.Context, contratID string) error {
	m.resumed = append(m.resumed, contratID)
	return nil
}

func (m *memRepo) FindReportsNegatifs(context.Context, BordereauInput) ([]ReportNegatif, error) {
	return m.reports, nil
}

func (m *memRepo) ApurerReport(_ context.Context, id, _ string) error {
	m.apures = append(m.apures, id)
	return nil
}

func (m *memRepo) CreateReportNegatif(_ context.Context, _ string, r ReportNegatifResult) (*ReportNegatif, error) {
	report := ReportNegatif{
		ID:             m.nextID("report"),
		ApporteurID:    r.ApporteurID,
		PeriodeOrigine: r.PeriodeOrigine,
		MontantRestant: r.Montant,
	}
	m.createdReports = append(m.createdReports, report)
	return &report, nil
}

func (m *memRepo) CreateBordereau(_ context.Context, in BordereauInput) (*Bordereau, error) {
	if err := m.fail("CreateBordereau"); err != nil {
		return nil, err
	}
	b := &Bordereau{
		ID:             m.nextID("bordereau"),
		OrganisationID: in.OrganisationID,
		ApporteurID:    in.ApporteurID,
		Reference:      in.Reference,
		Periode:        in.Periode,
		Statut:         StatutBordereauBrouillon,
	}
	m.bordereaux = append(m.bordereaux, b)
	return b, nil
}

func (m *memRepo) CreateLigne(_ context.Context, ligne Ligne) (*Ligne, error) {
	ligne.ID = m.nextID("ligne")
	m.lignes = append(m.lignes, ligne)
	return &ligne, nil
}

func (m *memRepo) UpdateBordereau(_ context.Context, id string, update BordereauUpdate) (*Bordereau, error) {
	for _, b := range m.bordereaux {
		if b.ID == id {
			b.NombreLignes = update.NombreLignes
			b.TotalBrut = update.Totaux.TotalBrut
			b.TotalReprises = update.Totaux.TotalReprises
			b.TotalAcomptes = update.Totaux.TotalAcomptes
			b.TotalNetAPayer = update.Totaux.TotalNetAPayer
			copied := *b
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("bordereau %s not found", id)
}

func (m *memRepo) Audit(_ context.Context, entry AuditEntry) error {
	if err := m.fail("Audit"); err != nil {
		return err
	}
	m.audits = append(m.audits, entry)
	return nil
}

func (m *memRepo) FindCommissionsVerseesDansFenetre(_ context.Context, contratID, debut, fin string) ([]float64, error) {
	m.fenetresDemandees = append(m.fenetresDemandees, debut+".."+fin)
	return m.versees[contratID], nil
}

func (m *memRepo) FindCommissionDuePeriode(_ context.Context, contratID, _ string) (float64, error) {
	return m.dues[contratID], nil
}

func (m *memRepo) IsEcheanceReglee(_ context.Context, echeanceID string) (bool, error) {
	return m.echeancesReglees[echeanceID], nil
}

func (m *memRepo) FindContratByID(_ context.Context, id string) (*Contrat, error) {
	c, ok := m.contrats[id]
	if !ok {
		return nil, fmt.Errorf("contrat %s not found", id)
	}
	return c, nil
}

// FindBaremeAtDate picks the highest version in force at date.
func (m *memRepo) FindBaremeAtDate(_ context.Context, _ Contrat, date time.Time) (*Bareme, error) {
	var found *Bareme
	for i := range m.baremeVersions {
		b := m.baremeVersions[i]
		if b.EnVigueur(date) && (found == nil || b.Version > found.Version) {
			found = &b
		}
	}
	return found, nil
}

func (m *memRepo) GetRecurrenceMonthNumber(_ context.Context, contratID string) (int, error) {
	if n, ok := m.monthNumbers[contratID]; ok {
		return n, nil
	}
	return 1, nil
}

func (m *memRepo) PersistRecurrence(_ context.Context, r CommissionRecurrente) (*CommissionRecurrente, error) {
	r.ID = m.nextID("recurrence")
	m.persisted = append(m.persisted, r)
	return &r, nil
}

func (m *memRepo) auditActions() []AuditAction {
	actions := make([]AuditAction, 0, len(m.audits))
	for _, a := range m.audits {
		actions = append(actions, a.Action)
	}
	return actions
}

func ptr[T any](v T) *T {
	return &v
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
