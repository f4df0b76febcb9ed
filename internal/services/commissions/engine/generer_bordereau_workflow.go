package engine

import (
	"context"
	"fmt"
	"time"

	"crm-commissions/internal/logger"
	"crm-commissions/internal/money"
)

type BordereauSummary struct {
	NombreCommissions int    `json:"nombre_commissions"`
	NombreReprises    int    `json:"nombre_reprises"`
	NombrePrimes      int    `json:"nombre_primes"`
	TotalBrut         string `json:"total_brut"`
	TotalReprises     string `json:"total_reprises"`
	TotalNet          string `json:"total_net"`
}

type GenererBordereauOutput struct {
	Bordereau *Bordereau
	Lignes    []Ligne
	Summary   BordereauSummary
	Totaux    Totaux
	// Report is the carry-forward created when the statement closes negative.
	Report *ReportNegatif
}

// GenererBordereauWorkflowService assembles one statement per organisation, apporteur and period.
type GenererBordereauWorkflowService struct {
	repo        BordereauRepository
	calculator  CommissionCalculator
	reprises    RepriseCalculator
	recurrences RecurrenceGenerator
	now         func() time.Time
	log         logger.Logger
}

type WorkflowOption func(*GenererBordereauWorkflowService)

func WithClock(now func() time.Time) WorkflowOption {
	return func(s *GenererBordereauWorkflowService) {
		s.now = now
	}
}

func WithLogger(l logger.Logger) WorkflowOption {
	return func(s *GenererBordereauWorkflowService) {
		s.log = l
	}
}

func NewGenererBordereauWorkflowService(
	repo BordereauRepository,
	calculator CommissionCalculator,
	reprises RepriseCalculator,
	recurrences RecurrenceGenerator,
	opts ...WorkflowOption,
) *GenererBordereauWorkflowService {
	s := &GenererBordereauWorkflowService{
		repo:        repo,
		calculator:  calculator,
		reprises:    reprises,
		recurrences: recurrences,
		now:         time.Now,
		log:         logger.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// bordereauRun holds the state of one Execute call.
type bordereauRun struct {
	*GenererBordereauWorkflowService
	in        BordereauInput
	bordereau *Bordereau
	lignes    []Ligne
	totaux    Totaux
	summary   BordereauSummary
}

// Execute runs the statement steps in order: commissions, reprises, primes, acomptes.
// Line order, totals accumulation and audit order follow that sequence exactly.
func (s *GenererBordereauWorkflowService) Execute(ctx context.Context, in BordereauInput) (*GenererBordereauOutput, error) {
	if err := ValiderPeriode(in.Periode); err != nil {
		return nil, err
	}
	in.Reference = fmt.Sprintf("BRD-%s-%d", in.Periode, s.now().UnixMilli())

	bordereau, err := s.repo.CreateBordereau(ctx, in)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Audit(ctx, AuditEntry{
		OrganisationID: in.OrganisationID,
		Scope:          ScopeBordereau,
		Action:         ActionBordereauCreated,
		RefID:          bordereau.ID,
		ApporteurID:    in.ApporteurID,
		Periode:        in.Periode,
		AfterData:      map[string]any{"reference": in.Reference, "periode": in.Periode},
	}); err != nil {
		return nil, err
	}

	run := &bordereauRun{GenererBordereauWorkflowService: s, in: in, bordereau: bordereau}
	steps := []struct {
		name string
		fn   func(context.Context) error
	}{
		{"commissions", run.ajouterCommissions},
		{"reprises", run.ajouterReprises},
		{"primes", run.ajouterPrimes},
		{"acomptes", run.ajouterAcomptes},
	}
	for _, step := range steps {
		if err := step.fn(ctx); err != nil {
			return nil, err
		}
		if err := VerifierTotaux(run.totaux, run.lignes); err != nil {
			s.log.Error("bordereau totals diverged from lines", "bordereau_id", bordereau.ID, "step", step.name, "error", err)
			return nil, err
		}
	}

	totaux := run.totaux
	totaux.TotalNetAPayer = money.Round2(totaux.TotalBrut - totaux.TotalReprises - totaux.TotalAcomptes)

	updated, err := s.repo.UpdateBordereau(ctx, bordereau.ID, BordereauUpdate{NombreLignes: len(run.lignes), Totaux: totaux})
	if err != nil {
		return nil, err
	}
	if err := s.repo.Audit(ctx, AuditEntry{
		OrganisationID: in.OrganisationID,
		Scope:          ScopeBordereau,
		Action:         ActionBordereauCreated,
		RefID:          bordereau.ID,
		ApporteurID:    in.ApporteurID,
		Periode:        in.Periode,
		AfterData: map[string]any{
			"nombreLignes":  len(run.lignes),
			"totalBrut":     totaux.TotalBrut,
			"totalReprises": totaux.TotalReprises,
			"totalAcomptes": totaux.TotalAcomptes,
			"totalNet":      totaux.TotalNetAPayer,
		},
	}); err != nil {
		return nil, err
	}

	report, err := run.reporterSolde(ctx, totaux)
	if err != nil {
		return nil, err
	}

	summary := run.summary
	summary.TotalBrut = money.ToMoney(totaux.TotalBrut)
	summary.TotalReprises = money.ToMoney(totaux.TotalReprises)
	summary.TotalNet = money.ToMoney(totaux.TotalNetAPayer)

	s.log.Info("bordereau generated",
		"bordereau_id", bordereau.ID,
		"reference", in.Reference,
		"organisation_id", in.OrganisationID,
		"apporteur_id", in.ApporteurID,
		"periode", in.Periode,
		"lignes", len(run.lignes),
		"total_net", summary.TotalNet,
	)

	return &GenererBordereauOutput{
		Bordereau: updated,
		Lignes:    run.lignes,
		Summary:   summary,
		Totaux:    totaux,
		Report:    report,
	}, nil
}

// ajouterLigne persists a line at the next ordering index and folds the computed amounts into the running totals.
func (r *bordereauRun) ajouterLigne(ctx context.Context, ligne Ligne) error {
	ligne.OrganisationID = r.in.OrganisationID
	ligne.BordereauID = r.bordereau.ID
	ligne.Ordre = len(r.lignes)

	created, err := r.repo.CreateLigne(ctx, ligne)
	if err != nil {
		return err
	}
	r.totaux.ajouter(ligne)
	r.lignes = append(r.lignes, *created)
	return nil
}

func (r *bordereauRun) audit(ctx context.Context, entry AuditEntry) error {
	entry.OrganisationID = r.in.OrganisationID
	entry.Periode = r.in.Periode
	return r.repo.Audit(ctx, entry)
}

func (r *bordereauRun) ajouterCommissions(ctx context.Context) error {
	statut, err := r.repo.FindStatutAPayer(ctx)
	if err != nil {
		return err
	}
	statutAPayerID := ""
	if statut != nil {
		statutAPayerID = statut.ID
	}

	commissions, err := r.repo.FindCommissionsForPeriode(ctx, r.in)
	if err != nil {
		return err
	}
	for _, commission := range commissions {
		bareme, err := r.repo.FindBaremeForCommission(ctx, commission)
		if err != nil {
			return err
		}
		if bareme == nil {
			return newDomainError(CodeBaremeIntrouvable, "no bareme for commission %s", commission.ID)
		}
		calcul, err := r.calculator.Calculer(commission.ContratID, *bareme, commission.MontantBrut)
		if err != nil {
			return err
		}
		if calcul.Divergent() {
			r.log.Warn("commission amount diverges from exact decimal",
				"commission_id", commission.ID,
				"montant", calcul.MontantCalcule,
				"exact", calcul.MontantExact.StringFixed(2),
			)
		}

		montantBrut := money.Round2(calcul.MontantTotal)
		montantReprise := money.Round2(commission.MontantReprises)
		montantAcompte := money.Round2(commission.MontantAcomptes)
		eligible := commission.Eligible(statutAPayerID)

		ligne := Ligne{
			CommissionID:     commission.ID,
			TypeLigne:        TypeLigneCommission,
			ContratID:        commission.ContratID,
			ContratReference: commission.Reference,
			MontantBrut:      montantBrut,
			MontantReprise:   montantReprise,
			MontantAcompte:   montantAcompte,
			MontantNet:       money.Round2(montantBrut - montantReprise - montantAcompte),
			BaseCalcul:       calcul.TypeCalcul,
			TauxApplique:     bareme.TauxPourcentage,
			BaremeID:         bareme.ID,
			StatutLigne:      StatutLigneSelectionnee,
			Selectionne:      eligible,
		}
		if !eligible {
			ligne.StatutLigne = StatutLigneDeselectionnee
			ligne.MotifDeselection = MotifNonEligibleADV
		}
		if err := r.ajouterLigne(ctx, ligne); err != nil {
			return err
		}
		r.summary.NombreCommissions++

		if err := r.audit(ctx, AuditEntry{
			Scope:       ScopeEngine,
			Action:      ActionCommissionCalculated,
			RefID:       commission.ID,
			ContratID:   commission.ContratID,
			ApporteurID: commission.ApporteurID,
			AfterData: map[string]any{
				"montantCalcule": montantBrut,
				"typeCalcul":     calcul.TypeCalcul,
				"details":        calcul.Details,
				"primes":         calcul.Primes,
			},
		}); err != nil {
			return err
		}
	}
	return nil
}

func (r *bordereauRun) ajouterReprises(ctx context.Context) error {
	reprises, err := r.repo.FindReprisesForPeriode(ctx, r.in)
	if err != nil {
		return err
	}
	for _, reprise := range reprises {
		calcul, err := r.reprises.CalculerReprise(ctx, reprise.ContratID, reprise.TypeReprise, FenetreReprise(reprise.TypeReprise), r.in.Periode)
		if err != nil {
			return err
		}
		montant := money.Round2(calcul.MontantReprise)

		if err := r.repo.UpdateReprise(ctx, reprise.ID, RepriseUpdate{
			MontantReprise:  montant,
			Statut:          StatutRepriseAppliquee,
			DateApplication: r.now(),
			BordereauID:     r.bordereau.ID,
		}); err != nil {
			return err
		}

		if err := r.ajouterLigne(ctx, Ligne{
			CommissionID:     reprise.CommissionOriginaleID,
			RepriseID:        reprise.ID,
			TypeLigne:        TypeLigneReprise,
			ContratID:        reprise.ContratID,
			ContratReference: reprise.ID,
			MontantReprise:   montant,
			MontantNet:       money.Round2(-montant),
			StatutLigne:      StatutLigneSelectionnee,
			Selectionne:      true,
		}); err != nil {
			return err
		}
		r.summary.NombreReprises++

		if err := r.audit(ctx, AuditEntry{
			Scope:       ScopeReprise,
			Action:      ActionRepriseApplied,
			RefID:       reprise.ID,
			ContratID:   reprise.ContratID,
			ApporteurID: reprise.ApporteurID,
			AfterData:   map[string]any{"montantReprise": montant, "typeReprise": reprise.TypeReprise},
		}); err != nil {
			return err
		}

		if calcul.SuspendRecurrence {
			if err := r.repo.SuspendRecurrences(ctx, reprise.ContratID); err != nil {
				return err
			}
			if err := r.audit(ctx, AuditEntry{
				Scope:     ScopeRecurrence,
				Action:    ActionRecurrenceStopped,
				RefID:     reprise.ContratID,
				ContratID: reprise.ContratID,
				Metadata:  map[string]any{"repriseId": reprise.ID},
			}); err != nil {
				return err
			}
		}
	}
	return nil
}

// ajouterPrimes carries the recurrences generated earlier by collection events, then
// generates the ones still missing for installments collected during the period.
func (r *bordereauRun) ajouterPrimes(ctx context.Context) error {
	existantes, err := r.repo.FindRecurrencesNonIncluses(ctx, r.in)
	if err != nil {
		return err
	}
	for _, recurrence := range existantes {
		if err := r.inclureRecurrence(ctx, recurrence, ActionRecurrenceIncluded); err != nil {
			return err
		}
	}

	candidates, err := r.repo.FindRecurrencesForPeriode(ctx, r.in)
	if err != nil {
		return err
	}
	for _, candidate := range candidates {
		dateEncaissement := r.now()
		if candidate.DateEncaissement != nil {
			dateEncaissement = *candidate.DateEncaissement
		}
		echeanceID := candidate.EcheanceID
		if echeanceID == "" {
			echeanceID = candidate.ID
		}

		result, err := r.recurrences.GenererRecurrence(ctx, candidate.ContratID, echeanceID, dateEncaissement)
		if err != nil {
			return err
		}
		if !result.Creee || result.Recurrence == nil {
			r.log.Debug("recurrence skipped", "contrat_id", candidate.ContratID, "echeance_id", echeanceID, "motif", result.Motif)
			if err := r.audit(ctx, AuditEntry{
				Scope:     ScopeRecurrence,
				Action:    ActionRecurrenceSkipped,
				RefID:     echeanceID,
				ContratID: candidate.ContratID,
				Metadata: map[string]any{
					"motif":            string(result.Motif),
					"dateEncaissement": dateEncaissement.Format(time.DateOnly),
				},
			}); err != nil {
				return err
			}
			continue
		}
		if err := r.inclureRecurrence(ctx, *result.Recurrence, ActionRecurrenceGenerated); err != nil {
			return err
		}
	}
	return nil
}

// inclureRecurrence appends the prime line of a recurrence and marks it as carried by this statement.
func (r *bordereauRun) inclureRecurrence(ctx context.Context, recurrence CommissionRecurrente, action AuditAction) error {
	montant := money.Round2(recurrence.MontantCalcule)
	if err := r.ajouterLigne(ctx, Ligne{
		TypeLigne:        TypeLignePrime,
		ContratID:        recurrence.ContratID,
		ContratReference: fmt.Sprintf("REC-%s-%d", recurrence.Periode, recurrence.NumeroMois),
		MontantBrut:      montant,
		MontantNet:       montant,
		BaremeID:         recurrence.BaremeID,
		TauxApplique:     recurrence.TauxRecurrence,
		StatutLigne:      StatutLigneSelectionnee,
		Selectionne:      true,
	}); err != nil {
		return err
	}
	if err := r.repo.MarquerRecurrenceIncluse(ctx, recurrence.ID, r.bordereau.ID); err != nil {
		return err
	}
	r.summary.NombrePrimes++

	return r.audit(ctx, AuditEntry{
		Scope:     ScopeRecurrence,
		Action:    action,
		RefID:     recurrence.ID,
		ContratID: recurrence.ContratID,
		AfterData: map[string]any{
			"montantCalcule": montant,
			"baremeId":       recurrence.BaremeID,
			"baremeVersion":  recurrence.BaremeVersion,
			"numeroMois":     recurrence.NumeroMois,
			"echeanceId":     recurrence.EcheanceID,
			"bordereauId":    r.bordereau.ID,
		},
	})
}

func (r *bordereauRun) ajouterAcomptes(ctx context.Context) error {
	reports, err := r.repo.FindReportsNegatifs(ctx, r.in)
	if err != nil {
		return err
	}
	for _, report := range reports {
		if !AvantPeriode(report.PeriodeOrigine, r.in.Periode) {
			continue
		}
		montant := money.Round2(report.MontantRestant)
		if err := r.ajouterLigne(ctx, Ligne{
			TypeLigne:        TypeLigneAcompte,
			ContratID:        "report-" + report.ID,
			ContratReference: "REPORT-" + report.PeriodeOrigine,
			MontantAcompte:   montant,
			MontantNet:       money.Round2(-montant),
			StatutLigne:      StatutLigneSelectionnee,
			Selectionne:      true,
		}); err != nil {
			return err
		}
		if err := r.repo.ApurerReport(ctx, report.ID, r.bordereau.ID); err != nil {
			return err
		}

		if err := r.audit(ctx, AuditEntry{
			Scope:       ScopeReport,
			Action:      ActionReportNegatifApplied,
			RefID:       report.ID,
			ApporteurID: r.in.ApporteurID,
			AfterData:   map[string]any{"montantAcompte": montant, "periodeOrigine": report.PeriodeOrigine},
		}); err != nil {
			return err
		}
	}
	return nil
}

// reporterSolde carries a negative closing balance to the next period.
func (r *bordereauRun) reporterSolde(ctx context.Context, totaux Totaux) (*ReportNegatif, error) {
	calcul, err := r.reprises.CalculerReportNegatif(r.in.ApporteurID, r.in.Periode, totaux.TotalBrut, totaux.TotalReprises, totaux.TotalAcomptes)
	if err != nil {
		return nil, err
	}
	if !calcul.CreerReport {
		return nil, nil
	}
	report, err := r.repo.CreateReportNegatif(ctx, r.in.OrganisationID, calcul)
	if err != nil {
		return nil, err
	}
	if err := r.audit(ctx, AuditEntry{
		Scope:       ScopeReport,
		Action:      ActionReportNegatifCreated,
		RefID:       report.ID,
		ApporteurID: r.in.ApporteurID,
		AfterData: map[string]any{
			"montant":        calcul.Montant,
			"periodeOrigine": calcul.PeriodeOrigine,
			"periodeCible":   calcul.PeriodeCible,
			"bordereauId":    r.bordereau.ID,
		},
	}); err != nil {
		return nil, err
	}
	return report, nil
}
