package handler

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"gorm.io/gorm"

	"crm-commissions/internal/database/models"
	"crm-commissions/internal/money"
	"crm-commissions/internal/services/commissions/engine"
	"crm-commissions/internal/services/commissions/repository"
	proto "crm-commissions/proto/protogen/commissions"
)

// DeclencherReprise records a pending clawback on a commission. The amount is estimated now and
// recomputed when the reprise is applied on a bordereau.
func (c *CommissionHandler) DeclencherReprise(ctx context.Context, req *proto.DeclencherRepriseRequest) (*proto.DeclencherRepriseResponse, error) {
	if req.CommissionId == "" {
		return nil, status.Errorf(codes.InvalidArgument, "Commission ID is required")
	}
	if req.TypeReprise == "" {
		return nil, status.Errorf(codes.InvalidArgument, "Type reprise is required")
	}
	typeReprise := engine.ParseTypeReprise(req.TypeReprise)
	now := c.now()

	var reprise models.RepriseCommission
	var calcul engine.RepriseResult
	err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := c.repo.WithTx(tx)
		commission, err := repo.FindCommissionModel(ctx, req.CommissionId)
		if err != nil {
			return err
		}
		periodeApplication := req.PeriodeApplication
		if periodeApplication == "" {
			periodeApplication = commission.Periode
		}
		if err := engine.ValiderPeriode(periodeApplication); err != nil {
			return err
		}

		fenetre := engine.FenetreReprise(typeReprise)
		calcul, err = engine.NewRepriseCalculationService(repo).CalculerReprise(ctx, commission.ContratID, typeReprise, fenetre, commission.Periode)
		if err != nil {
			return err
		}

		dateEvenement := timeOf(req.DateEvenement, now)
		reprise = models.RepriseCommission{
			OrganisationID:        commission.OrganisationID,
			Reference:             fmt.Sprintf("RPR-%d", now.UnixMilli()),
			CommissionOriginaleID: commission.ID,
			ContratID:             commission.ContratID,
			ApporteurID:           commission.ApporteurID,
			TypeReprise:           string(typeReprise),
			MontantReprise:        money.ToDecimal(calcul.MontantReprise),
			TauxReprise:           tauxReprise(money.ToDecimal(calcul.MontantReprise), commission.MontantBrut),
			MontantOriginal:       commission.MontantBrut,
			PeriodeOrigine:        commission.Periode,
			PeriodeApplication:    periodeApplication,
			DateEvenement:         dateEvenement,
			Statut:                string(engine.StatutRepriseEnAttente),
			Motif:                 strPtr(req.Motif),
		}
		if err := repo.CreateReprise(ctx, &reprise); err != nil {
			return err
		}
		if err := audit(ctx, repo, engine.AuditEntry{
			OrganisationID: reprise.OrganisationID,
			Scope:          engine.ScopeReprise,
			Action:         engine.ActionRepriseCreated,
			RefID:          reprise.ID,
			ContratID:      reprise.ContratID,
			ApporteurID:    reprise.ApporteurID,
			Periode:        periodeApplication,
			AfterData: map[string]any{
				"montantReprise": calcul.MontantReprise,
				"typeReprise":    reprise.TypeReprise,
				"totalVerse":     calcul.TotalVerse,
				"montantDu":      calcul.MontantDu,
				"fenetre":        []string{calcul.PeriodeDebut, calcul.PeriodeFin},
			},
		}); err != nil {
			return err
		}

		if !calcul.SuspendRecurrence {
			return nil
		}
		if err := repo.SuspendRecurrences(ctx, reprise.ContratID); err != nil {
			return err
		}
		return audit(ctx, repo, engine.AuditEntry{
			OrganisationID: reprise.OrganisationID,
			Scope:          engine.ScopeRecurrence,
			Action:         engine.ActionRecurrenceStopped,
			RefID:          reprise.ContratID,
			ContratID:      reprise.ContratID,
			ApporteurID:    reprise.ApporteurID,
			Metadata:       map[string]any{"repriseId": reprise.ID},
		})
	})
	if err != nil {
		return nil, toStatus(err)
	}

	c.metrics.ReprisesDeclenchees.WithLabelValues(string(typeReprise)).Inc()
	return &proto.DeclencherRepriseResponse{
		Reprise:           repriseToProto(reprise),
		SuspendRecurrence: calcul.SuspendRecurrence,
	}, nil
}

// tauxReprise is the clawed-back share of the gross commission in percent, two decimals.
func tauxReprise(montantReprise, montantBrut decimal.Decimal) decimal.Decimal {
	if montantBrut.IsZero() {
		return decimal.Zero
	}
	return montantReprise.Div(montantBrut).Mul(decimal.NewFromInt(100)).Round(2)
}

// RegulariserReprise refunds an applied unpaid clawback once the invoice is settled. The refund is
// appended to the bordereau the reprise was applied on.
func (c *CommissionHandler) RegulariserReprise(ctx context.Context, req *proto.RegulariserRepriseRequest) (*proto.RegulariserRepriseResponse, error) {
	if req.RepriseId == "" {
		return nil, status.Errorf(codes.InvalidArgument, "Reprise ID is required")
	}

	var reprise *models.RepriseCommission
	var ligne *engine.Ligne
	err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := c.repo.WithTx(tx)
		var err error
		reprise, err = repo.LockReprise(ctx, req.RepriseId)
		if err != nil {
			return err
		}
		if reprise.Statut != string(engine.StatutRepriseAppliquee) || reprise.BordereauID == nil {
			return status.Errorf(codes.FailedPrecondition, "Reprise %s was never applied on a bordereau", reprise.ID)
		}
		if reprise.DateRegularisation != nil {
			return status.Errorf(codes.FailedPrecondition, "Reprise %s is already regularised", reprise.ID)
		}

		reg := engine.NewRepriseCalculationService(repo).GenererRegularisationReprise(engine.RepriseRegularisable{
			RepriseID:      reprise.ID,
			CommissionID:   reprise.CommissionOriginaleID,
			ContratID:      reprise.ContratID,
			BordereauID:    *reprise.BordereauID,
			TypeReprise:    engine.ParseTypeReprise(reprise.TypeReprise),
			MontantReprise: money.FromDecimal(reprise.MontantReprise),
			Reglee:         req.Reglee,
		})
		if !reg.CreerLigne {
			return nil
		}

		ligne, err = appendRegularisation(ctx, repo, reg, reprise.Reference)
		if err != nil {
			return err
		}
		now := c.now()
		if err := repo.MarkRepriseRegularisee(ctx, reprise.ID, now); err != nil {
			return err
		}
		reprise.DateRegularisation = &now

		if err := repo.ResumeRecurrences(ctx, reprise.ContratID); err != nil {
			return err
		}
		if err := audit(ctx, repo, engine.AuditEntry{
			OrganisationID: reprise.OrganisationID,
			Scope:          engine.ScopeRecurrence,
			Action:         engine.ActionRecurrenceResumed,
			RefID:          reprise.ContratID,
			ContratID:      reprise.ContratID,
			ApporteurID:    reprise.ApporteurID,
			Metadata:       map[string]any{"repriseId": reprise.ID},
		}); err != nil {
			return err
		}
		return audit(ctx, repo, engine.AuditEntry{
			OrganisationID: reprise.OrganisationID,
			Scope:          engine.ScopeReprise,
			Action:         engine.ActionRepriseRegularized,
			RefID:          reprise.ID,
			ContratID:      reprise.ContratID,
			ApporteurID:    reprise.ApporteurID,
			AfterData: map[string]any{
				"montant":     reg.Montant,
				"ligneId":     ligne.ID,
				"bordereauId": reg.BordereauID,
			},
		})
	})
	if err != nil {
		return nil, toStatus(err)
	}

	resp := &proto.RegulariserRepriseResponse{Reprise: repriseToProto(*reprise)}
	if ligne != nil {
		c.metrics.RegularisationLignes.WithLabelValues("reprise").Inc()
		c.InvalidateCommissionCaches(ctx, ligne.BordereauID)
		resp.Ligne = engineLigneToProto(*ligne)
	}
	return resp, nil
}

// appendRegularisation adds a positive corrective line after the existing ones and audits it.
func appendRegularisation(ctx context.Context, repo *repository.CommissionRepository, reg engine.Regularisation, reference string) (*engine.Ligne, error) {
	ligne, err := repo.AppendLigne(ctx, engine.Ligne{
		BordereauID:      reg.BordereauID,
		CommissionID:     reg.CommissionID,
		RepriseID:        reg.RepriseID,
		ContestationID:   reg.ContestationID,
		TypeLigne:        engine.TypeLigneRegularisation,
		ContratID:        reg.ContratID,
		ContratReference: reference,
		MontantBrut:      reg.Montant,
		MontantNet:       reg.Montant,
		StatutLigne:      engine.StatutLigneSelectionnee,
		Selectionne:      true,
	})
	if err != nil {
		return nil, err
	}
	err = audit(ctx, repo, engine.AuditEntry{
		OrganisationID: ligne.OrganisationID,
		Scope:          engine.ScopeLigne,
		Action:         engine.ActionLigneRegularisation,
		RefID:          ligne.ID,
		ContratID:      ligne.ContratID,
		AfterData: map[string]any{
			"bordereauId":    ligne.BordereauID,
			"commissionId":   reg.CommissionID,
			"repriseId":      reg.RepriseID,
			"contestationId": reg.ContestationID,
			"montant":        reg.Montant,
			"ordre":          ligne.Ordre,
		},
	})
	if err != nil {
		return nil, err
	}
	return ligne, nil
}

func (c *CommissionHandler) GenererRecurrence(ctx context.Context, req *proto.GenererRecurrenceRequest) (*proto.GenererRecurrenceResponse, error) {
	if req.ContratId == "" || req.EcheanceId == "" {
		return nil, status.Errorf(codes.InvalidArgument, "Contrat ID and Echeance ID are required")
	}
	dateEncaissement := timeOf(req.DateEncaissement, c.now())

	var result engine.RecurrenceResult
	err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := c.repo.WithTx(tx)
		var err error
		result, err = engine.NewRecurrenceGenerationService(repo).GenererRecurrence(ctx, req.ContratId, req.EcheanceId, dateEncaissement)
		if err != nil || !result.Creee {
			return err
		}
		r := result.Recurrence
		return audit(ctx, repo, engine.AuditEntry{
			OrganisationID: r.OrganisationID,
			Scope:          engine.ScopeRecurrence,
			Action:         engine.ActionRecurrenceGenerated,
			RefID:          r.ID,
			ContratID:      r.ContratID,
			Periode:        r.Periode,
			AfterData: map[string]any{
				"montantCalcule": r.MontantCalcule,
				"baremeId":       r.BaremeID,
				"baremeVersion":  r.BaremeVersion,
				"numeroMois":     r.NumeroMois,
			},
		})
	})
	if err != nil {
		return nil, toStatus(err)
	}

	resp := &proto.GenererRecurrenceResponse{Creee: result.Creee, Motif: string(result.Motif)}
	if result.Recurrence != nil {
		resp.Recurrence = recurrenceToProto(*result.Recurrence)
	}
	return resp, nil
}
