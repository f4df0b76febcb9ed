package handler

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"gorm.io/gorm"

	"crm-commissions/internal/database"
	"crm-commissions/internal/database/models"
	"crm-commissions/internal/money"
	"crm-commissions/internal/services/commissions/engine"
	proto "crm-commissions/proto/protogen/commissions"
)

// CreerContestation opens a dispute on a commission line of a published bordereau. The commission
// is parked in the contestee status until the dispute is resolved.
func (c *CommissionHandler) CreerContestation(ctx context.Context, req *proto.CreerContestationRequest) (*proto.CreerContestationResponse, error) {
	if req.CommissionId == "" || req.BordereauId == "" {
		return nil, status.Errorf(codes.InvalidArgument, "Commission ID and Bordereau ID are required")
	}
	if req.Motif == "" {
		return nil, status.Errorf(codes.InvalidArgument, "Motif is required")
	}
	dateContestation := timeOf(req.DateContestation, c.now())

	var contestation models.ContestationCommission
	err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := c.repo.WithTx(tx)
		bordereau, err := repo.LockBordereau(ctx, req.BordereauId)
		if err != nil {
			return err
		}
		commission, err := repo.FindCommissionModel(ctx, req.CommissionId)
		if err != nil {
			return err
		}
		found, err := repo.CommissionInBordereau(ctx, bordereau.ID, commission.ID)
		if err != nil {
			return err
		}
		if !found {
			return status.Errorf(codes.FailedPrecondition, "Commission %s is not on bordereau %s", commission.ID, bordereau.ID)
		}
		enCours, err := repo.HasContestationEnCours(ctx, commission.ID)
		if err != nil {
			return err
		}
		if enCours {
			return status.Errorf(codes.FailedPrecondition, "Commission %s already has an open contestation", commission.ID)
		}

		datePublication := bordereau.CreatedAt
		if bordereau.DateValidation != nil {
			datePublication = *bordereau.DateValidation
		}
		if err := c.contestations.VerifierDelaiContestation(datePublication, dateContestation); err != nil {
			return err
		}

		contestee, err := repo.FindStatutByCode(ctx, database.StatutContestee)
		if err != nil {
			return err
		}
		apporteurID := req.ApporteurId
		if apporteurID == "" {
			apporteurID = bordereau.ApporteurID
		}
		contestation = models.ContestationCommission{
			OrganisationID:              bordereau.OrganisationID,
			CommissionID:                commission.ID,
			BordereauID:                 bordereau.ID,
			ApporteurID:                 apporteurID,
			Motif:                       req.Motif,
			DateContestation:            dateContestation,
			DateLimite:                  c.contestations.CalculerDateLimite(datePublication),
			Statut:                      string(engine.StatutContestationEnCours),
			StatutCommissionPrecedentID: commission.StatutID,
		}
		if err := repo.CreateContestation(ctx, &contestation); err != nil {
			return err
		}
		if err := repo.UpdateCommissionStatut(ctx, commission.ID, contestee.ID); err != nil {
			return err
		}
		return audit(ctx, repo, engine.AuditEntry{
			OrganisationID: contestation.OrganisationID,
			Scope:          engine.ScopeCommission,
			Action:         engine.ActionContestationCreated,
			RefID:          contestation.ID,
			ContratID:      commission.ContratID,
			ApporteurID:    apporteurID,
			Periode:        bordereau.Periode,
			BeforeData:     map[string]any{"statutId": commission.StatutID},
			AfterData: map[string]any{
				"statutId":     contestee.ID,
				"commissionId": commission.ID,
				"bordereauId":  bordereau.ID,
				"dateLimite":   contestation.DateLimite,
			},
		})
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return &proto.CreerContestationResponse{Contestation: contestationToProto(contestation)}, nil
}

// ResoudreContestation closes an open dispute. Accepting it appends a regularisation line for the
// commission net amount; rejecting it restores the commission's previous status.
func (c *CommissionHandler) ResoudreContestation(ctx context.Context, req *proto.ResoudreContestationRequest) (*proto.ResoudreContestationResponse, error) {
	if err := c.contestations.ValiderResolution(req.Commentaire); err != nil {
		return nil, toStatus(err)
	}
	if req.ContestationId == "" {
		return nil, status.Errorf(codes.InvalidArgument, "Contestation ID is required")
	}
	if req.ResoluPar == "" {
		return nil, status.Errorf(codes.InvalidArgument, "Resolu par (user ID) is required")
	}

	var contestation *models.ContestationCommission
	var ligne *engine.Ligne
	err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := c.repo.WithTx(tx)
		var err error
		contestation, err = repo.LockContestation(ctx, req.ContestationId)
		if err != nil {
			return err
		}
		if contestation.Statut != string(engine.StatutContestationEnCours) {
			return status.Errorf(codes.FailedPrecondition, "Contestation %s is already resolved", contestation.ID)
		}
		statut, err := c.contestations.DeterminerStatutResolution(req.Acceptee, req.Commentaire)
		if err != nil {
			return err
		}
		commission, err := repo.FindCommissionModel(ctx, contestation.CommissionID)
		if err != nil {
			return err
		}

		if statut == engine.StatutContestationAcceptee {
			reg := engine.NewRepriseCalculationService(repo).GenererRegularisationContestation(engine.ContestationAcceptee{
				ContestationID:   contestation.ID,
				CommissionID:     commission.ID,
				BordereauID:      contestation.BordereauID,
				MontantNetAPayer: money.FromDecimal(commission.MontantNetAPayer),
			})
			reg.ContratID = commission.ContratID
			ligne, err = appendRegularisation(ctx, repo, reg, commission.Reference)
			if err != nil {
				return err
			}
			contestation.LigneRegularisationID = &ligne.ID
		} else if err := repo.UpdateCommissionStatut(ctx, commission.ID, contestation.StatutCommissionPrecedentID); err != nil {
			return err
		}

		now := c.now()
		before := contestation.Statut
		contestation.Statut = string(statut)
		contestation.Commentaire = strPtr(req.Commentaire)
		contestation.ResoluPar = strPtr(req.ResoluPar)
		contestation.DateResolution = &now
		if err := repo.SaveContestation(ctx, contestation); err != nil {
			return err
		}
		return audit(ctx, repo, engine.AuditEntry{
			OrganisationID: contestation.OrganisationID,
			Scope:          engine.ScopeCommission,
			Action:         engine.ActionContestationResolved,
			RefID:          contestation.ID,
			ContratID:      commission.ContratID,
			ApporteurID:    contestation.ApporteurID,
			BeforeData:     map[string]any{"statut": before},
			AfterData: map[string]any{
				"statut":                string(statut),
				"resoluPar":             req.ResoluPar,
				"ligneRegularisationId": deref(contestation.LigneRegularisationID),
			},
		})
	})
	if err != nil {
		return nil, toStatus(err)
	}

	c.metrics.ContestationsResolues.WithLabelValues(contestation.Statut).Inc()
	resp := &proto.ResoudreContestationResponse{Contestation: contestationToProto(*contestation)}
	if ligne != nil {
		c.metrics.RegularisationLignes.WithLabelValues("contestation").Inc()
		c.InvalidateCommissionCaches(ctx, ligne.BordereauID)
		resp.Ligne = engineLigneToProto(*ligne)
	}
	return resp, nil
}
