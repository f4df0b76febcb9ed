package handler

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"gorm.io/gorm"

	"crm-commissions/internal/database/models"
	"crm-commissions/internal/money"
	"crm-commissions/internal/services/commissions/engine"
	"crm-commissions/internal/services/commissions/repository"
	proto "crm-commissions/proto/protogen/commissions"
)

// CalculerCommission previews a commission for a contract against the grid in force at the requested date.
func (c *CommissionHandler) CalculerCommission(ctx context.Context, req *proto.CalculerCommissionRequest) (*proto.CalculerCommissionResponse, error) {
	if req.ContratId == "" {
		return nil, status.Errorf(codes.InvalidArgument, "Contrat ID is required")
	}

	contrat, err := c.repo.FindContratByID(ctx, req.ContratId)
	if err != nil {
		return nil, err
	}
	date := timeOf(req.DateCalcul, c.now())
	bareme, err := c.repo.FindBaremeAtDate(ctx, *contrat, date)
	if err != nil {
		return nil, err
	}
	if bareme == nil {
		return nil, status.Errorf(codes.NotFound, "no bareme %s in force for contrat %s at %s", contrat.BaremeCode, contrat.ID, date.Format("2006-01-02"))
	}

	base := req.MontantBase
	if base == 0 {
		base = contrat.MontantBase
	}
	result, err := c.calculator.Calculer(contrat.Reference, *bareme, base)
	if err != nil {
		return nil, toStatus(err)
	}

	err = audit(ctx, c.repo, engine.AuditEntry{
		OrganisationID: contrat.OrganisationID,
		Scope:          engine.ScopeCommission,
		Action:         engine.ActionCommissionCalculated,
		RefID:          contrat.ID,
		ContratID:      contrat.ID,
		Periode:        engine.PeriodeOf(date),
		AfterData: map[string]any{
			"montantCalcule": result.MontantCalcule,
			"montantTotal":   result.MontantTotal,
			"typeCalcul":     result.TypeCalcul,
			"details":        result.Details,
			"primes":         result.Primes,
		},
	})
	if err != nil {
		return nil, toStatus(err)
	}

	primes := make([]*proto.PrimePalier, 0, len(result.Primes))
	for _, p := range result.Primes {
		primes = append(primes, &proto.PrimePalier{PalierId: p.PalierID, Code: p.Code, Montant: money.ToMoney(p.Montant)})
	}
	return &proto.CalculerCommissionResponse{
		Calcul: &proto.CommissionCalcul{
			ContratId:       contrat.ID,
			BaremeId:        bareme.ID,
			BaremeVersion:   int32(bareme.Version),
			TypeCalcul:      string(result.TypeCalcul),
			MontantBase:     money.ToMoney(base),
			TauxPourcentage: money.ToDecimal(result.Details.TauxPourcentage).String(),
			MontantFixe:     money.ToMoney(result.Details.MontantFixe),
			MontantCalcule:  money.ToMoney(result.MontantCalcule),
			MontantTotal:    money.ToMoney(result.MontantTotal),
			Primes:          primes,
		},
	}, nil
}

// GenererBordereau runs the statement workflow inside one transaction so a failed step leaves nothing behind.
func (c *CommissionHandler) GenererBordereau(ctx context.Context, req *proto.GenererBordereauRequest) (*proto.GenererBordereauResponse, error) {
	if req.OrganisationId == "" {
		return nil, status.Errorf(codes.InvalidArgument, "Organisation ID is required")
	}
	if req.ApporteurId == "" {
		return nil, status.Errorf(codes.InvalidArgument, "Apporteur ID is required")
	}

	var out *engine.GenererBordereauOutput
	err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		out, err = c.workflow(c.repo.WithTx(tx)).Execute(ctx, engine.BordereauInput{
			OrganisationID: req.OrganisationId,
			ApporteurID:    req.ApporteurId,
			Periode:        req.Periode,
			CreePar:        req.CreePar,
		})
		return err
	})
	if err != nil {
		c.metrics.BordereauxGeneres.WithLabelValues("error").Inc()
		c.log.Error("bordereau generation failed",
			"organisation_id", req.OrganisationId,
			"apporteur_id", req.ApporteurId,
			"periode", req.Periode,
			"error", err,
		)
		return nil, toStatus(err)
	}
	c.metrics.BordereauxGeneres.WithLabelValues("success").Inc()
	c.InvalidateCommissionCaches(ctx, out.Bordereau.ID)

	bordereau, err := c.repo.FindBordereauModel(ctx, out.Bordereau.ID)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "Failed to retrieve generated bordereau: %v", err)
	}
	resp := &proto.GenererBordereauResponse{
		Bordereau: bordereauToProto(*bordereau),
		Summary:   summaryToProto(out.Summary),
	}
	if out.Report != nil {
		var report models.ReportNegatif
		if err := c.db.WithContext(ctx).First(&report, "id = ?", out.Report.ID).Error; err != nil {
			return nil, repository.TranslateError(err, "report negatif %s", out.Report.ID)
		}
		resp.ReportNegatif = reportToProto(report)
	}
	return resp, nil
}

// checkOrganisation denies access to a bordereau owned by another organisation.
func checkOrganisation(requested, owner string) error {
	if requested != owner {
		return status.Errorf(codes.PermissionDenied, "Bordereau is not accessible for organisation %s", requested)
	}
	return nil
}

func (c *CommissionHandler) GetBordereau(ctx context.Context, req *proto.GetBordereauRequest) (*proto.GetBordereauResponse, error) {
	if req.Id == "" {
		return nil, status.Errorf(codes.InvalidArgument, "Bordereau ID is required")
	}
	if req.OrganisationId == "" {
		return nil, status.Errorf(codes.InvalidArgument, "Organisation ID is required")
	}

	bordereau, ok := c.cachedBordereau(ctx, req.Id)
	if ok {
		c.metrics.CacheHits.WithLabelValues("bordereau").Inc()
	} else {
		c.metrics.CacheMisses.WithLabelValues("bordereau").Inc()
		row, err := c.repo.FindBordereauModel(ctx, req.Id)
		if err != nil {
			return nil, err
		}
		bordereau = bordereauToProto(*row)
		c.cacheBordereau(ctx, bordereau)
	}
	if err := checkOrganisation(req.OrganisationId, bordereau.OrganisationId); err != nil {
		return nil, err
	}
	return &proto.GetBordereauResponse{Bordereau: bordereau}, nil
}

// ValiderBordereau freezes a draft statement. Totals are re-checked against the stored lines first.
func (c *CommissionHandler) ValiderBordereau(ctx context.Context, req *proto.ValiderBordereauRequest) (*proto.ValiderBordereauResponse, error) {
	if req.Id == "" {
		return nil, status.Errorf(codes.InvalidArgument, "Bordereau ID is required")
	}
	if req.ValidePar == "" {
		return nil, status.Errorf(codes.InvalidArgument, "Valide par (user ID) is required")
	}
	if req.OrganisationId == "" {
		return nil, status.Errorf(codes.InvalidArgument, "Organisation ID is required")
	}

	err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := c.repo.WithTx(tx)
		row, err := repo.LockBordereau(ctx, req.Id)
		if err != nil {
			return err
		}
		if err := checkOrganisation(req.OrganisationId, row.OrganisationID); err != nil {
			return err
		}
		if row.Statut != string(engine.StatutBordereauBrouillon) {
			return status.Errorf(codes.FailedPrecondition, "Bordereau can only be validated from brouillon status. Current status: %s", row.Statut)
		}

		lignes, err := repo.FindLignes(ctx, row.ID)
		if err != nil {
			return err
		}
		engineLignes := make([]engine.Ligne, 0, len(lignes))
		for _, l := range lignes {
			engineLignes = append(engineLignes, repository.LigneToEngine(l))
		}
		stored := repository.BordereauToEngine(*row)
		if err := engine.VerifierTotaux(engine.Totaux{
			TotalBrut:      stored.TotalBrut,
			TotalReprises:  stored.TotalReprises,
			TotalAcomptes:  stored.TotalAcomptes,
			TotalNetAPayer: stored.TotalNetAPayer,
		}, engineLignes); err != nil {
			return err
		}

		if err := repo.ValiderBordereau(ctx, row.ID, req.ValidePar, c.now()); err != nil {
			return err
		}
		return audit(ctx, repo, engine.AuditEntry{
			OrganisationID: row.OrganisationID,
			Scope:          engine.ScopeBordereau,
			Action:         engine.ActionBordereauValidated,
			RefID:          row.ID,
			ApporteurID:    row.ApporteurID,
			Periode:        row.Periode,
			BeforeData:     map[string]any{"statut": row.Statut},
			AfterData: map[string]any{
				"statut":         string(engine.StatutBordereauValide),
				"validePar":      req.ValidePar,
				"totalNetAPayer": moneyString(row.TotalNetAPayer),
			},
		})
	})
	if err != nil {
		return nil, toStatus(err)
	}

	c.InvalidateCommissionCaches(ctx, req.Id)

	row, err := c.repo.FindBordereauModel(ctx, req.Id)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "Failed to retrieve updated data for response: %v", err)
	}
	return &proto.ValiderBordereauResponse{Bordereau: bordereauToProto(*row)}, nil
}

// lignesByID resolves the requested line IDs against a bordereau. An empty request means every line.
func lignesByID(lignes []models.LigneBordereau, ids []string) ([]models.LigneBordereau, error) {
	if len(ids) == 0 {
		return lignes, nil
	}
	index := make(map[string]models.LigneBordereau, len(lignes))
	for _, l := range lignes {
		index[l.ID] = l
	}
	out := make([]models.LigneBordereau, 0, len(ids))
	for _, id := range ids {
		l, ok := index[id]
		if !ok {
			return nil, status.Errorf(codes.NotFound, "Ligne %s not found on bordereau", id)
		}
		out = append(out, l)
	}
	return out, nil
}

// PreselectionnerLignes selects or deselects lines of a draft bordereau before validation.
// Selecting clears the deselection reason, so it also overrides a NON_ELIGIBLE_ADV exclusion.
// Rejected lines are left untouched.
func (c *CommissionHandler) PreselectionnerLignes(ctx context.Context, req *proto.PreselectionnerLignesRequest) (*proto.PreselectionnerLignesResponse, error) {
	if req.BordereauId == "" {
		return nil, status.Errorf(codes.InvalidArgument, "Bordereau ID is required")
	}
	if req.OrganisationId == "" {
		return nil, status.Errorf(codes.InvalidArgument, "Organisation ID is required")
	}

	update := repository.SelectionUpdate{Selectionne: true, StatutLigne: engine.StatutLigneSelectionnee}
	if req.Deselectionner {
		motif := req.Motif
		if motif == "" {
			motif = engine.MotifDeselectionManuelle
		}
		update = repository.SelectionUpdate{Selectionne: false, StatutLigne: engine.StatutLigneDeselectionnee, MotifDeselection: motif}
	}

	resp := &proto.PreselectionnerLignesResponse{}
	err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := c.repo.WithTx(tx)
		row, err := repo.LockBordereau(ctx, req.BordereauId)
		if err != nil {
			return err
		}
		if err := checkOrganisation(req.OrganisationId, row.OrganisationID); err != nil {
			return err
		}
		if row.Statut != string(engine.StatutBordereauBrouillon) {
			return status.Errorf(codes.FailedPrecondition, "Lines can only be selected on a brouillon bordereau. Current status: %s", row.Statut)
		}

		lignes, err := repo.FindLignes(ctx, row.ID)
		if err != nil {
			return err
		}
		cibles, err := lignesByID(lignes, req.LigneIds)
		if err != nil {
			return err
		}
		ids := make([]string, 0, len(cibles))
		for _, l := range cibles {
			if l.StatutLigne != string(engine.StatutLigneRejetee) {
				ids = append(ids, l.ID)
			}
		}
		changed, err := repo.UpdateSelection(ctx, row.ID, ids, update)
		if err != nil {
			return err
		}

		lignes, err = repo.FindLignes(ctx, row.ID)
		if err != nil {
			return err
		}
		resp.NombreLignesTotal = int32(len(lignes))
		for _, l := range lignes {
			if l.Selectionne {
				resp.LigneIdsSelectionnees = append(resp.LigneIdsSelectionnees, l.ID)
			}
		}
		resp.NombreLignesSelectionnees = int32(len(resp.LigneIdsSelectionnees))

		return audit(ctx, repo, engine.AuditEntry{
			OrganisationID: row.OrganisationID,
			Scope:          engine.ScopeBordereau,
			Action:         engine.ActionLignesSelection,
			RefID:          row.ID,
			ApporteurID:    row.ApporteurID,
			Periode:        row.Periode,
			AfterData: map[string]any{
				"selectionne":     update.Selectionne,
				"lignesModifiees": changed,
				"lignes":          ids,
			},
			Metadata: map[string]any{"motif": update.MotifDeselection},
		})
	})
	if err != nil {
		return nil, toStatus(err)
	}

	c.InvalidateCommissionCaches(ctx, req.BordereauId)
	return resp, nil
}

// RecalculerTotauxBordereau previews the totals of a selection without persisting them. Without
// explicit line IDs the lines currently selected are used.
func (c *CommissionHandler) RecalculerTotauxBordereau(ctx context.Context, req *proto.RecalculerTotauxBordereauRequest) (*proto.RecalculerTotauxBordereauResponse, error) {
	if req.BordereauId == "" {
		return nil, status.Errorf(codes.InvalidArgument, "Bordereau ID is required")
	}
	if req.OrganisationId == "" {
		return nil, status.Errorf(codes.InvalidArgument, "Organisation ID is required")
	}

	row, err := c.repo.FindBordereauModel(ctx, req.BordereauId)
	if err != nil {
		return nil, err
	}
	if err := checkOrganisation(req.OrganisationId, row.OrganisationID); err != nil {
		return nil, err
	}

	selection := row.Lignes
	if len(req.LigneIdsSelectionnees) == 0 {
		selection = make([]models.LigneBordereau, 0, len(row.Lignes))
		for _, l := range row.Lignes {
			if l.Selectionne {
				selection = append(selection, l)
			}
		}
	}
	selection, err = lignesByID(selection, req.LigneIdsSelectionnees)
	if err != nil {
		return nil, err
	}

	engineLignes := make([]engine.Ligne, 0, len(selection))
	for _, l := range selection {
		engineLignes = append(engineLignes, repository.LigneToEngine(l))
	}
	totaux := engine.TotauxFromLignes(engineLignes)
	return &proto.RecalculerTotauxBordereauResponse{
		TotalBrut:                 money.ToMoney(totaux.TotalBrut),
		TotalReprises:             money.ToMoney(totaux.TotalReprises),
		TotalAcomptes:             money.ToMoney(totaux.TotalAcomptes),
		TotalNet:                  money.ToMoney(totaux.TotalNetAPayer),
		NombreLignesSelectionnees: int32(len(selection)),
	}, nil
}
