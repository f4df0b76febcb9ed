package handler

import (
	"context"

	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"gorm.io/gorm"

	"crm-commissions/internal/database/models"
	"crm-commissions/internal/services/commissions/engine"
	"crm-commissions/internal/services/commissions/repository"
	proto "crm-commissions/proto/protogen/commissions"
)

func validateBareme(b *proto.Bareme) error {
	if b == nil {
		return status.Errorf(codes.InvalidArgument, "Bareme is required")
	}
	if b.OrganisationId == "" || b.Code == "" {
		return status.Errorf(codes.InvalidArgument, "Organisation ID and code are required")
	}
	if b.Nom == "" {
		return status.Errorf(codes.InvalidArgument, "Nom is required")
	}
	switch engine.TypeCalcul(b.TypeCalcul) {
	case "", engine.TypeCalculPourcentage, engine.TypeCalculFixe, engine.TypeCalculMixte:
	default:
		return status.Errorf(codes.InvalidArgument, "Unknown type calcul %q", b.TypeCalcul)
	}
	if b.DateEffet == nil {
		return status.Errorf(codes.InvalidArgument, "Date effet is required")
	}
	if b.TauxPourcentage < 0 || b.MontantFixe < 0 {
		return status.Errorf(codes.InvalidArgument, "Rates and amounts must not be negative")
	}
	return nil
}

func baremeFromProto(b *proto.Bareme, version int) models.BaremeCommission {
	typeCalcul := b.TypeCalcul
	if typeCalcul == "" {
		typeCalcul = string(engine.TypeCalculPourcentage)
	}
	m := models.BaremeCommission{
		OrganisationID:    b.OrganisationId,
		Code:              b.Code,
		Version:           version,
		Nom:               b.Nom,
		TypeCalcul:        typeCalcul,
		TauxPourcentage:   decimal.NewFromFloat(b.TauxPourcentage),
		MontantFixe:       decimal.NewFromFloat(b.MontantFixe).Round(2),
		RecurrenceActive:  b.RecurrenceActive,
		TauxReprise:       decimal.NewFromInt(100),
		DureeReprisesMois: 3,
		DateEffet:         b.DateEffet.AsTime(),
		DateFin:           timePtr(b.DateFin),
		CreePar:           strPtr(b.CreePar),
		MotifModification: strPtr(b.MotifModification),
	}
	if b.TauxRecurrence != nil {
		m.TauxRecurrence = decimal.NewNullDecimal(decimal.NewFromFloat(b.TauxRecurrence.GetValue()))
	}
	if b.DureeRecurrenceMois != nil {
		d := int(b.DureeRecurrenceMois.GetValue())
		m.DureeRecurrenceMois = &d
	}
	if b.TauxReprise != nil {
		m.TauxReprise = decimal.NewFromFloat(b.TauxReprise.GetValue())
	}
	if b.DureeReprisesMois != nil {
		m.DureeReprisesMois = int(b.DureeReprisesMois.GetValue())
	}
	for i, p := range b.Paliers {
		palier := models.PalierCommission{
			Code:         p.Code,
			Nom:          p.Nom,
			SeuilMin:     decimal.NewFromFloat(p.SeuilMin).Round(2),
			MontantPrime: decimal.NewFromFloat(p.MontantPrime).Round(2),
			TauxBonus:    decimal.NewFromFloat(p.TauxBonus),
			Ordre:        int(p.Ordre),
			Actif:        p.Actif == nil || p.Actif.GetValue(),
		}
		if p.Ordre == 0 {
			palier.Ordre = i
		}
		if p.SeuilMax != nil {
			palier.SeuilMax = decimal.NewNullDecimal(decimal.NewFromFloat(p.SeuilMax.GetValue()).Round(2))
		}
		m.Paliers = append(m.Paliers, palier)
	}
	return m
}

func (c *CommissionHandler) CreerBareme(ctx context.Context, req *proto.CreerBaremeRequest) (*proto.CreerBaremeResponse, error) {
	if err := validateBareme(req.Bareme); err != nil {
		return nil, err
	}

	bareme := baremeFromProto(req.Bareme, 1)
	err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := c.repo.WithTx(tx)
		existing, err := repo.LatestBaremeVersion(ctx, bareme.OrganisationID, bareme.Code)
		if err == nil {
			return status.Errorf(codes.AlreadyExists, "Bareme %s already exists at version %d, create a new version instead", existing.Code, existing.Version)
		}
		if status.Code(err) != codes.NotFound {
			return err
		}
		return c.createBaremeVersion(ctx, repo, &bareme, nil)
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return &proto.CreerBaremeResponse{Bareme: baremeToProto(bareme)}, nil
}

// NouvelleVersionBareme adds version n+1 of a grid. Earlier versions stay untouched so past
// commissions keep resolving to the grid that was in force for them.
func (c *CommissionHandler) NouvelleVersionBareme(ctx context.Context, req *proto.NouvelleVersionBaremeRequest) (*proto.NouvelleVersionBaremeResponse, error) {
	if err := validateBareme(req.Bareme); err != nil {
		return nil, err
	}

	var bareme models.BaremeCommission
	err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := c.repo.WithTx(tx)
		latest, err := repo.LatestBaremeVersion(ctx, req.Bareme.OrganisationId, req.Bareme.Code)
		if err != nil {
			return err
		}
		if !req.Bareme.DateEffet.AsTime().After(latest.DateEffet) {
			return status.Errorf(codes.InvalidArgument, "Date effet must be after %s, the date effet of version %d",
				latest.DateEffet.Format("2006-01-02"), latest.Version)
		}
		bareme = baremeFromProto(req.Bareme, latest.Version+1)
		return c.createBaremeVersion(ctx, repo, &bareme, latest)
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return &proto.NouvelleVersionBaremeResponse{Bareme: baremeToProto(bareme)}, nil
}

func (c *CommissionHandler) createBaremeVersion(ctx context.Context, repo *repository.CommissionRepository, bareme *models.BaremeCommission, previous *models.BaremeCommission) error {
	if err := repo.CreateBareme(ctx, bareme); err != nil {
		return err
	}
	entry := engine.AuditEntry{
		OrganisationID: bareme.OrganisationID,
		Scope:          engine.ScopeBareme,
		Action:         engine.ActionBaremeVersionCreated,
		RefID:          bareme.ID,
		AfterData: map[string]any{
			"code":            bareme.Code,
			"version":         bareme.Version,
			"typeCalcul":      bareme.TypeCalcul,
			"tauxPourcentage": bareme.TauxPourcentage.String(),
			"dateEffet":       bareme.DateEffet,
			"paliers":         len(bareme.Paliers),
		},
	}
	if previous != nil {
		entry.BeforeData = map[string]any{"baremeId": previous.ID, "version": previous.Version}
	}
	return audit(ctx, repo, entry)
}

func (c *CommissionHandler) GetAuditLogs(ctx context.Context, req *proto.GetAuditLogsRequest) (*proto.GetAuditLogsResponse, error) {
	if req.RefId == "" && req.OrganisationId == "" {
		return nil, status.Errorf(codes.InvalidArgument, "Ref ID or Organisation ID is required")
	}
	rows, err := c.repo.ListAuditLogs(ctx, repository.AuditFilter{
		OrganisationID: req.OrganisationId,
		RefID:          req.RefId,
		Scope:          req.Scope,
		Action:         req.Action,
	})
	if err != nil {
		return nil, err
	}
	logs := make([]*proto.AuditLog, 0, len(rows))
	for _, row := range rows {
		logs = append(logs, auditLogToProto(row))
	}
	return &proto.GetAuditLogsResponse{Logs: logs}, nil
}
