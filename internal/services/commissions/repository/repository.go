// Package repository is the gorm adapter behind every commission engine port.
package repository

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"gorm.io/gorm"

	"crm-commissions/internal/database/models"
	"crm-commissions/internal/money"
	"crm-commissions/internal/services/commissions/engine"
)

// CommissionRepository implements engine.BordereauRepository, engine.RepriseLookup and
// engine.RecurrenceLookup on top of gorm.
type CommissionRepository struct {
	db *gorm.DB
}

func New(db *gorm.DB) *CommissionRepository {
	return &CommissionRepository{db: db}
}

// WithTx returns a repository bound to tx.
func (r *CommissionRepository) WithTx(tx *gorm.DB) *CommissionRepository {
	return &CommissionRepository{db: tx}
}

var (
	_ engine.BordereauRepository = (*CommissionRepository)(nil)
	_ engine.RepriseLookup       = (*CommissionRepository)(nil)
	_ engine.RecurrenceLookup    = (*CommissionRepository)(nil)
)

// TranslateError maps persistence failures onto the gRPC status vocabulary.
func TranslateError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return status.Errorf(codes.NotFound, format+" not found", args...)
	case isDuplicate(err):
		return status.Errorf(codes.AlreadyExists, format+" already exists", args...)
	default:
		return status.Errorf(codes.Internal, format+": %v", append(args, err)...)
	}
}

func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") || strings.Contains(msg, "duplicate key value")
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func nullDecimalPtr(d decimal.NullDecimal) *float64 {
	if !d.Valid {
		return nil
	}
	v := money.FromDecimal(d.Decimal)
	return &v
}

func rate(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}

// --- Conversion Helpers ---

func BaremeToEngine(m models.BaremeCommission) engine.Bareme {
	b := engine.Bareme{
		ID:                  m.ID,
		OrganisationID:      m.OrganisationID,
		Code:                m.Code,
		TypeCalcul:          engine.TypeCalcul(m.TypeCalcul),
		TauxPourcentage:     rate(m.TauxPourcentage),
		MontantFixe:         money.FromDecimal(m.MontantFixe),
		RecurrenceActive:    m.RecurrenceActive,
		DureeRecurrenceMois: m.DureeRecurrenceMois,
		TauxReprise:         rate(m.TauxReprise),
		DureeReprisesMois:   m.DureeReprisesMois,
		Version:             m.Version,
		DateEffet:           m.DateEffet,
		DateFin:             m.DateFin,
	}
	if m.TauxRecurrence.Valid {
		t := rate(m.TauxRecurrence.Decimal)
		b.TauxRecurrence = &t
	}
	for _, p := range m.Paliers {
		b.Paliers = append(b.Paliers, engine.Palier{
			ID:           p.ID,
			Code:         p.Code,
			SeuilMin:     money.FromDecimal(p.SeuilMin),
			SeuilMax:     nullDecimalPtr(p.SeuilMax),
			MontantPrime: money.FromDecimal(p.MontantPrime),
			TauxBonus:    rate(p.TauxBonus),
			Actif:        p.Actif,
		})
	}
	return b
}

func CommissionToEngine(m models.Commission) engine.Commission {
	return engine.Commission{
		ID:                m.ID,
		OrganisationID:    m.OrganisationID,
		ApporteurID:       m.ApporteurID,
		ContratID:         m.ContratID,
		Reference:         m.Reference,
		MontantBrut:       money.FromDecimal(m.MontantBrut),
		MontantReprises:   money.FromDecimal(m.MontantReprises),
		MontantAcomptes:   money.FromDecimal(m.MontantAcomptes),
		MontantNetAPayer:  money.FromDecimal(m.MontantNetAPayer),
		StatutID:          m.StatutID,
		Periode:           m.Periode,
		DateCreation:      m.DateCreation,
		ContratValideCQ:   m.ContratValideCQ,
		EcheanceEncaissee: m.EcheanceEncaissee,
	}
}

func ContratToEngine(m models.Contrat) engine.Contrat {
	return engine.Contrat{
		ID:             m.ID,
		OrganisationID: m.OrganisationID,
		Reference:      m.Reference,
		Statut:         m.Statut,
		BaremeCode:     m.BaremeCode,
		MontantBase:    money.FromDecimal(m.MontantBase),
		DateDebut:      m.DateDebut,
		DateFin:        m.DateFin,
	}
}

func BordereauToEngine(m models.BordereauCommission) engine.Bordereau {
	return engine.Bordereau{
		ID:             m.ID,
		OrganisationID: m.OrganisationID,
		ApporteurID:    m.ApporteurID,
		Reference:      m.Reference,
		Periode:        m.Periode,
		Statut:         engine.StatutBordereau(m.Statut),
		NombreLignes:   m.NombreLignes,
		TotalBrut:      money.FromDecimal(m.TotalBrut),
		TotalReprises:  money.FromDecimal(m.TotalReprises),
		TotalAcomptes:  money.FromDecimal(m.TotalAcomptes),
		TotalNetAPayer: money.FromDecimal(m.TotalNetAPayer),
	}
}

func LigneToEngine(m models.LigneBordereau) engine.Ligne {
	return engine.Ligne{
		ID:               m.ID,
		OrganisationID:   m.OrganisationID,
		BordereauID:      m.BordereauID,
		CommissionID:     deref(m.CommissionID),
		RepriseID:        deref(m.RepriseID),
		ContestationID:   deref(m.ContestationID),
		TypeLigne:        engine.TypeLigne(m.TypeLigne),
		ContratID:        m.ContratID,
		ContratReference: m.ContratReference,
		MontantBrut:      money.FromDecimal(m.MontantBrut),
		MontantReprise:   money.FromDecimal(m.MontantReprise),
		MontantAcompte:   money.FromDecimal(m.MontantAcompte),
		MontantNet:       money.FromDecimal(m.MontantNet),
		BaseCalcul:       engine.TypeCalcul(deref(m.BaseCalcul)),
		TauxApplique:     rate(m.TauxApplique),
		BaremeID:         deref(m.BaremeID),
		StatutLigne:      engine.StatutLigne(m.StatutLigne),
		Selectionne:      m.Selectionne,
		MotifDeselection: deref(m.MotifDeselection),
		Ordre:            m.Ordre,
	}
}

func LigneFromEngine(l engine.Ligne) models.LigneBordereau {
	return models.LigneBordereau{
		Base:             models.Base{ID: l.ID},
		OrganisationID:   l.OrganisationID,
		BordereauID:      l.BordereauID,
		CommissionID:     strPtr(l.CommissionID),
		RepriseID:        strPtr(l.RepriseID),
		ContestationID:   strPtr(l.ContestationID),
		TypeLigne:        string(l.TypeLigne),
		ContratID:        l.ContratID,
		ContratReference: l.ContratReference,
		MontantBrut:      money.ToDecimal(l.MontantBrut),
		MontantReprise:   money.ToDecimal(l.MontantReprise),
		MontantAcompte:   money.ToDecimal(l.MontantAcompte),
		MontantNet:       money.ToDecimal(l.MontantNet),
		BaseCalcul:       strPtr(string(l.BaseCalcul)),
		TauxApplique:     decimal.NewFromFloat(l.TauxApplique),
		BaremeID:         strPtr(l.BaremeID),
		StatutLigne:      string(l.StatutLigne),
		Selectionne:      l.Selectionne,
		MotifDeselection: strPtr(l.MotifDeselection),
		Ordre:            l.Ordre,
	}
}

func RecurrenceToEngine(m models.CommissionRecurrente) engine.CommissionRecurrente {
	return engine.CommissionRecurrente{
		ID:               m.ID,
		OrganisationID:   m.OrganisationID,
		ContratID:        m.ContratID,
		EcheanceID:       m.EcheanceID,
		BaremeID:         m.BaremeID,
		BaremeVersion:    m.BaremeVersion,
		Periode:          m.Periode,
		NumeroMois:       m.NumeroMois,
		MontantBase:      money.FromDecimal(m.MontantBase),
		TauxRecurrence:   rate(m.TauxRecurrence),
		MontantCalcule:   money.FromDecimal(m.MontantCalcule),
		DateEncaissement: m.DateEncaissement,
		Statut:           engine.StatutRecurrence(m.Statut),
		BordereauID:      deref(m.BordereauID),
	}
}
