package database

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"crm-commissions/internal/database/models"
)

// Commission status codes seeded in statuts_commission.
const (
	StatutEnAttente = "en_attente"
	StatutAPayer    = "a_payer"
	StatutPayee     = "payee"
	StatutContestee = "contestee"
	StatutAnnulee   = "annulee"
)

var statutsCommission = []models.StatutCommission{
	{Code: StatutEnAttente, Nom: "En attente"},
	{Code: StatutAPayer, Nom: "A payer"},
	{Code: StatutPayee, Nom: "Payée"},
	{Code: StatutContestee, Nom: "Contestée"},
	{Code: StatutAnnulee, Nom: "Annulée"},
}

func NewConnection(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		log.Fatal("DSN is required")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping DB: %w", err)
	}

	return db, nil
}

// MigrateCommissionDB creates the commission schema and seeds the commission statuses.
func MigrateCommissionDB(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.StatutCommission{},
		&models.BaremeCommission{},
		&models.PalierCommission{},
		&models.Contrat{},
		&models.Echeance{},
		&models.Commission{},
		&models.RepriseCommission{},
		&models.CommissionRecurrente{},
		&models.ReportNegatif{},
		&models.BordereauCommission{},
		&models.LigneBordereau{},
		&models.ContestationCommission{},
		&models.CommissionAuditLog{},
	); err != nil {
		return fmt.Errorf("failed to migrate commission schema: %w", err)
	}
	return SeedStatutsCommission(db)
}

func SeedStatutsCommission(db *gorm.DB) error {
	for _, statut := range statutsCommission {
		s := statut
		if err := db.Where(models.StatutCommission{Code: s.Code}).FirstOrCreate(&s).Error; err != nil {
			return fmt.Errorf("failed to seed statut %s: %w", s.Code, err)
		}
	}
	return nil
}
