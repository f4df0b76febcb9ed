package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"crm-commissions/internal/database/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent), TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	return db
}

func TestMigrateCommissionDB_SeedsStatutsOnce(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, MigrateCommissionDB(db))
	require.NoError(t, MigrateCommissionDB(db))

	var statuts []models.StatutCommission
	require.NoError(t, db.Order("code").Find(&statuts).Error)
	require.Len(t, statuts, 5)
	codes := make([]string, 0, len(statuts))
	for _, s := range statuts {
		assert.NotEmpty(t, s.ID)
		codes = append(codes, s.Code)
	}
	assert.Equal(t, []string{StatutAPayer, StatutAnnulee, StatutContestee, StatutEnAttente, StatutPayee}, codes)
}

func TestCommissionAuditLog_IsAppendOnly(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, MigrateCommissionDB(db))

	entry := models.CommissionAuditLog{
		OrganisationID: "org-1",
		Scope:          "bordereau",
		Action:         "bordereau_created",
		RefID:          "b-1",
		AfterData:      models.JSONMap{"reference": "BRD-2026-02-1"},
	}
	require.NoError(t, db.Create(&entry).Error)
	assert.NotEmpty(t, entry.ID)
	assert.NotZero(t, entry.Sequence)

	err := db.Model(&entry).Update("action", "tampered").Error
	assert.Error(t, err)
	assert.Error(t, db.Delete(&entry).Error)

	var stored models.CommissionAuditLog
	require.NoError(t, db.First(&stored, "id = ?", entry.ID).Error)
	assert.Equal(t, "bordereau_created", stored.Action)
	assert.Equal(t, "BRD-2026-02-1", stored.AfterData["reference"])
}
