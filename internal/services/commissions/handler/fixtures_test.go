package handler

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"crm-commissions/internal/database"
	"crm-commissions/internal/database/models"
	"crm-commissions/internal/metrics"
	proto "crm-commissions/proto/protogen/commissions"
)

var testNow = time.Date(2026, 2, 28, 18, 30, 0, 0, time.UTC)

type testEnv struct {
	db      *gorm.DB
	mr      *miniredis.Miniredis
	metrics *metrics.Metrics
	handler *CommissionHandler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.MigrateCommissionDB(db))

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	m := metrics.New(prometheus.NewRegistry())
	h := NewCommissionHandler(db, rdb,
		WithMetrics(m),
		WithClock(func() time.Time { return testNow }),
	)
	seed(t, db)
	return &testEnv{db: db, mr: mr, metrics: m, handler: h}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dec(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func statutID(t *testing.T, db *gorm.DB, code string) string {
	t.Helper()
	var s models.StatutCommission
	require.NoError(t, db.First(&s, "code = ?", code).Error)
	return s.ID
}

// seed loads org-1/app-1 for 2026-02: two commissions at a 10% grid, an unpaid clawback on
// contrat-1 backed by a paid January line of 45, a collected installment on contrat-3 and a
// 40 carry-forward from January.
func seed(t *testing.T, db *gorm.DB) {
	t.Helper()
	aPayer := statutID(t, db, database.StatutAPayer)

	require.NoError(t, db.Create(&models.BaremeCommission{
		Base:             models.Base{ID: "bareme-std-v1"},
		OrganisationID:   "org-1",
		Code:             "STD",
		Version:          1,
		Nom:              "Standard",
		TypeCalcul:       "pourcentage",
		TauxPourcentage:  dec("10"),
		RecurrenceActive: true,
		TauxRecurrence:   decimal.NewNullDecimal(dec("9")),
		DateEffet:        day(2025, 1, 1),
	}).Error)

	for _, c := range []models.Contrat{
		{Base: models.Base{ID: "contrat-1"}, Reference: "CT-1", MontantBase: dec("100")},
		{Base: models.Base{ID: "contrat-2"}, Reference: "CT-2", MontantBase: dec("200")},
		{Base: models.Base{ID: "contrat-3"}, Reference: "CT-3", MontantBase: dec("100")},
	} {
		c.OrganisationID, c.ApporteurID, c.Statut, c.BaremeCode, c.DateDebut = "org-1", "app-1", "ACTIF", "STD", day(2025, 1, 1)
		require.NoError(t, db.Create(&c).Error)
	}

	require.NoError(t, db.Create(&[]models.Commission{
		{Base: models.Base{ID: "com-1"}, OrganisationID: "org-1", ApporteurID: "app-1", Periode: "2026-02", ContratID: "contrat-1", Reference: "COM-001",
			MontantBrut: dec("100"), MontantNetAPayer: dec("30"), StatutID: aPayer, DateCreation: day(2026, 2, 1)},
		{Base: models.Base{ID: "com-2"}, OrganisationID: "org-1", ApporteurID: "app-1", Periode: "2026-02", ContratID: "contrat-2", Reference: "COM-002",
			MontantBrut: dec("200"), MontantNetAPayer: dec("20"), StatutID: aPayer, DateCreation: day(2026, 2, 2)},
	}).Error)

	require.NoError(t, db.Create(&models.BordereauCommission{
		Base: models.Base{ID: "bordereau-janvier"}, OrganisationID: "org-1", ApporteurID: "app-1", Periode: "2026-01",
		Reference: "BRD-2026-01-1", Statut: "valide", NombreLignes: 1, TotalBrut: dec("45"), TotalNetAPayer: dec("45"),
	}).Error)
	com0 := "com-0"
	require.NoError(t, db.Create(&models.LigneBordereau{
		OrganisationID: "org-1", BordereauID: "bordereau-janvier", CommissionID: &com0, TypeLigne: "commission", ContratID: "contrat-1",
		MontantBrut: dec("45"), MontantNet: dec("45"), StatutLigne: "validee", Selectionne: true,
	}).Error)

	require.NoError(t, db.Create(&models.RepriseCommission{
		Base: models.Base{ID: "rep-1"}, OrganisationID: "org-1", Reference: "RPR-1", CommissionOriginaleID: "com-0",
		ContratID: "contrat-1", ApporteurID: "app-1", TypeReprise: "impaye", PeriodeOrigine: "2026-01", PeriodeApplication: "2026-02",
		DateEvenement: day(2026, 2, 3), Statut: "en_attente",
	}).Error)

	paiement := day(2026, 2, 5)
	require.NoError(t, db.Create(&models.Echeance{
		Base: models.Base{ID: "ech-3"}, ContratID: "contrat-3", Numero: 1, DateEcheance: day(2026, 2, 1), Montant: dec("100"),
		Statut: models.EcheancePayee, DatePaiement: &paiement,
	}).Error)

	require.NoError(t, db.Create(&models.ReportNegatif{
		Base: models.Base{ID: "rn-1"}, OrganisationID: "org-1", ApporteurID: "app-1", PeriodeOrigine: "2026-01", PeriodeCible: "2026-02",
		MontantInitial: dec("40"), MontantRestant: dec("40"), Statut: "en_cours",
	}).Error)
}

// generate runs the February statement for app-1.
func (e *testEnv) generate(t *testing.T) *proto.GenererBordereauResponse {
	t.Helper()
	resp, err := e.handler.GenererBordereau(context.Background(), &proto.GenererBordereauRequest{
		OrganisationId: "org-1",
		ApporteurId:    "app-1",
		Periode:        "2026-02",
		CreePar:        "user-1",
	})
	require.NoError(t, err)
	return resp
}

// publish generates and validates the February statement.
func (e *testEnv) publish(t *testing.T) *proto.Bordereau {
	t.Helper()
	generated := e.generate(t)
	resp, err := e.handler.ValiderBordereau(context.Background(), &proto.ValiderBordereauRequest{
		Id:             generated.Bordereau.Id,
		ValidePar:      "manager-1",
		OrganisationId: "org-1",
	})
	require.NoError(t, err)
	return resp.Bordereau
}
