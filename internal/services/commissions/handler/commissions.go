package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/timestamppb"
	"google.golang.org/protobuf/types/known/wrapperspb"
	"gorm.io/gorm"

	"crm-commissions/internal/database/models"
	"crm-commissions/internal/logger"
	"crm-commissions/internal/metrics"
	"crm-commissions/internal/money"
	"crm-commissions/internal/services/commissions/engine"
	"crm-commissions/internal/services/commissions/repository"
	proto "crm-commissions/proto/protogen/commissions"
)

const (
	COMMISSION_BORDEREAU_CACHE_PREFIX = "commission_bordereau:"
	DEFAULT_CACHE_TTL                 = time.Hour
)

// --- Helpers ---
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

func moneyString(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func rateString(d decimal.Decimal) string {
	return d.String()
}

// --- Handler ---
type CommissionHandler struct {
	proto.UnimplementedCommissionServiceServer
	db            *gorm.DB
	redis         *redis.Client
	repo          *repository.CommissionRepository
	calculator    *engine.CommissionCalculationService
	contestations *engine.ContestationWorkflowService
	log           logger.Logger
	metrics       *metrics.Metrics
	now           func() time.Time
	cacheTTL      time.Duration
}

type Option func(*CommissionHandler)

func WithLogger(l logger.Logger) Option {
	return func(c *CommissionHandler) {
		c.log = l
	}
}

func WithClock(now func() time.Time) Option {
	return func(c *CommissionHandler) {
		c.now = now
	}
}

func WithCacheTTL(ttl time.Duration) Option {
	return func(c *CommissionHandler) {
		if ttl > 0 {
			c.cacheTTL = ttl
		}
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(c *CommissionHandler) {
		c.metrics = m
	}
}

func NewCommissionHandler(db *gorm.DB, redisClient *redis.Client, opts ...Option) *CommissionHandler {
	c := &CommissionHandler{
		db:            db,
		redis:         redisClient,
		repo:          repository.New(db),
		calculator:    engine.NewCommissionCalculationService(),
		contestations: engine.NewContestationWorkflowService(),
		log:           logger.Nop(),
		metrics:       metrics.Default,
		now:           time.Now,
		cacheTTL:      DEFAULT_CACHE_TTL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// workflow wires the bordereau orchestrator on a repository bound to the current transaction.
func (c *CommissionHandler) workflow(repo *repository.CommissionRepository) *engine.GenererBordereauWorkflowService {
	return engine.NewGenererBordereauWorkflowService(
		repo,
		c.calculator,
		engine.NewRepriseCalculationService(repo),
		engine.NewRecurrenceGenerationService(repo),
		engine.WithClock(c.now),
		engine.WithLogger(c.log),
	)
}

func (c *CommissionHandler) InvalidateCommissionCaches(ctx context.Context, bordereauIDs ...string) {
	for _, id := range bordereauIDs {
		cacheKey := COMMISSION_BORDEREAU_CACHE_PREFIX + id
		if err := c.redis.Del(ctx, cacheKey).Err(); err != nil {
			c.log.Warn("failed to invalidate cache", "key", cacheKey, "error", err)
		}
	}
}

func (c *CommissionHandler) cacheBordereau(ctx context.Context, bordereau *proto.Bordereau) {
	cacheKey := COMMISSION_BORDEREAU_CACHE_PREFIX + bordereau.Id
	jsonData, err := protojson.Marshal(bordereau)
	if err != nil {
		c.log.Warn("failed to encode bordereau for cache", "bordereau_id", bordereau.Id, "error", err)
		return
	}
	if err := c.redis.Set(ctx, cacheKey, jsonData, c.cacheTTL).Err(); err != nil {
		c.log.Warn("failed to set cache", "key", cacheKey, "error", err)
	}
}

func (c *CommissionHandler) cachedBordereau(ctx context.Context, id string) (*proto.Bordereau, bool) {
	cacheKey := COMMISSION_BORDEREAU_CACHE_PREFIX + id
	val, err := c.redis.Get(ctx, cacheKey).Result()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn("redis error on GET, falling back to DB", "key", cacheKey, "error", err)
		}
		return nil, false
	}
	var cached proto.Bordereau
	if err := protojson.Unmarshal([]byte(val), &cached); err != nil {
		c.log.Warn("discarding unreadable cache entry", "key", cacheKey, "error", err)
		return nil, false
	}
	return &cached, true
}

// toStatus maps engine rule violations onto gRPC codes. Status errors pass through untouched.
func toStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	code, ok := engine.CodeOf(err)
	if !ok {
		return status.Errorf(codes.Internal, "%v", err)
	}
	switch code {
	case engine.CodeInvalidFenetre, engine.CodeCommentRequired, engine.CodeInvalidPeriode,
		engine.CodeTypeCalculInconnu, engine.CodeMontantBaseInvalid:
		return status.Error(codes.InvalidArgument, err.Error())
	case engine.CodeDeadlineExceeded:
		return status.Error(codes.DeadlineExceeded, err.Error())
	case engine.CodeTotauxIncoherents:
		return status.Error(codes.FailedPrecondition, err.Error())
	case engine.CodeBaremeIntrouvable:
		return status.Error(codes.NotFound, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

func audit(ctx context.Context, repo *repository.CommissionRepository, entry engine.AuditEntry) error {
	if err := repo.Audit(ctx, entry); err != nil {
		return fmt.Errorf("audit %s: %w", entry.Action, err)
	}
	return nil
}

// --- Conversion Helpers ---
func timestampOrNil(t *time.Time) *timestamppb.Timestamp {
	if t == nil {
		return nil
	}
	return timestamppb.New(*t)
}

func timePtr(ts *timestamppb.Timestamp) *time.Time {
	if ts == nil {
		return nil
	}
	t := ts.AsTime()
	return &t
}

// timeOf reads an optional timestamp, falling back when it is unset.
func timeOf(ts *timestamppb.Timestamp, fallback time.Time) time.Time {
	if ts == nil {
		return fallback
	}
	return ts.AsTime()
}

// structOf converts an audit payload. Values structpb cannot take directly go through JSON.
func structOf(m map[string]any) *structpb.Struct {
	if len(m) == 0 {
		return nil
	}
	if s, err := structpb.NewStruct(m); err == nil {
		return s
	}
	raw, err := json.Marshal(m)
	if err != nil {
		return nil
	}
	var out structpb.Struct
	if err := protojson.Unmarshal(raw, &out); err != nil {
		return nil
	}
	return &out
}

func ligneToProto(l models.LigneBordereau) *proto.LigneBordereau {
	return &proto.LigneBordereau{
		Id:               l.ID,
		CommissionId:     deref(l.CommissionID),
		RepriseId:        deref(l.RepriseID),
		ContestationId:   deref(l.ContestationID),
		TypeLigne:        l.TypeLigne,
		ContratId:        l.ContratID,
		ContratReference: l.ContratReference,
		MontantBrut:      moneyString(l.MontantBrut),
		MontantReprise:   moneyString(l.MontantReprise),
		MontantAcompte:   moneyString(l.MontantAcompte),
		MontantNet:       moneyString(l.MontantNet),
		BaseCalcul:       deref(l.BaseCalcul),
		TauxApplique:     rateString(l.TauxApplique),
		BaremeId:         deref(l.BaremeID),
		StatutLigne:      l.StatutLigne,
		Selectionne:      l.Selectionne,
		MotifDeselection: deref(l.MotifDeselection),
		Ordre:            int32(l.Ordre),
	}
}

func engineLigneToProto(l engine.Ligne) *proto.LigneBordereau {
	return ligneToProto(repository.LigneFromEngine(l))
}

func bordereauToProto(b models.BordereauCommission) *proto.Bordereau {
	lignes := make([]*proto.LigneBordereau, 0, len(b.Lignes))
	for _, l := range b.Lignes {
		lignes = append(lignes, ligneToProto(l))
	}
	return &proto.Bordereau{
		Id:             b.ID,
		OrganisationId: b.OrganisationID,
		ApporteurId:    b.ApporteurID,
		Reference:      b.Reference,
		Periode:        b.Periode,
		Statut:         b.Statut,
		NombreLignes:   int32(b.NombreLignes),
		TotalBrut:      moneyString(b.TotalBrut),
		TotalReprises:  moneyString(b.TotalReprises),
		TotalAcomptes:  moneyString(b.TotalAcomptes),
		TotalNetAPayer: moneyString(b.TotalNetAPayer),
		CreePar:        deref(b.CreePar),
		ValidePar:      deref(b.ValidePar),
		DateValidation: timestampOrNil(b.DateValidation),
		CreatedAt:      timestamppb.New(b.CreatedAt),
		Lignes:         lignes,
	}
}

func summaryToProto(s engine.BordereauSummary) *proto.BordereauSummary {
	return &proto.BordereauSummary{
		NombreCommissions: int32(s.NombreCommissions),
		NombreReprises:    int32(s.NombreReprises),
		NombrePrimes:      int32(s.NombrePrimes),
		TotalBrut:         s.TotalBrut,
		TotalReprises:     s.TotalReprises,
		TotalNet:          s.TotalNet,
	}
}

func reportToProto(r models.ReportNegatif) *proto.ReportNegatif {
	return &proto.ReportNegatif{
		Id:                     r.ID,
		OrganisationId:         r.OrganisationID,
		ApporteurId:            r.ApporteurID,
		PeriodeOrigine:         r.PeriodeOrigine,
		PeriodeCible:           r.PeriodeCible,
		MontantInitial:         moneyString(r.MontantInitial),
		MontantRestant:         moneyString(r.MontantRestant),
		Statut:                 r.Statut,
		BordereauApplicationId: deref(r.BordereauApplicationID),
		CreatedAt:              timestamppb.New(r.CreatedAt),
	}
}

func repriseToProto(r models.RepriseCommission) *proto.Reprise {
	return &proto.Reprise{
		Id:                    r.ID,
		Reference:             r.Reference,
		CommissionOriginaleId: r.CommissionOriginaleID,
		ContratId:             r.ContratID,
		ApporteurId:           r.ApporteurID,
		TypeReprise:           r.TypeReprise,
		MontantReprise:        moneyString(r.MontantReprise),
		TauxReprise:           moneyString(r.TauxReprise),
		MontantOriginal:       moneyString(r.MontantOriginal),
		PeriodeOrigine:        r.PeriodeOrigine,
		PeriodeApplication:    r.PeriodeApplication,
		DateEvenement:         timestamppb.New(r.DateEvenement),
		Statut:                r.Statut,
		BordereauId:           deref(r.BordereauID),
		Motif:                 deref(r.Motif),
		DateRegularisation:    timestampOrNil(r.DateRegularisation),
	}
}

func recurrenceToProto(r engine.CommissionRecurrente) *proto.Recurrence {
	return &proto.Recurrence{
		Id:               r.ID,
		OrganisationId:   r.OrganisationID,
		ContratId:        r.ContratID,
		EcheanceId:       r.EcheanceID,
		BaremeId:         r.BaremeID,
		BaremeVersion:    int32(r.BaremeVersion),
		Periode:          r.Periode,
		NumeroMois:       int32(r.NumeroMois),
		MontantBase:      money.ToMoney(r.MontantBase),
		TauxRecurrence:   decimal.NewFromFloat(r.TauxRecurrence).String(),
		MontantCalcule:   money.ToMoney(r.MontantCalcule),
		DateEncaissement: timestamppb.New(r.DateEncaissement),
		Statut:           string(r.Statut),
		BordereauId:      r.BordereauID,
	}
}

func contestationToProto(c models.ContestationCommission) *proto.Contestation {
	return &proto.Contestation{
		Id:                    c.ID,
		OrganisationId:        c.OrganisationID,
		CommissionId:          c.CommissionID,
		BordereauId:           c.BordereauID,
		ApporteurId:           c.ApporteurID,
		Motif:                 c.Motif,
		DateContestation:      timestamppb.New(c.DateContestation),
		DateLimite:            timestamppb.New(c.DateLimite),
		Statut:                c.Statut,
		Commentaire:           deref(c.Commentaire),
		ResoluPar:             deref(c.ResoluPar),
		DateResolution:        timestampOrNil(c.DateResolution),
		LigneRegularisationId: deref(c.LigneRegularisationID),
	}
}

func decimalValue(d decimal.NullDecimal) *wrapperspb.DoubleValue {
	if !d.Valid {
		return nil
	}
	return wrapperspb.Double(d.Decimal.InexactFloat64())
}

func baremeToProto(b models.BaremeCommission) *proto.Bareme {
	paliers := make([]*proto.Palier, 0, len(b.Paliers))
	for _, p := range b.Paliers {
		paliers = append(paliers, &proto.Palier{
			Id:           p.ID,
			Code:         p.Code,
			Nom:          p.Nom,
			SeuilMin:     p.SeuilMin.InexactFloat64(),
			SeuilMax:     decimalValue(p.SeuilMax),
			MontantPrime: p.MontantPrime.InexactFloat64(),
			TauxBonus:    p.TauxBonus.InexactFloat64(),
			Ordre:        int32(p.Ordre),
			Actif:        wrapperspb.Bool(p.Actif),
		})
	}
	out := &proto.Bareme{
		Id:                b.ID,
		OrganisationId:    b.OrganisationID,
		Code:              b.Code,
		Version:           int32(b.Version),
		Nom:               b.Nom,
		TypeCalcul:        b.TypeCalcul,
		TauxPourcentage:   b.TauxPourcentage.InexactFloat64(),
		MontantFixe:       b.MontantFixe.InexactFloat64(),
		RecurrenceActive:  b.RecurrenceActive,
		TauxRecurrence:    decimalValue(b.TauxRecurrence),
		TauxReprise:       wrapperspb.Double(b.TauxReprise.InexactFloat64()),
		DureeReprisesMois: wrapperspb.Int32(int32(b.DureeReprisesMois)),
		DateEffet:         timestamppb.New(b.DateEffet),
		DateFin:           timestampOrNil(b.DateFin),
		MotifModification: deref(b.MotifModification),
		CreePar:           deref(b.CreePar),
		Paliers:           paliers,
	}
	if b.DureeRecurrenceMois != nil {
		out.DureeRecurrenceMois = wrapperspb.Int32(int32(*b.DureeRecurrenceMois))
	}
	return out
}

func auditLogToProto(l models.CommissionAuditLog) *proto.AuditLog {
	return &proto.AuditLog{
		Id:          l.ID,
		Scope:       l.Scope,
		Action:      l.Action,
		RefId:       l.RefID,
		ContratId:   deref(l.ContratID),
		ApporteurId: deref(l.ApporteurID),
		Periode:     deref(l.Periode),
		BeforeData:  structOf(l.BeforeData),
		AfterData:   structOf(l.AfterData),
		Metadata:    structOf(l.Metadata),
		CreatedAt:   timestamppb.New(l.CreatedAt),
	}
}
