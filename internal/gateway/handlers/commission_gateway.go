package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"google.golang.org/protobuf/types/known/timestamppb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"crm-commissions/internal/gateway/middleware"
	proto "crm-commissions/proto/protogen/commissions"
)

const defaultTimeout = 15 * time.Second

// bordereauTimeout bounds statement generation, the longest RPC.
const bordereauTimeout = 60 * time.Second

type CommissionsHTTPHandler struct {
	commissionClient proto.CommissionServiceClient
}

func NewCommissionsHTTPHandler(commissionClient proto.CommissionServiceClient) *CommissionsHTTPHandler {
	return &CommissionsHTTPHandler{
		commissionClient: commissionClient,
	}
}

// --- Request & Query Structs for Binding ---

type CalculerCommissionRequest struct {
	ContratID   string     `json:"contrat_id" binding:"required"`
	MontantBase float64    `json:"montant_base" binding:"gte=0"`
	DateCalcul  *time.Time `json:"date_calcul"`
}

type GenererBordereauRequest struct {
	OrganisationID string `json:"organisation_id"`
	ApporteurID    string `json:"apporteur_id" binding:"required"`
	Periode        string `json:"periode" binding:"required,periode"`
}

type ValiderBordereauRequest struct {
	OrganisationID string `json:"organisation_id"`
	ValidePar      string `json:"valide_par"`
}

type PreselectionnerLignesRequest struct {
	OrganisationID string   `json:"organisation_id"`
	LigneIDs       []string `json:"ligne_ids"`
	Deselectionner bool     `json:"deselectionner"`
	Motif          string   `json:"motif"`
}

type RecalculerTotauxRequest struct {
	OrganisationID        string   `json:"organisation_id"`
	LigneIDsSelectionnees []string `json:"ligne_ids_selectionnees"`
}

type DeclencherRepriseRequest struct {
	CommissionID       string    `json:"commission_id" binding:"required"`
	TypeReprise        string    `json:"type_reprise" binding:"required,oneof=resiliation impaye annulation regularisation"`
	DateEvenement      time.Time `json:"date_evenement"`
	Motif              string    `json:"motif"`
	PeriodeApplication string    `json:"periode_application" binding:"omitempty,periode"`
}

type RegulariserRepriseRequest struct {
	Reglee bool `json:"reglee"`
}

type GenererRecurrenceRequest struct {
	ContratID        string    `json:"contrat_id" binding:"required"`
	EcheanceID       string    `json:"echeance_id" binding:"required"`
	DateEncaissement time.Time `json:"date_encaissement"`
}

type CreerContestationRequest struct {
	CommissionID     string     `json:"commission_id" binding:"required"`
	BordereauID      string     `json:"bordereau_id" binding:"required"`
	ApporteurID      string     `json:"apporteur_id"`
	Motif            string     `json:"motif" binding:"required"`
	DateContestation *time.Time `json:"date_contestation"`
}

type ResoudreContestationRequest struct {
	Acceptee    bool   `json:"acceptee"`
	Commentaire string `json:"commentaire" binding:"required"`
	ResoluPar   string `json:"resolu_par"`
}

type PalierRequest struct {
	Code         string   `json:"code" binding:"required"`
	Nom          string   `json:"nom"`
	SeuilMin     float64  `json:"seuil_min" binding:"gte=0"`
	SeuilMax     *float64 `json:"seuil_max"`
	MontantPrime float64  `json:"montant_prime" binding:"gte=0"`
	TauxBonus    float64  `json:"taux_bonus" binding:"gte=0"`
	Ordre        int32    `json:"ordre"`
	Actif        *bool    `json:"actif"`
}

type BaremeRequest struct {
	OrganisationID      string          `json:"organisation_id"`
	Code                string          `json:"code"`
	Nom                 string          `json:"nom" binding:"required"`
	TypeCalcul          string          `json:"type_calcul" binding:"omitempty,oneof=pourcentage fixe mixte"`
	TauxPourcentage     float64         `json:"taux_pourcentage" binding:"gte=0"`
	MontantFixe         float64         `json:"montant_fixe" binding:"gte=0"`
	RecurrenceActive    bool            `json:"recurrence_active"`
	TauxRecurrence      *float64        `json:"taux_recurrence"`
	DureeRecurrenceMois *int32          `json:"duree_recurrence_mois"`
	TauxReprise         *float64        `json:"taux_reprise"`
	DureeReprisesMois   *int32          `json:"duree_reprises_mois"`
	DateEffet           time.Time       `json:"date_effet"`
	DateFin             *time.Time      `json:"date_fin"`
	MotifModification   string          `json:"motif_modification"`
	Paliers             []PalierRequest `json:"paliers" binding:"dive"`
}

type PageQuery struct {
	Page  int32 `form:"page,default=1" binding:"gte=1"`
	Limit int32 `form:"limit,default=20" binding:"gte=1,lte=100"`
}

func (q PageQuery) meta(total int32) gin.H {
	return gin.H{"total": total, "page": q.Page, "limit": q.Limit}
}

type ContestationsQuery struct {
	PageQuery
	OrganisationID string `form:"organisation_id"`
	CommissionID   string `form:"commission_id"`
	BordereauID    string `form:"bordereau_id"`
	ApporteurID    string `form:"apporteur_id"`
	Statut         string `form:"statut" binding:"omitempty,oneof=en_cours acceptee rejetee"`
}

type RecurrencesQuery struct {
	PageQuery
	OrganisationID string `form:"organisation_id"`
	ApporteurID    string `form:"apporteur_id"`
	Statut         string `form:"statut" binding:"omitempty,oneof=active suspendue terminee annulee"`
	Periode        string `form:"periode" binding:"omitempty,periode"`
}

type ReportsNegatifsQuery struct {
	PageQuery
	OrganisationID string `form:"organisation_id"`
	ApporteurID    string `form:"apporteur_id"`
	Statut         string `form:"statut" binding:"omitempty,oneof=en_cours apure annule"`
}

type AuditLogsQuery struct {
	OrganisationID string `form:"organisation_id"`
	RefID          string `form:"ref_id"`
	Scope          string `form:"scope"`
	Action         string `form:"action"`
}

func bindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, errorResponse("Invalid request format: "+err.Error()))
}

// organisation is always the organisation of the caller's token. A request naming another one is
// answered with 403 and ok is false.
func organisation(c *gin.Context, requested string) (string, bool) {
	return fromToken(c, middleware.ContextOrganisationID, "organisation_id", requested)
}

// actor is always the authenticated user. field names the request value checked against it.
func actor(c *gin.Context, field, requested string) (string, bool) {
	return fromToken(c, middleware.ContextUserID, field, requested)
}

func fromToken(c *gin.Context, key, field, requested string) (string, bool) {
	claimed := c.GetString(key)
	if requested != "" && requested != claimed {
		c.AbortWithStatusJSON(http.StatusForbidden, errorResponse(field+" does not match the authenticated caller"))
		return "", false
	}
	return claimed, true
}

func timestampOf(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t)
}

func timestampPtr(t *time.Time) *timestamppb.Timestamp {
	if t == nil {
		return nil
	}
	return timestampOf(*t)
}

// --- Commission Handlers ---

func (h *CommissionsHTTPHandler) CalculerCommission(c *gin.Context) {
	var req CalculerCommissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), defaultTimeout)
	defer cancel()

	resp, err := h.commissionClient.CalculerCommission(ctx, &proto.CalculerCommissionRequest{
		ContratId:   req.ContratID,
		MontantBase: req.MontantBase,
		DateCalcul:  timestampPtr(req.DateCalcul),
	})
	if handleGRPCError(c, err) {
		return
	}

	c.JSON(http.StatusOK, successResponse("Commission calculated successfully", resp.Calcul))
}

// --- Bordereau Handlers ---

func (h *CommissionsHTTPHandler) GenererBordereau(c *gin.Context) {
	var req GenererBordereauRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	organisationID, ok := organisation(c, req.OrganisationID)
	if !ok {
		return
	}
	creePar, _ := actor(c, "cree_par", "")

	ctx, cancel := context.WithTimeout(c.Request.Context(), bordereauTimeout)
	defer cancel()

	resp, err := h.commissionClient.GenererBordereau(ctx, &proto.GenererBordereauRequest{
		OrganisationId: organisationID,
		ApporteurId:    req.ApporteurID,
		Periode:        req.Periode,
		CreePar:        creePar,
	})
	if handleGRPCError(c, err) {
		return
	}

	c.JSON(http.StatusCreated, successWithMetaResponse("Bordereau generated successfully", resp.Bordereau, gin.H{
		"summary":        resp.Summary,
		"report_negatif": resp.ReportNegatif,
	}))
}

func (h *CommissionsHTTPHandler) GetBordereau(c *gin.Context) {
	organisationID, ok := organisation(c, c.Query("organisation_id"))
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), defaultTimeout)
	defer cancel()

	resp, err := h.commissionClient.GetBordereau(ctx, &proto.GetBordereauRequest{Id: c.Param("id"), OrganisationId: organisationID})
	if handleGRPCError(c, err) {
		return
	}

	c.JSON(http.StatusOK, successResponse("Bordereau retrieved successfully", resp.Bordereau))
}

func (h *CommissionsHTTPHandler) ValiderBordereau(c *gin.Context) {
	var req ValiderBordereauRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		bindError(c, err)
		return
	}

	organisationID, ok := organisation(c, req.OrganisationID)
	if !ok {
		return
	}
	validePar, ok := actor(c, "valide_par", req.ValidePar)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), defaultTimeout)
	defer cancel()

	resp, err := h.commissionClient.ValiderBordereau(ctx, &proto.ValiderBordereauRequest{
		Id:             c.Param("id"),
		ValidePar:      validePar,
		OrganisationId: organisationID,
	})
	if handleGRPCError(c, err) {
		return
	}

	c.JSON(http.StatusOK, successResponse("Bordereau validated successfully", resp.Bordereau))
}

func (h *CommissionsHTTPHandler) PreselectionnerLignes(c *gin.Context) {
	var req PreselectionnerLignesRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		bindError(c, err)
		return
	}
	organisationID, ok := organisation(c, req.OrganisationID)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), defaultTimeout)
	defer cancel()

	resp, err := h.commissionClient.PreselectionnerLignes(ctx, &proto.PreselectionnerLignesRequest{
		BordereauId:    c.Param("id"),
		OrganisationId: organisationID,
		LigneIds:       req.LigneIDs,
		Deselectionner: req.Deselectionner,
		Motif:          req.Motif,
	})
	if handleGRPCError(c, err) {
		return
	}

	c.JSON(http.StatusOK, successResponse("Selection updated successfully", resp))
}

func (h *CommissionsHTTPHandler) RecalculerTotauxBordereau(c *gin.Context) {
	var req RecalculerTotauxRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		bindError(c, err)
		return
	}
	organisationID, ok := organisation(c, req.OrganisationID)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), defaultTimeout)
	defer cancel()

	resp, err := h.commissionClient.RecalculerTotauxBordereau(ctx, &proto.RecalculerTotauxBordereauRequest{
		BordereauId:           c.Param("id"),
		OrganisationId:        organisationID,
		LigneIdsSelectionnees: req.LigneIDsSelectionnees,
	})
	if handleGRPCError(c, err) {
		return
	}

	c.JSON(http.StatusOK, successResponse("Totals recalculated successfully", resp))
}

// --- Reprise & Recurrence Handlers ---

func (h *CommissionsHTTPHandler) DeclencherReprise(c *gin.Context) {
	var req DeclencherRepriseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), defaultTimeout)
	defer cancel()

	resp, err := h.commissionClient.DeclencherReprise(ctx, &proto.DeclencherRepriseRequest{
		CommissionId:       req.CommissionID,
		TypeReprise:        req.TypeReprise,
		DateEvenement:      timestampOf(req.DateEvenement),
		Motif:              req.Motif,
		PeriodeApplication: req.PeriodeApplication,
	})
	if handleGRPCError(c, err) {
		return
	}

	c.JSON(http.StatusCreated, successWithMetaResponse("Reprise created successfully", resp.Reprise, gin.H{
		"suspend_recurrence": resp.SuspendRecurrence,
	}))
}

func (h *CommissionsHTTPHandler) RegulariserReprise(c *gin.Context) {
	var req RegulariserRepriseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), defaultTimeout)
	defer cancel()

	resp, err := h.commissionClient.RegulariserReprise(ctx, &proto.RegulariserRepriseRequest{
		RepriseId: c.Param("id"),
		Reglee:    req.Reglee,
	})
	if handleGRPCError(c, err) {
		return
	}

	message := "Reprise not regularised"
	if resp.Ligne != nil {
		message = "Reprise regularised successfully"
	}
	c.JSON(http.StatusOK, successResponse(message, resp))
}

func (h *CommissionsHTTPHandler) GenererRecurrence(c *gin.Context) {
	var req GenererRecurrenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), defaultTimeout)
	defer cancel()

	resp, err := h.commissionClient.GenererRecurrence(ctx, &proto.GenererRecurrenceRequest{
		ContratId:        req.ContratID,
		EcheanceId:       req.EcheanceID,
		DateEncaissement: timestampOf(req.DateEncaissement),
	})
	if handleGRPCError(c, err) {
		return
	}

	if !resp.Creee {
		c.JSON(http.StatusOK, successResponse("Recurrence not generated: "+resp.Motif, resp))
		return
	}
	c.JSON(http.StatusCreated, successResponse("Recurrence generated successfully", resp))
}

// --- Contestation Handlers ---

func (h *CommissionsHTTPHandler) CreerContestation(c *gin.Context) {
	var req CreerContestationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), defaultTimeout)
	defer cancel()

	resp, err := h.commissionClient.CreerContestation(ctx, &proto.CreerContestationRequest{
		CommissionId:     req.CommissionID,
		BordereauId:      req.BordereauID,
		ApporteurId:      req.ApporteurID,
		Motif:            req.Motif,
		DateContestation: timestampPtr(req.DateContestation),
	})
	if handleGRPCError(c, err) {
		return
	}

	c.JSON(http.StatusCreated, successResponse("Contestation created successfully", resp.Contestation))
}

func (h *CommissionsHTTPHandler) ResoudreContestation(c *gin.Context) {
	var req ResoudreContestationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	resoluPar, ok := actor(c, "resolu_par", req.ResoluPar)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), defaultTimeout)
	defer cancel()

	resp, err := h.commissionClient.ResoudreContestation(ctx, &proto.ResoudreContestationRequest{
		ContestationId: c.Param("id"),
		Acceptee:       req.Acceptee,
		Commentaire:    req.Commentaire,
		ResoluPar:      resoluPar,
	})
	if handleGRPCError(c, err) {
		return
	}

	c.JSON(http.StatusOK, successResponse("Contestation resolved successfully", resp))
}

func (h *CommissionsHTTPHandler) GetContestations(c *gin.Context) {
	var query ContestationsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		bindError(c, err)
		return
	}
	organisationID, ok := organisation(c, query.OrganisationID)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), defaultTimeout)
	defer cancel()

	resp, err := h.commissionClient.GetContestations(ctx, &proto.GetContestationsRequest{
		OrganisationId: organisationID,
		CommissionId:   query.CommissionID,
		BordereauId:    query.BordereauID,
		ApporteurId:    query.ApporteurID,
		Statut:         query.Statut,
		Page:           query.Page,
		Limit:          query.Limit,
	})
	if handleGRPCError(c, err) {
		return
	}

	c.JSON(http.StatusOK, successWithMetaResponse("Contestations retrieved successfully", resp.Contestations, query.meta(resp.Total)))
}

func (h *CommissionsHTTPHandler) GetRecurrences(c *gin.Context) {
	var query RecurrencesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		bindError(c, err)
		return
	}
	organisationID, ok := organisation(c, query.OrganisationID)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), defaultTimeout)
	defer cancel()

	resp, err := h.commissionClient.GetRecurrences(ctx, &proto.GetRecurrencesRequest{
		OrganisationId: organisationID,
		ApporteurId:    query.ApporteurID,
		Statut:         query.Statut,
		Periode:        query.Periode,
		Page:           query.Page,
		Limit:          query.Limit,
	})
	if handleGRPCError(c, err) {
		return
	}

	c.JSON(http.StatusOK, successWithMetaResponse("Recurrences retrieved successfully", resp.Recurrences, query.meta(resp.Total)))
}

func (h *CommissionsHTTPHandler) GetRecurrencesByContrat(c *gin.Context) {
	var query PageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		bindError(c, err)
		return
	}
	organisationID, ok := organisation(c, c.Query("organisation_id"))
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), defaultTimeout)
	defer cancel()

	resp, err := h.commissionClient.GetRecurrencesByContrat(ctx, &proto.GetRecurrencesByContratRequest{
		OrganisationId: organisationID,
		ContratId:      c.Param("id"),
		Page:           query.Page,
		Limit:          query.Limit,
	})
	if handleGRPCError(c, err) {
		return
	}

	c.JSON(http.StatusOK, successWithMetaResponse("Recurrences retrieved successfully", resp.Recurrences, query.meta(resp.Total)))
}

func (h *CommissionsHTTPHandler) GetReportsNegatifs(c *gin.Context) {
	var query ReportsNegatifsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		bindError(c, err)
		return
	}
	organisationID, ok := organisation(c, query.OrganisationID)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), defaultTimeout)
	defer cancel()

	resp, err := h.commissionClient.GetReportsNegatifs(ctx, &proto.GetReportsNegatifsRequest{
		OrganisationId: organisationID,
		ApporteurId:    query.ApporteurID,
		Statut:         query.Statut,
		Page:           query.Page,
		Limit:          query.Limit,
	})
	if handleGRPCError(c, err) {
		return
	}

	c.JSON(http.StatusOK, successWithMetaResponse("Reports negatifs retrieved successfully", resp.Reports, query.meta(resp.Total)))
}

// --- Bareme Handlers ---

func doubleValue(v *float64) *wrapperspb.DoubleValue {
	if v == nil {
		return nil
	}
	return wrapperspb.Double(*v)
}

func int32Value(v *int32) *wrapperspb.Int32Value {
	if v == nil {
		return nil
	}
	return wrapperspb.Int32(*v)
}

func boolValue(v *bool) *wrapperspb.BoolValue {
	if v == nil {
		return nil
	}
	return wrapperspb.Bool(*v)
}

// toProto builds the grid for the caller's organisation. ok is false once a 403 was written.
func (req BaremeRequest) toProto(c *gin.Context) (*proto.Bareme, bool) {
	organisationID, ok := organisation(c, req.OrganisationID)
	if !ok {
		return nil, false
	}
	creePar, _ := actor(c, "cree_par", "")

	paliers := make([]*proto.Palier, 0, len(req.Paliers))
	for _, p := range req.Paliers {
		paliers = append(paliers, &proto.Palier{
			Code:         p.Code,
			Nom:          p.Nom,
			SeuilMin:     p.SeuilMin,
			SeuilMax:     doubleValue(p.SeuilMax),
			MontantPrime: p.MontantPrime,
			TauxBonus:    p.TauxBonus,
			Ordre:        p.Ordre,
			Actif:        boolValue(p.Actif),
		})
	}
	return &proto.Bareme{
		OrganisationId:      organisationID,
		Code:                req.Code,
		Nom:                 req.Nom,
		TypeCalcul:          req.TypeCalcul,
		TauxPourcentage:     req.TauxPourcentage,
		MontantFixe:         req.MontantFixe,
		RecurrenceActive:    req.RecurrenceActive,
		TauxRecurrence:      doubleValue(req.TauxRecurrence),
		DureeRecurrenceMois: int32Value(req.DureeRecurrenceMois),
		TauxReprise:         doubleValue(req.TauxReprise),
		DureeReprisesMois:   int32Value(req.DureeReprisesMois),
		DateEffet:           timestampOf(req.DateEffet),
		DateFin:             timestampPtr(req.DateFin),
		MotifModification:   req.MotifModification,
		CreePar:             creePar,
		Paliers:             paliers,
	}, true
}

func (h *CommissionsHTTPHandler) CreerBareme(c *gin.Context) {
	var req BaremeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	bareme, ok := req.toProto(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), defaultTimeout)
	defer cancel()

	resp, err := h.commissionClient.CreerBareme(ctx, &proto.CreerBaremeRequest{Bareme: bareme})
	if handleGRPCError(c, err) {
		return
	}

	c.JSON(http.StatusCreated, successResponse("Bareme created successfully", resp.Bareme))
}

func (h *CommissionsHTTPHandler) NouvelleVersionBareme(c *gin.Context) {
	var req BaremeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	req.Code = c.Param("code")
	bareme, ok := req.toProto(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), defaultTimeout)
	defer cancel()

	resp, err := h.commissionClient.NouvelleVersionBareme(ctx, &proto.NouvelleVersionBaremeRequest{Bareme: bareme})
	if handleGRPCError(c, err) {
		return
	}

	c.JSON(http.StatusCreated, successResponse("Bareme version created successfully", resp.Bareme))
}

// --- Audit Handlers ---

func (h *CommissionsHTTPHandler) GetAuditLogs(c *gin.Context) {
	var query AuditLogsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		bindError(c, err)
		return
	}

	organisationID, ok := organisation(c, query.OrganisationID)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), defaultTimeout)
	defer cancel()

	resp, err := h.commissionClient.GetAuditLogs(ctx, &proto.GetAuditLogsRequest{
		OrganisationId: organisationID,
		RefId:          query.RefID,
		Scope:          query.Scope,
		Action:         query.Action,
	})
	if handleGRPCError(c, err) {
		return
	}

	c.JSON(http.StatusOK, successWithMetaResponse("Audit logs retrieved successfully", resp.Logs, gin.H{"count": len(resp.Logs)}))
}
