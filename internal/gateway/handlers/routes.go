package handlers

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the commission API on a protected group.
func (h *CommissionsHTTPHandler) RegisterRoutes(protected *gin.RouterGroup) {
	protected.POST("/commissions/calculer", h.CalculerCommission)

	bordereaux := protected.Group("/bordereaux")
	{
		bordereaux.POST("", h.GenererBordereau)
		bordereaux.GET("/:id", h.GetBordereau)
		bordereaux.POST("/:id/valider", h.ValiderBordereau)
		bordereaux.POST("/:id/preselection", h.PreselectionnerLignes)
		bordereaux.POST("/:id/totaux", h.RecalculerTotauxBordereau)
	}

	reprises := protected.Group("/reprises")
	{
		reprises.POST("", h.DeclencherReprise)
		reprises.POST("/:id/regulariser", h.RegulariserReprise)
	}

	recurrences := protected.Group("/recurrences")
	{
		recurrences.POST("", h.GenererRecurrence)
		recurrences.GET("", h.GetRecurrences)
	}
	protected.GET("/contrats/:id/recurrences", h.GetRecurrencesByContrat)
	protected.GET("/reports-negatifs", h.GetReportsNegatifs)

	contestations := protected.Group("/contestations")
	{
		contestations.POST("", h.CreerContestation)
		contestations.GET("", h.GetContestations)
		contestations.POST("/:id/resoudre", h.ResoudreContestation)
	}

	baremes := protected.Group("/baremes")
	{
		baremes.POST("", h.CreerBareme)
		baremes.POST("/:code/versions", h.NouvelleVersionBareme)
	}

	protected.GET("/audit-logs", h.GetAuditLogs)
}
