package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"crm-commissions/config"
	"crm-commissions/internal/gateway/clients"
	"crm-commissions/internal/gateway/handlers"
	"crm-commissions/internal/gateway/middleware"
	"crm-commissions/internal/metrics"
	"crm-commissions/internal/utils"
)

func main() {
	godotenv.Load()
	cfg := config.LoadConfig()

	if err := handlers.RegisterValidators(); err != nil {
		log.Fatalf("Failed to register validators: %v", err)
	}

	grpcClients, err := clients.NewGRPCClients(cfg.Commission.ServiceURL)
	if err != nil {
		log.Fatalf("Failed to create commission client: %v", err)
	}
	defer grpcClients.Close()

	tokens, err := utils.NewTokenManager(cfg.Auth.JWTSecret)
	if err != nil {
		log.Fatalf("Failed to configure JWT: %v", err)
	}

	limiter, err := middleware.RateLimit(cfg.Gateway.RateLimit)
	if err != nil {
		log.Fatalf("Invalid rate limit %q: %v", cfg.Gateway.RateLimit, err)
	}

	r := newRouter(grpcClients, tokens, limiter, metrics.Default)

	port := ":" + cfg.Gateway.Port
	log.Printf("Starting server on port %s", port)
	if err := r.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func newRouter(grpcClients *clients.GRPCClients, tokens *utils.TokenManager, limiter gin.HandlerFunc, m *metrics.Metrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.Metrics(m))
	r.Use(limiter)
	r.Use(serviceHealthMiddleware(grpcClients))

	commissionsHandler := handlers.NewCommissionsHTTPHandler(grpcClients.Commissions)

	// --- Protected API Group ---
	protected := r.Group("/api/v1")
	protected.Use(middleware.JWTAuth(tokens))
	commissionsHandler.RegisterRoutes(protected)

	r.GET("/health", healthCheckHandler(grpcClients))
	r.GET("/health/detailed", detailedHealthCheckHandler(grpcClients))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func serviceHealthMiddleware(clients *clients.GRPCClients) gin.HandlerFunc {
	return func(c *gin.Context) {
		if clients.IsCommissionsServiceHealthy() {
			c.Header("X-Commissions-Service", "available")
		} else {
			c.Header("X-Commissions-Service", "unavailable")
		}
		c.Next()
	}
}

func healthCheckHandler(clients *clients.GRPCClients) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := "healthy"
		httpStatus := http.StatusOK

		unavailableServices := []string{}
		if !clients.IsCommissionsServiceHealthy() {
			unavailableServices = append(unavailableServices, "commissions")
		}

		if len(unavailableServices) > 0 {
			status = "degraded"
			httpStatus = http.StatusPartialContent
		}

		c.JSON(httpStatus, gin.H{
			"status":               status,
			"message":              "Server is running",
			"unavailable_services": unavailableServices,
			"timestamp":            time.Now(),
		})
	}
}

func detailedHealthCheckHandler(clients *clients.GRPCClients) gin.HandlerFunc {
	return func(c *gin.Context) {
		services := map[string]interface{}{
			"commissions": checkServiceHealth(clients.IsCommissionsServiceHealthy()),
		}

		overallStatus := "healthy"
		for _, service := range services {
			if serviceMap, ok := service.(map[string]interface{}); ok {
				if serviceMap["status"] != "healthy" {
					overallStatus = "degraded"
				}
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"overall_status": overallStatus,
			"services":       services,
			"timestamp":      time.Now(),
		})
	}
}

func checkServiceHealth(isHealthy bool) map[string]interface{} {
	if !isHealthy {
		return map[string]interface{}{
			"status":  "unavailable",
			"message": "Service client not initialized or connection lost",
		}
	}
	return map[string]interface{}{
		"status":  "healthy",
		"message": "Service is responding",
	}
}
