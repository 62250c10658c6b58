package v1

import (
	"net/http"
	"time"

	"go-treeservices-backend/config"
	"go-treeservices-backend/internal/delivery/http/middleware"
	"go-treeservices-backend/internal/delivery/http/response"
	"go-treeservices-backend/internal/domain"
	"go-treeservices-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type RouterDeps struct {
	ConsultationUC domain.ConsultationUsecase
	Config         *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger()) // Use standard Gin logger
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimitMiddleware(
		middleware.GlobalRateLimitConfig(deps.Config.RateLimitGlobalThreshold, window)))

	// Unknown routes go through the same error pipeline as handlers
	r.NoRoute(func(c *gin.Context) {
		c.Error(apperror.NotFound("Resource not found"))
	})

	api := r.Group("/api")

	// Health Check
	api.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational")
	})

	// Consultation form (no auth; strict per-IP limit since every
	// submission fans out into two outbound emails)
	consultation := api.Group("")
	consultation.Use(middleware.RateLimitMiddleware(
		middleware.ConsultationRateLimitConfig(deps.Config.RateLimitConsultationThreshold, window)))
	NewConsultationHandler(consultation, deps.ConsultationUC)

	return r
}
