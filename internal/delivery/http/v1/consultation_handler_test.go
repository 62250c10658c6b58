package v1_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-treeservices-backend/config"
	v1 "go-treeservices-backend/internal/delivery/http/v1"
	"go-treeservices-backend/internal/delivery/http/middleware"
	"go-treeservices-backend/internal/domain"
	"go-treeservices-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubConsultationUsecase struct {
	err error
	got *domain.ConsultationRequest
}

func (s *stubConsultationUsecase) SendConsultation(ctx context.Context, req *domain.ConsultationRequest) error {
	s.got = req
	return s.err
}

func newTestEngine(uc domain.ConsultationUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger.Init()

	r := gin.New()
	r.Use(middleware.ErrorHandler())
	api := r.Group("/api")
	v1.NewConsultationHandler(api, uc)
	return r
}

func postConsultation(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/consultation", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSubmitConsultationSuccess(t *testing.T) {
	stub := &stubConsultationUsecase{}
	r := newTestEngine(stub)

	w := postConsultation(r, `{
		"name": "Jane Lee",
		"email": "jane@example.com",
		"phone": "0400 111 222",
		"service": "emergency",
		"message": "Branch over roof",
		"images": [],
		"imageNames": []
	}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Consultation request sent successfully"}`, w.Body.String())

	require.NotNil(t, stub.got)
	assert.Equal(t, "Jane Lee", stub.got.Name)
	assert.Equal(t, "emergency", stub.got.Service)
}

func TestSubmitConsultationMissingFields(t *testing.T) {
	stub := &stubConsultationUsecase{err: domain.ErrMissingRequiredFields}
	r := newTestEngine(stub)

	w := postConsultation(r, `{"email":"jane@example.com"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Missing required fields"}`, w.Body.String())
}

func TestSubmitConsultationDispatchFailure(t *testing.T) {
	stub := &stubConsultationUsecase{err: errors.New("provider down")}
	r := newTestEngine(stub)

	w := postConsultation(r, `{
		"name": "Jane Lee",
		"email": "jane@example.com",
		"phone": "0400 111 222",
		"message": "Branch over roof"
	}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Failed to process consultation request"}`, w.Body.String())
}

func TestSubmitConsultationMalformedBody(t *testing.T) {
	stub := &stubConsultationUsecase{}
	r := newTestEngine(stub)

	w := postConsultation(r, `{not json`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Missing required fields"}`, w.Body.String())
	assert.Nil(t, stub.got)
}

func TestSubmitConsultationIgnoresUnknownFields(t *testing.T) {
	stub := &stubConsultationUsecase{}
	r := newTestEngine(stub)

	w := postConsultation(r, `{
		"name": "Jane Lee",
		"email": "jane@example.com",
		"phone": "0400 111 222",
		"message": "Branch over roof",
		"admin": true,
		"internal_flag": "x"
	}`)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, stub.got)
	assert.Equal(t, "Jane Lee", stub.got.Name)
}

func TestRouterHealth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger.Init()

	cfg := &config.Config{
		RateLimitWindowSeconds:         60,
		RateLimitConsultationThreshold: 5,
		RateLimitGlobalThreshold:       100,
	}
	r := v1.NewRouter(v1.RouterDeps{
		ConsultationUC: &stubConsultationUsecase{},
		Config:         cfg,
	})

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"System operational"}`, w.Body.String())
}

func TestRouterUnknownRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger.Init()

	cfg := &config.Config{
		RateLimitWindowSeconds:         60,
		RateLimitConsultationThreshold: 5,
		RateLimitGlobalThreshold:       100,
	}
	r := v1.NewRouter(v1.RouterDeps{
		ConsultationUC: &stubConsultationUsecase{},
		Config:         cfg,
	})

	req := httptest.NewRequest(http.MethodGet, "/api/nope", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Resource not found"}`, w.Body.String())
}
