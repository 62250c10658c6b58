package v1

import (
	"errors"
	"net/http"

	"go-treeservices-backend/internal/delivery/http/response"
	"go-treeservices-backend/internal/domain"
	"go-treeservices-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ConsultationHandler struct {
	consultationUC domain.ConsultationUsecase
}

// NewConsultationHandler registers the consultation routes (public, no auth required)
func NewConsultationHandler(public *gin.RouterGroup, consultationUC domain.ConsultationUsecase) {
	handler := &ConsultationHandler{
		consultationUC: consultationUC,
	}

	// Public Route - NO authentication required
	public.POST("/consultation", handler.SubmitConsultation)
}

// SubmitConsultation godoc
// @Summary      Submit Consultation Request
// @Description  Send a consultation/quote request through the website form. This is a public endpoint.
// @Tags         consultation
// @Accept       json
// @Produce      json
// @Param        consultation  body      domain.ConsultationRequest  true  "Consultation Form Data"
// @Success      200           {object}  response.Body
// @Failure      400           {object}  response.Body
// @Failure      500           {object}  response.Body
// @Router       /consultation [post]
func (h *ConsultationHandler) SubmitConsultation(c *gin.Context) {
	var req domain.ConsultationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// An unparsable body is indistinguishable from absent fields
		// for the caller.
		c.Error(apperror.BadRequest("Missing required fields"))
		return
	}

	if err := h.consultationUC.SendConsultation(c.Request.Context(), &req); err != nil {
		if errors.Is(err, domain.ErrMissingRequiredFields) {
			c.Error(apperror.BadRequest("Missing required fields"))
			return
		}
		c.Error(apperror.Internal("Failed to process consultation request", err))
		return
	}

	response.Success(c, http.StatusOK, "Consultation request sent successfully")
}
