package handler

import (
	"net/http"

	"github.com/fomoscore/backend/internal/dto"
	"github.com/fomoscore/backend/internal/service"
	"github.com/fomoscore/backend/pkg/response"
	"github.com/fomoscore/backend/pkg/validator"
	"github.com/gin-gonic/gin"
)

type TelegramHandler struct {
	service service.EngagementService
}

func NewTelegramHandler(service service.EngagementService) *TelegramHandler {
	return &TelegramHandler{service: service}
}

// Engagement runs the telegram-only engagement pipeline against the caller's
// vault. Returns the raw and FOMO-scaled scores with keyword matches.
func (h *TelegramHandler) Engagement(c *gin.Context) {
	var req dto.TelegramEngagementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	result, err := h.service.TelegramEngagement(c.Request.Context(), req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": result})
}
