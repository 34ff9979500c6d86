package handler

import (
	"net/http"
	"strconv"

	"github.com/fomoscore/backend/internal/dto"
	"github.com/fomoscore/backend/internal/service"
	"github.com/fomoscore/backend/pkg/apperror"
	"github.com/fomoscore/backend/pkg/response"
	"github.com/fomoscore/backend/pkg/validator"
	"github.com/gin-gonic/gin"
)

type ScoreHandler struct {
	service service.ScoreService
}

func NewScoreHandler(service service.ScoreService) *ScoreHandler {
	return &ScoreHandler{service: service}
}

// CalculateScore recomputes the caller's composite score from whichever
// sources the request names.
func (h *ScoreHandler) CalculateScore(c *gin.Context) {
	var req dto.CalculateScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	privyID, err := response.GetPrivyID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	if req.PrivyID != privyID {
		response.ResponseError(c, apperror.ErrForbidden)
		return
	}

	result, err := h.service.CalculateScore(c.Request.Context(), req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": result})
}

func (h *ScoreHandler) GetScore(c *gin.Context) {
	privyID := c.Param("privyId")
	if privyID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "privyId is required"})
		return
	}

	result, err := h.service.GetScore(c.Request.Context(), privyID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": result})
}

// GetMyScore returns the authenticated caller's stored score.
func (h *ScoreHandler) GetMyScore(c *gin.Context) {
	privyID, err := response.GetPrivyID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	result, err := h.service.GetScore(c.Request.Context(), privyID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": result})
}

// RescoreWallet refreshes one linked wallet's on-chain score.
func (h *ScoreHandler) RescoreWallet(c *gin.Context) {
	var req dto.WalletScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	privyID, err := response.GetPrivyID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	if req.PrivyID != privyID {
		response.ResponseError(c, apperror.ErrForbidden)
		return
	}

	result, err := h.service.RescoreWallet(c.Request.Context(), req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": result})
}

func (h *ScoreHandler) Leaderboard(c *gin.Context) {
	limit := 10
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = parsed
	}

	entries, err := h.service.Leaderboard(c.Request.Context(), limit)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": entries})
}
