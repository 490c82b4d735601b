package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/blues/cfe/internal/campaign"
	"github.com/blues/cfe/internal/logic"
	"github.com/blues/cfe/internal/model"
)

type ContributionHandler struct {
	contributionLogic *logic.ContributionLogic
}

func NewContributionHandler(db *gorm.DB, engine *campaign.Engine) *ContributionHandler {
	return &ContributionHandler{
		contributionLogic: logic.NewContributionLogic(db, engine),
	}
}

// CreateContribution 创建出资
func (h *ContributionHandler) CreateContribution(c *gin.Context) {
	var contribution model.Contribution
	if err := c.ShouldBindJSON(&contribution); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.contributionLogic.CreateContribution(&contribution); err != nil {
		if errors.Is(err, logic.ErrProjectNotFound) {
			ErrorResponse(c, http.StatusNotFound, err.Error())
			return
		}
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	SuccessResponse(c, http.StatusCreated, "contribution created", contribution)
}

// GetProjectContributions 获取项目出资列表
func (h *ContributionHandler) GetProjectContributions(c *gin.Context) {
	projectID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "invalid project id")
		return
	}

	contributions, err := h.contributionLogic.GetProjectContributions(uint(projectID))
	if err != nil {
		ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	SuccessResponse(c, http.StatusOK, "ok", contributions)
}

// ConfirmContribution 确认出资
func (h *ContributionHandler) ConfirmContribution(c *gin.Context) {
	h.applyTransition(c, h.contributionLogic.ConfirmContribution, "contribution confirmed")
}

// WaitConfirmation 标记出资等待确认
func (h *ContributionHandler) WaitConfirmation(c *gin.Context) {
	h.applyTransition(c, h.contributionLogic.WaitConfirmation, "contribution waiting confirmation")
}

// RequestRefund 申请退款
func (h *ContributionHandler) RequestRefund(c *gin.Context) {
	h.applyTransition(c, h.contributionLogic.RequestRefund, "refund requested")
}

// RefundContribution 退款
func (h *ContributionHandler) RefundContribution(c *gin.Context) {
	h.applyTransition(c, h.contributionLogic.RefundContribution, "contribution refunded")
}

func (h *ContributionHandler) applyTransition(c *gin.Context, transition func(uint) error, message string) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "invalid contribution id")
		return
	}

	if err := transition(uint(id)); err != nil {
		if errors.Is(err, logic.ErrContributionNotFound) {
			ErrorResponse(c, http.StatusNotFound, err.Error())
			return
		}
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	SuccessResponse(c, http.StatusOK, message, nil)
}
