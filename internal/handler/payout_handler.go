package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/blues/cfe/internal/campaign"
	"github.com/blues/cfe/internal/logic"
	"github.com/blues/cfe/internal/model"
)

type PayoutHandler struct {
	payoutLogic *logic.PayoutLogic
}

func NewPayoutHandler(db *gorm.DB, engine *campaign.Engine) *PayoutHandler {
	return &PayoutHandler{
		payoutLogic: logic.NewPayoutLogic(db, engine),
	}
}

// RecordPayout 记录打款
func (h *PayoutHandler) RecordPayout(c *gin.Context) {
	var payout model.Payout
	if err := c.ShouldBindJSON(&payout); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.payoutLogic.RecordPayout(&payout); err != nil {
		if errors.Is(err, logic.ErrProjectNotFound) {
			ErrorResponse(c, http.StatusNotFound, err.Error())
			return
		}
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	SuccessResponse(c, http.StatusCreated, "payout recorded", payout)
}

// GetReconciliation 获取项目打款对账结果
func (h *PayoutHandler) GetReconciliation(c *gin.Context) {
	reconciliation, err := h.payoutLogic.Reconcile(c.Param("permalink"))
	if err != nil {
		if errors.Is(err, logic.ErrProjectNotFound) {
			ErrorResponse(c, http.StatusNotFound, err.Error())
			return
		}
		ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	SuccessResponse(c, http.StatusOK, "ok", reconciliation)
}
