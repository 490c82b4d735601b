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

type ProjectHandler struct {
	projectLogic *logic.ProjectLogic
}

func NewProjectHandler(db *gorm.DB, engine *campaign.Engine) *ProjectHandler {
	return &ProjectHandler{
		projectLogic: logic.NewProjectLogic(db, engine),
	}
}

// CreateProject 创建项目
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var project model.Project
	if err := c.ShouldBindJSON(&project); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.projectLogic.CreateProject(&project); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	SuccessResponse(c, http.StatusCreated, "project created", project)
}

// GetProjects 获取可见项目列表
func (h *ProjectHandler) GetProjects(c *gin.Context) {
	filter := c.Query("filter")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	projects, total, err := h.projectLogic.GetVisibleProjects(filter, page, pageSize)
	if err != nil {
		ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	SuccessResponse(c, http.StatusOK, "ok", gin.H{
		"projects":  projects,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

// GetProject 按永久链接获取项目详情
func (h *ProjectHandler) GetProject(c *gin.Context) {
	project, err := h.projectLogic.FindByPermalink(c.Param("permalink"))
	if err != nil {
		if errors.Is(err, logic.ErrProjectNotFound) {
			ErrorResponse(c, http.StatusNotFound, err.Error())
			return
		}
		ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	SuccessResponse(c, http.StatusOK, "ok", project)
}

// GetProjectStats 获取项目筹款统计
func (h *ProjectHandler) GetProjectStats(c *gin.Context) {
	stats, err := h.projectLogic.GetProjectStats(c.Param("permalink"))
	if err != nil {
		if errors.Is(err, logic.ErrProjectNotFound) {
			ErrorResponse(c, http.StatusNotFound, err.Error())
			return
		}
		ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	SuccessResponse(c, http.StatusOK, "ok", stats)
}

// LaunchProject 上线项目
func (h *ProjectHandler) LaunchProject(c *gin.Context) {
	// Body is optional; an empty body launches with the stored window.
	var body struct {
		OnlineDays int `json:"online_days"`
	}
	_ = c.ShouldBindJSON(&body)

	project, err := h.projectLogic.LaunchProject(c.Param("permalink"), body.OnlineDays)
	if err != nil {
		if errors.Is(err, logic.ErrProjectNotFound) {
			ErrorResponse(c, http.StatusNotFound, err.Error())
			return
		}
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	SuccessResponse(c, http.StatusOK, "project launched", project)
}

// RejectProject 驳回项目
func (h *ProjectHandler) RejectProject(c *gin.Context) {
	if err := h.projectLogic.RejectProject(c.Param("permalink")); err != nil {
		if errors.Is(err, logic.ErrProjectNotFound) {
			ErrorResponse(c, http.StatusNotFound, err.Error())
			return
		}
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	SuccessResponse(c, http.StatusOK, "project rejected", nil)
}

// DeleteProject 删除项目
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	if err := h.projectLogic.DeleteProject(c.Param("permalink")); err != nil {
		if errors.Is(err, logic.ErrProjectNotFound) {
			ErrorResponse(c, http.StatusNotFound, err.Error())
			return
		}
		ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	SuccessResponse(c, http.StatusOK, "project deleted", nil)
}
