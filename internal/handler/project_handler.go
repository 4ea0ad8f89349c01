package handler

import (
	"net/http"

	"github.com/bluecarbon/bcms/internal/logic"
	"github.com/bluecarbon/bcms/internal/model"
	"github.com/bluecarbon/bcms/internal/store"
	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	projectLogic *logic.ProjectLogic
}

func NewProjectHandler(s store.Store) *ProjectHandler {
	return &ProjectHandler{
		projectLogic: logic.NewProjectLogic(s),
	}
}

// CreateProject 创建项目
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	project := &model.Project{
		ProjectId:          req.ProjectId,
		ProjectName:        req.ProjectName,
		Latitude:           req.Latitude,
		Longitude:          req.Longitude,
		EcosystemType:      req.EcosystemType,
		Ownership:          req.Ownership,
		Governance:         req.Governance,
		ImplementingAgency: req.ImplementingAgency,
		Description:        req.Description,
		AreaHectares:       req.AreaHectares,
		EstablishedOn:      req.EstablishedOn,
	}

	if err := h.projectLogic.CreateProject(c.Request.Context(), project); err != nil {
		HandleError(c, err)
		return
	}

	SuccessResponse(c, http.StatusCreated, "project created", gin.H{
		"project": ToProjectResponse(project),
	})
}

// GetProjects 获取项目列表
func (h *ProjectHandler) GetProjects(c *gin.Context) {
	projects, err := h.projectLogic.GetProjects(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"projects": ToProjectResponseList(projects),
	})
}

// GetProject 获取单个项目详情
func (h *ProjectHandler) GetProject(c *gin.Context) {
	project, err := h.projectLogic.GetProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"project": ToProjectResponse(project),
	})
}

// SubmitProject 将项目置为已提交
func (h *ProjectHandler) SubmitProject(c *gin.Context) {
	project, err := h.projectLogic.SubmitProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		HandleError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "project submitted", gin.H{
		"project": ToProjectResponse(project),
	})
}
