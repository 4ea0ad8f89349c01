package handler

import (
	"net/http"

	"github.com/bluecarbon/bcms/internal/logic"
	"github.com/bluecarbon/bcms/internal/model"
	"github.com/bluecarbon/bcms/internal/store"
	"github.com/gin-gonic/gin"
)

// MonitoringHandler 基线、活动与MRV记录接口
type MonitoringHandler struct {
	monitoringLogic *logic.MonitoringLogic
}

func NewMonitoringHandler(s store.Store) *MonitoringHandler {
	return &MonitoringHandler{
		monitoringLogic: logic.NewMonitoringLogic(s),
	}
}

// CreateBaseline 创建基线数据
func (h *MonitoringHandler) CreateBaseline(c *gin.Context) {
	var req CreateBaselineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	baseline := &model.Baseline{
		ProjectId:        req.ProjectId,
		VegetationCover:  req.VegetationCover,
		SoilCarbon:       req.SoilCarbon,
		SamplingDate:     req.SamplingDate,
		SamplingMethod:   req.SamplingMethod,
		LabCertification: req.LabCertification,
		CarbonStock:      req.CarbonStock,
	}

	if err := h.monitoringLogic.CreateBaseline(c.Request.Context(), baseline); err != nil {
		HandleError(c, err)
		return
	}

	SuccessResponse(c, http.StatusCreated, "baseline created", gin.H{
		"baseline": ToBaselineResponse(baseline),
	})
}

// GetBaselines 获取项目的基线数据
func (h *MonitoringHandler) GetBaselines(c *gin.Context) {
	baselines, err := h.monitoringLogic.GetBaselines(c.Request.Context(), c.Param("projectId"))
	if err != nil {
		HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"baselines": ToBaselineResponseList(baselines),
	})
}

// CreateActivity 创建活动记录
func (h *MonitoringHandler) CreateActivity(c *gin.Context) {
	var req CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	activity := &model.Activity{
		ProjectId:        req.ProjectId,
		ActivityType:     req.ActivityType,
		Date:             req.Date,
		Species:          req.Species,
		SaplingCount:     req.SaplingCount,
		AreaHectares:     req.AreaHectares,
		MaintenanceNotes: req.MaintenanceNotes,
		Crew:             req.Crew,
		Latitude:         req.Latitude,
		Longitude:        req.Longitude,
		PhotoCids:        req.PhotoCids,
	}

	if err := h.monitoringLogic.CreateActivity(c.Request.Context(), activity); err != nil {
		HandleError(c, err)
		return
	}

	SuccessResponse(c, http.StatusCreated, "activity created", gin.H{
		"activity": ToActivityResponse(activity),
	})
}

// GetActivities 获取项目的活动记录
func (h *MonitoringHandler) GetActivities(c *gin.Context) {
	activities, err := h.monitoringLogic.GetActivities(c.Request.Context(), c.Param("projectId"))
	if err != nil {
		HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"activities": ToActivityResponseList(activities),
	})
}

// CreateMRVRecord 创建MRV记录
func (h *MonitoringHandler) CreateMRVRecord(c *gin.Context) {
	var req CreateMRVRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	record := &model.MRVRecord{
		ProjectId:       req.ProjectId,
		Date:            req.Date,
		MRVType:         req.MRVType,
		DataSource:      req.DataSource,
		NDVI:            req.NDVI,
		EVI:             req.EVI,
		CarbonStock:     req.CarbonStock,
		ChangeDetection: req.ChangeDetection,
	}

	if err := h.monitoringLogic.CreateMRVRecord(c.Request.Context(), record); err != nil {
		HandleError(c, err)
		return
	}

	SuccessResponse(c, http.StatusCreated, "mrv record created", gin.H{
		"mrv": ToMRVResponse(record),
	})
}

// GetMRVRecords 获取项目的MRV记录
func (h *MonitoringHandler) GetMRVRecords(c *gin.Context) {
	records, err := h.monitoringLogic.GetMRVRecords(c.Request.Context(), c.Param("projectId"))
	if err != nil {
		HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"mrv": ToMRVResponseList(records),
	})
}
