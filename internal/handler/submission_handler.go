package handler

import (
	"net/http"

	"github.com/bluecarbon/bcms/internal/logic"
	"github.com/bluecarbon/bcms/internal/pinning"
	"github.com/bluecarbon/bcms/internal/store"
	"github.com/gin-gonic/gin"
)

type SubmissionHandler struct {
	submissionLogic *logic.SubmissionLogic
}

func NewSubmissionHandler(s store.Store, p pinning.Pinner) *SubmissionHandler {
	return &SubmissionHandler{
		submissionLogic: logic.NewSubmissionLogic(s, p),
	}
}

// CreateSubmission 接收multipart表单，上传图片并创建提交记录
func (h *SubmissionHandler) CreateSubmission(c *gin.Context) {
	req := logic.SubmitRequest{
		Description:      c.PostForm("description"),
		Title:            c.PostForm("title"),
		ApplicantAddress: c.PostForm("applicantAddress"),
		Latitude:         c.PostForm("latitude"),
		Longitude:        c.PostForm("longitude"),
	}

	// 文件字段缺失交由logic层统一报错
	fileHeader, err := c.FormFile("file")
	if err == nil {
		file, err := fileHeader.Open()
		if err != nil {
			ErrorResponse(c, http.StatusBadRequest, "failed to read uploaded file", err.Error())
			return
		}
		defer file.Close()

		req.File = file
		req.FileName = fileHeader.Filename
		req.FileType = fileHeader.Header.Get("Content-Type")
		req.FileSize = fileHeader.Size
	}

	submission, err := h.submissionLogic.Submit(c.Request.Context(), req)
	if err != nil {
		HandleError(c, err)
		return
	}

	SuccessResponse(c, http.StatusCreated, "submission created", gin.H{
		"submission": ToSubmissionResponse(submission),
	})
}

// GetSubmissions 获取提交记录列表
func (h *SubmissionHandler) GetSubmissions(c *gin.Context) {
	submissions, err := h.submissionLogic.GetSubmissions(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"submissions": ToSubmissionResponseList(submissions),
	})
}

// GetSubmission 获取单条提交记录
func (h *SubmissionHandler) GetSubmission(c *gin.Context) {
	submission, err := h.submissionLogic.GetSubmission(c.Request.Context(), c.Param("id"))
	if err != nil {
		HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"submission": ToSubmissionResponse(submission),
	})
}

// GetMetadata 获取代币元数据视图
func (h *SubmissionHandler) GetMetadata(c *gin.Context) {
	metadata, err := h.submissionLogic.GetMetadata(c.Request.Context(), c.Param("id"))
	if err != nil {
		HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, metadata)
}

// MarkMinted 将提交记录标记为已铸造
func (h *SubmissionHandler) MarkMinted(c *gin.Context) {
	var evidence logic.MintEvidence
	if err := c.ShouldBindJSON(&evidence); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	submission, err := h.submissionLogic.MarkMinted(c.Request.Context(), c.Param("id"), evidence)
	if err != nil {
		HandleError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "submission marked minted", gin.H{
		"submission": ToSubmissionResponse(submission),
	})
}
