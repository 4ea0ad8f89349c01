package handler

import (
	"errors"
	"net/http"

	"github.com/bluecarbon/bcms/internal/apperr"
	"github.com/gin-gonic/gin"
)

// Response 通用成功响应结构
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrResponse 通用错误响应结构
type ErrResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// SuccessResponse 成功响应
func SuccessResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponse 错误响应
func ErrorResponse(c *gin.Context, statusCode int, message string, details string) {
	c.JSON(statusCode, ErrResponse{
		Success: false,
		Error:   message,
		Details: details,
	})
}

// HandleError 把业务错误翻译为HTTP响应，所有失败都在
// 各自handler边界处理，不再向外传播
func HandleError(c *gin.Context, err error) {
	msg := err.Error()
	details := ""
	var e *apperr.Error
	if errors.As(err, &e) {
		msg = e.Msg
		if e.Err != nil {
			details = e.Err.Error()
		}
	}

	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		ErrorResponse(c, http.StatusBadRequest, msg, "")
	case apperr.KindNotFound:
		ErrorResponse(c, http.StatusNotFound, msg, "")
	default:
		ErrorResponse(c, http.StatusInternalServerError, msg, details)
	}
}
