package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"manjang_web/internal/service"
)

// respondError 將服務層錯誤對應到 HTTP 狀態碼
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, service.ErrUpstream):
		status = http.StatusInternalServerError
	case errors.Is(err, service.ErrProvider):
		status = http.StatusBadGateway
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
