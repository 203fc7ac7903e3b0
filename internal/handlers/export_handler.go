package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Rajesh25lab/payroll-phase3-v2/internal/middleware"
	"github.com/Rajesh25lab/payroll-phase3-v2/internal/services/export"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type ExportHandler struct {
	service      *export.Service
	allowedRoles []string
	log          *logrus.Logger
}

// NewExportHandler builds the export endpoint. allowedRoles is an optional
// allow-list; empty means any authenticated user may export, which is the
// default deployment policy.
func NewExportHandler(service *export.Service, allowedRoles []string, log *logrus.Logger) *ExportHandler {
	return &ExportHandler{service: service, allowedRoles: allowedRoles, log: log}
}

// GenerateFiles produces the bank transfer file or the tally journal for a
// batch and stamps the batch processed.
func (h *ExportHandler) GenerateFiles(c *gin.Context) {
	var payload struct {
		BatchID  uint   `json:"batchId"`
		FileType string `json:"fileType"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}
	if payload.BatchID == 0 || payload.FileType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	claims := middleware.ClaimsFrom(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	if len(h.allowedRoles) > 0 && !contains(h.allowedRoles, claims.Role) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
		return
	}

	result, err := h.service.Export(payload.BatchID, payload.FileType, claims.Email)
	if err != nil {
		switch {
		case errors.Is(err, export.ErrInvalidFileType):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid file type"})
		case errors.Is(err, export.ErrBatchNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Batch not found"})
		default:
			h.log.Errorf("file generation failed for batch %d: %v", payload.BatchID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error: " + err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"fileName":      result.FileName,
		"content":       result.Content,
		"message":       strings.ToUpper(string(result.FileType)) + " file generated successfully",
		"totalPayments": result.PaymentCount,
		"totalAmount":   result.TotalAmount.InexactFloat64(),
	})
}

func contains(roles []string, role string) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
