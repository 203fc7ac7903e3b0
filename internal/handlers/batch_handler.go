package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Rajesh25lab/payroll-phase3-v2/internal/middleware"
	"github.com/Rajesh25lab/payroll-phase3-v2/internal/models"
	"github.com/Rajesh25lab/payroll-phase3-v2/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type BatchHandler struct {
	batches  *repository.BatchRepository
	payments *repository.PaymentRepository
	log      *logrus.Logger
}

func NewBatchHandler(batches *repository.BatchRepository, payments *repository.PaymentRepository, log *logrus.Logger) *BatchHandler {
	return &BatchHandler{batches: batches, payments: payments, log: log}
}

func validMonth(month string) bool {
	if len(month) != 2 {
		return false
	}
	n, err := strconv.Atoi(month)
	return err == nil && n >= 1 && n <= 12
}

func (h *BatchHandler) Create(c *gin.Context) {
	var payload struct {
		Name           string           `json:"name"`
		Month          string           `json:"month"`
		Year           int              `json:"year"`
		TotalEmployees *int             `json:"totalEmployees"`
		TotalAmount    *decimal.Decimal `json:"totalAmount"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil ||
		payload.Name == "" || payload.Month == "" || payload.Year == 0 ||
		payload.TotalEmployees == nil || payload.TotalAmount == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}
	if !validMonth(payload.Month) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid month"})
		return
	}

	claims := middleware.ClaimsFrom(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	// TotalEmployees and TotalAmount are the caller's estimate; exports
	// recompute the actual total from payments.
	batch := &models.Batch{
		Name:           payload.Name,
		Month:          payload.Month,
		Year:           payload.Year,
		TotalEmployees: *payload.TotalEmployees,
		TotalAmount:    *payload.TotalAmount,
		CreatedBy:      claims.UserID,
		CreatedAt:      time.Now(),
		Status:         models.BatchStatusActive,
	}
	if err := h.batches.Create(batch); err != nil {
		h.log.Errorf("batch create failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":             batch.ID,
		"name":           batch.Name,
		"month":          batch.Month,
		"year":           batch.Year,
		"totalEmployees": batch.TotalEmployees,
		"totalAmount":    batch.TotalAmount.InexactFloat64(),
		"message":        "Batch created successfully",
	})
}

func (h *BatchHandler) List(c *gin.Context) {
	batches, err := h.batches.List()
	if err != nil {
		h.log.Errorf("batch list failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error: " + err.Error()})
		return
	}

	out := make([]gin.H, 0, len(batches))
	for _, b := range batches {
		out = append(out, gin.H{
			"id":             b.ID,
			"name":           b.Name,
			"month":          b.Month,
			"year":           b.Year,
			"totalEmployees": b.TotalEmployees,
			"totalAmount":    b.TotalAmount.InexactFloat64(),
			"status":         b.Status,
			"last_processed": b.LastProcessed,
			"created_at":     b.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, gin.H{"batches": out, "total": len(out)})
}

// AddPayments bulk-attaches payment rows to a batch.
func (h *BatchHandler) AddPayments(c *gin.Context) {
	batchID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid batch ID"})
		return
	}

	if _, err := h.batches.GetBatch(uint(batchID)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Batch not found"})
			return
		}
		h.log.Errorf("batch lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error: " + err.Error()})
		return
	}

	var payload struct {
		Payments []struct {
			EmployeeID    string           `json:"employeeId"`
			EmployeeName  string           `json:"employeeName"`
			AccountNumber string           `json:"accountNumber"`
			IFSCCode      string           `json:"ifscCode"`
			Amount        *decimal.Decimal `json:"amount"`
			Email         string           `json:"email"`
			Mobile        string           `json:"mobile"`
		} `json:"payments"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil || len(payload.Payments) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	now := time.Now()
	rows := make([]models.Payment, 0, len(payload.Payments))
	for _, p := range payload.Payments {
		if p.Amount == nil || p.Amount.IsNegative() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Payment amount must be a non-negative number"})
			return
		}
		rows = append(rows, models.Payment{
			BatchID:       uint(batchID),
			EmployeeID:    p.EmployeeID,
			EmployeeName:  p.EmployeeName,
			AccountNumber: p.AccountNumber,
			IFSCCode:      p.IFSCCode,
			Amount:        *p.Amount,
			Email:         p.Email,
			Mobile:        p.Mobile,
			CreatedAt:     now,
		})
	}

	if err := h.payments.CreateAll(rows); err != nil {
		h.log.Errorf("payment insert failed for batch %d: %v", batchID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Payments added successfully", "paymentsAdded": len(rows)})
}

func (h *BatchHandler) ListPayments(c *gin.Context) {
	batchID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid batch ID"})
		return
	}

	payments, err := h.payments.ListByBatch(uint(batchID))
	if err != nil {
		h.log.Errorf("payment list failed for batch %d: %v", batchID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error: " + err.Error()})
		return
	}

	out := make([]gin.H, 0, len(payments))
	for _, p := range payments {
		out = append(out, gin.H{
			"id":            p.ID,
			"employeeId":    p.EmployeeID,
			"employeeName":  p.EmployeeName,
			"accountNumber": p.AccountNumber,
			"ifscCode":      p.IFSCCode,
			"amount":        p.Amount.InexactFloat64(),
			"email":         p.Email,
			"mobile":        p.Mobile,
		})
	}
	c.JSON(http.StatusOK, gin.H{"payments": out, "total": len(out)})
}
