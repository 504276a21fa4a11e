package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"manjang_web/internal/models"
	"manjang_web/internal/repository"
	"manjang_web/internal/service"
)

// ReservationHandler 處理與場地預約相關的請求
type ReservationHandler struct {
	reservationService *service.ReservationService
}

// NewReservationHandler 創建一個新的 ReservationHandler 實例
func NewReservationHandler(reservationService *service.ReservationService) *ReservationHandler {
	return &ReservationHandler{reservationService: reservationService}
}

// ListReservations 處理查詢預約列表的請求
// start/end 過濾與 [start, end] 區間有交集的預約，date 限定單一天
func (h *ReservationHandler) ListReservations(c *gin.Context) {
	var filter repository.ReservationFilter

	if raw := c.Query("start"); raw != "" {
		start, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "無效的 start 時間格式"})
			return
		}
		filter.Start = &start
	}
	if raw := c.Query("end"); raw != "" {
		end, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "無效的 end 時間格式"})
			return
		}
		filter.End = &end
	}
	if raw := c.Query("date"); raw != "" {
		date, err := models.ParseDateOnly(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "無效的 date 日期格式"})
			return
		}
		filter.Date = &date
	}

	reservations, err := h.reservationService.List(filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reservations)
}

// CreateReservationInput 定義建立預約請求的結構
type CreateReservationInput struct {
	ReservedBy     *string   `json:"reserved_by"`
	ReservedByName *string   `json:"reserved_by_name"`
	Title          *string   `json:"title"`
	StartsAt       time.Time `json:"starts_at" binding:"required"`
	EndsAt         time.Time `json:"ends_at" binding:"required"`
	DebateID       *string   `json:"debate_id"`
}

// CreateReservation 處理建立預約的請求
// 回應帶有 warn_opponent_booked 旗標，表示同場辯論的對手是否已預約重疊時段
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	var input CreateReservationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reservation := &models.Reservation{
		ReservedBy:     input.ReservedBy,
		ReservedByName: input.ReservedByName,
		Title:          input.Title,
		StartsAt:       input.StartsAt,
		EndsAt:         input.EndsAt,
		DebateID:       input.DebateID,
	}

	warnOpponent, err := h.reservationService.Create(reservation)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"reservation":          reservation,
		"warn_opponent_booked": warnOpponent,
	})
}

// CancelReservation 處理取消預約的請求
func (h *ReservationHandler) CancelReservation(c *gin.Context) {
	if err := h.reservationService.Cancel(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
