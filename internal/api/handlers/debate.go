package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"manjang_web/internal/models"
	"manjang_web/internal/service"
)

// DebateHandler 處理與辯論相關的請求
type DebateHandler struct {
	debateService *service.DebateService
}

// NewDebateHandler 創建一個新的 DebateHandler 實例
func NewDebateHandler(debateService *service.DebateService) *DebateHandler {
	return &DebateHandler{debateService: debateService}
}

// ListDebates 處理查詢辯論列表的請求，可用 year 參數限定年度
func (h *DebateHandler) ListDebates(c *gin.Context) {
	var year *int
	if raw := c.Query("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "無效的年份"})
			return
		}
		year = &parsed
	}

	debates, err := h.debateService.List(year)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, debates)
}

// CreateDebateInput 定義建立辯論請求的結構
type CreateDebateInput struct {
	TopicText  string          `json:"topic_text" binding:"required"`
	DebateDate models.DateOnly `json:"debate_date" binding:"required"`
	Notes      *string         `json:"notes"`
}

// CreateDebate 處理建立辯論的請求
func (h *DebateHandler) CreateDebate(c *gin.Context) {
	var input CreateDebateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	debate, err := h.debateService.Create(input.TopicText, input.DebateDate, input.Notes)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, debate)
}

// GetDebate 處理查詢單場辯論的請求
func (h *DebateHandler) GetDebate(c *gin.Context) {
	debate, err := h.debateService.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, debate)
}

// AddParticipantInput 定義加入參賽者請求的結構
type AddParticipantInput struct {
	DebateID string      `json:"debate_id" binding:"required"`
	UserID   string      `json:"user_id" binding:"required"`
	Side     models.Side `json:"side" binding:"required"`
}

// AddParticipant 處理將用戶加入辯論的請求
// 路徑上的辯論 ID 必須與請求體一致
func (h *DebateHandler) AddParticipant(c *gin.Context) {
	var input AddParticipantInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	participant, err := h.debateService.AddParticipant(c.Param("id"), &models.DebateParticipant{
		DebateID: input.DebateID,
		UserID:   input.UserID,
		Side:     input.Side,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, participant)
}

// RemoveParticipant 處理將用戶移出辯論的請求
func (h *DebateHandler) RemoveParticipant(c *gin.Context) {
	if err := h.debateService.RemoveParticipant(c.Param("id"), c.Param("user_id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// SetWinnerInput 定義設定勝方請求的結構
type SetWinnerInput struct {
	WinnerSide models.Side `json:"winner_side" binding:"required"`
}

// SetWinner 處理設定辯論勝方的請求
func (h *DebateHandler) SetWinner(c *gin.Context) {
	var input SetWinnerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	debate, err := h.debateService.SetWinner(c.Param("id"), input.WinnerSide)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, debate)
}
