package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"manjang_web/internal/models"
	"manjang_web/internal/service"
)

// RecordHandler 處理與舊版辯論紀錄相關的請求
type RecordHandler struct {
	recordService *service.RecordService
}

// NewRecordHandler 創建一個新的 RecordHandler 實例
func NewRecordHandler(recordService *service.RecordService) *RecordHandler {
	return &RecordHandler{recordService: recordService}
}

// ListRecords 處理查詢紀錄列表的請求，支援搜尋、分類過濾與排序
func (h *RecordHandler) ListRecords(c *gin.Context) {
	search := c.Query("search")
	category := c.Query("category")
	sort := c.DefaultQuery("sort", "date-desc")

	records, err := h.recordService.List(search, category, sort)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

// RecordInput 定義建立與更新紀錄請求的結構
type RecordInput struct {
	Title            string          `json:"title" binding:"required"`
	Category         string          `json:"category" binding:"required"`
	Date             models.DateOnly `json:"date" binding:"required"`
	Summary          string          `json:"summary"`
	KeyPoints        []string        `json:"keyPoints"`
	Conclusion       string          `json:"conclusion"`
	Participants     int             `json:"participants"`
	ParticipantNames []string        `json:"participantNames"`
}

func (input *RecordInput) toModel() *models.DebateRecord {
	return &models.DebateRecord{
		Title:            input.Title,
		Category:         input.Category,
		Date:             input.Date,
		Summary:          input.Summary,
		KeyPoints:        input.KeyPoints,
		Conclusion:       input.Conclusion,
		Participants:     input.Participants,
		ParticipantNames: input.ParticipantNames,
	}
}

// CreateRecord 處理建立紀錄的請求
func (h *RecordHandler) CreateRecord(c *gin.Context) {
	var input RecordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := h.recordService.Create(input.toModel())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

// UpdateRecord 處理整筆覆寫紀錄的請求
func (h *RecordHandler) UpdateRecord(c *gin.Context) {
	var input RecordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := h.recordService.Update(c.Param("id"), input.toModel())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// DeleteRecord 處理刪除紀錄的請求
func (h *RecordHandler) DeleteRecord(c *gin.Context) {
	if err := h.recordService.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
