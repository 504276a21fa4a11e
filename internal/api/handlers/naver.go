package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"manjang_web/internal/service"
)

// state cookie 的名稱與存活時間（秒）
const (
	stateCookieName   = "naver_oauth_state"
	stateCookieMaxAge = 600
)

// NaverHandler 處理 Naver OAuth 登入流程的請求
type NaverHandler struct {
	naverService *service.NaverService
	userService  *service.UserService
}

// NewNaverHandler 創建一個新的 NaverHandler 實例
func NewNaverHandler(naverService *service.NaverService, userService *service.UserService) *NaverHandler {
	return &NaverHandler{
		naverService: naverService,
		userService:  userService,
	}
}

// Login 產生一次性的 state 並將瀏覽器導向 Naver 授權頁
func (h *NaverHandler) Login(c *gin.Context) {
	state, err := service.GenerateState()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "無法產生 state token"})
		return
	}

	// state 暫存在 cookie 中，callback 時比對
	c.SetCookie(stateCookieName, state, stateCookieMaxAge, "/", "", false, true)
	c.Redirect(http.StatusFound, h.naverService.AuthURL(state))
}

// Callback 處理 Naver 授權完成後的回呼
func (h *NaverHandler) Callback(c *gin.Context) {
	code := c.Query("code")
	state := c.Query("state")

	expected, err := c.Cookie(stateCookieName)
	if err != nil || state == "" || state != expected {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid state parameter"})
		return
	}
	// state 為一次性，比對完即失效
	c.SetCookie(stateCookieName, "", -1, "/", "", false, true)

	redirectURL, err := h.naverService.HandleCallback(code, state)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Redirect(http.StatusFound, redirectURL)
}

// CompleteInput 定義完成註冊請求的結構
type CompleteInput struct {
	Email string  `json:"email" binding:"required"`
	Name  *string `json:"name"`
	Sid   string  `json:"sid" binding:"required"`
}

// Complete 完成註冊：補上學號後回傳前端應導向的網址
func (h *NaverHandler) Complete(c *gin.Context) {
	var input CompleteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and sid are required"})
		return
	}

	redirectURL, err := h.naverService.CompleteRegistration(input.Email, input.Name, input.Sid)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "redirect": redirectURL})
}

// Me 回傳目前登入用戶的資料，依中間件解析出的 email 查詢
func (h *NaverHandler) Me(c *gin.Context) {
	email := c.GetString("userEmail")
	user, err := h.userService.GetUserByEmail(email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
