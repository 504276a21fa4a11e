package service

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"gorm.io/gorm"

	"manjang_web/internal/models"
	"manjang_web/internal/repository"
	"manjang_web/internal/utils"
	"manjang_web/pkg/config"
)

// Naver OAuth 的固定端點
const (
	naverAuthorizeURL = "https://nid.naver.com/oauth2.0/authorize"
	naverTokenURL     = "https://nid.naver.com/oauth2.0/token"
	naverProfileURL   = "https://openapi.naver.com/v1/nid/me"
)

// 用戶未提供顯示名稱時的預設值
const defaultDisplayName = "사용자"

// NaverService 處理 Naver OAuth 登入與註冊完成流程
type NaverService struct {
	clientID     string
	clientSecret string
	redirectURI  string
	frontendBase string

	authorizeURL string
	tokenURL     string
	profileURL   string

	httpClient *http.Client
	userRepo   repository.UserRepository
}

func NewNaverService(cfg *config.Config, userRepo repository.UserRepository) *NaverService {
	return &NaverService{
		clientID:     cfg.Naver.ClientID,
		clientSecret: cfg.Naver.ClientSecret,
		redirectURI:  cfg.Naver.RedirectURI,
		frontendBase: cfg.Frontend.BaseURL,
		authorizeURL: naverAuthorizeURL,
		tokenURL:     naverTokenURL,
		profileURL:   naverProfileURL,
		httpClient:   &http.Client{Timeout: 10 * time.Second},
		userRepo:     userRepo,
	}
}

// GenerateState 產生一次性的 state token，防止 CSRF
func GenerateState() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// AuthURL 組出導向 Naver 授權頁的網址
func (s *NaverService) AuthURL(state string) string {
	params := url.Values{}
	params.Set("response_type", "code")
	params.Set("client_id", s.clientID)
	params.Set("redirect_uri", s.redirectURI)
	params.Set("state", state)
	return s.authorizeURL + "?" + params.Encode()
}

type naverTokenResponse struct {
	AccessToken      string `json:"access_token"`
	TokenType        string `json:"token_type"`
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

type naverProfile struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Nickname string `json:"nickname"`
}

type naverProfileResponse struct {
	Response naverProfile `json:"response"`
}

// exchangeToken 以授權碼向 Naver 換取 access token
func (s *NaverService) exchangeToken(code, state string) (string, error) {
	form := url.Values{}
	form.Set("grant_type", "authorization_code")
	form.Set("client_id", s.clientID)
	form.Set("client_secret", s.clientSecret)
	form.Set("code", code)
	form.Set("state", state)

	resp, err := s.httpClient.PostForm(s.tokenURL, form)
	if err != nil {
		return "", fmt.Errorf("%w: token request: %v", ErrProvider, err)
	}
	defer resp.Body.Close()

	var token naverTokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return "", fmt.Errorf("%w: token response: %v", ErrProvider, err)
	}
	if token.AccessToken == "" {
		return "", fmt.Errorf("%w: failed to get access token", ErrValidation)
	}
	return token.AccessToken, nil
}

// fetchProfile 以 access token 取得 Naver 用戶資料
func (s *NaverService) fetchProfile(accessToken string) (*naverProfile, error) {
	req, err := http.NewRequest(http.MethodGet, s.profileURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: profile request: %v", ErrProvider, err)
	}
	defer resp.Body.Close()

	var profile naverProfileResponse
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("%w: profile response: %v", ErrProvider, err)
	}
	return &profile.Response, nil
}

// HandleCallback 處理授權回呼，回傳瀏覽器應導向的前端網址
// state 的比對由 handler 以 cookie 完成，這裡只負責換 token 之後的流程
func (s *NaverService) HandleCallback(code, state string) (string, error) {
	accessToken, err := s.exchangeToken(code, state)
	if err != nil {
		return "", err
	}

	profile, err := s.fetchProfile(accessToken)
	if err != nil {
		return "", err
	}

	name := profile.Name
	if name == "" {
		name = profile.Nickname
	}
	if name == "" {
		name = defaultDisplayName
	}

	// Email 可能不在授權範圍內，改用 Naver id 合成一組唯一的替代信箱
	email := profile.Email
	if email == "" {
		if profile.ID == "" {
			return "", fmt.Errorf("%w: failed to parse naver user profile", ErrValidation)
		}
		email = fmt.Sprintf("naver_%s@naver.local", profile.ID)
	}

	existing, err := s.findUser(email)
	if err != nil {
		return "", err
	}

	// 已完成註冊的用戶直接回首頁
	if existing != nil && existing.Sid != nil {
		displayName := name
		if existing.Name != nil {
			displayName = *existing.Name
		}
		return s.successRedirect(displayName, email)
	}

	// 首次登入，導向前端收集學號
	params := url.Values{}
	params.Set("onboarding", "1")
	params.Set("name", name)
	params.Set("email", email)
	return s.frontendBase + "/login?" + params.Encode(), nil
}

// CompleteRegistration 完成註冊（補齊學號），回傳成功導向網址
// sid 設定後即不可變更，重複呼叫只會回傳成功導向而不更新
func (s *NaverService) CompleteRegistration(email string, name *string, sid string) (string, error) {
	if email == "" || sid == "" {
		return "", fmt.Errorf("%w: email and sid are required", ErrValidation)
	}

	existing, err := s.findUser(email)
	if err != nil {
		return "", err
	}

	if existing != nil {
		if existing.Sid != nil {
			return s.successRedirect(coalesceName(existing.Name, name), email)
		}
		updated, err := s.userRepo.UpdateSid(email, sid, name)
		if err != nil {
			return "", err
		}
		return s.successRedirect(coalesceName(updated.Name, name), email)
	}

	created := &models.User{Email: email, Name: name, Sid: &sid}
	if err := s.userRepo.Create(created); err != nil {
		return "", err
	}
	return s.successRedirect(coalesceName(created.Name, name), email)
}

// findUser 查詢用戶，不存在時回傳 nil 而非錯誤
func (s *NaverService) findUser(email string) (*models.User, error) {
	user, err := s.userRepo.FindByEmail(email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// successRedirect 組出登入成功的前端導向網址，附上 session token
func (s *NaverService) successRedirect(name, email string) (string, error) {
	token, err := utils.GenerateToken(email)
	if err != nil {
		return "", err
	}

	params := url.Values{}
	params.Set("login", "success")
	params.Set("name", name)
	params.Set("email", email)
	params.Set("token", token)
	return s.frontendBase + "/home?" + params.Encode(), nil
}

func coalesceName(first *string, second *string) string {
	if first != nil && *first != "" {
		return *first
	}
	if second != nil {
		return *second
	}
	return ""
}
