package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server      ServerConfig
	Supabase    SupabaseConfig
	Naver       NaverConfig
	Frontend    FrontendConfig
	JWTSecret   string
	Reservation ReservationConfig
}

type ServerConfig struct {
	Address        string
	AllowedOrigins []string
}

type SupabaseConfig struct {
	DBURL          string // 資料庫主機位址
	ServiceRoleKey string // service role 金鑰，作為連線密碼使用
}

type NaverConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
}

type FrontendConfig struct {
	BaseURL string
}

type ReservationConfig struct {
	// StrictOverlap 啟用時，時段重疊的預約會被直接拒絕而不只是警告
	StrictOverlap bool
}

// 開發環境預設的前端來源（Vite dev server）
var devOrigins = []string{
	"http://localhost:5173",
	"http://127.0.0.1:5173",
}

// Load 從環境變數載入應用程式配置
// 缺少必要的資料庫設定時直接回傳錯誤，讓程式在啟動階段就失敗
func Load() (*Config, error) {
	// .env 檔案不存在時忽略錯誤，直接使用環境變數
	_ = godotenv.Load()

	viper.AutomaticEnv()
	viper.SetDefault("SERVER_ADDRESS", ":8000")
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:5173")
	viper.SetDefault("NAVER_REDIRECT_URI", "http://localhost:8000/naver/callback")
	viper.SetDefault("JWT_SECRET", "manjang_dev_secret")
	viper.SetDefault("RESERVATION_STRICT_OVERLAP", false)

	config := &Config{
		Server: ServerConfig{
			Address:        viper.GetString("SERVER_ADDRESS"),
			AllowedOrigins: ParseAllowedOrigins(viper.GetString("ALLOWED_ORIGINS")),
		},
		Supabase: SupabaseConfig{
			DBURL:          viper.GetString("SUPABASE_DB_URL"),
			ServiceRoleKey: viper.GetString("SUPABASE_SERVICE_ROLE_KEY"),
		},
		Naver: NaverConfig{
			ClientID:     viper.GetString("NAVER_CLIENT_ID"),
			ClientSecret: viper.GetString("NAVER_CLIENT_SECRET"),
			RedirectURI:  viper.GetString("NAVER_REDIRECT_URI"),
		},
		Frontend: FrontendConfig{
			BaseURL: viper.GetString("FRONTEND_BASE_URL"),
		},
		JWTSecret: viper.GetString("JWT_SECRET"),
		Reservation: ReservationConfig{
			StrictOverlap: viper.GetBool("RESERVATION_STRICT_OVERLAP"),
		},
	}

	if config.Supabase.DBURL == "" {
		return nil, fmt.Errorf("missing required environment variable: SUPABASE_DB_URL")
	}
	if config.Supabase.ServiceRoleKey == "" {
		return nil, fmt.Errorf("missing required environment variable: SUPABASE_SERVICE_ROLE_KEY")
	}

	return config, nil
}

// ParseAllowedOrigins 解析逗號分隔的 CORS 白名單
// 未設定或解析結果為空時退回開發環境預設值
func ParseAllowedOrigins(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return devOrigins
	}

	var origins []string
	for _, origin := range strings.Split(raw, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return devOrigins
	}

	// 本地開發來源永遠保留，避免設定錯誤把自己鎖在外面
	origins = append(origins, "http://localhost:5173")
	return origins
}
