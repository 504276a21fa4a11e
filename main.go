package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"manjang_web/internal/api"
	"manjang_web/internal/repository"
	"manjang_web/internal/service"
	"manjang_web/internal/storage"
	"manjang_web/internal/utils"
	"manjang_web/pkg/config"
)

func main() {
	// 載入應用程式配置
	// 必要的環境變數缺少時直接結束，避免帶著錯誤設定啟動
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	utils.SetJWTSecret(cfg.JWTSecret)

	// 初始化資料庫連接
	// 資料表結構由 Supabase 端管理，這裡不做遷移
	db, err := storage.NewPostgresDB(cfg.Supabase.DBURL, cfg.Supabase.ServiceRoleKey)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// 初始化 repositories 與 services
	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, cfg)

	// 設置 Gin 路由
	r := gin.Default()
	api.SetupRoutes(r, services, cfg.Server.AllowedOrigins)

	// 啟動伺服器
	if err := r.Run(cfg.Server.Address); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
