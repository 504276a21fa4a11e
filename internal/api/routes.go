package api

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"manjang_web/internal/api/handlers"
	"manjang_web/internal/middleware"
	"manjang_web/internal/service"
)

func SetupRoutes(r *gin.Engine, services *service.Services, allowedOrigins []string) {
	// CORS：允許配置的前端來源，帶憑證
	// 帶憑證的請求不能用 * 萬用字元，方法與標頭需逐一列出
	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	// 初始化 handlers
	debateHandler := handlers.NewDebateHandler(services.Debate)
	reservationHandler := handlers.NewReservationHandler(services.Reservation)
	recordHandler := handlers.NewRecordHandler(services.Record)
	naverHandler := handlers.NewNaverHandler(services.Naver, services.User)
	wsHandler := handlers.NewWebSocketHandler(services.Board)

	// 處理 404 錯誤
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "找不到該路徑",
		})
	})

	// 基本的健康檢查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	// 舊版辯論紀錄
	records := r.Group("/records")
	{
		records.GET("", recordHandler.ListRecords)
		records.POST("", recordHandler.CreateRecord)
		records.PUT("/:id", recordHandler.UpdateRecord)
		records.DELETE("/:id", recordHandler.DeleteRecord)
	}

	// 場地預約
	reservations := r.Group("/reservations")
	{
		reservations.GET("", reservationHandler.ListReservations)
		reservations.POST("", reservationHandler.CreateReservation)
		reservations.DELETE("/:id", reservationHandler.CancelReservation)
		reservations.GET("/ws", wsHandler.HandleWebSocket) // 預約看板即時事件
	}

	// 辯論與參賽者
	debates := r.Group("/debates")
	{
		debates.GET("", debateHandler.ListDebates)
		debates.POST("", debateHandler.CreateDebate)
		debates.GET("/:id", debateHandler.GetDebate)
		debates.POST("/:id/participants", debateHandler.AddParticipant)
		debates.DELETE("/:id/participants/:user_id", debateHandler.RemoveParticipant)
		debates.POST("/:id/winner", debateHandler.SetWinner)
	}

	// Naver OAuth 登入
	naver := r.Group("/naver")
	{
		naver.GET("/", naverHandler.Login)
		naver.GET("/callback", naverHandler.Callback)
		naver.POST("/complete", naverHandler.Complete)
		naver.GET("/me", middleware.AuthMiddleware(), naverHandler.Me)
	}
}
