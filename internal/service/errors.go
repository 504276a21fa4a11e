package service

import "errors"

// 服務層的錯誤分類，handlers 依此對應 HTTP 狀態碼
var (
	ErrNotFound   = errors.New("資料不存在")         // → 404
	ErrValidation = errors.New("輸入不合法")         // → 400
	ErrConflict   = errors.New("時段已有預約")       // → 409
	ErrUpstream   = errors.New("資料庫未回傳資料")   // → 500
	ErrProvider   = errors.New("OAuth 供應商請求失敗") // → 502
)
