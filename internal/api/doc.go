// Package api 定義 HTTP 路由並把請求轉交給對應的 handler。
//
// 對外的資源包含辯論紀錄（/records）、場地預約（/reservations，含看板的
// WebSocket 事件）、辯論與參賽者（/debates）以及 Naver 登入流程（/naver）。
// handlers 子包負責解析請求、呼叫服務層並把錯誤對應成 HTTP 狀態碼。
package api
