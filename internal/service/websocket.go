package service

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"manjang_web/internal/models"
)

// BoardClient 代表一個訂閱預約看板的 WebSocket 連線
type BoardClient struct {
	Conn     *websocket.Conn
	SendChan chan *models.ReservationEvent // 事件發送通道，用於異步傳送
}

// ReservationBoard 管理所有看板連線並廣播預約事件
// 只有一個共用場地，因此所有連線都在同一個看板上
type ReservationBoard struct {
	clients    map[*BoardClient]bool
	clientsMux sync.RWMutex // 保護 clients map 的讀寫鎖
}

func NewReservationBoard() *ReservationBoard {
	return &ReservationBoard{
		clients: make(map[*BoardClient]bool),
	}
}

// HandleConnection 處理新的看板連線，阻塞直到連線關閉
func (b *ReservationBoard) HandleConnection(conn *websocket.Conn) {
	client := &BoardClient{
		Conn:     conn,
		SendChan: make(chan *models.ReservationEvent, 256),
	}

	b.addClient(client)

	defer func() {
		b.removeClient(client)
		conn.Close()
	}()

	go b.writePump(client)
	b.readPump(client)
}

// readPump 看板是唯讀的，這裡只維持連線並丟棄客戶端訊息
func (b *ReservationBoard) readPump(client *BoardClient) {
	client.Conn.SetReadLimit(512)
	client.Conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	client.Conn.SetPongHandler(func(string) error {
		client.Conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		if _, _, err := client.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("websocket unexpected close error: %v", err)
			}
			break
		}
	}
}

// writePump 處理向客戶端發送事件與心跳
func (b *ReservationBoard) writePump(client *BoardClient) {
	ticker := time.NewTicker(54 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-client.SendChan:
			client.Conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if !ok {
				client.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			payload, err := json.Marshal(event)
			if err != nil {
				log.Printf("event encoding error: %v", err)
				continue
			}
			if err := client.Conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}

		case <-ticker.C:
			client.Conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := client.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// Broadcast 向所有連線中的客戶端廣播事件
// 持有讀鎖發送，removeClient 在寫鎖內關閉通道，兩者不會交錯
func (b *ReservationBoard) Broadcast(event *models.ReservationEvent) {
	b.clientsMux.RLock()
	defer b.clientsMux.RUnlock()

	for client := range b.clients {
		select {
		case client.SendChan <- event:
		default:
			// 客戶端事件佇列已滿，略過這次事件
		}
	}
}

func (b *ReservationBoard) addClient(client *BoardClient) {
	b.clientsMux.Lock()
	defer b.clientsMux.Unlock()
	b.clients[client] = true
}

func (b *ReservationBoard) removeClient(client *BoardClient) {
	b.clientsMux.Lock()
	defer b.clientsMux.Unlock()
	if _, ok := b.clients[client]; ok {
		delete(b.clients, client)
		close(client.SendChan)
	}
}

// ClientCount 回傳目前的連線數
func (b *ReservationBoard) ClientCount() int {
	b.clientsMux.RLock()
	defer b.clientsMux.RUnlock()
	return len(b.clients)
}
