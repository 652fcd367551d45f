/*
   TruthVerifier - social media content credibility verifier
   Copyright (C) 2025  Unbewohnte (Kasyanov Nikolay Alexeevich)

   This program is free software: you can redistribute it and/or modify
   it under the terms of the GNU General Public License as published by
   the Free Software Foundation, either version 3 of the License, or
   (at your option) any later version.

   This program is distributed in the hope that it will be useful,
   but WITHOUT ANY WARRANTY; without even the implied warranty of
   MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
   GNU General Public License for more details.

   You should have received a copy of the GNU General Public License
   along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/

package web

import (
	"html"
	"log"
	"net/http"
	"strings"
	"sync"

	"github.com/gorilla/websocket"
)

const (
	MessageLog      = "log"
	MessageAnalysis = "analysis"
)

type WebMessage struct {
	Type      string `json:"type"`
	Content   string `json:"content"`
	RequestID string `json:"request_id,omitempty"`
}

type WebClient struct {
	conn *websocket.Conn
	send chan WebMessage
}

// Hub рассылает события проверок всем подключенным вкладкам
type Hub struct {
	upgrader websocket.Upgrader
	clients  map[*WebClient]bool
	mu       sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		clients: make(map[*WebClient]bool),
	}
}

func (hub *Hub) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := hub.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade error: %v", err)
		return
	}

	client := &WebClient{
		conn: conn,
		send: make(chan WebMessage, 256),
	}
	hub.addClient(client)

	go client.writePump()
	go client.readPump(hub)
}

func (hub *Hub) addClient(client *WebClient) {
	hub.mu.Lock()
	defer hub.mu.Unlock()
	hub.clients[client] = true
	log.Printf("Web client connected")
}

func (hub *Hub) removeClient(client *WebClient) {
	hub.mu.Lock()
	defer hub.mu.Unlock()
	hub.dropLocked(client)
}

// dropLocked вызывается только под hub.mu
func (hub *Hub) dropLocked(client *WebClient) {
	if _, ok := hub.clients[client]; ok {
		delete(hub.clients, client)
		close(client.send)
		log.Printf("Web client disconnected")
	}
}

func (hub *Hub) ClientCount() int {
	hub.mu.Lock()
	defer hub.mu.Unlock()
	return len(hub.clients)
}

func (hub *Hub) broadcast(msg WebMessage) {
	hub.mu.Lock()
	defer hub.mu.Unlock()

	for client := range hub.clients {
		select {
		case client.send <- msg:
		default:
			// Клиент не успевает читать
			hub.dropLocked(client)
		}
	}
}

// SendLog sends log messages to web clients
func (hub *Hub) SendLog(requestID string, text string) {
	hub.broadcast(WebMessage{
		Type:      MessageLog,
		Content:   text,
		RequestID: requestID,
	})
}

// SendAnalysis рассылает результат, преобразованный из Markdown в HTML
func (hub *Hub) SendAnalysis(requestID string, result string) {
	content, err := RenderMarkdown(result)
	if err != nil {
		log.Printf("Не удалось преобразовать Markdown: %v", err)
		content = plainTextHTML(result)
	}

	hub.broadcast(WebMessage{
		Type:      MessageAnalysis,
		Content:   content,
		RequestID: requestID,
	})
}

func (c *WebClient) writePump() {
	defer c.conn.Close()

	for msg := range c.send {
		err := c.conn.WriteJSON(msg)
		if err != nil {
			break
		}
	}
}

// Лента только на отправку, входящие сообщения нужны лишь чтобы заметить закрытие
func (c *WebClient) readPump(hub *Hub) {
	defer func() {
		hub.removeClient(c)
		c.conn.Close()
	}()

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			break
		}
	}
}

// plainTextHTML экранирует текст и сохраняет переносы строк
func plainTextHTML(text string) string {
	return strings.ReplaceAll(html.EscapeString(text), "\n", "<br>")
}
