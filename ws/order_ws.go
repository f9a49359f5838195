package ws

import (
	"log"
	"net/http"
	"sync"

	"foodway-backend/repository"
	"foodway-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// OrderHub streams each user's order list over WebSocket: the full refreshed
// list is pushed on connect and again after every change (checkout, reorder,
// operator action).
type OrderHub struct {
	clients    map[uint]map[*websocket.Conn]bool // userID -> set of conns
	register   chan subscription
	unregister chan subscription
	refresh    chan uint
	mu         sync.Mutex
	orders     *repository.OrderRepository
}

type subscription struct {
	conn   *websocket.Conn
	userID uint
}

func NewOrderHub(orders *repository.OrderRepository) *OrderHub {
	return &OrderHub{
		clients:    make(map[uint]map[*websocket.Conn]bool),
		register:   make(chan subscription),
		unregister: make(chan subscription),
		refresh:    make(chan uint),
		orders:     orders,
	}
}

// OrdersChanged satisfies services.OrderNotifier.
func (h *OrderHub) OrdersChanged(userID uint) {
	h.refresh <- userID
}

func (h *OrderHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.userID] == nil {
				h.clients[sub.userID] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.userID][sub.conn] = true
			h.mu.Unlock()
			h.pushTo(sub.conn, sub.userID)

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub.userID][sub.conn]; ok {
				delete(h.clients[sub.userID], sub.conn)
				sub.conn.Close()
			}
			h.mu.Unlock()

		case userID := <-h.refresh:
			h.push(userID)
		}
	}
}

func (h *OrderHub) push(userID uint) {
	orders, err := h.orders.ListForUser(userID)
	if err != nil {
		log.Printf("ws order fetch error: %v", err)
		return
	}
	payload := gin.H{"orders": orders}

	h.mu.Lock()
	for conn := range h.clients[userID] {
		if err := conn.WriteJSON(payload); err != nil {
			log.Printf("ws write error: %v", err)
			conn.Close()
			delete(h.clients[userID], conn)
		}
	}
	h.mu.Unlock()
}

func (h *OrderHub) pushTo(conn *websocket.Conn, userID uint) {
	orders, err := h.orders.ListForUser(userID)
	if err != nil {
		log.Printf("ws order fetch error: %v", err)
		return
	}
	if err := conn.WriteJSON(gin.H{"orders": orders}); err != nil {
		log.Printf("ws write error: %v", err)
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/orders
func (h *OrderHub) HandleWebSocket(c *gin.Context) {
	userID := utils.CurrentUserID(c)
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "unauthorized"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	h.register <- subscription{conn: conn, userID: userID}

	// Clients never send; the read loop only notices the close.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				h.unregister <- subscription{conn: conn, userID: userID}
				return
			}
		}
	}()
}
