package server

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/railbirdhq/railbird/internal/action"
	"github.com/railbirdhq/railbird/internal/pattern"
)

// Connection represents a WebSocket connection to a client. Each
// connection answers validation and classification queries statelessly
// against the shared vocabulary, so a dropped connection loses nothing.
type Connection struct {
	conn      *websocket.Conn
	send      chan *Message
	vocab     action.Vocabulary
	logger    *log.Logger
	ctx       context.Context
	cancel    context.CancelFunc
	closeOnce sync.Once
}

// NewConnection creates a new connection wrapper
func NewConnection(conn *websocket.Conn, logger *log.Logger, vocab action.Vocabulary) *Connection {
	ctx, cancel := context.WithCancel(context.Background())

	return &Connection{
		conn:   conn,
		send:   make(chan *Message, 256),
		vocab:  vocab,
		logger: logger.WithPrefix("conn"),
		ctx:    ctx,
		cancel: cancel,
	}
}

// Start begins handling the connection
func (c *Connection) Start() {
	go c.writePump()
	go c.readPump()
}

// Close closes the connection
func (c *Connection) Close() error {
	var err error
	c.closeOnce.Do(func() {
		c.cancel()
		close(c.send)
		err = c.conn.Close()
	})
	return err
}

// SendMessage sends a message to the client
func (c *Connection) SendMessage(msg *Message) error {
	defer func() {
		if r := recover(); r != nil {
			// Channel was closed, expected during shutdown
			c.logger.Debug("Attempted to send message on closed connection", "error", r)
		}
	}()

	select {
	case c.send <- msg:
		return nil
	case <-c.ctx.Done():
		return c.ctx.Err()
	default:
		c.logger.Warn("Connection send buffer full, closing connection")
		_ = c.Close()
		return ErrConnectionClosed
	}
}

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = 65536
)

var ErrConnectionClosed = websocket.ErrCloseSent

// readPump handles incoming messages from the client
func (c *Connection) readPump() {
	defer func() { _ = c.Close() }()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		select {
		case <-c.ctx.Done():
			return
		default:
		}

		var msg Message
		err := c.conn.ReadJSON(&msg)
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger.Error("WebSocket error", "error", err)
			}
			break
		}

		c.handleMessage(&msg)
	}
}

// writePump handles outgoing messages to the client
func (c *Connection) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteJSON(message); err != nil {
				c.logger.Error("Failed to write message", "error", err)
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-c.ctx.Done():
			return
		}
	}
}

// handleMessage processes incoming messages from the client
func (c *Connection) handleMessage(msg *Message) {
	c.logger.Debug("Received message", "type", msg.Type)

	switch msg.Type {
	case MessageTypeValidate:
		var data ValidateData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			c.sendError(msg, "invalid_message", "Failed to parse validate data")
			return
		}
		c.handleValidate(msg, data)

	case MessageTypeValidActions:
		var data ValidActionsData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			c.sendError(msg, "invalid_message", "Failed to parse valid actions data")
			return
		}
		c.handleValidActions(msg, data)

	case MessageTypeClassify:
		var data ClassifyData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			c.sendError(msg, "invalid_message", "Failed to parse classify data")
			return
		}
		c.handleClassify(msg, data)

	default:
		c.sendError(msg, "unknown_message_type", "Unknown message type: "+msg.Type.String())
	}
}

// sendError sends an error message to the client
func (c *Connection) sendError(req *Message, code, message string) {
	errorMsg, err := NewMessage(MessageTypeError, ErrorData{
		Code:    code,
		Message: message,
	})
	if err != nil {
		c.logger.Error("Failed to create error message", "error", err)
		return
	}
	c.reply(req, errorMsg)
}

// reply echoes the request ID so clients can correlate responses.
func (c *Connection) reply(req *Message, resp *Message) {
	if req != nil {
		resp.RequestID = req.RequestID
	}
	_ = c.SendMessage(resp)
}

func (c *Connection) handleValidate(req *Message, data ValidateData) {
	result, ok := validateWithNext(c.vocab, data)
	if !ok {
		c.sendError(req, "invalid_street", "Unknown street: "+data.Street)
		return
	}

	response, _ := NewMessage(MessageTypeValidateResult, result)
	c.reply(req, response)
}

func (c *Connection) handleValidActions(req *Message, data ValidActionsData) {
	street, ok := action.StreetFromString(data.Street)
	if !ok {
		c.sendError(req, "invalid_street", "Unknown street: "+data.Street)
		return
	}

	response, _ := NewMessage(MessageTypeActionList, ActionListData{
		Street:  street.String(),
		Actions: action.ValidNextActions(data.Prior, street, c.vocab),
	})
	c.reply(req, response)
}

func (c *Connection) handleClassify(req *Message, data ClassifyData) {
	if err := data.Sequence.Validate(); err != nil {
		c.sendError(req, "invalid_sequence", err.Error())
		return
	}

	result := ClassifyResultData{
		Preflop:  pattern.SummarizePreflop(data.Sequence),
		Postflop: make(map[string]map[int][]string),
	}
	for street, seats := range pattern.SummarizePostflop(data.Sequence, data.ButtonSeat) {
		result.Postflop[street.String()] = seats
	}
	if seat, ok := pattern.PreflopAggressor(data.Sequence); ok {
		result.PFRSeat = seat
	}

	response, _ := NewMessage(MessageTypeClassifyResult, result)
	c.reply(req, response)
}
