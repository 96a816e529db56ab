package server

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
	"github.com/lox/balatro-advisor/internal/advisor"
	"github.com/lox/balatro-advisor/internal/scenario"
	"github.com/lox/balatro-advisor/internal/scoring"
	"github.com/lox/balatro-advisor/poker"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = 8192
)

// Connection is one websocket client. Each connection owns its advisor, so
// level changes stay local to the client that made them.
type Connection struct {
	conn      *websocket.Conn
	send      chan *Response
	advisor   *advisor.Advisor
	logger    *log.Logger
	ctx       context.Context
	cancel    context.CancelFunc
	closeOnce sync.Once
}

// NewConnection wraps an upgraded websocket
func NewConnection(conn *websocket.Conn, adv *advisor.Advisor, logger *log.Logger) *Connection {
	ctx, cancel := context.WithCancel(context.Background())

	return &Connection{
		conn:    conn,
		send:    make(chan *Response, 64),
		advisor: adv,
		logger:  logger.WithPrefix("conn").With("remote", conn.RemoteAddr().String()),
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Start begins handling the connection
func (c *Connection) Start() {
	go c.writePump()
	go c.readPump()
}

// Done is closed once the connection has shut down.
func (c *Connection) Done() <-chan struct{} {
	return c.ctx.Done()
}

// Close closes the connection
func (c *Connection) Close() error {
	var err error
	c.closeOnce.Do(func() {
		c.cancel()
		err = c.conn.Close()
	})
	return err
}

func (c *Connection) enqueue(resp *Response) {
	select {
	case c.send <- resp:
	case <-c.ctx.Done():
	}
}

// readPump handles incoming requests from the client
func (c *Connection) readPump() {
	defer func() { _ = c.Close() }()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Error("WebSocket error", "error", err)
			}
			return
		}

		var req Request
		if err := json.Unmarshal(data, &req); err != nil {
			c.enqueue(errorResponse("", ErrCodeInvalidMessage, "failed to parse request: "+err.Error()))
			continue
		}
		c.enqueue(c.handleRequest(&req))
	}
}

// writePump handles outgoing responses to the client
func (c *Connection) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.Close()
	}()

	for {
		select {
		case resp := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteJSON(resp); err != nil {
				c.logger.Error("Failed to write message", "error", err)
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-c.ctx.Done():
			_ = c.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(writeWait))
			return
		}
	}
}

// handleRequest dispatches a request and builds its response
func (c *Connection) handleRequest(req *Request) *Response {
	c.logger.Debug("Received request", "type", req.Type, "requestId", req.RequestID)

	var resp *Response
	switch req.Type {
	case MessageTypeLevels:
		resp = c.handleLevels(req)
	case MessageTypeScore:
		resp = c.handleScore(req)
	case MessageTypeReport:
		resp = c.handleReport(req)
	default:
		resp = errorResponse(req.RequestID, ErrCodeUnknownType, "unknown message type: "+req.Type.String())
	}
	resp.RequestID = req.RequestID
	return resp
}

func (c *Connection) handleLevels(req *Request) *Response {
	if len(req.Levels) > 0 {
		parsed, err := scoring.ParseLevels(req.Levels)
		if err != nil {
			return errorResponse(req.RequestID, ErrCodeInvalidLevels, err.Error())
		}
		updates := make(map[poker.HandType]int, len(req.Levels))
		for name := range req.Levels {
			ht, _ := poker.ParseHandType(name)
			updates[ht] = parsed.Level(ht)
		}
		if err := c.advisor.SetLevels(updates); err != nil {
			return errorResponse(req.RequestID, ErrCodeInvalidLevels, err.Error())
		}
	}
	return &Response{Type: MessageTypeLevels, Levels: c.advisor.Calculator().Levels().Map()}
}

func (c *Connection) handleScore(req *Request) *Response {
	hand, err := poker.ParseCards(req.Hand)
	if err != nil {
		return errorResponse(req.RequestID, ErrCodeInvalidHand, err.Error())
	}
	result, err := c.advisor.Calculator().Score(hand)
	if err != nil {
		return errorResponse(req.RequestID, ErrCodeInvalidHand, err.Error())
	}
	return &Response{Type: MessageTypeScore, Score: &result}
}

func (c *Connection) handleReport(req *Request) *Response {
	hand, err := poker.ParseCards(req.Hand)
	if err != nil {
		return errorResponse(req.RequestID, ErrCodeInvalidHand, err.Error())
	}

	state := advisor.GameState{
		Hand:              hand,
		TargetScore:       intOr(req.TargetScore, scenario.DefaultTargetScore),
		HandsRemaining:    intOr(req.HandsRemaining, scenario.DefaultHandsRemaining),
		DiscardsRemaining: intOr(req.DiscardsRemaining, scenario.DefaultDiscardsRemaining),
		Ante:              intOr(req.Ante, scenario.DefaultAnte),
		Money:             intOr(req.Money, scenario.DefaultMoney),
	}
	report, err := c.advisor.Report(state)
	switch {
	case errors.Is(err, advisor.ErrInvalidGameState):
		return errorResponse(req.RequestID, ErrCodeInvalidState, err.Error())
	case err != nil:
		return errorResponse(req.RequestID, ErrCodeInvalidHand, err.Error())
	}
	return &Response{Type: MessageTypeReport, Report: &report}
}

func errorResponse(requestID, code, message string) *Response {
	return &Response{Type: MessageTypeError, RequestID: requestID, Code: code, Error: message}
}

func intOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}
