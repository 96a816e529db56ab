package server

import (
	"github.com/lox/balatro-advisor/internal/advisor"
	"github.com/lox/balatro-advisor/internal/scoring"
)

// MessageType identifies a request or response
type MessageType string

const (
	MessageTypeLevels MessageType = "levels"
	MessageTypeScore  MessageType = "score"
	MessageTypeReport MessageType = "report"
	MessageTypeError  MessageType = "error"
)

func (t MessageType) String() string {
	return string(t)
}

// Error codes carried by error responses
const (
	ErrCodeInvalidMessage = "invalid_message"
	ErrCodeUnknownType    = "unknown_message_type"
	ErrCodeInvalidHand    = "invalid_hand"
	ErrCodeInvalidLevels  = "invalid_levels"
	ErrCodeInvalidState   = "invalid_game_state"
)

// Client → Server

// Request is a single client request. Which fields apply depends on Type:
// levels uses Levels, score uses Hand, report uses Hand and the counters.
// Counters left out of a report request take the scenario defaults.
type Request struct {
	Type      MessageType    `json:"type"`
	RequestID string         `json:"requestId,omitempty"`
	Levels    map[string]int `json:"levels,omitempty"`
	Hand      string         `json:"hand,omitempty"`

	TargetScore       *int `json:"target_score,omitempty"`
	HandsRemaining    *int `json:"hands_remaining,omitempty"`
	DiscardsRemaining *int `json:"discards_remaining,omitempty"`
	Ante              *int `json:"ante,omitempty"`
	Money             *int `json:"money,omitempty"`
}

// Server → Client

// Response answers a Request with the same type, or MessageTypeError.
type Response struct {
	Type      MessageType          `json:"type"`
	RequestID string               `json:"requestId,omitempty"`
	Levels    map[string]int       `json:"levels,omitempty"`
	Score     *scoring.ScoreResult `json:"score,omitempty"`
	Report    *advisor.Report      `json:"report,omitempty"`
	Code      string               `json:"code,omitempty"`
	Error     string               `json:"error,omitempty"`
}
