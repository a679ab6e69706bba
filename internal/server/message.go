package server

import (
	"encoding/json"
	"time"

	"github.com/railbirdhq/railbird/internal/action"
)

// Message represents the base WebSocket message structure
type Message struct {
	Type      MessageType     `json:"type"`
	Data      json.RawMessage `json:"data"`
	Timestamp time.Time       `json:"timestamp"`
	RequestID string          `json:"requestId,omitempty"`
}

// NewMessage creates a new message with the current timestamp
func NewMessage(messageType MessageType, data interface{}) (*Message, error) {
	dataBytes, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	return &Message{
		Type:      messageType,
		Data:      dataBytes,
		Timestamp: time.Now(),
	}, nil
}

// MessageType identifies a WebSocket message
type MessageType string

const (
	// Client → Server
	MessageTypeValidate     MessageType = "validate"
	MessageTypeValidActions MessageType = "valid_actions"
	MessageTypeClassify     MessageType = "classify"

	// Server → Client
	MessageTypeValidateResult MessageType = "validate_result"
	MessageTypeActionList     MessageType = "action_list"
	MessageTypeClassifyResult MessageType = "classify_result"
	MessageTypeError          MessageType = "error"
)

func (t MessageType) String() string { return string(t) }

// Client → Server Messages

// ValidateData asks whether an action is legal given a seat's prior
// actions on the hand.
type ValidateData struct {
	Prior  []string `json:"prior"`
	Action string   `json:"action"`
	Street string   `json:"street"`
}

// ValidActionsData asks for the legal next actions for a seat.
type ValidActionsData struct {
	Prior  []string `json:"prior"`
	Street string   `json:"street"`
}

// ClassifyData asks for pattern labels over a full hand sequence.
type ClassifyData struct {
	ButtonSeat int             `json:"buttonSeat"`
	Sequence   action.Sequence `json:"sequence"`
}

// Server → Client Messages

type ValidateResultData struct {
	Valid   bool   `json:"valid"`
	Error   string `json:"error,omitempty"`
	Warning string `json:"warning,omitempty"`
	// ValidNext lists the labels that would be legal after this action,
	// so the recorder UI can light up buttons without a second round trip.
	ValidNext []string `json:"validNext,omitempty"`
}

// validateWithNext runs the legacy validator and fills ValidNext: after
// a valid action, the labels legal once it is recorded; after an
// invalid one, the labels that would have been legal instead. The
// second return value is false for an unknown street.
func validateWithNext(vocab action.Vocabulary, data ValidateData) (ValidateResultData, bool) {
	street, ok := action.StreetFromString(data.Street)
	if !ok {
		return ValidateResultData{}, false
	}

	result := action.ValidateSequence(data.Prior, data.Action, street, vocab)
	resp := ValidateResultData{
		Valid:   result.Valid,
		Error:   result.Error,
		Warning: result.Warning,
	}
	prior := data.Prior
	if result.Valid {
		prior = append(append([]string{}, prior...), data.Action)
	}
	resp.ValidNext = action.ValidNextActions(prior, street, vocab)
	return resp, true
}

type ActionListData struct {
	Street  string   `json:"street"`
	Actions []string `json:"actions"`
}

// ClassifyResultData carries per-seat pattern labels: preflop keyed by
// seat, postflop keyed by street then seat.
type ClassifyResultData struct {
	Preflop  map[int][]string            `json:"preflop"`
	Postflop map[string]map[int][]string `json:"postflop"`
	PFRSeat  int                         `json:"pfrSeat,omitempty"`
}

type ErrorData struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
