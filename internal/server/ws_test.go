package server

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dialWS(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func sendWS(t *testing.T, conn *websocket.Conn, msgType MessageType, requestID string, data interface{}) {
	t.Helper()
	msg, err := NewMessage(msgType, data)
	require.NoError(t, err)
	msg.RequestID = requestID
	require.NoError(t, conn.WriteJSON(msg))
}

func readWS(t *testing.T, conn *websocket.Conn) *Message {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	var msg Message
	require.NoError(t, conn.ReadJSON(&msg))
	return &msg
}

func TestWebSocket_Validate(t *testing.T) {
	_, ts := newTestServer(t)
	conn := dialWS(t, ts)

	sendWS(t, conn, MessageTypeValidate, "req-1", ValidateData{
		Prior: []string{"check"}, Action: "check_raise", Street: "flop",
	})
	msg := readWS(t, conn)
	require.Equal(t, MessageTypeValidateResult, msg.Type)
	assert.Equal(t, "req-1", msg.RequestID)

	var result ValidateResultData
	require.NoError(t, json.Unmarshal(msg.Data, &result))
	assert.True(t, result.Valid)
	assert.Contains(t, result.ValidNext, "fold")
	assert.NotContains(t, result.ValidNext, "check_raise", "check-raise needs a check directly before it")
}

func TestWebSocket_ValidActions(t *testing.T) {
	_, ts := newTestServer(t)
	conn := dialWS(t, ts)

	sendWS(t, conn, MessageTypeValidActions, "req-2", ValidActionsData{
		Prior: []string{"bet"}, Street: "flop",
	})
	msg := readWS(t, conn)
	require.Equal(t, MessageTypeActionList, msg.Type)

	var result ActionListData
	require.NoError(t, json.Unmarshal(msg.Data, &result))
	assert.NotContains(t, result.Actions, "check", "cannot check after betting")
	assert.Contains(t, result.Actions, "fold")
}

func TestWebSocket_UnknownType(t *testing.T) {
	_, ts := newTestServer(t)
	conn := dialWS(t, ts)

	sendWS(t, conn, MessageType("bogus"), "req-3", nil)
	msg := readWS(t, conn)
	require.Equal(t, MessageTypeError, msg.Type)

	var result ErrorData
	require.NoError(t, json.Unmarshal(msg.Data, &result))
	assert.Equal(t, "unknown_message_type", result.Code)
}
