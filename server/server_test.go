package server

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"

	"github.com/brensch/trapcat/engine"
	"github.com/brensch/trapcat/game"
)

func dial(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + URIPlay
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readMsg(t *testing.T, conn *websocket.Conn) ServerMessage {
	t.Helper()
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var msg ServerMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		t.Fatalf("decode %s: %v", data, err)
	}
	return msg
}

func send(t *testing.T, conn *websocket.Conn, msg ClientMessage) {
	t.Helper()
	b, err := json.Marshal(msg)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if err := conn.WriteMessage(websocket.TextMessage, b); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func freeCell(snap *engine.Snapshot) game.Hex {
	for _, h := range game.NewBoard(snap.Depth).Cells() {
		if h != snap.Cat && !snap.IsObstacle(h) {
			return h
		}
	}
	return game.Hex{}
}

func TestPlay_SessionFlow(t *testing.T) {
	ts := httptest.NewServer(New(engine.DefaultConfig()))
	defer ts.Close()
	conn := dial(t, ts)

	hello := readMsg(t, conn)
	if hello.Type != TypeState || hello.Session == "" || hello.State == nil {
		t.Fatalf("hello=%+v", hello)
	}
	if hello.State.Depth != 7 || hello.State.Status != game.Playing || hello.State.Variant.ID != "kitten" {
		t.Fatalf("initial state %+v", hello.State)
	}

	cell := freeCell(hello.State)
	send(t, conn, ClientMessage{Type: "click", Q: cell.Q, R: cell.R})
	after := readMsg(t, conn)
	if after.Session != hello.Session || after.State == nil || after.State.Turn != 1 {
		t.Fatalf("click reply %+v", after)
	}

	send(t, conn, ClientMessage{Type: "difficulty"})
	if got := readMsg(t, conn); got.State == nil || got.State.Depth != 6 || got.State.Turn != 0 {
		t.Fatalf("difficulty reply %+v", got)
	}

	send(t, conn, ClientMessage{Type: "variant"})
	if got := readMsg(t, conn); got.State == nil || got.State.Variant.ID != "red" {
		t.Fatalf("variant reply %+v", got)
	}

	send(t, conn, ClientMessage{Type: "nap"})
	bad := readMsg(t, conn)
	if bad.Type != TypeError || !strings.Contains(bad.Error, "unknown message") {
		t.Fatalf("bad message reply %+v", bad)
	}

	if err := conn.WriteMessage(websocket.TextMessage, []byte("{not json")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got := readMsg(t, conn); got.Type != TypeError {
		t.Fatalf("malformed reply %+v", got)
	}

	// the session survives bad input
	send(t, conn, ClientMessage{Type: "reset"})
	if got := readMsg(t, conn); got.Type != TypeState {
		t.Fatalf("reset reply %+v", got)
	}
}

func TestPlay_SeparateSessions(t *testing.T) {
	ts := httptest.NewServer(New(engine.DefaultConfig()))
	defer ts.Close()

	a := readMsg(t, dial(t, ts))
	b := readMsg(t, dial(t, ts))
	if a.Session == b.Session {
		t.Fatalf("sessions share id %s", a.Session)
	}
}

func dialOrigin(ts *httptest.Server, origin string) (*websocket.Conn, *http.Response, error) {
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + URIPlay
	return websocket.DefaultDialer.Dial(url, http.Header{"Origin": []string{origin}})
}

func TestPlay_AnyOriginByDefault(t *testing.T) {
	ts := httptest.NewServer(New(engine.DefaultConfig()))
	defer ts.Close()

	conn, _, err := dialOrigin(ts, "http://renderer.example")
	if err != nil {
		t.Fatalf("cross-origin dial: %v", err)
	}
	defer conn.Close()
	if got := readMsg(t, conn); got.Type != TypeState {
		t.Fatalf("hello=%+v", got)
	}
}

func TestPlay_AllowedOrigins(t *testing.T) {
	ts := httptest.NewServer(New(engine.DefaultConfig(), WithAllowedOrigins("http://renderer.example")))
	defer ts.Close()

	conn, _, err := dialOrigin(ts, "http://renderer.example")
	if err != nil {
		t.Fatalf("allowed origin: %v", err)
	}
	conn.Close()

	_, resp, err := dialOrigin(ts, "http://elsewhere.example")
	if !errors.Is(err, websocket.ErrBadHandshake) {
		t.Fatalf("other origin should be refused, got %v", err)
	}
	if resp == nil || resp.StatusCode != http.StatusForbidden {
		t.Fatalf("resp=%v", resp)
	}
}

func TestPlay_OversizedMessageEndsSession(t *testing.T) {
	ts := httptest.NewServer(New(engine.DefaultConfig()))
	defer ts.Close()
	conn := dial(t, ts)
	readMsg(t, conn)

	big := `{"type":"click","pad":"` + strings.Repeat("x", 4*readLimit) + `"}`
	if err := conn.WriteMessage(websocket.TextMessage, []byte(big)); err != nil {
		t.Fatalf("write: %v", err)
	}
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	if _, data, err := conn.ReadMessage(); err == nil {
		t.Fatalf("session kept going after an oversized message: %s", data)
	}
}

func TestHealth(t *testing.T) {
	ts := httptest.NewServer(New(engine.DefaultConfig()))
	defer ts.Close()

	resp, err := http.Get(ts.URL + URIHealth)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status %d", resp.StatusCode)
	}
	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["status"] != "ok" {
		t.Fatalf("body=%v", body)
	}
}

func TestClientMessage_Event(t *testing.T) {
	ev, err := ClientMessage{Type: "click", Q: 2, R: -1}.Event()
	if err != nil || ev.Kind != engine.CellClicked || ev.Cell != (game.Hex{Q: 2, R: -1}) {
		t.Fatalf("ev=%+v err=%v", ev, err)
	}
	if _, err := (ClientMessage{Type: "jump"}).Event(); !errors.Is(err, ErrUnknownMessage) {
		t.Fatalf("err=%v", err)
	}
}
