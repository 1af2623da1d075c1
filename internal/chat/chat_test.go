package chat

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/nuxtvisa/visa-portal/internal/content"
	"github.com/nuxtvisa/visa-portal/internal/dependency/mocks"
	"github.com/nuxtvisa/visa-portal/internal/entity"
	"github.com/nuxtvisa/visa-portal/internal/realtime"
	"github.com/nuxtvisa/visa-portal/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newMessage(id, name, text string, admin bool) *entity.SupportMessage {
	return &entity.SupportMessage{
		Id:        id,
		CreatedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
		SupportMessageInsert: entity.SupportMessageInsert{
			UserName:     name,
			Message:      text,
			IsAdminReply: admin,
		},
	}
}

func newService(t *testing.T) (*Service, *mocks.Messages, *realtime.Memory) {
	repo := mocks.NewRepository(t)
	msgs := mocks.NewMessages(t)
	repo.EXPECT().Messages().Return(msgs).Maybe()

	broker := realtime.NewMemory(16)
	t.Cleanup(func() { broker.Close() })
	return New(repo, broker), msgs, broker
}

func TestSendPublishesAfterInsert(t *testing.T) {
	ctx := context.Background()
	svc, msgs, _ := newService(t)

	stored := newMessage("m1", "Omar", "hello", false)
	msgs.EXPECT().AddMessage(mock.Anything, &entity.SupportMessageInsert{
		UserName: "Omar",
		Message:  "hello",
	}).Return(stored, nil).Once()

	got := make(chan entity.SupportMessage, 1)
	sub, err := svc.Subscribe(ctx, func(m entity.SupportMessage) { got <- m })
	require.NoError(t, err)
	defer sub.Close()

	var sent []string
	svc.OnSend(func(m *entity.SupportMessage) { sent = append(sent, m.Id) })

	m, err := svc.Send(ctx, "Omar", "hello", false)
	require.NoError(t, err)
	assert.Equal(t, "m1", m.Id)
	assert.Equal(t, []string{"m1"}, sent)

	select {
	case ev := <-got:
		assert.Equal(t, "m1", ev.Id)
		assert.Equal(t, "hello", ev.Message)
		assert.False(t, ev.IsAdminReply)
	case <-time.After(2 * time.Second):
		t.Fatal("insert event not delivered")
	}
}

func TestSendStoreFailureIsNotPublished(t *testing.T) {
	ctx := context.Background()
	svc, msgs, _ := newService(t)

	msgs.EXPECT().AddMessage(mock.Anything, mock.Anything).Return(nil, errors.New("db down")).Once()

	got := make(chan entity.SupportMessage, 1)
	sub, err := svc.Subscribe(ctx, func(m entity.SupportMessage) { got <- m })
	require.NoError(t, err)
	defer sub.Close()

	_, err = svc.Send(ctx, "Omar", "hello", false)
	require.Error(t, err)

	select {
	case <-got:
		t.Fatal("failed insert was published")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHistoryKeepsStoreOrder(t *testing.T) {
	svc, msgs, _ := newService(t)
	msgs.EXPECT().GetMessages(mock.Anything).Return([]entity.SupportMessage{
		*newMessage("m1", "Omar", "first", false),
		*newMessage("m2", "Support", "second", true),
	}, nil).Once()

	h, err := svc.History(context.Background())
	require.NoError(t, err)
	require.Len(t, h, 2)
	assert.Equal(t, "m1", h[0].Id)
	assert.Equal(t, "m2", h[1].Id)
}

type socketEnv struct {
	hub  *Hub
	msgs *mocks.Messages
	srv  *httptest.Server
	peer Peer
	mu   sync.Mutex
}

func newSocketEnv(t *testing.T, peer Peer) *socketEnv {
	svc, msgs, _ := newService(t)
	cs, err := content.New(&content.Config{WhatsAppNumber: "966500000000"})
	require.NoError(t, err)

	env := &socketEnv{msgs: msgs, peer: peer}
	env.hub = NewHub(svc, cs, func(*http.Request) bool { return true }, nil)
	env.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		env.hub.Serve(w, r, env.peer)
	}))
	t.Cleanup(func() {
		env.hub.Close()
		env.srv.Close()
	})
	return env
}

func (env *socketEnv) dial(t *testing.T) *websocket.Conn {
	url := "ws" + strings.TrimPrefix(env.srv.URL, "http")
	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { ws.Close() })
	return ws
}

func readFrame(t *testing.T, ws *websocket.Conn) *Frame {
	t.Helper()
	ws.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, b, err := ws.ReadMessage()
	require.NoError(t, err)
	f := &Frame{}
	require.NoError(t, json.Unmarshal(b, f))
	return f
}

func TestSocketHistoryThenLive(t *testing.T) {
	env := newSocketEnv(t, Peer{Name: "Omar"})

	env.msgs.EXPECT().GetMessages(mock.Anything).Return([]entity.SupportMessage{
		*newMessage("m1", "Support", "welcome", true),
	}, nil).Once()
	env.msgs.EXPECT().AddMessage(mock.Anything, &entity.SupportMessageInsert{
		UserName: "Omar",
		Message:  "hello",
	}).Return(newMessage("m2", "Omar", "hello", false), nil).Once()

	ws := env.dial(t)

	f := readFrame(t, ws)
	assert.Equal(t, FrameHistory, f.Type)
	require.Len(t, f.Messages, 1)
	assert.Equal(t, "m1", f.Messages[0].Id)

	require.NoError(t, ws.WriteJSON(map[string]string{"message": "  hello "}))

	f = readFrame(t, ws)
	assert.Equal(t, FrameMessage, f.Type)
	require.NotNil(t, f.Message)
	assert.Equal(t, "m2", f.Message.Id)
	assert.False(t, f.Message.IsAdminReply)
}

func TestSocketEmptyHistory(t *testing.T) {
	env := newSocketEnv(t, Peer{Name: "Omar"})
	env.msgs.EXPECT().GetMessages(mock.Anything).Return(nil, nil).Once()

	ws := env.dial(t)
	f := readFrame(t, ws)
	assert.Equal(t, FrameHistory, f.Type)
	assert.Empty(t, f.Messages)
}

func TestSocketRejectsEmptyMessage(t *testing.T) {
	env := newSocketEnv(t, Peer{Name: "Omar"})
	env.msgs.EXPECT().GetMessages(mock.Anything).Return([]entity.SupportMessage{}, nil).Once()

	ws := env.dial(t)
	readFrame(t, ws)

	require.NoError(t, ws.WriteJSON(map[string]string{"message": "   "}))
	f := readFrame(t, ws)
	assert.Equal(t, FrameError, f.Type)
	assert.NotEmpty(t, f.Error)

	require.NoError(t, ws.WriteMessage(websocket.TextMessage, []byte("{not json")))
	f = readFrame(t, ws)
	assert.Equal(t, FrameError, f.Type)
}

func TestSocketClosedOnSignOut(t *testing.T) {
	env := newSocketEnv(t, Peer{Name: "Admin", Admin: true, SessionId: "s1"})
	env.msgs.EXPECT().GetMessages(mock.Anything).Return([]entity.SupportMessage{}, nil).Once()

	sm := session.NewManager()
	unsubscribe := env.hub.WatchSessions(sm)
	defer unsubscribe()

	ws := env.dial(t)
	readFrame(t, ws)
	require.Eventually(t, func() bool { return env.hub.Connections() == 1 }, 2*time.Second, 10*time.Millisecond)

	sm.Publish(session.Change{State: session.Anonymous, SessionId: "other"})
	assert.Equal(t, 1, env.hub.Connections())

	sm.Publish(session.Change{State: session.Anonymous, SessionId: "s1"})

	ws.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, _, err := ws.ReadMessage()
	require.Error(t, err)
	require.Eventually(t, func() bool { return env.hub.Connections() == 0 }, 2*time.Second, 10*time.Millisecond)
}
