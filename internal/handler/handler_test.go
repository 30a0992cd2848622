package handler

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ai-universe/assistant-platform/internal/assistant"
	"github.com/ai-universe/assistant-platform/internal/auth"
	"github.com/ai-universe/assistant-platform/internal/service"
	"github.com/ai-universe/assistant-platform/internal/store"
	"github.com/ai-universe/assistant-platform/pkg/logger"
)

type fakeClient struct {
	reply string
	err   error
}

func (f *fakeClient) Complete(ctx context.Context, cfg assistant.Config, userMessage string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func (f *fakeClient) Name() string { return "fake" }

func newTestServer(t *testing.T) (*httptest.Server, *store.DB) {
	t.Helper()

	db, err := store.Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	log, err := logger.New("error")
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}

	registry := assistant.Default()
	chatSvc := service.NewChatService(db, &fakeClient{reply: "pong"}, log)

	router := Router(Handlers{
		Chat:       NewChatHandler(registry, chatSvc, log),
		Chats:      NewChatsHandler(db, log),
		Stats:      NewStatsHandler(db, log),
		Auth:       NewAuthHandler(db, auth.NewVerifier("", log), log),
		Assistants: NewAssistantsHandler(registry),
		Health:     NewHealthHandler(db),
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv, db
}

func doRequest(t *testing.T, srv *httptest.Server, method, path, body string) (int, string) {
	t.Helper()

	req, err := http.NewRequest(method, srv.URL+path, strings.NewReader(body))
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	resp, err := srv.Client().Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, string(b)
}

// envelope splits a status|payload|context body. The payload itself may
// contain pipes, so only the first and last separators count.
func envelope(t *testing.T, body string) (status, payload, context string) {
	t.Helper()

	first := strings.Index(body, "|")
	last := strings.LastIndex(body, "|")
	if first < 0 || last <= first {
		t.Fatalf("malformed envelope: %q", body)
	}
	return body[:first], body[first+1 : last], body[last+1:]
}
