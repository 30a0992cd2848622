package handler

import (
	"context"
	"net/http"
	"strings"
	"testing"
)

func TestChatByKey(t *testing.T) {
	srv, db := newTestServer(t)

	code, body := doRequest(t, srv, http.MethodPost, "/chat/chat",
		`{"message":"hello","user_id":"u1"}`)
	if code != http.StatusOK {
		t.Fatalf("status = %d, body = %q", code, body)
	}

	status, payload, convID := envelope(t, body)
	if status != "success" || payload != "pong" {
		t.Errorf("body = %q", body)
	}
	if convID == "" {
		t.Fatal("expected a conversation id in the context field")
	}

	msgs, err := db.GetMessages(context.Background(), convID)
	if err != nil {
		t.Fatalf("GetMessages: %v", err)
	}
	if len(msgs) != 1 || msgs[0].Content != "hello" {
		t.Errorf("unexpected messages: %+v", msgs)
	}
}

func TestChatByID(t *testing.T) {
	srv, _ := newTestServer(t)

	code, body := doRequest(t, srv, http.MethodPost, "/ai/7",
		`{"message":"dorilar haqida","user_id":"u1"}`)
	if code != http.StatusOK {
		t.Fatalf("status = %d, body = %q", code, body)
	}
	if !strings.HasPrefix(body, "success|pong|") {
		t.Errorf("body = %q", body)
	}
}

func TestChatByIDUnderAPIPrefix(t *testing.T) {
	srv, _ := newTestServer(t)

	code, body := doRequest(t, srv, http.MethodPost, "/api/ai/1",
		`{"message":"salom","user_id":"u1"}`)
	if code != http.StatusOK {
		t.Fatalf("status = %d, body = %q", code, body)
	}
	if !strings.HasPrefix(body, "success|pong|") {
		t.Errorf("body = %q", body)
	}
}

func TestChatUnknownKey(t *testing.T) {
	srv, _ := newTestServer(t)

	code, body := doRequest(t, srv, http.MethodPost, "/chat/nope",
		`{"message":"hi","user_id":"u1"}`)
	if code != http.StatusNotFound {
		t.Fatalf("status = %d, body = %q", code, body)
	}
	if body != "error|invalid_ai_type|AI type 'nope' not found" {
		t.Errorf("body = %q", body)
	}
}

func TestChatUnknownID(t *testing.T) {
	srv, _ := newTestServer(t)

	for _, path := range []string{"/ai/99", "/ai/abc"} {
		code, body := doRequest(t, srv, http.MethodPost, path,
			`{"message":"hi","user_id":"u1"}`)
		if code != http.StatusNotFound {
			t.Errorf("%s: status = %d, body = %q", path, code, body)
		}
		if !strings.HasPrefix(body, "error|invalid_ai_id|") {
			t.Errorf("%s: body = %q", path, body)
		}
	}
}

func TestChatValidationErrors(t *testing.T) {
	srv, _ := newTestServer(t)

	code, body := doRequest(t, srv, http.MethodPost, "/chat/chat", `{"message":"hi"}`)
	if code != http.StatusBadRequest || body != "error|missing_user_id|User ID is required" {
		t.Errorf("status = %d, body = %q", code, body)
	}

	code, body = doRequest(t, srv, http.MethodPost, "/chat/chat", `{"user_id":"u1"}`)
	if code != http.StatusBadRequest || body != "error|missing_message|Message is required" {
		t.Errorf("status = %d, body = %q", code, body)
	}

	code, body = doRequest(t, srv, http.MethodPost, "/chat/chat", "not json")
	if code != http.StatusBadRequest || !strings.HasPrefix(body, "error|invalid_body|") {
		t.Errorf("status = %d, body = %q", code, body)
	}
}

func TestChatBoundsChecks(t *testing.T) {
	srv, _ := newTestServer(t)

	huge := strings.Repeat("a", 100001)
	code, body := doRequest(t, srv, http.MethodPost, "/chat/chat",
		`{"message":"`+huge+`","user_id":"u1"}`)
	if code != http.StatusBadRequest || !strings.HasPrefix(body, "error|invalid_message|") {
		t.Errorf("oversized message: status = %d, body = %q", code, body)
	}

	longID := strings.Repeat("x", 65)
	code, body = doRequest(t, srv, http.MethodPost, "/chat/chat",
		`{"message":"hi","user_id":"`+longID+`"}`)
	if code != http.StatusBadRequest || !strings.HasPrefix(body, "error|invalid_user_id|") {
		t.Errorf("oversized user id: status = %d, body = %q", code, body)
	}
}

func TestChatContinuesExistingConversation(t *testing.T) {
	srv, _ := newTestServer(t)

	_, body := doRequest(t, srv, http.MethodPost, "/chat/chat",
		`{"message":"first","user_id":"u1"}`)
	_, _, convID := envelope(t, body)

	_, body = doRequest(t, srv, http.MethodPost, "/chat/chat",
		`{"message":"second","user_id":"u1","conversation_id":"`+convID+`"}`)
	_, _, again := envelope(t, body)
	if again != convID {
		t.Errorf("conversation id changed: %q vs %q", again, convID)
	}
}
