package store

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestUpsertUser(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	u1, err := db.UpsertUser(ctx, "a@example.com", "Alice", "http://pic/a")
	if err != nil {
		t.Fatal(err)
	}
	if u1.ID == "" || u1.Email != "a@example.com" || u1.Name != "Alice" {
		t.Errorf("user: %+v", u1)
	}

	u2, err := db.UpsertUser(ctx, "a@example.com", "Alice Renamed", "http://pic/b")
	if err != nil {
		t.Fatal(err)
	}
	if u2.ID != u1.ID {
		t.Errorf("upsert changed id: %s -> %s", u1.ID, u2.ID)
	}
	if u2.Name != "Alice Renamed" || u2.Picture != "http://pic/b" {
		t.Errorf("mutable fields not refreshed: %+v", u2)
	}
	if !u2.CreatedAt.Equal(u1.CreatedAt) {
		t.Errorf("created_at changed on upsert: %v -> %v", u1.CreatedAt, u2.CreatedAt)
	}
}

func TestStartOrGetConversationIdempotent(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	id1, err := db.StartOrGetConversation(ctx, "client-id-1", "u1", "chat", "Hello")
	if err != nil {
		t.Fatal(err)
	}
	if id1 != "client-id-1" {
		t.Errorf("expected client-supplied id, got %s", id1)
	}

	id2, err := db.StartOrGetConversation(ctx, "client-id-1", "u1", "chat", "different seed")
	if err != nil {
		t.Fatal(err)
	}
	if id2 != id1 {
		t.Errorf("second call returned %s, want %s", id2, id1)
	}

	convs, err := db.ListConversations(ctx, "u1")
	if err != nil {
		t.Fatal(err)
	}
	if len(convs) != 1 {
		t.Errorf("expected 1 conversation row, got %d", len(convs))
	}
	if convs[0].Title != "Hello" {
		t.Errorf("title rewritten on second call: %q", convs[0].Title)
	}
}

func TestStartOrGetConversationGeneratesID(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	id, err := db.StartOrGetConversation(ctx, "", "u1", "chat", "Hi")
	if err != nil {
		t.Fatal(err)
	}
	if id == "" {
		t.Fatal("expected generated id")
	}

	conv, err := db.GetConversation(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if conv.AIType != "chat" || conv.UserID != "u1" {
		t.Errorf("conversation: %+v", conv)
	}
	if conv.UpdatedAt.Before(conv.CreatedAt) {
		t.Errorf("updated_at %v before created_at %v", conv.UpdatedAt, conv.CreatedAt)
	}
}

func TestTitleTruncation(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	long := strings.Repeat("x", 80)
	id, err := db.StartOrGetConversation(ctx, "", "u1", "chat", long)
	if err != nil {
		t.Fatal(err)
	}
	conv, err := db.GetConversation(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	want := strings.Repeat("x", 50) + "..."
	if conv.Title != want {
		t.Errorf("title = %q, want %q", conv.Title, want)
	}

	short, err := db.StartOrGetConversation(ctx, "", "u1", "chat", "short title")
	if err != nil {
		t.Fatal(err)
	}
	conv, err = db.GetConversation(ctx, short)
	if err != nil {
		t.Fatal(err)
	}
	if conv.Title != "short title" {
		t.Errorf("short title mangled: %q", conv.Title)
	}
}

func TestAppendMessage(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	id, err := db.StartOrGetConversation(ctx, "", "u1", "chat", "Hello")
	if err != nil {
		t.Fatal(err)
	}
	before, err := db.GetConversation(ctx, id)
	if err != nil {
		t.Fatal(err)
	}

	msg, err := db.AppendMessage(ctx, id, "u1", "Hello", "Hi there")
	if err != nil {
		t.Fatal(err)
	}
	if msg.ID == "" || msg.ConversationID != id {
		t.Errorf("message: %+v", msg)
	}

	after, err := db.GetConversation(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if !after.UpdatedAt.After(before.UpdatedAt) {
		t.Errorf("updated_at not bumped: %v -> %v", before.UpdatedAt, after.UpdatedAt)
	}

	msgs, err := db.GetMessages(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if len(msgs) != 1 || msgs[0].Content != "Hello" || msgs[0].AIResponse != "Hi there" {
		t.Errorf("messages: %+v", msgs)
	}
}

func TestAppendMessageUnknownConversation(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	_, err := db.AppendMessage(ctx, "nope", "u1", "Hello", "Hi")
	if !errors.Is(err, ErrConversationNotFound) {
		t.Errorf("err = %v, want ErrConversationNotFound", err)
	}
}

func TestMessagesOrderedAscending(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	id, _ := db.StartOrGetConversation(ctx, "", "u1", "chat", "ordering")
	for _, text := range []string{"first", "second", "third"} {
		if _, err := db.AppendMessage(ctx, id, "u1", text, "re: "+text); err != nil {
			t.Fatal(err)
		}
	}

	msgs, err := db.GetMessages(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if len(msgs) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(msgs))
	}
	for i, want := range []string{"first", "second", "third"} {
		if msgs[i].Content != want {
			t.Errorf("msgs[%d] = %q, want %q", i, msgs[i].Content, want)
		}
	}
}

func TestListConversationsNewestFirst(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	oldest, _ := db.StartOrGetConversation(ctx, "", "u1", "chat", "oldest")
	middle, _ := db.StartOrGetConversation(ctx, "", "u1", "tibbiy", "middle")
	newest, _ := db.StartOrGetConversation(ctx, "", "u1", "sport", "newest")

	convs, err := db.ListConversations(ctx, "u1")
	if err != nil {
		t.Fatal(err)
	}
	if len(convs) != 3 || convs[0].ID != newest || convs[1].ID != middle || convs[2].ID != oldest {
		t.Fatalf("unexpected order: %+v", convs)
	}

	// Appending to the oldest conversation moves it to the front.
	if _, err := db.AppendMessage(ctx, oldest, "u1", "bump", "ok"); err != nil {
		t.Fatal(err)
	}
	convs, err = db.ListConversations(ctx, "u1")
	if err != nil {
		t.Fatal(err)
	}
	if convs[0].ID != oldest {
		t.Errorf("expected %s first after append, got %s", oldest, convs[0].ID)
	}
}

func TestDeleteConversationCascades(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	id, _ := db.StartOrGetConversation(ctx, "", "u1", "chat", "doomed")
	db.AppendMessage(ctx, id, "u1", "one", "1")
	db.AppendMessage(ctx, id, "u1", "two", "2")

	if err := db.DeleteConversation(ctx, id, "u1"); err != nil {
		t.Fatal(err)
	}

	if _, err := db.GetConversation(ctx, id); !errors.Is(err, ErrConversationNotFound) {
		t.Errorf("conversation still present: %v", err)
	}
	n, err := db.CountMessages(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Errorf("expected 0 messages after cascade, got %d", n)
	}
}

func TestDeleteConversationForbidden(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	id, _ := db.StartOrGetConversation(ctx, "", "u1", "chat", "mine")
	db.AppendMessage(ctx, id, "u1", "hello", "hi")

	err := db.DeleteConversation(ctx, id, "u2")
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("err = %v, want ErrForbidden", err)
	}

	// Nothing was removed.
	if _, err := db.GetConversation(ctx, id); err != nil {
		t.Errorf("conversation gone after forbidden delete: %v", err)
	}
	if n, _ := db.CountMessages(ctx, id); n != 1 {
		t.Errorf("messages gone after forbidden delete: %d", n)
	}
}

func TestDeleteConversationEmptyUser(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	id, _ := db.StartOrGetConversation(ctx, "", "u1", "chat", "mine")
	db.AppendMessage(ctx, id, "u1", "hello", "hi")

	// An empty user id is never the owner.
	if err := db.DeleteConversation(ctx, id, ""); !errors.Is(err, ErrForbidden) {
		t.Fatalf("err = %v, want ErrForbidden", err)
	}

	if _, err := db.GetConversation(ctx, id); err != nil {
		t.Errorf("conversation gone after forbidden delete: %v", err)
	}
	if n, _ := db.CountMessages(ctx, id); n != 1 {
		t.Errorf("messages gone after forbidden delete: %d", n)
	}
}

func TestDeleteConversationUnknown(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	if err := db.DeleteConversation(ctx, "missing", "u1"); !errors.Is(err, ErrConversationNotFound) {
		t.Errorf("err = %v, want ErrConversationNotFound", err)
	}
}

func TestDeleteAllConversations(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	a, _ := db.StartOrGetConversation(ctx, "", "u1", "chat", "a")
	b, _ := db.StartOrGetConversation(ctx, "", "u1", "sport", "b")
	keep, _ := db.StartOrGetConversation(ctx, "", "u2", "chat", "keep")
	db.AppendMessage(ctx, a, "u1", "x", "y")
	db.AppendMessage(ctx, b, "u1", "x", "y")

	n, err := db.DeleteAllConversations(ctx, "u1")
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Errorf("deleted %d conversations, want 2", n)
	}

	if convs, _ := db.ListConversations(ctx, "u1"); len(convs) != 0 {
		t.Errorf("u1 still has conversations: %+v", convs)
	}
	if _, err := db.GetConversation(ctx, keep); err != nil {
		t.Errorf("u2 conversation affected: %v", err)
	}

	if _, err := db.DeleteAllConversations(ctx, "u1"); !errors.Is(err, ErrConversationNotFound) {
		t.Errorf("second delete-all err = %v, want ErrConversationNotFound", err)
	}
}
