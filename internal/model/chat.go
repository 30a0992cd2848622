package model

// ChatRequest is the body of a chat round-trip request.
type ChatRequest struct {
	Message        string `json:"message"`
	UserID         string `json:"user_id"`
	ConversationID string `json:"conversation_id,omitempty"`
}

// ChatResult is the outcome of one chat round-trip. Degraded marks a
// canned reply produced after an upstream failure; PersistWarning marks
// a reply that was returned but could not be stored.
type ChatResult struct {
	Reply          string
	ConversationID string
	Degraded       bool
	PersistWarning bool
}

// UpsertChatRequest is the body of the create-or-update chat endpoints.
// ID is only honored when the URL does not already carry one.
type UpsertChatRequest struct {
	ID     string `json:"id,omitempty"`
	Title  string `json:"title"`
	UserID string `json:"user_id"`
	AIType string `json:"ai_type"`
}
