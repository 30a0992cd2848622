package model

import (
	"time"
)

// Conversation is a titled thread between one user and one assistant.
type Conversation struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	AIType    string    `json:"ai_type"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Message is one full round-trip: the user's text and the assistant
// response it produced, stored as a single record.
type Message struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversation_id"`
	UserID         string    `json:"user_id"`
	Content        string    `json:"content"`
	AIResponse     string    `json:"ai_response"`
	CreatedAt      time.Time `json:"created_at"`
}

// UsageStat is the per-(user, assistant) round-trip counter.
type UsageStat struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	AIType     string    `json:"ai_type"`
	UsageCount int       `json:"usage_count"`
	LastUsed   time.Time `json:"last_used"`
}

// UserStats is the aggregate view returned by the stats endpoint.
type UserStats struct {
	TotalMessages      int
	TotalConversations int
	MostUsedAIType     string
	PerAssistant       []UsageStat
}
