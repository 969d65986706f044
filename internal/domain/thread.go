package domain

import (
	"context"
	"sort"
	"strings"
	"time"
)

// ThreadKeySeparator joins the two participant ids of a direct-message thread.
const ThreadKeySeparator = "_"

// MaxMessageLength bounds the text of a single message, in runes.
const MaxMessageLength = 2000

// ThreadKey returns the canonical key for the conversation between two users. It is the
// same regardless of which user starts the conversation.
func ThreadKey(userA, userB string) string {
	ids := []string{userA, userB}
	sort.Strings(ids)
	return strings.Join(ids, ThreadKeySeparator)
}

// Thread is a two-party conversation.
// swagger:model Thread
type Thread struct {
	Key           string    `json:"key"`
	Participants  []string  `json:"participants"`
	LastMessage   string    `json:"last_message"`
	LastMessageAt time.Time `json:"last_message_at"`
	CreatedAt     time.Time `json:"created_at"`
}

// HasParticipant reports whether userID is one of the thread's two participants.
func (t *Thread) HasParticipant(userID string) bool {
	for _, p := range t.Participants {
		if p == userID {
			return true
		}
	}
	return false
}

// Message is a single text message in a thread.
// swagger:model Message
type Message struct {
	ID        string    `json:"id"`
	ThreadKey string    `json:"thread_key"`
	SenderID  string    `json:"sender_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// ThreadRepository defines storage for threads and their messages.
type ThreadRepository interface {
	// Ensure creates the thread if it does not exist and returns the stored thread.
	Ensure(ctx context.Context, thread *Thread) (*Thread, error)
	GetByKey(ctx context.Context, key string) (*Thread, error)
	ListByUserID(ctx context.Context, userID string) ([]*Thread, error)
	AddMessage(ctx context.Context, msg *Message) error
	ListMessages(ctx context.Context, key string, params PaginationParams) ([]*Message, int, error)
}

// MessagingService defines attendee-to-attendee messaging.
type MessagingService interface {
	OpenThread(ctx context.Context, userID, otherUserID string) (*Thread, error)
	ListThreads(ctx context.Context, userID string) ([]*Thread, error)
	SendMessage(ctx context.Context, threadKey, senderID, text string) (*Message, error)
	ListMessages(ctx context.Context, threadKey, userID string, params PaginationParams) ([]*Message, int, error)
}
