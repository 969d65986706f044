package domain

import (
	"context"
	"time"
)

// ConnectionStatus is the state of a connection request.
type ConnectionStatus string

const (
	ConnectionPending  ConnectionStatus = "pending"
	ConnectionAccepted ConnectionStatus = "accepted"
)

// Connection links two participants. The sender asked; the receiver accepts.
// swagger:model Connection
type Connection struct {
	SenderID   string           `json:"sender_id"`
	ReceiverID string           `json:"receiver_id"`
	Status     ConnectionStatus `json:"status"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

// Other returns the participant on the far side of the connection from userID.
func (c *Connection) Other(userID string) string {
	if c.SenderID == userID {
		return c.ReceiverID
	}
	return c.SenderID
}

// ConnectionRepository stores connection requests keyed by (sender, receiver).
type ConnectionRepository interface {
	// Get returns the request sent by senderID to receiverID, or ErrNotFound.
	Get(ctx context.Context, senderID, receiverID string) (*Connection, error)
	// Create stores a new request. ErrConflict if one already exists for the pair and direction.
	Create(ctx context.Context, conn *Connection) error
	// Accept marks a pending request accepted. ErrNotFound if there is no pending request.
	Accept(ctx context.Context, senderID, receiverID string, at time.Time) (*Connection, error)
	// ListAccepted returns accepted connections in either direction involving userID.
	ListAccepted(ctx context.Context, userID string) ([]*Connection, error)
	// ListPending returns pending requests addressed to receiverID, oldest first.
	ListPending(ctx context.Context, receiverID string) ([]*Connection, error)
}

// NetworkingService covers participant profiles, the directory and connections.
type NetworkingService interface {
	GetProfile(ctx context.Context, userID string) (*Profile, error)
	// UpdateProfile creates or replaces the caller's own profile.
	UpdateProfile(ctx context.Context, userID string, profile *Profile) (*Profile, error)
	// ListParticipants pages through other participants' profiles.
	ListParticipants(ctx context.Context, userID string, filter ParticipantFilter, params PaginationParams) ([]*Profile, int, error)
	// RequestConnection asks receiverID to connect. Repeating a request returns the existing
	// one; answering a pending request from the other side accepts it.
	RequestConnection(ctx context.Context, senderID, receiverID string) (*Connection, error)
	// AcceptConnection accepts the pending request senderID sent to receiverID.
	AcceptConnection(ctx context.Context, receiverID, senderID string) (*Connection, error)
	ListConnections(ctx context.Context, userID string) ([]*Connection, error)
	ListPendingRequests(ctx context.Context, userID string) ([]*Connection, error)
}
