package notification

import "time"

// CreateRequest is issued by workflow side effects, never by clients directly
type CreateRequest struct {
	UserID  string
	Title   string
	Message string
	Type    Type
	Link    *string
}

type NotificationResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	IsRead    bool      `json:"is_read"`
	Link      *string   `json:"link,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type UnreadCountResponse struct {
	UnreadCount int `json:"unread_count"`
}
