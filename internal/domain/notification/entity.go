package notification

import "time"

// Type categorizes a notification for the client
type Type string

const (
	TypeLeave      Type = "leave"
	TypeAttendance Type = "attendance"
	TypePayroll    Type = "payroll"
	TypeGeneral    Type = "general"
	TypeSystem     Type = "system"
)

// Notification is a fire-and-forget record addressed to one user. It is
// created by workflow side effects and mutated only by the read transition.
type Notification struct {
	ID        string
	UserID    string
	Title     string
	Message   string
	Type      Type
	IsRead    bool
	Link      *string
	CreatedAt time.Time
}
