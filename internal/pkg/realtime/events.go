package realtime

// Event names pushed over the realtime channel
const (
	EventConnected          = "connected"
	EventPing               = "ping"
	EventAttendanceCheckIn  = "attendance:checkin"
	EventAttendanceCheckOut = "attendance:checkout"
	EventLeaveNew           = "leave:new"
	EventLeaveStatus        = "leave:status"
	EventNotificationNew    = "notification:new"
	EventUserTyping         = "user:typing"
)

// Event is a named payload delivered to a live connection
type Event struct {
	Name    string      `json:"event"`
	Payload interface{} `json:"payload"`
}
