package shared

// Queue names (asynq)
const (
	QueueCritical = "critical"
	QueueEmail    = "email"
	QueueDefault  = "default"
)

// Task types
const (
	TypeSendEmail   = "email:send"
	TypeDailyDigest = "digest:daily"
)

// DigestPayload là payload của task digest:daily. Since rỗng = 24h gần nhất.
type DigestPayload struct {
	To    string `json:"to,omitempty"`
	Since string `json:"since,omitempty"` // RFC3339
}
