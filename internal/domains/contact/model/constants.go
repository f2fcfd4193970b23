package model

const (
	StatusUnread   = "unread"
	StatusRead     = "read"
	StatusReplied  = "replied"
	StatusArchived = "archived"
)

var Statuses = []interface{}{StatusUnread, StatusRead, StatusReplied, StatusArchived}

func IsValidStatus(status string) bool {
	for _, s := range Statuses {
		if s == status {
			return true
		}
	}
	return false
}
