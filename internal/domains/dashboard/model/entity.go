package model

// Stats - số liệu cho trang admin
type Stats struct {
	TeamMembers         int64 `json:"teamMembers"`
	Achievements        int64 `json:"achievements"`
	Applications        int64 `json:"applications"`
	PendingApplications int64 `json:"pendingApplications"`
	Messages            int64 `json:"messages"`
	UnreadMessages      int64 `json:"unreadMessages"`
	BlogPosts           int64 `json:"blogPosts"`
	PublishedPosts      int64 `json:"publishedPosts"`
}
