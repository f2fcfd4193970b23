package email

// EmailRequest là một email đã render xong, sẵn sàng gửi
type EmailRequest struct {
	To          []string     `json:"to"`
	ReplyTo     string       `json:"replyTo,omitempty"`
	FromName    string       `json:"fromName,omitempty"` // display name, địa chỉ lấy từ MAIL_FROM
	Subject     string       `json:"subject"`
	Body        string       `json:"body"`
	IsHTML      bool         `json:"isHtml"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

type Attachment struct {
	Filename string `json:"filename"`
	Content  []byte `json:"content"`
	MimeType string `json:"mimeType"`
}

// ContactData là nội dung form liên hệ
type ContactData struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// ApplicationData là phần thông tin ứng viên hiển thị trong email
type ApplicationData struct {
	FullName      string
	Email         string
	Phone         string
	Branch        string
	Year          string
	PreferredRole string
	Motivation    string
	Experience    string
	PortfolioURL  string
	QuizScore     *int
	InterviewSlot string
}

// DigestData là tổng hợp hoạt động trong ngày gửi cho admin
type DigestData struct {
	Date                string
	NewApplications     []DigestApplication
	NewMessages         []DigestMessage
	PendingApplications int64
	UnreadMessages      int64
}

type DigestApplication struct {
	FullName      string
	Email         string
	PreferredRole string
}

type DigestMessage struct {
	Name    string
	Email   string
	Subject string
}
