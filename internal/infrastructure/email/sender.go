package email

import (
	"context"
	"errors"
)

var (
	ErrNoRecipient = errors.New("email has no recipient")
	ErrNoAdmin     = errors.New("admin email is not configured")
)

// Sender gửi một email. SMTPSender gửi trực tiếp, QueueSender đẩy vào asynq.
type Sender interface {
	Send(ctx context.Context, req EmailRequest) error
}

// SendAll gửi lần lượt từng email, không dừng khi một email lỗi.
// Trả về số email gửi thành công và lỗi đầu tiên gặp phải.
func SendAll(ctx context.Context, s Sender, reqs ...EmailRequest) (int, error) {
	sent := 0
	var firstErr error
	for _, req := range reqs {
		if err := s.Send(ctx, req); err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		sent++
	}
	return sent, firstErr
}
