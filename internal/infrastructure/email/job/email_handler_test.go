package job

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"qbrain-backend/internal/infrastructure/email"
	"qbrain-backend/internal/shared"
	"qbrain-backend/internal/shared/mocks"
)

func TestSendEmailHandler_Sends(t *testing.T) {
	sender := new(mocks.MockSender)
	sender.On("Send", mock.Anything, mock.Anything).Return(nil)
	h := NewSendEmailHandler(sender)

	payload, err := json.Marshal(email.EmailRequest{To: []string{"a@x.io"}, Subject: "Hi", Body: "b"})
	require.NoError(t, err)

	require.NoError(t, h.ProcessTask(context.Background(), asynq.NewTask(shared.TypeSendEmail, payload)))
	require.Len(t, sender.Sent, 1)
	assert.Equal(t, "Hi", sender.Sent[0].Subject)
}

func TestSendEmailHandler_BadPayloadSkipsRetry(t *testing.T) {
	h := NewSendEmailHandler(new(mocks.MockSender))

	err := h.ProcessTask(context.Background(), asynq.NewTask(shared.TypeSendEmail, []byte("{")))
	assert.ErrorIs(t, err, asynq.SkipRetry)

	err = h.ProcessTask(context.Background(), asynq.NewTask(shared.TypeSendEmail, []byte(`{"subject":"x"}`)))
	assert.ErrorIs(t, err, asynq.SkipRetry)
}

func TestSendEmailHandler_SendFailureRetries(t *testing.T) {
	sender := new(mocks.MockSender)
	sender.On("Send", mock.Anything, mock.Anything).Return(errors.New("smtp down"))
	h := NewSendEmailHandler(sender)

	payload, _ := json.Marshal(email.EmailRequest{To: []string{"a@x.io"}})
	err := h.ProcessTask(context.Background(), asynq.NewTask(shared.TypeSendEmail, payload))
	require.Error(t, err)
	assert.NotErrorIs(t, err, asynq.SkipRetry)
}
