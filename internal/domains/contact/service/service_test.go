package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"qbrain-backend/internal/domains/contact/model"
	"qbrain-backend/internal/domains/contact/repository"
	"qbrain-backend/internal/shared/mocks"
	"qbrain-backend/internal/shared/testutil"
)

func setup(t *testing.T) (ServiceInterface, *mocks.MockSender) {
	sender := &mocks.MockSender{}
	svc := NewContactService(repository.NewContactRepository(testutil.NewStore(t)), testutil.Composer(t), sender)
	return svc, sender
}

func validRequest() model.ContactRequest {
	return model.ContactRequest{
		Name:    "Meera",
		Email:   "meera@example.com",
		Subject: "Workshop collaboration",
		Message: "Would you run an IoT workshop at our college?",
	}
}

func TestSubmit_ExactlyTwoEmails(t *testing.T) {
	svc, sender := setup(t)
	sender.On("Send", mock.Anything, mock.Anything).Return(nil)

	result, err := svc.Submit(context.Background(), validRequest())
	require.NoError(t, err)
	assert.True(t, result.EmailSent)
	assert.NotEmpty(t, result.ID)

	sender.AssertNumberOfCalls(t, "Send", 2)
	require.Len(t, sender.Sent, 2)

	admin, reply := sender.Sent[0], sender.Sent[1]
	assert.Equal(t, []string{testutil.AdminEmail}, admin.To)
	assert.Equal(t, "meera@example.com", admin.ReplyTo)
	assert.Equal(t, "New Contact Message: Workshop collaboration", admin.Subject)
	assert.Equal(t, []string{"meera@example.com"}, reply.To)
	assert.Equal(t, "Thank you for contacting Qbrain", reply.Subject)
}

func TestSubmit_EmailFailureStillSaved(t *testing.T) {
	svc, sender := setup(t)
	sender.On("Send", mock.Anything, mock.Anything).Return(errors.New("dial tcp: connection refused"))

	result, err := svc.Submit(context.Background(), validRequest())
	require.NoError(t, err)
	assert.False(t, result.EmailSent)

	msgs, err := svc.List(context.Background(), model.StatusUnread)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, result.ID, msgs[0].ID)
	sender.AssertNumberOfCalls(t, "Send", 2)
}

func TestStatusLifecycle(t *testing.T) {
	svc, sender := setup(t)
	ctx := context.Background()
	sender.On("Send", mock.Anything, mock.Anything).Return(nil)

	before := time.Now().Add(-time.Second)
	result, err := svc.Submit(ctx, validRequest())
	require.NoError(t, err)

	msg, err := svc.UpdateStatus(ctx, result.ID, model.StatusReplied)
	require.NoError(t, err)
	assert.Equal(t, model.StatusReplied, msg.Status)

	unread, err := svc.Count(ctx, model.StatusUnread)
	require.NoError(t, err)
	assert.Zero(t, unread)

	recent, err := svc.ListSince(ctx, before)
	require.NoError(t, err)
	assert.Len(t, recent, 1)

	_, err = svc.UpdateStatus(ctx, result.ID, "spam")
	assert.ErrorIs(t, err, model.ErrInvalidStatus)

	require.NoError(t, svc.Delete(ctx, result.ID))
	assert.ErrorIs(t, svc.Delete(ctx, result.ID), model.ErrMessageNotFound)
}

func TestRequestValidation(t *testing.T) {
	assert.NoError(t, validRequest().Validate())

	// chỉ kiểm tra format, không lookup DNS của domain
	offline := validRequest()
	offline.Email = "meera@qbrain.invalid"
	assert.NoError(t, offline.Validate())

	for name, mutate := range map[string]func(*model.ContactRequest){
		"name":    func(r *model.ContactRequest) { r.Name = "" },
		"email":   func(r *model.ContactRequest) { r.Email = "meera-at-example" },
		"subject": func(r *model.ContactRequest) { r.Subject = "" },
		"message": func(r *model.ContactRequest) { r.Message = "" },
	} {
		req := validRequest()
		mutate(&req)
		assert.Error(t, req.Validate(), name)
	}
}
