package job

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	appmodel "qbrain-backend/internal/domains/application/model"
	contactmodel "qbrain-backend/internal/domains/contact/model"
	"qbrain-backend/internal/shared"
	"qbrain-backend/internal/shared/mocks"
	"qbrain-backend/internal/shared/testutil"
)

type fakeApps struct {
	items []*appmodel.Application
	since time.Time
	err   error
}

func (f *fakeApps) ListSince(_ context.Context, since time.Time) ([]*appmodel.Application, error) {
	f.since = since
	return f.items, f.err
}

func (f *fakeApps) Count(_ context.Context, status string) (int64, error) {
	if status == appmodel.StatusPending {
		return 4, nil
	}
	return int64(len(f.items)), nil
}

type fakeMessages struct {
	items []*contactmodel.ContactMessage
}

func (f *fakeMessages) ListSince(context.Context, time.Time) ([]*contactmodel.ContactMessage, error) {
	return f.items, nil
}

func (f *fakeMessages) Count(_ context.Context, status string) (int64, error) {
	if status == contactmodel.StatusUnread {
		return 2, nil
	}
	return int64(len(f.items)), nil
}

var now = time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)

func newHandler(t *testing.T, apps *fakeApps, msgs *fakeMessages) (*DigestHandler, *mocks.MockSender) {
	sender := &mocks.MockSender{}
	sender.On("Send", mock.Anything, mock.Anything).Return(nil)
	h := NewDigestHandler(apps, msgs, testutil.Composer(t), sender)
	h.now = func() time.Time { return now }
	return h, sender
}

func task(t *testing.T, p shared.DigestPayload) *asynq.Task {
	b, err := json.Marshal(p)
	require.NoError(t, err)
	return asynq.NewTask(shared.TypeDailyDigest, b)
}

func TestDigest_SendsSummary(t *testing.T) {
	apps := &fakeApps{items: []*appmodel.Application{{
		PersonalInfo: appmodel.PersonalInfo{FullName: "A", Email: "a@x.io", PreferredRole: "IoT"},
	}}}
	msgs := &fakeMessages{items: []*contactmodel.ContactMessage{{Name: "B", Email: "b@x.io", Subject: "Hi"}}}
	h, sender := newHandler(t, apps, msgs)

	require.NoError(t, h.ProcessTask(context.Background(), task(t, shared.DigestPayload{})))

	assert.Equal(t, now.Add(-24*time.Hour), apps.since)
	require.Len(t, sender.Sent, 1)
	assert.Equal(t, []string{testutil.AdminEmail}, sender.Sent[0].To)
	assert.Equal(t, "Qbrain Daily Digest - 2025-03-01", sender.Sent[0].Subject)
	assert.Contains(t, sender.Sent[0].Body, "A (a@x.io) - IoT")
}

func TestDigest_SkipsWhenQuiet(t *testing.T) {
	h, sender := newHandler(t, &fakeApps{}, &fakeMessages{})

	require.NoError(t, h.ProcessTask(context.Background(), task(t, shared.DigestPayload{})))
	assert.Empty(t, sender.Sent)
}

func TestDigest_CustomSinceAndRecipient(t *testing.T) {
	apps := &fakeApps{items: []*appmodel.Application{{PersonalInfo: appmodel.PersonalInfo{FullName: "A"}}}}
	h, sender := newHandler(t, apps, &fakeMessages{})

	err := h.ProcessTask(context.Background(), task(t, shared.DigestPayload{
		To:    "lead@qbrain.in",
		Since: "2025-02-01T00:00:00Z",
	}))
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), apps.since)
	require.Len(t, sender.Sent, 1)
	assert.Equal(t, []string{"lead@qbrain.in"}, sender.Sent[0].To)
}

func TestDigest_BadPayload(t *testing.T) {
	h, _ := newHandler(t, &fakeApps{}, &fakeMessages{})

	err := h.ProcessTask(context.Background(), asynq.NewTask(shared.TypeDailyDigest, []byte("{")))
	assert.ErrorIs(t, err, asynq.SkipRetry)

	err = h.ProcessTask(context.Background(), task(t, shared.DigestPayload{Since: "yesterday"}))
	assert.ErrorIs(t, err, asynq.SkipRetry)
}

func TestDigest_SourceError(t *testing.T) {
	h, sender := newHandler(t, &fakeApps{err: errors.New("store down")}, &fakeMessages{})

	err := h.ProcessTask(context.Background(), task(t, shared.DigestPayload{}))
	require.Error(t, err)
	assert.NotErrorIs(t, err, asynq.SkipRetry)
	assert.Empty(t, sender.Sent)
}
