package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"qbrain-backend/internal/domains/team/model"
	"qbrain-backend/internal/domains/team/repository"
	"qbrain-backend/internal/infrastructure/storage"
	"qbrain-backend/internal/shared/mocks"
	"qbrain-backend/internal/shared/testutil"
)

func setup(t *testing.T) (ServiceInterface, *mocks.MockBlobStore) {
	t.Helper()
	blob := mocks.NewMockBlobStore()
	repo := repository.NewTeamRepository(testutil.NewStore(t))
	svc := NewTeamService(repo, storage.NewImageUploader(blob, nil), nil, time.Minute)
	return svc, blob
}

func teamKey() interface{} {
	return mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, storage.PrefixTeamMembers+"/")
	})
}

func TestCreate_WithoutImage(t *testing.T) {
	svc, blob := setup(t)
	ctx := context.Background()

	member, err := svc.Create(ctx, model.CreateTeamMemberRequest{Name: "  Asha ", Role: "ML Lead"}, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, member.ID)
	assert.Equal(t, "Asha", member.Name)
	assert.False(t, member.CreatedAt.IsZero())

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, member.ID, list[0].ID)
	blob.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCreate_UploadsImage(t *testing.T) {
	svc, blob := setup(t)
	url := blob.URL("team-members/abc-asha.png")
	blob.On("Upload", mock.Anything, teamKey(), mock.Anything, "image/png").Return(url, nil).Once()

	member, err := svc.Create(context.Background(),
		model.CreateTeamMemberRequest{Name: "Asha", Role: "ML Lead"},
		testutil.ImageFile(t, "asha.png"))
	require.NoError(t, err)
	assert.Equal(t, url, member.ImageURL)
	blob.AssertExpectations(t)
}

func TestCreate_UploadFailure(t *testing.T) {
	svc, blob := setup(t)
	blob.On("Upload", mock.Anything, teamKey(), mock.Anything, mock.Anything).Return("", errors.New("bucket down"))

	_, err := svc.Create(context.Background(),
		model.CreateTeamMemberRequest{Name: "Asha", Role: "ML Lead"},
		testutil.ImageFile(t, "asha.png"))
	require.Error(t, err)

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestDelete_RemovesImageBlob(t *testing.T) {
	svc, blob := setup(t)
	ctx := context.Background()
	key := "team-members/abc-asha.png"
	blob.On("Upload", mock.Anything, teamKey(), mock.Anything, mock.Anything).Return(blob.URL(key), nil)
	blob.On("Delete", mock.Anything, key).Return(nil).Once()

	member, err := svc.Create(ctx, model.CreateTeamMemberRequest{Name: "Asha", Role: "ML Lead"}, testutil.ImageFile(t, "asha.png"))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, member.ID))

	blob.AssertCalled(t, "Delete", mock.Anything, key)
	_, err = svc.Get(ctx, member.ID)
	assert.ErrorIs(t, err, model.ErrMemberNotFound)
}

func TestDelete_BlobFailureStillDeletesDocument(t *testing.T) {
	svc, blob := setup(t)
	ctx := context.Background()
	key := "team-members/abc-asha.png"
	blob.On("Upload", mock.Anything, teamKey(), mock.Anything, mock.Anything).Return(blob.URL(key), nil)
	blob.On("Delete", mock.Anything, key).Return(errors.New("timeout"))

	member, err := svc.Create(ctx, model.CreateTeamMemberRequest{Name: "Asha", Role: "ML Lead"}, testutil.ImageFile(t, "asha.png"))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, member.ID))
	_, err = svc.Get(ctx, member.ID)
	assert.ErrorIs(t, err, model.ErrMemberNotFound)
}

func TestDelete_ExternalImageIsLeftAlone(t *testing.T) {
	svc, blob := setup(t)
	ctx := context.Background()

	member, err := svc.Create(ctx, model.CreateTeamMemberRequest{
		Name: "Asha", Role: "ML Lead", ImageURL: "https://images.example.com/asha.jpg",
	}, nil)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, member.ID))
	blob.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDelete_NotFound(t *testing.T) {
	svc, _ := setup(t)
	assert.ErrorIs(t, svc.Delete(context.Background(), "missing"), model.ErrMemberNotFound)
}

func TestUpdate_NewImageReplacesOld(t *testing.T) {
	svc, blob := setup(t)
	ctx := context.Background()
	oldKey, newKey := "team-members/old-asha.png", "team-members/new-asha.png"

	blob.On("Upload", mock.Anything, teamKey(), mock.Anything, mock.Anything).Return(blob.URL(oldKey), nil).Once()
	member, err := svc.Create(ctx, model.CreateTeamMemberRequest{Name: "Asha", Role: "ML Lead"}, testutil.ImageFile(t, "asha.png"))
	require.NoError(t, err)

	blob.On("Upload", mock.Anything, teamKey(), mock.Anything, mock.Anything).Return(blob.URL(newKey), nil).Once()
	blob.On("Delete", mock.Anything, oldKey).Return(nil).Once()

	role := "Team Lead"
	updated, err := svc.Update(ctx, member.ID, model.UpdateTeamMemberRequest{Role: &role}, testutil.ImageFile(t, "asha2.png"))
	require.NoError(t, err)

	assert.Equal(t, "Team Lead", updated.Role)
	assert.Equal(t, "Asha", updated.Name)
	assert.Equal(t, blob.URL(newKey), updated.ImageURL)
	blob.AssertExpectations(t)
}

func TestUpdate_Errors(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()

	name := "X"
	_, err := svc.Update(ctx, "missing", model.UpdateTeamMemberRequest{Name: &name}, nil)
	assert.ErrorIs(t, err, model.ErrMemberNotFound)

	member, err := svc.Create(ctx, model.CreateTeamMemberRequest{Name: "Asha", Role: "ML Lead"}, nil)
	require.NoError(t, err)
	_, err = svc.Update(ctx, member.ID, model.UpdateTeamMemberRequest{}, nil)
	assert.ErrorIs(t, err, model.ErrNothingToUpdate)
}

func TestList_NewestFirst(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, model.CreateTeamMemberRequest{Name: "A", Role: "R"}, nil)
	require.NoError(t, err)
	second, err := svc.Create(ctx, model.CreateTeamMemberRequest{Name: "B", Role: "R"}, nil)
	require.NoError(t, err)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
}
