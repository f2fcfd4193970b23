package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"qbrain-backend/internal/domains/achievement/model"
	"qbrain-backend/internal/domains/achievement/repository"
	"qbrain-backend/internal/infrastructure/storage"
	"qbrain-backend/internal/shared/mocks"
	"qbrain-backend/internal/shared/testutil"
)

func setup(t *testing.T) (ServiceInterface, *mocks.MockBlobStore) {
	blob := mocks.NewMockBlobStore()
	svc := NewHackathonService(
		repository.NewHackathonRepository(testutil.NewStore(t)),
		storage.NewImageUploader(blob, nil), nil, time.Minute)
	return svc, blob
}

func TestCreate_NormalizesLists(t *testing.T) {
	svc, _ := setup(t)

	h, err := svc.Create(context.Background(), model.CreateHackathonRequest{
		Title:        "Smart India Hackathon",
		Date:         "2024-12-11",
		Technologies: []string{" React ", "", "Node.js", "react"},
		Highlights:   []string{"Top 5 nationally", "  "},
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"React", "Node.js"}, h.Technologies)
	assert.Equal(t, []string{"Top 5 nationally"}, h.Highlights)
	assert.Equal(t, model.StatusCompleted, h.Status)
	assert.Equal(t, model.CategoryHackathon, h.Category)
}

func TestList_OrderedByDateDesc(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()

	for _, d := range []string{"2023-03-01", "2025-01-20", "2024-08-15"} {
		_, err := svc.Create(ctx, model.CreateHackathonRequest{Title: "Event " + d, Date: d}, nil)
		require.NoError(t, err)
	}

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "2025-01-20", list[0].Date)
	assert.Equal(t, "2024-08-15", list[1].Date)
	assert.Equal(t, "2023-03-01", list[2].Date)
}

func TestDelete_RemovesImageBlob(t *testing.T) {
	svc, blob := setup(t)
	ctx := context.Background()
	key := "hackathons/abc-sih.png"
	blob.On("Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(blob.URL(key), nil)
	blob.On("Delete", mock.Anything, key).Return(nil).Once()

	h, err := svc.Create(ctx, model.CreateHackathonRequest{Title: "SIH", Date: "2024-12-11"}, testutil.ImageFile(t, "sih.png"))
	require.NoError(t, err)
	assert.Equal(t, blob.URL(key), h.ImageURL)

	require.NoError(t, svc.Delete(ctx, h.ID))
	blob.AssertExpectations(t)

	_, err = svc.Get(ctx, h.ID)
	assert.ErrorIs(t, err, model.ErrHackathonNotFound)
}

func TestUpdate_MergesFields(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()

	h, err := svc.Create(ctx, model.CreateHackathonRequest{Title: "SIH", Date: "2024-12-11", Prize: "1st"}, nil)
	require.NoError(t, err)

	status := model.StatusOngoing
	techs := []string{"Go", " Go "}
	updated, err := svc.Update(ctx, h.ID, model.UpdateHackathonRequest{Status: &status, Technologies: &techs}, nil)
	require.NoError(t, err)

	assert.Equal(t, model.StatusOngoing, updated.Status)
	assert.Equal(t, []string{"Go"}, updated.Technologies)
	assert.Equal(t, "1st", updated.Prize)
}

func TestRequestValidation(t *testing.T) {
	valid := model.CreateHackathonRequest{Title: "SIH", Date: "2024-12-11"}
	valid.Normalize()
	assert.NoError(t, valid.Validate())

	badDate := model.CreateHackathonRequest{Title: "SIH", Date: "11/12/2024"}
	badDate.Normalize()
	assert.Error(t, badDate.Validate())

	badStatus := model.CreateHackathonRequest{Title: "SIH", Date: "2024-12-11", Status: "cancelled"}
	badStatus.Normalize()
	assert.Error(t, badStatus.Validate())

	cat := "party"
	assert.Error(t, model.UpdateHackathonRequest{Category: &cat}.Validate())
	assert.NoError(t, model.UpdateHackathonRequest{}.Validate())
}
