package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitReviewPersistsExactFields(t *testing.T) {
	db := newTestDB(t)
	service := NewReviewService(db)

	created, err := service.SubmitReview("Ann", 5, "Great")
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	reviews, err := service.ListReviews()
	require.NoError(t, err)
	require.Len(t, reviews, 1)

	assert.Equal(t, created.ID, reviews[0].ID)
	assert.Equal(t, "Ann", reviews[0].Name)
	assert.EqualValues(t, 5, reviews[0].Rating)
	assert.Equal(t, "Great", reviews[0].Comment)
}

func TestListReviewsNewestFirst(t *testing.T) {
	db := newTestDB(t)
	service := NewReviewService(db)

	_, err := service.SubmitReview("first", 1, "one")
	require.NoError(t, err)
	_, err = service.SubmitReview("second", 2, "two")
	require.NoError(t, err)

	reviews, err := service.ListReviews()
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, "second", reviews[0].Name)
	assert.Equal(t, "first", reviews[1].Name)
}
