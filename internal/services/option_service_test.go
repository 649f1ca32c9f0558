package services

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/pollwise/newsvote-be/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedOptionsCreatesEachOptionExactlyOnce(t *testing.T) {
	db := newTestDB(t)

	// Seeding again must not duplicate rows.
	require.NoError(t, database.SeedOptions(db))

	service := NewOptionService(db, nil)
	options, err := service.ListOptions()
	require.NoError(t, err)
	require.Len(t, options, len(database.SeedOptionNames))

	for i, option := range options {
		assert.Equal(t, database.SeedOptionNames[i], option.Name)
		assert.Zero(t, option.Votes)
	}
}

func TestCastVoteIncrementsByExactlyOne(t *testing.T) {
	db := newTestDB(t)
	service := NewOptionService(db, nil)

	require.NoError(t, service.CastVote("Sports"))

	options, err := service.ListOptions()
	require.NoError(t, err)
	for _, option := range options {
		if option.Name == "Sports" {
			assert.EqualValues(t, 1, option.Votes)
		} else {
			assert.Zero(t, option.Votes)
		}
	}
}

func TestCastVoteUnknownOptionLeavesCountersUnchanged(t *testing.T) {
	db := newTestDB(t)
	service := NewOptionService(db, nil)

	err := service.CastVote("Weather")
	assert.ErrorIs(t, err, ErrOptionNotFound)

	var total int64
	require.NoError(t, db.QueryRow("SELECT SUM(votes) FROM options").Scan(&total))
	assert.Zero(t, total)
}

// TestConcurrentCastVote verifies that N concurrent voters on the same option
// raise its count by exactly N. The naive load/increment/save pattern loses
// updates here; the single-statement increment must not.
func TestConcurrentCastVote(t *testing.T) {
	db := newTestDB(t)
	service := NewOptionService(db, nil)

	const numVoters = 50

	var failures atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < numVoters; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := service.CastVote("Politics"); err != nil {
				failures.Add(1)
			}
		}()
	}
	wg.Wait()

	require.Zero(t, failures.Load(), "all concurrent votes should succeed")

	var votes int64
	require.NoError(t, db.QueryRow("SELECT votes FROM options WHERE name = ?", "Politics").Scan(&votes))
	assert.EqualValues(t, numVoters, votes, "no vote may be lost under concurrency")
}
