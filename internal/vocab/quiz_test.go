package vocab

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odemir/folio/internal/models"
)

type fakeWordSource struct {
	words []models.Word
	calls int
}

func (f *fakeWordSource) Words(ctx context.Context, filter *models.WordFilter) (*models.WordPage, error) {
	f.calls++
	items := make([]*models.Word, len(f.words))
	for i := range f.words {
		items[i] = &f.words[i]
	}
	return &models.WordPage{Items: items, Total: int64(len(items))}, nil
}

func makeWords(n int) []models.Word {
	words := make([]models.Word, n)
	for i := range words {
		words[i] = models.Word{
			ID:      fmt.Sprintf("w%d", i),
			Term:    fmt.Sprintf("term%d", i),
			Meaning: fmt.Sprintf("meaning%d", i),
		}
	}
	return words
}

func TestNewSession_GeneratesTenValidQuestions(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	pool := makeWords(12)

	session, err := NewSession(context.Background(), pool, nil, rng)
	require.NoError(t, err)
	require.Len(t, session.Questions, 10)

	for _, q := range session.Questions {
		require.Len(t, q.Options, 4)

		seen := map[string]bool{}
		containsCorrect := false
		for _, opt := range q.Options {
			assert.False(t, seen[opt.ID], "duplicate option %s", opt.ID)
			seen[opt.ID] = true
			if opt.ID == q.Word.ID {
				containsCorrect = true
			}
		}
		assert.True(t, containsCorrect, "options must include the asked word")
	}
}

func TestNewSession_SmallPoolStillWorks(t *testing.T) {
	// Four distinct words is the floor: every question uses all of them.
	rng := rand.New(rand.NewSource(1))
	session, err := NewSession(context.Background(), makeWords(4), nil, rng)
	require.NoError(t, err)
	require.Len(t, session.Questions, 10)
	for _, q := range session.Questions {
		assert.Len(t, q.Options, 4)
	}
}

func TestNewSession_PoolTooSmall(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	_, err := NewSession(context.Background(), makeWords(3), nil, rng)
	assert.ErrorIs(t, err, ErrPoolTooSmall)
}

func TestNewSession_FetchesBatchForSmallPool(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	source := &fakeWordSource{words: makeWords(20)}

	session, err := NewSession(context.Background(), makeWords(2), source, rng)
	require.NoError(t, err)
	assert.Equal(t, 1, source.calls)
	assert.Len(t, session.Questions, 10)
}

func TestNewSession_LargePoolSkipsFetch(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	source := &fakeWordSource{words: makeWords(20)}

	_, err := NewSession(context.Background(), makeWords(15), source, rng)
	require.NoError(t, err)
	assert.Equal(t, 0, source.calls)
}

func TestNewSession_DuplicatesCollapse(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	pool := append(makeWords(3), makeWords(3)...)

	// Six entries but only three distinct ids.
	_, err := NewSession(context.Background(), pool, nil, rng)
	assert.ErrorIs(t, err, ErrPoolTooSmall)
}

func TestPickOptions_Distinct(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	pool := makeWords(8)

	for i := 0; i < 50; i++ {
		correct := pool[rng.Intn(len(pool))]
		options := PickOptions(correct, pool, 4, rng)

		require.Len(t, options, 4)
		seen := map[string]bool{}
		for _, opt := range options {
			assert.False(t, seen[opt.ID])
			seen[opt.ID] = true
		}
		assert.True(t, seen[correct.ID])
	}
}

func TestSession_ScoringAndStreak(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	session, err := NewSession(context.Background(), makeWords(10), nil, rng)
	require.NoError(t, err)

	// Two correct answers, then a wrong one.
	q, ok := session.Current()
	require.True(t, ok)
	correct, finished := session.Answer(q.Word.ID)
	assert.True(t, correct)
	assert.False(t, finished)

	q, _ = session.Current()
	session.Answer(q.Word.ID)
	assert.Equal(t, 20, session.Score)
	assert.Equal(t, 2, session.Streak)

	q, _ = session.Current()
	wrongID := ""
	for _, opt := range q.Options {
		if opt.ID != q.Word.ID {
			wrongID = opt.ID
			break
		}
	}
	correct, _ = session.Answer(wrongID)
	assert.False(t, correct)

	// Wrong answers reset the streak but never the score.
	assert.Equal(t, 20, session.Score)
	assert.Equal(t, 0, session.Streak)
}

func TestSession_FinishesAfterLastQuestion(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	session, err := NewSession(context.Background(), makeWords(10), nil, rng)
	require.NoError(t, err)

	var finished bool
	for i := 0; i < len(session.Questions); i++ {
		q, ok := session.Current()
		require.True(t, ok)
		_, finished = session.Answer(q.Word.ID)
	}

	assert.True(t, finished)
	assert.Equal(t, StateFinished, session.State())
	assert.Equal(t, 100, session.Score)

	_, ok := session.Current()
	assert.False(t, ok)

	// Answering past the end is inert.
	_, finished = session.Answer("anything")
	assert.True(t, finished)
	assert.Equal(t, 100, session.Score)
}
