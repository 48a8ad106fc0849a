package vocab

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/odemir/folio/internal/models"
)

const (
	questionCount    = 10
	optionCount      = 4
	pointsPerCorrect = 10

	// below this pool size a larger batch is fetched before generating
	minPoolSize = 10
	fetchLimit  = 50
)

// ErrPoolTooSmall is returned when fewer than four distinct words are
// available even after fetching.
var ErrPoolTooSmall = errors.New("word pool needs at least 4 distinct words")

// QuestionType is the direction a question is asked in.
type QuestionType string

const (
	TermToMeaning QuestionType = "term_to_meaning"
	MeaningToTerm QuestionType = "meaning_to_term"
)

// Question is one multiple-choice item. Options always has exactly four
// distinct words, one of which is Word.
type Question struct {
	Type    QuestionType
	Word    models.Word
	Options []models.Word
}

// SessionState tracks the quiz lifecycle.
type SessionState int

const (
	StatePlaying SessionState = iota
	StateFinished
)

// Session is one quiz run. It is transient: discarded when finished or
// abandoned, never persisted.
type Session struct {
	Questions []Question
	Index     int
	Score     int
	Streak    int
	state     SessionState
}

// WordSource supplies extra words when the caller's pool is too small.
type WordSource interface {
	Words(ctx context.Context, filter *models.WordFilter) (*models.WordPage, error)
}

// NewSession generates a fixed-length quiz from the given pool,
// fetching a larger batch from source first when the pool is small.
// Generation failure is fatal to the session: no retry, the caller
// abandons the quiz.
func NewSession(ctx context.Context, pool []models.Word, source WordSource, rng *rand.Rand) (*Session, error) {
	words := dedupeByID(pool)

	if len(words) < minPoolSize && source != nil {
		page, err := source.Words(ctx, &models.WordFilter{Limit: fetchLimit})
		if err != nil {
			return nil, fmt.Errorf("failed to fetch words for quiz: %w", err)
		}
		for _, w := range page.Items {
			words = append(words, *w)
		}
		words = dedupeByID(words)
	}

	if len(words) < optionCount {
		return nil, ErrPoolTooSmall
	}

	questions := make([]Question, 0, questionCount)
	for i := 0; i < questionCount; i++ {
		correct := words[rng.Intn(len(words))]
		options := PickOptions(correct, words, optionCount, rng)

		qt := TermToMeaning
		if rng.Intn(2) == 1 {
			qt = MeaningToTerm
		}
		questions = append(questions, Question{
			Type:    qt,
			Word:    correct,
			Options: options,
		})
	}

	return &Session{Questions: questions}, nil
}

// PickOptions builds a shuffled option set of the desired size containing
// the correct word exactly once. Distractors are drawn by rejection
// sampling against the already chosen ids, so the options are always
// distinct. Pure given its random source, which makes it testable with a
// seeded generator.
func PickOptions(correct models.Word, pool []models.Word, count int, rng *rand.Rand) []models.Word {
	chosen := map[string]bool{correct.ID: true}
	options := []models.Word{correct}

	for len(options) < count {
		candidate := pool[rng.Intn(len(pool))]
		if chosen[candidate.ID] {
			continue
		}
		chosen[candidate.ID] = true
		options = append(options, candidate)
	}

	rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	return options
}

// Current returns the question at the cursor; false once the session is
// finished.
func (s *Session) Current() (Question, bool) {
	if s.state != StatePlaying || s.Index >= len(s.Questions) {
		return Question{}, false
	}
	return s.Questions[s.Index], true
}

// Answer scores the given option against the current question and
// advances the cursor. A correct answer awards fixed points and extends
// the streak; a wrong one only resets the streak — the score is never
// decremented.
func (s *Session) Answer(optionID string) (correct bool, finished bool) {
	q, ok := s.Current()
	if !ok {
		return false, true
	}

	correct = optionID == q.Word.ID
	if correct {
		s.Score += pointsPerCorrect
		s.Streak++
	} else {
		s.Streak = 0
	}

	s.Index++
	if s.Index >= len(s.Questions) {
		s.state = StateFinished
	}
	return correct, s.state == StateFinished
}

// State returns the session state.
func (s *Session) State() SessionState {
	return s.state
}

func dedupeByID(words []models.Word) []models.Word {
	seen := make(map[string]bool, len(words))
	out := make([]models.Word, 0, len(words))
	for _, w := range words {
		if w.ID == "" || seen[w.ID] {
			continue
		}
		seen[w.ID] = true
		out = append(out, w)
	}
	return out
}
