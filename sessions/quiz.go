package sessions

import (
	"context"
	"fmt"
	"time"

	"lingo-tutor/api"
)

// QuizBackend is the slice of the API the quiz needs.
type QuizBackend interface {
	GenerateQuiz(ctx context.Context, count int, topic string) ([]api.QuizQuestion, error)
	SubmitQuiz(ctx context.Context, answers []api.QuizAnswer) (*api.QuizSubmitResponse, error)
}

type QuizState int

const (
	QuizIdle QuizState = iota
	QuizInProgress
	QuizFinished
)

// QuizResult is the summary shown after submission.
type QuizResult struct {
	Correct    int
	Total      int
	Percentage float64
}

// Quiz walks the learner through a batch of multiple-choice questions.
// Answers are buffered locally and submitted in one batch at the end; the
// question's own is_correct flags are authoritative for scoring, never a
// re-derivation from option text.
type Quiz struct {
	backend QuizBackend
	now     func() time.Time

	state     QuizState
	questions []api.QuizQuestion
	answers   []api.QuizAnswer
	index     int
	startedAt time.Time
	result    *QuizResult
}

func NewQuiz(backend QuizBackend) *Quiz {
	return &Quiz{backend: backend, now: time.Now}
}

func (q *Quiz) State() QuizState { return q.state }

func (q *Quiz) Total() int { return len(q.questions) }

func (q *Quiz) Index() int { return q.index }

// Current returns the question awaiting an answer.
func (q *Quiz) Current() (*api.QuizQuestion, error) {
	if q.state != QuizInProgress {
		return nil, ErrNotStarted
	}
	return &q.questions[q.index], nil
}

func (q *Quiz) Result() *QuizResult { return q.result }

// Start fetches a fresh batch of questions. On failure or an empty batch the
// quiz stays idle.
func (q *Quiz) Start(ctx context.Context, count int, topic string) error {
	if q.state == QuizInProgress {
		return ErrAlreadyAnswered
	}

	questions, err := q.backend.GenerateQuiz(ctx, count, topic)
	if err != nil {
		return err
	}
	if len(questions) == 0 {
		return ErrNoQuestions
	}

	q.questions = questions
	q.answers = q.answers[:0]
	q.index = 0
	q.startedAt = q.now()
	q.result = nil
	q.state = QuizInProgress
	return nil
}

// SelectOption records the learner's pick for the current question. Only the
// first selection counts; later picks for the same question are rejected.
// Returns whether the pick was correct.
func (q *Quiz) SelectOption(optionIndex int) (bool, error) {
	if q.state != QuizInProgress {
		return false, ErrNotStarted
	}
	if len(q.answers) > q.index {
		return false, ErrAlreadyAnswered
	}
	question := q.questions[q.index]
	if optionIndex < 0 || optionIndex >= len(question.Options) {
		return false, fmt.Errorf("option %d out of range", optionIndex+1)
	}

	opt := question.Options[optionIndex]
	q.answers = append(q.answers, api.QuizAnswer{
		VocabID:    question.ID,
		UserAnswer: opt.Text,
		IsCorrect:  opt.IsCorrect,
		TimeTaken:  int(q.now().Sub(q.startedAt).Seconds()),
	})
	return opt.IsCorrect, nil
}

// Answered reports whether the current question already has an answer.
func (q *Quiz) Answered() bool {
	return q.state == QuizInProgress && len(q.answers) > q.index
}

// Advance moves to the next question, or submits the batch when the last
// question has been answered. It requires the current question to be
// answered first.
func (q *Quiz) Advance(ctx context.Context) (*QuizResult, error) {
	if q.state != QuizInProgress {
		return nil, ErrNotStarted
	}
	if len(q.answers) <= q.index {
		return nil, ErrNotAnswered
	}

	q.index++
	if q.index < len(q.questions) {
		return nil, nil
	}

	resp, err := q.backend.SubmitQuiz(ctx, q.answers)
	if err != nil {
		// Submission failed; score locally so the learner still sees a
		// result, but stay finished either way.
		correct := 0
		for _, a := range q.answers {
			if a.IsCorrect {
				correct++
			}
		}
		q.result = &QuizResult{
			Correct:    correct,
			Total:      len(q.answers),
			Percentage: float64(correct) / float64(len(q.answers)) * 100,
		}
		q.state = QuizFinished
		return q.result, err
	}

	q.result = &QuizResult{Correct: resp.Correct, Total: resp.Total, Percentage: resp.Percentage}
	q.state = QuizFinished
	return q.result, nil
}

// ResultMessage bands the score into an encouragement line.
func (r QuizResult) ResultMessage() string {
	switch {
	case r.Percentage >= 90:
		return "Excellent! You really know your words! 🌟"
	case r.Percentage >= 70:
		return "Great job! Keep practicing! 👏"
	case r.Percentage >= 50:
		return "Good effort! Review your words and try again. 💪"
	default:
		return "Keep studying! Practice makes perfect. 📖"
	}
}
