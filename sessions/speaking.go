package sessions

import (
	"context"
	"strings"
	"time"

	"lingo-tutor/api"
	"lingo-tutor/speech"
)

// SpeakingBackend is the slice of the API speaking practice needs.
type SpeakingBackend interface {
	PronunciationWord(ctx context.Context) (*api.PronunciationWordResponse, error)
	CheckPronunciation(ctx context.Context, req api.CheckPronunciationRequest) (*api.CheckPronunciationResponse, error)
	TopicQuestion(ctx context.Context, topic string) (string, error)
	CheckTopicAnswer(ctx context.Context, req api.CheckTopicRequest) (*api.CheckTopicResponse, error)
	StartConversation(ctx context.Context, role string) (*api.StartConversationResponse, error)
	ConversationReply(ctx context.Context, req api.ConversationReplyRequest) (*api.ConversationReplyResponse, error)
	SpeakingHistory(ctx context.Context, limit int) ([]api.SpeakingHistoryEntry, error)
}

// Playback rates for speaking practice prompts.
const (
	wordPlaybackRate         = 0.8
	conversationPlaybackRate = 0.9
)

// TopicRecordingCeiling bounds a topic answer recording.
const TopicRecordingCeiling = 90 * time.Second

// SampleWordSource supplies fallback words when the learner's vocabulary is
// empty.
type SampleWordSource func() ([]api.PronunciationWord, error)

// Speaking drives the three speaking exercises: single-word pronunciation,
// topic answers, and role-played conversations. All microphone access goes
// through a shared advisory guard so two recordings can never overlap, and
// the guard is always released, error or not.
type Speaking struct {
	backend SpeakingBackend
	rec     speech.Recognizer
	synth   speech.Synthesizer
	guard   *RecordingGuard
	gen     generationGuard
	samples SampleWordSource

	voice *speech.Voice
	lang  string

	word     *api.PronunciationWord
	isSample bool
	sampleIx int

	topic    string
	question string

	role    string
	history []api.ConversationTurn
}

func NewSpeaking(backend SpeakingBackend, rec speech.Recognizer, synth speech.Synthesizer, guard *RecordingGuard, samples SampleWordSource, voice *speech.Voice, lang string) *Speaking {
	if guard == nil {
		guard = &RecordingGuard{}
	}
	return &Speaking{
		backend: backend,
		rec:     rec,
		synth:   synth,
		guard:   guard,
		samples: samples,
		voice:   voice,
		lang:    lang,
	}
}

func (s *Speaking) Word() (*api.PronunciationWord, bool) {
	return s.word, s.isSample
}

func (s *Speaking) Question() (topic, question string) {
	return s.topic, s.question
}

func (s *Speaking) History() []api.ConversationTurn {
	history := make([]api.ConversationTurn, len(s.history))
	copy(history, s.history)
	return history
}

func (s *Speaking) InConversation() bool {
	return len(s.history) > 0
}

// NextWord fetches the next pronunciation word. When the backend has no
// vocabulary to draw from, a bundled sample word is served instead and
// flagged as such.
func (s *Speaking) NextWord(ctx context.Context) (*api.PronunciationWord, bool, error) {
	token := s.gen.next()

	resp, err := s.backend.PronunciationWord(ctx)
	if err != nil {
		return nil, false, err
	}
	if !s.gen.still(token) {
		return nil, false, ErrStale
	}

	if resp.Word != nil && resp.Word.Word != "" {
		s.word = resp.Word
		s.isSample = resp.IsSample
		return s.word, s.isSample, nil
	}

	if s.samples == nil {
		return nil, false, ErrNoWord
	}
	words, err := s.samples()
	if err != nil || len(words) == 0 {
		return nil, false, ErrNoWord
	}
	w := words[s.sampleIx%len(words)]
	s.sampleIx++
	s.word = &w
	s.isSample = true
	return s.word, true, nil
}

// PlayWord speaks the current word slowly so the learner hears it clearly.
func (s *Speaking) PlayWord(ctx context.Context) error {
	if s.word == nil {
		return ErrNoWord
	}
	return s.synth.Speak(ctx, speech.Utterance{
		Text:   s.word.Word,
		Lang:   s.lang,
		Rate:   wordPlaybackRate,
		Pitch:  1,
		Volume: 1,
		Voice:  s.voice,
	})
}

// RecordPronunciation captures one attempt at the current word and has the
// backend score it. Transcripts are lowercased and trimmed before grading.
func (s *Speaking) RecordPronunciation(ctx context.Context) (*api.CheckPronunciationResponse, error) {
	if s.word == nil {
		return nil, ErrNoWord
	}
	if !s.guard.TryAcquire() {
		return nil, ErrRecordingActive
	}
	defer s.guard.Release()

	t, err := s.rec.RecognizeOnce(ctx, speech.RecognizeOptions{Language: s.lang})
	if err != nil {
		return nil, err
	}
	transcript := strings.ToLower(strings.TrimSpace(t.Text))
	if transcript == "" {
		return nil, speech.ErrNoSpeech
	}

	return s.backend.CheckPronunciation(ctx, api.CheckPronunciationRequest{
		Word:       s.word.Word,
		Transcript: transcript,
		Phonetic:   s.word.Phonetic,
	})
}

// PronunciationMessage bands a pronunciation score.
func PronunciationMessage(score int) string {
	switch {
	case score >= 80:
		return "Excellent pronunciation! 🎉"
	case score >= 60:
		return "Good, but keep practicing! 👍"
	default:
		return "Listen again and try once more. 🔁"
	}
}

// NextTopicQuestion fetches a fresh question for the chosen topic.
func (s *Speaking) NextTopicQuestion(ctx context.Context, topic string) (string, error) {
	token := s.gen.next()

	question, err := s.backend.TopicQuestion(ctx, topic)
	if err != nil {
		return "", err
	}
	if !s.gen.still(token) {
		return "", ErrStale
	}

	s.topic = topic
	s.question = question
	return question, nil
}

// RecordTopicAnswer records the learner's spoken answer, capped at the
// recording ceiling, then has the backend score it across pronunciation,
// grammar, vocabulary and fluency. Interim transcripts are discarded; final
// segments are joined in order.
func (s *Speaking) RecordTopicAnswer(ctx context.Context) (*api.CheckTopicResponse, error) {
	if s.question == "" {
		return nil, ErrNoQuestion
	}
	if !s.guard.TryAcquire() {
		return nil, ErrRecordingActive
	}
	defer s.guard.Release()

	stream, err := s.rec.RecognizeStream(ctx, speech.RecognizeOptions{
		Language:    s.lang,
		Continuous:  true,
		MaxDuration: TopicRecordingCeiling,
	})
	if err != nil {
		return nil, err
	}

	var parts []string
	var duration time.Duration
	for t := range stream {
		if !t.Final {
			continue
		}
		parts = append(parts, strings.TrimSpace(t.Text))
		if t.Duration > duration {
			duration = t.Duration
		}
	}

	transcript := strings.TrimSpace(strings.Join(parts, " "))
	if transcript == "" {
		return nil, speech.ErrNoSpeech
	}

	return s.backend.CheckTopicAnswer(ctx, api.CheckTopicRequest{
		Topic:      s.topic,
		Question:   s.question,
		Transcript: transcript,
		Duration:   int(duration.Seconds()),
	})
}

// StartConversation opens a role-played conversation. Any previous
// conversation is discarded; the history afterwards holds exactly the AI
// greeting.
func (s *Speaking) StartConversation(ctx context.Context, role string) (string, error) {
	token := s.gen.next()

	resp, err := s.backend.StartConversation(ctx, role)
	if err != nil {
		return "", err
	}
	if !s.gen.still(token) {
		return "", ErrStale
	}

	s.role = role
	s.history = []api.ConversationTurn{{Speaker: api.SpeakerAI, Text: resp.Greeting}}

	_ = s.synth.Speak(ctx, speech.Utterance{
		Text:   resp.Greeting,
		Lang:   s.lang,
		Rate:   conversationPlaybackRate,
		Pitch:  1,
		Volume: 1,
		Voice:  s.voice,
	})
	return resp.Greeting, nil
}

// ConversationReply is what one exchange returns to the UI.
type ConversationReply struct {
	UserText string
	Reply    string
	Feedback string
}

// RecordReply captures the learner's next line and plays the AI's response.
// The backend is stateless, so every exchange resends the full history.
func (s *Speaking) RecordReply(ctx context.Context) (*ConversationReply, error) {
	if len(s.history) == 0 {
		return nil, ErrNoConversation
	}
	if !s.guard.TryAcquire() {
		return nil, ErrRecordingActive
	}
	defer s.guard.Release()

	t, err := s.rec.RecognizeOnce(ctx, speech.RecognizeOptions{Language: s.lang})
	if err != nil {
		return nil, err
	}
	userText := strings.TrimSpace(t.Text)
	if userText == "" {
		return nil, speech.ErrNoSpeech
	}

	s.history = append(s.history, api.ConversationTurn{Speaker: api.SpeakerUser, Text: userText})

	resp, err := s.backend.ConversationReply(ctx, api.ConversationReplyRequest{
		Role:        s.role,
		History:     s.History(),
		UserMessage: userText,
	})
	if err != nil {
		return nil, err
	}

	s.history = append(s.history, api.ConversationTurn{Speaker: api.SpeakerAI, Text: resp.Reply})

	_ = s.synth.Speak(ctx, speech.Utterance{
		Text:   resp.Reply,
		Lang:   s.lang,
		Rate:   conversationPlaybackRate,
		Pitch:  1,
		Volume: 1,
		Voice:  s.voice,
	})
	return &ConversationReply{UserText: userText, Reply: resp.Reply, Feedback: resp.Feedback}, nil
}

// EndConversation drops the conversation state.
func (s *Speaking) EndConversation() {
	s.role = ""
	s.history = nil
}

// SpeakingStats summarizes recent speaking practice.
type SpeakingStats struct {
	Sessions     int
	AverageScore float64
	Recent       []api.SpeakingHistoryEntry
}

// Statistics averages overall scores over the most recent sessions.
func (s *Speaking) Statistics(ctx context.Context) (*SpeakingStats, error) {
	history, err := s.backend.SpeakingHistory(ctx, 100)
	if err != nil {
		return nil, err
	}

	stats := &SpeakingStats{Sessions: len(history), Recent: history}
	if len(history) == 0 {
		return stats, nil
	}
	total := 0
	for _, h := range history {
		total += h.OverallScore
	}
	stats.AverageScore = float64(total) / float64(len(history))
	return stats, nil
}
