package api

// Wire types for the language-learning backend. Field names follow the
// backend's snake_case JSON exactly.

type Progress struct {
	TotalConversations int      `json:"total_conversations"`
	VocabularyLearned  []string `json:"vocabulary_learned,omitempty"`
	VocabularyCount    int      `json:"vocabulary_count,omitempty"`
	GrammarCorrections int      `json:"grammar_corrections"`
	Level              string   `json:"level,omitempty"`
}

type ChatRequest struct {
	Message string `json:"message"`
	Mode    string `json:"mode"`
	Level   string `json:"level"`
}

type ChatResponse struct {
	Response string    `json:"response"`
	Progress *Progress `json:"progress,omitempty"`
	Error    string    `json:"error,omitempty"`
}

type HistoryEntry struct {
	ID          int64  `json:"id"`
	UserMessage string `json:"user_message"`
	BotResponse string `json:"bot_response"`
	CreatedAt   string `json:"created_at"`
}

type HistoryResponse struct {
	History []HistoryEntry `json:"history"`
	Error   string         `json:"error,omitempty"`
}

type VocabEntry struct {
	ID        int64  `json:"id"`
	Word      string `json:"word"`
	MeaningVi string `json:"meaning_vi"`
	Topic     string `json:"topic"`
	Phonetic  string `json:"phonetic,omitempty"`
	Example   string `json:"example,omitempty"`
	CreatedAt string `json:"created_at"`
}

type VocabularyResponse struct {
	Vocabulary []VocabEntry `json:"vocabulary"`
	Count      int          `json:"count"`
	Error      string       `json:"error,omitempty"`
}

type AddVocabRequest struct {
	Word      string `json:"word"`
	MeaningVi string `json:"meaning_vi"`
}

type AddVocabResponse struct {
	Success        bool   `json:"success"`
	Word           string `json:"word"`
	Topic          string `json:"topic"`
	Phonetic       string `json:"phonetic,omitempty"`
	Example        string `json:"example,omitempty"`
	CorrectionNote string `json:"correction_note,omitempty"`
	Error          string `json:"error,omitempty"`
}

type DeleteVocabResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

type SentenceResponse struct {
	Success  bool   `json:"success"`
	Sentence string `json:"sentence"`
	Error    string `json:"error,omitempty"`
}

type CheckAnswerRequest struct {
	Sentence   string `json:"sentence"`
	Answer     string `json:"answer"`
	Difficulty string `json:"difficulty"`
	Topic      string `json:"topic"`
	PlayCount  int    `json:"play_count"`
}

type CheckAnswerResponse struct {
	Success          bool    `json:"success"`
	IsCorrect        bool    `json:"is_correct"`
	Similarity       float64 `json:"similarity"`
	Feedback         string  `json:"feedback"`
	OriginalSentence string  `json:"original_sentence"`
	UserAnswer       string  `json:"user_answer"`
	AIAnalysis       string  `json:"ai_analysis,omitempty"`
	Error            string  `json:"error,omitempty"`
}

type QuizOption struct {
	Text      string `json:"text"`
	IsCorrect bool   `json:"is_correct"`
}

type QuizQuestion struct {
	ID       int64        `json:"id"`
	Word     string       `json:"word"`
	Phonetic string       `json:"phonetic,omitempty"`
	Options  []QuizOption `json:"options"`
}

type QuizGenerateResponse struct {
	Success   bool           `json:"success"`
	Questions []QuizQuestion `json:"questions"`
	Error     string         `json:"error,omitempty"`
}

type QuizAnswer struct {
	VocabID    int64  `json:"vocab_id"`
	UserAnswer string `json:"user_answer"`
	IsCorrect  bool   `json:"is_correct"`
	TimeTaken  int    `json:"time_taken"`
}

type QuizSubmitRequest struct {
	Answers []QuizAnswer `json:"answers"`
}

type QuizSubmitResponse struct {
	Success    bool    `json:"success"`
	Correct    int     `json:"correct"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
	Error      string  `json:"error,omitempty"`
}

// Card types for the matching game. Each match_id appears on exactly two
// cards of differing types.
const (
	CardTypeWord    = "word"
	CardTypeMeaning = "meaning"
)

type GameCard struct {
	Text    string `json:"text"`
	Type    string `json:"type"`
	MatchID int64  `json:"match_id"`
}

type GameStartResponse struct {
	Success    bool       `json:"success"`
	Cards      []GameCard `json:"cards"`
	TotalPairs int        `json:"total_pairs"`
	Error      string     `json:"error,omitempty"`
}

type SaveScoreRequest struct {
	GameType       string `json:"game_type"`
	Score          int    `json:"score"`
	CorrectAnswers int    `json:"correct_answers"`
	TotalQuestions int    `json:"total_questions"`
	TimeTaken      int    `json:"time_taken"`
}

type SaveScoreResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

type LeaderboardEntry struct {
	Score     int    `json:"score"`
	TimeTaken int    `json:"time_taken"`
	CreatedAt string `json:"created_at"`
}

type LeaderboardResponse struct {
	Success bool               `json:"success"`
	Scores  []LeaderboardEntry `json:"scores"`
	Error   string             `json:"error,omitempty"`
}

type PronunciationWord struct {
	Word      string `json:"word"`
	Phonetic  string `json:"phonetic,omitempty"`
	MeaningVi string `json:"meaning_vi,omitempty"`
}

type PronunciationWordResponse struct {
	Success  bool               `json:"success"`
	Word     *PronunciationWord `json:"word,omitempty"`
	IsSample bool               `json:"is_sample,omitempty"`
	Error    string             `json:"error,omitempty"`
}

type CheckPronunciationRequest struct {
	Word       string `json:"word"`
	Transcript string `json:"transcript"`
	Phonetic   string `json:"phonetic"`
}

type CheckPronunciationResponse struct {
	Success    bool   `json:"success"`
	Score      int    `json:"score"`
	Feedback   string `json:"feedback"`
	Transcript string `json:"transcript"`
	Error      string `json:"error,omitempty"`
}

type TopicQuestionResponse struct {
	Success  bool   `json:"success"`
	Question string `json:"question"`
	Error    string `json:"error,omitempty"`
}

type CheckTopicRequest struct {
	Topic      string `json:"topic"`
	Question   string `json:"question"`
	Transcript string `json:"transcript"`
	Duration   int    `json:"duration"`
}

type CheckTopicResponse struct {
	Success            bool   `json:"success"`
	OverallScore       int    `json:"overall_score"`
	PronunciationScore int    `json:"pronunciation_score"`
	GrammarScore       int    `json:"grammar_score"`
	VocabularyScore    int    `json:"vocabulary_score"`
	FluencyScore       int    `json:"fluency_score"`
	Feedback           string `json:"feedback"`
	Transcript         string `json:"transcript"`
	Error              string `json:"error,omitempty"`
}

// Conversation speakers as the backend expects them.
const (
	SpeakerAI   = "AI"
	SpeakerUser = "User"
)

type ConversationTurn struct {
	Speaker string `json:"speaker"`
	Text    string `json:"text"`
}

type StartConversationRequest struct {
	Role string `json:"role"`
}

type StartConversationResponse struct {
	Success  bool   `json:"success"`
	Greeting string `json:"greeting"`
	Error    string `json:"error,omitempty"`
}

type ConversationReplyRequest struct {
	Role        string             `json:"role"`
	History     []ConversationTurn `json:"history"`
	UserMessage string             `json:"user_message"`
}

type ConversationReplyResponse struct {
	Success  bool   `json:"success"`
	Reply    string `json:"reply"`
	Feedback string `json:"feedback,omitempty"`
	Error    string `json:"error,omitempty"`
}

type SpeakingHistoryEntry struct {
	OverallScore int    `json:"overall_score"`
	PracticeType string `json:"practice_type"`
	Topic        string `json:"topic,omitempty"`
	CreatedAt    string `json:"created_at"`
}

type SpeakingHistoryResponse struct {
	Success bool                   `json:"success"`
	History []SpeakingHistoryEntry `json:"history"`
	Error   string                 `json:"error,omitempty"`
}

type GrammarTipsResponse struct {
	Level string   `json:"level"`
	Tips  []string `json:"tips"`
	Error string   `json:"error,omitempty"`
}

type PracticeSentenceResponse struct {
	Sentence string `json:"sentence"`
	Error    string `json:"error,omitempty"`
}
