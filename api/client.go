package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
)

const contentTypeHeader = "application/json"

// Client talks to the language-learning backend over HTTP JSON. The backend
// is stateless per request; all session context lives with the caller.
type Client struct {
	baseURL string
	client  *http.Client
	log     *logrus.Logger
}

func NewClient(baseURL string, timeout time.Duration, log *logrus.Logger) *Client {
	if log == nil {
		log = logrus.New()
	}
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		log:     log,
	}
}

func (c *Client) doJSON(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		jsonData, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", contentTypeHeader)
	}

	c.log.WithFields(logrus.Fields{"method": method, "path": path}).Debug("backend request")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// The backend reports application failures as {"error": ...} with a
		// 4xx/5xx status; surface that message when present.
		var appErr struct {
			Error string `json:"error"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&appErr); decodeErr == nil && appErr.Error != "" {
			return fmt.Errorf("backend error: %s", appErr.Error)
		}
		return fmt.Errorf("API request failed with status %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	return c.doJSON(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) postJSON(ctx context.Context, path string, in, out any) error {
	return c.doJSON(ctx, http.MethodPost, path, in, out)
}

// appError converts an error field carried in a 2xx body into a Go error so
// callers have a single failure path.
func appError(msg string) error {
	return fmt.Errorf("backend error: %s", msg)
}

func (c *Client) Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	var resp ChatResponse
	if err := c.postJSON(ctx, "/api/chat", req, &resp); err != nil {
		return nil, err
	}
	if resp.Error != "" {
		return nil, appError(resp.Error)
	}
	return &resp, nil
}

func (c *Client) Progress(ctx context.Context) (*Progress, error) {
	var resp Progress
	if err := c.getJSON(ctx, "/api/progress", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) ChatHistory(ctx context.Context, limit int) ([]HistoryEntry, error) {
	var resp HistoryResponse
	if err := c.getJSON(ctx, "/api/chat/history?limit="+strconv.Itoa(limit), &resp); err != nil {
		return nil, err
	}
	if resp.Error != "" {
		return nil, appError(resp.Error)
	}
	return resp.History, nil
}

func (c *Client) UserVocabulary(ctx context.Context) (*VocabularyResponse, error) {
	var resp VocabularyResponse
	if err := c.getJSON(ctx, "/api/user-vocabulary", &resp); err != nil {
		return nil, err
	}
	if resp.Error != "" {
		return nil, appError(resp.Error)
	}
	return &resp, nil
}

func (c *Client) AddVocabulary(ctx context.Context, req AddVocabRequest) (*AddVocabResponse, error) {
	var resp AddVocabResponse
	if err := c.postJSON(ctx, "/api/add-vocabulary", req, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, appError(orUnknown(resp.Error))
	}
	return &resp, nil
}

func (c *Client) DeleteVocabulary(ctx context.Context, id int64) error {
	var resp DeleteVocabResponse
	if err := c.doJSON(ctx, http.MethodDelete, "/api/delete-vocabulary/"+strconv.FormatInt(id, 10), nil, &resp); err != nil {
		return err
	}
	if !resp.Success {
		return appError(orUnknown(resp.Error))
	}
	return nil
}

func (c *Client) ListeningSentence(ctx context.Context, difficulty, topic string) (string, error) {
	path := "/api/listening/get-sentence?difficulty=" + url.QueryEscape(difficulty) + "&topic=" + url.QueryEscape(topic)
	var resp SentenceResponse
	if err := c.getJSON(ctx, path, &resp); err != nil {
		return "", err
	}
	if !resp.Success {
		return "", appError(orUnknown(resp.Error))
	}
	return resp.Sentence, nil
}

func (c *Client) CheckListeningAnswer(ctx context.Context, req CheckAnswerRequest) (*CheckAnswerResponse, error) {
	var resp CheckAnswerResponse
	if err := c.postJSON(ctx, "/api/listening/check-answer", req, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, appError(orUnknown(resp.Error))
	}
	return &resp, nil
}

func (c *Client) GenerateQuiz(ctx context.Context, count int, topic string) ([]QuizQuestion, error) {
	path := "/api/quiz/generate?count=" + strconv.Itoa(count) + "&topic=" + url.QueryEscape(topic)
	var resp QuizGenerateResponse
	if err := c.getJSON(ctx, path, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, appError(orUnknown(resp.Error))
	}
	return resp.Questions, nil
}

func (c *Client) SubmitQuiz(ctx context.Context, answers []QuizAnswer) (*QuizSubmitResponse, error) {
	var resp QuizSubmitResponse
	if err := c.postJSON(ctx, "/api/quiz/submit", QuizSubmitRequest{Answers: answers}, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, appError(orUnknown(resp.Error))
	}
	return &resp, nil
}

func (c *Client) StartGame(ctx context.Context, count int, topic string) (*GameStartResponse, error) {
	path := "/api/game/start?count=" + strconv.Itoa(count) + "&topic=" + url.QueryEscape(topic)
	var resp GameStartResponse
	if err := c.getJSON(ctx, path, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, appError(orUnknown(resp.Error))
	}
	return &resp, nil
}

func (c *Client) SaveGameScore(ctx context.Context, req SaveScoreRequest) error {
	var resp SaveScoreResponse
	if err := c.postJSON(ctx, "/api/game/save-score", req, &resp); err != nil {
		return err
	}
	if !resp.Success {
		return appError(orUnknown(resp.Error))
	}
	return nil
}

func (c *Client) Leaderboard(ctx context.Context, gameType string) ([]LeaderboardEntry, error) {
	var resp LeaderboardResponse
	if err := c.getJSON(ctx, "/api/game/leaderboard?game_type="+url.QueryEscape(gameType), &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, appError(orUnknown(resp.Error))
	}
	return resp.Scores, nil
}

// PronunciationWord returns the backend response as-is: success=false with no
// word means the learner has no vocabulary yet, which callers treat as a
// fallback signal rather than a failure.
func (c *Client) PronunciationWord(ctx context.Context) (*PronunciationWordResponse, error) {
	var resp PronunciationWordResponse
	if err := c.getJSON(ctx, "/api/speaking/get-pronunciation-word", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) CheckPronunciation(ctx context.Context, req CheckPronunciationRequest) (*CheckPronunciationResponse, error) {
	var resp CheckPronunciationResponse
	if err := c.postJSON(ctx, "/api/speaking/check-pronunciation", req, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, appError(orUnknown(resp.Error))
	}
	return &resp, nil
}

func (c *Client) TopicQuestion(ctx context.Context, topic string) (string, error) {
	var resp TopicQuestionResponse
	if err := c.getJSON(ctx, "/api/speaking/get-topic-question?topic="+url.QueryEscape(topic), &resp); err != nil {
		return "", err
	}
	if !resp.Success {
		return "", appError(orUnknown(resp.Error))
	}
	return resp.Question, nil
}

func (c *Client) CheckTopicAnswer(ctx context.Context, req CheckTopicRequest) (*CheckTopicResponse, error) {
	var resp CheckTopicResponse
	if err := c.postJSON(ctx, "/api/speaking/check-topic-answer", req, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, appError(orUnknown(resp.Error))
	}
	return &resp, nil
}

func (c *Client) StartConversation(ctx context.Context, role string) (*StartConversationResponse, error) {
	var resp StartConversationResponse
	if err := c.postJSON(ctx, "/api/speaking/start-conversation", StartConversationRequest{Role: role}, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, appError(orUnknown(resp.Error))
	}
	return &resp, nil
}

func (c *Client) ConversationReply(ctx context.Context, req ConversationReplyRequest) (*ConversationReplyResponse, error) {
	var resp ConversationReplyResponse
	if err := c.postJSON(ctx, "/api/speaking/conversation-reply", req, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, appError(orUnknown(resp.Error))
	}
	return &resp, nil
}

func (c *Client) SpeakingHistory(ctx context.Context, limit int) ([]SpeakingHistoryEntry, error) {
	var resp SpeakingHistoryResponse
	if err := c.getJSON(ctx, "/api/speaking/history?limit="+strconv.Itoa(limit), &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, appError(orUnknown(resp.Error))
	}
	return resp.History, nil
}

func (c *Client) GrammarTips(ctx context.Context, level string) (*GrammarTipsResponse, error) {
	var resp GrammarTipsResponse
	if err := c.getJSON(ctx, "/api/grammar-tips?level="+url.QueryEscape(level), &resp); err != nil {
		return nil, err
	}
	if resp.Error != "" {
		return nil, appError(resp.Error)
	}
	return &resp, nil
}

func (c *Client) PracticeSentence(ctx context.Context, level, topic string) (string, error) {
	path := "/api/practice-sentence?level=" + url.QueryEscape(level) + "&topic=" + url.QueryEscape(topic)
	var resp PracticeSentenceResponse
	if err := c.getJSON(ctx, path, &resp); err != nil {
		return "", err
	}
	if resp.Error != "" {
		return "", appError(resp.Error)
	}
	return resp.Sentence, nil
}

func orUnknown(msg string) string {
	if msg == "" {
		return "unknown error"
	}
	return msg
}
