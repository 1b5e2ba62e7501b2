package sessions

import (
	"context"
	"sort"
	"strings"

	"github.com/samber/lo"

	"lingo-tutor/api"
)

// VocabBackend is the slice of the API the vocabulary store needs.
type VocabBackend interface {
	UserVocabulary(ctx context.Context) (*api.VocabularyResponse, error)
	AddVocabulary(ctx context.Context, req api.AddVocabRequest) (*api.AddVocabResponse, error)
	DeleteVocabulary(ctx context.Context, id int64) error
}

// Sort orders for the vocabulary view.
type SortOrder string

const (
	SortNewest SortOrder = "newest"
	SortOldest SortOrder = "oldest"
	SortAZ     SortOrder = "az"
	SortZA     SortOrder = "za"
)

// VocabStore caches the learner's vocabulary and offers filtered, sorted
// views over it. Mutations go to the backend first, then the cache is
// reloaded so the view always reflects server truth.
type VocabStore struct {
	backend VocabBackend
	entries []api.VocabEntry
}

func NewVocabStore(backend VocabBackend) *VocabStore {
	return &VocabStore{backend: backend}
}

func (s *VocabStore) Load(ctx context.Context) error {
	resp, err := s.backend.UserVocabulary(ctx)
	if err != nil {
		return err
	}
	s.entries = resp.Vocabulary
	return nil
}

func (s *VocabStore) Count() int {
	return len(s.entries)
}

// Topics lists the distinct topics in the cache, sorted, with entries lacking
// a topic counted under "general".
func (s *VocabStore) Topics() []string {
	topics := lo.Uniq(lo.Map(s.entries, func(e api.VocabEntry, _ int) string {
		if e.Topic == "" {
			return "general"
		}
		return e.Topic
	}))
	sort.Strings(topics)
	return topics
}

// Filter returns the cached entries matching a case-insensitive substring
// search over word and meaning, restricted to one topic ("all" or "" means
// every topic). The cache itself is never mutated.
func (s *VocabStore) Filter(search, topic string) []api.VocabEntry {
	search = strings.ToLower(strings.TrimSpace(search))
	return lo.Filter(s.entries, func(e api.VocabEntry, _ int) bool {
		if topic != "" && topic != "all" {
			entryTopic := e.Topic
			if entryTopic == "" {
				entryTopic = "general"
			}
			if entryTopic != topic {
				return false
			}
		}
		if search == "" {
			return true
		}
		return strings.Contains(strings.ToLower(e.Word), search) ||
			strings.Contains(strings.ToLower(e.MeaningVi), search)
	})
}

// SortEntries orders a copy of entries; the input slice is left alone.
// CreatedAt is an ISO timestamp string, so lexicographic compare is
// chronological.
func SortEntries(entries []api.VocabEntry, order SortOrder) []api.VocabEntry {
	out := make([]api.VocabEntry, len(entries))
	copy(out, entries)
	switch order {
	case SortOldest:
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt < out[j].CreatedAt })
	case SortAZ:
		sort.SliceStable(out, func(i, j int) bool {
			return strings.ToLower(out[i].Word) < strings.ToLower(out[j].Word)
		})
	case SortZA:
		sort.SliceStable(out, func(i, j int) bool {
			return strings.ToLower(out[i].Word) > strings.ToLower(out[j].Word)
		})
	default: // SortNewest
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt > out[j].CreatedAt })
	}
	return out
}

// View is the filtered and sorted list the UI renders.
func (s *VocabStore) View(search, topic string, order SortOrder) []api.VocabEntry {
	return SortEntries(s.Filter(search, topic), order)
}

// Add saves a new word and reloads the cache. Both fields are required.
func (s *VocabStore) Add(ctx context.Context, word, meaning string) (*api.AddVocabResponse, error) {
	word = strings.TrimSpace(word)
	meaning = strings.TrimSpace(meaning)
	if word == "" {
		return nil, ErrEmptyMessage
	}
	if meaning == "" {
		return nil, ErrEmptyMessage
	}

	resp, err := s.backend.AddVocabulary(ctx, api.AddVocabRequest{Word: word, MeaningVi: meaning})
	if err != nil {
		return nil, err
	}
	if err := s.Load(ctx); err != nil {
		return resp, err
	}
	return resp, nil
}

// Delete removes a word and reloads the cache.
func (s *VocabStore) Delete(ctx context.Context, id int64) error {
	if err := s.backend.DeleteVocabulary(ctx, id); err != nil {
		return err
	}
	return s.Load(ctx)
}
