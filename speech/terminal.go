package speech

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fatih/color"
)

// Terminal implementations of the speech capabilities. Recognition reads
// typed lines as if they were transcribed speech; synthesis prints the
// utterance with its playback parameters. This keeps every practice mode
// usable over a plain terminal while real engines can be swapped in behind
// the same interfaces.

var terminalVoices = []Voice{
	{Name: "Microsoft Zira Desktop", Lang: "en-US"},
	{Name: "Microsoft David Desktop", Lang: "en-US"},
	{Name: "Microsoft Hazel Desktop", Lang: "en-GB"},
	{Name: "Google US English", Lang: "en-US"},
	{Name: "Google UK English Female", Lang: "en-GB"},
	{Name: "Google UK English Male", Lang: "en-GB"},
}

type lineResult struct {
	text string
	err  error
}

type TerminalRecognizer struct {
	mu sync.Mutex // serializes recognition sessions

	readMu   sync.Mutex
	in       *bufio.Reader
	inFlight bool
	results  chan lineResult
}

func NewTerminalRecognizer(in io.Reader) *TerminalRecognizer {
	return &TerminalRecognizer{
		in:      bufio.NewReader(in),
		results: make(chan lineResult, 1),
	}
}

// beginRead issues at most one blocking read at a time. When a timed-out
// recognition left a read in flight, the next call reuses it instead of
// stacking another reader on the stream, so the line typed after a timeout
// is delivered to the next recognition rather than swallowed.
func (r *TerminalRecognizer) beginRead() {
	r.readMu.Lock()
	defer r.readMu.Unlock()
	if r.inFlight {
		return
	}
	r.inFlight = true
	go func() {
		line, err := r.in.ReadString('\n')
		r.results <- lineResult{strings.TrimSpace(line), err}
		r.readMu.Lock()
		r.inFlight = false
		r.readMu.Unlock()
	}()
}

func (r *TerminalRecognizer) readLine(ctx context.Context) (string, error) {
	r.beginRead()
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-r.results:
		if res.err != nil && res.text == "" {
			return "", res.err
		}
		return res.text, nil
	}
}

func (r *TerminalRecognizer) RecognizeOnce(ctx context.Context, opts RecognizeOptions) (Transcript, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if opts.MaxDuration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.MaxDuration)
		defer cancel()
	}

	color.New(color.FgMagenta).Println("🎤 Speak now (type what you would say):")
	start := time.Now()
	text, err := r.readLine(ctx)
	if err != nil {
		return Transcript{}, err
	}
	if text == "" {
		return Transcript{}, ErrNoSpeech
	}
	return Transcript{Text: text, Final: true, Duration: time.Since(start)}, nil
}

// RecognizeStream emits one final transcript per typed line until a blank
// line, EOF or the context ends the recording.
func (r *TerminalRecognizer) RecognizeStream(ctx context.Context, opts RecognizeOptions) (<-chan Transcript, error) {
	r.mu.Lock()

	cancel := context.CancelFunc(func() {})
	if opts.MaxDuration > 0 {
		ctx, cancel = context.WithTimeout(ctx, opts.MaxDuration)
	}

	color.New(color.FgMagenta).Println("🎤 Recording (type your answer, blank line to stop):")

	out := make(chan Transcript)
	go func() {
		defer r.mu.Unlock()
		defer close(out)
		defer cancel()
		start := time.Now()
		for {
			text, err := r.readLine(ctx)
			if err != nil || text == "" {
				return
			}
			t := Transcript{Text: text, Final: true, Duration: time.Since(start)}
			select {
			case out <- t:
			case <-ctx.Done():
				return
			}
			if !opts.Continuous {
				return
			}
		}
	}()
	return out, nil
}

type TerminalSynthesizer struct {
	out io.Writer
	seq atomic.Int64
}

func NewTerminalSynthesizer(out io.Writer) *TerminalSynthesizer {
	return &TerminalSynthesizer{out: out}
}

func (s *TerminalSynthesizer) Voices() []Voice {
	voices := make([]Voice, len(terminalVoices))
	copy(voices, terminalVoices)
	return voices
}

// Speak prints the utterance. A new call bumps the sequence counter so that
// any earlier playback still pending is considered cancelled.
func (s *TerminalSynthesizer) Speak(ctx context.Context, u Utterance) error {
	seq := s.seq.Add(1)
	if err := ctx.Err(); err != nil {
		return err
	}
	if seq != s.seq.Load() {
		return nil
	}

	voiceName := "default"
	if u.Voice != nil {
		voiceName = u.Voice.Name
	}
	rate := u.Rate
	if rate == 0 {
		rate = 1.0
	}
	cyan := color.New(color.FgCyan)
	fmt.Fprint(s.out, cyan.Sprintf("🔊 [%s, %.2fx] ", voiceName, rate))
	fmt.Fprintln(s.out, u.Text)
	return nil
}

func (s *TerminalSynthesizer) Cancel() {
	s.seq.Add(1)
}
