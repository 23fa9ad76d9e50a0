package studio

import (
	"context"
	"errors"
	"strings"
	"sync"

	"imagestudio/internal/domain"
	"imagestudio/internal/imaging"
	"imagestudio/internal/providers/image"
)

// Phase is the controller state. Exactly one of result and failure is
// populated, and only in the phase that owns it.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseSuccess
	PhaseFailure
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseSuccess:
		return "success"
	case PhaseFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// Session holds the editing state for one browser session: at most one source
// image and at most one result. Methods are safe for concurrent use.
type Session struct {
	mu      sync.Mutex
	id      string
	phase   Phase
	source  *imaging.Asset
	prompt  string
	result  *image.Result
	failure error
}

// GenerateInput parameterizes one edit attempt.
type GenerateInput struct {
	Prompt    string
	RequestID string
}

// State is an immutable snapshot of a session for rendering.
type State struct {
	Phase         Phase
	SourceDataURL string
	SourceMIME    string
	Prompt        string
	ResultDataURL string
	ResultMIME    string
	Failure       error
}

func newSession(id string) *Session {
	return &Session{id: id, phase: PhaseIdle}
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// SelectSource installs a new source image and resets the session to idle,
// discarding any previous result and failure.
func (s *Session) SelectSource(asset *imaging.Asset) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.source = asset
	s.result = nil
	s.failure = nil
	s.phase = PhaseIdle
}

// Generate runs one edit attempt against the editor. It refuses to dispatch
// without a source image and a non-empty trimmed prompt, and while a previous
// attempt is still loading. Entering the loading phase clears any previous
// failure; a failed attempt clears any previous result.
func (s *Session) Generate(ctx context.Context, editor image.Editor, in GenerateInput) (*image.Result, error) {
	prompt := strings.TrimSpace(in.Prompt)

	s.mu.Lock()
	if s.phase == PhaseLoading {
		s.mu.Unlock()
		return nil, domain.ErrEditInFlight
	}
	if s.source == nil || prompt == "" {
		s.mu.Unlock()
		return nil, domain.ErrValidation
	}
	source := *s.source
	s.prompt = prompt
	s.phase = PhaseLoading
	s.failure = nil
	s.mu.Unlock()

	result, err := editor.Edit(ctx, image.Request{
		Source:    source,
		Prompt:    prompt,
		RequestID: in.RequestID,
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.phase = PhaseFailure
		s.result = nil
		s.failure = err
		return nil, err
	}
	s.phase = PhaseSuccess
	s.result = result
	s.failure = nil
	return result, nil
}

// Result returns the latest successful edit.
func (s *Session) Result() (*image.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.result == nil {
		return nil, domain.ErrNoResult
	}
	return s.result, nil
}

// Snapshot returns the current session state.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	state := State{Phase: s.phase, Prompt: s.prompt, Failure: s.failure}
	if s.source != nil {
		state.SourceDataURL = s.source.DataURL
		state.SourceMIME = s.source.MIMEType
	}
	if s.result != nil {
		state.ResultDataURL = s.result.DataURL
		state.ResultMIME = s.result.MIMEType
	}
	return state
}

// FailureClass maps a session failure onto the domain taxonomy, defaulting to
// the generic generation failure.
func FailureClass(err error) error {
	switch {
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrNoImageReturned),
		errors.Is(err, domain.ErrEditInFlight),
		errors.Is(err, domain.ErrFileRead):
		return err
	default:
		return domain.ErrGenerationFailed
	}
}
