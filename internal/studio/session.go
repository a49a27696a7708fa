package studio

import (
	"context"
	"errors"
	"sync"

	"campaign-studio/internal/core/domain"
)

var (
	ErrBusy          = errors.New("a campaign request is already in progress")
	ErrNothingToRedo = errors.New("no previous campaign to regenerate")
)

// Generator produces a campaign for a request. Both the usecase and the API
// client satisfy it.
type Generator interface {
	Generate(ctx context.Context, req domain.CampaignRequest) (*domain.CampaignResult, error)
}

// Session is the view state of one shell: the last successful request, the
// current result and the regenerate tone. Only one request may be in flight.
type Session struct {
	gen Generator

	mu             sync.Mutex
	busy           bool
	last           *domain.CampaignRequest
	result         *domain.CampaignResult
	regenerateTone string
}

// NewSession returns an idle session using gen.
func NewSession(gen Generator) *Session {
	return &Session{gen: gen, regenerateTone: DefaultRegenerateTone}
}

// Submit sends the form. The previous result is cleared first; the request
// becomes the regenerate base only when it succeeds.
func (s *Session) Submit(ctx context.Context, in FormInput) (*domain.CampaignResult, error) {
	if !s.begin() {
		return nil, ErrBusy
	}
	s.mu.Lock()
	s.result = nil
	s.mu.Unlock()
	return s.run(ctx, in.Request())
}

// Regenerate resubmits the last successful request with the regenerate
// tone. The current result stays visible if the call fails.
func (s *Session) Regenerate(ctx context.Context) (*domain.CampaignResult, error) {
	s.mu.Lock()
	last, tone := s.last, s.regenerateTone
	s.mu.Unlock()
	if last == nil {
		return nil, ErrNothingToRedo
	}
	if !s.begin() {
		return nil, ErrBusy
	}
	return s.run(ctx, Regenerate(*last, tone))
}

// SetRegenerateTone changes the tone used by Regenerate.
func (s *Session) SetRegenerateTone(tone string) {
	s.mu.Lock()
	s.regenerateTone = tone
	s.mu.Unlock()
}

// RegenerateTone returns the tone Regenerate will use.
func (s *Session) RegenerateTone() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.regenerateTone
}

// Last returns the last successful request.
func (s *Session) Last() (domain.CampaignRequest, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.last == nil {
		return domain.CampaignRequest{}, false
	}
	return *s.last, true
}

// Result returns the result currently on display.
func (s *Session) Result() *domain.CampaignResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result
}

// Busy reports whether a request is in flight.
func (s *Session) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy
}

func (s *Session) begin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.busy {
		return false
	}
	s.busy = true
	return true
}

func (s *Session) run(ctx context.Context, req domain.CampaignRequest) (*domain.CampaignResult, error) {
	res, err := s.gen.Generate(ctx, req)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.busy = false
	if err != nil {
		return nil, err
	}
	s.result = res
	s.last = &req
	return res, nil
}
