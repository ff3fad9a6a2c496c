package services

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Card is one figure on the dashboard.
type Card struct {
	Label string
	Value int
	Class string
	Href  string
}

// CardSource produces the cards one module contributes.
type CardSource func(ctx context.Context) ([]Card, error)

type DashboardService struct {
	mu      sync.RWMutex
	names   []string
	sources []CardSource
}

func NewDashboardService() *DashboardService {
	return &DashboardService{}
}

func (s *DashboardService) Register(name string, source CardSource) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.names = append(s.names, name)
	s.sources = append(s.sources, source)
}

// SourceError reports the source that failed while building the dashboard.
type SourceError struct {
	Source string
	Err    error
}

func (e *SourceError) Error() string {
	return e.Source + ": " + e.Err.Error()
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// Cards queries every source in parallel and returns the cards in registration
// order. A failing source contributes no cards; its error is returned in failed.
func (s *DashboardService) Cards(ctx context.Context) (cards []Card, failed []error) {
	s.mu.RLock()
	names := append([]string(nil), s.names...)
	sources := append([]CardSource(nil), s.sources...)
	s.mu.RUnlock()

	results := make([][]Card, len(sources))
	errs := make([]error, len(sources))
	var g errgroup.Group
	for i, source := range sources {
		g.Go(func() error {
			results[i], errs[i] = source(ctx)
			return nil
		})
	}
	_ = g.Wait()

	for i := range sources {
		if errs[i] != nil {
			failed = append(failed, &SourceError{Source: names[i], Err: errs[i]})
			continue
		}
		cards = append(cards, results[i]...)
	}
	return cards, failed
}
