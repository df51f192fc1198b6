package demo

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/dmitrymomot/guardrail"
	"github.com/dmitrymomot/guardrail/pkg/logger"
)

// ErrItemNotFound indicates the requested item does not exist.
var ErrItemNotFound = errors.New("item not found")

// Item is a stored record addressable by numeric ID.
type Item struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Service holds the demo domain logic. All mutating and querying methods
// validate their input against the shared registry before touching state,
// so a caller bypassing the HTTP layer gets the same *ValidationError the
// boundary renders as a 400 payload.
type Service struct {
	log      *slog.Logger
	registry *guardrail.Registry

	mu       sync.RWMutex
	items    map[int]Item
	accepted int
}

func NewService(log *slog.Logger, registry *guardrail.Registry) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		log:      log,
		registry: registry,
		items:    make(map[int]Item),
	}
}

// SubmitInput validates req against the input constraint sequence and
// records the submission. It returns a *guardrail.ValidationError when any
// constraint fails and a schema error when the registry or request shape is
// misconfigured.
func (s *Service) SubmitInput(ctx context.Context, req SubmitInputRequest) error {
	outcome, err := guardrail.ValidateType(req, TypeInput, s.registry)
	if err != nil {
		return err
	}
	if verr := outcome.Err(); verr != nil {
		return verr
	}

	s.mu.Lock()
	s.accepted++
	n := s.accepted
	s.mu.Unlock()

	s.log.InfoContext(ctx, "input accepted",
		slog.Int("number", req.Number),
		slog.String("ip_address", req.IP),
		slog.Int("total_accepted", n),
		logger.Component("demo"),
	)
	return nil
}

// GetItem validates the request and returns the stored item.
func (s *Service) GetItem(ctx context.Context, req GetItemRequest) (Item, error) {
	outcome, err := guardrail.ValidateType(req, TypeItem, s.registry)
	if err != nil {
		return Item{}, err
	}
	if verr := outcome.Err(); verr != nil {
		return Item{}, verr
	}

	s.mu.RLock()
	item, ok := s.items[req.ID]
	s.mu.RUnlock()
	if !ok {
		return Item{}, ErrItemNotFound
	}
	return item, nil
}

// Search validates the request and returns items whose name contains the
// query string, ordered by ID and capped at the requested limit.
func (s *Service) Search(ctx context.Context, req SearchRequest) ([]Item, error) {
	outcome, err := guardrail.ValidateType(req, TypeSearch, s.registry)
	if err != nil {
		return nil, err
	}
	if verr := outcome.Err(); verr != nil {
		return nil, verr
	}

	q := strings.ToLower(req.Query)

	s.mu.RLock()
	matches := make([]Item, 0, len(s.items))
	for _, item := range s.items {
		if strings.Contains(strings.ToLower(item.Name), q) {
			matches = append(matches, item)
		}
	}
	s.mu.RUnlock()

	sort.Slice(matches, func(i, j int) bool { return matches[i].ID < matches[j].ID })
	if len(matches) > req.Limit {
		matches = matches[:req.Limit]
	}
	return matches, nil
}

// Seed inserts items directly, bypassing validation. Intended for wiring
// demo data in main and tests.
func (s *Service) Seed(items ...Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range items {
		s.items[item.ID] = item
	}
}
