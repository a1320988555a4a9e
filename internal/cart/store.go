package cart

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/oakline/storefront/internal/models"
	"github.com/oakline/storefront/internal/storage"
)

// DefaultStorageKey is the fixed key the cart snapshot lives under.
const DefaultStorageKey = "cart"

// DefaultThrottleWindow collapses bursts of state changes into one write.
const DefaultThrottleWindow = time.Second

// Store owns the authoritative cart state. Every mutation funnels through
// the reducer under the lock, so no two transitions are ever in flight at
// once, and each transition schedules a debounced persistence write: a newer
// change cancels the pending one.
type Store struct {
	mu      sync.Mutex
	state   State
	timer   *time.Timer
	closed  bool
	storage storage.Store
	key     string
	window  time.Duration
	logger  *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

func WithStorageKey(key string) Option {
	return func(s *Store) { s.key = key }
}

func WithThrottleWindow(window time.Duration) Option {
	return func(s *Store) { s.window = window }
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) { s.logger = logger }
}

// NewStore builds a cart store and hydrates it from a persisted snapshot if
// one exists and passes the shape check. A missing or malformed snapshot is
// skipped silently; the cart starts empty.
func NewStore(store storage.Store, opts ...Option) *Store {

	s := &Store{
		state:   InitialState(),
		storage: store,
		key:     DefaultStorageKey,
		window:  DefaultThrottleWindow,
		logger:  slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	s.hydrate()

	return s
}

// hydrate restores a persisted snapshot. The snapshot must contain an
// array-typed "lines" field; anything else falls back to the empty state.
func (s *Store) hydrate() {

	data, found, err := s.storage.GetRaw(s.key)
	if err != nil {
		s.logger.Warn("Failed to load cart from storage", slog.String("error", err.Error()))

		return
	}

	if !found {
		return
	}

	var probe map[string]json.RawMessage

	if err := json.Unmarshal(data, &probe); err != nil {
		s.logger.Warn("Skipping malformed cart snapshot", slog.String("error", err.Error()))

		return
	}

	rawLines, ok := probe["lines"]
	if !ok {
		s.logger.Warn("Skipping cart snapshot without lines")

		return
	}

	var lines []models.CartLine

	if err := json.Unmarshal(rawLines, &lines); err != nil {
		s.logger.Warn("Skipping cart snapshot with non-array lines", slog.String("error", err.Error()))

		return
	}

	var snapshot State

	if err := json.Unmarshal(data, &snapshot); err != nil {
		s.logger.Warn("Skipping undecodable cart snapshot", slog.String("error", err.Error()))

		return
	}

	if snapshot.Lines == nil {
		snapshot.Lines = []models.CartLine{}
	}

	if snapshot.SavedItems == nil {
		snapshot.SavedItems = []models.CartLine{}
	}

	s.state = Reduce(s.state, Hydrate{State: snapshot})
}

// Add appends or merges a line. The line id is generated here, never by the
// caller, so ids stay unique and unreused.
func (s *Store) Add(req *models.AddItemRequest) State {

	line := models.CartLine{
		ID:              uuid.NewString(),
		ProductID:       req.ProductID,
		Name:            req.Name,
		Price:           req.Price,
		Quantity:        req.Quantity,
		Image:           req.Image,
		SelectedOptions: req.SelectedOptions,
	}

	return s.dispatch(Add{Line: line})
}

func (s *Store) Remove(lineID string) State {
	return s.dispatch(Remove{LineID: lineID})
}

func (s *Store) UpdateQuantity(lineID string, quantity int) State {
	return s.dispatch(UpdateQuantity{LineID: lineID, Quantity: quantity})
}

func (s *Store) Clear() State {
	return s.dispatch(Clear{})
}

func (s *Store) SaveForLater(lineID string) State {
	return s.dispatch(SaveForLater{LineID: lineID})
}

func (s *Store) MoveToCart(lineID string) State {
	return s.dispatch(MoveToCart{LineID: lineID})
}

func (s *Store) RemoveSaved(lineID string) State {
	return s.dispatch(RemoveSaved{LineID: lineID})
}

// State returns the current cart state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

func (s *Store) dispatch(action Action) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = Reduce(s.state, action)
	s.schedulePersist()

	return s.state
}

// schedulePersist arms the debounced write, cancelling any pending one.
// Callers must hold s.mu.
func (s *Store) schedulePersist() {

	if s.closed {
		return
	}

	if s.timer != nil {
		s.timer.Stop()
	}

	s.timer = time.AfterFunc(s.window, s.persist)
}

// persist writes the snapshot. Persistence failures are logged and isolated
// from the transition logic; no dispatcher ever sees them.
func (s *Store) persist() {
	s.mu.Lock()

	// A timer callback can slip past Stop while Close is running; Close
	// already flushed, so that write must not land afterwards.
	if s.closed {
		s.mu.Unlock()

		return
	}

	snapshot := s.state
	s.mu.Unlock()

	if err := s.storage.Set(s.key, snapshot); err != nil {
		s.logger.Error("Failed to save cart to storage", slog.String("error", err.Error()))
	}
}

// Close cancels any pending write and flushes the current state once.
func (s *Store) Close() error {
	s.mu.Lock()

	if s.closed {
		s.mu.Unlock()

		return nil
	}

	s.closed = true

	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}

	snapshot := s.state
	s.mu.Unlock()

	return s.storage.Set(s.key, snapshot)
}
