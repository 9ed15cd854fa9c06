package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Aman-pandey-5909/shield-my-keys/internal/domain/model"
	"github.com/Aman-pandey-5909/shield-my-keys/internal/domain/port/driven"
)

// DefaultSlotName is the slot that holds the saved credential list.
const DefaultSlotName = "savedPasswords"

var (
	// ErrMissingFields is returned by Save when website, username or password is empty.
	ErrMissingFields = errors.New("please fill in all fields")

	// ErrCredentialNotFound is returned when no saved record has the requested id.
	ErrCredentialNotFound = errors.New("credential not found")
)

// SaveCredentialInput holds the user-entered fields for a new record.
type SaveCredentialInput struct {
	Website  string
	Username string
	Password string
}

// CredentialService keeps the saved credential list in a single slot of a
// SlotStore. The list is stored newest first and always rewritten as a whole.
type CredentialService struct {
	slots    driven.SlotStore
	slotName string
	evaluate func(string) model.StrengthResult
	now      func() time.Time
	newID    func() string
	logger   *slog.Logger

	// mu serializes read-modify-write cycles on the slot.
	mu sync.Mutex
}

// CredentialServiceOption customizes a CredentialService.
type CredentialServiceOption func(*CredentialService)

// WithSlotName stores the list under name instead of DefaultSlotName.
func WithSlotName(name string) CredentialServiceOption {
	return func(s *CredentialService) { s.slotName = name }
}

// WithEvaluator replaces the strength evaluator used when saving.
func WithEvaluator(fn func(string) model.StrengthResult) CredentialServiceOption {
	return func(s *CredentialService) { s.evaluate = fn }
}

// WithClock replaces the clock used for CreatedAt.
func WithClock(now func() time.Time) CredentialServiceOption {
	return func(s *CredentialService) { s.now = now }
}

// WithIDGenerator replaces the record id generator.
func WithIDGenerator(fn func() string) CredentialServiceOption {
	return func(s *CredentialService) { s.newID = fn }
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) CredentialServiceOption {
	return func(s *CredentialService) { s.logger = logger }
}

// NewCredentialService creates a CredentialService backed by slots.
func NewCredentialService(slots driven.SlotStore, opts ...CredentialServiceOption) *CredentialService {
	s := &CredentialService{
		slots:    slots,
		slotName: DefaultSlotName,
		evaluate: EvaluateStrength,
		now:      time.Now,
		newID:    uuid.NewString,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Save evaluates the password, snapshots its strength level onto a new record
// and prepends the record to the saved list.
func (s *CredentialService) Save(ctx context.Context, in SaveCredentialInput) (model.CredentialRecord, error) {
	if in.Website == "" || in.Username == "" || in.Password == "" {
		return model.CredentialRecord{}, ErrMissingFields
	}

	record := model.CredentialRecord{
		ID:        s.newID(),
		Website:   in.Website,
		Username:  in.Username,
		Password:  in.Password,
		Strength:  s.evaluate(in.Password).Level,
		CreatedAt: s.now().UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load(ctx)
	if err != nil {
		return model.CredentialRecord{}, err
	}

	records = append([]model.CredentialRecord{record}, records...)
	if err := s.store(ctx, records); err != nil {
		return model.CredentialRecord{}, err
	}

	s.logger.Info("credential saved", "id", record.ID, "website", record.Website, "strength", record.Strength)
	return record, nil
}

// List returns all saved records, newest first. Never returns a nil slice on success.
func (s *CredentialService) List(ctx context.Context) ([]model.CredentialRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load(ctx)
}

// Get returns the saved record with the given id.
func (s *CredentialService) Get(ctx context.Context, id string) (model.CredentialRecord, error) {
	records, err := s.List(ctx)
	if err != nil {
		return model.CredentialRecord{}, err
	}

	i := slices.IndexFunc(records, func(r model.CredentialRecord) bool { return r.ID == id })
	if i < 0 {
		return model.CredentialRecord{}, ErrCredentialNotFound
	}
	return records[i], nil
}

// Delete removes the saved record with the given id. Removing the last record
// deletes the slot.
func (s *CredentialService) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load(ctx)
	if err != nil {
		return err
	}

	remaining := slices.DeleteFunc(records, func(r model.CredentialRecord) bool { return r.ID == id })
	if len(remaining) == len(records) {
		return ErrCredentialNotFound
	}

	if len(remaining) == 0 {
		// An emptied list drops the slot; load treats a missing slot as empty.
		if err := s.slots.Delete(ctx, s.slotName); err != nil {
			return fmt.Errorf("delete slot %q: %w", s.slotName, err)
		}
	} else if err := s.store(ctx, remaining); err != nil {
		return err
	}

	s.logger.Info("credential deleted", "id", id)
	return nil
}

func (s *CredentialService) load(ctx context.Context) ([]model.CredentialRecord, error) {
	data, err := s.slots.Get(ctx, s.slotName)
	if err != nil {
		return nil, fmt.Errorf("read slot %q: %w", s.slotName, err)
	}

	records := []model.CredentialRecord{}
	if len(data) == 0 {
		return records, nil
	}

	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode slot %q: %w", s.slotName, err)
	}
	if records == nil {
		records = []model.CredentialRecord{}
	}
	return records, nil
}

func (s *CredentialService) store(ctx context.Context, records []model.CredentialRecord) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode slot %q: %w", s.slotName, err)
	}

	if err := s.slots.Set(ctx, s.slotName, data); err != nil {
		return fmt.Errorf("write slot %q: %w", s.slotName, err)
	}
	return nil
}
