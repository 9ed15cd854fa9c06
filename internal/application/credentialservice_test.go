package application_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aman-pandey-5909/shield-my-keys/internal/application"
	"github.com/Aman-pandey-5909/shield-my-keys/internal/domain/model"
)

// --- Mock implementations ---

// mockSlotStore is an in-memory driven.SlotStore.
type mockSlotStore struct {
	mu     sync.Mutex
	slots  map[string][]byte
	getErr error
	setErr error
	delErr error
	sets   int
}

func newMockSlotStore() *mockSlotStore {
	return &mockSlotStore{slots: map[string][]byte{}}
}

func (m *mockSlotStore) Get(_ context.Context, name string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.slots[name], nil
}

func (m *mockSlotStore) Set(_ context.Context, name string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.setErr != nil {
		return m.setErr
	}
	m.sets++
	m.slots[name] = append([]byte(nil), value...)
	return nil
}

func (m *mockSlotStore) Delete(_ context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.delErr != nil {
		return m.delErr
	}
	delete(m.slots, name)
	return nil
}

// --- Test helpers ---

var fixedNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

// sequentialIDs returns an id generator yielding "id-1", "id-2", ...
func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func newTestService(slots *mockSlotStore, opts ...application.CredentialServiceOption) *application.CredentialService {
	base := []application.CredentialServiceOption{
		application.WithClock(func() time.Time { return fixedNow }),
		application.WithIDGenerator(sequentialIDs()),
	}
	return application.NewCredentialService(slots, append(base, opts...)...)
}

// --- Tests ---

func TestCredentialService_SaveSnapshotsStrength(t *testing.T) {
	slots := newMockSlotStore()
	svc := newTestService(slots)
	ctx := context.Background()

	record, err := svc.Save(ctx, application.SaveCredentialInput{
		Website:  "Gmail",
		Username: "user@example.com",
		Password: "Tr0ub4dor&3xyzAB",
	})
	require.NoError(t, err)

	assert.Equal(t, "id-1", record.ID)
	assert.Equal(t, "Gmail", record.Website)
	assert.Equal(t, "user@example.com", record.Username)
	assert.Equal(t, "Tr0ub4dor&3xyzAB", record.Password)
	assert.Equal(t, model.StrengthVeryStrong, record.Strength)
	assert.Equal(t, fixedNow, record.CreatedAt)
}

func TestCredentialService_SaveMissingFields(t *testing.T) {
	tests := []struct {
		name string
		in   application.SaveCredentialInput
	}{
		{"missing website", application.SaveCredentialInput{Username: "u", Password: "p"}},
		{"missing username", application.SaveCredentialInput{Website: "w", Password: "p"}},
		{"missing password", application.SaveCredentialInput{Website: "w", Username: "u"}},
		{"all empty", application.SaveCredentialInput{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots := newMockSlotStore()
			svc := newTestService(slots)

			_, err := svc.Save(context.Background(), tt.in)

			require.ErrorIs(t, err, application.ErrMissingFields)
			assert.Zero(t, slots.sets, "nothing should be written")
		})
	}
}

func TestCredentialService_ListNewestFirst(t *testing.T) {
	slots := newMockSlotStore()
	svc := newTestService(slots)
	ctx := context.Background()

	for _, site := range []string{"first", "second", "third"} {
		_, err := svc.Save(ctx, application.SaveCredentialInput{Website: site, Username: "u", Password: "pw"})
		require.NoError(t, err)
	}

	records, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "third", records[0].Website)
	assert.Equal(t, "second", records[1].Website)
	assert.Equal(t, "first", records[2].Website)
}

func TestCredentialService_ListEmpty(t *testing.T) {
	svc := newTestService(newMockSlotStore())

	records, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestCredentialService_ListNullSlot(t *testing.T) {
	slots := newMockSlotStore()
	slots.slots[application.DefaultSlotName] = []byte("null")
	svc := newTestService(slots)

	records, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestCredentialService_SerializedShape(t *testing.T) {
	slots := newMockSlotStore()
	svc := newTestService(slots)

	_, err := svc.Save(context.Background(), application.SaveCredentialInput{
		Website: "Gmail", Username: "user@example.com", Password: "12345678",
	})
	require.NoError(t, err)

	var stored []map[string]any
	require.NoError(t, json.Unmarshal(slots.slots[application.DefaultSlotName], &stored))
	require.Len(t, stored, 1)
	assert.Equal(t, map[string]any{
		"id":        "id-1",
		"website":   "Gmail",
		"username":  "user@example.com",
		"password":  "12345678",
		"strength":  "weak",
		"createdAt": "2026-03-14T09:30:00Z",
	}, stored[0])
}

// TestCredentialService_StoredLevelIsNotRecomputed saves a record, then changes
// the scoring rules and checks that the stored level is left untouched.
func TestCredentialService_StoredLevelIsNotRecomputed(t *testing.T) {
	slots := newMockSlotStore()
	ctx := context.Background()

	original := newTestService(slots)
	saved, err := original.Save(ctx, application.SaveCredentialInput{
		Website: "Gmail", Username: "u", Password: "Password1!",
	})
	require.NoError(t, err)
	require.Equal(t, model.StrengthStrong, saved.Strength)

	stricter := func(string) model.StrengthResult {
		return model.StrengthResult{Level: model.StrengthWeak}
	}
	rescored := newTestService(slots, application.WithEvaluator(stricter))

	got, err := rescored.Get(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StrengthStrong, got.Strength)

	// New saves use the new rules while the old record keeps its snapshot.
	_, err = rescored.Save(ctx, application.SaveCredentialInput{Website: "Other", Username: "u", Password: "Password1!"})
	require.NoError(t, err)

	records, err := rescored.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, model.StrengthWeak, records[0].Strength)
	assert.Equal(t, model.StrengthStrong, records[1].Strength)
}

func TestCredentialService_Get(t *testing.T) {
	slots := newMockSlotStore()
	svc := newTestService(slots)
	ctx := context.Background()

	saved, err := svc.Save(ctx, application.SaveCredentialInput{Website: "w", Username: "u", Password: "p"})
	require.NoError(t, err)

	got, err := svc.Get(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, saved, got)

	_, err = svc.Get(ctx, "missing")
	assert.ErrorIs(t, err, application.ErrCredentialNotFound)
}

func TestCredentialService_Delete(t *testing.T) {
	slots := newMockSlotStore()
	svc := newTestService(slots)
	ctx := context.Background()

	first, err := svc.Save(ctx, application.SaveCredentialInput{Website: "a", Username: "u", Password: "p"})
	require.NoError(t, err)
	second, err := svc.Save(ctx, application.SaveCredentialInput{Website: "b", Username: "u", Password: "p"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, first.ID))

	records, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, second.ID, records[0].ID)

	err = svc.Delete(ctx, first.ID)
	assert.ErrorIs(t, err, application.ErrCredentialNotFound)
}

func TestCredentialService_DeleteLastRecordDropsSlot(t *testing.T) {
	slots := newMockSlotStore()
	svc := newTestService(slots)
	ctx := context.Background()

	saved, err := svc.Save(ctx, application.SaveCredentialInput{Website: "w", Username: "u", Password: "p"})
	require.NoError(t, err)
	require.Contains(t, slots.slots, application.DefaultSlotName)

	require.NoError(t, svc.Delete(ctx, saved.ID))
	assert.NotContains(t, slots.slots, application.DefaultSlotName)

	records, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)

	// The list can be rebuilt after the slot is gone.
	_, err = svc.Save(ctx, application.SaveCredentialInput{Website: "w2", Username: "u", Password: "p"})
	require.NoError(t, err)
	records, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestCredentialService_DeleteSlotFailure(t *testing.T) {
	slots := newMockSlotStore()
	svc := newTestService(slots)
	ctx := context.Background()

	saved, err := svc.Save(ctx, application.SaveCredentialInput{Website: "w", Username: "u", Password: "p"})
	require.NoError(t, err)

	slots.delErr = errors.New("locked")
	err = svc.Delete(ctx, saved.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "locked")
}

func TestCredentialService_SlotNameOption(t *testing.T) {
	slots := newMockSlotStore()
	svc := newTestService(slots, application.WithSlotName("vault"))

	_, err := svc.Save(context.Background(), application.SaveCredentialInput{Website: "w", Username: "u", Password: "p"})
	require.NoError(t, err)

	assert.Contains(t, slots.slots, "vault")
	assert.NotContains(t, slots.slots, application.DefaultSlotName)
}

func TestCredentialService_StoreErrors(t *testing.T) {
	ctx := context.Background()
	in := application.SaveCredentialInput{Website: "w", Username: "u", Password: "p"}

	t.Run("read failure", func(t *testing.T) {
		slots := newMockSlotStore()
		slots.getErr = errors.New("disk gone")
		svc := newTestService(slots)

		_, err := svc.Save(ctx, in)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "disk gone")

		_, err = svc.List(ctx)
		require.Error(t, err)
	})

	t.Run("write failure", func(t *testing.T) {
		slots := newMockSlotStore()
		slots.setErr = errors.New("read-only")
		svc := newTestService(slots)

		_, err := svc.Save(ctx, in)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "read-only")
	})

	t.Run("corrupt slot", func(t *testing.T) {
		slots := newMockSlotStore()
		slots.slots[application.DefaultSlotName] = []byte("{not json")
		svc := newTestService(slots)

		_, err := svc.List(ctx)
		require.Error(t, err)
	})

	t.Run("unknown strength level", func(t *testing.T) {
		slots := newMockSlotStore()
		slots.slots[application.DefaultSlotName] = []byte(`[{"id":"1","strength":"excellent"}]`)
		svc := newTestService(slots)

		_, err := svc.List(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid strength level")
	})
}

func TestCredentialService_ConcurrentSaves(t *testing.T) {
	slots := newMockSlotStore()
	svc := application.NewCredentialService(slots)
	ctx := context.Background()

	const writers = 20
	var wg sync.WaitGroup
	wg.Add(writers)
	for i := range writers {
		go func() {
			defer wg.Done()
			_, err := svc.Save(ctx, application.SaveCredentialInput{
				Website: fmt.Sprintf("site-%d", i), Username: "u", Password: "p",
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	records, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, records, writers)
}
