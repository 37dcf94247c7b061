package draft

import (
	"sync"
	"testing"
	"time"

	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func TestRegistry_WithChecksOwner(t *testing.T) {
	registry := NewRegistry(time.Minute, nil)
	id := registry.Open(New(Options{Identity: "uid-1"}))

	err := registry.With(id, "uid-1", func(c *Controller) error {
		return c.SetField(entity.FieldCity, "Paris")
	})
	require.NoError(t, err)

	err = registry.With(id, "uid-2", func(*Controller) error { return nil })
	assert.ErrorIs(t, err, domainerrors.ErrDraftNotFound)

	err = registry.With("missing", "uid-1", func(*Controller) error { return nil })
	assert.ErrorIs(t, err, domainerrors.ErrDraftNotFound)
}

func TestRegistry_Close(t *testing.T) {
	registry := NewRegistry(time.Minute, nil)
	id := registry.Open(New(Options{Identity: "uid-1"}))

	assert.False(t, registry.Close(id, "uid-2"))
	assert.True(t, registry.Close(id, "uid-1"))
	assert.Zero(t, registry.Len())
}

func TestRegistry_SweepDropsIdleSessions(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)}
	registry := NewRegistry(10*time.Minute, clock.Now)
	idle := registry.Open(New(Options{Identity: "uid-1"}))
	clock.Advance(6 * time.Minute)
	active := registry.Open(New(Options{Identity: "uid-2"}))
	clock.Advance(5 * time.Minute)

	dropped := registry.Sweep()

	assert.Equal(t, 1, dropped)
	assert.ErrorIs(t, registry.With(idle, "uid-1", func(*Controller) error { return nil }), domainerrors.ErrDraftNotFound)
	assert.NoError(t, registry.With(active, "uid-2", func(*Controller) error { return nil }))
}

func TestRegistry_SerialisesSessionOperations(t *testing.T) {
	registry := NewRegistry(time.Minute, nil)
	id := registry.Open(New(Options{Identity: "uid-1", SubjectOptions: []string{"Art"}}))

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func(checked bool) {
			defer wg.Done()
			_ = registry.With(id, "uid-1", func(c *Controller) error {
				return c.ToggleSubject("Art", checked)
			})
		}(i%2 == 0)
	}
	wg.Wait()

	err := registry.With(id, "uid-1", func(c *Controller) error {
		assert.LessOrEqual(t, len(c.Draft().Subjects), 1)

		return nil
	})
	require.NoError(t, err)
}
