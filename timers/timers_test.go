package timers_test

import (
	"testing"
	"time"

	"github.com/automoto/dustdemons/timers"
	"github.com/stretchr/testify/assert"
)

func TestAfterFiresOnce(t *testing.T) {
	s := timers.New()
	fired := 0
	h := s.After(100*time.Millisecond, func() { fired++ })

	s.Advance(99 * time.Millisecond)
	assert.Equal(t, 0, fired)
	assert.True(t, h.Active())

	s.Advance(1 * time.Millisecond)
	assert.Equal(t, 1, fired)
	assert.False(t, h.Active())

	s.Advance(time.Second)
	assert.Equal(t, 1, fired)
	assert.Equal(t, 0, s.Len())
}

func TestEveryFiresPerInterval(t *testing.T) {
	s := timers.New()
	var at []time.Duration
	s.Every(2*time.Second, func() { at = append(at, s.Now()) })

	s.Advance(7 * time.Second)

	assert.Equal(t, []time.Duration{2 * time.Second, 4 * time.Second, 6 * time.Second}, at)
	assert.Equal(t, 7*time.Second, s.Now())

	next, ok := s.Next()
	assert.True(t, ok)
	assert.Equal(t, 8*time.Second, next)
}

func TestCancel(t *testing.T) {
	s := timers.New()
	fired := 0
	h := s.Every(time.Second, func() { fired++ })

	s.Advance(time.Second)
	h.Cancel()
	h.Cancel()
	s.Advance(5 * time.Second)

	assert.Equal(t, 1, fired)
	assert.False(t, h.Active())
}

func TestCallbacksRunInDueOrder(t *testing.T) {
	s := timers.New()
	var order []string
	s.After(300*time.Millisecond, func() { order = append(order, "c") })
	s.After(100*time.Millisecond, func() { order = append(order, "a") })
	s.After(100*time.Millisecond, func() { order = append(order, "b") })

	s.Advance(time.Second)

	assert.Equal(t, []string{"a", "b", "c"}, order)
}

func TestCallbackCanScheduleAndCancel(t *testing.T) {
	s := timers.New()
	var later *timers.Handle
	fired := 0
	s.After(100*time.Millisecond, func() {
		s.After(100*time.Millisecond, func() { fired++ })
		later.Cancel()
	})
	later = s.After(150*time.Millisecond, func() { fired += 10 })

	s.Advance(time.Second)

	assert.Equal(t, 1, fired)
}

func TestStop(t *testing.T) {
	s := timers.New()
	fired := 0
	a := s.Every(time.Millisecond, func() { fired++ })
	b := s.After(time.Millisecond, func() { fired++ })

	s.Stop()
	s.Advance(time.Second)

	assert.Equal(t, 0, fired)
	assert.False(t, a.Active())
	assert.False(t, b.Active())
	_, ok := s.Next()
	assert.False(t, ok)
}

func TestNilAndInvalidHandles(t *testing.T) {
	var h *timers.Handle
	h.Cancel()
	assert.False(t, h.Active())

	s := timers.New()
	assert.False(t, s.Every(0, func() {}).Active())
	s.Advance(-time.Second)
	assert.Equal(t, time.Duration(0), s.Now())
}
