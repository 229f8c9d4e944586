package engine

import (
	"testing"
	"time"
)

func TestPausableClockElapsed(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(start)
	clock := NewPausableClock(mock)

	if clock.Elapsed() != 0 {
		t.Fatalf("Expected zero elapsed at start, got %v", clock.Elapsed())
	}

	mock.Advance(1500 * time.Millisecond)
	if got := clock.ElapsedMs(); got != 1500 {
		t.Errorf("Expected 1500ms elapsed, got %v", got)
	}
}

func TestPausableClockPauseResume(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(start)
	clock := NewPausableClock(mock)

	mock.Advance(time.Second)
	clock.Pause()
	if !clock.IsPaused() {
		t.Fatal("Expected clock to be paused")
	}

	mock.Advance(5 * time.Second)
	if got := clock.Elapsed(); got != time.Second {
		t.Errorf("Expected elapsed frozen at 1s during pause, got %v", got)
	}
	if got := clock.TotalPauseDuration(); got != 5*time.Second {
		t.Errorf("Expected ongoing pause of 5s, got %v", got)
	}

	// Double pause is a no-op
	clock.Pause()
	clock.Resume()
	if clock.IsPaused() {
		t.Fatal("Expected clock to be running")
	}

	mock.Advance(2 * time.Second)
	if got := clock.Elapsed(); got != 3*time.Second {
		t.Errorf("Expected 3s elapsed after resume, got %v", got)
	}
	if got := clock.TotalPauseDuration(); got != 5*time.Second {
		t.Errorf("Expected total pause 5s, got %v", got)
	}

	// Resume while running is a no-op
	clock.Resume()
	if got := clock.Elapsed(); got != 3*time.Second {
		t.Errorf("Expected unchanged elapsed, got %v", got)
	}
}

func TestPausableClockToggle(t *testing.T) {
	mock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	clock := NewPausableClock(mock)

	if !clock.Toggle() {
		t.Error("Expected first toggle to pause")
	}
	if clock.Toggle() {
		t.Error("Expected second toggle to resume")
	}
}

func TestMonotonicTimeProvider(t *testing.T) {
	provider := NewMonotonicTimeProvider()

	t1 := provider.Now()
	time.Sleep(10 * time.Millisecond)
	t2 := provider.Now()

	if !t2.After(t1) {
		t.Errorf("Expected t2 to be after t1, but got t1=%v, t2=%v", t1, t2)
	}
}

func TestMockTimeProvider(t *testing.T) {
	startTime := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(startTime)

	if now := mock.Now(); !now.Equal(startTime) {
		t.Errorf("Expected initial time to be %v, got %v", startTime, now)
	}

	newTime := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	mock.SetTime(newTime)
	mock.Advance(time.Hour)
	if now := mock.Now(); !now.Equal(newTime.Add(time.Hour)) {
		t.Errorf("Expected time to be %v after Advance, got %v", newTime.Add(time.Hour), now)
	}
}

func TestMockTimeProviderAdvanceFrames(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(start)
	clock := NewPausableClock(mock)

	mock.AdvanceFrames(60, 60)
	if got := clock.Elapsed(); got != time.Second {
		t.Errorf("Expected 1s after 60 frames at 60fps, got %v", got)
	}

	mock.AdvanceFrames(10, 0)
	if got := clock.Elapsed(); got != time.Second {
		t.Errorf("Expected zero fps to be ignored, got %v", got)
	}
	if got := mock.Offset(); got != time.Second {
		t.Errorf("Expected offset 1s, got %v", got)
	}

	mock.SetTime(start.Add(-time.Minute))
	if got := mock.Offset(); got != -time.Minute {
		t.Errorf("Expected offset -1m after SetTime, got %v", got)
	}
}
