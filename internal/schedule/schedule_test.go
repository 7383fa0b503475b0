package schedule

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNext(t *testing.T) {
	t.Parallel()
	base := time.Date(2025, 3, 13, 21, 4, 0, 0, time.UTC)
	tests := []struct {
		name  string
		every time.Duration
		want  time.Duration
	}{
		{name: "ten minutes", every: 600 * time.Second, want: 10 * time.Minute},
		{name: "rounded", every: 1500 * time.Millisecond, want: time.Second},
		{name: "minimum", every: time.Millisecond, want: time.Second},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Every(tt.every).Next(base).Sub(base); got != tt.want {
				t.Fatalf("Next delay = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWaitCancelled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	err := Every(time.Hour).Wait(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Wait error = %v, want context.Canceled", err)
	}
	if time.Since(start) > time.Second {
		t.Fatal("Wait did not return on cancellation")
	}
}

func TestWaitElapses(t *testing.T) {
	t.Parallel()
	i := Every(10 * time.Minute)
	i.now = func() time.Time { return time.Date(2025, 3, 13, 21, 4, 0, 250_000_000, time.UTC) }

	var requested time.Duration
	i.timer = func(d time.Duration) (<-chan time.Time, func() bool) {
		requested = d
		fired := make(chan time.Time, 1)
		fired <- time.Time{}
		return fired, func() bool { return true }
	}

	if err := i.Wait(context.Background()); err != nil {
		t.Fatalf("Wait error: %v", err)
	}
	if want := 10*time.Minute - 250*time.Millisecond; requested != want {
		t.Fatalf("timer duration = %v, want %v", requested, want)
	}
}
