package habit

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"ibadah/internal/infra/infratest"
)

func TestServiceToggle_FlipsAndPersists(t *testing.T) {
	docs := infratest.NewDocuments()
	svc := NewService(docs)
	ctx := context.Background()
	day := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)

	done, err := svc.Toggle(ctx, "user1", "tahajjud", day)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !done {
		t.Errorf("first toggle should mark done")
	}
	if !docs.Has("users/user1/habits/tahajjud") {
		t.Errorf("expected document at users/user1/habits/tahajjud")
	}

	done, err = svc.Toggle(ctx, "user1", "tahajjud", day)
	if err != nil {
		t.Fatal(err)
	}
	if done {
		t.Errorf("second toggle should clear the day")
	}
}

func TestServiceStatus_Streak(t *testing.T) {
	svc := NewService(infratest.NewDocuments())
	ctx := context.Background()
	today := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)

	for i := 2; i >= 0; i-- {
		if _, err := svc.Toggle(ctx, "u", "fasting", today.AddDate(0, 0, -i)); err != nil {
			t.Fatal(err)
		}
	}

	st, err := svc.Status(ctx, "u", "fasting", today)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !st.DoneToday || st.Streak != 3 || st.Title != "Fasting (Mon/Thu)" {
		t.Errorf("unexpected status: %+v", st)
	}
}

func TestServiceList_AllDefaults(t *testing.T) {
	svc := NewService(infratest.NewDocuments())
	list, err := svc.List(context.Background(), "u", time.Now())
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != len(Defaults) {
		t.Fatalf("expected %d habits, got %d", len(Defaults), len(list))
	}
	for _, st := range list {
		if st.DoneToday || st.Streak != 0 {
			t.Errorf("fresh user should have no progress: %+v", st)
		}
	}
}

func TestService_Errors(t *testing.T) {
	svc := NewService(infratest.NewDocuments())
	ctx := context.Background()

	if _, err := svc.Toggle(ctx, "u", "skydiving", time.Now()); !errors.Is(err, ErrUnknownHabit) {
		t.Errorf("expected ErrUnknownHabit, got %v", err)
	}
	if _, err := svc.Toggle(ctx, "", "fasting", time.Now()); !errors.Is(err, ErrBadRequest) {
		t.Errorf("expected ErrBadRequest, got %v", err)
	}
	if _, err := svc.Status(ctx, "u", "nope", time.Now()); !errors.Is(err, ErrUnknownHabit) {
		t.Errorf("expected ErrUnknownHabit, got %v", err)
	}
}

func TestServiceToggle_ConcurrentTapsAreNotLost(t *testing.T) {
	svc := NewService(infratest.NewDocuments())
	ctx := context.Background()
	day := time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)

	// An even number of toggles must leave the day unmarked.
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := svc.Toggle(ctx, "u", "reading", day); err != nil {
				t.Error(err)
			}
		}()
	}
	wg.Wait()

	st, err := svc.Status(ctx, "u", "reading", day)
	if err != nil {
		t.Fatal(err)
	}
	if st.DoneToday {
		t.Errorf("expected day unmarked after 10 toggles, got %+v", st)
	}
}

func TestServiceToggle_StoreError(t *testing.T) {
	docs := infratest.NewDocuments()
	docs.Err = errors.New("unavailable")
	svc := NewService(docs)
	if _, err := svc.Toggle(context.Background(), "u", "fasting", time.Now()); err == nil {
		t.Error("expected store error")
	}
}

func TestParseDay(t *testing.T) {
	now := time.Date(2026, 10, 18, 23, 30, 0, 0, time.UTC)
	tests := []struct {
		name    string
		value   string
		want    string
		wantErr bool
	}{
		{name: "empty uses utc date", value: "", want: "2026-10-18"},
		{name: "ahead of utc", value: "2026-10-19", want: "2026-10-19"},
		{name: "behind utc", value: "2026-10-17", want: "2026-10-17"},
		{name: "two days ahead", value: "2026-10-20", wantErr: true},
		{name: "two days behind", value: "2026-10-16", wantErr: true},
		{name: "bad format", value: "18/10/2026", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDay(tt.value, now)
			if tt.wantErr {
				if !errors.Is(err, ErrBadRequest) {
					t.Errorf("expected ErrBadRequest, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Format(DayLayout) != tt.want {
				t.Errorf("ParseDay(%q) = %s, want %s", tt.value, got.Format(DayLayout), tt.want)
			}
		})
	}
}
