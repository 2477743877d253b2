// README: AI-usage module tests (lazy reset and quota boundary logic).
package aiusage

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"ibadah/internal/types"
)

// fakeStore mimics the SQL semantics of Store for one month.
type fakeStore struct {
	rows map[types.ID]int
}

func (f *fakeStore) UseToken(_ context.Context, uid types.ID) error {
	n, ok := f.rows[uid]
	if !ok || n <= 0 {
		return ErrInsufficientTokens
	}
	f.rows[uid] = n - 1
	return nil
}

func (f *fakeStore) EnsureUser(_ context.Context, uid types.ID) error {
	if _, ok := f.rows[uid]; !ok {
		f.rows[uid] = DefaultTokens
	}
	return nil
}

func (f *fakeStore) Remaining(_ context.Context, uid types.ID) (int, error) {
	n, ok := f.rows[uid]
	if !ok {
		return DefaultTokens, nil
	}
	return n, nil
}

func TestServiceUseToken_NewUserInitialised(t *testing.T) {
	store := &fakeStore{rows: map[types.ID]int{}}
	svc := &Service{store: store}

	if err := svc.UseToken(context.Background(), "u1"); err != nil {
		t.Fatalf("UseToken for new user: %v", err)
	}
	if got := store.rows["u1"]; got != DefaultTokens-1 {
		t.Fatalf("expected %d tokens remaining, got %d", DefaultTokens-1, got)
	}
}

func TestServiceUseToken_ExhaustedStaysExhausted(t *testing.T) {
	store := &fakeStore{rows: map[types.ID]int{"u1": 0}}
	svc := &Service{store: store}

	if err := svc.UseToken(context.Background(), "u1"); err != ErrInsufficientTokens {
		t.Fatalf("expected ErrInsufficientTokens, got %v", err)
	}
	if got := store.rows["u1"]; got != 0 {
		t.Errorf("EnsureUser must not refill an existing row, got %d", got)
	}
}

// TestStore_Postgres covers the SQL: lazy monthly reset, quota boundary and
// first use. It skips when IBADAH_DB_DSN is not set.
func TestStore_Postgres(t *testing.T) {
	dsn := os.Getenv("IBADAH_DB_DSN")
	if dsn == "" {
		t.Skip("IBADAH_DB_DSN not set; skipping DB-backed tests")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	t.Cleanup(db.Close)

	store := NewStore(db)
	if err := store.EnsureSchema(ctx); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}
	svc := NewService(store)

	prefix := fmt.Sprintf("t%d_", time.Now().UnixNano())
	t.Cleanup(func() {
		_, _ = db.Exec(context.Background(), "DELETE FROM ai_usage WHERE uid LIKE $1", prefix+"%")
	})
	uid := func(name string) types.ID { return types.ID(prefix + name) }

	t.Run("cross month reset", func(t *testing.T) {
		if _, err := db.Exec(ctx, "INSERT INTO ai_usage VALUES ($1, 0, '2000-01')", string(uid("reset"))); err != nil {
			t.Fatalf("seed: %v", err)
		}
		if err := svc.UseToken(ctx, uid("reset")); err != nil {
			t.Fatalf("UseToken after cross-month reset: %v", err)
		}
		if got, _ := svc.Remaining(ctx, uid("reset")); got != DefaultTokens-1 {
			t.Fatalf("expected %d tokens remaining, got %d", DefaultTokens-1, got)
		}
	})

	t.Run("exhausted this month", func(t *testing.T) {
		if _, err := db.Exec(ctx, "INSERT INTO ai_usage VALUES ($1, 0, TO_CHAR(NOW() AT TIME ZONE 'UTC', 'YYYY-MM'))", string(uid("zero"))); err != nil {
			t.Fatalf("seed: %v", err)
		}
		if err := svc.UseToken(ctx, uid("zero")); err != ErrInsufficientTokens {
			t.Fatalf("expected ErrInsufficientTokens, got %v", err)
		}
	})

	t.Run("new user", func(t *testing.T) {
		if got, _ := svc.Remaining(ctx, uid("new")); got != DefaultTokens {
			t.Fatalf("expected full allowance before first use, got %d", got)
		}
		if err := svc.UseToken(ctx, uid("new")); err != nil {
			t.Fatalf("UseToken for new user: %v", err)
		}
		if got, _ := svc.Remaining(ctx, uid("new")); got != DefaultTokens-1 {
			t.Fatalf("expected %d tokens remaining after first use, got %d", DefaultTokens-1, got)
		}
	})
}
