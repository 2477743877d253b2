package ibadah

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"ibadah/internal/types"
)

// Store handles daily_logs persistence.
type Store struct {
	db *pgxpool.Pool
}

// NewStore returns a Store backed by the given connection pool.
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// EnsureSchema creates the daily_logs table if it does not exist.
func (s *Store) EnsureSchema(ctx context.Context) error {
	_, err := s.db.Exec(ctx, Schema)
	return err
}

// Ensure inserts a zeroed row for (uid, day). Existing rows are left alone.
func (s *Store) Ensure(ctx context.Context, uid types.ID, day string) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO daily_logs (uid, day)
		VALUES ($1, $2::date)
		ON CONFLICT (uid, day) DO NOTHING
	`, string(uid), day)
	return err
}

// Add increments the counters of (uid, day), creating the row when missing.
func (s *Store) Add(ctx context.Context, uid types.ID, day string, d Delta) (DailyLog, error) {
	row := s.db.QueryRow(ctx, `
		INSERT INTO daily_logs (uid, day, prayers, quran_verses, dhikr_count, updated_at)
		VALUES ($1, $2::date, $3, $4, $5, now())
		ON CONFLICT (uid, day) DO UPDATE SET
			prayers      = daily_logs.prayers + EXCLUDED.prayers,
			quran_verses = daily_logs.quran_verses + EXCLUDED.quran_verses,
			dhikr_count  = daily_logs.dhikr_count + EXCLUDED.dhikr_count,
			updated_at   = now()
		RETURNING uid, day, prayers, quran_verses, dhikr_count, updated_at
	`, string(uid), day, d.Prayers, d.QuranVerses, d.DhikrCount)
	return scanLog(row)
}

// Get returns the log of (uid, day) or ErrNotFound.
func (s *Store) Get(ctx context.Context, uid types.ID, day string) (DailyLog, error) {
	row := s.db.QueryRow(ctx, `
		SELECT uid, day, prayers, quran_verses, dhikr_count, updated_at
		FROM daily_logs
		WHERE uid = $1 AND day = $2::date
	`, string(uid), day)
	l, err := scanLog(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return DailyLog{}, ErrNotFound
	}
	return l, err
}

// Range returns the logs of uid with from <= day <= to, oldest first.
func (s *Store) Range(ctx context.Context, uid types.ID, from, to string) ([]DailyLog, error) {
	rows, err := s.db.Query(ctx, `
		SELECT uid, day, prayers, quran_verses, dhikr_count, updated_at
		FROM daily_logs
		WHERE uid = $1 AND day BETWEEN $2::date AND $3::date
		ORDER BY day ASC
	`, string(uid), from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []DailyLog
	for rows.Next() {
		l, err := scanLog(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func scanLog(row pgx.Row) (DailyLog, error) {
	var (
		l   DailyLog
		uid string
		day time.Time
	)
	if err := row.Scan(&uid, &day, &l.Prayers, &l.QuranVerses, &l.DhikrCount, &l.UpdatedAt); err != nil {
		return DailyLog{}, err
	}
	l.UserID = types.ID(uid)
	l.Day = day.Format(dayLayout)
	return l, nil
}
