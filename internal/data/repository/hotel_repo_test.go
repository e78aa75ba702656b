package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// fakeRows feeds canned rows to a repository and can surface a
// deferred error the way a connection dropped mid-iteration would.
type fakeRows struct {
	data [][]any
	pos  int
	err  error
}

func (f *fakeRows) Close()                                       {}
func (f *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (f *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (f *fakeRows) Values() ([]any, error)                       { return nil, nil }
func (f *fakeRows) RawValues() [][]byte                          { return nil }
func (f *fakeRows) Conn() *pgx.Conn                              { return nil }

func (f *fakeRows) Next() bool {
	if f.pos >= len(f.data) {
		return false
	}
	f.pos++
	return true
}

func (f *fakeRows) Err() error {
	if f.pos >= len(f.data) {
		return f.err
	}
	return nil
}

func (f *fakeRows) Scan(dest ...any) error {
	row := f.data[f.pos-1]
	for i, d := range dest {
		switch d := d.(type) {
		case *int64:
			*d = row[i].(int64)
		case *int:
			*d = row[i].(int)
		case *string:
			*d = row[i].(string)
		case *time.Time:
			*d = row[i].(time.Time)
		default:
			return errors.New("unsupported scan destination")
		}
	}
	return nil
}

// fakeQuerier serves a single Query result; nothing else is expected.
type fakeQuerier struct {
	rows pgx.Rows
}

func (f *fakeQuerier) Query(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
	return f.rows, nil
}

func (f *fakeQuerier) QueryRow(_ context.Context, _ string, _ ...any) pgx.Row {
	panic("unexpected QueryRow")
}

func (f *fakeQuerier) Exec(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
	panic("unexpected Exec")
}

func (f *fakeQuerier) Begin(_ context.Context) (pgx.Tx, error) {
	panic("unexpected Begin")
}

func (f *fakeQuerier) Ping(_ context.Context) error { return nil }
func (f *fakeQuerier) Close()                       {}

func TestHotelRepositoryFindAll(t *testing.T) {
	now := time.Now()
	hotelRow := []any{int64(1), "Driftwood", "driftwood.png", now, now}

	t.Run("returns all hotels", func(t *testing.T) {
		db := &fakeQuerier{rows: &fakeRows{data: [][]any{hotelRow}}}
		repo := NewHotelRepository(db, zap.NewNop())

		hotels, err := repo.FindAll(context.Background())
		if err != nil {
			t.Fatalf("FindAll() error = %v", err)
		}
		if len(hotels) != 1 || hotels[0].Name != "Driftwood" {
			t.Fatalf("FindAll() = %+v, want one hotel named Driftwood", hotels)
		}
	})

	t.Run("surfaces iteration error", func(t *testing.T) {
		iterErr := errors.New("connection reset")
		db := &fakeQuerier{rows: &fakeRows{data: [][]any{hotelRow}, err: iterErr}}
		repo := NewHotelRepository(db, zap.NewNop())

		hotels, err := repo.FindAll(context.Background())
		if !errors.Is(err, iterErr) {
			t.Fatalf("FindAll() error = %v, want wrapped %v", err, iterErr)
		}
		if hotels != nil {
			t.Fatalf("FindAll() = %+v, want nil on iteration error", hotels)
		}
	})
}

func TestHotelRepositoryFindRoomsByHotelID(t *testing.T) {
	now := time.Now()
	roomRow := []any{int64(10), "101", 3, int64(1), now, now}

	t.Run("returns rooms", func(t *testing.T) {
		db := &fakeQuerier{rows: &fakeRows{data: [][]any{roomRow}}}
		repo := NewHotelRepository(db, zap.NewNop())

		rooms, err := repo.FindRoomsByHotelID(context.Background(), 1)
		if err != nil {
			t.Fatalf("FindRoomsByHotelID() error = %v", err)
		}
		if len(rooms) != 1 || rooms[0].Capacity != 3 {
			t.Fatalf("FindRoomsByHotelID() = %+v, want one room with capacity 3", rooms)
		}
	})

	t.Run("surfaces iteration error", func(t *testing.T) {
		iterErr := errors.New("connection reset")
		db := &fakeQuerier{rows: &fakeRows{data: [][]any{roomRow}, err: iterErr}}
		repo := NewHotelRepository(db, zap.NewNop())

		rooms, err := repo.FindRoomsByHotelID(context.Background(), 1)
		if !errors.Is(err, iterErr) {
			t.Fatalf("FindRoomsByHotelID() error = %v, want wrapped %v", err, iterErr)
		}
		if rooms != nil {
			t.Fatalf("FindRoomsByHotelID() = %+v, want nil on iteration error", rooms)
		}
	})
}
