package infra

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
)

type recordingDB struct {
	queries []string
	execErr error
}

func (d *recordingDB) Exec(_ context.Context, query string, _ ...any) (pgconn.CommandTag, error) {
	d.queries = append(d.queries, query)
	return pgconn.NewCommandTag("UPDATE 1"), d.execErr
}

func (d *recordingDB) QueryRow(_ context.Context, query string, _ ...any) pgx.Row {
	d.queries = append(d.queries, query)
	return errorRow{err: pgx.ErrNoRows}
}

func (d *recordingDB) Query(_ context.Context, query string, _ ...any) (pgx.Rows, error) {
	d.queries = append(d.queries, query)
	return nil, errors.New("not implemented")
}

const markedQuery = "--sql 0b7d9a52-3c1e-4f0a-9a61-2f7e8c4d5b10\nselect 1;"

func TestExtractMarker(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		marker string
		ok     bool
	}{
		{"valid", markedQuery, "0b7d9a52-3c1e-4f0a-9a61-2f7e8c4d5b10", true},
		{"leading whitespace", "\n  " + markedQuery, "0b7d9a52-3c1e-4f0a-9a61-2f7e8c4d5b10", true},
		{"missing", "select 1;", "", false},
		{"bad uuid", "--sql not-a-uuid\nselect 1;", "", false},
		{"empty", "", "", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			marker, body, err := ExtractMarker(tc.query)
			if tc.ok != (err == nil) {
				t.Fatalf("err = %v, want ok=%v", err, tc.ok)
			}
			if !tc.ok {
				if !errors.Is(err, ErrMissingMarker) {
					t.Fatalf("err = %v, want ErrMissingMarker", err)
				}
				return
			}
			if marker != tc.marker || strings.TrimSpace(body) != "select 1;" {
				t.Fatalf("marker=%q body=%q", marker, body)
			}
		})
	}
}

func TestSQLRunnerStripsMarker(t *testing.T) {
	db := &recordingDB{}
	var buf bytes.Buffer
	runner := NewSQLRunner(db, zerolog.New(&buf).Level(zerolog.DebugLevel))

	if _, err := runner.Exec(context.Background(), markedQuery); err != nil {
		t.Fatalf("Exec: %v", err)
	}
	if len(db.queries) != 1 || strings.Contains(db.queries[0], "--sql") {
		t.Fatalf("marker should be stripped before execution: %q", db.queries)
	}
	if !strings.Contains(buf.String(), "0b7d9a52-3c1e-4f0a-9a61-2f7e8c4d5b10") {
		t.Fatalf("marker not logged: %s", buf.String())
	}
}

func TestSQLRunnerRejectsUnmarkedQueries(t *testing.T) {
	db := &recordingDB{}
	runner := NewSQLRunner(db, zerolog.Nop())

	if _, err := runner.Exec(context.Background(), "delete from prompts"); !errors.Is(err, ErrMissingMarker) {
		t.Fatalf("Exec err = %v", err)
	}
	if err := runner.QueryRow(context.Background(), "select 1").Scan(); !errors.Is(err, ErrMissingMarker) {
		t.Fatalf("QueryRow err = %v", err)
	}
	if _, err := runner.Query(context.Background(), "select 1"); !errors.Is(err, ErrMissingMarker) {
		t.Fatalf("Query err = %v", err)
	}
	if len(db.queries) != 0 {
		t.Fatalf("unmarked queries must not reach the database: %q", db.queries)
	}
}

func TestSQLRunnerLogsExecFailure(t *testing.T) {
	db := &recordingDB{execErr: errors.New("boom")}
	var buf bytes.Buffer
	runner := NewSQLRunner(db, zerolog.New(&buf))

	if _, err := runner.Exec(context.Background(), markedQuery); err == nil {
		t.Fatalf("expected exec error")
	}
	if !strings.Contains(buf.String(), "exec failed") {
		t.Fatalf("failure not logged: %s", buf.String())
	}
}
