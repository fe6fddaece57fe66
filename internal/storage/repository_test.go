package storage

import (
	"context"
	"database/sql/driver"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/guttosm/b3charts/internal/domain/models"
	"github.com/shopspring/decimal"
)

type dummyErr struct{}

func (dummyErr) Error() string { return "dummy" }

func newMockRepo(t *testing.T) (*barsRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	repo := &barsRepository{db: db}
	cleanup := func() { _ = db.Close() }
	return repo, mock, cleanup
}

func bar(day time.Time, o, h, l, c string, vol int64) models.Bar {
	return models.Bar{
		Date:   day,
		Open:   decimal.RequireFromString(o),
		High:   decimal.RequireFromString(h),
		Low:    decimal.RequireFromString(l),
		Close:  decimal.RequireFromString(c),
		Volume: vol,
	}
}

func TestGetBars_SQLMock(t *testing.T) {
	repo, mock, done := newMockRepo(t)
	defer done()

	selectRegex := regexp.MustCompile(`SELECT trade_date, open_price, high_price, low_price, close_price, volume\s+FROM daily_bars\s+WHERE (.+)\s+ORDER BY trade_date`)

	day := time.Date(2025, 9, 11, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 9, 12, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name  string
		start *time.Time
		end   *time.Time
		args  []driver.Value
		rows  int
	}{
		{name: "no bounds", args: []driver.Value{"TEST4"}, rows: 2},
		{name: "with start", start: &day, args: []driver.Value{"TEST4", day}, rows: 2},
		{name: "with range", start: &day, end: &day2, args: []driver.Value{"TEST4", day, day2}, rows: 2},
		{name: "only end", end: &day2, args: []driver.Value{"TEST4", day2}, rows: 1},
		{name: "empty", start: &day2, end: &day2, args: []driver.Value{"TEST4", day2, day2}, rows: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rows := sqlmock.NewRows([]string{"trade_date", "open_price", "high_price", "low_price", "close_price", "volume"})
			for i := 0; i < tc.rows; i++ {
				rows.AddRow(day.AddDate(0, 0, i), "10.50", "11.00", "10.00", "10.75", int64(100*(i+1)))
			}
			mock.ExpectQuery(selectRegex.String()).WithArgs(tc.args...).WillReturnRows(rows)

			got, err := repo.GetBars(context.Background(), "TEST4", tc.start, tc.end)
			if err != nil {
				t.Fatalf("GetBars: %v", err)
			}
			if len(got) != tc.rows {
				t.Fatalf("want %d bars, got %d", tc.rows, len(got))
			}
			for i, b := range got {
				if b.Index != i {
					t.Fatalf("bar %d has index %d", i, b.Index)
				}
				if b.Close.String() != "10.75" || b.Volume != int64(100*(i+1)) {
					t.Fatalf("unexpected bar %+v", b)
				}
			}

			if err := mock.ExpectationsWereMet(); err != nil {
				t.Fatalf("unmet expectations: %v", err)
			}
		})
	}
}

func TestGetBars_QueryError(t *testing.T) {
	repo, mock, done := newMockRepo(t)
	defer done()

	mock.ExpectQuery("SELECT trade_date").WillReturnError(dummyErr{})
	if _, err := repo.GetBars(context.Background(), "TEST4", nil, nil); err == nil {
		t.Fatalf("expected query error")
	}
}

func TestIngestionLog_SQLMock(t *testing.T) {
	repo, mock, done := newMockRepo(t)
	defer done()

	d := time.Date(2025, 9, 11, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM ingestion_log WHERE file_date = $1)")).
		WithArgs(d).WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	ok, err := repo.HasIngestionForDate(d)
	if err != nil || !ok {
		t.Fatalf("HasIngestionForDate: ok=%v err=%v", ok, err)
	}

	mock.ExpectExec(`INSERT INTO ingestion_log \(file_date, filename, row_count\)\s+VALUES \(\$1, \$2, \$3\)\s+ON CONFLICT \(file_date\)`).
		WithArgs(d, "11-09-2025_NEGOCIOSAVISTA.txt", 10).WillReturnResult(sqlmock.NewResult(1, 1))
	if err := repo.UpsertIngestionLog(d, "11-09-2025_NEGOCIOSAVISTA.txt", 10); err != nil {
		t.Fatalf("UpsertIngestionLog: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestHasIngestionForDate_Error(t *testing.T) {
	repo, mock, done := newMockRepo(t)
	defer done()

	mock.ExpectQuery("SELECT EXISTS").WillReturnError(dummyErr{})
	if ok, err := repo.HasIngestionForDate(time.Now()); err == nil || ok {
		t.Fatalf("expected error, got ok=%v err=%v", ok, err)
	}
}

func TestNewBarsRepository_Construct(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer func() { _ = db.Close() }()
	if r := NewBarsRepository(db); r == nil {
		t.Fatalf("expected non-nil repository")
	}
}

func TestUpsertBars_SQLMock(t *testing.T) {
	repo, mock, done := newMockRepo(t)
	defer done()

	d := time.Date(2025, 9, 11, 0, 0, 0, 0, time.UTC)
	bars := []models.Bar{
		bar(d, "10.5", "11", "10", "10.75", 100),
		bar(d.AddDate(0, 0, 1), "10.75", "12", "10.5", "11.9", 200),
	}

	mock.ExpectBegin()
	prep := mock.ExpectPrepare(`INSERT INTO daily_bars .+ ON CONFLICT \(ticker, trade_date\)`)
	prep.ExpectExec().WithArgs("TEST4", d, "10.5", "11", "10", "10.75", int64(100)).WillReturnResult(sqlmock.NewResult(0, 1))
	prep.ExpectExec().WithArgs("TEST4", d.AddDate(0, 0, 1), "10.75", "12", "10.5", "11.9", int64(200)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := repo.UpsertBars(context.Background(), "TEST4", bars); err != nil {
		t.Fatalf("UpsertBars: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpsertBars_RollbackOnError(t *testing.T) {
	repo, mock, done := newMockRepo(t)
	defer done()

	mock.ExpectBegin()
	prep := mock.ExpectPrepare("INSERT INTO daily_bars")
	prep.ExpectExec().WillReturnError(dummyErr{})
	mock.ExpectRollback()

	d := time.Date(2025, 9, 11, 0, 0, 0, 0, time.UTC)
	if err := repo.UpsertBars(context.Background(), "TEST4", []models.Bar{bar(d, "1", "1", "1", "1", 1)}); err == nil {
		t.Fatalf("expected exec error")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpsertBars_EmptyIsNoop(t *testing.T) {
	repo, mock, done := newMockRepo(t)
	defer done()

	if err := repo.UpsertBars(context.Background(), "TEST4", nil); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("no statements expected: %v", err)
	}
}

func TestReplaceBarsForDate_SQLMock(t *testing.T) {
	repo, mock, done := newMockRepo(t)
	defer done()

	d := time.Date(2025, 9, 11, 0, 0, 0, 0, time.UTC)
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("SET LOCAL synchronous_commit = OFF")).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM daily_bars WHERE trade_date = $1")).
		WithArgs(d).WillReturnResult(sqlmock.NewResult(0, 3))
	// pq.CopyIn is driver specific; sqlmock only sees a prepared statement and its execs.
	prep := mock.ExpectPrepare(".*")
	prep.ExpectExec().WillReturnResult(sqlmock.NewResult(0, 1))
	prep.ExpectExec().WillReturnResult(sqlmock.NewResult(0, 1))
	prep.ExpectExec().WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	bars := []models.DailyBar{
		{Ticker: "TEST4", Bar: bar(d, "10.5", "11", "10", "10.75", 100)},
		{Ticker: "OTHR3", Bar: bar(d, "50", "51", "49", "50.5", 7)},
	}
	if err := repo.ReplaceBarsForDate(d, bars); err != nil {
		t.Fatalf("ReplaceBarsForDate: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

// Every failure after Begin must roll back, so the delete never lands without the new bars.
func TestReplaceBarsForDate_RollsBackOnError(t *testing.T) {
	d := time.Date(2025, 9, 11, 0, 0, 0, 0, time.UTC)
	setLocal := func(mock sqlmock.Sqlmock) {
		mock.ExpectBegin()
		mock.ExpectExec("SET LOCAL").WillReturnResult(sqlmock.NewResult(0, 0))
	}
	deleted := func(mock sqlmock.Sqlmock) {
		setLocal(mock)
		mock.ExpectExec("DELETE FROM daily_bars").WithArgs(d).WillReturnResult(sqlmock.NewResult(0, 3))
	}

	cases := []struct {
		name     string
		setup    func(mock sqlmock.Sqlmock)
		rollback bool
	}{
		{
			name: "begin",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin().WillReturnError(dummyErr{})
			},
		},
		{
			name: "set local",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("SET LOCAL").WillReturnError(dummyErr{})
			},
			rollback: true,
		},
		{
			name: "delete",
			setup: func(mock sqlmock.Sqlmock) {
				setLocal(mock)
				mock.ExpectExec("DELETE FROM daily_bars").WillReturnError(dummyErr{})
			},
			rollback: true,
		},
		{
			name: "prepare copy",
			setup: func(mock sqlmock.Sqlmock) {
				deleted(mock)
				mock.ExpectPrepare(".*").WillReturnError(dummyErr{})
			},
			rollback: true,
		},
		{
			name: "row exec",
			setup: func(mock sqlmock.Sqlmock) {
				deleted(mock)
				mock.ExpectPrepare(".*").ExpectExec().WillReturnError(dummyErr{})
			},
			rollback: true,
		},
		{
			name: "final exec",
			setup: func(mock sqlmock.Sqlmock) {
				deleted(mock)
				prep := mock.ExpectPrepare(".*")
				prep.ExpectExec().WillReturnResult(sqlmock.NewResult(0, 1))
				prep.ExpectExec().WillReturnError(dummyErr{})
			},
			rollback: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, done := newMockRepo(t)
			defer done()
			tc.setup(mock)
			if tc.rollback {
				mock.ExpectRollback()
			}
			if err := repo.ReplaceBarsForDate(d, []models.DailyBar{{Ticker: "X", Bar: bar(d, "1", "1", "1", "1", 1)}}); err == nil {
				t.Fatalf("expected error on %s", tc.name)
			}
			if err := mock.ExpectationsWereMet(); err != nil {
				t.Fatalf("unmet expectations on %s: %v", tc.name, err)
			}
		})
	}
}
