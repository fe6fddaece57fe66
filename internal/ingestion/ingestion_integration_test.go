//go:build integration
// +build integration

package ingestion

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/guttosm/b3charts/internal/storage"
	_ "github.com/lib/pq"
	goose "github.com/pressly/goose/v3"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startPostgres(t *testing.T) (dsn string, terminate func()) {
	t.Helper()
	ctx := context.Background()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_DB":       "b3charts",
			"POSTGRES_USER":     "postgres",
			"POSTGRES_PASSWORD": "postgres",
		},
		WaitingFor: wait.ForSQL("5432/tcp", "postgres", func(host string, port nat.Port) string {
			return fmt.Sprintf("host=%s port=%s user=postgres password=postgres dbname=b3charts sslmode=disable", host, port.Port())
		}).WithStartupTimeout(60 * time.Second),
	}

	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: req, Started: true})
	if err != nil {
		t.Fatalf("container start: %v", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("port: %v", err)
	}

	dsn = fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", "postgres", "postgres", host, port.Port(), "b3charts")
	terminate = func() { _ = container.Terminate(context.Background()) }
	return dsn, terminate
}

func openDB(t *testing.T, dsn string) *sql.DB {
	t.Helper()
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.Ping(); err != nil {
		t.Fatalf("ping: %v", err)
	}
	return db
}

func runMigrations(t *testing.T, db *sql.DB) {
	t.Helper()
	if err := goose.SetDialect("postgres"); err != nil {
		t.Fatalf("dialect: %v", err)
	}
	// migrations path relative to this test file (internal/ingestion → ../../db/migrations)
	path := filepath.Join("..", "..", "db", "migrations")
	if err := goose.Up(db, path); err != nil {
		t.Fatalf("migrate up: %v", err)
	}
}

const header = "DataReferencia;CodigoInstrumento;AcaoAtualizacao;PrecoNegocio;QuantidadeNegociada;HoraFechamento;CodigoIdentificadorNegocio;TipoSessaoPregao;DataNegocio;CodigoParticipanteComprador;CodigoParticipanteVendedor\n"

// writeInputFile writes one trade file for day with rows trades of TEST4, priced
// 10,00 / 11,00 / ... in increasing closing time, plus one VALE3 trade.
func writeInputFile(t *testing.T, dir string, day time.Time, rows int) {
	t.Helper()
	var b strings.Builder
	b.WriteString(header)
	ymd := day.Format("2006-01-02")
	for i := 0; i < rows; i++ {
		fmt.Fprintf(&b, "%s;TEST4;0;%d,00;%d;1000%02d000;%d;1;%s;B;S\n", ymd, 10+i, 100+i, i, i+1, ymd)
	}
	fmt.Fprintf(&b, "%s;VALE3;0;55,10;300;103000000;99;1;%s;B;S\n", ymd, ymd)

	name := day.Format(fileDateLayout) + fileSuffix
	if err := os.WriteFile(filepath.Join(dir, name), []byte(b.String()), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}
}

func TestIngestion_EndToEnd_ProcessDirectory(t *testing.T) {
	dsn, terminate := startPostgres(t)
	defer terminate()
	db := openDB(t, dsn)
	defer db.Close()
	runMigrations(t, db)

	tdir := t.TempDir()
	day := LastNBusinessDays(1, time.Now())[0]
	writeInputFile(t, tdir, day, 3)

	// a bar previously written through from the live feed for the same day
	if _, err := db.Exec(`INSERT INTO daily_bars (ticker, trade_date, open_price, high_price, low_price, close_price, volume)
		VALUES ('TEST4', $1, 1, 1, 1, 1, 1)`, day); err != nil {
		t.Fatalf("seed feed bar: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := ProcessDirectory(ctx, tdir, db, 1, 2, false); err != nil {
		t.Fatalf("ProcessDirectory: %v", err)
	}

	repo := storage.NewBarsRepository(db)
	bars, err := repo.GetBars(ctx, "TEST4", &day, &day)
	if err != nil {
		t.Fatalf("GetBars: %v", err)
	}
	if len(bars) != 1 {
		t.Fatalf("expected 1 daily bar, got %d", len(bars))
	}
	b := bars[0]
	if b.Open.String() != "10" || b.Close.String() != "12" || b.High.String() != "12" || b.Low.String() != "10" || b.Volume != 303 {
		t.Fatalf("unexpected bar %+v", b)
	}

	var rowCount int
	if err := db.QueryRow("SELECT row_count FROM ingestion_log WHERE file_date=$1", day).Scan(&rowCount); err != nil {
		t.Fatalf("check ingestion_log: %v", err)
	}
	if rowCount != 2 {
		t.Fatalf("expected 2 bars logged (TEST4, VALE3), got %d", rowCount)
	}

	// second run is a no-op, forced run reloads the same day
	if err := ProcessDirectory(ctx, tdir, db, 1, 1, false); err != nil {
		t.Fatalf("second run: %v", err)
	}
	if err := ProcessDirectory(ctx, tdir, db, 1, 1, true); err != nil {
		t.Fatalf("forced run: %v", err)
	}
	var cnt int
	if err := db.QueryRow("SELECT COUNT(*) FROM daily_bars WHERE trade_date=$1", day).Scan(&cnt); err != nil {
		t.Fatalf("count: %v", err)
	}
	if cnt != 2 {
		t.Fatalf("expected 2 bars after forced reload, got %d", cnt)
	}
}
