package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	database "cloud.google.com/go/spanner/admin/database/apiv1"
	databasepb "cloud.google.com/go/spanner/admin/database/apiv1/databasepb"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/murkotick/bookstore-catalog-service/internal/config"
)

// Applies the schema for the configured store.
//
// Spanner (emulator):
//
//	SPANNER_EMULATOR_HOST=localhost:9010
//	SPANNER_DATABASE=projects/test-project/instances/emulator-instance/databases/catalog
//	go run ./cmd/migrate
//
// Postgres runs through goose and also accepts -command down|status:
//
//	CATALOG_STORE=postgres POSTGRES_DSN=postgres://... go run ./cmd/migrate -command up
func main() {
	command := flag.String("command", "up", "Postgres migration command: up, down, status")
	flag.Parse()

	config.LoadEnvFiles()
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	switch cfg.Store.Driver {
	case config.StoreSpanner:
		if err := migrateSpanner(ctx, cfg.Spanner.Database, filepath.Join(cfg.Migrations.Dir, "spanner")); err != nil {
			log.Fatalf("spanner migrate: %v", err)
		}
	case config.StorePostgres:
		if err := migratePostgres(ctx, cfg.Postgres.DSN, filepath.Join(cfg.Migrations.Dir, "postgres"), *command); err != nil {
			log.Fatalf("postgres migrate: %v", err)
		}
	}
}

func migrateSpanner(ctx context.Context, db, dir string) error {
	if db == "" {
		return fmt.Errorf("SPANNER_DATABASE is required")
	}

	stmts, err := readDDLDir(dir)
	if err != nil {
		return fmt.Errorf("read DDL: %w", err)
	}
	if len(stmts) == 0 {
		return fmt.Errorf("no DDL statements found in %s", dir)
	}

	admin, err := database.NewDatabaseAdminClient(ctx)
	if err != nil {
		return fmt.Errorf("database admin client: %w", err)
	}
	defer admin.Close()

	op, err := admin.UpdateDatabaseDdl(ctx, &databasepb.UpdateDatabaseDdlRequest{
		Database:   db,
		Statements: stmts,
	})
	if err != nil {
		return fmt.Errorf("UpdateDatabaseDdl: %w", err)
	}
	if err := op.Wait(ctx); err != nil {
		return fmt.Errorf("UpdateDatabaseDdl wait: %w", err)
	}

	fmt.Printf("Applied %d DDL statements to %s\n", len(stmts), db)
	return nil
}

func migratePostgres(ctx context.Context, dsn, dir, command string) error {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer pool.Close()

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return runGoose(ctx, db, dir, command)
}

func runGoose(ctx context.Context, db *sql.DB, dir, command string) error {
	switch command {
	case "up":
		if err := goose.UpContext(ctx, db, dir); err != nil {
			return err
		}
		fmt.Println("Migrations applied successfully")
	case "down":
		if err := goose.DownContext(ctx, db, dir); err != nil {
			return err
		}
		fmt.Println("Migrations rolled back successfully")
	case "status":
		return goose.StatusContext(ctx, db, dir)
	default:
		return fmt.Errorf("unknown command %q, use up, down or status", command)
	}
	return nil
}

// readDDLDir reads every .sql file of dir in name order.
func readDDLDir(dir string) ([]string, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.sql"))
	if err != nil {
		return nil, err
	}
	sort.Strings(files)

	var out []string
	for _, f := range files {
		stmts, err := readDDLStatements(f)
		if err != nil {
			return nil, err
		}
		out = append(out, stmts...)
	}
	return out, nil
}

func readDDLStatements(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return splitDDL(string(b)), nil
}

// splitDDL splits on ";" and drops empty statements and "--" comment lines.
func splitDDL(ddl string) []string {
	ddl = strings.ReplaceAll(ddl, "\r\n", "\n")

	parts := strings.Split(ddl, ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		lines := strings.Split(p, "\n")
		kept := lines[:0]
		for _, l := range lines {
			if strings.HasPrefix(strings.TrimSpace(l), "--") {
				continue
			}
			kept = append(kept, l)
		}
		stmt := strings.TrimSpace(strings.Join(kept, "\n"))
		if stmt == "" {
			continue
		}
		out = append(out, stmt)
	}
	return out
}
