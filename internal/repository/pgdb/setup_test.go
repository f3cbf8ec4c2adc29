package pgdb

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupTestDB starts a throwaway postgres container and applies the
// schema migrations. Skipped under -short.
func setupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:14-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "testuser",
			"POSTGRES_PASSWORD": "testpass",
			"POSTGRES_DB":       "testdb",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("failed to get container host: %v", err)
	}

	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		t.Fatalf("failed to get container port: %v", err)
	}

	dsn := fmt.Sprintf("postgres://testuser:testpass@%s:%s/testdb?sslmode=disable", host, port.Port())

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("failed to connect to database: %v", err)
	}
	t.Cleanup(pool.Close)

	if err := applyMigrations(ctx, pool); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	return pool
}

func applyMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	migrationDir := "../../../db/migrations"
	files, err := os.ReadDir(migrationDir)
	if err != nil {
		return fmt.Errorf("read migration directory: %w", err)
	}

	var names []string
	for _, file := range files {
		if !file.IsDir() && strings.HasSuffix(file.Name(), ".up.sql") {
			names = append(names, file.Name())
		}
	}
	sort.Strings(names)

	for _, name := range names {
		content, err := os.ReadFile(filepath.Join(migrationDir, name))
		if err != nil {
			return fmt.Errorf("read migration %s: %w", name, err)
		}
		if _, err := pool.Exec(ctx, string(content)); err != nil {
			return fmt.Errorf("execute migration %s: %w", name, err)
		}
	}

	return nil
}

type fixture struct {
	buyerID   int64
	addressID int64
	sellerID  int64
}

// seedMarketplace inserts one buyer with an address and one seller.
func seedMarketplace(t *testing.T, pool *pgxpool.Pool) fixture {
	t.Helper()
	ctx := context.Background()

	var f fixture

	err := pool.QueryRow(ctx, `
		INSERT INTO Usuario (Nome, Email, Senha, Telefone)
		VALUES ('Maria Silva', 'maria@exemplo.com', 'hash', '81999990000')
		RETURNING ID_Usuario
	`).Scan(&f.buyerID)
	if err != nil {
		t.Fatalf("seed buyer user: %v", err)
	}

	if _, err := pool.Exec(ctx, `INSERT INTO Comprador (ID_Usuario, CPF) VALUES ($1, '123.456.789-00')`, f.buyerID); err != nil {
		t.Fatalf("seed buyer: %v", err)
	}

	err = pool.QueryRow(ctx, `
		INSERT INTO Endereco (ID_Comprador, Rua, Numero, Cidade, Estado, CEP)
		VALUES ($1, 'Rua das Flores', '100', 'Recife', 'PE', '50000-000')
		RETURNING ID_Endereco
	`, f.buyerID).Scan(&f.addressID)
	if err != nil {
		t.Fatalf("seed address: %v", err)
	}

	err = pool.QueryRow(ctx, `
		INSERT INTO Usuario (Nome, Email, Senha)
		VALUES ('João Lojista', 'joao@loja.com', 'hash')
		RETURNING ID_Usuario
	`).Scan(&f.sellerID)
	if err != nil {
		t.Fatalf("seed seller user: %v", err)
	}

	if _, err := pool.Exec(ctx, `INSERT INTO Vendedor (ID_Usuario, Nome_Loja, CNPJ) VALUES ($1, 'TechStore', '11.222.333/0001-44')`, f.sellerID); err != nil {
		t.Fatalf("seed seller: %v", err)
	}

	return f
}

func seedProduct(t *testing.T, pool *pgxpool.Pool, sellerID int64, name string, priceStr string, stock int) int64 {
	t.Helper()

	var id int64
	err := pool.QueryRow(context.Background(), `
		INSERT INTO Produto (Nome, Descricao, Preco, Estoque, ID_Vendedor)
		VALUES ($1, '', $2, $3, $4)
		RETURNING ID_Produto
	`, name, decimal.RequireFromString(priceStr), stock, sellerID).Scan(&id)
	if err != nil {
		t.Fatalf("seed product %s: %v", name, err)
	}

	return id
}

func productStock(t *testing.T, pool *pgxpool.Pool, productID int64) int {
	t.Helper()

	var stock int
	if err := pool.QueryRow(context.Background(), `SELECT Estoque FROM Produto WHERE ID_Produto = $1`, productID).Scan(&stock); err != nil {
		t.Fatalf("read stock: %v", err)
	}

	return stock
}

func countRows(t *testing.T, pool *pgxpool.Pool, table string) int {
	t.Helper()

	var n int
	if err := pool.QueryRow(context.Background(), "SELECT COUNT(*) FROM "+table).Scan(&n); err != nil {
		t.Fatalf("count %s: %v", table, err)
	}

	return n
}
