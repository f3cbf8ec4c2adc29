package pgdb

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
	"github.com/viniciuslidington/marketplace-database/internal/usecase"
	"github.com/viniciuslidington/marketplace-database/pkg/e"
	"github.com/viniciuslidington/marketplace-database/pkg/tr"
)

// ProductRepo implements the product repository on PostgreSQL.
type ProductRepo struct {
	pool *pgxpool.Pool
}

func NewProductRepo(pool *pgxpool.Pool) *ProductRepo {
	return &ProductRepo{pool: pool}
}

// List returns catalog rows matching the filter, cheapest first.
func (p *ProductRepo) List(ctx context.Context, filter usecase.ProductFilter) ([]usecase.ProductSummary, error) {
	query := `
		SELECT
			p.ID_Produto,
			p.Nome,
			p.Descricao,
			p.Preco,
			p.Estoque,
			v.Nome_Loja,
			COALESCE(c.Nome, '')
		FROM Produto p
		JOIN Vendedor v ON p.ID_Vendedor = v.ID_Usuario
		LEFT JOIN Produto_Categoria pc ON p.ID_Produto = pc.ID_Produto
		LEFT JOIN Categoria c ON pc.ID_Categoria = c.ID_Categoria
	`

	var conditions []string
	var args []any

	if filter.CategoryID != nil {
		args = append(args, *filter.CategoryID)
		conditions = append(conditions, fmt.Sprintf("c.ID_Categoria = $%d", len(args)))
	}
	if filter.PriceMin != nil {
		args = append(args, *filter.PriceMin)
		conditions = append(conditions, fmt.Sprintf("p.Preco >= $%d", len(args)))
	}
	if filter.PriceMax != nil {
		args = append(args, *filter.PriceMax)
		conditions = append(conditions, fmt.Sprintf("p.Preco <= $%d", len(args)))
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	args = append(args, filter.Limit)
	query += fmt.Sprintf(" ORDER BY p.Preco LIMIT $%d", len(args))

	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]usecase.ProductSummary, 0)
	for rows.Next() {
		var product usecase.ProductSummary
		if err := rows.Scan(
			&product.ID, &product.Name, &product.Description,
			&product.Price, &product.Stock, &product.StoreName, &product.Category,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, product)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}

// GetByID returns one product with its seller details.
func (p *ProductRepo) GetByID(ctx context.Context, id int64) (*usecase.ProductDetail, error) {
	query := `
		SELECT
			p.ID_Produto,
			p.Nome,
			p.Descricao,
			p.Preco,
			p.Estoque,
			v.Nome_Loja,
			u.Nome,
			u.Email
		FROM Produto p
		JOIN Vendedor v ON p.ID_Vendedor = v.ID_Usuario
		JOIN Usuario u ON v.ID_Usuario = u.ID_Usuario
		WHERE p.ID_Produto = $1
	`

	var product usecase.ProductDetail
	err := p.pool.QueryRow(ctx, query, id).Scan(
		&product.ID, &product.Name, &product.Description,
		&product.Price, &product.Stock,
		&product.StoreName, &product.SellerName, &product.SellerEmail,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.ErrProductNotFound
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &product, nil
}

// DecrementStock subtracts quantity from the product's stock within
// the order transaction. No availability check is made; the row-level
// lock taken by the UPDATE serializes concurrent decrements.
func (p *ProductRepo) DecrementStock(ctx context.Context, productID int64, quantity int) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	query := `UPDATE Produto SET Estoque = Estoque - $1 WHERE ID_Produto = $2`

	if _, err := tx.Exec(ctx, query, quantity, productID); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}
