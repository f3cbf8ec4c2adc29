package pgdb

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
	"github.com/viniciuslidington/marketplace-database/internal/usecase"
	"github.com/viniciuslidington/marketplace-database/pkg/e"
)

// CategoryRepo implements category listing on PostgreSQL.
type CategoryRepo struct {
	pool *pgxpool.Pool
}

func NewCategoryRepo(pool *pgxpool.Pool) *CategoryRepo {
	return &CategoryRepo{pool: pool}
}

// List returns all categories with their product counts, by name.
func (c *CategoryRepo) List(ctx context.Context) ([]usecase.CategoryInfo, error) {
	query := `
		SELECT
			c.ID_Categoria,
			c.Nome,
			COALESCE(c.Descricao, ''),
			COUNT(pc.ID_Produto)
		FROM Categoria c
		LEFT JOIN Produto_Categoria pc ON c.ID_Categoria = pc.ID_Categoria
		GROUP BY c.ID_Categoria, c.Nome, c.Descricao
		ORDER BY c.Nome
	`

	rows, err := c.pool.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]usecase.CategoryInfo, 0)
	for rows.Next() {
		var cat usecase.CategoryInfo
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.Description, &cat.ProductCount); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, cat)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}
