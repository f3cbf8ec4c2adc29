package pgdb

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
	"github.com/viniciuslidington/marketplace-database/internal/domain"
	"github.com/viniciuslidington/marketplace-database/pkg/e"
)

// BuyerRepo implements buyer and address lookups on PostgreSQL.
type BuyerRepo struct {
	pool *pgxpool.Pool
}

func NewBuyerRepo(pool *pgxpool.Pool) *BuyerRepo {
	return &BuyerRepo{pool: pool}
}

func (b *BuyerRepo) GetByEmail(ctx context.Context, email string) (*domain.Buyer, error) {
	query := `
		SELECT
			u.ID_Usuario,
			u.Nome,
			u.Email,
			COALESCE(u.Telefone, ''),
			c.CPF
		FROM Usuario u
		JOIN Comprador c ON u.ID_Usuario = c.ID_Usuario
		WHERE u.Email = $1
	`

	var buyer domain.Buyer
	err := b.pool.QueryRow(ctx, query, email).Scan(
		&buyer.ID, &buyer.Name, &buyer.Email, &buyer.Phone, &buyer.CPF,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.ErrBuyerNotFound
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &buyer, nil
}

func (b *BuyerRepo) ListAddresses(ctx context.Context, buyerID int64) ([]domain.Address, error) {
	query := `
		SELECT
			ID_Endereco,
			ID_Comprador,
			Rua,
			Numero,
			COALESCE(Complemento, ''),
			Cidade,
			Estado,
			CEP
		FROM Endereco
		WHERE ID_Comprador = $1
		ORDER BY ID_Endereco
	`

	rows, err := b.pool.Query(ctx, query, buyerID)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]domain.Address, 0)
	for rows.Next() {
		var addr domain.Address
		if err := rows.Scan(
			&addr.ID, &addr.BuyerID, &addr.Street, &addr.Number,
			&addr.Complement, &addr.City, &addr.State, &addr.PostalCode,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, addr)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}
