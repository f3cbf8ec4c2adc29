package pgdb

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
	"github.com/viniciuslidington/marketplace-database/internal/domain"
	"github.com/viniciuslidington/marketplace-database/internal/usecase"
	"github.com/viniciuslidington/marketplace-database/pkg/e"
	"github.com/viniciuslidington/marketplace-database/pkg/tr"
)

// OrderRepo implements the order repository on PostgreSQL. The write
// methods run on the transaction carried in the context; statement
// order matters because each insert depends on the id generated by the
// previous one.
type OrderRepo struct {
	pool *pgxpool.Pool
}

func NewOrderRepo(pool *pgxpool.Pool) *OrderRepo {
	return &OrderRepo{pool: pool}
}

// CreatePayment inserts the payment row and returns its generated id.
func (o *OrderRepo) CreatePayment(ctx context.Context, payment *domain.Payment) (int64, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO Pagamento (Metodo_Pagamento, Data, Valor, Status)
		VALUES ($1, $2, $3, $4)
		RETURNING ID_Pagamento
	`

	var id int64
	err = tx.QueryRow(ctx, query,
		payment.Method, payment.Date, payment.Amount, payment.Status,
	).Scan(&id)
	if err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	return id, nil
}

// CreateOrder inserts the order row and returns its generated id.
func (o *OrderRepo) CreateOrder(ctx context.Context, order *domain.Order) (int64, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO Pedido (Data, Status, ID_Comprador, ID_Endereco, ID_Pagamento)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ID_Pedido
	`

	var id int64
	err = tx.QueryRow(ctx, query,
		order.Date, order.Status, order.BuyerID, order.AddressID, order.PaymentID,
	).Scan(&id)
	if err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	return id, nil
}

// AddItem inserts one line item with its snapshotted unit price.
func (o *OrderRepo) AddItem(ctx context.Context, item *domain.OrderItem) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO ItemDoPedido (ID_Pedido, ID_Produto, Quantidade, PrecoNaCompra)
		VALUES ($1, $2, $3, $4)
	`

	if _, err := tx.Exec(ctx, query,
		item.OrderID, item.ProductID, item.Quantity, item.UnitPrice,
	); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// ListByBuyer returns a buyer's order history, newest first, with the
// payment summary and an aggregated product-name list per order.
func (o *OrderRepo) ListByBuyer(ctx context.Context, buyerID int64) ([]usecase.BuyerOrder, error) {
	query := `
		SELECT
			ped.ID_Pedido,
			ped.Data,
			ped.Status,
			pag.Valor,
			pag.Metodo_Pagamento,
			pag.Status,
			STRING_AGG(p.Nome, ', ')
		FROM Pedido ped
		JOIN Pagamento pag ON ped.ID_Pagamento = pag.ID_Pagamento
		JOIN ItemDoPedido idp ON ped.ID_Pedido = idp.ID_Pedido
		JOIN Produto p ON idp.ID_Produto = p.ID_Produto
		WHERE ped.ID_Comprador = $1
		GROUP BY ped.ID_Pedido, ped.Data, ped.Status, pag.Valor, pag.Metodo_Pagamento, pag.Status
		ORDER BY ped.Data DESC
	`

	rows, err := o.pool.Query(ctx, query, buyerID)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]usecase.BuyerOrder, 0)
	for rows.Next() {
		var order usecase.BuyerOrder
		if err := rows.Scan(
			&order.OrderID, &order.Date, &order.Status,
			&order.Amount, &order.PaymentMethod, &order.PaymentStatus, &order.Products,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, order)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}
