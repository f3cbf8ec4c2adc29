package pgdb

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
	"github.com/viniciuslidington/marketplace-database/internal/domain"
	"github.com/viniciuslidington/marketplace-database/internal/usecase"
	"github.com/viniciuslidington/marketplace-database/pkg/e"
)

// ReportRepo runs the sales and inventory aggregations on PostgreSQL.
// Revenue reports only count orders whose status is exactly
// "entregue"; the payment summary only counts approved payments.
type ReportRepo struct {
	pool *pgxpool.Pool
}

func NewReportRepo(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// TopSellingProducts ranks products by units sold in delivered orders.
func (r *ReportRepo) TopSellingProducts(ctx context.Context, limit int) ([]usecase.TopProduct, error) {
	query := `
		SELECT
			p.Nome,
			v.Nome_Loja,
			SUM(idp.Quantidade),
			SUM(idp.Quantidade * idp.PrecoNaCompra),
			COUNT(DISTINCT idp.ID_Pedido)
		FROM Produto p
		JOIN ItemDoPedido idp ON p.ID_Produto = idp.ID_Produto
		JOIN Pedido ped ON idp.ID_Pedido = ped.ID_Pedido
		JOIN Vendedor v ON p.ID_Vendedor = v.ID_Usuario
		WHERE ped.Status = $1
		GROUP BY p.ID_Produto, p.Nome, v.Nome_Loja
		ORDER BY SUM(idp.Quantidade) DESC
		LIMIT $2
	`

	rows, err := r.pool.Query(ctx, query, domain.OrderStatusDelivered, limit)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]usecase.TopProduct, 0)
	for rows.Next() {
		var row usecase.TopProduct
		if err := rows.Scan(
			&row.ProductName, &row.StoreName,
			&row.QuantitySold, &row.TotalRevenue, &row.OrderCount,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}

// SellerLeaderboard returns the five sellers with the highest revenue
// from delivered orders.
func (r *ReportRepo) SellerLeaderboard(ctx context.Context) ([]usecase.SellerRevenue, error) {
	query := `
		SELECT
			v.Nome_Loja,
			SUM(idp.Quantidade * idp.PrecoNaCompra),
			COUNT(DISTINCT ped.ID_Pedido)
		FROM Vendedor v
		JOIN Produto p ON v.ID_Usuario = p.ID_Vendedor
		JOIN ItemDoPedido idp ON p.ID_Produto = idp.ID_Produto
		JOIN Pedido ped ON idp.ID_Pedido = ped.ID_Pedido
		WHERE ped.Status = $1
		GROUP BY v.Nome_Loja
		ORDER BY SUM(idp.Quantidade * idp.PrecoNaCompra) DESC
		LIMIT 5
	`

	rows, err := r.pool.Query(ctx, query, domain.OrderStatusDelivered)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]usecase.SellerRevenue, 0)
	for rows.Next() {
		var row usecase.SellerRevenue
		if err := rows.Scan(&row.StoreName, &row.Revenue, &row.OrderCount); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}

// MonthlyRevenue buckets delivered orders by calendar month. Years are
// folded into the same bucket.
func (r *ReportRepo) MonthlyRevenue(ctx context.Context) ([]usecase.MonthlyRevenue, error) {
	query := `
		SELECT
			EXTRACT(MONTH FROM ped.Data)::int,
			COUNT(*),
			SUM(pag.Valor)
		FROM Pedido ped
		JOIN Pagamento pag ON ped.ID_Pagamento = pag.ID_Pagamento
		WHERE ped.Status = $1
		GROUP BY EXTRACT(MONTH FROM ped.Data)
		ORDER BY EXTRACT(MONTH FROM ped.Data)
	`

	rows, err := r.pool.Query(ctx, query, domain.OrderStatusDelivered)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]usecase.MonthlyRevenue, 0)
	for rows.Next() {
		var row usecase.MonthlyRevenue
		if err := rows.Scan(&row.Month, &row.OrderCount, &row.Revenue); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}

// PaymentMethodSummary totals approved payments per method.
func (r *ReportRepo) PaymentMethodSummary(ctx context.Context) ([]usecase.PaymentMethodTotal, error) {
	query := `
		SELECT
			Metodo_Pagamento,
			COUNT(*),
			SUM(Valor)
		FROM Pagamento
		WHERE Status = $1
		GROUP BY Metodo_Pagamento
	`

	rows, err := r.pool.Query(ctx, query, domain.PaymentStatusApproved)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]usecase.PaymentMethodTotal, 0)
	for rows.Next() {
		var row usecase.PaymentMethodTotal
		if err := rows.Scan(&row.Method, &row.ApprovedCount, &row.TotalAmount); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}

// VIPCustomers ranks buyers by total spend on delivered orders.
func (r *ReportRepo) VIPCustomers(ctx context.Context, limit int) ([]usecase.VIPCustomer, error) {
	query := `
		SELECT
			u.Nome,
			c.CPF,
			COUNT(DISTINCT ped.ID_Pedido),
			SUM(pag.Valor),
			AVG(pag.Valor)
		FROM Usuario u
		JOIN Comprador c ON u.ID_Usuario = c.ID_Usuario
		JOIN Pedido ped ON c.ID_Usuario = ped.ID_Comprador
		JOIN Pagamento pag ON ped.ID_Pagamento = pag.ID_Pagamento
		WHERE ped.Status = $1
		GROUP BY u.ID_Usuario, u.Nome, c.CPF
		ORDER BY SUM(pag.Valor) DESC
		LIMIT $2
	`

	rows, err := r.pool.Query(ctx, query, domain.OrderStatusDelivered, limit)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]usecase.VIPCustomer, 0)
	for rows.Next() {
		var row usecase.VIPCustomer
		if err := rows.Scan(
			&row.BuyerName, &row.CPF, &row.OrderCount,
			&row.TotalSpent, &row.AvgOrderValue,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}

// LowStock lists products at or below the threshold, lowest stock
// first. The outer joins keep products with no delivered sales in the
// result with a zero total.
func (r *ReportRepo) LowStock(ctx context.Context, threshold int) ([]usecase.StockAlert, error) {
	query := `
		SELECT
			p.Nome,
			v.Nome_Loja,
			p.Estoque,
			p.Preco,
			COALESCE(SUM(idp.Quantidade) FILTER (WHERE ped.ID_Pedido IS NOT NULL), 0)
		FROM Produto p
		JOIN Vendedor v ON p.ID_Vendedor = v.ID_Usuario
		LEFT JOIN ItemDoPedido idp ON p.ID_Produto = idp.ID_Produto
		LEFT JOIN Pedido ped ON idp.ID_Pedido = ped.ID_Pedido AND ped.Status = $1
		WHERE p.Estoque <= $2
		GROUP BY p.ID_Produto, p.Nome, p.Estoque, p.Preco, v.Nome_Loja
		ORDER BY p.Estoque ASC
	`

	rows, err := r.pool.Query(ctx, query, domain.OrderStatusDelivered, threshold)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]usecase.StockAlert, 0)
	for rows.Next() {
		var row usecase.StockAlert
		if err := rows.Scan(
			&row.ProductName, &row.StoreName, &row.Stock, &row.Price, &row.TotalSold,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}
