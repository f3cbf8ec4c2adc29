package usecase

import (
	"context"

	"github.com/viniciuslidington/marketplace-database/internal/domain"
	"github.com/viniciuslidington/marketplace-database/pkg/e"
	"github.com/viniciuslidington/marketplace-database/pkg/logger"
)

const (
	DefaultReportLimit    = 10
	DefaultStockThreshold = 30
)

// ReportUseCase runs the read-only sales and inventory aggregations.
// All of them operate on committed data and need no transaction.
type ReportUseCase struct {
	reportRepo ReportRepository
	logger     logger.Logger
}

func NewReportUC(reportRepo ReportRepository, logger logger.Logger) *ReportUseCase {
	return &ReportUseCase{reportRepo: reportRepo, logger: logger}
}

func (r *ReportUseCase) TopSellingProducts(ctx context.Context, limit int) ([]TopProduct, error) {
	const op = "ReportUseCase.TopSellingProducts"

	if limit <= 0 {
		limit = DefaultReportLimit
	}

	products, err := r.reportRepo.TopSellingProducts(ctx, limit)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return products, nil
}

// Dashboard bundles the seller leaderboard, monthly revenue and
// payment-method summary into one response.
func (r *ReportUseCase) Dashboard(ctx context.Context) (*Dashboard, error) {
	const op = "ReportUseCase.Dashboard"

	sellers, err := r.reportRepo.SellerLeaderboard(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	monthly, err := r.reportRepo.MonthlyRevenue(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	payments, err := r.reportRepo.PaymentMethodSummary(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return &Dashboard{
		TopSellers:     sellers,
		MonthlyRevenue: monthly,
		PaymentMethods: payments,
	}, nil
}

func (r *ReportUseCase) VIPCustomers(ctx context.Context, limit int) ([]VIPCustomer, error) {
	const op = "ReportUseCase.VIPCustomers"

	if limit <= 0 {
		limit = DefaultReportLimit
	}

	customers, err := r.reportRepo.VIPCustomers(ctx, limit)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return customers, nil
}

// CriticalStock lists products at or below the threshold, most
// critical first, and labels each row against the classification rule.
func (r *ReportUseCase) CriticalStock(ctx context.Context, threshold int) ([]StockAlert, error) {
	const op = "ReportUseCase.CriticalStock"

	if threshold <= 0 {
		threshold = DefaultStockThreshold
	}

	alerts, err := r.reportRepo.LowStock(ctx, threshold)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	for i := range alerts {
		alerts[i].Status = domain.ClassifyStock(alerts[i].Stock, threshold)
	}

	return alerts, nil
}
