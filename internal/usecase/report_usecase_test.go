package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viniciuslidington/marketplace-database/internal/domain"
	"github.com/viniciuslidington/marketplace-database/pkg/logger"
)

type fakeReportRepo struct {
	topLimit  int
	vipLimit  int
	lowThresh int
	alerts    []StockAlert
	top       []TopProduct
	sellers   []SellerRevenue
	monthly   []MonthlyRevenue
	methods   []PaymentMethodTotal
	vips      []VIPCustomer
}

func (f *fakeReportRepo) TopSellingProducts(ctx context.Context, limit int) ([]TopProduct, error) {
	f.topLimit = limit
	return f.top, nil
}

func (f *fakeReportRepo) SellerLeaderboard(ctx context.Context) ([]SellerRevenue, error) {
	return f.sellers, nil
}

func (f *fakeReportRepo) MonthlyRevenue(ctx context.Context) ([]MonthlyRevenue, error) {
	return f.monthly, nil
}

func (f *fakeReportRepo) PaymentMethodSummary(ctx context.Context) ([]PaymentMethodTotal, error) {
	return f.methods, nil
}

func (f *fakeReportRepo) VIPCustomers(ctx context.Context, limit int) ([]VIPCustomer, error) {
	f.vipLimit = limit
	return f.vips, nil
}

func (f *fakeReportRepo) LowStock(ctx context.Context, threshold int) ([]StockAlert, error) {
	f.lowThresh = threshold
	return f.alerts, nil
}

func TestTopSellingProductsDefaultsLimit(t *testing.T) {
	repo := &fakeReportRepo{}
	uc := NewReportUC(repo, logger.NewSlogLogger())

	_, err := uc.TopSellingProducts(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultReportLimit, repo.topLimit)

	_, err = uc.TopSellingProducts(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, 3, repo.topLimit)
}

func TestVIPCustomersDefaultsLimit(t *testing.T) {
	repo := &fakeReportRepo{}
	uc := NewReportUC(repo, logger.NewSlogLogger())

	_, err := uc.VIPCustomers(context.Background(), -1)
	require.NoError(t, err)
	assert.Equal(t, DefaultReportLimit, repo.vipLimit)
}

func TestCriticalStockLabelsRows(t *testing.T) {
	repo := &fakeReportRepo{alerts: []StockAlert{
		{ProductName: "Cabo USB", Stock: 0},
		{ProductName: "Mouse", Stock: 10},
		{ProductName: "Teclado", Stock: 11},
		{ProductName: "Monitor", Stock: 30},
	}}
	uc := NewReportUC(repo, logger.NewSlogLogger())

	alerts, err := uc.CriticalStock(context.Background(), 30)
	require.NoError(t, err)
	require.Len(t, alerts, 4)

	assert.Equal(t, domain.StockStatusCritical, alerts[0].Status)
	assert.Equal(t, domain.StockStatusCritical, alerts[1].Status)
	assert.Equal(t, domain.StockStatusLow, alerts[2].Status)
	assert.Equal(t, domain.StockStatusLow, alerts[3].Status)
	assert.Equal(t, 30, repo.lowThresh)
}

func TestCriticalStockDefaultsThreshold(t *testing.T) {
	repo := &fakeReportRepo{}
	uc := NewReportUC(repo, logger.NewSlogLogger())

	_, err := uc.CriticalStock(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultStockThreshold, repo.lowThresh)
}

func TestDashboardBundlesSections(t *testing.T) {
	repo := &fakeReportRepo{
		sellers: []SellerRevenue{{StoreName: "TechStore"}},
		monthly: []MonthlyRevenue{{Month: 1}, {Month: 2}},
		methods: []PaymentMethodTotal{{Method: domain.PaymentMethodPix}},
	}
	uc := NewReportUC(repo, logger.NewSlogLogger())

	dash, err := uc.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Len(t, dash.TopSellers, 1)
	assert.Len(t, dash.MonthlyRevenue, 2)
	assert.Len(t, dash.PaymentMethods, 1)
}
