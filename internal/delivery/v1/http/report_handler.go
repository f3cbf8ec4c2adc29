package http

import (
	"net/http"

	"github.com/shopspring/decimal"
	"github.com/viniciuslidington/marketplace-database/internal/usecase"
)

type ReportHandler struct {
	reportUC usecase.ReportUC
}

func NewReportHandler(reportUC usecase.ReportUC) *ReportHandler {
	return &ReportHandler{reportUC: reportUC}
}

type sellerRevenueResponse struct {
	StoreName  string          `json:"vendedor"`
	Revenue    decimal.Decimal `json:"receita"`
	OrderCount int64           `json:"numero_pedidos"`
}

type monthlyRevenueResponse struct {
	Month      int             `json:"mes"`
	OrderCount int64           `json:"numero_pedidos"`
	Revenue    decimal.Decimal `json:"receita"`
}

type paymentMethodResponse struct {
	Method        string          `json:"metodo"`
	ApprovedCount int64           `json:"aprovados"`
	TotalAmount   decimal.Decimal `json:"valor_total"`
}

type dashboardResponse struct {
	TopSellers     []sellerRevenueResponse  `json:"top_vendedores"`
	MonthlyRevenue []monthlyRevenueResponse `json:"vendas_por_mes"`
	PaymentMethods []paymentMethodResponse  `json:"metodos_pagamento"`
}

type vipCustomerResponse struct {
	BuyerName     string          `json:"comprador"`
	CPF           string          `json:"cpf"`
	OrderCount    int64           `json:"total_pedidos"`
	TotalSpent    decimal.Decimal `json:"valor_total_gasto"`
	AvgOrderValue decimal.Decimal `json:"ticket_medio"`
}

type stockAlertResponse struct {
	ProductName string          `json:"produto"`
	StoreName   string          `json:"vendedor"`
	Stock       int             `json:"estoque"`
	Price       decimal.Decimal `json:"preco"`
	TotalSold   int64           `json:"total_vendido"`
	Status      string          `json:"status_estoque"`
}

// Dashboard handles GET /api/v1/reports/dashboard. Bundles the seller
// leaderboard, the per-month revenue and the payment method breakdown.
func (h *ReportHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	dash, err := h.reportUC.Dashboard(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	res := dashboardResponse{
		TopSellers:     make([]sellerRevenueResponse, 0, len(dash.TopSellers)),
		MonthlyRevenue: make([]monthlyRevenueResponse, 0, len(dash.MonthlyRevenue)),
		PaymentMethods: make([]paymentMethodResponse, 0, len(dash.PaymentMethods)),
	}
	for _, s := range dash.TopSellers {
		res.TopSellers = append(res.TopSellers, sellerRevenueResponse{
			StoreName:  s.StoreName,
			Revenue:    s.Revenue,
			OrderCount: s.OrderCount,
		})
	}
	for _, m := range dash.MonthlyRevenue {
		res.MonthlyRevenue = append(res.MonthlyRevenue, monthlyRevenueResponse{
			Month:      m.Month,
			OrderCount: m.OrderCount,
			Revenue:    m.Revenue,
		})
	}
	for _, p := range dash.PaymentMethods {
		res.PaymentMethods = append(res.PaymentMethods, paymentMethodResponse{
			Method:        p.Method,
			ApprovedCount: p.ApprovedCount,
			TotalAmount:   p.TotalAmount,
		})
	}

	WriteSuccess(w, http.StatusOK, res)
}

// VIPCustomers handles GET /api/v1/reports/vip-customers.
func (h *ReportHandler) VIPCustomers(w http.ResponseWriter, r *http.Request) {
	limit, err := parseIntQuery(r, "limite", usecase.DefaultReportLimit)
	if err != nil {
		WriteError(w, err)
		return
	}

	customers, err := h.reportUC.VIPCustomers(r.Context(), limit)
	if err != nil {
		WriteError(w, err)
		return
	}

	res := make([]vipCustomerResponse, 0, len(customers))
	for _, c := range customers {
		res = append(res, vipCustomerResponse{
			BuyerName:     c.BuyerName,
			CPF:           c.CPF,
			OrderCount:    c.OrderCount,
			TotalSpent:    c.TotalSpent,
			AvgOrderValue: c.AvgOrderValue,
		})
	}

	WriteSuccess(w, http.StatusOK, res)
}

// CriticalStock handles GET /api/v1/reports/critical-stock. The
// threshold query param widens the net beyond the critical bound.
func (h *ReportHandler) CriticalStock(w http.ResponseWriter, r *http.Request) {
	threshold, err := parseIntQuery(r, "limite_estoque", usecase.DefaultStockThreshold)
	if err != nil {
		WriteError(w, err)
		return
	}

	alerts, err := h.reportUC.CriticalStock(r.Context(), threshold)
	if err != nil {
		WriteError(w, err)
		return
	}

	res := make([]stockAlertResponse, 0, len(alerts))
	for _, a := range alerts {
		res = append(res, stockAlertResponse{
			ProductName: a.ProductName,
			StoreName:   a.StoreName,
			Stock:       a.Stock,
			Price:       a.Price,
			TotalSold:   a.TotalSold,
			Status:      a.Status,
		})
	}

	WriteSuccess(w, http.StatusOK, res)
}
