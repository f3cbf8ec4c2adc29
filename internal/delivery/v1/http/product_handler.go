package http

import (
	"net/http"

	"github.com/shopspring/decimal"
	"github.com/viniciuslidington/marketplace-database/internal/usecase"
)

type ProductHandler struct {
	catalogUC usecase.CatalogUC
	reportUC  usecase.ReportUC
}

func NewProductHandler(catalogUC usecase.CatalogUC, reportUC usecase.ReportUC) *ProductHandler {
	return &ProductHandler{
		catalogUC: catalogUC,
		reportUC:  reportUC,
	}
}

type productSummaryResponse struct {
	ID          int64           `json:"id_produto"`
	Name        string          `json:"nome"`
	Description string          `json:"descricao"`
	Price       decimal.Decimal `json:"preco"`
	Stock       int             `json:"estoque"`
	StoreName   string          `json:"vendedor"`
	Category    string          `json:"categoria"`
}

type productDetailResponse struct {
	ID          int64           `json:"id_produto"`
	Name        string          `json:"nome"`
	Description string          `json:"descricao"`
	Price       decimal.Decimal `json:"preco"`
	Stock       int             `json:"estoque"`
	StoreName   string          `json:"nome_loja"`
	SellerName  string          `json:"vendedor"`
	SellerEmail string          `json:"email_vendedor"`
}

type topProductResponse struct {
	ProductName  string          `json:"produto"`
	StoreName    string          `json:"vendedor"`
	QuantitySold int64           `json:"quantidade_vendida"`
	TotalRevenue decimal.Decimal `json:"receita_total"`
	OrderCount   int64           `json:"numero_pedidos"`
}

// List handles GET /api/v1/products. Category, price bounds and limit
// come from the query string; all of them are optional.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	categoryID, err := parseOptionalInt64Query(r, "categoria")
	if err != nil {
		WriteError(w, err)
		return
	}

	priceMin, err := parseOptionalDecimalQuery(r, "preco_min")
	if err != nil {
		WriteError(w, err)
		return
	}

	priceMax, err := parseOptionalDecimalQuery(r, "preco_max")
	if err != nil {
		WriteError(w, err)
		return
	}

	limit, err := parseIntQuery(r, "limite", usecase.DefaultProductLimit)
	if err != nil {
		WriteError(w, err)
		return
	}

	products, err := h.catalogUC.ListProducts(r.Context(), usecase.ProductFilter{
		CategoryID: categoryID,
		PriceMin:   priceMin,
		PriceMax:   priceMax,
		Limit:      limit,
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	res := make([]productSummaryResponse, 0, len(products))
	for _, p := range products {
		res = append(res, productSummaryResponse{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
			Stock:       p.Stock,
			StoreName:   p.StoreName,
			Category:    p.Category,
		})
	}

	WriteSuccess(w, http.StatusOK, res)
}

// Get handles GET /api/v1/products/{id}.
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	p, err := h.catalogUC.GetProduct(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, productDetailResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		StoreName:   p.StoreName,
		SellerName:  p.SellerName,
		SellerEmail: p.SellerEmail,
	})
}

// TopSelling handles GET /api/v1/products/top-selling. Ranks delivered
// sales by quantity; the limit query param caps the list.
func (h *ProductHandler) TopSelling(w http.ResponseWriter, r *http.Request) {
	limit, err := parseIntQuery(r, "limite", usecase.DefaultReportLimit)
	if err != nil {
		WriteError(w, err)
		return
	}

	products, err := h.reportUC.TopSellingProducts(r.Context(), limit)
	if err != nil {
		WriteError(w, err)
		return
	}

	res := make([]topProductResponse, 0, len(products))
	for _, p := range products {
		res = append(res, topProductResponse{
			ProductName:  p.ProductName,
			StoreName:    p.StoreName,
			QuantitySold: p.QuantitySold,
			TotalRevenue: p.TotalRevenue,
			OrderCount:   p.OrderCount,
		})
	}

	WriteSuccess(w, http.StatusOK, res)
}
