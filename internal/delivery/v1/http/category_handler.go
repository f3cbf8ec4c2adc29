package http

import (
	"net/http"

	"github.com/viniciuslidington/marketplace-database/internal/usecase"
)

type CategoryHandler struct {
	catalogUC usecase.CatalogUC
}

func NewCategoryHandler(catalogUC usecase.CatalogUC) *CategoryHandler {
	return &CategoryHandler{catalogUC: catalogUC}
}

type categoryResponse struct {
	ID           int64  `json:"id_categoria"`
	Name         string `json:"nome"`
	Description  string `json:"descricao"`
	ProductCount int64  `json:"total_produtos"`
}

// List handles GET /api/v1/categories.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalogUC.ListCategories(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	res := make([]categoryResponse, 0, len(categories))
	for _, c := range categories {
		res = append(res, categoryResponse{
			ID:           c.ID,
			Name:         c.Name,
			Description:  c.Description,
			ProductCount: c.ProductCount,
		})
	}

	WriteSuccess(w, http.StatusOK, res)
}
