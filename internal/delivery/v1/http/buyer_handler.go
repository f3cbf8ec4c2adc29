package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/viniciuslidington/marketplace-database/internal/usecase"
)

type BuyerHandler struct {
	catalogUC usecase.CatalogUC
}

func NewBuyerHandler(catalogUC usecase.CatalogUC) *BuyerHandler {
	return &BuyerHandler{catalogUC: catalogUC}
}

type buyerResponse struct {
	ID    int64  `json:"id_usuario"`
	Name  string `json:"nome"`
	Email string `json:"email"`
	Phone string `json:"telefone"`
	CPF   string `json:"cpf"`
}

type addressResponse struct {
	ID         int64  `json:"id_endereco"`
	Street     string `json:"rua"`
	Number     string `json:"numero"`
	Complement string `json:"complemento"`
	City       string `json:"cidade"`
	State      string `json:"estado"`
	PostalCode string `json:"cep"`
}

// GetByEmail handles GET /api/v1/buyers/email/{email}.
func (h *BuyerHandler) GetByEmail(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	buyer, err := h.catalogUC.GetBuyerByEmail(r.Context(), email)
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, buyerResponse{
		ID:    buyer.ID,
		Name:  buyer.Name,
		Email: buyer.Email,
		Phone: buyer.Phone,
		CPF:   buyer.CPF,
	})
}

// ListAddresses handles GET /api/v1/buyers/{id}/addresses.
func (h *BuyerHandler) ListAddresses(w http.ResponseWriter, r *http.Request) {
	buyerID, err := parseIDParam(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	addresses, err := h.catalogUC.ListBuyerAddresses(r.Context(), buyerID)
	if err != nil {
		WriteError(w, err)
		return
	}

	res := make([]addressResponse, 0, len(addresses))
	for _, a := range addresses {
		res = append(res, addressResponse{
			ID:         a.ID,
			Street:     a.Street,
			Number:     a.Number,
			Complement: a.Complement,
			City:       a.City,
			State:      a.State,
			PostalCode: a.PostalCode,
		})
	}

	WriteSuccess(w, http.StatusOK, res)
}
