package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	"github.com/viniciuslidington/marketplace-database/internal/usecase"
	"github.com/viniciuslidington/marketplace-database/pkg/e"
)

type OrderHandler struct {
	orderUC usecase.OrderUC
}

func NewOrderHandler(orderUC usecase.OrderUC) *OrderHandler {
	return &OrderHandler{orderUC: orderUC}
}

type orderItemRequest struct {
	ProductID int64           `json:"id"`
	Quantity  int             `json:"quantidade"`
	UnitPrice decimal.Decimal `json:"preco"`
}

type createOrderRequest struct {
	BuyerID       int64              `json:"id_comprador"`
	AddressID     int64              `json:"id_endereco"`
	PaymentMethod string             `json:"metodo_pagamento"`
	Items         []orderItemRequest `json:"produtos"`
}

type createOrderResponse struct {
	Success   bool  `json:"success"`
	OrderID   int64 `json:"pedido_id"`
	PaymentID int64 `json:"pagamento_id"`
}

type buyerOrderResponse struct {
	OrderID       int64           `json:"id_pedido"`
	Date          time.Time       `json:"data"`
	Status        string          `json:"status"`
	Amount        decimal.Decimal `json:"valor"`
	PaymentMethod string          `json:"metodo_pagamento"`
	PaymentStatus string          `json:"status_pagamento"`
	Products      string          `json:"produtos"`
}

// Create handles POST /api/v1/orders. The payment, the order and every
// line item land in one transaction; any failure rejects the whole
// order.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, e.ErrInvalidRequestBody)
		return
	}

	items := make([]usecase.OrderItemReq, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, usecase.OrderItemReq{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}

	res, err := h.orderUC.CreateOrder(r.Context(), usecase.NewCreateOrderReq(req.BuyerID, req.AddressID, items, req.PaymentMethod))
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, createOrderResponse{
		Success:   true,
		OrderID:   res.OrderID,
		PaymentID: res.PaymentID,
	})
}

// ListByBuyer handles GET /api/v1/buyers/{id}/orders.
func (h *OrderHandler) ListByBuyer(w http.ResponseWriter, r *http.Request) {
	buyerID, err := parseIDParam(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	orders, err := h.orderUC.ListBuyerOrders(r.Context(), buyerID)
	if err != nil {
		WriteError(w, err)
		return
	}

	res := make([]buyerOrderResponse, 0, len(orders))
	for _, o := range orders {
		res = append(res, buyerOrderResponse{
			OrderID:       o.OrderID,
			Date:          o.Date,
			Status:        o.Status,
			Amount:        o.Amount,
			PaymentMethod: o.PaymentMethod,
			PaymentStatus: o.PaymentStatus,
			Products:      o.Products,
		})
	}

	WriteSuccess(w, http.StatusOK, res)
}
