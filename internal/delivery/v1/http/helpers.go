package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/viniciuslidington/marketplace-database/pkg/e"
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

// ToHTTPResponse maps an error to a status code and client message.
// Not-found sentinels become 404, order rejections and malformed input
// 400, everything else an opaque 500.
func ToHTTPResponse(err error) (int, string) {
	switch {
	case errors.Is(err, e.ErrProductNotFound):
		return http.StatusNotFound, e.ErrProductNotFound.Error()
	case errors.Is(err, e.ErrBuyerNotFound):
		return http.StatusNotFound, e.ErrBuyerNotFound.Error()
	case errors.Is(err, e.ErrOrderRejected),
		errors.Is(err, e.ErrNoItems),
		errors.Is(err, e.ErrInvalidQuantity),
		errors.Is(err, e.ErrInvalidUnitPrice),
		errors.Is(err, e.ErrUnknownPayment),
		errors.Is(err, e.ErrInvalidRequestBody),
		errors.Is(err, e.ErrInvalidQueryParam):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, e.ErrStoreUnavailable):
		return http.StatusServiceUnavailable, e.ErrStoreUnavailable.Error()
	default:
		return http.StatusInternalServerError, e.ErrInternalServerError.Error()
	}
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(NewErrorResponse(code, msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func parseIDParam(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		return 0, e.Wrap(name, e.ErrInvalidQueryParam)
	}
	return id, nil
}

// parseIntQuery reads an optional integer query parameter, falling
// back to def when absent.
func parseIntQuery(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, e.Wrap(name, e.ErrInvalidQueryParam)
	}
	return v, nil
}

func parseOptionalInt64Query(r *http.Request, name string) (*int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, e.Wrap(name, e.ErrInvalidQueryParam)
	}
	return &v, nil
}

func parseOptionalDecimalQuery(r *http.Request, name string) (*decimal.Decimal, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}

	v, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, e.Wrap(name, e.ErrInvalidQueryParam)
	}
	return &v, nil
}
