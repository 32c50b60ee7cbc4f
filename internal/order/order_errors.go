package order

import (
	"net/http"

	"go-venusa-api/internal/pkg/apperror"
)

var (
	ErrOrderNotFound = apperror.New(apperror.CodeNotFound, "order not found", http.StatusNotFound)
	ErrInvalidOrder  = apperror.New(apperror.CodeInvalidInput, "invalid order payload", http.StatusBadRequest)
	ErrEmptyOrder    = apperror.New(apperror.CodeInvalidInput, "order has no items", http.StatusBadRequest)
	ErrOrderNotOpen  = apperror.New(apperror.CodeInvalidState, "order is not awaiting payment", http.StatusConflict)
)
