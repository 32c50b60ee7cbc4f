package cart

import (
	"net/http"

	"go-venusa-api/internal/pkg/apperror"
)

var (
	ErrInvalidItem = apperror.New(
		apperror.CodeInvalidInput,
		"invalid cart item",
		http.StatusBadRequest,
	)

	ErrInvalidQty = apperror.New(
		apperror.CodeInvalidInput,
		"invalid quantity",
		http.StatusBadRequest,
	)
)
