package checkout

import (
	"net/http"

	"go-venusa-api/internal/pkg/apperror"
)

var (
	ErrEmptyCart      = apperror.New(apperror.CodeInvalidState, "cart is empty", http.StatusBadRequest)
	ErrInvalidRequest = apperror.New(apperror.CodeInvalidInput, "invalid checkout payload", http.StatusBadRequest)
)
