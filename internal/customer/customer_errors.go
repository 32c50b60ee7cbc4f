package customer

import (
	"net/http"

	"go-venusa-api/internal/pkg/apperror"
)

var (
	ErrCustomerNotFound       = apperror.New(apperror.CodeNotFound, "customer not found", http.StatusNotFound)
	ErrCurrentPasswordMissing = apperror.New(apperror.CodeInvalidInput, "current password is required", http.StatusBadRequest)
	ErrCurrentPasswordWrong   = apperror.New(apperror.CodeUnauthorized, "invalid current password", http.StatusUnauthorized)
	ErrInvalidAvatar          = apperror.New(apperror.CodeInvalidInput, "avatar file is required", http.StatusBadRequest)
)
