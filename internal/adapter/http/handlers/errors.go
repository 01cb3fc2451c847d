package handlers

import (
	"errors"
	"net/http"

	"insurance_quotes/internal/domain/entities"
	"insurance_quotes/internal/infrastructure/lock"
	"insurance_quotes/internal/usecase"
	"insurance_quotes/internal/usecase/interfaces"
	"insurance_quotes/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)
	errMissingTerms   = pkg.NewDomainErrorSimple("INVALID_QUOTE", "An accepted response needs expiration date, premium and policy limit", http.StatusBadRequest)
)

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRequestID),
		errors.Is(err, usecase.ErrInvalidCustomerInfo),
		errors.Is(err, usecase.ErrInvalidOptions),
		errors.Is(err, usecase.ErrInvalidStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidQuote):
		return pkg.NewDomainErrorSimple("INVALID_QUOTE", "Invalid quote", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteRequestNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_REQUEST_NOT_FOUND", "Quote request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPolicyNotFound):
		return pkg.NewDomainErrorSimple("POLICY_NOT_FOUND", "Policy not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrIllegalTransition):
		return pkg.NewDomainError("ILLEGAL_STATUS_TRANSITION", "Quote request is not in a state that allows this action", err, http.StatusConflict)
	case errors.Is(err, interfaces.ErrConcurrentModification), errors.Is(err, lock.ErrLockAcquire):
		return pkg.NewDomainError("CONCURRENT_MODIFICATION", "Quote request is being modified, retry later", err, http.StatusConflict)
	case errors.Is(err, interfaces.ErrStoreUnavailable):
		return pkg.NewDomainError("SERVICE_UNAVAILABLE", "Storage is unavailable", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func abortWith(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
