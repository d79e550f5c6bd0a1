package handlers

import (
	"errors"
	"net/http"

	"gestion_xpto/internal/usecase"
	"gestion_xpto/pkg"
)

var errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Invalid request payload", http.StatusBadRequest)

// mapResourceError reduces the use-case error taxonomy to the AppError
// envelope. Validation failures keep their domain message; everything
// unrecognized is a 500 with the cause attached for logging.
func mapResourceError(err error) *pkg.AppError {
	var ve *usecase.ValidationError
	switch {
	case errors.As(err, &ve):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", ve.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", "Resource not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCodeTaken):
		return pkg.NewDomainErrorSimple("CODE_TAKEN", "Code already in use", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidStatusTransition):
		return pkg.NewDomainErrorSimple("INVALID_STATUS_TRANSITION", "Status transition not allowed", http.StatusConflict)
	case errors.Is(err, usecase.ErrChargePayload):
		return pkg.NewDomainErrorSimple("INVALID_CHARGE_PAYLOAD", "Invalid charge payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrChargeNotReceivable):
		return pkg.NewDomainErrorSimple("NOT_RECEIVABLE", "Only receivable accounts can be charged", http.StatusConflict)
	case errors.Is(err, usecase.ErrChargeAlreadySettled):
		return pkg.NewDomainErrorSimple("ALREADY_SETTLED", "Account already settled", http.StatusConflict)
	case errors.Is(err, usecase.ErrChargeDeclined):
		return pkg.NewDomainErrorSimple("CHARGE_DECLINED", "Charge declined by payment gateway", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("GATEWAY_NOT_CONFIGURED", "Payment gateway not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
