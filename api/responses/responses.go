package responses

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	pkgerrors "github.com/razorsharp/storefront-backend/pkg/errors"
	"github.com/razorsharp/storefront-backend/pkg/logger"
)

// SuccessEnvelope wraps every successful response body.
type SuccessEnvelope struct {
	Data any `json:"data"`
}

// APIError is the public error shape inside an ErrorEnvelope.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// ErrorEnvelope wraps every failed response body.
type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func WriteSuccess(w http.ResponseWriter, data any) {
	WriteSuccessStatus(w, http.StatusOK, data)
}

func WriteSuccessStatus(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, SuccessEnvelope{Data: data})
}

// WriteError maps a coded error onto the HTTP envelope and logs the full
// chain. Untyped errors become INTERNAL_ERROR with a generic message.
func WriteError(ctx context.Context, logg *logger.Logger, w http.ResponseWriter, err error) {
	if err == nil {
		err = errors.New("unknown error")
	}

	typed := pkgerrors.As(err)
	if typed == nil {
		typed = pkgerrors.Wrap(pkgerrors.CodeInternal, err, "unexpected error")
	}
	meta := pkgerrors.MetadataFor(typed.Code())

	apiErr := APIError{
		Code:    string(typed.Code()),
		Message: publicMessage(typed, meta),
	}
	if meta.DetailsAllowed {
		apiErr.Details = typed.Details()
	}

	if logg != nil {
		logError(ctx, logg, err)
	}

	writeJSON(w, meta.HTTPStatus, ErrorEnvelope{Error: apiErr})
}

// publicMessage keeps internal failure text out of responses. Caller-fault
// codes pass their message through; system faults use the generic one.
func publicMessage(typed *pkgerrors.Error, meta pkgerrors.Metadata) string {
	switch typed.Code() {
	case pkgerrors.CodeValidation,
		pkgerrors.CodeUnauthorized,
		pkgerrors.CodeForbidden,
		pkgerrors.CodeNotFound,
		pkgerrors.CodeConflict,
		pkgerrors.CodeIdempotency:
		if m := typed.Message(); m != "" {
			return m
		}
	}
	return meta.PublicMessage
}

func logError(ctx context.Context, logg *logger.Logger, err error) {
	dump := pkgerrors.Dump(err)
	ctx = logg.WithFields(ctx, map[string]any{
		"error":         dump.TopMessage,
		"error_code":    dump.Code,
		"error_chain":   dump.Chain,
		"pg_code":       dump.PGCode,
		"pg_detail":     dump.PGDetail,
		"pg_message":    dump.PGMessage,
		"pg_table":      dump.PGTable,
		"pg_column":     dump.PGColumn,
		"pg_constraint": dump.PGConstraint,
	})
	logg.Error(ctx, "request.error", err)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf(`{"level":"error","msg":"failed to encode response","err":"%v"}`, err)
	}
}
