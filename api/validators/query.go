package validators

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	pkgerrors "github.com/razorsharp/storefront-backend/pkg/errors"
)

// ParseQueryUUID reads a required uuid query parameter.
func ParseQueryUUID(r *http.Request, key string) (uuid.UUID, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeValidation, "query parameter required").WithDetails(map[string]any{"field": key})
	}
	value, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeValidation, "query parameter must be a uuid").WithDetails(map[string]any{"field": key})
	}
	return value, nil
}

// ParsePathUUID reads a uuid path parameter already extracted by the router.
func ParsePathUUID(raw, field string) (uuid.UUID, error) {
	value, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeValidation, "path parameter must be a uuid").WithDetails(map[string]any{"field": field})
	}
	return value, nil
}
