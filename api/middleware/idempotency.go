package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"

	"github.com/razorsharp/storefront-backend/api/responses"
	pkgerrors "github.com/razorsharp/storefront-backend/pkg/errors"
	"github.com/razorsharp/storefront-backend/pkg/logger"
	pkgredis "github.com/razorsharp/storefront-backend/pkg/redis"
)

// Creation endpoints that must be safe to retry. Keys are "METHOD pattern";
// none of these routes carry path parameters, so the pattern equals the
// request path even before chi resolves it.
var idempotentRoutes = map[string]struct{}{
	http.MethodPost + " /api/stores":      {},
	http.MethodPost + " /api/products":    {},
	http.MethodPost + " /api/profiles":    {},
	http.MethodPost + " /api/assignments": {},
}

type idempotencyRecord struct {
	Status      int               `json:"status"`
	Body        string            `json:"body"`
	Headers     map[string]string `json:"headers,omitempty"`
	RequestHash string            `json:"request_hash"`
}

// Idempotency replays the stored response when a creation request repeats
// with the same Idempotency-Key and body. The same key with a different body
// is a 409.
func Idempotency(store pkgredis.IdempotencyStore, ttl time.Duration, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			if store == nil || !routeCovered(r) {
				next.ServeHTTP(w, r)
				return
			}

			idempotencyKey := strings.TrimSpace(r.Header.Get("Idempotency-Key"))
			if idempotencyKey == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "Idempotency-Key header required"))
				return
			}

			body, err := io.ReadAll(r.Body)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "read request"))
				return
			}
			r.Body = io.NopCloser(bytes.NewReader(body))

			sum := sha256.Sum256(body)
			requestHash := base64.StdEncoding.EncodeToString(sum[:])
			key := store.IdempotencyKey(requestScope(r), idempotencyKey)

			stored, getErr := store.Get(r.Context(), key)
			if getErr != nil && !errors.Is(getErr, redis.Nil) {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, getErr, "check idempotency"))
				return
			}
			if stored != "" {
				replayStored(r, w, logg, stored, requestHash)
				return
			}

			rec := &responseCapture{ResponseWriter: w}
			next.ServeHTTP(rec, r)

			record := idempotencyRecord{
				Status:      rec.status,
				Body:        base64.StdEncoding.EncodeToString(rec.body.Bytes()),
				RequestHash: requestHash,
			}
			if record.Status == 0 {
				record.Status = http.StatusOK
			}
			if ct := rec.Header().Get("Content-Type"); ct != "" {
				record.Headers = map[string]string{"Content-Type": ct}
			}

			payload, marshalErr := json.Marshal(record)
			if marshalErr != nil {
				if logg != nil {
					logg.Error(r.Context(), "marshal idempotency record", marshalErr)
				}
				return
			}
			if _, setErr := store.SetNX(r.Context(), key, string(payload), ttl); setErr != nil && logg != nil {
				logg.Error(r.Context(), "persist idempotency record", setErr)
			}
		}
		return http.HandlerFunc(fn)
	}
}

func routeCovered(r *http.Request) bool {
	pattern := r.URL.Path
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			pattern = p
		}
	}
	_, ok := idempotentRoutes[r.Method+" "+pattern]
	return ok
}

// requestScope ties stored responses to the calling identity so one
// caller's key cannot replay another's response.
func requestScope(r *http.Request) string {
	subject := ""
	if claims := ClaimsFromContext(r.Context()); claims != nil {
		subject = claims.Subject
	}
	return strings.Join([]string{subject, r.Method, r.URL.Path}, "|")
}

func replayStored(r *http.Request, w http.ResponseWriter, logg *logger.Logger, stored, requestHash string) {
	var record idempotencyRecord
	if err := json.Unmarshal([]byte(stored), &record); err != nil {
		responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode idempotency record"))
		return
	}
	if record.RequestHash != requestHash {
		responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeIdempotency, "idempotency key reused with different request body"))
		return
	}
	if ct := record.Headers["Content-Type"]; ct != "" {
		w.Header().Set("Content-Type", ct)
	}
	w.WriteHeader(record.Status)
	if decoded, err := base64.StdEncoding.DecodeString(record.Body); err == nil {
		_, _ = w.Write(decoded)
	}
}

type responseCapture struct {
	http.ResponseWriter
	body   bytes.Buffer
	status int
}

func (r *responseCapture) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *responseCapture) Write(b []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}
