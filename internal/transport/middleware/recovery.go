package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"runtime/debug"

	"go.uber.org/zap"

	"github.com/cours-de-japonais/katsuyou"
)

// Recovery turns a panicking handler into a 500 with the API's JSON
// error body. http.ErrAbortHandler is re-raised for net/http to handle.
func Recovery(logger *zap.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if err, ok := v.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(v)
				}
				logger.Error("panic recovered",
					zap.Any("error", v),
					zap.ByteString("stack", debug.Stack()),
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.String("request_id", RequestIDFromCtx(r.Context())),
				)
				writeInternal(w)
			}()
			next.ServeHTTP(w, r)
		})
	}
}

func writeInternal(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]string{
			"code":    string(katsuyou.CodeInternal),
			"message": "internal server error",
		},
	})
}
