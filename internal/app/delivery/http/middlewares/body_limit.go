package middlewares

import (
	"net/http"
)

// RequestBodyLimit caps the request body size so oversized schedule
// payloads are rejected before JSON decoding starts.
func (m *Middlewares) RequestBodyLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		limit := int64(m.InternalConfig.App.RequestBodyLimitInMegabyte) << 20
		r.Body = http.MaxBytesReader(w, r.Body, limit)
		next.ServeHTTP(w, r)
	})
}
