package middleware

import (
	"bytes"
	"io"
	"net/http"

	"minvest/internal/hash"
)

// WithHash verifies the HashSHA256 header of incoming bodies against the
// shared key and stamps the same header on responses. A node without a
// configured key passes everything through.
func WithHash(secretKey string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if secretKey == "" {
				next.ServeHTTP(w, r)
				return
			}

			if clientHash := r.Header.Get("HashSHA256"); clientHash != "" {
				body, err := io.ReadAll(r.Body)
				if err != nil {
					http.Error(w, "invalid request body", http.StatusBadRequest)
					return
				}
				r.Body = io.NopCloser(bytes.NewReader(body))

				if hash.CalculateHash(string(body), secretKey) != clientHash {
					http.Error(w, "invalid body hash", http.StatusBadRequest)
					return
				}
			}

			hw := &hashResponseWriter{ResponseWriter: w, key: secretKey}
			next.ServeHTTP(hw, r)
		})
	}
}

type hashResponseWriter struct {
	http.ResponseWriter
	key         string
	wroteHeader bool
}

func (w *hashResponseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.Header().Set("HashSHA256", hash.CalculateHash(string(b), w.key))
		w.wroteHeader = true
	}
	return w.ResponseWriter.Write(b)
}
