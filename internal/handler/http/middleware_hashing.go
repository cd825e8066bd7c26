package http

import (
	"bytes"
	"net/http"

	"github.com/MKhiriev/go-site-config/internal/logger"
)

const hashHeader = "HashSHA256"

// withResponseHashing buffers the response and signs its body with the
// configured HMAC key before anything reaches the client.
func (h *Handler) withResponseHashing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hw := &hashingResponseWriter{
			ResponseWriter: w,
			status:         http.StatusOK,
		}

		next.ServeHTTP(hw, r)

		body := hw.body.Bytes()
		if len(body) > 0 {
			hashedBody := h.signer.Sign(body)
			w.Header().Set(hashHeader, hashedBody)

			logger.FromRequest(r).Debug().Str("func", "*Handler.withResponseHashing").
				Str("hashed body", hashedBody).
				Msg("response signed")
		}

		w.WriteHeader(hw.status)
		if _, err := w.Write(body); err != nil {
			logger.FromRequest(r).Err(err).Str("func", "*Handler.withResponseHashing").Msg("failed to write response body")
		}
	})
}

// hashingResponseWriter holds back the status and body until the whole
// response is known.
type hashingResponseWriter struct {
	http.ResponseWriter

	status      int
	wroteHeader bool
	body        bytes.Buffer
}

func (w *hashingResponseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.status = statusCode
	w.wroteHeader = true
}

func (w *hashingResponseWriter) Write(b []byte) (int, error) {
	w.wroteHeader = true
	return w.body.Write(b)
}
