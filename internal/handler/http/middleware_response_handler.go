package http

import "net/http"

// responseWriter decorates [http.ResponseWriter] so middleware can read
// the status code and body size after the downstream handler returned.
// WriteHeader is forwarded at most once; later calls are ignored, matching
// the standard library's contract.
type responseWriter struct {
	http.ResponseWriter

	status      int
	size        int
	wroteHeader bool
}

func (w *responseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.status = statusCode
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(statusCode)
}

// Write forwards b and accumulates the byte count. A Write before any
// WriteHeader implies 200, like the standard response writer.
func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}
