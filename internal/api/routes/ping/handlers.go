// Package ping contains the health-check handler.
package ping

import (
	"net/http"
)

func HandlePing(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	_, _ = w.Write([]byte("pong"))
}
