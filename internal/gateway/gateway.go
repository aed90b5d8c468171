// Package gateway implements the validating forwarder that fronts the core
// service. It re-runs field-level checks and passes requests through
// verbatim, returning the upstream status and body unchanged. It keeps no
// state of its own.
package gateway

import (
	"bytes"
	"io"
	"net/http"
	"strings"

	"shareit-backend/internal/config"
	"shareit-backend/internal/logger"
)

const headerSharerUserID = "X-Sharer-User-Id"

type Gateway struct {
	coreURL string
	client  *http.Client
	limiter *rateLimiter
}

func New(cfg config.GatewayConfig) *Gateway {
	g := &Gateway{
		coreURL: strings.TrimRight(cfg.CoreURL, "/"),
		client:  http.DefaultClient,
	}
	if cfg.RateLimit.RPS > 0 {
		g.limiter = newRateLimiter(cfg.RateLimit)
	}
	return g
}

// forward replays the incoming request against the core service and copies
// the upstream response back untouched.
func (g *Gateway) forward(w http.ResponseWriter, r *http.Request, body []byte) {
	url := g.coreURL + r.URL.RequestURI()
	req, err := http.NewRequestWithContext(r.Context(), r.Method, url, bytes.NewReader(body))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "gateway error")
		return
	}
	req.Header.Set("Content-Type", "application/json")
	if v := r.Header.Get(headerSharerUserID); v != "" {
		req.Header.Set(headerSharerUserID, v)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		logger.Error("Upstream call failed", "url", url, "error", err)
		writeError(w, http.StatusBadGateway, "core service unavailable")
		return
	}
	defer resp.Body.Close()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.StatusCode)
	if _, err := io.Copy(w, resp.Body); err != nil {
		logger.Error("Failed to relay upstream body", "error", err)
	}
}

func readBody(r *http.Request) ([]byte, error) {
	defer r.Body.Close()
	return io.ReadAll(r.Body)
}
