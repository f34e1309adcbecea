// Package httptransport runs the MCP server over stateless HTTP: each POST
// carries one JSON-RPC payload and the reply is written in the same exchange.
package httptransport

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/xlog"

	"github.com/hermes-rf/cstmcp/mcp/transport"
)

var logger = xlog.NewPackageLogger("github.com/hermes-rf/cstmcp/mcp/transport", "httptransport")

// HTTPTransport implements a stateless HTTP transport for MCP
type HTTPTransport struct {
	*transport.Base

	server   *http.Server
	endpoint string
	addr     string
}

// NewHTTPTransport creates a new HTTP transport that serves the given
// endpoint path. The default listen address is :8080.
func NewHTTPTransport(endpoint string) *HTTPTransport {
	return &HTTPTransport{
		Base:     transport.NewBase(),
		endpoint: endpoint,
		addr:     ":8080",
	}
}

// WithAddr sets the address to listen on
func (t *HTTPTransport) WithAddr(addr string) *HTTPTransport {
	t.addr = addr
	return t
}

// Start implements Transport.Start. It blocks serving HTTP until Close.
func (t *HTTPTransport) Start(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc(t.endpoint, t.handleRequest)

	t.server = &http.Server{
		Addr:    t.addr,
		Handler: mux,
	}

	logger.KV(xlog.DEBUG, "status", "listening", "addr", t.addr, "endpoint", t.endpoint)
	return t.server.ListenAndServe()
}

// Close implements Transport.Close
func (t *HTTPTransport) Close() error {
	if t.server != nil {
		if err := t.server.Close(); err != nil {
			return err
		}
	}
	return t.Base.Close()
}

func (t *HTTPTransport) handleRequest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Only POST method is supported", http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, errors.Wrap(err, "failed to read request body").Error(), http.StatusBadRequest)
		return
	}

	response, err := t.HandleMessage(ctx, body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	jsonData, err := json.Marshal(response)
	if err != nil {
		logger.ContextKV(ctx, xlog.ERROR, "reason", "marshal_response", "err", err.Error())
		http.Error(w, "Failed to marshal response", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(jsonData)
}

var _ transport.Transport = (*HTTPTransport)(nil)
