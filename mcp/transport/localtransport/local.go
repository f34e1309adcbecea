// Package localtransport provides an in-process MCP transport. It is used to
// invoke the tool server directly, without a network hop, which keeps tests
// and embedded deployments simple.
package localtransport

import (
	"context"

	"github.com/hermes-rf/cstmcp/mcp/transport"
)

// Transport is a stateless in-process transport. Callers feed raw JSON-RPC
// payloads into HandleMessage and receive the reply synchronously.
type Transport struct {
	*transport.Base
}

func New() *Transport {
	return &Transport{
		Base: transport.NewBase(),
	}
}

// Start implements Transport.Start. The local transport has no connection to
// establish.
func (s *Transport) Start(ctx context.Context) error {
	return nil
}

var _ transport.Transport = (*Transport)(nil)
