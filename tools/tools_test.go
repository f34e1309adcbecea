package tools_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hermes-rf/cstmcp/mcp"
	"github.com/hermes-rf/cstmcp/mcp/transport/localtransport"
	"github.com/hermes-rf/cstmcp/tools"
)

func Test_ServerImplementsRegistrator(t *testing.T) {
	var r tools.McpServerRegistrator = mcp.NewServer(localtransport.New())
	assert.NoError(t, r.RegisterTool("ping", "Reply with pong.", func(struct{}) (*mcp.ToolResponse, error) {
		return mcp.NewToolResponse(mcp.NewTextContent("pong")), nil
	}))
}
