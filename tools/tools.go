package tools

// McpServerRegistrator is the part of the MCP server a tool needs to
// register itself.
type McpServerRegistrator interface {
	RegisterTool(name string, description string, handler any) error
}
