// Package tools defines the Tool interface for agents driving the simulation
// engine, including registration, parameter schema, and MCP integration.
package tools
