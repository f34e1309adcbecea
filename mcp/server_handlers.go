package mcp

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"sort"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/xlog"

	"github.com/hermes-rf/cstmcp/mcp/internal/protocol"
	"github.com/hermes-rf/cstmcp/mcp/transport"
)

type listRequestParams struct {
	Cursor *string `json:"cursor"`
}

type callToolRequestParams struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments"`
}

type getPromptRequestParams struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments"`
}

type readResourceRequestParams struct {
	Uri string `json:"uri"`
}

func parseCursor(request *transport.BaseJSONRPCRequest) (*string, error) {
	if len(request.Params) == 0 {
		return nil, nil
	}
	var params listRequestParams
	if err := json.Unmarshal(request.Params, &params); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal list params")
	}
	return params.Cursor, nil
}

// paginate sorts items by key and returns the page after the cursor plus a
// cursor for the next page, if any. The cursor is the base64-encoded key of
// the last item on the page.
func paginate[T any](items []T, key func(T) string, cursor *string, limit *int) ([]T, *string, error) {
	sort.Slice(items, func(i, j int) bool {
		return key(items[i]) < key(items[j])
	})

	start := 0
	if cursor != nil && *cursor != "" {
		decoded, err := base64.StdEncoding.DecodeString(*cursor)
		if err != nil {
			return nil, nil, errors.Wrap(err, "invalid cursor")
		}
		after := string(decoded)
		start = sort.Search(len(items), func(i int) bool {
			return key(items[i]) > after
		})
	}

	if limit == nil {
		return items[start:], nil, nil
	}

	end := start + *limit
	if end >= len(items) {
		return items[start:], nil, nil
	}
	page := items[start:end]
	next := base64.StdEncoding.EncodeToString([]byte(key(page[len(page)-1])))
	return page, &next, nil
}

func (s *Server) handleInitialize(ctx context.Context, request *transport.BaseJSONRPCRequest, _ protocol.RequestHandlerExtra) (transport.JsonRpcBody, error) {
	listChanged := true
	name := s.serverName
	if name == "" {
		name = "mcp-server"
	}
	version := s.serverVersion
	if version == "" {
		version = "0.0.1"
	}
	return InitializeResponse{
		ProtocolVersion: ProtocolVersion,
		Instructions:    s.serverInstructions,
		Capabilities: ServerCapabilities{
			Tools:     &ServerCapabilitiesTools{ListChanged: &listChanged},
			Prompts:   &ServerCapabilitiesPrompts{ListChanged: &listChanged},
			Resources: &ServerCapabilitiesResources{ListChanged: &listChanged},
		},
		ServerInfo: Implementation{
			Name:    name,
			Version: version,
		},
	}, nil
}

func (s *Server) handlePing(ctx context.Context, request *transport.BaseJSONRPCRequest, _ protocol.RequestHandlerExtra) (transport.JsonRpcBody, error) {
	return map[string]any{}, nil
}

func (s *Server) handleListTools(ctx context.Context, request *transport.BaseJSONRPCRequest, _ protocol.RequestHandlerExtra) (transport.JsonRpcBody, error) {
	cursor, err := parseCursor(request)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	tools := make([]ToolRetType, 0, len(s.tools))
	for _, t := range s.tools {
		tools = append(tools, ToolRetType{
			Name:        t.Name,
			Description: t.Description,
			InputSchema: t.InputSchema,
		})
	}
	s.mu.RUnlock()

	page, next, err := paginate(tools, func(t ToolRetType) string { return t.Name }, cursor, s.paginationLimit)
	if err != nil {
		return nil, err
	}
	return ToolsResponse{Tools: page, NextCursor: next}, nil
}

func (s *Server) handleToolCalls(ctx context.Context, request *transport.BaseJSONRPCRequest, _ protocol.RequestHandlerExtra) (transport.JsonRpcBody, error) {
	var params callToolRequestParams
	if err := json.Unmarshal(request.Params, &params); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal arguments")
	}

	s.mu.RLock()
	tool := s.tools[params.Name]
	s.mu.RUnlock()

	if tool == nil {
		return nil, errors.Errorf("unknown tool: %s", params.Name)
	}

	var response *toolResponseSent
	func() {
		defer func() {
			if r := recover(); r != nil {
				logger.ContextKV(ctx, xlog.ERROR, "tool", params.Name, "panic", r)
				response = newToolResponseSentError(errors.Errorf("internal error: tool %s panicked: %v", params.Name, r))
			}
		}()
		response = tool.Handler(ctx, params.Arguments)
	}()

	return response, nil
}

func (s *Server) handleListPrompts(ctx context.Context, request *transport.BaseJSONRPCRequest, _ protocol.RequestHandlerExtra) (transport.JsonRpcBody, error) {
	cursor, err := parseCursor(request)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	prompts := make([]PromptSchema, 0, len(s.prompts))
	for _, p := range s.prompts {
		prompts = append(prompts, PromptSchema{
			Name:        p.Name,
			Description: p.Description,
			Arguments:   p.Arguments,
		})
	}
	s.mu.RUnlock()

	page, next, err := paginate(prompts, func(p PromptSchema) string { return p.Name }, cursor, s.paginationLimit)
	if err != nil {
		return nil, err
	}
	return ListPromptsResponse{Prompts: page, NextCursor: next}, nil
}

func (s *Server) handlePromptCalls(ctx context.Context, request *transport.BaseJSONRPCRequest, _ protocol.RequestHandlerExtra) (transport.JsonRpcBody, error) {
	var params getPromptRequestParams
	if err := json.Unmarshal(request.Params, &params); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal arguments")
	}

	s.mu.RLock()
	prompt := s.prompts[params.Name]
	s.mu.RUnlock()

	if prompt == nil {
		return nil, errors.Errorf("unknown prompt: %s", params.Name)
	}

	return prompt.Handler(ctx, params.Arguments)
}

func (s *Server) handleListResources(ctx context.Context, request *transport.BaseJSONRPCRequest, _ protocol.RequestHandlerExtra) (transport.JsonRpcBody, error) {
	cursor, err := parseCursor(request)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	resources := make([]ResourceSchema, 0, len(s.resources))
	for _, r := range s.resources {
		resources = append(resources, ResourceSchema{
			Uri:         r.Uri,
			Name:        r.Name,
			Description: r.Description,
			MimeType:    r.MimeType,
		})
	}
	s.mu.RUnlock()

	page, next, err := paginate(resources, func(r ResourceSchema) string { return r.Uri }, cursor, s.paginationLimit)
	if err != nil {
		return nil, err
	}
	return ListResourcesResponse{Resources: page, NextCursor: next}, nil
}

func (s *Server) handleResourceCalls(ctx context.Context, request *transport.BaseJSONRPCRequest, _ protocol.RequestHandlerExtra) (transport.JsonRpcBody, error) {
	var params readResourceRequestParams
	if err := json.Unmarshal(request.Params, &params); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal arguments")
	}

	s.mu.RLock()
	resource := s.resources[params.Uri]
	s.mu.RUnlock()

	if resource == nil {
		return nil, errors.Errorf("unknown resource: %s", params.Uri)
	}

	return resource.Handler()
}

func (s *Server) handleListResourceTemplates(ctx context.Context, request *transport.BaseJSONRPCRequest, _ protocol.RequestHandlerExtra) (transport.JsonRpcBody, error) {
	cursor, err := parseCursor(request)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	templates := make([]ResourceTemplateSchema, 0, len(s.templates))
	for _, t := range s.templates {
		templates = append(templates, ResourceTemplateSchema{
			UriTemplate: t.UriTemplate,
			Name:        t.Name,
			Description: t.Description,
			MimeType:    t.MimeType,
		})
	}
	s.mu.RUnlock()

	page, next, err := paginate(templates, func(t ResourceTemplateSchema) string { return t.UriTemplate }, cursor, s.paginationLimit)
	if err != nil {
		return nil, err
	}
	return ListResourceTemplatesResponse{Templates: page, NextCursor: next}, nil
}
