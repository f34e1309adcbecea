// Package mcp implements a Model Context Protocol server: tools, prompts and
// resources registered with typed Go handlers and served over a pluggable
// JSON-RPC transport.
package mcp

import (
	"context"
	"encoding/json"
	"reflect"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/xlog"
	"github.com/invopop/jsonschema"

	"github.com/hermes-rf/cstmcp/mcp/internal/protocol"
	"github.com/hermes-rf/cstmcp/mcp/transport"
	"github.com/hermes-rf/cstmcp/schema"
)

var logger = xlog.NewPackageLogger("github.com/hermes-rf/cstmcp", "mcp")

// ProtocolVersion is the MCP revision this server implements.
const ProtocolVersion = "2024-11-05"

var (
	contextType        = reflect.TypeOf((*context.Context)(nil)).Elem()
	errorType          = reflect.TypeOf((*error)(nil)).Elem()
	toolResponseType   = reflect.TypeOf((*ToolResponse)(nil))
	promptResponseType = reflect.TypeOf((*PromptResponse)(nil))
)

type registeredTool struct {
	Name        string
	Description string
	InputSchema any
	Handler     func(ctx context.Context, arguments json.RawMessage) *toolResponseSent
}

type registeredPrompt struct {
	Name        string
	Description string
	Arguments   []PromptSchemaArgument
	Handler     func(ctx context.Context, arguments json.RawMessage) (*PromptResponse, error)
}

type registeredResource struct {
	Uri         string
	Name        string
	Description string
	MimeType    string
	Handler     func() (*ResourceResponse, error)
}

type registeredResourceTemplate struct {
	UriTemplate string
	Name        string
	Description string
	MimeType    string
}

// Server exposes registered tools, prompts and resources over MCP.
type Server struct {
	transport          transport.Transport
	protocol           *protocol.Protocol
	paginationLimit    *int
	serverName         string
	serverVersion      string
	serverInstructions string

	mu        sync.RWMutex
	running   bool
	tools     map[string]*registeredTool
	prompts   map[string]*registeredPrompt
	resources map[string]*registeredResource
	templates map[string]*registeredResourceTemplate
}

// ServerOptions mutates the server during construction.
type ServerOptions func(*Server)

// WithName sets the server name reported during initialize.
func WithName(name string) ServerOptions {
	return func(s *Server) {
		s.serverName = name
	}
}

// WithVersion sets the server version reported during initialize.
func WithVersion(version string) ServerOptions {
	return func(s *Server) {
		s.serverVersion = version
	}
}

// WithInstructions sets usage guidance reported during initialize.
func WithInstructions(instructions string) ServerOptions {
	return func(s *Server) {
		s.serverInstructions = instructions
	}
}

// WithPaginationLimit caps the page size of list responses.
func WithPaginationLimit(limit int) ServerOptions {
	return func(s *Server) {
		s.paginationLimit = &limit
	}
}

// NewServer creates a server bound to the given transport.
func NewServer(tr transport.Transport, options ...ServerOptions) *Server {
	s := &Server{
		transport: tr,
		protocol:  protocol.NewProtocol(nil),
		tools:     make(map[string]*registeredTool),
		prompts:   make(map[string]*registeredPrompt),
		resources: make(map[string]*registeredResource),
		templates: make(map[string]*registeredResourceTemplate),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// Serve registers the protocol handlers and connects the transport. Whether
// this blocks depends on the transport: stdio and HTTP transports block in
// Start, in-process transports return immediately.
func (s *Server) Serve() error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return errors.Errorf("server is already running")
	}
	s.mu.Unlock()

	pr := s.protocol
	pr.SetRequestHandler("initialize", s.handleInitialize)
	pr.SetRequestHandler("ping", s.handlePing)
	pr.SetRequestHandler("tools/list", s.handleListTools)
	pr.SetRequestHandler("tools/call", s.handleToolCalls)
	pr.SetRequestHandler("prompts/list", s.handleListPrompts)
	pr.SetRequestHandler("prompts/get", s.handlePromptCalls)
	pr.SetRequestHandler("resources/list", s.handleListResources)
	pr.SetRequestHandler("resources/read", s.handleResourceCalls)
	pr.SetRequestHandler("resources/templates/list", s.handleListResourceTemplates)

	s.mu.Lock()
	s.running = true
	s.mu.Unlock()

	return pr.Connect(s.transport)
}

// Close shuts down the transport.
func (s *Server) Close() error {
	return s.protocol.Close()
}

// RegisterTool registers a tool handler. The handler must be a function of
// one struct argument, optionally preceded by a context.Context, returning
// (*ToolResponse, error). The argument struct defines the tool input schema
// via json and jsonschema tags.
func (s *Server) RegisterTool(name string, description string, handler any) error {
	shape, err := validateHandler(handler, toolResponseType)
	if err != nil {
		return errors.WithMessagef(err, "invalid handler for tool %q", name)
	}

	inputSchema, err := schema.New(shape.argType)
	if err != nil {
		return errors.WithMessagef(err, "failed to build schema for tool %q", name)
	}

	handlerValue := reflect.ValueOf(handler)
	call := func(ctx context.Context, arguments json.RawMessage) *toolResponseSent {
		in, err := shape.buildArgs(ctx, arguments)
		if err != nil {
			return newToolResponseSentError(err)
		}
		out := handlerValue.Call(in)
		if !out[1].IsNil() {
			return newToolResponseSentError(out[1].Interface().(error))
		}
		return newToolResponseSent(out[0].Interface().(*ToolResponse))
	}

	s.mu.Lock()
	s.tools[name] = &registeredTool{
		Name:        name,
		Description: description,
		InputSchema: inputSchema.Parameters,
		Handler:     call,
	}
	s.mu.Unlock()

	return s.notifyListChanged("notifications/tools/list_changed")
}

// DeregisterTool removes a registered tool.
func (s *Server) DeregisterTool(name string) error {
	s.mu.Lock()
	delete(s.tools, name)
	s.mu.Unlock()
	return s.notifyListChanged("notifications/tools/list_changed")
}

// RegisterPrompt registers a prompt handler with the same shape rules as
// RegisterTool, returning (*PromptResponse, error).
func (s *Server) RegisterPrompt(name string, description string, handler any) error {
	shape, err := validateHandler(handler, promptResponseType)
	if err != nil {
		return errors.WithMessagef(err, "invalid handler for prompt %q", name)
	}

	promptSchema, err := schema.New(shape.argType)
	if err != nil {
		return errors.WithMessagef(err, "failed to build schema for prompt %q", name)
	}
	arguments := promptArguments(promptSchema)

	handlerValue := reflect.ValueOf(handler)
	call := func(ctx context.Context, rawArgs json.RawMessage) (*PromptResponse, error) {
		in, err := shape.buildArgs(ctx, rawArgs)
		if err != nil {
			return nil, err
		}
		out := handlerValue.Call(in)
		if !out[1].IsNil() {
			return nil, out[1].Interface().(error)
		}
		return out[0].Interface().(*PromptResponse), nil
	}

	s.mu.Lock()
	s.prompts[name] = &registeredPrompt{
		Name:        name,
		Description: description,
		Arguments:   arguments,
		Handler:     call,
	}
	s.mu.Unlock()

	return s.notifyListChanged("notifications/prompts/list_changed")
}

// DeregisterPrompt removes a registered prompt.
func (s *Server) DeregisterPrompt(name string) error {
	s.mu.Lock()
	delete(s.prompts, name)
	s.mu.Unlock()
	return s.notifyListChanged("notifications/prompts/list_changed")
}

// RegisterResource registers a readable resource.
func (s *Server) RegisterResource(uri string, name string, description string, mimeType string, handler func() (*ResourceResponse, error)) error {
	s.mu.Lock()
	s.resources[uri] = &registeredResource{
		Uri:         uri,
		Name:        name,
		Description: description,
		MimeType:    mimeType,
		Handler:     handler,
	}
	s.mu.Unlock()
	return s.notifyListChanged("notifications/resources/list_changed")
}

// DeregisterResource removes a registered resource.
func (s *Server) DeregisterResource(uri string) error {
	s.mu.Lock()
	delete(s.resources, uri)
	s.mu.Unlock()
	return s.notifyListChanged("notifications/resources/list_changed")
}

// RegisterResourceTemplate registers a parameterized resource URI.
func (s *Server) RegisterResourceTemplate(uriTemplate string, name string, description string, mimeType string) error {
	s.mu.Lock()
	s.templates[uriTemplate] = &registeredResourceTemplate{
		UriTemplate: uriTemplate,
		Name:        name,
		Description: description,
		MimeType:    mimeType,
	}
	s.mu.Unlock()
	return s.notifyListChanged("notifications/resources/list_changed")
}

// DeregisterResourceTemplate removes a registered resource template.
func (s *Server) DeregisterResourceTemplate(uriTemplate string) error {
	s.mu.Lock()
	delete(s.templates, uriTemplate)
	s.mu.Unlock()
	return s.notifyListChanged("notifications/resources/list_changed")
}

func (s *Server) notifyListChanged(method string) error {
	s.mu.RLock()
	running := s.running
	s.mu.RUnlock()
	if !running {
		return nil
	}
	return s.protocol.Notification(method, nil)
}

// handlerShape describes a validated tool or prompt handler function.
type handlerShape struct {
	argType    reflect.Type
	argIsPtr   bool
	hasContext bool
}

// buildArgs decodes the JSON arguments and assembles the reflect call inputs.
func (h handlerShape) buildArgs(ctx context.Context, arguments json.RawMessage) ([]reflect.Value, error) {
	args := reflect.New(h.argType)
	if len(arguments) > 0 {
		if err := json.Unmarshal(arguments, args.Interface()); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal arguments")
		}
	}

	argValue := args.Elem()
	if h.argIsPtr {
		argValue = args
	}

	in := []reflect.Value{argValue}
	if h.hasContext {
		in = append([]reflect.Value{reflect.ValueOf(ctx)}, in...)
	}
	return in, nil
}

// validateHandler checks the handler is func([ctx,] args) (*R, error), where
// args is a struct or pointer to struct, and returns its shape.
func validateHandler(handler any, responseType reflect.Type) (handlerShape, error) {
	var shape handlerShape

	t := reflect.TypeOf(handler)
	if t == nil || t.Kind() != reflect.Func {
		return shape, errors.Errorf("handler must be a function")
	}

	switch t.NumIn() {
	case 1:
	case 2:
		if !t.In(0).Implements(contextType) {
			return shape, errors.Errorf("first argument must be context.Context")
		}
		shape.hasContext = true
	default:
		return shape, errors.Errorf("handler must accept one argument struct, optionally preceded by a context")
	}

	argType := t.In(t.NumIn() - 1)
	if argType.Kind() == reflect.Ptr {
		shape.argIsPtr = true
		argType = argType.Elem()
	}
	if argType.Kind() != reflect.Struct {
		return shape, errors.Errorf("handler argument must be a struct, got %s", argType.Kind())
	}
	shape.argType = argType

	if t.NumOut() != 2 || t.Out(0) != responseType || !t.Out(1).Implements(errorType) {
		return shape, errors.Errorf("handler must return (%s, error)", responseType)
	}

	return shape, nil
}

// promptArguments flattens the top-level schema properties into the prompt
// argument list.
func promptArguments(s *schema.Schema) []PromptSchemaArgument {
	funcSchema, ok := s.Parameters.(*jsonschema.Schema)
	if !ok || funcSchema.Properties == nil {
		return nil
	}
	required := make(map[string]bool, len(funcSchema.Required))
	for _, name := range funcSchema.Required {
		required[name] = true
	}
	var args []PromptSchemaArgument
	for pair := funcSchema.Properties.Oldest(); pair != nil; pair = pair.Next() {
		req := required[pair.Key]
		args = append(args, PromptSchemaArgument{
			Name:        pair.Key,
			Description: pair.Value.Description,
			Required:    &req,
		})
	}
	return args
}
