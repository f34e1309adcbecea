package mcp

import (
	"encoding/json"

	"github.com/cockroachdb/errors"
)

// ContentType discriminates the variants of Content.
type ContentType string

const (
	ContentTypeText             ContentType = "text"
	ContentTypeImage            ContentType = "image"
	ContentTypeEmbeddedResource ContentType = "resource"
)

// Annotations describe the intended audience and priority of a content item.
type Annotations struct {
	Audience []Role   `json:"audience,omitempty"`
	Priority *float64 `json:"priority,omitempty"`
}

// TextContent is plain text produced by a tool or prompt.
type TextContent struct {
	Text string `json:"text"`
}

// ImageContent is base64-encoded image data.
type ImageContent struct {
	Data     string `json:"data"`
	MimeType string `json:"mimeType"`
}

// Content is a tagged union over the content variants.
type Content struct {
	Type             ContentType
	TextContent      *TextContent
	ImageContent     *ImageContent
	EmbeddedResource *EmbeddedResource
	Annotations      *Annotations
}

// NewTextContent creates a text content item.
func NewTextContent(content string) *Content {
	return &Content{
		Type:        ContentTypeText,
		TextContent: &TextContent{Text: content},
	}
}

// NewImageContent creates an image content item from base64 data.
func NewImageContent(base64EncodedData string, mimeType string) *Content {
	return &Content{
		Type:         ContentTypeImage,
		ImageContent: &ImageContent{Data: base64EncodedData, MimeType: mimeType},
	}
}

// WithAnnotations attaches annotations to the content item.
func (c *Content) WithAnnotations(annotations Annotations) *Content {
	c.Annotations = &annotations
	return c
}

// MarshalJSON flattens the active variant alongside the type tag.
func (c Content) MarshalJSON() ([]byte, error) {
	switch c.Type {
	case ContentTypeText:
		return json.Marshal(struct {
			Type        ContentType  `json:"type"`
			Text        string       `json:"text"`
			Annotations *Annotations `json:"annotations,omitempty"`
		}{Type: c.Type, Text: c.TextContent.Text, Annotations: c.Annotations})
	case ContentTypeImage:
		return json.Marshal(struct {
			Type        ContentType  `json:"type"`
			Data        string       `json:"data"`
			MimeType    string       `json:"mimeType"`
			Annotations *Annotations `json:"annotations,omitempty"`
		}{Type: c.Type, Data: c.ImageContent.Data, MimeType: c.ImageContent.MimeType, Annotations: c.Annotations})
	case ContentTypeEmbeddedResource:
		return json.Marshal(struct {
			Type        ContentType       `json:"type"`
			Resource    *EmbeddedResource `json:"resource"`
			Annotations *Annotations      `json:"annotations,omitempty"`
		}{Type: c.Type, Resource: c.EmbeddedResource, Annotations: c.Annotations})
	}
	return nil, errors.Errorf("unknown content type: %s", c.Type)
}

// EmbeddedResource is resource content included inline in a response.
type EmbeddedResource struct {
	Uri      string `json:"uri"`
	MimeType string `json:"mimeType,omitempty"`
	Text     string `json:"text,omitempty"`
	Blob     string `json:"blob,omitempty"`
}

// NewTextEmbeddedResource creates a text resource payload.
func NewTextEmbeddedResource(uri string, text string, mimeType string) *EmbeddedResource {
	return &EmbeddedResource{
		Uri:      uri,
		MimeType: mimeType,
		Text:     text,
	}
}

// NewBlobEmbeddedResource creates a binary resource payload.
func NewBlobEmbeddedResource(uri string, base64EncodedData string, mimeType string) *EmbeddedResource {
	return &EmbeddedResource{
		Uri:      uri,
		MimeType: mimeType,
		Blob:     base64EncodedData,
	}
}

// ToolResponse is the content a tool handler returns to the caller.
type ToolResponse struct {
	Content []*Content `json:"content"`
}

// NewToolResponse creates a tool response from content items.
func NewToolResponse(content ...*Content) *ToolResponse {
	return &ToolResponse{
		Content: content,
	}
}

// Role identifies the author of a prompt message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// PromptMessage is one message of a rendered prompt.
type PromptMessage struct {
	Content *Content `json:"content"`
	Role    Role     `json:"role"`
}

// NewPromptMessage creates a prompt message.
func NewPromptMessage(content *Content, role Role) *PromptMessage {
	return &PromptMessage{
		Content: content,
		Role:    role,
	}
}

// PromptResponse is the result of rendering a prompt.
type PromptResponse struct {
	Description string           `json:"description,omitempty"`
	Messages    []*PromptMessage `json:"messages"`
}

// NewPromptResponse creates a prompt response.
func NewPromptResponse(description string, messages ...*PromptMessage) *PromptResponse {
	return &PromptResponse{
		Description: description,
		Messages:    messages,
	}
}

// ResourceResponse is the result of reading a resource.
type ResourceResponse struct {
	Contents []*EmbeddedResource `json:"contents"`
}

// NewResourceResponse creates a resource response.
func NewResourceResponse(contents ...*EmbeddedResource) *ResourceResponse {
	return &ResourceResponse{
		Contents: contents,
	}
}

// ToolRetType describes a registered tool in tools/list responses.
type ToolRetType struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	InputSchema any    `json:"inputSchema"`
}

// ToolsResponse is the reply to tools/list.
type ToolsResponse struct {
	Tools      []ToolRetType `json:"tools"`
	NextCursor *string       `json:"nextCursor,omitempty"`
}

// PromptSchemaArgument describes one argument of a prompt.
type PromptSchemaArgument struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Required    *bool  `json:"required,omitempty"`
}

// PromptSchema describes a registered prompt in prompts/list responses.
type PromptSchema struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description,omitempty"`
	Arguments   []PromptSchemaArgument `json:"arguments"`
}

// ListPromptsResponse is the reply to prompts/list.
type ListPromptsResponse struct {
	Prompts    []PromptSchema `json:"prompts"`
	NextCursor *string        `json:"nextCursor,omitempty"`
}

// ResourceSchema describes a registered resource in resources/list responses.
type ResourceSchema struct {
	Annotations *Annotations `json:"annotations,omitempty"`
	Description string       `json:"description,omitempty"`
	MimeType    string       `json:"mimeType,omitempty"`
	Name        string       `json:"name"`
	Uri         string       `json:"uri"`
}

// ListResourcesResponse is the reply to resources/list.
type ListResourcesResponse struct {
	Resources  []ResourceSchema `json:"resources"`
	NextCursor *string          `json:"nextCursor,omitempty"`
}

// ResourceTemplateSchema describes a registered resource template.
type ResourceTemplateSchema struct {
	Annotations *Annotations `json:"annotations,omitempty"`
	Description string       `json:"description,omitempty"`
	MimeType    string       `json:"mimeType,omitempty"`
	Name        string       `json:"name"`
	UriTemplate string       `json:"uriTemplate"`
}

// ListResourceTemplatesResponse is the reply to resources/templates/list.
type ListResourceTemplatesResponse struct {
	Templates  []ResourceTemplateSchema `json:"resourceTemplates"`
	NextCursor *string                  `json:"nextCursor,omitempty"`
}

// toolResponseSent wraps a tool result or handler error for serialization.
// Handler errors are reported in-band as isError content rather than as
// protocol errors, so the calling agent can read the diagnostic text.
type toolResponseSent struct {
	Response *ToolResponse
	Error    error
}

func newToolResponseSent(response *ToolResponse) *toolResponseSent {
	return &toolResponseSent{Response: response}
}

func newToolResponseSentError(err error) *toolResponseSent {
	return &toolResponseSent{Error: err}
}

func (c *toolResponseSent) MarshalJSON() ([]byte, error) {
	content := c.Response.GetContent()
	if c.Error != nil {
		content = []*Content{NewTextContent(c.Error.Error())}
	}
	return json.Marshal(struct {
		Content []*Content `json:"content"`
		IsError bool       `json:"isError"`
	}{
		Content: content,
		IsError: c.Error != nil,
	})
}

// GetContent is nil-safe access to the response content.
func (r *ToolResponse) GetContent() []*Content {
	if r == nil {
		return nil
	}
	return r.Content
}

// InitializeResponse is the reply to initialize.
type InitializeResponse struct {
	Meta            map[string]any     `json:"_meta,omitempty"`
	Capabilities    ServerCapabilities `json:"capabilities"`
	Instructions    string             `json:"instructions,omitempty"`
	ProtocolVersion string             `json:"protocolVersion"`
	ServerInfo      Implementation     `json:"serverInfo"`
}

// ServerCapabilities advertises the feature set of the server.
type ServerCapabilities struct {
	Tools     *ServerCapabilitiesTools     `json:"tools,omitempty"`
	Prompts   *ServerCapabilitiesPrompts   `json:"prompts,omitempty"`
	Resources *ServerCapabilitiesResources `json:"resources,omitempty"`
}

type ServerCapabilitiesTools struct {
	ListChanged *bool `json:"listChanged,omitempty"`
}

type ServerCapabilitiesPrompts struct {
	ListChanged *bool `json:"listChanged,omitempty"`
}

type ServerCapabilitiesResources struct {
	ListChanged *bool `json:"listChanged,omitempty"`
	Subscribe   *bool `json:"subscribe,omitempty"`
}

// Implementation identifies the server software.
type Implementation struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}
