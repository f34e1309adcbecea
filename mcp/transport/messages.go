package transport

import (
	"encoding/json"

	"github.com/cockroachdb/errors"
)

// BaseJSONRPCRequest is a request that expects a response.
type BaseJSONRPCRequest struct {
	Jsonrpc string `json:"jsonrpc"`
	Method  string `json:"method"`
	// Params is kept raw so each handler can decode into its own type.
	Params json.RawMessage `json:"params"`
	Id     RequestId       `json:"id"`
}

// UnmarshalJSON rejects payloads that are not requests so callers can probe
// a raw message against each of the four JSON-RPC shapes in turn.
func (m *BaseJSONRPCRequest) UnmarshalJSON(data []byte) error {
	required := struct {
		Jsonrpc *string          `json:"jsonrpc"`
		Method  *string          `json:"method"`
		Id      *RequestId       `json:"id"`
		Params  *json.RawMessage `json:"params"`
	}{}
	if err := json.Unmarshal(data, &required); err != nil {
		return err
	}
	if required.Jsonrpc == nil || required.Method == nil || required.Id == nil {
		return errors.Errorf("missing required fields in JSONRPCRequest")
	}
	m.Jsonrpc = *required.Jsonrpc
	m.Method = *required.Method
	m.Id = *required.Id
	if required.Params != nil {
		m.Params = *required.Params
	}
	return nil
}

// BaseJSONRPCNotification is a one-way message with no response.
type BaseJSONRPCNotification struct {
	Jsonrpc string          `json:"jsonrpc"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// UnmarshalJSON rejects payloads that carry an id or lack a method.
func (m *BaseJSONRPCNotification) UnmarshalJSON(data []byte) error {
	required := struct {
		Jsonrpc *string          `json:"jsonrpc"`
		Method  *string          `json:"method"`
		Id      *RequestId       `json:"id"`
		Params  *json.RawMessage `json:"params"`
	}{}
	if err := json.Unmarshal(data, &required); err != nil {
		return err
	}
	if required.Jsonrpc == nil || required.Method == nil || required.Id != nil {
		return errors.Errorf("message is not a JSONRPCNotification")
	}
	m.Jsonrpc = *required.Jsonrpc
	m.Method = *required.Method
	if required.Params != nil {
		m.Params = *required.Params
	}
	return nil
}

// BaseJSONRPCResponse is a successful reply to a request.
type BaseJSONRPCResponse struct {
	Jsonrpc string          `json:"jsonrpc"`
	Result  json.RawMessage `json:"result"`
	Id      RequestId       `json:"id"`
}

// UnmarshalJSON rejects payloads that are not successful responses.
func (m *BaseJSONRPCResponse) UnmarshalJSON(data []byte) error {
	required := struct {
		Jsonrpc *string          `json:"jsonrpc"`
		Result  *json.RawMessage `json:"result"`
		Id      *RequestId       `json:"id"`
	}{}
	if err := json.Unmarshal(data, &required); err != nil {
		return err
	}
	if required.Jsonrpc == nil || required.Result == nil || required.Id == nil {
		return errors.Errorf("missing required fields in JSONRPCResponse")
	}
	m.Jsonrpc = *required.Jsonrpc
	m.Result = *required.Result
	m.Id = *required.Id
	return nil
}

// BaseJSONRPCErrorInner carries the error code and message of a failed call.
type BaseJSONRPCErrorInner struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// BaseJSONRPCError is an error reply to a request.
type BaseJSONRPCError struct {
	Jsonrpc string                `json:"jsonrpc"`
	Id      RequestId             `json:"id"`
	Error   BaseJSONRPCErrorInner `json:"error"`
}

// UnmarshalJSON rejects payloads that are not error responses.
func (m *BaseJSONRPCError) UnmarshalJSON(data []byte) error {
	required := struct {
		Jsonrpc *string                `json:"jsonrpc"`
		Id      *RequestId             `json:"id"`
		Error   *BaseJSONRPCErrorInner `json:"error"`
	}{}
	if err := json.Unmarshal(data, &required); err != nil {
		return err
	}
	if required.Jsonrpc == nil || required.Id == nil || required.Error == nil {
		return errors.Errorf("missing required fields in JSONRPCError")
	}
	m.Jsonrpc = *required.Jsonrpc
	m.Id = *required.Id
	m.Error = *required.Error
	return nil
}

// BaseMessageType discriminates the variants of BaseJsonRpcMessage.
type BaseMessageType string

const (
	BaseMessageTypeJSONRPCRequestType      BaseMessageType = "request"
	BaseMessageTypeJSONRPCNotificationType BaseMessageType = "notification"
	BaseMessageTypeJSONRPCResponseType     BaseMessageType = "response"
	BaseMessageTypeJSONRPCErrorType        BaseMessageType = "error"
)

// BaseJsonRpcMessage is a tagged union over the four JSON-RPC message shapes.
type BaseJsonRpcMessage struct {
	Type                BaseMessageType
	JsonRpcRequest      *BaseJSONRPCRequest
	JsonRpcNotification *BaseJSONRPCNotification
	JsonRpcResponse     *BaseJSONRPCResponse
	JsonRpcError        *BaseJSONRPCError
}

func NewBaseMessageRequest(request *BaseJSONRPCRequest) *BaseJsonRpcMessage {
	return &BaseJsonRpcMessage{
		Type:           BaseMessageTypeJSONRPCRequestType,
		JsonRpcRequest: request,
	}
}

func NewBaseMessageNotification(notification *BaseJSONRPCNotification) *BaseJsonRpcMessage {
	return &BaseJsonRpcMessage{
		Type:                BaseMessageTypeJSONRPCNotificationType,
		JsonRpcNotification: notification,
	}
}

func NewBaseMessageResponse(response *BaseJSONRPCResponse) *BaseJsonRpcMessage {
	return &BaseJsonRpcMessage{
		Type:            BaseMessageTypeJSONRPCResponseType,
		JsonRpcResponse: response,
	}
}

func NewBaseMessageError(error *BaseJSONRPCError) *BaseJsonRpcMessage {
	return &BaseJsonRpcMessage{
		Type:         BaseMessageTypeJSONRPCErrorType,
		JsonRpcError: error,
	}
}

// MessageID returns the request identifier of the variant, or 0 for
// notifications.
func (m *BaseJsonRpcMessage) MessageID() RequestId {
	switch m.Type {
	case BaseMessageTypeJSONRPCRequestType:
		return m.JsonRpcRequest.Id
	case BaseMessageTypeJSONRPCResponseType:
		return m.JsonRpcResponse.Id
	case BaseMessageTypeJSONRPCErrorType:
		return m.JsonRpcError.Id
	default:
		return 0
	}
}

// MarshalJSON serializes the active variant without the union envelope.
func (m *BaseJsonRpcMessage) MarshalJSON() ([]byte, error) {
	switch m.Type {
	case BaseMessageTypeJSONRPCRequestType:
		return json.Marshal(m.JsonRpcRequest)
	case BaseMessageTypeJSONRPCNotificationType:
		return json.Marshal(m.JsonRpcNotification)
	case BaseMessageTypeJSONRPCResponseType:
		return json.Marshal(m.JsonRpcResponse)
	case BaseMessageTypeJSONRPCErrorType:
		return json.Marshal(m.JsonRpcError)
	}
	return nil, errors.Errorf("unknown message type: %s", m.Type)
}

// UnmarshalJSON probes the payload against the four message shapes.
func (m *BaseJsonRpcMessage) UnmarshalJSON(data []byte) error {
	var request BaseJSONRPCRequest
	if err := json.Unmarshal(data, &request); err == nil {
		m.Type = BaseMessageTypeJSONRPCRequestType
		m.JsonRpcRequest = &request
		return nil
	}

	var notification BaseJSONRPCNotification
	if err := json.Unmarshal(data, &notification); err == nil {
		m.Type = BaseMessageTypeJSONRPCNotificationType
		m.JsonRpcNotification = &notification
		return nil
	}

	var response BaseJSONRPCResponse
	if err := json.Unmarshal(data, &response); err == nil {
		m.Type = BaseMessageTypeJSONRPCResponseType
		m.JsonRpcResponse = &response
		return nil
	}

	var errorResponse BaseJSONRPCError
	if err := json.Unmarshal(data, &errorResponse); err == nil {
		m.Type = BaseMessageTypeJSONRPCErrorType
		m.JsonRpcError = &errorResponse
		return nil
	}

	return errors.Errorf("failed to unmarshal JSON-RPC message")
}
