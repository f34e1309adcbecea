package transport

import (
	"context"
	"encoding/json"
	"sync"
	"sync/atomic"

	"github.com/cockroachdb/errors"
)

// Base implements the request/response bookkeeping shared by the stateless
// transports: each incoming payload is assigned a fresh internal id, routed to
// the message handler, and the caller blocks until the matching reply is sent.
type Base struct {
	messageHandler func(ctx context.Context, message *BaseJsonRpcMessage)
	errorHandler   func(error)
	closeHandler   func()
	mu             sync.RWMutex
	responseMap    map[int64]chan *BaseJsonRpcMessage
	atomicCounter  int64
}

func NewBase() *Base {
	return &Base{
		responseMap: make(map[int64]chan *BaseJsonRpcMessage),
	}
}

// Send implements Transport.Send
func (t *Base) Send(ctx context.Context, message *BaseJsonRpcMessage) error {
	if message.Type == BaseMessageTypeJSONRPCNotificationType {
		// Stateless transports have no channel to push server-initiated
		// notifications into.
		return nil
	}
	key := message.MessageID()
	t.mu.Lock()
	defer t.mu.Unlock()

	responseChannel := t.responseMap[int64(key)]
	if responseChannel == nil {
		return errors.Errorf("no response channel found for key: %d", key)
	}
	responseChannel <- message
	return nil
}

// Close implements Transport.Close
func (t *Base) Close() error {
	if t.closeHandler != nil {
		t.closeHandler()
	}
	return nil
}

// SetCloseHandler implements Transport.SetCloseHandler
func (t *Base) SetCloseHandler(handler func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.closeHandler = handler
}

// SetErrorHandler implements Transport.SetErrorHandler
func (t *Base) SetErrorHandler(handler func(error)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.errorHandler = handler
}

// SetMessageHandler implements Transport.SetMessageHandler
func (t *Base) SetMessageHandler(handler func(ctx context.Context, message *BaseJsonRpcMessage)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.messageHandler = handler
}

func (t *Base) reportError(err error) {
	t.mu.RLock()
	handler := t.errorHandler
	t.mu.RUnlock()
	if handler != nil {
		handler(err)
	}
}

// HandleMessage processes an incoming payload and blocks until the protocol
// layer produces the response for it.
func (t *Base) HandleMessage(ctx context.Context, body []byte) (*BaseJsonRpcMessage, error) {
	key := atomic.AddInt64(&t.atomicCounter, 1)
	t.mu.Lock()
	t.responseMap[key] = make(chan *BaseJsonRpcMessage)
	t.mu.Unlock()

	var prevId *RequestId

	// Try to unmarshal as a request first
	var request BaseJSONRPCRequest
	if err := json.Unmarshal(body, &request); err == nil {
		id := request.Id
		prevId = &id
		request.Id = RequestId(key)
		t.mu.RLock()
		handler := t.messageHandler
		t.mu.RUnlock()

		if handler != nil {
			handler(ctx, NewBaseMessageRequest(&request))
		}
	} else {
		// Notifications have no reply, so respond with an empty body
		// right away.
		var notification BaseJSONRPCNotification
		if err := json.Unmarshal(body, &notification); err == nil {
			t.mu.RLock()
			handler := t.messageHandler
			t.mu.RUnlock()

			if handler != nil {
				handler(ctx, NewBaseMessageNotification(&notification))
			}
		} else {
			t.reportError(errors.Errorf("failed to unmarshal JSON-RPC message"))
		}
		t.mu.Lock()
		delete(t.responseMap, key)
		t.mu.Unlock()
		return &BaseJsonRpcMessage{
			Type: BaseMessageTypeJSONRPCResponseType,
		}, nil
	}

	// Block until the response is received
	t.mu.Lock()
	ch := t.responseMap[key]
	t.mu.Unlock()

	responseToUse := <-ch

	t.mu.Lock()
	delete(t.responseMap, key)
	t.mu.Unlock()

	if prevId != nil {
		switch responseToUse.Type {
		case BaseMessageTypeJSONRPCResponseType:
			responseToUse.JsonRpcResponse.Id = *prevId
		case BaseMessageTypeJSONRPCErrorType:
			responseToUse.JsonRpcError.Id = *prevId
		}
	}

	return responseToUse, nil
}
