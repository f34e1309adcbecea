// Package stdiotransport runs the MCP server over standard input and output,
// one newline-delimited JSON-RPC message per line. This is the transport
// agent hosts use when they spawn the server as a subprocess.
package stdiotransport

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"os"
	"sync"

	"github.com/cockroachdb/errors"

	"github.com/hermes-rf/cstmcp/mcp/transport"
)

// StdioTransport implements a line-oriented transport over a reader/writer
// pair, by default the process stdin and stdout.
type StdioTransport struct {
	reader *bufio.Reader
	writer io.Writer

	messageHandler func(ctx context.Context, message *transport.BaseJsonRpcMessage)
	errorHandler   func(error)
	closeHandler   func()

	mu      sync.RWMutex
	writeMu sync.Mutex
	done    chan struct{}
	once    sync.Once
}

// New creates a transport bound to os.Stdin and os.Stdout.
func New() *StdioTransport {
	return NewWithIO(os.Stdin, os.Stdout)
}

// NewWithIO creates a transport bound to the given reader and writer.
func NewWithIO(in io.Reader, out io.Writer) *StdioTransport {
	return &StdioTransport{
		reader: bufio.NewReader(in),
		writer: out,
		done:   make(chan struct{}),
	}
}

// Start implements Transport.Start. It blocks reading messages until the
// input stream is exhausted or the transport is closed.
func (t *StdioTransport) Start(ctx context.Context) error {
	for {
		select {
		case <-t.done:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line, err := t.reader.ReadBytes('\n')
		if len(line) > 0 {
			t.dispatch(ctx, line)
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				t.Close()
				return nil
			}
			t.reportError(errors.Wrap(err, "failed to read message"))
			return err
		}
	}
}

func (t *StdioTransport) dispatch(ctx context.Context, line []byte) {
	var message transport.BaseJsonRpcMessage
	if err := json.Unmarshal(line, &message); err != nil {
		t.reportError(errors.Wrap(err, "failed to unmarshal message"))
		return
	}

	t.mu.RLock()
	handler := t.messageHandler
	t.mu.RUnlock()

	if handler != nil {
		handler(ctx, &message)
	}
}

// Send implements Transport.Send. Messages are written atomically, one per
// line.
func (t *StdioTransport) Send(ctx context.Context, message *transport.BaseJsonRpcMessage) error {
	jsonData, err := json.Marshal(message)
	if err != nil {
		return errors.Wrap(err, "failed to marshal message")
	}

	t.writeMu.Lock()
	defer t.writeMu.Unlock()

	if _, err := t.writer.Write(append(jsonData, '\n')); err != nil {
		return errors.Wrap(err, "failed to write message")
	}
	return nil
}

// Close implements Transport.Close
func (t *StdioTransport) Close() error {
	t.once.Do(func() {
		close(t.done)
		if t.closeHandler != nil {
			t.closeHandler()
		}
	})
	return nil
}

// SetCloseHandler implements Transport.SetCloseHandler
func (t *StdioTransport) SetCloseHandler(handler func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.closeHandler = handler
}

// SetErrorHandler implements Transport.SetErrorHandler
func (t *StdioTransport) SetErrorHandler(handler func(error)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.errorHandler = handler
}

// SetMessageHandler implements Transport.SetMessageHandler
func (t *StdioTransport) SetMessageHandler(handler func(ctx context.Context, message *transport.BaseJsonRpcMessage)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.messageHandler = handler
}

func (t *StdioTransport) reportError(err error) {
	t.mu.RLock()
	handler := t.errorHandler
	t.mu.RUnlock()
	if handler != nil {
		handler(err)
	}
}

var _ transport.Transport = (*StdioTransport)(nil)
