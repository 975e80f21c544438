// Package rpc wires a dispatch.Dispatcher to a JSON-RPC 2.0 stream using
// sourcegraph/jsonrpc2. A fixed-field protocol.Handler struct can only
// cover the standard LSP method set; the daemon here also needs the
// logos/* extension methods behind the same flat table, so a generic
// JSON-RPC connection dispatching on the bare method string is used
// instead, with commonlog still doing the logging.
package rpc

import (
	"context"
	"encoding/json"
	"io"

	"github.com/sourcegraph/jsonrpc2"
	"github.com/tliron/commonlog"

	"github.com/logos-lang/logos-go/internal/dispatch"
)

var log = commonlog.GetLoggerf("logos.rpc")

// Server adapts a dispatch.Dispatcher to jsonrpc2.Handler.
type Server struct {
	dispatcher *dispatch.Dispatcher
}

// NewServer wraps d for use over a jsonrpc2 connection.
func NewServer(d *dispatch.Dispatcher) *Server {
	return &Server{dispatcher: d}
}

// Handle implements jsonrpc2.Handler. Notifications (Notif == true) never
// write a response, matching the split between requests and fire-and-
// forget notifications like textDocument/didOpen.
func (s *Server) Handle(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	var params json.RawMessage
	if req.Params != nil {
		params = *req.Params
	}

	result, err := s.dispatcher.Dispatch(req.Method, params)
	if req.Notif {
		if err != nil {
			log.Errorf("notification %s failed: %v", req.Method, err)
		}
		return
	}

	if err != nil {
		if rerr := conn.ReplyWithError(ctx, req.ID, toRPCError(err)); rerr != nil {
			log.Errorf("failed to send error reply for %s: %v", req.Method, rerr)
		}
		return
	}
	if rerr := conn.Reply(ctx, req.ID, result); rerr != nil {
		log.Errorf("failed to send reply for %s: %v", req.Method, rerr)
	}
}

func toRPCError(err error) *jsonrpc2.Error {
	if de, ok := err.(*dispatch.Error); ok {
		return &jsonrpc2.Error{Code: int64(de.Code), Message: de.Message}
	}
	return &jsonrpc2.Error{Code: int64(dispatch.InternalError), Message: err.Error()}
}

// Serve runs the JSON-RPC connection over rwc to completion, blocking
// until the peer disconnects or ctx is canceled.
func Serve(ctx context.Context, rwc io.ReadWriteCloser, d *dispatch.Dispatcher) error {
	stream := jsonrpc2.NewBufferedStream(rwc, jsonrpc2.VSCodeObjectCodec{})
	conn := jsonrpc2.NewConn(ctx, stream, NewServer(d))
	select {
	case <-ctx.Done():
		return conn.Close()
	case <-conn.DisconnectNotify():
		return nil
	}
}
