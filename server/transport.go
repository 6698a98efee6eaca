package server

import (
	"context"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ServeStdio runs the server over stdin/stdout.
// Blocks until the client disconnects or ctx is cancelled.
func ServeStdio(ctx context.Context, s *Server) error {
	s.logger.Info("serving over stdio", "tools", len(s.tools))
	return s.mcp.Run(ctx, &mcp.StdioTransport{})
}

// ServeHTTP returns an http.Handler for the streamable HTTP transport.
func ServeHTTP(s *Server) http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.mcp
	}, nil)
}
