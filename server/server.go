package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/jonwraymond/toolfoundation/model"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/jonwraymond/supervisorlookup/query"
)

// Config configures a Server.
type Config struct {
	ServerInfo ServerInfo
	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// ServerInfo describes this MCP server for the initialize response.
type ServerInfo struct {
	Name    string
	Version string
}

// Default server identity.
const (
	DefaultName    = "supervisor-lookup"
	DefaultVersion = "0.1.0"
)

// ToolHandler executes a tool with arguments decoded from the MCP request.
type ToolHandler func(ctx context.Context, args map[string]any) (any, error)

// Server serves lookups from a query.Engine over MCP.
type Server struct {
	engine *query.Engine
	config Config
	logger *slog.Logger
	mcp    *mcp.Server

	tools    []model.Tool
	handlers map[string]ToolHandler
}

// New creates a Server with the lookup tools registered.
func New(engine *query.Engine, cfg Config) (*Server, error) {
	if engine == nil {
		return nil, ErrEngineRequired
	}
	if cfg.ServerInfo.Name == "" {
		cfg.ServerInfo.Name = DefaultName
	}
	if cfg.ServerInfo.Version == "" {
		cfg.ServerInfo.Version = DefaultVersion
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		engine: engine,
		config: cfg,
		logger: logger.With("component", "mcp-server"),
		mcp: mcp.NewServer(&mcp.Implementation{
			Name:    cfg.ServerInfo.Name,
			Version: cfg.ServerInfo.Version,
		}, nil),
		handlers: make(map[string]ToolHandler),
	}

	for _, def := range s.catalog() {
		if err := s.register(def.tool, def.handler); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// MCPServer returns the underlying MCP server, e.g. to connect a custom
// transport.
func (s *Server) MCPServer() *mcp.Server {
	return s.mcp
}

// Tools returns the registered tools in registration order.
func (s *Server) Tools() []model.Tool {
	out := make([]model.Tool, len(s.tools))
	copy(out, s.tools)
	return out
}

// Execute runs a tool by name or canonical ID with the given arguments.
func (s *Server) Execute(ctx context.Context, name string, args map[string]any) (any, error) {
	handler, ok := s.handlers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrToolNotFound, name)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return handler(ctx, args)
}

func (s *Server) register(tool model.Tool, handler ToolHandler) error {
	if err := tool.Validate(); err != nil {
		return fmt.Errorf("invalid tool: %w", err)
	}
	id := tool.ToolID()
	if _, exists := s.handlers[tool.Name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateTool, tool.Name)
	}

	s.tools = append(s.tools, tool)
	s.handlers[tool.Name] = handler
	if id != tool.Name {
		s.handlers[id] = handler
	}

	mcpTool := tool.Tool
	s.mcp.AddTool(&mcpTool, s.callHandler(tool.Name))
	return nil
}

func (s *Server) callHandler(name string) mcp.ToolHandler {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var raw json.RawMessage
		if req != nil && req.Params != nil {
			raw = req.Params.Arguments
		}

		args, err := decodeArguments(raw)
		if err != nil {
			s.logger.Warn("rejected tool call", "tool", name, "error", err)
			return errorResult(err), nil
		}

		result, err := s.Execute(ctx, name, args)
		if err != nil {
			s.logger.Warn("tool call failed", "tool", name, "error", err)
			return errorResult(err), nil
		}

		s.logger.Debug("tool call", "tool", name)
		return valueResult(result)
	}
}

func decodeArguments(raw json.RawMessage) (map[string]any, error) {
	args := map[string]any{}
	if len(raw) == 0 {
		return args, nil
	}
	if err := json.Unmarshal(raw, &args); err != nil {
		return nil, fmt.Errorf("%w: arguments: %v", ErrInvalidRequest, err)
	}
	return args, nil
}

func valueResult(v any) (*mcp.CallToolResult, error) {
	text, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode result: %w", err)
	}
	return &mcp.CallToolResult{
		Content:           []mcp.Content{&mcp.TextContent{Text: string(text)}},
		StructuredContent: v,
	}, nil
}

func errorResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
	}
}
