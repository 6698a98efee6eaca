// Package client calls the lookup tools of a running supervisor-lookup
// server over MCP.
//
//	c, err := client.Dial(ctx, client.Config{URL: "http://localhost:8080/mcp"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer c.Close()
//
//	out, err := c.ListDepartments(ctx, "北京大学")
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/jonwraymond/supervisorlookup/query"
	"github.com/jonwraymond/supervisorlookup/record"
	"github.com/jonwraymond/supervisorlookup/server"
)

// Sentinel errors for consistent error handling.
var (
	ErrURLRequired       = errors.New("server URL is required")
	ErrUnsupportedScheme = errors.New("unsupported server URL scheme")
	ErrCallFailed        = errors.New("tool call failed")
)

// DefaultName identifies the client to the server when Config.Name is empty.
const DefaultName = "supervisorlookup-client"

// Config describes a server connection.
type Config struct {
	// URL is the server endpoint: http(s):// for streamable HTTP, sse:// for SSE.
	URL string
	// Headers are sent with every request. Headers the request already
	// carries win.
	Headers map[string]string
	// MaxRetries controls reconnect attempts for streamable HTTP.
	MaxRetries int
	// Transport replaces URL handling when set.
	Transport mcp.Transport
	Name      string
}

// Client is a connected lookup session.
type Client struct {
	session *mcp.ClientSession
}

// Dial connects to the server described by cfg.
func Dial(ctx context.Context, cfg Config) (*Client, error) {
	transport := cfg.Transport
	if transport == nil {
		var err error
		if transport, err = transportFor(cfg); err != nil {
			return nil, err
		}
	}

	name := cfg.Name
	if name == "" {
		name = DefaultName
	}
	session, err := mcp.NewClient(&mcp.Implementation{Name: name}, nil).Connect(ctx, transport, nil)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	return &Client{session: session}, nil
}

// ListTools returns the tools the server advertises.
func (c *Client) ListTools(ctx context.Context) ([]*mcp.Tool, error) {
	res, err := c.session.ListTools(ctx, nil)
	if err != nil {
		return nil, err
	}
	return res.Tools, nil
}

// Call runs a tool and returns the Outcome it produced as JSON. A not-found
// Outcome is a result, not an error; a tool error wraps ErrCallFailed.
func (c *Client) Call(ctx context.Context, tool string, args map[string]any) (json.RawMessage, error) {
	res, err := c.session.CallTool(ctx, &mcp.CallToolParams{Name: tool, Arguments: args})
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCallFailed, tool, err)
	}

	var text []string
	for _, content := range res.Content {
		if tc, ok := content.(*mcp.TextContent); ok && tc.Text != "" {
			text = append(text, tc.Text)
		}
	}
	if res.IsError {
		msg := strings.Join(text, "; ")
		if msg == "" {
			msg = "no details"
		}
		return nil, fmt.Errorf("%w: %s: %s", ErrCallFailed, tool, msg)
	}

	if res.StructuredContent != nil {
		raw, err := json.Marshal(res.StructuredContent)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrCallFailed, tool, err)
		}
		return raw, nil
	}
	if len(text) == 1 && json.Valid([]byte(text[0])) {
		return json.RawMessage(text[0]), nil
	}
	return nil, fmt.Errorf("%w: %s: result carries no outcome", ErrCallFailed, tool)
}

// FindSupervisor calls search_supervisor_by_name.
func (c *Client) FindSupervisor(ctx context.Context, name string) (query.Outcome[record.Record], error) {
	return callOutcome[record.Record](ctx, c, server.ToolSearchSupervisor, map[string]any{
		server.ArgName: name,
	})
}

// ListDepartments calls get_departments_by_university.
func (c *Client) ListDepartments(ctx context.Context, institution string) (query.Outcome[string], error) {
	return callOutcome[string](ctx, c, server.ToolListDepartments, map[string]any{
		server.ArgInstitution: institution,
	})
}

// ListSupervisors calls get_supervisors_by_university_and_department.
func (c *Client) ListSupervisors(ctx context.Context, institution, department string) (query.Outcome[string], error) {
	return callOutcome[string](ctx, c, server.ToolListSupervisors, map[string]any{
		server.ArgInstitution: institution,
		server.ArgDepartment:  department,
	})
}

// GetReviews calls get_reviews.
func (c *Client) GetReviews(ctx context.Context, institution, department, supervisor string) (query.Outcome[record.Record], error) {
	return callOutcome[record.Record](ctx, c, server.ToolGetReviews, map[string]any{
		server.ArgInstitution: institution,
		server.ArgDepartment:  department,
		server.ArgSupervisor:  supervisor,
	})
}

// Close ends the session.
func (c *Client) Close() error {
	return c.session.Close()
}

func callOutcome[T any](ctx context.Context, c *Client, tool string, args map[string]any) (query.Outcome[T], error) {
	var out query.Outcome[T]
	raw, err := c.Call(ctx, tool, args)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("%w: %s: decode outcome: %v", ErrCallFailed, tool, err)
	}
	return out, nil
}

// schemes maps a server URL scheme to its transport. The endpoint has the
// scheme already rewritten to http or https.
var schemes = map[string]struct {
	endpointScheme string
	build          func(endpoint string, hc *http.Client, cfg Config) mcp.Transport
}{
	"http":  {"http", streamable},
	"https": {"https", streamable},
	"sse":   {"http", sse},
}

func streamable(endpoint string, hc *http.Client, cfg Config) mcp.Transport {
	return &mcp.StreamableClientTransport{Endpoint: endpoint, HTTPClient: hc, MaxRetries: cfg.MaxRetries}
}

func sse(endpoint string, hc *http.Client, _ Config) mcp.Transport {
	return &mcp.SSEClientTransport{Endpoint: endpoint, HTTPClient: hc}
}

func transportFor(cfg Config) (mcp.Transport, error) {
	if strings.TrimSpace(cfg.URL) == "" {
		return nil, ErrURLRequired
	}
	u, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid server URL: %w", err)
	}
	s, ok := schemes[u.Scheme]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedScheme, u.Scheme)
	}
	u.Scheme = s.endpointScheme

	var hc *http.Client
	if h := staticHeader(cfg.Headers); len(h) > 0 {
		hc = &http.Client{Transport: &headerTransport{header: h}}
	}
	return s.build(u.String(), hc, cfg), nil
}

// staticHeader canonicalizes headers, dropping blank names.
func staticHeader(headers map[string]string) http.Header {
	h := make(http.Header, len(headers))
	for name, value := range headers {
		if name = strings.TrimSpace(name); name != "" {
			h.Set(name, value)
		}
	}
	return h
}

// headerTransport adds a fixed set of headers to requests that lack them.
type headerTransport struct {
	header http.Header
	next   http.RoundTripper
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	next := t.next
	if next == nil {
		next = http.DefaultTransport
	}
	out := req.Clone(req.Context())
	for name, values := range t.header {
		if _, ok := out.Header[name]; !ok {
			out.Header[name] = values
		}
	}
	return next.RoundTrip(out)
}
