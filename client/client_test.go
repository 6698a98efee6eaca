package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/jonwraymond/supervisorlookup/query"
	"github.com/jonwraymond/supervisorlookup/record"
	"github.com/jonwraymond/supervisorlookup/server"
)

func newLookupServer(t *testing.T) *server.Server {
	t.Helper()
	engine := query.New(record.NewStore([]record.Record{
		{"institution": "北京大学", "department": "计算机学院", "supervisor": "张三", "description": "好"},
	}))
	srv, err := server.New(engine, server.Config{})
	if err != nil {
		t.Fatalf("server.New() error = %v", err)
	}
	return srv
}

func dialInMemory(t *testing.T) *Client {
	t.Helper()
	ctx := context.Background()
	clientTransport, serverTransport := mcp.NewInMemoryTransports()

	ss, err := newLookupServer(t).MCPServer().Connect(ctx, serverTransport, nil)
	if err != nil {
		t.Fatalf("server connect: %v", err)
	}
	t.Cleanup(func() { _ = ss.Close() })

	c, err := Dial(ctx, Config{Transport: clientTransport})
	if err != nil {
		t.Fatalf("Dial() error = %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestClient_ListTools(t *testing.T) {
	c := dialInMemory(t)

	tools, err := c.ListTools(context.Background())
	if err != nil {
		t.Fatalf("ListTools() error = %v", err)
	}
	if len(tools) != 4 {
		t.Errorf("expected 4 tools, got %d", len(tools))
	}
}

func TestClient_Call(t *testing.T) {
	c := dialInMemory(t)

	raw, err := c.Call(context.Background(), server.ToolListDepartments, map[string]any{"institution": "北京"})
	if err != nil {
		t.Fatalf("Call() error = %v", err)
	}
	var out query.Outcome[string]
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("result is not an outcome: %v\n%s", err, raw)
	}
	if !out.Success || !reflect.DeepEqual(out.Data, []string{"计算机学院"}) {
		t.Errorf("outcome = %+v, want [计算机学院]", out)
	}
}

func TestClient_Lookups(t *testing.T) {
	c := dialInMemory(t)
	ctx := context.Background()

	found, err := c.FindSupervisor(ctx, "张")
	if err != nil {
		t.Fatalf("FindSupervisor() error = %v", err)
	}
	if !found.Success || len(found.Data) != 1 || found.Data[0].Supervisor() != "张三" {
		t.Errorf("FindSupervisor() = %+v", found)
	}

	departments, err := c.ListDepartments(ctx, "北京")
	if err != nil {
		t.Fatalf("ListDepartments() error = %v", err)
	}
	if !reflect.DeepEqual(departments.Data, []string{"计算机学院"}) {
		t.Errorf("ListDepartments() = %+v", departments)
	}

	supervisors, err := c.ListSupervisors(ctx, "北京", "计算机")
	if err != nil {
		t.Fatalf("ListSupervisors() error = %v", err)
	}
	if !reflect.DeepEqual(supervisors.Data, []string{"张三"}) {
		t.Errorf("ListSupervisors() = %+v", supervisors)
	}

	reviews, err := c.GetReviews(ctx, "北京", "计算机", "张三")
	if err != nil {
		t.Fatalf("GetReviews() error = %v", err)
	}
	if len(reviews.Data) != 1 || reviews.Data[0].Description() != "好" {
		t.Errorf("GetReviews() = %+v", reviews)
	}
}

func TestClient_LookupNotFound(t *testing.T) {
	c := dialInMemory(t)

	out, err := c.ListSupervisors(context.Background(), "复旦", "物理")
	if err != nil {
		t.Fatalf("not-found lookup should not error: %v", err)
	}
	if out.Success || out.Message == "" {
		t.Errorf("outcome = %+v, want failure with message", out)
	}
}

func TestClient_CallToolError(t *testing.T) {
	c := dialInMemory(t)

	_, err := c.Call(context.Background(), server.ToolSearchSupervisor, map[string]any{"name": 1})
	if !errors.Is(err, ErrCallFailed) {
		t.Errorf("expected ErrCallFailed, got %v", err)
	}
}

func TestClient_StreamableHTTP(t *testing.T) {
	ts := httptest.NewServer(server.ServeHTTP(newLookupServer(t)))
	defer ts.Close()

	ctx := context.Background()
	c, err := Dial(ctx, Config{URL: ts.URL})
	if err != nil {
		t.Fatalf("Dial() error = %v", err)
	}
	defer func() { _ = c.Close() }()

	raw, err := c.Call(ctx, server.ToolGetReviews, map[string]any{
		"university": "北京大学",
		"department": "计算机学院",
		"supervisor": "张三",
	})
	if err != nil {
		t.Fatalf("Call() error = %v", err)
	}
	var out query.Outcome[record.Record]
	if err := json.Unmarshal(raw, &out); err != nil || !out.Success {
		t.Errorf("result = %s (%v), want success", raw, err)
	}
}

func TestTransportFor(t *testing.T) {
	tests := []struct {
		url      string
		endpoint string
		sse      bool
		wantErr  error
	}{
		{url: "http://localhost:8080/mcp", endpoint: "http://localhost:8080/mcp"},
		{url: "https://example.com/mcp", endpoint: "https://example.com/mcp"},
		{url: "sse://localhost:8080/sse", endpoint: "http://localhost:8080/sse", sse: true},
		{url: "ftp://example.com", wantErr: ErrUnsupportedScheme},
		{url: "", wantErr: ErrURLRequired},
		{url: "   ", wantErr: ErrURLRequired},
	}

	for _, tt := range tests {
		transport, err := transportFor(Config{URL: tt.url})
		if tt.wantErr != nil {
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("transportFor(%q) error = %v, want %v", tt.url, err, tt.wantErr)
			}
			continue
		}
		if err != nil {
			t.Errorf("transportFor(%q) error = %v", tt.url, err)
			continue
		}
		switch tr := transport.(type) {
		case *mcp.StreamableClientTransport:
			if tt.sse || tr.Endpoint != tt.endpoint {
				t.Errorf("transportFor(%q) = streamable %q", tt.url, tr.Endpoint)
			}
		case *mcp.SSEClientTransport:
			if !tt.sse || tr.Endpoint != tt.endpoint {
				t.Errorf("transportFor(%q) = sse %q", tt.url, tr.Endpoint)
			}
		default:
			t.Errorf("transportFor(%q) returned %T", tt.url, transport)
		}
	}
}

func TestHeaderTransport(t *testing.T) {
	var got http.Header
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
	}))
	defer ts.Close()

	hc := &http.Client{Transport: &headerTransport{header: staticHeader(map[string]string{
		"authorization": "Bearer token",
		"X-Preset":      "default",
		" ":             "ignored",
	})}}

	req, _ := http.NewRequest(http.MethodGet, ts.URL, nil)
	req.Header.Set("X-Preset", "caller")
	resp, err := hc.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	_ = resp.Body.Close()

	if got.Get("Authorization") != "Bearer token" {
		t.Errorf("Authorization = %q", got.Get("Authorization"))
	}
	if got.Get("X-Preset") != "caller" {
		t.Errorf("caller header overwritten: %q", got.Get("X-Preset"))
	}
	if req.Header.Get("Authorization") != "" {
		t.Error("caller request was mutated")
	}
}

func TestTransportFor_NoHeaders(t *testing.T) {
	transport, err := transportFor(Config{URL: "http://localhost/mcp", Headers: map[string]string{"  ": "x"}})
	if err != nil {
		t.Fatalf("transportFor() error = %v", err)
	}
	if hc := transport.(*mcp.StreamableClientTransport).HTTPClient; hc != nil {
		t.Errorf("HTTPClient = %v, want nil for blank header names", hc)
	}
}
