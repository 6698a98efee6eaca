// Package server exposes the supervisor lookups as MCP tools.
//
// Server wraps a query.Engine and registers four tools on an MCP server built
// with the official go-sdk:
//
//   - search_supervisor_by_name (name)
//   - get_departments_by_university (institution)
//   - get_supervisors_by_university_and_department (institution, department)
//   - get_reviews (institution, department, supervisor)
//
// "university" is accepted in place of "institution". Every call returns the
// lookup's query.Outcome as structured content and as JSON text. A lookup
// that matched nothing is a normal result with success=false, not a tool
// error.
//
// Example usage:
//
//	srv, err := server.New(engine, server.Config{
//	    ServerInfo: server.ServerInfo{
//	        Name:    "supervisor-lookup",
//	        Version: "1.0.0",
//	    },
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// stdio
//	err = server.ServeStdio(ctx, srv)
//
//	// or streamable HTTP
//	http.Handle("/mcp", server.ServeHTTP(srv))
package server
