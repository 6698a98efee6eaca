package server

import (
	"context"
	"fmt"

	"github.com/jonwraymond/toolfoundation/model"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Tool names, kept compatible with existing clients.
const (
	ToolSearchSupervisor = "search_supervisor_by_name"
	ToolListDepartments  = "get_departments_by_university"
	ToolListSupervisors  = "get_supervisors_by_university_and_department"
	ToolGetReviews       = "get_reviews"
)

// Namespace groups the lookup tools.
const Namespace = "supervisor"

// Argument names.
const (
	ArgName        = "name"
	ArgInstitution = "institution"
	ArgUniversity  = "university"
	ArgDepartment  = "department"
	ArgSupervisor  = "supervisor"
)

type toolDef struct {
	tool    model.Tool
	handler ToolHandler
}

func (s *Server) catalog() []toolDef {
	return []toolDef{
		{
			tool: buildTool(ToolSearchSupervisor,
				"Search reviews by supervisor name. Names written in Chinese characters also match romanized names.",
				objectSchema(map[string]string{
					ArgName: "Supervisor name, full or partial",
				}, ArgName),
				"search", "supervisor"),
			handler: s.searchSupervisor,
		},
		{
			tool: buildTool(ToolListDepartments,
				"List the departments of a university.",
				objectSchema(withInstitution(nil)),
				"list", "department"),
			handler: s.listDepartments,
		},
		{
			tool: buildTool(ToolListSupervisors,
				"List the supervisors of a department at a university.",
				objectSchema(withInstitution(map[string]string{
					ArgDepartment: "Department name, full or partial",
				}), ArgDepartment),
				"list", "supervisor"),
			handler: s.listSupervisors,
		},
		{
			tool: buildTool(ToolGetReviews,
				"Get the reviews of a supervisor in a department at a university.",
				objectSchema(withInstitution(map[string]string{
					ArgDepartment: "Department name, full or partial",
					ArgSupervisor: "Supervisor name, full or partial",
				}), ArgDepartment, ArgSupervisor),
				"review", "supervisor"),
			handler: s.getReviews,
		},
	}
}

func (s *Server) searchSupervisor(_ context.Context, args map[string]any) (any, error) {
	name, err := stringArg(args, ArgName)
	if err != nil {
		return nil, err
	}
	return s.engine.FindBySupervisorName(name), nil
}

func (s *Server) listDepartments(_ context.Context, args map[string]any) (any, error) {
	institution, err := stringArg(args, ArgInstitution, ArgUniversity)
	if err != nil {
		return nil, err
	}
	return s.engine.ListDepartments(institution), nil
}

func (s *Server) listSupervisors(_ context.Context, args map[string]any) (any, error) {
	institution, err := stringArg(args, ArgInstitution, ArgUniversity)
	if err != nil {
		return nil, err
	}
	department, err := stringArg(args, ArgDepartment)
	if err != nil {
		return nil, err
	}
	return s.engine.ListSupervisors(institution, department), nil
}

func (s *Server) getReviews(_ context.Context, args map[string]any) (any, error) {
	institution, err := stringArg(args, ArgInstitution, ArgUniversity)
	if err != nil {
		return nil, err
	}
	department, err := stringArg(args, ArgDepartment)
	if err != nil {
		return nil, err
	}
	supervisor, err := stringArg(args, ArgSupervisor)
	if err != nil {
		return nil, err
	}
	return s.engine.GetReviews(institution, department, supervisor), nil
}

// stringArg returns the first present key among keys. Missing and null
// arguments read as "".
func stringArg(args map[string]any, keys ...string) (string, error) {
	for _, key := range keys {
		v, ok := args[key]
		if !ok || v == nil {
			continue
		}
		str, ok := v.(string)
		if !ok {
			return "", fmt.Errorf("%w: argument %q must be a string, got %T", ErrInvalidRequest, key, v)
		}
		return str, nil
	}
	return "", nil
}

func buildTool(name, description string, inputSchema map[string]any, tags ...string) model.Tool {
	return model.Tool{
		Tool: mcp.Tool{
			Name:        name,
			Description: description,
			InputSchema: inputSchema,
		},
		Namespace: Namespace,
		Tags:      model.NormalizeTags(tags),
	}
}

// withInstitution adds the institution argument and its university alias.
// Neither is required on its own since either one is accepted.
func withInstitution(properties map[string]string) map[string]string {
	if properties == nil {
		properties = make(map[string]string, 2)
	}
	properties[ArgInstitution] = "University name, full or partial. Also accepted as " + ArgUniversity
	properties[ArgUniversity] = "Alias of " + ArgInstitution + "; used when " + ArgInstitution + " is absent"
	return properties
}

func objectSchema(properties map[string]string, required ...string) map[string]any {
	props := make(map[string]any, len(properties))
	for name, desc := range properties {
		props[name] = map[string]any{
			"type":        "string",
			"description": desc,
		}
	}
	schema := map[string]any{
		"type":       "object",
		"properties": props,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}
