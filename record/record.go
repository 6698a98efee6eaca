package record

// Field names interpreted by lookups.
const (
	FieldInstitution = "institution"
	FieldDepartment  = "department"
	FieldSupervisor  = "supervisor"
	FieldDescription = "description"
)

// Record is one review entry. Values are whatever the loader produced;
// only the string fields above are read by lookups.
type Record map[string]any

// Field returns the named field as a string. Missing and non-string
// fields read as "".
func (r Record) Field(name string) string {
	s, _ := r[name].(string)
	return s
}

// Institution returns the institution field.
func (r Record) Institution() string { return r.Field(FieldInstitution) }

// Department returns the department field.
func (r Record) Department() string { return r.Field(FieldDepartment) }

// Supervisor returns the supervisor field.
func (r Record) Supervisor() string { return r.Field(FieldSupervisor) }

// Description returns the description field.
func (r Record) Description() string { return r.Field(FieldDescription) }

// Clone returns a shallow copy of r.
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
