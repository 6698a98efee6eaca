package query

import (
	"encoding/json"
	"testing"

	"github.com/jonwraymond/supervisorlookup/record"
)

func TestFormatRecord(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"好<br>很好", "好\n很好"},
		{"a<br><br>b", "a\n\nb"},
		{"a<br><br><br>b", "a\n\n\nb"},
		{"plain", "plain"},
		{"", ""},
	}

	for _, tt := range tests {
		r := record.Record{record.FieldDescription: tt.in}
		got := FormatRecord(r)
		if got.Description() != tt.want {
			t.Errorf("FormatRecord(%q) = %q, want %q", tt.in, got.Description(), tt.want)
		}
		if r.Description() != tt.in {
			t.Errorf("input mutated to %q", r.Description())
		}
	}
}

func TestFormatRecord_PassesOtherFieldsThrough(t *testing.T) {
	r := record.Record{
		record.FieldSupervisor: "张三<br>",
		"rating":               json.Number("4.5"),
		"tags":                 []any{"a<br>b"},
	}

	got := FormatRecord(r)
	if got.Supervisor() != "张三<br>" {
		t.Errorf("supervisor changed to %q", got.Supervisor())
	}
	if got["rating"] != json.Number("4.5") {
		t.Errorf("rating = %v", got["rating"])
	}
	if _, ok := got[record.FieldDescription]; ok {
		t.Error("missing description should stay missing")
	}
}

func TestFormatRecord_NonStringDescription(t *testing.T) {
	r := record.Record{record.FieldDescription: json.Number("1")}

	if got := FormatRecord(r); got[record.FieldDescription] != json.Number("1") {
		t.Errorf("non-string description changed: %v", got[record.FieldDescription])
	}
}
