package query

import (
	"strings"

	"github.com/jonwraymond/supervisorlookup/record"
)

// Line-break markup found in descriptions.
const (
	doubleBreak = "<br><br>"
	singleBreak = "<br>"
)

var breakReplacer = strings.NewReplacer(doubleBreak, "\n\n", singleBreak, "\n")

// FormatRecord returns a shallow copy of r with line-break markup in the
// description replaced by newlines. r is not modified.
func FormatRecord(r record.Record) record.Record {
	out := r.Clone()
	if desc, ok := out[record.FieldDescription].(string); ok {
		out[record.FieldDescription] = breakReplacer.Replace(desc)
	}
	return out
}
