package record

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
)

// LoadOptions configures LoadFile.
type LoadOptions struct {
	// Aliases renames source keys to record fields, e.g. "university" to
	// "institution". A key is only renamed when the target field is absent.
	// Nil uses DefaultAliases; an empty non-nil map disables renaming.
	Aliases map[string]string

	// Logger receives load diagnostics. Default: slog.Default().
	Logger *slog.Logger
}

// DefaultAliases maps the field names used by the published data file.
func DefaultAliases() map[string]string {
	return map[string]string{"university": FieldInstitution}
}

// LoadFile reads a JSON array of objects from path and returns it as a Store.
func LoadFile(path string, opts LoadOptions) (*Store, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "record-loader")

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDataNotFound, path)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	records, err := Decode(data, opts.Aliases)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	logger.Info("loaded records", "path", path, "count", len(records))
	return NewStore(records), nil
}

// Decode parses a JSON array of objects. Numbers are kept as json.Number so
// opaque fields round-trip unchanged.
func Decode(data []byte, aliases map[string]string) ([]Record, error) {
	if aliases == nil {
		aliases = DefaultAliases()
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw []map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidData, err)
	}

	records := make([]Record, 0, len(raw))
	for i, entry := range raw {
		if entry == nil {
			return nil, fmt.Errorf("%w: entry %d is null", ErrInvalidData, i)
		}
		records = append(records, applyAliases(Record(entry), aliases))
	}
	return records, nil
}

func applyAliases(r Record, aliases map[string]string) Record {
	for from, to := range aliases {
		v, ok := r[from]
		if !ok || from == to {
			continue
		}
		if _, exists := r[to]; exists {
			continue
		}
		r[to] = v
		delete(r, from)
	}
	return r
}
