package query

import (
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/jonwraymond/supervisorlookup/match"
	"github.com/jonwraymond/supervisorlookup/record"
)

// Option configures an Engine.
type Option func(*Engine)

// WithMatcher sets the identity matcher. Default: match.NewMatcher(nil).
func WithMatcher(m *match.Matcher) Option {
	return func(e *Engine) {
		if m != nil {
			e.matcher = m
		}
	}
}

// WithObserver sets the observer notified after each lookup.
func WithObserver(o Observer) Option {
	return func(e *Engine) {
		if o != nil {
			e.observer = o
		}
	}
}

// WithLogger sets the logger. Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// Engine runs lookups against an immutable record store.
type Engine struct {
	store    *record.Store
	matcher  *match.Matcher
	observer Observer
	logger   *slog.Logger
}

// New creates an Engine over store.
func New(store *record.Store, opts ...Option) *Engine {
	e := &Engine{
		store:    store,
		observer: nopObserver{},
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.matcher == nil {
		e.matcher = match.NewMatcher(nil)
	}
	e.logger = e.logger.With("component", "query-engine")
	return e
}

// FindBySupervisorName returns every distinct record whose supervisor is
// identified by name, in store order.
func (e *Engine) FindBySupervisorName(name string) Outcome[record.Record] {
	start := time.Now()
	pattern := e.matcher.Compile(name)

	var results []record.Record
	seen := make(map[string]struct{})
	for r := range e.store.All() {
		if !pattern.Match(r.Supervisor()) {
			continue
		}
		fp := r.Fingerprint()
		if _, dup := seen[fp]; dup {
			continue
		}
		seen[fp] = struct{}{}
		results = append(results, FormatRecord(r))
	}

	out := recordsOutcome(results, fmt.Sprintf("no supervisor named %q was found", name))
	e.finish(OpFindBySupervisorName, start, len(results), "name", name)
	return out
}

// ListDepartments returns the distinct departments of institutions matching
// institution, sorted.
func (e *Engine) ListDepartments(institution string) Outcome[string] {
	start := time.Now()

	values := make(map[string]struct{})
	for r := range e.store.All() {
		if match.PlainMatch(institution, r.Institution()) {
			addValue(values, r.Department())
		}
	}

	out := valuesOutcome(values, fmt.Sprintf("no departments found for institution %q", institution))
	e.finish(OpListDepartments, start, len(out.Data), "institution", institution)
	return out
}

// ListSupervisors returns the distinct supervisors in departments matching
// department at institutions matching institution, sorted.
func (e *Engine) ListSupervisors(institution, department string) Outcome[string] {
	start := time.Now()

	values := make(map[string]struct{})
	for r := range e.store.All() {
		if match.PlainMatch(institution, r.Institution()) &&
			match.PlainMatch(department, r.Department()) {
			addValue(values, r.Supervisor())
		}
	}

	out := valuesOutcome(values, fmt.Sprintf("no supervisors found in department %q at institution %q", department, institution))
	e.finish(OpListSupervisors, start, len(out.Data), "institution", institution, "department", department)
	return out
}

// GetReviews returns every record matching all three identifiers, in store
// order. Duplicates are kept.
func (e *Engine) GetReviews(institution, department, supervisor string) Outcome[record.Record] {
	start := time.Now()
	pattern := e.matcher.Compile(supervisor)

	var results []record.Record
	for r := range e.store.All() {
		if match.PlainMatch(institution, r.Institution()) &&
			match.PlainMatch(department, r.Department()) &&
			pattern.Match(r.Supervisor()) {
			results = append(results, FormatRecord(r))
		}
	}

	out := recordsOutcome(results, fmt.Sprintf("no reviews found for supervisor %q in department %q at institution %q", supervisor, department, institution))
	e.finish(OpGetReviews, start, len(results), "institution", institution, "department", department, "supervisor", supervisor)
	return out
}

func (e *Engine) finish(op string, start time.Time, results int, args ...any) {
	elapsed := time.Since(start)
	e.observer.ObserveQuery(op, elapsed, results, results > 0)
	e.logger.Debug("query",
		append([]any{"operation", op, "results", results, "elapsed", elapsed}, args...)...)
}

func addValue(set map[string]struct{}, v string) {
	if v != "" {
		set[v] = struct{}{}
	}
}

func recordsOutcome(results []record.Record, miss string) Outcome[record.Record] {
	if len(results) == 0 {
		return NotFound[record.Record](miss)
	}
	return Found(results)
}

func valuesOutcome(set map[string]struct{}, miss string) Outcome[string] {
	if len(set) == 0 {
		return NotFound[string](miss)
	}
	values := make([]string, 0, len(set))
	for v := range set {
		values = append(values, v)
	}
	slices.Sort(values)
	return Found(values)
}
