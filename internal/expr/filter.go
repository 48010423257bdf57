// Package expr compiles CEL predicates over item records so the demo CLI
// can pre-filter a collection before it reaches the engine. Expressions
// reference one record through the variable "item", e.g.
// `item.population > 100000 && item.display.startsWith("B")`.
package expr

import (
	"fmt"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/types"
	celext "github.com/google/cel-go/ext"

	"github.com/oakwood-commons/combox/internal/items"
)

// Filter is a compiled CEL predicate over one item record.
type Filter struct {
	prg cel.Program
}

// newEnv builds the CEL environment shared by compilation and AST
// inspection: the standard extension libraries plus a dyn "item" variable.
func newEnv() (*cel.Env, error) {
	env, err := cel.NewEnv(
		cel.Variable("item", cel.DynType),
		celext.Strings(),
		celext.Lists(),
		celext.Math(),
	)
	if err != nil {
		return nil, fmt.Errorf("create filter environment: %w", err)
	}
	return env, nil
}

// NewFilter compiles the expression into an evaluable predicate.
func NewFilter(expression string) (*Filter, error) {
	env, err := newEnv()
	if err != nil {
		return nil, err
	}
	ast, issues := env.Compile(expression)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("compile filter %q: %w", expression, issues.Err())
	}
	prg, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("build filter program: %w", err)
	}
	return &Filter{prg: prg}, nil
}

// Matches evaluates the predicate for one record. Evaluation errors and
// non-boolean results count as no-match: a bad expression thins the list,
// it never breaks the widget.
func (f *Filter) Matches(rec items.Record) bool {
	out, _, err := f.prg.Eval(map[string]any{
		"item": recordActivation(rec),
	})
	if err != nil {
		return false
	}
	b, ok := out.(types.Bool)
	return ok && bool(b)
}

// FilterRecords returns the records matching the predicate, in order.
func (f *Filter) FilterRecords(records []items.Record) []items.Record {
	out := make([]items.Record, 0, len(records))
	for _, rec := range records {
		if f.Matches(rec) {
			out = append(out, rec)
		}
	}
	return out
}

// recordActivation exposes a record as one flat map: free-form fields plus
// the id and display columns.
func recordActivation(rec items.Record) map[string]any {
	m := make(map[string]any, len(rec.Fields)+2)
	for k, v := range rec.Fields {
		m[k] = v
	}
	m["id"] = rec.ID
	m["display"] = rec.Display
	return m
}
