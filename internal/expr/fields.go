package expr

import (
	"fmt"
	"sort"

	"github.com/google/cel-go/cel"
	exprpb "google.golang.org/genproto/googleapis/api/expr/v1alpha1"
)

// ReferencedFields returns the sorted set of field names the expression
// selects off the "item" variable, e.g. {"country", "population"} for
// `item.country == "DE" && item.population > 100`. The CLI uses it to
// warn about filters referencing fields no loaded record carries.
func ReferencedFields(expression string) ([]string, error) {
	env, err := newEnv()
	if err != nil {
		return nil, err
	}
	ast, issues := env.Parse(expression)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("parse filter %q: %w", expression, issues.Err())
	}
	parsed, err := cel.AstToParsedExpr(ast)
	if err != nil {
		return nil, fmt.Errorf("inspect filter %q: %w", expression, err)
	}

	seen := make(map[string]bool)
	collectItemFields(parsed.GetExpr(), seen)

	fields := make([]string, 0, len(seen))
	for f := range seen {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields, nil
}

// collectItemFields walks the parsed proto AST recording every select of
// the form item.<field>.
func collectItemFields(e *exprpb.Expr, out map[string]bool) {
	if e == nil {
		return
	}
	switch k := e.ExprKind.(type) {
	case *exprpb.Expr_SelectExpr:
		sel := k.SelectExpr
		if ident, ok := sel.GetOperand().GetExprKind().(*exprpb.Expr_IdentExpr); ok &&
			ident.IdentExpr.GetName() == "item" {
			out[sel.GetField()] = true
		}
		collectItemFields(sel.GetOperand(), out)
	case *exprpb.Expr_CallExpr:
		collectItemFields(k.CallExpr.GetTarget(), out)
		for _, arg := range k.CallExpr.GetArgs() {
			collectItemFields(arg, out)
		}
	case *exprpb.Expr_ListExpr:
		for _, el := range k.ListExpr.GetElements() {
			collectItemFields(el, out)
		}
	case *exprpb.Expr_StructExpr:
		for _, entry := range k.StructExpr.GetEntries() {
			collectItemFields(entry.GetMapKey(), out)
			collectItemFields(entry.GetValue(), out)
		}
	case *exprpb.Expr_ComprehensionExpr:
		c := k.ComprehensionExpr
		collectItemFields(c.GetIterRange(), out)
		collectItemFields(c.GetAccuInit(), out)
		collectItemFields(c.GetLoopCondition(), out)
		collectItemFields(c.GetLoopStep(), out)
		collectItemFields(c.GetResult(), out)
	}
}
