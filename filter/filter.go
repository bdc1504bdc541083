// Package filter compiles expr-language expressions into predicates over
// normalized movie summaries, for ad hoc narrowing beyond the built-in
// query and category filters.
//
// Example expressions:
//
//	Category == "Movies"
//	contains(Title, "dark") and Category != "Shows"
//	hasPrefix(ID, "popular_")
package filter

import (
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/marquee-app/marquee/catalog"
)

// Filter is a compiled, reusable predicate over movie summaries. Compiled
// filters are safe for concurrent use.
type Filter struct {
	expression string
	program    *vm.Program
}

// Compile compiles an expression into an executable filter
func Compile(expression string) (*Filter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	program, err := expr.Compile(expression,
		expr.Env(helperFunctions()),
		expr.AllowUndefinedVariables(), // Allow movie properties
		expr.AsBool(),                  // Ensure boolean result
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	return &Filter{
		expression: expression,
		program:    program,
	}, nil
}

// Expression returns the original expression
func (f *Filter) Expression() string {
	return f.expression
}

// Match evaluates the filter against a single summary. Evaluation errors
// count as a non-match so a bad record skips instead of aborting a listing.
func (f *Filter) Match(m catalog.Summary) bool {
	env := helperFunctions()
	env["ID"] = m.ID
	env["OriginalID"] = m.OriginalID
	env["Title"] = m.Title
	env["Subtitle"] = m.Subtitle
	env["Category"] = m.Category

	result, err := expr.Run(f.program, env)
	if err != nil {
		return false
	}

	// Result is guaranteed to be bool due to AsBool() option during compilation
	return result.(bool)
}

// Apply returns the summaries matching the filter, preserving input order.
func Apply(f *Filter, movies []catalog.Summary) []catalog.Summary {
	out := make([]catalog.Summary, 0, len(movies))
	for _, m := range movies {
		if f.Match(m) {
			out = append(out, m)
		}
	}
	return out
}

// helperFunctions creates the helper functions available to expressions
func helperFunctions() map[string]any {
	env := make(map[string]any, 8)
	env["contains"] = func(str, substr string) bool {
		return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
	}
	env["hasPrefix"] = func(str, prefix string) bool {
		return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
	}
	env["hasSuffix"] = func(str, suffix string) bool {
		return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
	}
	env["lower"] = strings.ToLower
	return env
}
