package trace

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
)

// StepEnv is the expression environment one step is evaluated against.
type StepEnv struct {
	Index int    `expr:"index"`
	Text  string `expr:"text"`
	Kind  string `expr:"kind"`
	Done  bool   `expr:"done"`
}

// Filter returns the steps for which the expr-lang expression evaluates
// to true. Supports clean syntax: kind == "error", text contains "login",
// index > 2, etc. An empty expression keeps every step.
func Filter(steps []Step, exprStr string) ([]Step, error) {
	exprStr = strings.TrimSpace(exprStr)
	if exprStr == "" {
		return steps, nil
	}

	program, err := expr.Compile(exprStr, expr.Env(StepEnv{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compile filter %q: %w", exprStr, err)
	}

	var out []Step
	for i, s := range steps {
		env := StepEnv{
			Index: i,
			Text:  s.Text,
			Kind:  string(s.Kind),
			Done:  s.Done,
		}
		v, err := expr.Run(program, env)
		if err != nil {
			return nil, fmt.Errorf("eval filter %q on step %d: %w", exprStr, i, err)
		}
		if keep, ok := v.(bool); ok && keep {
			out = append(out, s)
		}
	}
	return out, nil
}
