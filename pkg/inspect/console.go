// Package inspect provides the Lisp console for exploring floor plans.
// It wraps zygomys in a sandboxed environment, builds the floor a
// script declares, and answers spatial queries against the analyzed
// result.
package inspect

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/chazu/joist/pkg/plan"
	zygo "github.com/glycerine/zygomys/zygo"
)

// EvalError represents a non-fatal error encountered during evaluation,
// such as a parse error, a runtime error in user code, or a skipped
// entity during floor construction.
type EvalError struct {
	Line    int
	Col     int
	Message string
}

func (e EvalError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	return e.Message
}

// Console wraps the zygomys interpreter for floor-plan scripts.
// It is safe for concurrent use; each call to Evaluate creates a fresh
// sandboxed environment for determinism.
type Console struct {
	mu         sync.Mutex
	generation uint64
}

// NewConsole creates a new Console instance.
func NewConsole() *Console {
	return &Console{}
}

// Evaluate takes Lisp source code, builds the floor it declares, and
// analyzes it. Each call creates a fresh zygomys sandbox for
// deterministic evaluation.
//
// Return semantics:
//   - On success: returns the analyzed floor + per-entity build
//     diagnostics (possibly empty) + nil error
//   - On parse/eval failure: returns nil floor + eval errors + nil error
//   - On fatal failure (timeout, panic): returns nil + nil + error
func (c *Console) Evaluate(source string) (*plan.Floor, []EvalError, error) {
	c.mu.Lock()
	c.generation++
	gen := c.generation
	c.mu.Unlock()

	ch := make(chan evalResult, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- evalResult{err: fmt.Errorf("panic during evaluation: %v", r)}
			}
		}()

		f, evalErrs, err := c.evaluate(source)
		ch <- evalResult{floor: f, errors: evalErrs, err: err}
	}()

	return waitWithTimeout(ch, gen, &c.mu, &c.generation)
}

// evaluate performs the actual zygomys evaluation in a fresh sandbox.
func (c *Console) evaluate(source string) (*plan.Floor, []EvalError, error) {
	b := &builder{}

	// Empty source is a valid script that produces an empty floor.
	if strings.TrimSpace(source) == "" {
		f, err := b.ensureAnalyzed()
		if err != nil {
			return nil, nil, err
		}
		return f, nil, nil
	}

	// Create a fresh sandboxed zygomys environment.
	// Sandbox mode prevents user code from accessing the filesystem or syscalls.
	env := zygo.NewZlispSandbox()
	defer env.Stop()

	registerBuiltins(env, b)

	// Load and compile the source string into bytecode.
	err := env.LoadString(preprocessSource(source))
	if err != nil {
		return nil, parseZygomysError(err), nil
	}

	// Execute the compiled bytecode.
	_, err = env.Run()
	if err != nil {
		return nil, parseZygomysError(err), nil
	}

	// Scripts that only declare entities still get a built, analyzed
	// floor; queries in the script will already have triggered this.
	f, err := b.ensureAnalyzed()
	if err != nil {
		return nil, nil, err
	}
	return f, b.diags, nil
}

// linePattern matches zygomys error messages that include "Error on line N: ..."
var linePattern = regexp.MustCompile(`(?i)(?:error )?on line (\d+):\s*(.*)`)

// linePatternShort matches simpler "line N: ..." patterns.
var linePatternShort = regexp.MustCompile(`(?i)^line (\d+):\s*(.*)`)

// parseZygomysError converts a zygomys error into one or more EvalError values.
// It attempts to extract line number information from the error message.
func parseZygomysError(err error) []EvalError {
	msg := err.Error()

	// Try to extract line numbers from the error message.
	// zygomys formats parse errors as "Error on line N: <details>\n"
	if m := linePattern.FindStringSubmatch(msg); m != nil {
		line, _ := strconv.Atoi(m[1])
		detail := strings.TrimSpace(m[2])
		return []EvalError{{
			Line:    line,
			Col:     0,
			Message: detail,
		}}
	}

	if m := linePatternShort.FindStringSubmatch(msg); m != nil {
		line, _ := strconv.Atoi(m[1])
		detail := strings.TrimSpace(m[2])
		return []EvalError{{
			Line:    line,
			Col:     0,
			Message: detail,
		}}
	}

	// Fallback: no line info available.
	return []EvalError{{
		Line:    0,
		Col:     0,
		Message: strings.TrimSpace(msg),
	}}
}
