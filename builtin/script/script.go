// Package script executes sandboxed Lua transforms for the lua builtin node.
package script

import (
	"fmt"

	lua "github.com/Shopify/go-lua"
)

// Validate loads a script without running it and checks that it either
// defines an exec function or produces a value.
func Validate(scriptContent string) error {
	l := lua.NewState()

	if err := lua.LoadString(l, scriptContent); err != nil {
		return fmt.Errorf("script validation failed: %w", err)
	}
	l.Pop(1)

	return nil
}

// Execute runs a Lua script against a single input value in a sandboxed
// state. The input is available as the global "input"; if the script defines
// an exec(input) function it is called and its result returned, otherwise
// the script's own return value is used. A fresh Lua state is created per
// call so scripts cannot leak state between runs.
func Execute(scriptContent string, input any) (any, error) {
	l := lua.NewState()
	setupSandbox(l)

	pushValue(l, input)
	l.SetGlobal("input")

	if err := lua.DoString(l, scriptContent); err != nil {
		return nil, fmt.Errorf("script error: %w", err)
	}

	// Prefer an exec function when the script defines one.
	l.Global("exec")
	if l.TypeOf(-1) == lua.TypeFunction {
		pushValue(l, input)
		if err := l.ProtectedCall(1, 1, 0); err != nil {
			return nil, fmt.Errorf("exec error: %w", err)
		}
		result := pullValue(l, -1)
		l.Pop(1)
		return result, nil
	}
	l.Pop(1)

	// Otherwise use the script's return value, if any.
	if l.Top() > 0 {
		result := pullValue(l, -1)
		l.Pop(1)
		return result, nil
	}

	return input, nil
}
