package script

import (
	"encoding/json"

	lua "github.com/Shopify/go-lua"
)

// pushValue converts a Go value to Lua.
func pushValue(l *lua.State, v any) {
	switch val := v.(type) {
	case nil:
		l.PushNil()
	case bool:
		l.PushBoolean(val)
	case int:
		l.PushInteger(val)
	case int64:
		l.PushInteger(int(val))
	case uint64:
		l.PushInteger(int(val))
	case float64:
		l.PushNumber(val)
	case string:
		l.PushString(val)
	case []any:
		l.NewTable()
		for i, item := range val {
			l.PushInteger(i + 1)
			pushValue(l, item)
			l.SetTable(-3)
		}
	case map[string]any:
		l.NewTable()
		for k, item := range val {
			l.PushString(k)
			pushValue(l, item)
			l.SetTable(-3)
		}
	default:
		// Fall back to a JSON string for anything exotic.
		if data, err := json.Marshal(val); err == nil {
			l.PushString(string(data))
		} else {
			l.PushNil()
		}
	}
}

// pullValue converts a Lua value to Go.
func pullValue(l *lua.State, idx int) any {
	switch l.TypeOf(idx) {
	case lua.TypeNil:
		return nil
	case lua.TypeBoolean:
		return l.ToBoolean(idx)
	case lua.TypeNumber:
		n, _ := l.ToNumber(idx)
		return n
	case lua.TypeString:
		s, _ := l.ToString(idx)
		return s
	case lua.TypeTable:
		return pullTable(l, idx)
	default:
		return nil
	}
}

// pullTable converts a Lua table to either a []any (contiguous integer keys)
// or a map[string]any.
func pullTable(l *lua.State, idx int) any {
	l.PushValue(idx)

	isArray := true
	maxIndex := 0

	l.PushNil()
	for l.Next(-2) {
		if l.TypeOf(-2) != lua.TypeNumber {
			isArray = false
			l.Pop(2)
			break
		}
		n, _ := l.ToNumber(-2)
		if i := int(n); i > maxIndex {
			maxIndex = i
		}
		l.Pop(1)
	}

	if isArray && maxIndex > 0 {
		arr := make([]any, maxIndex)
		for i := 1; i <= maxIndex; i++ {
			l.PushInteger(i)
			l.Table(-2)
			arr[i-1] = pullValue(l, -1)
			l.Pop(1)
		}
		l.Pop(1)
		return arr
	}

	obj := make(map[string]any)
	l.PushNil()
	for l.Next(-2) {
		key, _ := l.ToString(-2)
		obj[key] = pullValue(l, -1)
		l.Pop(1)
	}
	l.Pop(1)
	return obj
}
