package log

import (
	"encoding/json"
	"fmt"
)

// JSON defers marshalling v until the value is formatted, so a disabled
// logger pays nothing for it.
func JSON(v interface{}) interface{} {
	if v == nil {
		return nil
	}
	if j, ok := v.(JSONValue); ok {
		return j
	}
	return JSONValue{Value: v}
}

type JSONValue struct {
	Value interface{}
}

func (c JSONValue) String() string {
	b, err := json.Marshal(c.Value)
	if err != nil {
		return fmt.Sprintf("json.Marshal error: %v", err)
	}
	return string(b)
}
