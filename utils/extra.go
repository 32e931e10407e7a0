package utils

import (
	"encoding/json"
	"reflect"
	"strings"
)

// KnownJSONFields returns the set of top-level JSON keys a struct type declares,
// including keys contributed by embedded structs. Used to decide which members
// of a remote record are recognized and which belong in its Extra bag.
func KnownJSONFields(v any) map[string]struct{} {
	known := make(map[string]struct{})
	collectJSONFields(reflect.TypeOf(v), known)
	return known
}

func collectJSONFields(t reflect.Type, known map[string]struct{}) {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return
	}
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.Anonymous {
			collectJSONFields(field.Type, known)
			continue
		}
		if !field.IsExported() {
			continue
		}
		name := field.Name
		if tag, ok := field.Tag.Lookup("json"); ok {
			tagName := strings.Split(tag, ",")[0]
			if tagName == "-" {
				continue
			}
			if tagName != "" {
				name = tagName
			}
		}
		known[name] = struct{}{}
	}
}

// SplitExtra returns the top-level members of a raw JSON object that are not in
// known, decoded as plain values. Nested shape is not validated; unrecognized
// members are carried verbatim. A nil map means nothing was left over.
func SplitExtra(raw []byte, known map[string]struct{}) map[string]interface{} {
	var members map[string]json.RawMessage
	if err := json.Unmarshal(raw, &members); err != nil {
		return nil
	}

	var extra map[string]interface{}
	for key, val := range members {
		if _, ok := known[key]; ok {
			continue
		}
		var decoded interface{}
		if err := json.Unmarshal(val, &decoded); err != nil {
			continue
		}
		if extra == nil {
			extra = make(map[string]interface{})
		}
		extra[key] = decoded
	}
	return extra
}
