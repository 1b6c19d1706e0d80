package fserr

import (
	"reflect"
	"sort"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// fields is the decode target for map- and struct-shaped failures.
type fields struct {
	Message string `mapstructure:"message"`
	Code    string `mapstructure:"code"`
	Path    string `mapstructure:"path"`
	Syscall string `mapstructure:"syscall"`
}

// inspectValue handles failures that are not Go errors: a map keyed by
// string, or a struct, exposing a string message field.
func inspectValue(v any) (shape, bool) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return shape{}, false
		}
		rv = rv.Elem()
	}

	var raw map[string]any
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return shape{}, false
		}
		raw = make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			raw[iter.Key().String()] = iter.Value().Interface()
		}
	case reflect.Struct:
		raw = exportedFields(rv)
	default:
		return shape{}, false
	}

	raw = canonical(raw)
	msg, ok := raw["message"].(string)
	if !ok {
		return shape{}, false
	}

	var f fields
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &f,
	})
	if err == nil {
		// Partial results are fine; fields that fail to decode stay empty.
		_ = dec.Decode(raw)
	}

	return shape{
		message: msg,
		code:    f.Code,
		path:    f.Path,
		syscall: f.Syscall,
	}, true
}

func exportedFields(rv reflect.Value) map[string]any {
	t := rv.Type()
	out := make(map[string]any, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		out[sf.Name] = rv.Field(i).Interface()
	}
	return out
}

var fieldKeys = []string{"message", "code", "path", "syscall"}

// canonical keeps one value per known field under its lower-case name.
// An exact key wins; otherwise the first case-insensitive match in sorted
// key order does, so the same input always yields the same fields.
func canonical(m map[string]any) map[string]any {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make(map[string]any, len(fieldKeys))
	for _, want := range fieldKeys {
		if v, ok := m[want]; ok {
			out[want] = v
			continue
		}
		for _, k := range keys {
			if strings.EqualFold(k, want) {
				out[want] = m[k]
				break
			}
		}
	}
	return out
}
