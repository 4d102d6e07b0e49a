package dap

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// Field policy tags.
//
// A field whose json tag has no omitempty is required, unless it carries
// dap:"optional" (a field with a non-zero default that is always emitted).
// dap:"handle" marks integer reference handles bounded by MaxHandle.

// MaxHandle is the largest value a reference handle may take on the wire.
const MaxHandle = 2147483647

var rawMessageType = reflect.TypeOf(json.RawMessage(nil))

type fieldSpec struct {
	name     string
	index    int
	typ      reflect.Type
	required bool
	handle   bool
}

func recordFields(t reflect.Type) []fieldSpec {
	var specs []fieldSpec
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.PkgPath != "" {
			continue
		}
		tag := f.Tag.Get("json")
		if tag == "-" {
			continue
		}
		name, opts, _ := strings.Cut(tag, ",")
		if name == "" {
			name = f.Name
		}
		dapOpts := strings.Split(f.Tag.Get("dap"), ",")
		specs = append(specs, fieldSpec{
			name:     name,
			index:    i,
			typ:      f.Type,
			required: !hasOpt(opts, "omitempty") && !containsString(dapOpts, "optional"),
			handle:   containsString(dapOpts, "handle"),
		})
	}
	return specs
}

func hasOpt(opts, want string) bool {
	return containsString(strings.Split(opts, ","), want)
}

func containsString(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}

func joinPath(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}

func indexPath(prefix string, i int) string {
	return fmt.Sprintf("%s[%d]", prefix, i)
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// nullable reports whether a required field of type t may be present as null.
func nullable(t reflect.Type) bool {
	return t.Kind() == reflect.Pointer || t.Kind() == reflect.Interface || t == rawMessageType
}

func kindName(t reflect.Type) string {
	if t == reflect.TypeOf(ModuleID{}) {
		return "integer or string"
	}
	switch t.Kind() {
	case reflect.Struct, reflect.Map:
		return "object"
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Float32, reflect.Float64:
		return "number"
	default:
		return "integer"
	}
}

// checkFields walks raw alongside t and reports the first required field
// that is absent, the first object/array shape mismatch, or nesting beyond
// the codec's depth limit. Scalar mismatches are left to json.Unmarshal.
func (c Codec) checkFields(t reflect.Type, raw json.RawMessage, path string, depth int) error {
	if depth > c.maxDepth() {
		return &InvalidTypeError{Path: path, Want: fmt.Sprintf("at most %d levels of nesting", c.maxDepth()), Err: ErrTooDeep}
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if isNull(raw) || t == rawMessageType {
		return nil
	}

	switch t.Kind() {
	case reflect.Struct:
		specs := recordFields(t)
		if len(specs) == 0 {
			return nil
		}
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(raw, &obj); err != nil {
			return &InvalidTypeError{Path: path, Want: "object", Err: err}
		}
		for _, f := range specs {
			v, ok := obj[f.name]
			if !ok {
				if f.required {
					return &MissingFieldError{Path: joinPath(path, f.name)}
				}
				continue
			}
			if f.required && isNull(v) && !nullable(f.typ) {
				return &InvalidTypeError{Path: joinPath(path, f.name), Want: "non-null " + kindName(f.typ)}
			}
			if err := c.checkFields(f.typ, v, joinPath(path, f.name), depth+1); err != nil {
				return err
			}
		}
	case reflect.Slice, reflect.Array:
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return &InvalidTypeError{Path: path, Want: "array", Err: err}
		}
		for i, item := range items {
			if isNull(item) && !nullable(t.Elem()) {
				return &InvalidTypeError{Path: indexPath(path, i), Want: "non-null " + kindName(t.Elem())}
			}
			if err := c.checkFields(t.Elem(), item, indexPath(path, i), depth+1); err != nil {
				return err
			}
		}
	case reflect.Map:
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(raw, &obj); err != nil {
			return &InvalidTypeError{Path: path, Want: "object", Err: err}
		}
		keys := make([]string, 0, len(obj))
		for k := range obj {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if err := c.checkFields(t.Elem(), obj[k], joinPath(path, k), depth+1); err != nil {
				return err
			}
		}
	}
	return nil
}

// decodePayload applies the field policy to raw and unmarshals it into v.
// An absent or null payload decodes as an empty object.
func (c Codec) decodePayload(raw json.RawMessage, path string, v any) error {
	if isNull(raw) {
		raw = json.RawMessage("{}")
	}
	if err := c.checkFields(reflect.TypeOf(v), raw, path, 0); err != nil {
		return err
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return wrapJSONError(path, err)
	}
	return nil
}

func wrapJSONError(path string, err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		want := ""
		if typeErr.Type != nil {
			want = typeErr.Type.String()
		}
		return &InvalidTypeError{Path: joinPath(path, typeErr.Field), Want: want, Err: err}
	}
	return &InvalidTypeError{Path: path, Err: err}
}

// withEmptyCollections returns a copy of v in which every nil slice or map
// held by a required field is empty, so it encodes as [] or {} rather than
// null. v itself is not modified.
func withEmptyCollections(v reflect.Value) reflect.Value {
	switch v.Kind() {
	case reflect.Pointer:
		if v.IsNil() {
			return v
		}
		p := reflect.New(v.Type().Elem())
		p.Elem().Set(withEmptyCollections(v.Elem()))
		return p
	case reflect.Struct:
		out := reflect.New(v.Type()).Elem()
		out.Set(v)
		for _, f := range recordFields(v.Type()) {
			fv := out.Field(f.index)
			if f.required && f.typ != rawMessageType {
				switch {
				case fv.Kind() == reflect.Slice && fv.IsNil():
					fv.Set(reflect.MakeSlice(f.typ, 0, 0))
					continue
				case fv.Kind() == reflect.Map && fv.IsNil():
					fv.Set(reflect.MakeMap(f.typ))
					continue
				}
			}
			fv.Set(withEmptyCollections(fv))
		}
		return out
	case reflect.Slice:
		if v.IsNil() || v.Type() == rawMessageType {
			return v
		}
		out := reflect.MakeSlice(v.Type(), v.Len(), v.Len())
		for i := 0; i < v.Len(); i++ {
			out.Index(i).Set(withEmptyCollections(v.Index(i)))
		}
		return out
	}
	return v
}

// checkHandles reports the first handle-tagged integer in v outside
// [0, MaxHandle].
func checkHandles(v reflect.Value, path string) error {
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Struct:
		for _, f := range recordFields(v.Type()) {
			fv := v.Field(f.index)
			p := joinPath(path, f.name)
			if f.handle {
				if err := checkHandleValue(fv, p); err != nil {
					return err
				}
				continue
			}
			if err := checkHandles(fv, p); err != nil {
				return err
			}
		}
	case reflect.Slice, reflect.Array:
		if v.Type() == rawMessageType {
			return nil
		}
		for i := 0; i < v.Len(); i++ {
			if err := checkHandles(v.Index(i), indexPath(path, i)); err != nil {
				return err
			}
		}
	case reflect.Map:
		iter := v.MapRange()
		for iter.Next() {
			if err := checkHandles(iter.Value(), joinPath(path, fmt.Sprint(iter.Key().Interface()))); err != nil {
				return err
			}
		}
	}
	return nil
}

func checkHandleValue(v reflect.Value, path string) error {
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if n := v.Int(); n < 0 || n > MaxHandle {
			return &HandleRangeError{Path: path, Value: n}
		}
	case reflect.Slice:
		for i := 0; i < v.Len(); i++ {
			if err := checkHandleValue(v.Index(i), indexPath(path, i)); err != nil {
				return err
			}
		}
	}
	return nil
}
