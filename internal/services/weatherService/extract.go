package weatherservice

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformed reports a decoded document that lacks a field, or has one of
// the wrong type.
var ErrMalformed = errors.New("malformed response")

// lookup walks a document produced by Client.FetchJSON. String steps index
// objects and int steps index arrays.
func lookup(doc any, path ...any) (any, bool) {
	cur := doc

	for _, step := range path {
		switch s := step.(type) {
		case string:
			obj, ok := cur.(map[string]any)
			if !ok {
				return nil, false
			}
			if cur, ok = obj[s]; !ok {
				return nil, false
			}
		case int:
			arr, ok := cur.([]any)
			if !ok || s < 0 || s >= len(arr) {
				return nil, false
			}
			cur = arr[s]
		default:
			return nil, false
		}
	}

	return cur, true
}

// extractor reads typed fields out of a document and remembers the first one
// that was absent, so mapping code can read every field and check once.
type extractor struct {
	doc  any
	miss string
}

func newExtractor(doc any) *extractor {
	return &extractor{doc: doc}
}

func (e *extractor) fail(path []any, want string) {
	if e.miss == "" {
		e.miss = fmt.Sprintf("%s (%s)", pathString(path), want)
	}
}

func (e *extractor) number(path ...any) json.Number {
	v, ok := lookup(e.doc, path...)
	n, isNum := v.(json.Number)
	if !ok || !isNum {
		e.fail(path, "number")
		return ""
	}

	return n
}

func (e *extractor) integer(path ...any) int64 {
	n := e.number(path...)
	if n == "" {
		return 0
	}

	i, err := n.Int64()
	if err != nil {
		e.fail(path, "integer")
		return 0
	}

	return i
}

func (e *extractor) float(path ...any) float64 {
	n := e.number(path...)
	if n == "" {
		return 0
	}

	f, err := n.Float64()
	if err != nil {
		e.fail(path, "number")
		return 0
	}

	return f
}

func (e *extractor) str(path ...any) string {
	v, ok := lookup(e.doc, path...)
	s, isStr := v.(string)
	if !ok || !isStr {
		e.fail(path, "string")
		return ""
	}

	return s
}

func (e *extractor) array(path ...any) []any {
	v, ok := lookup(e.doc, path...)
	arr, isArr := v.([]any)
	if !ok || !isArr {
		e.fail(path, "array")
		return nil
	}

	return arr
}

// err returns nil when every field read so far was present.
func (e *extractor) err() error {
	if e.miss == "" {
		return nil
	}

	return fmt.Errorf("%w: %s", ErrMalformed, e.miss)
}

// pathString renders a path as list[0].main.temp
func pathString(path []any) string {
	var b strings.Builder

	for _, step := range path {
		switch s := step.(type) {
		case int:
			b.WriteString("[" + strconv.Itoa(s) + "]")
		default:
			if b.Len() > 0 {
				b.WriteByte('.')
			}
			fmt.Fprint(&b, s)
		}
	}

	return b.String()
}
