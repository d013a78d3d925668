// Released under an MIT license. See LICENSE.

package bridge

import (
	"math"

	"github.com/alc-lisp/alc/internal/common/interface/object"
	"github.com/alc-lisp/alc/internal/common/type/boolean"
	"github.com/alc-lisp/alc/internal/common/type/errval"
	"github.com/alc-lisp/alc/internal/common/type/integer"
	"github.com/alc-lisp/alc/internal/common/type/list"
	"github.com/alc-lisp/alc/internal/common/type/null"
	"github.com/alc-lisp/alc/internal/common/type/str"
)

// FromHost converts a host value, such as one decoded from JSON, to an alc value.
// Values that cannot be converted become error values.
func FromHost(v any) object.I {
	switch v := v.(type) {
	case nil:
		return null.Null

	case bool:
		return boolean.Bool(v)

	case int:
		return integer.New(int64(v))

	case int64:
		return integer.New(v)

	case float64:
		if v != math.Trunc(v) || v < math.MinInt64 || v >= math.MaxInt64 {
			return errval.Newf("cannot convert %v to an integer", v)
		}

		return integer.New(int64(v))

	case string:
		return str.New(v)

	case []any:
		elements := make([]object.I, len(v))
		for i, e := range v {
			elements[i] = FromHost(e)
		}

		return list.New(elements...)

	case map[string]any:
		if m, ok := v["error"].(string); ok && len(v) == 1 {
			return errval.New(m)
		}

	case object.I:
		return v
	}

	return errval.Newf("cannot convert value of type %T", v)
}

// ToHost converts an alc value to a value that encodes naturally as JSON.
// Builtins and functions become their display text.
func ToHost(o object.I) any {
	switch o := o.(type) {
	case *null.T:
		return nil

	case *boolean.T:
		return o.Bool()

	case *integer.T:
		return o.Int()

	case *str.T:
		return o.String()

	case *list.T:
		v := make([]any, o.Len())
		for i, e := range o.Elements() {
			v[i] = ToHost(e)
		}

		return v

	case *errval.T:
		return map[string]any{"error": o.Message()}
	}

	return o.String()
}
