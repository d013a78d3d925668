package bridge

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/alc-lisp/alc/internal/common/interface/object"
	"github.com/alc-lisp/alc/internal/common/type/boolean"
	"github.com/alc-lisp/alc/internal/common/type/builtin"
	"github.com/alc-lisp/alc/internal/common/type/errval"
	"github.com/alc-lisp/alc/internal/common/type/integer"
	"github.com/alc-lisp/alc/internal/common/type/list"
	"github.com/alc-lisp/alc/internal/common/type/null"
	"github.com/alc-lisp/alc/internal/common/type/str"
)

func TestToHost(t *testing.T) {
	for _, tc := range []struct {
		value    object.I
		expected any
	}{
		{null.Null, nil},
		{boolean.True, true},
		{integer.New(-3), int64(-3)},
		{str.New("a"), "a"},
		{list.New(integer.New(1), list.New(str.New("b"))), []any{int64(1), []any{"b"}}},
		{errval.New("bad"), map[string]any{"error": "bad"}},
		{builtin.New("f", nil), "<builtin f>"},
	} {
		if actual := ToHost(tc.value); !reflect.DeepEqual(actual, tc.expected) {
			t.Fatalf("ToHost(%v): expected %#v; got %#v", tc.value, tc.expected, actual)
		}
	}
}

func TestFromHostJSON(t *testing.T) {
	var v any

	err := json.Unmarshal([]byte(`[1, "two", true, null, [3], {"error": "x"}]`), &v)
	if err != nil {
		t.Fatal(err)
	}

	o := FromHost(v)

	expected := list.New(
		integer.New(1),
		str.New("two"),
		boolean.True,
		null.Null,
		list.New(integer.New(3)),
		errval.New("x"),
	)

	if !o.Equal(expected) {
		t.Fatalf("Expected %v; got %v", expected, o)
	}
}

func TestFromHostFailures(t *testing.T) {
	for _, v := range []any{1.5, 1e300, map[string]any{"a": 1.0}, struct{}{}} {
		if o := FromHost(v); !errval.Is(o) {
			t.Fatalf("FromHost(%#v): expected an error value; got %v", v, o)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	o := list.New(integer.New(7), str.New("s"), boolean.False, null.Null)

	b, err := json.Marshal(ToHost(o))
	if err != nil {
		t.Fatal(err)
	}

	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		t.Fatal(err)
	}

	if r := FromHost(v); !r.Equal(o) {
		t.Fatalf("Expected %v; got %v", o, r)
	}
}
