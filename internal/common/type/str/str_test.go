package str

import (
	"testing"

	"github.com/alc-lisp/alc/internal/common/interface/literal"
)

func TestStr(t *testing.T) {
	s := New("hello")

	if s.String() != "hello" || literal.String(s) != `"hello"` {
		t.Fatalf("Unexpected text %s %s", s, literal.String(s))
	}

	if New("").Bool() || !s.Bool() {
		t.Fatal("Only the empty string is false")
	}

	if !s.Equal(New("hello")) || s.Equal(New("world")) {
		t.Fatal("Strings should be equal by value")
	}
}
