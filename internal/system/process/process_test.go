package process

import (
	"os"
	"testing"
	"time"
)

func TestGetwd(t *testing.T) {
	expected, err := os.Getwd()
	if err != nil {
		t.Skip(err)
	}

	actual, err := Getwd()
	if err != nil {
		t.Fatal(err)
	}

	if actual != expected {
		t.Fatalf("Expected %s; got %s", expected, actual)
	}
}

func TestSleep(t *testing.T) {
	start := time.Now()

	if err := Sleep(20 * time.Millisecond); err != nil {
		t.Fatal(err)
	}

	if elapsed := time.Since(start); elapsed < 20*time.Millisecond {
		t.Fatalf("Woke after %v", elapsed)
	}

	if err := Sleep(-time.Second); err != nil {
		t.Fatal(err)
	}
}
