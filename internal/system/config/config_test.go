package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func write(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "alc.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestLoad(t *testing.T) {
	c, err := Load(write(t, "max_depth: 50\nprompt: \"alc> \"\nshow_comments: true\n"))
	if err != nil {
		t.Fatal(err)
	}

	if c.MaxDepth != 50 || c.Prompt != "alc> " || !c.ShowComments {
		t.Fatalf("Unexpected config %+v", c)
	}

	if c.History != Default().History {
		t.Fatalf("Expected the default history; got %s", c.History)
	}
}

func TestLoadEmpty(t *testing.T) {
	c, err := Load(write(t, ""))
	if err != nil {
		t.Fatal(err)
	}

	if *c != *Default() {
		t.Fatalf("Expected defaults; got %+v", c)
	}
}

func TestLoadErrors(t *testing.T) {
	for _, content := range []string{
		"max_depth: 0\n",
		"max_depth: many\n",
		"colour: blue\n",
	} {
		if _, err := Load(write(t, content)); err == nil {
			t.Fatalf("Expected an error for %q", content)
		}
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("Expected an error for a missing file")
	}
}

func TestLoadDefaultPath(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	c, err := Load("")
	if err != nil {
		t.Fatal(err)
	}

	if *c != *Default() {
		t.Fatalf("Expected defaults; got %+v", c)
	}

	home, _ := os.UserHomeDir()

	err = os.WriteFile(filepath.Join(home, Name), []byte("prompt: \"$ \"\n"), 0o600)
	if err != nil {
		t.Fatal(err)
	}

	if c, err = Load(""); err != nil || c.Prompt != "$ " {
		t.Fatalf("Expected the home configuration; got %+v, %v", c, err)
	}

	if !strings.HasPrefix(c.HistoryPath(), home) {
		t.Fatalf("Expected %s to be in %s", c.HistoryPath(), home)
	}
}

func TestExpand(t *testing.T) {
	if Expand("/tmp/x") != "/tmp/x" || Expand("~user/x") != "~user/x" {
		t.Fatal("Expected paths without a leading ~/ to be unchanged")
	}
}
