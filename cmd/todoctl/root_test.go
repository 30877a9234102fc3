package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"

	"todo-web/internal/todo"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	viper.Reset()

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func setupDir(t *testing.T) string {
	t.Helper()
	chdir(t, t.TempDir())
	dir := t.TempDir()
	content := `[{"task":"buy milk","done":false},{"task":"walk dog","done":true}]`
	if err := os.WriteFile(filepath.Join(dir, "test.json"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestListsCmd(t *testing.T) {
	dir := setupDir(t)

	out, err := runCmd(t, "lists", "--dir", dir)
	if err != nil {
		t.Fatalf("lists: %v", err)
	}
	if strings.TrimSpace(out) != "test.json" {
		t.Errorf("unexpected output %q", out)
	}
}

func TestShowCmd(t *testing.T) {
	dir := setupDir(t)

	out, err := runCmd(t, "show", "test.json", "--dir", dir)
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	for _, want := range []string{"test.json", "buy milk", "walk dog", "1 of 2 done (50%)"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}

	if _, err := runCmd(t, "show", "ghost.json", "--dir", dir); !errors.Is(err, todo.ErrListNotFound) {
		t.Errorf("expected ErrListNotFound, got %v", err)
	}
}

func TestSetCmd(t *testing.T) {
	dir := setupDir(t)

	if _, err := runCmd(t, "set", "test.json", "0", "true", "--dir", dir); err != nil {
		t.Fatalf("set: %v", err)
	}

	out, err := runCmd(t, "show", "test.json", "--dir", dir)
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	if !strings.Contains(out, "2 of 2 done") {
		t.Errorf("expected both items done:\n%s", out)
	}

	if _, err := runCmd(t, "set", "test.json", "9", "true", "--dir", dir); !errors.Is(err, todo.ErrItemIndexOutOfRange) {
		t.Errorf("expected ErrItemIndexOutOfRange, got %v", err)
	}
	if _, err := runCmd(t, "set", "test.json", "x", "true", "--dir", dir); !errors.Is(err, todo.ErrInvalidPayload) {
		t.Errorf("expected ErrInvalidPayload, got %v", err)
	}
	if _, err := runCmd(t, "set", "test.json", "0", "maybe", "--dir", dir); !errors.Is(err, todo.ErrInvalidPayload) {
		t.Errorf("expected ErrInvalidPayload, got %v", err)
	}
}

// chdir changes the working directory for the duration of the test,
// mirroring testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
