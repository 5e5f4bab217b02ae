package checker

import (
	"os"
	"strings"
	"testing"
)

// TestMaterializeSnippet tests that snippets are written verbatim with the
// requested extension and removed by cleanup.
func TestMaterializeSnippet(t *testing.T) {
	t.Parallel()

	text := "int main(void)\n{\n    return 0;\n}\n"
	path, cleanup, err := materializeSnippet(text, ".c")
	if err != nil {
		t.Fatalf("materializeSnippet failed: %v", err)
	}

	if !strings.HasSuffix(path, ".c") {
		t.Errorf("path %q does not end in .c", path)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read materialized file: %v", err)
	}
	if string(got) != text {
		t.Errorf("content = %q, expected %q", got, text)
	}

	cleanup()
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("file %q still exists after cleanup", path)
	}
}

// TestMaterializeSnippetUniqueNames tests that concurrent snippets never
// collide on a file name.
func TestMaterializeSnippetUniqueNames(t *testing.T) {
	t.Parallel()

	a, cleanupA, err := materializeSnippet("x = 1", ".py")
	if err != nil {
		t.Fatalf("materializeSnippet failed: %v", err)
	}
	defer cleanupA()

	b, cleanupB, err := materializeSnippet("y = 2", ".py")
	if err != nil {
		t.Fatalf("materializeSnippet failed: %v", err)
	}
	defer cleanupB()

	if a == b {
		t.Errorf("two snippets share the path %q", a)
	}
}

// TestMaterializeSnippetCleanupIdempotent tests that cleanup can run after
// the file is already gone.
func TestMaterializeSnippetCleanupIdempotent(t *testing.T) {
	t.Parallel()

	path, cleanup, err := materializeSnippet("echo hi", ".bash")
	if err != nil {
		t.Fatalf("materializeSnippet failed: %v", err)
	}

	if err := os.Remove(path); err != nil {
		t.Fatalf("failed to remove file: %v", err)
	}
	cleanup() // must not panic
}
