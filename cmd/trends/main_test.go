package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testPage = `<html><head>
<meta name="keywords" content="careers<!-- DYNAMIC_KEYWORDS_START --><!-- DYNAMIC_KEYWORDS_END -->">
</head><body>
<div class="ticker"><!-- TICKER_ITEMS_START --><!-- TICKER_ITEMS_END --></div>
<footer>Updated <!-- CURRENT_DATE_START -->never<!-- CURRENT_DATE_END --></footer>
</body></html>
`

// executeCLI runs the root command with args and returns its stdout.
func executeCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), err
}

func writeTestPage(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "index.html")
	if err := os.WriteFile(path, []byte(testPage), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCLI_RewritesDocument(t *testing.T) {
	path := writeTestPage(t)

	if _, err := executeCLI(t, path, "--seed", "99"); err != nil {
		t.Fatalf("trends failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	if strings.Contains(out, ">never<") {
		t.Error("current date region was not replaced")
	}
	if !strings.Contains(out, `class="ticker-item`) {
		t.Error("ticker region was not filled")
	}
	if !strings.Contains(out, `content="careers<!-- DYNAMIC_KEYWORDS_START -->, `) {
		t.Error("meta keyword region was not filled")
	}
}

func TestCLI_SeededRunsMatch(t *testing.T) {
	first, second := writeTestPage(t), writeTestPage(t)
	for _, path := range []string{first, second} {
		if _, err := executeCLI(t, "--document", path, "--seed", "5"); err != nil {
			t.Fatalf("trends failed: %v", err)
		}
	}
	a, _ := os.ReadFile(first)
	b, _ := os.ReadFile(second)
	if !bytes.Equal(a, b) {
		t.Error("runs with the same seed produced different documents")
	}
}

func TestCLI_DryRunLeavesFile(t *testing.T) {
	path := writeTestPage(t)

	stdout, err := executeCLI(t, path, "--dry-run")
	if err != nil {
		t.Fatalf("trends failed: %v", err)
	}
	if !strings.Contains(stdout, `class="ticker-item`) {
		t.Error("dry run did not print the rewritten document")
	}
	data, _ := os.ReadFile(path)
	if string(data) != testPage {
		t.Error("dry run modified the document")
	}
}

func TestCLI_MissingDocument(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.html")
	if _, err := executeCLI(t, missing); err == nil {
		t.Fatal("expected an error for a missing document")
	}
}

func TestCLI_CatalogSeedAndList(t *testing.T) {
	db := filepath.Join(t.TempDir(), "keywords.db")

	if _, err := executeCLI(t, "catalog", "seed", "--catalog", db); err != nil {
		t.Fatalf("catalog seed failed: %v", err)
	}
	stdout, err := executeCLI(t, "catalog", "list", "--catalog", db)
	if err != nil {
		t.Fatalf("catalog list failed: %v", err)
	}
	for _, want := range []string{"CATEGORY", "AI Engineering", "Masters in AI", "Future of Work"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("catalog list output missing %q", want)
		}
	}

	// A seeded catalog drives a normal run.
	path := writeTestPage(t)
	if _, err = executeCLI(t, path, "--catalog", db, "--seed", "3"); err != nil {
		t.Fatalf("trends with catalog failed: %v", err)
	}
}

func TestCLI_CatalogRequiresPath(t *testing.T) {
	if _, err := executeCLI(t, "catalog", "list"); err == nil {
		t.Fatal("expected an error without --catalog")
	}
}

func TestCLI_MissingCatalogIsNotCreated(t *testing.T) {
	db := filepath.Join(t.TempDir(), "absent.db")
	path := writeTestPage(t)
	if _, err := executeCLI(t, path, "--catalog", db); err == nil {
		t.Fatal("expected an error for a missing catalog")
	}
	if _, err := os.Stat(db); !os.IsNotExist(err) {
		t.Errorf("read-only catalog open created %s", db)
	}
}

func TestCLI_Version(t *testing.T) {
	stdout, err := executeCLI(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(stdout, "trends dev") {
		t.Errorf("unexpected version output %q", stdout)
	}
}
