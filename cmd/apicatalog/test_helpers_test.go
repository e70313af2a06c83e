package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// getBinaryPath returns the path to the apicatalog binary for testing
func getBinaryPath(t *testing.T) string {
	binaryName := "apicatalog"
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath, err := filepath.Abs(filepath.Join("..", "..", "bin", binaryName))
	require.NoError(t, err)
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skipf("Binary not found at %s, build it first with 'go build -o bin/apicatalog ./cmd/apicatalog'", binaryPath)
	}

	return binaryPath
}

// runCLI executes the binary in dir with colour disabled
func runCLI(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	cmd := exec.Command(getBinaryPath(t), args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), "NO_COLOR=1")
	output, err := cmd.CombinedOutput()
	return string(output), err
}

func exitCode(err error) int {
	if exitErr, ok := err.(*exec.ExitError); ok {
		return exitErr.ExitCode()
	}
	return 0
}

const storeFixture = `[
  {
    "name": "Foo",
    "url": "https://foo.com",
    "description": "Foo API",
    "auth": "none",
    "https": true,
    "cors": "yes",
    "category": "development",
    "status": "working",
    "notes": "GET /",
    "date-checked": "2026-01-01",
    "try-it": null
  },
  {
    "name": "Cat Facts",
    "url": "https://catfact.ninja",
    "description": "Daily cat facts",
    "auth": "none",
    "https": true,
    "cors": "no",
    "category": "animals",
    "status": "pending",
    "notes": "",
    "date-checked": null,
    "try-it": null
  }
]
`

const sourceFixture = `{
  "count": 2,
  "entries": [
    {"API": "Foo", "Link": "https://foo.com", "Description": "Foo API", "Auth": "", "HTTPS": true, "Cors": "yes", "Category": "Development"},
    {"API": "Bar", "Link": "https://bar.io/api", "Description": "Bar API", "Auth": "apiKey", "HTTPS": true, "Cors": "no", "Category": "Science & Math"}
  ]
}
`

func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
