package cmd

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

func TestExtensionMechanism(t *testing.T) {
	tempDir := t.TempDir()

	helloCmdSource := fmt.Sprintf(`
package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Printf("%s=%%s\n", os.Getenv("%s"))
	fmt.Printf("%s=%%s\n", os.Getenv("%s"))
	fmt.Printf("%s=%%s\n", os.Getenv("%s"))
	fmt.Printf("ARGS=%%v\n", os.Args[1:])
}
`, EnvStore, EnvStore, EnvCurrency, EnvCurrency, EnvVerbose, EnvVerbose)

	helloCmdPath := filepath.Join(tempDir, "fundora-hello")
	srcFile := helloCmdPath + ".go"
	if err := os.WriteFile(srcFile, []byte(helloCmdSource), 0644); err != nil {
		t.Fatalf("Failed to write fundora-hello source: %v", err)
	}

	cmd := exec.Command("go", "build", "-o", helloCmdPath, srcFile)
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("Failed to compile fundora-hello: %v", err)
	}

	binaryPath := filepath.Join(tempDir, "fundora")
	cmd = exec.Command("go", "build", "-o", binaryPath, "../fundora")
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("Failed to compile fundora binary: %v", err)
	}

	expectedStore := filepath.Join(tempDir, "state.db")
	expectedCurrency := "XYZ"
	expectedVerbose := true

	args := []string{
		"--store", expectedStore,
		"--currency", expectedCurrency,
		"-v",
		"hello",
		"world",
	}

	fundoraCmd := exec.Command(binaryPath, args...)
	oldPath := os.Getenv("PATH")
	fundoraCmd.Env = []string{"PATH=" + tempDir + string(os.PathListSeparator) + oldPath}

	var stdout, stderr bytes.Buffer
	fundoraCmd.Stdout = &stdout
	fundoraCmd.Stderr = &stderr

	if err := fundoraCmd.Run(); err != nil {
		t.Fatalf("fundora command failed: %v\nStdout: %s\nStderr: %s", err, stdout.String(), stderr.String())
	}

	output := stdout.String()
	expectedLines := []string{
		fmt.Sprintf("%s=%s", EnvStore, expectedStore),
		fmt.Sprintf("%s=%s", EnvCurrency, expectedCurrency),
		fmt.Sprintf("%s=%s", EnvVerbose, strconv.FormatBool(expectedVerbose)),
		"ARGS=[world]",
	}
	for _, expectedLine := range expectedLines {
		if !strings.Contains(output, expectedLine) {
			t.Errorf("Expected output to contain %q, but got:\n%s", expectedLine, output)
		}
	}
}

func TestRunExtension_NotFound(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	found, code := RunExtension("nope", nil)
	if found || code != 0 {
		t.Errorf("RunExtension(nope) = %v, %d, want false, 0", found, code)
	}
}
