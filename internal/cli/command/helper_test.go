package command

import (
	"bytes"
	"strings"
	"testing"
)

// runResult captures one CLI invocation.
type runResult struct {
	code   int
	stdout string
	stderr string
}

// run invokes the CLI with args (without the program name).
func run(t *testing.T, args ...string) runResult {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := Run(append([]string{"surveyauth"}, args...), &stdout, &stderr)
	return runResult{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

// expectError asserts a failing run whose stderr names code.
func expectError(t *testing.T, res runResult, code string) {
	t.Helper()
	if res.code != 1 {
		t.Errorf("exit code = %d, want 1", res.code)
	}
	if !strings.HasPrefix(res.stderr, "error: ["+code+"]") {
		t.Errorf("stderr = %q, want prefix %q", res.stderr, "error: ["+code+"]")
	}
	if res.stdout != "" {
		t.Errorf("stdout = %q, want empty", res.stdout)
	}
}
