package out_test

import (
	"os/exec"
	"runtime"
	"testing"
)

// shellArgv returns an argv running body with sh, skipping where sh is unavailable.
// Extra arguments appended by an adapter become the script's positional parameters.
func shellArgv(t *testing.T, body string) []string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not found")
	}
	return []string{"sh", "-c", body, "tool"}
}
