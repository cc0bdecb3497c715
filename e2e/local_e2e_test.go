//go:build local_e2e

package e2e

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, home string, body string) {
	t.Helper()
	cfgPath := filepath.Join(home, ".git-linear-branch", "config.json")
	if err := os.MkdirAll(filepath.Dir(cfgPath), 0o755); err != nil {
		t.Fatalf("mkdir config dir: %v", err)
	}
	if err := os.WriteFile(cfgPath, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func TestLocalE2EGoGitBackendFromConfig(t *testing.T) {
	if strings.TrimSpace(os.Getenv("GLB_LOCAL_E2E")) != "1" {
		t.Skip("set GLB_LOCAL_E2E=1 to run local-only e2e tests")
	}

	repo := setupRepo(t)
	home := t.TempDir()
	writeConfig(t, home, `{"git_backend": "go-git", "retention": 2}`+"\n")
	env := testEnv(home)

	for _, name := range []string{"owner/BAR-1-one", "owner/BAR-2-two", "owner/BAR-3-three"} {
		mustRun(t, repo, env, name)
	}
	if got := currentBranch(t, repo); got != "owner/BAR-3-three" {
		t.Fatalf("expected owner/BAR-3-three checked out, got %q", got)
	}
	doc := readStore(t, repo)
	if len(doc.Branches) != 2 {
		t.Fatalf("expected configured retention of 2, got %+v", doc.Branches)
	}
}

func TestLocalE2EFallsBackWithoutGitOnPath(t *testing.T) {
	if strings.TrimSpace(os.Getenv("GLB_LOCAL_E2E")) != "1" {
		t.Skip("set GLB_LOCAL_E2E=1 to run local-only e2e tests")
	}

	repo := setupRepo(t)
	env := testEnv(t.TempDir())
	env["PATH"] = t.TempDir()

	mustRun(t, repo, env, "owner/BAR-4-nogit")
	if got := currentBranch(t, repo); got != "owner/BAR-4-nogit" {
		t.Fatalf("expected owner/BAR-4-nogit checked out, got %q", got)
	}
	mustRun(t, repo, env, "again")
	if got := currentBranch(t, repo); got != "owner/BAR-4-again" {
		t.Fatalf("expected owner/BAR-4-again checked out, got %q", got)
	}
}
