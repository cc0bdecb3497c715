package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// goGitClient emulates the two git commands this tool needs when the git
// binary is unavailable.
type goGitClient struct{}

func (goGitClient) TopLevel(dir string) (string, error) {
	out, _, err := gitCommandOutputInDir(dir, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

func (goGitClient) CheckoutNewBranch(dir string, name string) (checkoutResult, error) {
	out, _, err := gitCommandOutputInDir(dir, "checkout", "-b", name)
	if err != nil {
		return checkoutResult{Stderr: "fatal: " + err.Error() + "\n"}, nil
	}
	return checkoutResult{Stderr: out, OK: true}, nil
}

func gitCommandOutputInDir(dir string, args ...string) (string, bool, error) {
	if len(args) == 0 {
		return "", false, nil
	}
	switch args[0] {
	case "rev-parse":
		return gitRevParse(dir, args[1:])
	case "checkout":
		return gitCheckout(dir, args[1:])
	default:
		return "", false, fmt.Errorf("go-git: unsupported command %q", args[0])
	}
}

func openRepo(dir string) (*git.Repository, string, error) {
	if strings.TrimSpace(dir) == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, "", err
		}
		dir = wd
	}
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, "", errNotInGitRepository
		}
		return nil, "", err
	}
	wt, err := repo.Worktree()
	if err != nil {
		return nil, "", err
	}
	return repo, wt.Filesystem.Root(), nil
}

func gitRevParse(dir string, args []string) (string, bool, error) {
	if len(args) == 1 && args[0] == "--show-toplevel" {
		_, root, err := openRepo(dir)
		if err != nil {
			return "", true, err
		}
		return root + "\n", true, nil
	}
	return "", false, fmt.Errorf("go-git: unsupported rev-parse arguments %v", args)
}

func gitCheckout(dir string, args []string) (string, bool, error) {
	if len(args) != 2 || args[0] != "-b" {
		return "", false, fmt.Errorf("go-git: unsupported checkout arguments %v", args)
	}
	newBranch := args[1]
	if strings.TrimSpace(newBranch) == "" {
		return "", true, errors.New("branch name required")
	}
	if strings.TrimSpace(newBranch) != newBranch {
		return "", true, fmt.Errorf("'%s' is not a valid branch name", newBranch)
	}
	repo, _, err := openRepo(dir)
	if err != nil {
		return "", true, err
	}
	refName := plumbing.NewBranchReferenceName(newBranch)
	if err := refName.Validate(); err != nil {
		return "", true, fmt.Errorf("'%s' is not a valid branch name", newBranch)
	}
	if _, err := repo.Reference(refName, false); err == nil {
		return "", true, fmt.Errorf("a branch named '%s' already exists", newBranch)
	}
	head, err := repo.Head()
	if err != nil {
		return "", true, fmt.Errorf("resolve HEAD: %w", err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		return "", true, err
	}
	err = wt.Checkout(&git.CheckoutOptions{
		Hash:   head.Hash(),
		Branch: refName,
		Create: true,
		Keep:   true,
	})
	if err != nil {
		return "", true, err
	}
	return fmt.Sprintf("Switched to a new branch '%s'\n", newBranch), true, nil
}
