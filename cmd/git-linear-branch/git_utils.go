package main

import (
	"bytes"
	"errors"
	"os/exec"
	"strings"

	"github.com/sirupsen/logrus"
)

var errGitNotInstalled = errors.New("git not installed")
var errNotInGitRepository = errors.New("not in a git repository")

var lookPath = exec.LookPath

type checkoutResult struct {
	Stdout string
	Stderr string
	OK     bool
}

type gitClient interface {
	// TopLevel returns the absolute path of the repository containing dir.
	TopLevel(dir string) (string, error)
	// CheckoutNewBranch runs the equivalent of `git checkout -b name` in dir.
	// A non-zero git exit is reported through checkoutResult.OK, not err.
	CheckoutNewBranch(dir string, name string) (checkoutResult, error)
}

func newGitClient(cfg Config, log *logrus.Logger) gitClient {
	if cfg.GitBackend == gitBackendGoGit {
		log.Debug("using go-git backend from config")
		return goGitClient{}
	}
	path, err := lookPath("git")
	if err != nil {
		log.WithError(err).Debug("git binary not found, falling back to go-git")
		return goGitClient{}
	}
	return execGitClient{path: path}
}

type execGitClient struct {
	path string
}

func (c execGitClient) TopLevel(dir string) (string, error) {
	stdout, stderr, err := c.run(dir, "rev-parse", "--show-toplevel")
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			if msg := strings.TrimSpace(stderr); msg != "" {
				return "", errors.New(msg)
			}
			return "", errNotInGitRepository
		}
		return "", err
	}
	root := strings.TrimSpace(stdout)
	if root == "" {
		return "", errNotInGitRepository
	}
	return root, nil
}

func (c execGitClient) CheckoutNewBranch(dir string, name string) (checkoutResult, error) {
	stdout, stderr, err := c.run(dir, "checkout", "-b", name)
	result := checkoutResult{Stdout: stdout, Stderr: stderr, OK: err == nil}
	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return result, err
	}
	return result, nil
}

func (c execGitClient) run(dir string, args ...string) (string, string, error) {
	if c.path == "" {
		return "", "", errGitNotInstalled
	}
	cmd := exec.Command(c.path, args...)
	cmd.Dir = dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}
