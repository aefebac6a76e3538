// Package git reads repository state for tagging saved benchmark runs.
package git

import (
	"os/exec"
	"strings"
)

// Client queries the git binary in PATH.
type Client struct {
	// Dir is the working directory to query. Empty means the current
	// directory.
	Dir string
}

// NewClient creates a new Git client for the given directory.
func NewClient(dir string) *Client {
	return &Client{Dir: dir}
}

func (c *Client) run(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = c.Dir
	out, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// ShortHead returns the abbreviated commit hash of HEAD.
func (c *Client) ShortHead() (string, error) {
	return c.run("rev-parse", "--short", "HEAD")
}

// IsDirty reports whether the working tree has uncommitted changes.
func (c *Client) IsDirty() (bool, error) {
	out, err := c.run("status", "--porcelain")
	if err != nil {
		return false, err
	}
	return out != "", nil
}

// Describe returns the abbreviated HEAD commit, with a "-dirty" suffix
// when the working tree has uncommitted changes. It returns an empty
// string when the directory is not inside a git repository or git is
// not installed.
func (c *Client) Describe() string {
	head, err := c.ShortHead()
	if err != nil {
		return ""
	}
	if dirty, err := c.IsDirty(); err == nil && dirty {
		return head + "-dirty"
	}
	return head
}
