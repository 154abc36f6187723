package commit

import (
	"testing"
)

func TestParseConventionalCommit(t *testing.T) {
	t.Parallel()

	c := Parse("fix(auth): handle expired tokens\n\n### Why\ntokens were never refreshed\n")
	if c.Type != "fix" {
		t.Errorf("Type = %q, want %q", c.Type, "fix")
	}
	if c.Merge || c.Revert != nil {
		t.Errorf("unexpected merge/revert flags: %+v", c)
	}
	if got, want := c.Body, "### Why\ntokens were never refreshed"; got != want {
		t.Errorf("Body = %q, want %q", got, want)
	}
}

func TestParseNonConventionalMessage(t *testing.T) {
	t.Parallel()

	c := Parse("updated stuff\n\nsome details")
	if c.Type != "" {
		t.Errorf("Type = %q, want empty for unclassifiable message", c.Type)
	}
	if c.Body != "some details" {
		t.Errorf("Body = %q", c.Body)
	}
}

func TestParseMergeCommit(t *testing.T) {
	t.Parallel()

	c := Parse("Merge branch 'feature/login' into main")
	if !c.Merge {
		t.Error("Merge = false, want true")
	}
	if c.Type != "" {
		t.Errorf("Type = %q, want empty", c.Type)
	}
}

func TestParseRevertCommit(t *testing.T) {
	t.Parallel()

	msg := "Revert \"feat: add login\"\n\nThis reverts commit 0123456789abcdef0123456789abcdef01234567.\n"
	c := Parse(msg)
	if c.Revert == nil {
		t.Fatal("Revert = nil, want revert info")
	}
	if c.Revert.Header != "feat: add login" {
		t.Errorf("Revert.Header = %q", c.Revert.Header)
	}
	if c.Revert.Hash != "0123456789abcdef0123456789abcdef01234567" {
		t.Errorf("Revert.Hash = %q", c.Revert.Hash)
	}
}

func TestParseTypedRevertIsNotExempt(t *testing.T) {
	t.Parallel()

	c := Parse("revert: feat: add login\n\ndetails")
	if c.Revert != nil {
		t.Errorf("Revert = %+v, want nil for conventional revert type", c.Revert)
	}
	if c.Type != "revert" {
		t.Errorf("Type = %q, want %q", c.Type, "revert")
	}
}

func TestParseCRLFMessage(t *testing.T) {
	t.Parallel()

	c := Parse("fix: crlf\r\n\r\n### Why\r\nwindows\r\n")
	if c.Type != "fix" {
		t.Errorf("Type = %q, want %q", c.Type, "fix")
	}
	if c.Body == "" {
		t.Error("Body is empty, want section content")
	}
}

func TestParseHeaderOnly(t *testing.T) {
	t.Parallel()

	c := Parse("fix: no body at all")
	if c.Type != "fix" {
		t.Errorf("Type = %q, want %q", c.Type, "fix")
	}
	if c.Body != "" {
		t.Errorf("Body = %q, want empty", c.Body)
	}
}
