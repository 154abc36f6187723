// Package commit adapts raw commit messages into the parsed form the section
// rules consume. Conventional-commit header parsing is delegated to
// github.com/leodido/go-conventionalcommits; this package only derives the
// merge/revert flags and falls back to a plain body split when the message is
// not a conventional commit.
package commit

import (
	"regexp"
	"strings"

	"github.com/leodido/go-conventionalcommits"
	"github.com/leodido/go-conventionalcommits/parser"

	"github.com/sectionlint/sectionlint/pkg/rules"
)

var (
	mergeHeaderRe  = regexp.MustCompile(`^Merge\b`)
	revertHeaderRe = regexp.MustCompile(`^Revert "(.*)"`)
	revertedHashRe = regexp.MustCompile(`This reverts commit ([0-9a-f]{7,40})`)
)

// Parse turns a raw commit message into a rules.Commit. Messages that are
// neither conventional commits nor merge/revert commits yield a commit with
// an empty type, which the rules never check.
func Parse(message string) rules.Commit {
	normalized := strings.ReplaceAll(message, "\r\n", "\n")
	header, body := split(normalized)

	c := rules.Commit{Body: body}

	if mergeHeaderRe.MatchString(header) {
		c.Merge = true
		return c
	}
	c.Revert = detectRevert(header, normalized)

	machine := parser.NewMachine(
		conventionalcommits.WithTypes(conventionalcommits.TypesConventional),
		conventionalcommits.WithBestEffort(),
	)
	res, _ := machine.Parse([]byte(normalized))
	if res == nil {
		return c
	}
	if cc, ok := res.(*conventionalcommits.ConventionalCommit); ok {
		c.Type = cc.Type
		if cc.Body != nil {
			c.Body = strings.TrimRight(*cc.Body, "\n")
		}
	}
	return c
}

// split separates the header line from the body. The body starts after the
// first line, with separating blank lines stripped; footers stay in the body
// since the section scan tolerates trailing content.
func split(message string) (header, body string) {
	header, rest, found := strings.Cut(message, "\n")
	if !found {
		return header, ""
	}
	rest = strings.TrimLeft(rest, "\n")
	return header, strings.TrimRight(rest, "\n")
}

// detectRevert recognizes git-generated revert messages: a `Revert "..."`
// header or a "This reverts commit <hash>" trailer. Conventional commits
// typed "revert:" are not exempt; they go through type configuration like
// any other type.
func detectRevert(header, message string) *rules.Revert {
	var rev *rules.Revert
	if m := revertedHashRe.FindStringSubmatch(message); m != nil {
		rev = &rules.Revert{Hash: m[1]}
	}
	if m := revertHeaderRe.FindStringSubmatch(header); m != nil {
		if rev == nil {
			rev = &rules.Revert{}
		}
		rev.Header = m[1]
	}
	return rev
}
