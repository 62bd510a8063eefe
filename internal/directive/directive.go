// Package directive parses the custom `:::name{...}` markup embedded in
// generated post bodies into a tagged-variant AST, and lowers the AST to
// plain markdown for renderers that do not understand directives. The
// generator emits markup strings; this package is the independent second
// pass that consumes them.
package directive

import (
	"fmt"
	"regexp"
	"strings"
)

// Node is one element of a parsed post body.
type Node interface {
	node()
}

// Text is a run of plain markdown between directives.
type Text struct {
	Body string
}

// Callout is a `:::callout{type="..."}` block. Kind is one of insight,
// warning, tip, story.
type Callout struct {
	Kind string
	Body string
}

// Stat is an inline `:::stat{value="..." label="..."}:::` badge.
type Stat struct {
	Value string
	Label string
}

// Prompt is a `:::prompt` block holding a copyable prompt verbatim.
type Prompt struct {
	Body string
}

func (Text) node()    {}
func (Callout) node() {}
func (Stat) node()    {}
func (Prompt) node()  {}

var (
	calloutOpenRe = regexp.MustCompile(`^:::callout\{type="([^"]*)"\}\s*$`)
	promptOpenRe  = regexp.MustCompile(`^:::prompt\s*$`)
	statInlineRe  = regexp.MustCompile(`:::stat\{value="([^"]*)"\s+label="([^"]*)"\}:::`)
	closeRe       = regexp.MustCompile(`^:::\s*$`)
)

// Parse splits a post body into directive and text nodes. Inline stat
// directives may share a line with other text; block directives (callout,
// prompt) must open and close on their own lines. An unterminated block is
// an error.
func Parse(body string) ([]Node, error) {
	var nodes []Node
	var text strings.Builder

	flushText := func() {
		if text.Len() == 0 {
			return
		}
		nodes = append(nodes, Text{Body: strings.TrimRight(text.String(), "\n")})
		text.Reset()
	}

	lines := strings.Split(body, "\n")
	for i := 0; i < len(lines); i++ {
		line := lines[i]

		if m := calloutOpenRe.FindStringSubmatch(line); m != nil {
			flushText()
			inner, next, err := collectBlock(lines, i+1)
			if err != nil {
				return nil, fmt.Errorf("callout at line %d: %w", i+1, err)
			}
			nodes = append(nodes, Callout{Kind: m[1], Body: inner})
			i = next
			continue
		}

		if promptOpenRe.MatchString(line) {
			flushText()
			inner, next, err := collectBlock(lines, i+1)
			if err != nil {
				return nil, fmt.Errorf("prompt at line %d: %w", i+1, err)
			}
			nodes = append(nodes, Prompt{Body: inner})
			i = next
			continue
		}

		if statInlineRe.MatchString(line) {
			flushText()
			rest := line
			for {
				loc := statInlineRe.FindStringSubmatchIndex(rest)
				if loc == nil {
					break
				}
				if before := strings.TrimSpace(rest[:loc[0]]); before != "" {
					nodes = append(nodes, Text{Body: before})
				}
				nodes = append(nodes, Stat{
					Value: rest[loc[2]:loc[3]],
					Label: rest[loc[4]:loc[5]],
				})
				rest = rest[loc[1]:]
			}
			if after := strings.TrimSpace(rest); after != "" {
				nodes = append(nodes, Text{Body: after})
			}
			continue
		}

		text.WriteString(line)
		text.WriteString("\n")
	}
	flushText()
	return nodes, nil
}

// collectBlock gathers lines until the closing ::: marker, returning the
// inner body and the index of the closing line.
func collectBlock(lines []string, start int) (string, int, error) {
	var inner []string
	for i := start; i < len(lines); i++ {
		if closeRe.MatchString(lines[i]) {
			return strings.Join(inner, "\n"), i, nil
		}
		inner = append(inner, lines[i])
	}
	return "", 0, fmt.Errorf("missing closing :::")
}

// Markdown lowers a parsed body back to plain markdown: callouts become
// blockquotes, stats become bold value/label pairs, prompts become fenced
// code blocks.
func Markdown(nodes []Node) string {
	var b strings.Builder
	for i, n := range nodes {
		if i > 0 {
			b.WriteString("\n\n")
		}
		switch v := n.(type) {
		case Text:
			b.WriteString(v.Body)
		case Callout:
			for _, line := range strings.Split(strings.TrimSpace(v.Body), "\n") {
				b.WriteString("> " + line + "\n")
			}
		case Stat:
			fmt.Fprintf(&b, "**%s** %s", v.Value, v.Label)
		case Prompt:
			fmt.Fprintf(&b, "```\n%s\n```", strings.TrimSpace(v.Body))
		}
	}
	return strings.TrimSpace(b.String()) + "\n"
}
