// Package textclean sanitizes insights prose before publication: it strips
// identifying names (anonymization) and rewrites second-person phrasing into
// first person. Both passes are ordered regex substitutions; order matters
// and is part of the contract.
package textclean

import "regexp"

// Rule is one ordered substitution.
type Rule struct {
	Pattern     *regexp.Regexp
	Replacement string
}

// Cleaner applies anonymization followed by voice conversion.
type Cleaner struct {
	rules []Rule
}

// New builds a Cleaner from an ordered rule list. Rules run in slice order;
// later rules see the output of earlier ones.
func New(rules []Rule) *Cleaner {
	return &Cleaner{rules: rules}
}

// DefaultRules strips product and client names the insights export is known
// to surface. Add entries when new names show up that should not go public.
// Anonymization must stay idempotent: merge logic re-cleans accumulated
// historical text, so no replacement may re-match its own pattern.
func DefaultRules() []Rule {
	return []Rule{
		{regexp.MustCompile(`(?i)ActionTree`), "the platform"},
		{regexp.MustCompile(`(?i)Anchor Fitness`), "a client"},
		{regexp.MustCompile(`(?i)StreamFit`), "a third-party service"},
		// Keep these generic so they read naturally in prose
		{regexp.MustCompile(`(?i)for the platform's agent system`), "for the agent system"},
		{regexp.MustCompile(`(?i)demo scripts for the platform`), "demo scripts for the product"},
	}
}

// Anonymize applies every rule in order. Unmatched patterns are no-ops.
func (c *Cleaner) Anonymize(text string) string {
	for _, r := range c.rules {
		text = r.Pattern.ReplaceAllString(text, r.Replacement)
	}
	return text
}

// Leaks reports which rule patterns still match text. Used by the
// post-generation self-check.
func (c *Cleaner) Leaks(text string) []string {
	var leaked []string
	for _, r := range c.rules {
		if r.Pattern.MatchString(text) {
			leaked = append(leaked, r.Pattern.String())
		}
	}
	return leaked
}

// personRules rewrite second person to first person. Ordering matters:
// object-position prepositional patterns must run before the generic
// subject-position fallback, or the fallback consumes the match first.
// Known limitation kept on purpose: only "you are" gets verb agreement;
// other verb forms following "you" are left as-is.
var personRules = []Rule{
	{regexp.MustCompile(`\bYou are\b`), "I'm"},
	{regexp.MustCompile(`\byou are\b`), "I'm"},
	{regexp.MustCompile(`\bYour\b`), "My"},
	{regexp.MustCompile(`\byour\b`), "my"},
	{regexp.MustCompile(`\byourself\b`), "myself"},
	{regexp.MustCompile(`\bYourself\b`), "Myself"},
	// Object-position "you" after gerunds and prepositions
	{regexp.MustCompile(`(?i)\b(forcing|asking|telling|giving|showing|helping|letting|making|costing) you\b`), "$1 me"},
	{regexp.MustCompile(`(?i)\b(for|to|from|with|about|at|by|into|onto|upon) you\b`), "$1 me"},
	// Subject-position fallback
	{regexp.MustCompile(`\bYou\b`), "I"},
	{regexp.MustCompile(`\byou\b`), "I"},
}

// FirstPerson rewrites second-person phrasing to first person.
func FirstPerson(text string) string {
	for _, r := range personRules {
		text = r.Pattern.ReplaceAllString(text, r.Replacement)
	}
	return text
}

// Clean runs anonymization then voice conversion. Anonymization goes first:
// some of its patterns are case-insensitive whole-word matches that must fire
// before pronoun substitution touches the surrounding grammar.
func (c *Cleaner) Clean(text string) string {
	return FirstPerson(c.Anonymize(text))
}
