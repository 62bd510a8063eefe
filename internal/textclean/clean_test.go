package textclean

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnonymizeReplacesKnownNames(t *testing.T) {
	c := New(DefaultRules())

	out := c.Anonymize("ActionTree integrates with StreamFit for Anchor Fitness.")
	assert.Equal(t, "the platform integrates with a third-party service for a client.", out)
}

func TestAnonymizeIsIdempotent(t *testing.T) {
	c := New(DefaultRules())

	once := c.Anonymize("Shipped the ActionTree scheduler and the Anchor Fitness onboarding flow.")
	twice := c.Anonymize(once)
	assert.Equal(t, once, twice)
}

func TestAnonymizeCaseInsensitive(t *testing.T) {
	c := New(DefaultRules())

	out := c.Anonymize("actiontree and ACTIONTREE and ActionTree")
	assert.NotContains(t, out, "actiontree")
	assert.NotContains(t, out, "ACTIONTREE")
}

func TestLeaksReportsRemainingMatches(t *testing.T) {
	c := New(DefaultRules())

	leaks := c.Leaks("The ActionTree rollout went fine.")
	require.Len(t, leaks, 1)
	assert.Contains(t, leaks[0], "ActionTree")

	assert.Empty(t, c.Leaks("Nothing identifying here."))
}

func TestFirstPersonSubjectAndPossessive(t *testing.T) {
	out := FirstPerson("You are treating your sessions as disposable. You restart often.")
	assert.Equal(t, "I'm treating my sessions as disposable. I restart often.", out)
}

func TestFirstPersonObjectPosition(t *testing.T) {
	// Prepositional "you" must become "me", not "I".
	out := FirstPerson("Claude built it for you, forcing you to review everything yourself.")
	assert.Equal(t, "Claude built it for me, forcing me to review everything myself.", out)
}

func TestFirstPersonLeavesUnrelatedWordsAlone(t *testing.T) {
	out := FirstPerson("The young analyst reviewed yours truly.")
	assert.Contains(t, out, "young")
	assert.Contains(t, out, "yours")
}

func TestCleanOrdersAnonymizeBeforeVoice(t *testing.T) {
	rules := append(DefaultRules(), Rule{
		Pattern:     regexp.MustCompile(`(?i)Acme Corp`),
		Replacement: "a client",
	})
	c := New(rules)

	out := c.Clean("You are doing great work for Acme Corp.")
	assert.Equal(t, "I'm doing great work for a client.", out)
}
