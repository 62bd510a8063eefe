package textclean

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRulesMissingFileUsesDefaults(t *testing.T) {
	fsys := afero.NewMemMapFs()

	rules, err := LoadRules(fsys, "data/anonymize-rules.yaml")
	require.NoError(t, err)
	assert.Len(t, rules, len(DefaultRules()))
}

func TestLoadRulesParsesOrderedList(t *testing.T) {
	fsys := afero.NewMemMapFs()
	doc := `- pattern: "(?i)Acme Corp"
  replacement: "a client"
- pattern: "(?i)SecretApp"
  replacement: "the product"
`
	require.NoError(t, afero.WriteFile(fsys, "rules.yaml", []byte(doc), 0o644))

	rules, err := LoadRules(fsys, "rules.yaml")
	require.NoError(t, err)
	require.Len(t, rules, 2)

	c := New(rules)
	assert.Equal(t, "a client uses the product", c.Anonymize("Acme Corp uses SecretApp"))
}

func TestLoadRulesRejectsBadPattern(t *testing.T) {
	fsys := afero.NewMemMapFs()
	doc := `- pattern: "(unclosed"
  replacement: "x"
`
	require.NoError(t, afero.WriteFile(fsys, "rules.yaml", []byte(doc), 0o644))

	_, err := LoadRules(fsys, "rules.yaml")
	assert.Error(t, err)
}
