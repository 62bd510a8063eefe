package textclean

import (
	"fmt"
	"regexp"

	"github.com/spf13/afero"
	yaml "gopkg.in/yaml.v3"
)

// ruleSpec is the on-disk form of a rule. Patterns are Go regular
// expressions; literal names work as-is.
type ruleSpec struct {
	Pattern     string `yaml:"pattern"`
	Replacement string `yaml:"replacement"`
}

// LoadRules reads an ordered rule list from a YAML file:
//
//	- pattern: "(?i)Acme Corp"
//	  replacement: "a client"
//
// A missing file is not an error; the built-in defaults apply.
func LoadRules(fsys afero.Fs, path string) ([]Rule, error) {
	exists, err := afero.Exists(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("check rules file: %w", err)
	}
	if !exists {
		return DefaultRules(), nil
	}

	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read rules file %s: %w", path, err)
	}
	var specs []ruleSpec
	if err := yaml.Unmarshal(data, &specs); err != nil {
		return nil, fmt.Errorf("parse rules file %s: %w", path, err)
	}

	rules := make([]Rule, 0, len(specs))
	for i, spec := range specs {
		re, err := regexp.Compile(spec.Pattern)
		if err != nil {
			return nil, fmt.Errorf("rules file %s: rule %d: %w", path, i, err)
		}
		rules = append(rules, Rule{Pattern: re, Replacement: spec.Replacement})
	}
	return rules, nil
}
