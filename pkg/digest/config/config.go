package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/readcircle/digest/pkg/digest/internalerr"
	"github.com/readcircle/digest/pkg/digest/tags"
)

// RuleFile is the YAML form of a keyword rule table. Rules are a
// list, not a map, so declaration order survives loading.
type RuleFile struct {
	Rules []RuleEntry `yaml:"rules"`
	// Fallback names the two tags used when nothing matches.
	// Optional; defaults to the compiled-in pair.
	Fallback []string `yaml:"fallback"`
}

// RuleEntry is one tag with its keyword list.
type RuleEntry struct {
	Tag      string   `yaml:"tag"`
	Keywords []string `yaml:"keywords"`
}

// LoadRules loads a keyword rule table from a YAML file.
func LoadRules(path string) (*RuleFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var rf RuleFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, err
	}

	if err := rf.validate(); err != nil {
		return nil, err
	}
	return &rf, nil
}

func (rf *RuleFile) validate() error {
	if len(rf.Rules) < 2 {
		return fmt.Errorf("%w: need at least 2 rules, got %d", internalerr.ErrInvalidConfig, len(rf.Rules))
	}
	seen := make(map[string]struct{}, len(rf.Rules))
	for _, r := range rf.Rules {
		if r.Tag == "" {
			return fmt.Errorf("%w: rule with empty tag", internalerr.ErrInvalidConfig)
		}
		if _, dup := seen[r.Tag]; dup {
			return fmt.Errorf("%w: duplicate tag %q", internalerr.ErrInvalidConfig, r.Tag)
		}
		seen[r.Tag] = struct{}{}
		if len(r.Keywords) == 0 {
			return fmt.Errorf("%w: tag %q has no keywords", internalerr.ErrInvalidConfig, r.Tag)
		}
	}
	if len(rf.Fallback) != 0 && len(rf.Fallback) != 2 {
		return fmt.Errorf("%w: fallback must name exactly 2 tags", internalerr.ErrInvalidConfig)
	}
	return nil
}

// Classifier constructs a tags.Classifier from the file, falling
// back to the compiled-in default pair when the file names none.
func (rf *RuleFile) Classifier() *tags.Classifier {
	rules := make([]tags.Rule, len(rf.Rules))
	for i, r := range rf.Rules {
		rules[i] = tags.Rule{Tag: r.Tag, Keywords: r.Keywords}
	}
	fallback := tags.DefaultFallback
	if len(rf.Fallback) == 2 {
		fallback = [2]string{rf.Fallback[0], rf.Fallback[1]}
	}
	return tags.NewClassifier(rules, fallback)
}

// Loader assembles the classifier from optional configuration paths.
type Loader struct {
	RulesPath string
}

// Load builds the classifier: the rules file when given, otherwise
// the compiled-in reference table.
func (l *Loader) Load() (*tags.Classifier, error) {
	if l.RulesPath == "" {
		return tags.NewClassifier(tags.DefaultRules(), tags.DefaultFallback), nil
	}
	rf, err := LoadRules(l.RulesPath)
	if err != nil {
		return nil, fmt.Errorf("load rules: %w", err)
	}
	return rf.Classifier(), nil
}
