package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/hubsync/pkg/domain/model"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"
)

// Rules holds the sync rule file configuration
type Rules struct {
	Path string
}

// Flags returns CLI flags for rules configuration
func (c *Rules) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "rules",
			Usage:       "Path to TOML file with per-repository sync rules",
			Destination: &c.Path,
			Sources:     cli.EnvVars("HUBSYNC_RULES"),
		},
	}
}

// Load reads and parses the rule file. When no path is configured the
// built-in defaults are returned.
func (c *Rules) Load() (*model.RuleSet, error) {
	if c.Path == "" {
		return model.DefaultRuleSet(), nil
	}

	data, err := os.ReadFile(c.Path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read rule file", goerr.V("path", c.Path))
	}

	return ParseRules(data)
}

// ParseRules parses TOML rule data and fills in defaults.
func ParseRules(data []byte) (*model.RuleSet, error) {
	var rules model.RuleSet
	if err := toml.Unmarshal(data, &rules); err != nil {
		return nil, goerr.Wrap(err, "failed to parse rule file")
	}

	if rules.Branch == "" {
		rules.Branch = model.DefaultBranch
	}
	if len(rules.WatchPaths) == 0 {
		rules.WatchPaths = model.DefaultWatchPaths
	}

	for _, rule := range rules.Rules {
		if _, err := model.ParseRepository(rule.Repository); err != nil {
			return nil, goerr.Wrap(err, "invalid repository in rule file", goerr.V("repository", rule.Repository))
		}
	}

	return &rules, nil
}
