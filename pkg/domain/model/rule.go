package model

import "strings"

// DefaultBranch is the branch watched when no configuration overrides it.
const DefaultBranch = "main"

// DefaultWatchPaths is the default set of path patterns that trigger a sync.
var DefaultWatchPaths = []string{"README.md"}

// Rule overrides sync behavior for a single repository. Zero-value fields
// fall back to the RuleSet defaults.
type Rule struct {
	Repository         string   `toml:"repository"`                    // "owner/name" slug, matched case-insensitively
	Branch             string   `toml:"branch,omitempty"`              // watched branch
	WatchPaths         []string `toml:"watch_paths,omitempty"`         // path patterns that trigger a sync
	RegistryRepository string   `toml:"registry_repository,omitempty"` // full "<namespace>/<name>" override
	Disabled           bool     `toml:"disabled,omitempty"`            // skip syncs for this repository
}

// RuleSet holds the default trigger conditions and per-repository overrides.
type RuleSet struct {
	Branch     string   `toml:"branch"`
	WatchPaths []string `toml:"watch_paths"`
	Rules      []Rule   `toml:"rules"`
}

// DefaultRuleSet returns a RuleSet with the built-in trigger conditions and
// no per-repository overrides.
func DefaultRuleSet() *RuleSet {
	return &RuleSet{
		Branch:     DefaultBranch,
		WatchPaths: DefaultWatchPaths,
	}
}

// Resolve returns the effective rule for the repository, with unset fields
// filled from the RuleSet defaults.
func (s *RuleSet) Resolve(repo Repository) Rule {
	resolved := Rule{
		Repository: repo.FullName(),
		Branch:     s.Branch,
		WatchPaths: s.WatchPaths,
	}
	if resolved.Branch == "" {
		resolved.Branch = DefaultBranch
	}
	if len(resolved.WatchPaths) == 0 {
		resolved.WatchPaths = DefaultWatchPaths
	}

	for _, rule := range s.Rules {
		if !strings.EqualFold(rule.Repository, repo.FullName()) {
			continue
		}
		if rule.Branch != "" {
			resolved.Branch = rule.Branch
		}
		if len(rule.WatchPaths) > 0 {
			resolved.WatchPaths = rule.WatchPaths
		}
		resolved.RegistryRepository = rule.RegistryRepository
		resolved.Disabled = rule.Disabled
		break
	}

	return resolved
}
