package runner

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/donaldgifford/colonlint/internal/config"
	"github.com/donaldgifford/colonlint/internal/lint"
	"github.com/donaldgifford/colonlint/internal/rules"
)

// applyRuleOptions applies name=option overrides. A rule missing from the
// config is enabled with error severity.
func applyRuleOptions(cfg *config.Config, overrides []string) error {
	for _, o := range overrides {
		name, option, ok := strings.Cut(o, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return fmt.Errorf("%w: rule override %q: want name=option", config.ErrInvalidConfig, o)
		}

		if cfg.Lint.Rules == nil {
			cfg.Lint.Rules = map[string]config.RuleConfig{}
		}
		rc := cfg.Lint.Rules[name]
		if rc.Severity == "" || rc.Severity == config.SeverityOff {
			rc.Severity = config.SeverityError
		}
		rc.Option = strings.TrimSpace(option)
		cfg.Lint.Rules[name] = rc
	}
	return nil
}

// buildSettings resolves configured rules against the registry. Unknown
// rule names are errors. An option a rule does not recognize disables
// that rule with a warning, or is an error with strict_options.
func buildSettings(cfg *config.Config, log hclog.Logger) ([]lint.Setting, error) {
	var settings []lint.Setting
	for _, name := range cfg.RuleNames() {
		rc := cfg.Lint.Rules[name]
		if !rc.Enabled() {
			log.Debug("rule off", "rule", name)
			continue
		}

		rule, ok := rules.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("%w: unknown rule %q", config.ErrInvalidConfig, name)
		}

		if v, ok := rule.(lint.OptionValidator); ok {
			if err := v.ValidateOption(rc.Option); err != nil {
				if cfg.Lint.StrictOptions {
					return nil, fmt.Errorf("%w: %w", config.ErrInvalidConfig, err)
				}
				log.Warn("rule disabled by unrecognized option", "rule", name, "option", rc.Option)
			}
		}

		severity := lint.SeverityError
		if rc.Severity == config.SeverityWarning {
			severity = lint.SeverityWarning
		}

		log.Debug("rule enabled", "rule", name, "severity", severity, "option", rc.Option)
		settings = append(settings, lint.Setting{
			Rule:     rule,
			Severity: severity,
			Option:   rc.Option,
		})
	}
	return settings, nil
}
