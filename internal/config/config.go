// Package config defines the configuration types and defaults for colonlint.
package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Severity values accepted in rule settings.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityOff     = "off"
)

// Config is the top-level configuration.
type Config struct {
	Lint LintConfig `yaml:"lint"`
}

// LintConfig holds linter settings.
type LintConfig struct {
	Format        string                `yaml:"format" validate:"oneof=text json sarif"`
	StrictOptions bool                  `yaml:"strict_options"`
	Concurrency   int                   `yaml:"concurrency" validate:"gte=0"`
	Extensions    []string              `yaml:"extensions" validate:"min=1,dive,startswith=."`
	Exclude       []string              `yaml:"exclude" validate:"dive,required"`
	Rules         map[string]RuleConfig `yaml:"rules" validate:"dive,keys,required,endkeys"`
}

// RuleConfig enables a rule. Option is passed to the rule unchanged.
type RuleConfig struct {
	Severity string `yaml:"severity" validate:"omitempty,oneof=error warning off"`
	Option   any    `yaml:"option"`
}

// Enabled reports whether the rule should run.
func (r RuleConfig) Enabled() bool {
	return r.Severity != SeverityOff
}

// DefaultConfig returns a Config with all default values.
func DefaultConfig() *Config {
	return &Config{
		Lint: LintConfig{
			Format:     "text",
			Extensions: []string{".js", ".cjs", ".mjs"},
			Exclude:    []string{"**/node_modules"},
			Rules: map[string]RuleConfig{
				"whitespace-before-colon": {
					Severity: SeverityError,
					Option:   "nospace",
				},
			},
		},
	}
}

var validate = validator.New()

// Validate checks field constraints, including each rule setting. Errors
// wrap ErrInvalidConfig.
func (c *Config) Validate() error {
	var msgs []string
	if err := collect(&msgs, "Config", validate.Struct(c)); err != nil {
		return err
	}
	for _, name := range c.RuleNames() {
		rc := c.Lint.Rules[name]
		ns := fmt.Sprintf("Config.Lint.Rules[%s]", name)
		if err := collect(&msgs, ns, validate.Struct(&rc)); err != nil {
			return err
		}
	}

	if len(msgs) == 0 {
		return nil
	}
	sort.Strings(msgs)
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}

// collect appends field errors from err to msgs, with namespaces rooted at
// prefix. Errors that are not field errors are returned wrapped.
func collect(msgs *[]string, prefix string, err error) error {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	for _, fe := range verrs {
		field := fe.Namespace()
		if _, rest, ok := strings.Cut(field, "."); ok {
			field = prefix + "." + rest
		}
		*msgs = append(*msgs, fmt.Sprintf("%s: failed %q (value %v)", field, fe.Tag(), fe.Value()))
	}
	return nil
}

// RuleNames returns the configured rule names in sorted order.
func (c *Config) RuleNames() []string {
	names := make([]string, 0, len(c.Lint.Rules))
	for name := range c.Lint.Rules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
