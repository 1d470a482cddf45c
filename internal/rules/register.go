package rules

import (
	"github.com/donaldgifford/colonlint/internal/rules/whitespace"
)

func init() {
	Register(&whitespace.BeforeColon{})
}
