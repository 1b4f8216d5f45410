package update

import (
	"fmt"
	"strings"

	"github.com/scan-io-git/editorconfig-updater/internal/updater"
)

// validateUpdateArgs validates the positional arguments of the update command.
func validateUpdateArgs(args []string) error {
	if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
		return fmt.Errorf("PATH to an existing .editorconfig is required")
	}
	if len(args) > 3 {
		return fmt.Errorf("unexpected positional arguments: %s", strings.Join(args[3:], ", "))
	}
	for _, ref := range args[1:] {
		if strings.TrimSpace(ref) == "" || strings.ContainsAny(ref, " \t\n") {
			return fmt.Errorf("invalid source ref %q", ref)
		}
	}
	return nil
}

// applyArgs copies the positional arguments into o.
func applyArgs(o *updater.Options, args []string) {
	o.Path = args[0]
	o.CompilerRef = ""
	o.AnalyzersRef = ""
	if len(args) > 1 {
		o.CompilerRef = args[1]
	}
	if len(args) > 2 {
		o.AnalyzersRef = args[2]
	}
}
