package cmd

import (
	"strings"

	mdwerror "github.com/msto63/strvec/foundation/core/error"
	mdwerrors "github.com/msto63/strvec/foundation/core/errors"
)

func splitDelim(arg, delim string) []string {
	if delim == "" {
		return []string{arg}
	}
	return strings.Split(arg, delim)
}

func usageError(command, reason string) *mdwerror.Error {
	return mdwerrors.InputError(mdwerrors.ModuleCLI, command, reason, "gültige Argumente").
		WithDetail("reason", reason)
}
