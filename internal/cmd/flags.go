package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var errUsage = errors.New("usage")

// usageArgs marks positional argument errors as usage errors.
func usageArgs(fn cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := fn(cmd, args); err != nil {
			return fmt.Errorf("%w: %v", errUsage, err)
		}
		return nil
	}
}

// changedInt returns the value of an int flag the user set explicitly.
func changedInt(fs *pflag.FlagSet, name string) (int, bool, error) {
	if !fs.Changed(name) {
		return 0, false, nil
	}
	v, err := fs.GetInt(name)
	if err != nil {
		return 0, false, err
	}
	return v, true, nil
}
