package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newBindingsCmd(cfgFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "bindings",
		Short: "Print the container's contract bindings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := wire(*cfgFile, cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			reg := c.resolver.Registry()
			for _, b := range reg.Bindings() {
				_, _ = fmt.Fprintln(out, b)
			}
			_, _ = fmt.Fprintf(out, "%d types registered, overwrite policy %s, log sink %s\n",
				len(reg.Types()), reg.Policy(), c.cfg.Log.Sink)
			return nil
		},
	}
}
