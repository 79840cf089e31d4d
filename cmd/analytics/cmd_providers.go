package main

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kbukum/analytics/host"
	"github.com/kbukum/analytics/integrations"
	"github.com/kbukum/analytics/provider"
)

// newCmdProviders returns a command that lists the built-in integrations.
func newCmdProviders() *cobra.Command {
	return &cobra.Command{
		Use:   "providers",
		Short: "List built-in provider integrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := provider.NewRegistry()
			integrations.Register(reg)

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tDEFAULT KEY\tCAPABILITIES")
			for _, name := range reg.List() {
				d, _ := reg.Lookup(name)
				fmt.Fprintf(w, "%s\t%s\t%s\n", name, dash(d.DefaultKey), capabilities(cmd.Context(), d))
			}
			return w.Flush()
		},
	}
}

// capabilities builds a throwaway instance of d on a blank page to inspect
// which capability interfaces it implements.
func capabilities(ctx context.Context, d provider.Descriptor) string {
	opts := provider.Options{}
	if d.DefaultKey != "" {
		opts[d.DefaultKey] = "-"
	}
	p, err := provider.Construct(ctx, d, host.MustDocument(""), opts)
	if err != nil {
		return "?"
	}
	caps := provider.Capabilities(p)
	names := make([]string, len(caps))
	for i, c := range caps {
		names[i] = string(c)
	}
	return dash(strings.Join(names, ","))
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
