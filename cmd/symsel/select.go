package main

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"golang.org/x/text/unicode/runenames"

	"github.com/walteh/symsel/pkg/catalog"
	"github.com/walteh/symsel/pkg/symbolmap"
	"gitlab.com/tozd/go/errors"
)

func newSelectCommand(verbose *bool) *cobra.Command {
	var catalogPath string

	cmd := &cobra.Command{
		Use:   "select <selectors>",
		Short: "Apply a selector string and print the selected symbols",
		Long: `Apply a selector string to an empty symbol map and print the result.

Selectors are tag names separated by spaces or commas. A bare tag starts the
selection over, +tag adds matching symbols and -tag removes them:

  symsel select "block,border"
  symsel select "all-braille,stipple"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := loggerContext(cmd.Context(), *verbose)

			cat := catalog.Builtin()
			if catalogPath != "" {
				loaded, err := catalog.Load(afero.NewOsFs(), catalogPath)
				if err != nil {
					return errors.Errorf("loading catalog %s: %w", catalogPath, err)
				}
				cat = loaded
			}

			m := symbolmap.New(cat)
			defer m.Unref()

			if err := m.ApplySelectors(ctx, args[0]); err != nil {
				return errors.Errorf("applying selectors: %w", err)
			}
			m.Prepare()

			for _, sym := range m.Symbols() {
				fmt.Fprintf(cmd.OutOrStdout(), "U+%04X  %c  %-40s  %s\n",
					sym.Codepoint, sym.Codepoint, runenames.Name(sym.Codepoint), sym.Tags)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "HCL file defining a custom symbol catalog")

	return cmd
}
