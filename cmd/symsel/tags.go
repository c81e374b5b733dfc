package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/walteh/symsel/pkg/symtag"
)

func newTagsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tags",
		Short: "List the selector tag vocabulary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range symtag.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
