package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scribe-notes/scribe/internal/config"
	"github.com/scribe-notes/scribe/internal/store"
)

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show store location and note count",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			storeFile := config.GetStoreFile()

			ix, err := store.Load(storeFile)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Store:   %s\n", storeFile)
			fmt.Fprintf(cmd.OutOrStdout(), "Notes:   %d\n", ix.Len())
			fmt.Fprintf(cmd.OutOrStdout(), "Version: %s\n", version)
			return nil
		},
	}

	return cmd
}
