package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scribe-notes/scribe/internal/editor"
	"github.com/scribe-notes/scribe/internal/note"
	"github.com/scribe-notes/scribe/internal/services"
)

func newEditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <name>",
		Short: "Open a note with $EDITOR",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			return withIndex(func(ix *note.Index) error {
				svc := services.NewNoteService(editor.Exec{})
				if err := svc.Edit(ix, name); err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "Note `%s` has been edited successfully\n", name)
				return nil
			})
		},
	}

	return cmd
}
