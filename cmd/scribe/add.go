package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scribe-notes/scribe/internal/editor"
	"github.com/scribe-notes/scribe/internal/note"
	"github.com/scribe-notes/scribe/internal/services"
)

func newAddCmd() *cobra.Command {
	var tags []string

	cmd := &cobra.Command{
		Use:   "add <name> <path>",
		Short: "Track an existing file as a note",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, path := args[0], args[1]

			return withIndex(func(ix *note.Index) error {
				svc := services.NewNoteService(editor.Exec{})
				if err := svc.Add(ix, name, path, tags); err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "Note `%s` at %s added successfully.\n", name, path)
				return nil
			})
		},
	}

	cmd.Flags().StringSliceVarP(&tags, "tag", "t", nil, "Attach tags to the note")

	return cmd
}
