package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scribe-notes/scribe/internal/editor"
	"github.com/scribe-notes/scribe/internal/note"
	"github.com/scribe-notes/scribe/internal/services"
)

func newNewCmd() *cobra.Command {
	var tags []string

	cmd := &cobra.Command{
		Use:   "new <name> [path]",
		Short: "Create a note file and start tracking it",
		Long:  "Create a new note file, draft its content with $EDITOR, and add it to the index.\nWithout a path the file is created as <name>.txt in the current directory.",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			path := ""
			if len(args) == 2 {
				path = args[1]
			}

			return withIndex(func(ix *note.Index) error {
				svc := services.NewNoteService(editor.Exec{})
				created, err := svc.New(ix, name, path, tags)
				if err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "Note `%s` at %s added successfully.\n", name, created)
				return nil
			})
		},
	}

	cmd.Flags().StringSliceVarP(&tags, "tag", "t", nil, "Attach tags to the note")

	return cmd
}
