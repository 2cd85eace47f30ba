package main

import (
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/scribe-notes/scribe/internal/config"
	"github.com/scribe-notes/scribe/internal/note"
	"github.com/scribe-notes/scribe/internal/store"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:          "scribe",
	Short:        "scribe - a personal note tracker",
	Long:         "scribe tracks note files wherever they live on disk.\nThe index is kept in a file under $SCRIBE_DIR or $XDG_CONFIG_HOME/scribe.",
	Version:      version,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		setupLogging(verbose)
	},
}

func init() {
	rootCmd.AddCommand(newNewCmd())
	rootCmd.AddCommand(newAddCmd())
	rootCmd.AddCommand(newEditCmd())
	rootCmd.AddCommand(newRemoveCmd())
	rootCmd.AddCommand(newDeleteCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newInfoCmd())

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

func setupLogging(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(tint.NewHandler(colorable.NewColorable(os.Stderr), &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05.000",
		NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
	}))
	slog.SetDefault(logger)
}

// withIndex loads the note index, hands it to fn, and stores the result.
// Failed commands leave the store file untouched.
func withIndex(fn func(ix *note.Index) error) error {
	storeFile := config.GetStoreFile()

	ix, err := store.Load(storeFile)
	if err != nil {
		return err
	}

	if err := fn(ix); err != nil {
		return err
	}

	return store.Save(storeFile, ix)
}
