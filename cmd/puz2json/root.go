package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for puz2json.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "puz2json",
		Short: "Decode Across Lite .puz crossword files",
		Long: `puz2json decodes Across Lite .puz files into their title, author,
copyright, notepad and full clue/answer list, including rebus squares and
circled squares when the file carries them.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(NewDecodeCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
