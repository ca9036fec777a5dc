// Command mornington runs a Mornington source file.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/spf13/afero"

	"github.com/lilagelb/mornington"
)

// CLI is the kong command line, grounded on spectr's main.go: kong.Parse
// against a plain struct, no subcommand tree needed for a single entry
// point.
type CLI struct {
	Path    string `arg:"" help:"Path to a Mornington source file."`
	Verbose bool   `short:"v" help:"Print the exit code's meaning on failure, and log the print built-ins' calls."`
}

func main() {
	var cli CLI
	kong.Parse(&cli,
		kong.Name("mornington"),
		kong.Description("Run a Mornington program."),
		kong.UsageOnError(),
	)

	mornington.SetDebug(cli.Verbose)

	fs := afero.NewOsFs()
	source, err := mornington.ReadSource(fs, cli.Path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	runErr := mornington.Run(source, os.Stdin, os.Stdout, os.Stderr)
	code := mornington.ExitCode(runErr)
	if runErr != nil {
		fmt.Fprintln(os.Stderr, runErr)
		if cli.Verbose {
			if me, ok := runErr.(*mornington.Error); ok && me.Fatal() {
				fmt.Fprintln(os.Stderr, "exit 2: error caught before the program started running")
			} else {
				fmt.Fprintln(os.Stderr, "exit 1: error raised while the program was running")
			}
		}
	}
	os.Exit(code)
}
