package main

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/docnav/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ┌┬┐┌─┐┌─┐┌┐┌┌─┐┬  ┬
   │││ ││  │││├─┤└┐┌┘
  ─┴┘└─┘└─┘┘└┘┴ ┴ └┘
`

func main() {
	rootCmd := &cobra.Command{
		Use:   "docnav",
		Short: "Navigation index for documentation sites",
		Long: `docnav builds and serves the navigation index of a docs site.

The index is built from a sidebar manifest (a nested JSON route tree)
and answers path queries over HTTP:

  • Exact path lookup with canonicalization
  • Flattened reading order per release channel
  • Breadcrumb trails
  • Previous/next page neighbors
  • Sidebar display lists with section headers

Manifests load from a local file or an S3 deploy bucket, and the index
rebuilds in place when the manifest changes.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		serveCmd(),
		checkCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		var de *errors.Error
		if stderrors.As(err, &de) {
			fmt.Fprint(os.Stderr, de.Format())
		} else {
			fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		}
		os.Exit(1)
	}
}

// printBanner prints the docnav ASCII art banner.
func printBanner() {
	fmt.Print(banner)
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}

// warn prints a warning message.
func warn(format string, args ...any) {
	fmt.Printf("\033[33m⚠\033[0m %s\n", fmt.Sprintf(format, args...))
}

// errorMsg prints an error message.
func errorMsg(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "\033[31m✗\033[0m %s\n", fmt.Sprintf(format, args...))
}
