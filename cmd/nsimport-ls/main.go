// nsimport-ls serves namespace-import completions, completion details, and
// code fixes over a Content-Length framed JSON-RPC stream on stdio.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/tsgo-plugins/namespace-import/internal/lsp"
	"github.com/tsgo-plugins/namespace-import/internal/vfs/osvfs"
	"golang.org/x/term"
)

func main() {
	os.Exit(runMain())
}

func runMain() int {
	cwd := flag.String("cwd", "", "project root directory (defaults to the working directory)")
	verbose := flag.Bool("verbose", false, "enable verbose logging on stderr")
	flag.Parse()

	root := *cwd
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			fmt.Fprintln(os.Stderr, "error getting working directory:", err)
			return 1
		}
		root = wd
	}

	if term.IsTerminal(int(os.Stderr.Fd())) {
		fmt.Fprintln(os.Stderr, "nsimport-ls: reading Content-Length framed JSON-RPC from stdin")
	}

	server := lsp.NewServer(&lsp.ServerOptions{
		In:      os.Stdin,
		Out:     os.Stdout,
		Err:     os.Stderr,
		Cwd:     root,
		FS:      osvfs.FS(),
		Verbose: *verbose,
	})
	if err := server.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return 1
	}
	return 0
}
