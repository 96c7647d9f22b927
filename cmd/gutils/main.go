// gutils - helpers for desktop shell scripts

package main

import (
	"os"

	"github.com/deskscript/gutils/internal/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
