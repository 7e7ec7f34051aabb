// flowrecdump is a command line tool that inspects the built-in flow record
// templates and shows how records are laid out on the wire.
package main

import (
	"fmt"
	"os"

	"github.com/arloliu/flowrec/cmd/flowrecdump/command"
)

func main() {
	if err := command.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "flowrecdump error: %s\n", err)
		os.Exit(1)
	}
}
