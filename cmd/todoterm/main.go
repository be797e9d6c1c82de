package main

import (
	"flag"
	"os"

	"todoterm/internal/cli"
)

func main() {
	flag.Parse()
	os.Exit(cli.Run(flag.Args()))
}
