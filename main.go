package main

import (
	"os"

	"github.com/CodMac/go-treesitter-class-finder/cmd"
)

func main() {
	os.Exit(cmd.Run(os.Args[1:], os.Stdout, os.Stderr))
}
