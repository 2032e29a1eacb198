package main

import (
	"os"

	"github.com/wildfunctions/recursive_art/pkg/cli"
)

func main() {
	os.Exit(cli.Execute())
}
