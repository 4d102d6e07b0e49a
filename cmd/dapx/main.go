package main

import (
	"os"

	"github.com/lydakis/dapx/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
