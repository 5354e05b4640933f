package main

import (
	"os"

	"github.com/ib-77/bevy-notion/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
