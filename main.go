package main

import (
	"os"

	"github.com/j6k4m8/beetsheet/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
