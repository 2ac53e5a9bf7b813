package main

import (
	"os"

	"photodater/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
