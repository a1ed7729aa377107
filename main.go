package main

import (
	"os"

	"gitsummary/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
