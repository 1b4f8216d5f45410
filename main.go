package main

import (
	"os"

	"github.com/scan-io-git/editorconfig-updater/cmd"
)

func main() {
	code := cmd.Execute()
	os.Exit(code)
}
