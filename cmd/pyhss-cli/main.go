// Package main はpyhss-cliのエントリーポイント。
package main

import (
	"os"

	"github.com/lynxis/pyhss-cli/internal/cli"
)

var version = "dev"

func main() {
	if err := cli.Execute(version); err != nil {
		os.Exit(1)
	}
}
