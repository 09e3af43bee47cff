package main

import (
	"fmt"
	"os"

	"github.com/ryanpate/invoice-generator-pro/internal/adapters/inbound/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
