package main

import (
	"fmt"
	"os"

	"github.com/Bhuvaneshkumar1/Size-analyzer/internal/cli"
)

var version = "0.1.0"

func main() {
	if err := cli.New(version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
