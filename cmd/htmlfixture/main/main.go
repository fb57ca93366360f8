package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/htmlfixture/cmd/htmlfixture"
)

func main() {
	rootCmd := htmlfixture.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
