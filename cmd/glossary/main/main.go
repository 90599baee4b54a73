package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/glossary/cmd/glossary"
	"github.com/arthur-debert/glossary/pkg/styles"
)

func main() {
	rootCmd := glossary.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// Print the error in the error style
		fmt.Fprintln(os.Stderr, styles.GetStyle("Error").Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
