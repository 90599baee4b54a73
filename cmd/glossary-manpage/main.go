package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/glossary/cmd/glossary"
	"github.com/arthur-debert/glossary/internal/version"
)

func main() {
	rootCmd := glossary.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "GLOSSARY",
		Section: "1",
		Source:  "glossary " + version.Version,
		Manual:  "glossary manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
