// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Program jsmn is a demonstration driver for the jsmn tokenizer.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "jsmn",
		Short: "Tokenize JSON without building a tree",
	}

	rootCmd.AddCommand(newTokensCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
