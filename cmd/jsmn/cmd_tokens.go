// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/creachadair/jsmn"
	"github.com/spf13/cobra"
)

func newTokensCmd() *cobra.Command {
	var maxTokens int
	var decode bool

	cmd := &cobra.Command{
		Use:   "tokens [file]",
		Short: "Print the token boundaries of a JSON document",
		Long: `Print the token boundaries of a JSON document, one per line.

If a file is provided, it is read in full; otherwise input is read from
stdin. Each line reports the token kind, its byte span in the input, the
number of immediate children, and the raw source text of the token.

Use --max-tokens to impose a fixed token capacity, as an embedded
consumer of the tokenizer would. Without it the token array grows to fit
the input.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var input []byte
			var err error

			if len(args) == 0 {
				input, err = io.ReadAll(os.Stdin)
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
			} else {
				input, err = os.ReadFile(args[0])
				if err != nil {
					return fmt.Errorf("read file: %w", err)
				}
			}

			var toks []jsmn.Token
			if maxTokens > 0 {
				toks = make([]jsmn.Token, maxTokens)
				n, err := jsmn.New().Parse(input, toks)
				if err != nil {
					return fmt.Errorf("parse: %w", err)
				}
				toks = toks[:n]
			} else {
				toks, err = jsmn.Tokenize(input)
				if err != nil {
					return fmt.Errorf("parse: %w", err)
				}
			}

			for _, tok := range toks {
				text := tok.Text(input)
				if decode && tok.Kind == jsmn.String {
					if dec, err := jsmn.Unquote(text); err == nil {
						text = dec
					}
				}
				fmt.Printf("%-9s [%d,%d) size=%d %s\n", tok.Kind, tok.Start, tok.End, tok.Size, text)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&maxTokens, "max-tokens", 0, "fixed token capacity (0 grows as needed)")
	cmd.Flags().BoolVar(&decode, "decode", false, "unescape string tokens before printing")

	return cmd
}
