// gen-docs is a standalone binary for generating CLI documentation.
// It provides documentation generation for the mansect CLI in Markdown and
// man page formats without the full mansect CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/FxamarAboali/mansect/internal/cmd/root"
	"github.com/FxamarAboali/mansect/internal/cmdutil"
	"github.com/FxamarAboali/mansect/internal/docs"
	"github.com/spf13/pflag"
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	flags := pflag.NewFlagSet("gen-docs", pflag.ContinueOnError)

	var (
		flagDocPath  string
		flagMarkdown bool
		flagManPage  bool
		flagWebsite  bool
	)

	flags.StringVar(&flagDocPath, "doc-path", "", "Output directory for generated docs (required)")
	flags.BoolVar(&flagMarkdown, "markdown", false, "Generate Markdown documentation")
	flags.BoolVar(&flagManPage, "man-page", false, "Generate man pages")
	flags.BoolVar(&flagWebsite, "website", false, "Add Jekyll front matter (requires --markdown)")

	flags.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n\n%s", filepath.Base(args[0]), flags.FlagUsages())
	}

	if err := flags.Parse(args[1:]); err != nil {
		return err
	}

	// Validation
	if flagDocPath == "" {
		return fmt.Errorf("--doc-path is required")
	}

	if !flagMarkdown && !flagManPage {
		return fmt.Errorf("at least one format must be specified (--markdown, --man-page)")
	}

	if flagWebsite && !flagMarkdown {
		return fmt.Errorf("--website requires --markdown")
	}

	// Create output directory
	if err := os.MkdirAll(flagDocPath, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	// Build the command tree
	f := &cmdutil.Factory{}
	rootCmd, err := root.NewCmdRoot(f, "", "")
	if err != nil {
		return fmt.Errorf("building command tree: %w", err)
	}

	// Generate each requested format
	if flagMarkdown {
		dir := filepath.Join(flagDocPath, "markdown")
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create markdown directory: %w", err)
		}

		var err error
		if flagWebsite {
			err = docs.GenMarkdownTreeCustom(rootCmd, dir, jekyllFilePrepender, jekyllLinkHandler)
		} else {
			err = docs.GenMarkdownTree(rootCmd, dir)
		}
		if err != nil {
			return fmt.Errorf("failed to generate Markdown documentation: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Generated Markdown documentation in %s\n", dir)
	}

	if flagManPage {
		dir := filepath.Join(flagDocPath, "man")
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create man directory: %w", err)
		}

		if err := docs.GenManTree(rootCmd, dir); err != nil {
			return fmt.Errorf("failed to generate man pages: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Generated man pages in %s\n", dir)
	}

	return nil
}

// jekyllFilePrepender returns Jekyll front matter for a given filename.
func jekyllFilePrepender(filename string) string {
	// Extract command name from filename (e.g., "mansect_templates_check.md" -> "mansect templates check")
	base := filepath.Base(filename)
	name := strings.TrimSuffix(base, ".md")
	cmdPath := strings.ReplaceAll(name, "_", " ")

	// Create permalink path (e.g., "/cli/mansect/templates/check/")
	permalink := "/cli/" + strings.ReplaceAll(name, "_", "/") + "/"

	return fmt.Sprintf(`---
layout: manual
permalink: %s
title: %s
---

`, permalink, cmdPath)
}

// jekyllLinkHandler creates relative markdown links for Jekyll sites.
func jekyllLinkHandler(cmdPath string) string {
	// Transform command path to relative link (e.g., "mansect templates" -> "mansect_templates.md")
	return strings.ReplaceAll(cmdPath, " ", "_") + ".md"
}
