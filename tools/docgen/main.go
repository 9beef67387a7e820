// Package main generates CLI reference documentation from the kpq command tree.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra/doc"

	"github.com/autokeyhq/keyprice-bot/cmd/kpq/cmd"
)

func main() {
	output := flag.String("output", "docs/cli", "output directory for generated markdown")
	flag.Parse()

	if err := os.MkdirAll(*output, 0o750); err != nil {
		log.Fatalf("creating output directory: %v", err)
	}

	root := cmd.Root()
	root.DisableAutoGenTag = true

	if err := doc.GenMarkdownTree(root, *output); err != nil {
		log.Fatalf("generating docs: %v", err)
	}

	if err := writeIndex(*output); err != nil {
		log.Fatalf("writing index: %v", err)
	}

	fmt.Printf("CLI docs generated in %s/\n", *output)
}

// writeIndex writes a README.md linking every generated command page.
func writeIndex(dir string) error {
	pages, err := filepath.Glob(filepath.Join(dir, "kpq*.md"))
	if err != nil {
		return err
	}
	sort.Strings(pages)

	var b strings.Builder
	b.WriteString("# kpq command reference\n\n")
	for _, p := range pages {
		name := filepath.Base(p)
		title := strings.ReplaceAll(strings.TrimSuffix(name, ".md"), "_", " ")
		fmt.Fprintf(&b, "- [%s](%s)\n", title, name)
	}

	return os.WriteFile(filepath.Join(dir, "README.md"), []byte(b.String()), 0o600)
}
