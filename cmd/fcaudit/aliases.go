// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"fcaudit-cli/internal/pattern"
	"fcaudit-cli/internal/reference"
	"fcaudit-cli/internal/report"

	"github.com/spf13/cobra"
)

var (
	aliasesFilter  string
	aliasesFormats formatFlags

	aliasesCmd = &cobra.Command{
		Use:   "aliases FILES...",
		Short: "Show cell aliases from FreeCAD documents",
		Long: `Show cell aliases from FreeCAD documents.

Aliases are the names bound to spreadsheet cells; expressions reference them
instead of raw cell coordinates. The report lists the union of aliases
declared across all input documents.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runAliases,
	}
)

func init() {
	aliasesCmd.Flags().StringVar(&aliasesFilter, "filter", "",
		"comma-separated list of patterns to filter by (default: show all)")

	aliasesCmd.Flags().BoolVar(&aliasesFormats.text, "text", false, "output in text format (default)")
	aliasesCmd.Flags().BoolVar(&aliasesFormats.byFile, "by-file", false, "group aliases by file")
	aliasesCmd.Flags().BoolVar(&aliasesFormats.byObject, "by-object", false, "group aliases by spreadsheet object")
	aliasesCmd.Flags().BoolVar(&aliasesFormats.json, "json", false, "output in JSON format")
	aliasesCmd.Flags().BoolVar(&aliasesFormats.csv, "csv", false, "output as comma-separated values")
	aliasesCmd.MarkFlagsMutuallyExclusive("text", "by-file", "by-object", "json", "csv")
}

func runAliases(cmd *cobra.Command, args []string) error {
	docs, err := loadDocuments(args)
	if err != nil {
		return err
	}

	decls, _ := reference.ExtractAliases(docs)

	filter := pattern.New(aliasesFilter)
	if !filter.Empty() {
		var kept []reference.AliasDecl
		for _, d := range decls {
			if filter.Match(d.Name) {
				kept = append(kept, d)
			}
		}
		decls = kept
	}

	out := cmd.OutOrStdout()
	switch aliasesFormats.resolve(formatText) {
	case formatJSON:
		return report.WriteAliasesJSON(out, decls)
	case formatCSV:
		return report.WriteAliasesCSV(out, decls)
	case formatByFile:
		return report.WriteAliasesByFile(out, decls)
	case formatByObject:
		return report.WriteAliasesByObject(out, decls)
	case formatText:
		return report.WriteAliasesText(out, decls)
	default:
		return fmt.Errorf("unsupported output format")
	}
}
