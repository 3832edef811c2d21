// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"fcaudit-cli/internal/pattern"
	"fcaudit-cli/internal/reference"
	"fcaudit-cli/internal/report"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	referencesFilter  string
	referencesFormats formatFlags

	referencesCmd = &cobra.Command{
		Use:   "references FILES...",
		Short: "Show cell references from FreeCAD documents",
		Long: `Show cell references from FreeCAD documents.

Every document's spreadsheet aliases are merged into one set; every
document's expressions are then scanned against that set, so a reference in
one file to an alias declared in another is resolved like a local one.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runReferences,
	}
)

func init() {
	referencesCmd.Flags().StringVar(&referencesFilter, "filter", "",
		"comma-separated list of alias patterns (e.g. 'Length*,*Width')")

	referencesCmd.Flags().BoolVar(&referencesFormats.byAlias, "by-alias", false, "group references by alias (default)")
	referencesCmd.Flags().BoolVar(&referencesFormats.byFile, "by-file", false, "group references by file")
	referencesCmd.Flags().BoolVar(&referencesFormats.byObject, "by-object", false, "group references by object")
	referencesCmd.Flags().BoolVar(&referencesFormats.json, "json", false, "output in JSON format")
	referencesCmd.Flags().BoolVar(&referencesFormats.csv, "csv", false, "output as comma-separated values")
	referencesCmd.MarkFlagsMutuallyExclusive("by-alias", "by-file", "by-object", "json", "csv")
}

func runReferences(cmd *cobra.Command, args []string) error {
	docs, err := loadDocuments(args)
	if err != nil {
		return err
	}

	_, known := reference.ExtractAliases(docs)
	refs := reference.Collect(docs, known)

	filter := pattern.New(referencesFilter)
	if !filter.Empty() {
		var kept []reference.Reference
		for _, ref := range refs {
			if filter.Match(ref.Alias) {
				kept = append(kept, ref)
			}
		}
		refs = kept
	}

	if verbose {
		processed := make([]string, 0, len(docs))
		for _, doc := range docs {
			processed = append(processed, doc.Filename)
		}
		for _, f := range report.UnreferencedFiles(processed, refs) {
			log.Debug("file contains no spreadsheet references", "file", f)
		}
	}

	out := cmd.OutOrStdout()
	switch referencesFormats.resolve(formatByAlias) {
	case formatJSON:
		return report.WriteReferencesJSON(out, refs)
	case formatCSV:
		return report.WriteReferencesCSV(out, refs)
	case formatByFile:
		return report.WriteReferencesByFile(out, refs)
	case formatByObject:
		return report.WriteReferencesByObject(out, refs)
	case formatByAlias:
		return report.WriteReferencesByAlias(out, refs)
	default:
		return fmt.Errorf("unsupported output format")
	}
}
