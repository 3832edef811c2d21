// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"fcaudit-cli/internal/pattern"
	"fcaudit-cli/internal/report"

	"github.com/spf13/cobra"
)

var (
	propertiesFilter  string
	propertiesFormats formatFlags

	propertiesCmd = &cobra.Command{
		Use:   "properties FILES...",
		Short: "Show document properties from FreeCAD documents",
		Long: `Show document properties from FreeCAD documents.

Lists the property names declared by the documents' objects, including
document-level properties declared outside any object.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runProperties,
	}
)

func init() {
	propertiesCmd.Flags().StringVar(&propertiesFilter, "filter", "",
		"filter properties by pattern (e.g. 'Shape*' or '*Label')")

	propertiesCmd.Flags().BoolVar(&propertiesFormats.text, "text", false, "output as simple list of properties (default)")
	propertiesCmd.Flags().BoolVar(&propertiesFormats.byFile, "by-file", false, "group properties by file")
	propertiesCmd.Flags().BoolVar(&propertiesFormats.byObject, "by-object", false, "group properties by file and object")
	propertiesCmd.Flags().BoolVar(&propertiesFormats.json, "json", false, "output in JSON format")
	propertiesCmd.Flags().BoolVar(&propertiesFormats.csv, "csv", false, "output as comma-separated values")
	propertiesCmd.MarkFlagsMutuallyExclusive("text", "by-file", "by-object", "json", "csv")
}

func runProperties(cmd *cobra.Command, args []string) error {
	docs, err := loadDocuments(args)
	if err != nil {
		return err
	}

	records := report.CollectProperties(docs)

	filter := pattern.New(propertiesFilter)
	if !filter.Empty() {
		records = report.FilterProperties(records, filter)
	}

	out := cmd.OutOrStdout()
	switch propertiesFormats.resolve(formatText) {
	case formatJSON:
		return report.WritePropertiesJSON(out, records)
	case formatCSV:
		return report.WritePropertiesCSV(out, records)
	case formatByFile:
		return report.WritePropertiesByFile(out, records)
	case formatByObject:
		return report.WritePropertiesByObject(out, records)
	case formatText:
		return report.WritePropertiesText(out, records)
	default:
		return fmt.Errorf("unsupported output format")
	}
}
