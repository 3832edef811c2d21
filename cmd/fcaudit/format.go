// SPDX-License-Identifier: MPL-2.0

package cmd

// outputFormat identifies a rendering strategy shared by all reports.
type outputFormat string

const (
	formatText     outputFormat = "text"
	formatByAlias  outputFormat = "by-alias"
	formatByFile   outputFormat = "by-file"
	formatByObject outputFormat = "by-object"
	formatJSON     outputFormat = "json"
	formatCSV      outputFormat = "csv"
)

// formatFlags carries the mutually exclusive selector flags of one report
// command. Cobra enforces exclusivity; resolve picks the winner.
type formatFlags struct {
	text     bool
	byAlias  bool
	byFile   bool
	byObject bool
	json     bool
	csv      bool
}

// resolve returns the selected format. When no selector flag is set, the
// config-supplied default format decides between the report's default text
// form, JSON, and CSV.
func (f *formatFlags) resolve(textDefault outputFormat) outputFormat {
	switch {
	case f.byAlias:
		return formatByAlias
	case f.byFile:
		return formatByFile
	case f.byObject:
		return formatByObject
	case f.json:
		return formatJSON
	case f.csv:
		return formatCSV
	case f.text:
		return textDefault
	}

	switch defaultFormat {
	case "json":
		return formatJSON
	case "csv":
		return formatCSV
	default:
		return textDefault
	}
}
