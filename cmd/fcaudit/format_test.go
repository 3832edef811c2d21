// SPDX-License-Identifier: MPL-2.0

package cmd

import "testing"

func TestFormatFlagsResolve(t *testing.T) {
	tests := []struct {
		name          string
		flags         formatFlags
		defaultFormat string
		textDefault   outputFormat
		want          outputFormat
	}{
		{name: "no flags, text config", flags: formatFlags{}, defaultFormat: "text", textDefault: formatText, want: formatText},
		{name: "no flags, references default", flags: formatFlags{}, defaultFormat: "text", textDefault: formatByAlias, want: formatByAlias},
		{name: "no flags, json config", flags: formatFlags{}, defaultFormat: "json", textDefault: formatText, want: formatJSON},
		{name: "no flags, csv config", flags: formatFlags{}, defaultFormat: "csv", textDefault: formatByAlias, want: formatCSV},
		{name: "explicit text beats config", flags: formatFlags{text: true}, defaultFormat: "json", textDefault: formatText, want: formatText},
		{name: "by-alias", flags: formatFlags{byAlias: true}, defaultFormat: "text", textDefault: formatByAlias, want: formatByAlias},
		{name: "by-file", flags: formatFlags{byFile: true}, defaultFormat: "text", textDefault: formatText, want: formatByFile},
		{name: "by-object", flags: formatFlags{byObject: true}, defaultFormat: "text", textDefault: formatText, want: formatByObject},
		{name: "json flag beats config", flags: formatFlags{json: true}, defaultFormat: "csv", textDefault: formatText, want: formatJSON},
		{name: "csv", flags: formatFlags{csv: true}, defaultFormat: "text", textDefault: formatText, want: formatCSV},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orig := defaultFormat
			defer func() { defaultFormat = orig }()
			defaultFormat = tt.defaultFormat

			if got := tt.flags.resolve(tt.textDefault); got != tt.want {
				t.Errorf("resolve(%s) = %s, want %s", tt.textDefault, got, tt.want)
			}
		})
	}
}
