// SPDX-License-Identifier: MPL-2.0

package report

import (
	"fmt"
	"io"
	"strings"
)

// writeCSVRow writes one CSV record with every field double-quoted, matching
// the quote-all discipline of the report formats. encoding/csv only quotes
// fields that need it, which would make output depend on field content.
func writeCSVRow(w io.Writer, fields ...string) error {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = `"` + strings.ReplaceAll(f, `"`, `""`) + `"`
	}
	_, err := fmt.Fprintln(w, strings.Join(quoted, ","))
	return err
}
