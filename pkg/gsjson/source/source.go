// Package source provides sheet sources: local xlsx workbooks read with
// excelize and remote Google spreadsheets read through the Sheets API.
package source

import (
	"strings"

	"github.com/ukaji3/gsjson-go/pkg/gsjson"
)

var (
	_ gsjson.SheetSource = (*XLSX)(nil)
	_ gsjson.SheetSource = (*GoogleSheets)(nil)
)

// IsWorkbookPath reports whether target names a local xlsx workbook rather
// than a spreadsheet id.
func IsWorkbookPath(target string) bool {
	lower := strings.ToLower(target)
	return strings.HasSuffix(lower, ".xlsx") || strings.HasSuffix(lower, ".xlsm")
}
