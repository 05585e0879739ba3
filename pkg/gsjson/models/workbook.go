package models

// Worksheet identifies a worksheet within a spreadsheet.
type Worksheet struct {
	// Index is the worksheet position in the workbook (0-based).
	Index int `json:"index"`
	// Title is the worksheet tab name.
	Title string `json:"title"`
}
