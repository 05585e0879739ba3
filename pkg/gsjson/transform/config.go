package transform

// Config is the resolved, immutable configuration of one transformation.
type Config struct {
	// Vertical swaps the roles of rows and columns.
	Vertical bool
	// ListOnly emits positional lists instead of named objects.
	ListOnly bool
	// IncludeHeader keeps the header block as data in list-only mode.
	IncludeHeader bool
	// Hash keys the result by this top-level property (ignored in list-only mode).
	Hash string
	// PropertyMode selects the naming of header text (camel when empty).
	PropertyMode PropertyMode
	// PropertyFunc overrides PropertyMode when set.
	PropertyFunc PropertyFunc
	// HeaderStart is the row number where the header starts; 0 picks the first non-empty row.
	HeaderStart int
	// HeaderSize is the number of header rows (1 when less than 1).
	HeaderSize int
	// IgnoreRows lists sheet row numbers to drop.
	IgnoreRows []int
	// IgnoreCols lists sheet column numbers to drop.
	IgnoreCols []int
}

func (c Config) headerSize() int {
	if c.HeaderSize < 1 {
		return 1
	}
	return c.HeaderSize
}

func (c Config) propertyFunc() PropertyFunc {
	if c.PropertyFunc != nil {
		return c.PropertyFunc
	}
	return Formatter(c.PropertyMode)
}

func (c Config) hashed() bool {
	return c.Hash != "" && !c.ListOnly
}

// ignoredSlots returns the sheet numbers whose list slots are removed from
// list-only records: rows under vertical orientation, columns otherwise.
func (c Config) ignoredSlots() []int {
	if c.Vertical {
		return c.IgnoreRows
	}
	return c.IgnoreCols
}
