package dao

// columns translates projectable field names to database columns using the
// entity's column map. Unknown fields are dropped rather than interpolated
// into SQL.
func columns(fields []string, colMap map[string]string) []string {
	cols := make([]string, 0, len(fields))
	for _, f := range fields {
		if col, ok := colMap[f]; ok {
			cols = append(cols, col)
		}
	}
	return cols
}
