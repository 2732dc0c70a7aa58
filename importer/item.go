package importer

type ItemRow struct {
	Index    int    `json:"index"`
	ItemName string `json:"itemName"`
	Group    string `json:"group"`
	SubGroup string `json:"subGroup"`
	Barcode  string `json:"barcode"`
	Unit     string `json:"unit"`
	Short    string `json:"short"`
}

type ItemResult struct {
	Rows    []ItemRow  `json:"rows"`
	Skipped []RowError `json:"skipped"`
}

// ParseItemCSV maps by header name when possible, else by the positional
// order name, group, subGroup, barcode, unit, short. The subgroup column
// is claimed before the group column so the "group" substring cannot
// steal it.
func ParseItemCSV(raw string) (*ItemResult, error) {
	lines := splitLines(raw)
	if len(lines) == 0 {
		return &ItemResult{}, nil
	}

	delim := sniffDelimiter(lines[0])
	header := splitFields(lines[0], delim)

	used := map[int]bool{}
	subGroupCol := findColumn(header, used, "subgroup", "sub group")
	nameCol := findColumn(header, used, "item name", "itemname", "name")
	groupCol := findColumn(header, used, "group")
	barcodeCol := findColumn(header, used, "barcode")
	unitCol := findColumn(header, used, "unit", "uom")
	shortCol := findColumn(header, used, "short")

	data := lines[1:]
	if nameCol < 0 {
		// Positional layout starts at column zero, so any line has a
		// name cell and the import never aborts on headers alone.
		nameCol, groupCol, subGroupCol = 0, 1, 2
		barcodeCol, unitCol, shortCol = 3, 4, 5
		data = lines
	}

	result := &ItemResult{}
	for i, line := range data {
		parts := splitFields(line, delim)
		row := ItemRow{
			Index:    i,
			ItemName: field(parts, nameCol),
			Group:    field(parts, groupCol),
			SubGroup: field(parts, subGroupCol),
			Barcode:  field(parts, barcodeCol),
			Unit:     field(parts, unitCol),
			Short:    field(parts, shortCol),
		}
		if row.ItemName == "" {
			result.Skipped = append(result.Skipped, RowError{Index: i, Reason: "empty item name"})
			continue
		}
		result.Rows = append(result.Rows, row)
	}
	return result, nil
}
