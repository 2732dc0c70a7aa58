package importer

type PartyRow struct {
	Index   int    `json:"index"`
	Name    string `json:"name"`
	Station string `json:"station"`
	Mobile  string `json:"mobile"`
}

type PartyResult struct {
	Rows    []PartyRow `json:"rows"`
	Skipped []RowError `json:"skipped"`
}

// ParsePartyCSV maps by header name when a name column exists, else by
// the positional order name, station, mobile.
func ParsePartyCSV(raw string) (*PartyResult, error) {
	lines := splitLines(raw)
	if len(lines) == 0 {
		return &PartyResult{}, nil
	}

	delim := sniffDelimiter(lines[0])
	header := splitFields(lines[0], delim)

	used := map[int]bool{}
	nameCol := findColumn(header, used, "name")
	stationCol := findColumn(header, used, "station")
	mobileCol := findColumn(header, used, "mobile", "phone")

	data := lines[1:]
	if nameCol < 0 {
		// Positional layout starts at column zero, so any line has a
		// name cell and the import never aborts on headers alone.
		nameCol, stationCol, mobileCol = 0, 1, 2
		data = lines
	}

	result := &PartyResult{}
	for i, line := range data {
		parts := splitFields(line, delim)
		row := PartyRow{
			Index:   i,
			Name:    field(parts, nameCol),
			Station: field(parts, stationCol),
			Mobile:  field(parts, mobileCol),
		}
		if row.Name == "" {
			result.Skipped = append(result.Skipped, RowError{Index: i, Reason: "empty name"})
			continue
		}
		result.Rows = append(result.Rows, row)
	}
	return result, nil
}
