package importer

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"packing-app/models"
	"packing-app/services"
)

// PackingRow is one normalized candidate packing entry. Date is an ISO
// calendar date or empty. Index is the row's position in the input so
// downstream failures report the same numbering as Skipped.
type PackingRow struct {
	Index          int     `json:"index"`
	ItemName       string  `json:"itemName"`
	Qty            float64 `json:"qty"`
	Date           string  `json:"date"`
	SubmittedBy    string  `json:"submittedBy"`
	Status         string  `json:"status"`
	PackingType    string  `json:"packingType"`
	ApprovedQty    float64 `json:"approvedQty"`
	NotApprovedQty float64 `json:"notApprovedQty"`
}

type PackingResult struct {
	Rows    []PackingRow `json:"rows"`
	Skipped []RowError   `json:"skipped"`
}

// Column layout of the one known external export format, used when the
// header row gives us nothing: id, date, itemName, qty, submittedBy, _,
// status, _, _, packingType.
const (
	packingPosDate        = 1
	packingPosItemName    = 2
	packingPosQty         = 3
	packingPosSubmittedBy = 4
	packingPosStatus      = 6
	packingPosType        = 9
)

var dmyDate = regexp.MustCompile(`^(\d{1,2})[/-](\d{1,2})[/-](\d{4})$`)

// ParsePackingCSV normalizes raw CSV text into candidate packing
// entries. Rows with an empty item name or an unparseable quantity are
// skipped, not fatal; only an unlocatable mandatory column aborts the
// whole import.
func ParsePackingCSV(raw string) (*PackingResult, error) {
	lines := splitLines(raw)
	if len(lines) == 0 {
		return &PackingResult{}, nil
	}

	delim := sniffDelimiter(lines[0])
	header := splitFields(lines[0], delim)

	used := map[int]bool{}
	nameCol := findColumn(header, used, "item name", "itemname")
	qtyCol := findColumn(header, used, "qty", "quantity")
	dateCol := findColumn(header, used, "date", "createdat")
	subCol := findColumn(header, used, "submitted", "packer")
	statusCol := findColumn(header, used, "status")
	typeCol := findColumn(header, used, "packing", "type")

	data := lines[1:]
	if nameCol < 0 || qtyCol < 0 {
		// Header told us nothing; assume the known positional export
		// layout and treat every line as data.
		if len(header) <= packingPosQty {
			return nil, &HeaderError{Headers: header}
		}
		nameCol, qtyCol = packingPosItemName, packingPosQty
		dateCol, subCol = packingPosDate, packingPosSubmittedBy
		statusCol, typeCol = packingPosStatus, packingPosType
		data = lines
	}

	result := &PackingResult{}
	for i, line := range data {
		parts := splitFields(line, delim)

		row := PackingRow{
			Index:       i,
			ItemName:    field(parts, nameCol),
			SubmittedBy: field(parts, subCol),
			Date:        normalizeDate(field(parts, dateCol)),
			Status:      normalizeStatus(field(parts, statusCol)),
			PackingType: normalizePackingType(field(parts, typeCol)),
		}
		if row.ItemName == "" {
			result.Skipped = append(result.Skipped, RowError{Index: i, Reason: "empty item name"})
			continue
		}
		qty, err := strconv.ParseFloat(field(parts, qtyCol), 64)
		if err != nil {
			result.Skipped = append(result.Skipped, RowError{
				Index:  i,
				Reason: fmt.Sprintf("invalid qty %q", field(parts, qtyCol)),
			})
			continue
		}
		row.Qty = qty

		// Imported terminal statuses carry their quantities with them.
		switch row.Status {
		case models.StatusApproved:
			row.ApprovedQty = qty
		case models.StatusRejected:
			row.NotApprovedQty = qty
		}

		result.Rows = append(result.Rows, row)
	}
	return result, nil
}

// normalizeDate turns D[/-]M[/-]YYYY into an ISO calendar date; anything
// else is passed through untouched.
func normalizeDate(s string) string {
	m := dmyDate.FindStringSubmatch(s)
	if m == nil {
		return s
	}
	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	return fmt.Sprintf("%s-%02d-%02d", m[3], month, day)
}

func normalizeStatus(s string) string {
	switch services.NormalizeName(s) {
	case "approved":
		return models.StatusApproved
	case "rejected":
		return models.StatusRejected
	case "partially approved":
		return models.StatusPartiallyApproved
	default:
		return models.StatusPending
	}
}

func normalizePackingType(s string) string {
	if strings.EqualFold(strings.TrimSpace(s), models.PackingTypeGatta) {
		return models.PackingTypeGatta
	}
	return models.PackingTypeBox
}
