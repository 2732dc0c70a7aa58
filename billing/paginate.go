package billing

// RowsPerPage is fixed by the continuous-form slip stationery.
const RowsPerPage = 22

const (
	ModeBill = "bill"
	ModeSlip = "slip"

	HeaderFull        = "full"
	HeaderAbbreviated = "abbreviated"
)

type Page struct {
	Number      int          `json:"number"`
	Header      string       `json:"header"`
	Lines       []Line       `json:"lines"`
	SummaryOnly bool         `json:"summaryOnly"`
	Summary     []SummaryRow `json:"summary,omitempty"`
}

type Document struct {
	Mode  string `json:"mode"`
	Pages []Page `json:"pages"`
}

// Paginate pages the line items into fixed-size pages for printing. The
// first page carries the full header block, later pages repeat an
// abbreviated one. Bill mode appends a trailing summary-only page; slip
// mode does not.
func Paginate(lines []Line, result Result, mode string) Document {
	doc := Document{Mode: mode}

	header := HeaderFull
	for start := 0; start == 0 || start < len(lines); start += RowsPerPage {
		end := start + RowsPerPage
		if end > len(lines) {
			end = len(lines)
		}
		page := Page{
			Number: len(doc.Pages) + 1,
			Header: header,
			Lines:  lines[start:end],
		}
		doc.Pages = append(doc.Pages, page)
		header = HeaderAbbreviated
	}

	if mode == ModeBill {
		doc.Pages = append(doc.Pages, Page{
			Number:      len(doc.Pages) + 1,
			Header:      HeaderAbbreviated,
			SummaryOnly: true,
			Summary:     result.Rows,
		})
	}

	return doc
}
