package billing

import (
	"math"

	"golang.org/x/exp/slices"

	"packing-app/models"
	"packing-app/services"
)

// Tolerance for the entry/summary consistency checks. The line items and
// the summary are two independently editable views of the same numbers;
// the checks guard against the views drifting apart.
const matchTolerance = 0.01

const (
	RowTypeGroup    = "Group"
	RowTypeSubgroup = "Subgroup"

	StatusOK     = "OK"
	StatusQtyErr = "QTY ERR"
	StatusCapErr = "CAP ERR"

	defaultGroup     = "General"
	subFlutedJointer = "fluted jointer"
	subJointer       = "jointer"
)

type SummaryRow struct {
	ID    string  `json:"id"`
	Type  string  `json:"type"`
	Name  string  `json:"name"`
	Qty   float64 `json:"qty"`
	Rate  float64 `json:"rate"`
	Total float64 `json:"total"`
}

type Result struct {
	Rows []SummaryRow `json:"rows"`

	TotalItemQty            float64 `json:"totalItemQty"`
	TotalGroupSummaryQty    float64 `json:"totalGroupSummaryQty"`
	TotalItemCaps           float64 `json:"totalItemCaps"`
	TotalSubGroupSummaryQty float64 `json:"totalSubGroupSummaryQty"`
	QtyMatch                bool    `json:"qtyMatch"`
	CapMatch                bool    `json:"capMatch"`
	Status                  string  `json:"status"`

	SumOfItems      float64 `json:"sumOfItems"`
	AdjustmentTotal float64 `json:"adjustmentTotal"`
	CalculatedTotal float64 `json:"calculatedTotal"`
	GrandTotal      float64 `json:"grandTotal"`
	ManualOverride  bool    `json:"manualOverride"`
	AlertActive     bool    `json:"alertActive"`
}

// buckets accumulates quantities by normalized name, preserving
// first-seen order and the first-seen display spelling.
type buckets struct {
	order []string
	qty   map[string]float64
	name  map[string]string
}

func newBuckets() *buckets {
	return &buckets{qty: map[string]float64{}, name: map[string]string{}}
}

func (b *buckets) add(name string, qty float64) {
	key := services.NormalizeName(name)
	if _, ok := b.qty[key]; !ok {
		b.order = append(b.order, key)
		b.name[key] = services.CleanName(name)
	}
	b.qty[key] += qty
}

// Recompute derives the combined summary, the mismatch signal and the
// totals from the session's current state. It is a pure function of the
// lines, rates, adjustments and override; only the alert latch on the
// session is updated.
func (s *Session) Recompute() Result {
	groups := newBuckets()
	subs := newBuckets()

	for _, line := range s.lines {
		if line.ItemName == "" {
			continue
		}
		group := line.Group
		if group == "" {
			group = defaultGroup
		}
		groups.add(group, line.Qty)
	}

	for _, line := range s.lines {
		if line.SubGroup == "" {
			continue
		}
		switch services.NormalizeName(line.SubGroup) {
		case subFlutedJointer:
			// Fluted Jointer physically yields two sub-products: the
			// upper caps stay on its own line, the lower caps are
			// inventoried under the plain Jointer line.
			subs.add(line.SubGroup, line.UCap)
			subs.add(s.canonicalJointerName(), line.LCap)
		default:
			subs.add(line.SubGroup, line.UCap+line.LCap)
		}
	}

	res := Result{}
	for _, key := range groups.order {
		name := groups.name[key]
		row := SummaryRow{
			ID:   "GRP-" + name,
			Type: RowTypeGroup,
			Name: name,
			Qty:  groups.qty[key],
		}
		row.Rate = s.rates[row.ID]
		row.Total = row.Qty * row.Rate
		res.Rows = append(res.Rows, row)
		res.TotalGroupSummaryQty += row.Qty
	}
	for _, key := range subs.order {
		name := subs.name[key]
		row := SummaryRow{
			ID:   "SUB-" + name,
			Type: RowTypeSubgroup,
			Name: name,
			Qty:  subs.qty[key],
		}
		row.Rate = s.rates[row.ID]
		row.Total = row.Qty * row.Rate
		res.Rows = append(res.Rows, row)
		res.TotalSubGroupSummaryQty += row.Qty
	}

	for _, line := range s.lines {
		res.TotalItemQty += line.Qty
		res.TotalItemCaps += line.UCap + line.LCap
	}

	res.QtyMatch = math.Abs(res.TotalItemQty-res.TotalGroupSummaryQty) <= matchTolerance
	res.CapMatch = math.Abs(res.TotalItemCaps-res.TotalSubGroupSummaryQty) <= matchTolerance
	switch {
	case !res.QtyMatch:
		res.Status = StatusQtyErr
	case !res.CapMatch:
		res.Status = StatusCapErr
	default:
		res.Status = StatusOK
	}
	s.alertActive = res.Status != StatusOK
	res.AlertActive = s.alertActive

	for _, row := range res.Rows {
		res.SumOfItems += row.Total
	}
	for _, adj := range s.adjustments {
		if adj.Type == models.AdjustmentDeduct {
			res.AdjustmentTotal -= adj.Amount
		} else {
			res.AdjustmentTotal += adj.Amount
		}
	}
	res.CalculatedTotal = res.SumOfItems + res.AdjustmentTotal
	res.GrandTotal = res.CalculatedTotal
	if s.manualTotal != nil {
		res.GrandTotal = *s.manualTotal
		res.ManualOverride = true
	}

	return res
}

// canonicalJointerName resolves the subgroup line that receives the lower
// caps of Fluted Jointer items: the first line whose subgroup is
// case-insensitively "jointer", else the literal "Jointer".
func (s *Session) canonicalJointerName() string {
	i := slices.IndexFunc(s.lines, func(line Line) bool {
		return services.NormalizeName(line.SubGroup) == subJointer
	})
	if i >= 0 {
		return s.lines[i].SubGroup
	}
	return "Jointer"
}
