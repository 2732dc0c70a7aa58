package billing

import (
	"errors"

	"packing-app/models"
)

var (
	ErrLineOutOfRange     = errors.New("line index out of range")
	ErrBadAdjustmentType  = errors.New("adjustment type must be add or deduct")
	ErrAdjustmentNotFound = errors.New("adjustment not found")
)

// Line is one row of a billing session. ItemName is free text: rows typed
// against the item master carry its group/subgroup, unlisted items keep
// both empty.
type Line struct {
	Sr       int     `json:"sr"`
	ItemName string  `json:"itemName"`
	Qty      float64 `json:"qty"`
	UCap     float64 `json:"uCap"`
	LCap     float64 `json:"lCap"`
	Rate     float64 `json:"rate"`
	Amount   float64 `json:"amount"`
	Group    string  `json:"group"`
	SubGroup string  `json:"subGroup"`
}

type Adjustment struct {
	ID     int     `json:"id"`
	Type   string  `json:"type"`
	Desc   string  `json:"desc"`
	Amount float64 `json:"amount"`
}

// Session owns the mutable state of one bill-editing session: the ordered
// line items, the manually entered rates keyed by summary-row id, the
// adjustments and the optional grand-total override. The summary is never
// patched incrementally; Recompute derives it from scratch on every edit.
type Session struct {
	lines       []Line
	rates       map[string]float64
	adjustments []Adjustment
	manualTotal *float64
	nextAdjID   int
	alertActive bool
}

func NewSession() *Session {
	return &Session{
		rates:     map[string]float64{},
		nextAdjID: 1,
	}
}

func (s *Session) Lines() []Line {
	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

func (s *Session) AddLine(line Line) {
	line.Sr = len(s.lines) + 1
	s.lines = append(s.lines, line)
}

func (s *Session) UpdateLine(i int, line Line) error {
	if i < 0 || i >= len(s.lines) {
		return ErrLineOutOfRange
	}
	line.Sr = i + 1
	s.lines[i] = line
	return nil
}

func (s *Session) RemoveLine(i int) error {
	if i < 0 || i >= len(s.lines) {
		return ErrLineOutOfRange
	}
	s.lines = append(s.lines[:i], s.lines[i+1:]...)
	for j := range s.lines {
		s.lines[j].Sr = j + 1
	}
	return nil
}

// SetRate records a manually entered rate against a summary row's stable
// id ("GRP-<name>" or "SUB-<name>"). Unknown ids are kept; the row may
// reappear on a later recompute.
func (s *Session) SetRate(rowID string, rate float64) {
	s.rates[rowID] = rate
}

func (s *Session) AddAdjustment(adjType, desc string, amount float64) (Adjustment, error) {
	if adjType != models.AdjustmentAdd && adjType != models.AdjustmentDeduct {
		return Adjustment{}, ErrBadAdjustmentType
	}
	adj := Adjustment{ID: s.nextAdjID, Type: adjType, Desc: desc, Amount: amount}
	s.nextAdjID++
	s.adjustments = append(s.adjustments, adj)
	return adj, nil
}

func (s *Session) RemoveAdjustment(id int) error {
	for i, adj := range s.adjustments {
		if adj.ID == id {
			s.adjustments = append(s.adjustments[:i], s.adjustments[i+1:]...)
			return nil
		}
	}
	return ErrAdjustmentNotFound
}

func (s *Session) Adjustments() []Adjustment {
	out := make([]Adjustment, len(s.adjustments))
	copy(out, s.adjustments)
	return out
}

// SetManualTotal overrides the calculated grand total. Pass nil to clear
// the override.
func (s *Session) SetManualTotal(total *float64) {
	s.manualTotal = total
}

// AlertActive reports whether the mismatch alert is currently latched.
// It latches on the first mismatched Recompute and clears once both
// checks match again.
func (s *Session) AlertActive() bool {
	return s.alertActive
}
