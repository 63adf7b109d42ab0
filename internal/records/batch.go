package records

import (
	"fmt"
	"strings"

	"github.com/cleared-dev/tally/internal/calendar"
	"github.com/cleared-dev/tally/internal/id"
	"github.com/cleared-dev/tally/internal/model"
)

// monthBatch is the slice of an insert batch that lands in one month.
type monthBatch struct {
	year, month int
	idxs        []int // positions in params
}

// planBatch splits params by month, in order of first appearance.
func planBatch(params []AddParams) ([]*monthBatch, error) {
	var groups []*monthBatch
	byMonth := make(map[[2]int]*monthBatch)
	for i, p := range params {
		if !p.Kind.Valid() {
			return nil, fmt.Errorf("%w: %q", ErrUnknownKind, p.Kind)
		}
		d, ok := calendar.ParseDate(p.DateString)
		if !ok || d.Month < 1 || d.Month > 12 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidDate, p.DateString)
		}
		// Stores look months up by the "YYYY-MM-" prefix.
		if calendar.Format(d.Year, d.Month, d.Day) != p.DateString {
			return nil, fmt.Errorf("%w: %q is not zero-padded YYYY-MM-DD", ErrInvalidDate, p.DateString)
		}
		key := [2]int{d.Year, d.Month}
		g, ok := byMonth[key]
		if !ok {
			g = &monthBatch{year: d.Year, month: d.Month}
			byMonth[key] = g
			groups = append(groups, g)
		}
		g.idxs = append(g.idxs, i)
	}
	return groups, nil
}

// assign numbers the batch's records after the month's existing ones,
// writes the IDs into ids and validates the month as a whole.
func (g *monthBatch) assign(existing []model.Record, params []AddParams, ids []string, categories CategoryChecker) ([]model.Record, error) {
	seq := id.MaxSeq(recordIDs(existing), g.year, g.month)

	fresh := make([]model.Record, 0, len(g.idxs))
	for _, i := range g.idxs {
		seq++
		ids[i] = id.Format(g.year, g.month, seq)
		fresh = append(fresh, params[i].record(ids[i]))
	}

	all := make([]model.Record, 0, len(existing)+len(fresh))
	all = append(all, existing...)
	all = append(all, fresh...)
	if verrs := ValidateRecords(all, categories, g.year, g.month); len(verrs) > 0 {
		msgs := make([]string, len(verrs))
		for i, ve := range verrs {
			msgs[i] = ve.Error()
		}
		return nil, fmt.Errorf("validation failed: %s", strings.Join(msgs, "; "))
	}
	return fresh, nil
}

func recordIDs(recs []model.Record) []string {
	ids := make([]string, len(recs))
	for i, r := range recs {
		ids[i] = r.ID
	}
	return ids
}
