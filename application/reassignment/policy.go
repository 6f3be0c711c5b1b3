package reassignment

import (
	"fmt"
	"sort"

	"github.com/muhammadheryan/warehouse/model"
)

// Decision is the outcome of SelectTarget.
type Decision int

const (
	// Stay means the product already sits on the cheapest rack available to it.
	Stay Decision = iota
	Move
	// NoTarget means every other rack is full.
	NoTarget
)

// SelectTarget picks the rack a product on current should move to.
//
// Candidates are all racks other than current. Full racks are skipped; the rest are ranked by
// occupants/capacity ascending, then distance ascending, then id. The product stays when its
// current rack, counted without the product itself, is no worse than the best candidate.
func SelectTarget(current model.RackOccupancy, candidates []model.RackOccupancy) (Decision, *model.RackOccupancy) {
	var best *model.RackOccupancy
	for i := range candidates {
		c := &candidates[i]
		if c.ID == current.ID || c.Capacity <= 0 || c.Full() {
			continue
		}
		if best == nil || cheaper(*c, *best) {
			best = c
		}
	}
	if best == nil {
		return NoTarget, nil
	}

	without := current
	without.Occupants--
	switch cmpRatio(without, *best) {
	case -1:
		return Stay, nil
	case 0:
		if without.Distance.Cmp(best.Distance) <= 0 {
			return Stay, nil
		}
	}
	return Move, best
}

// cmpRatio compares occupants/capacity of a and b without floating point.
func cmpRatio(a, b model.RackOccupancy) int {
	l := int64(a.Occupants) * int64(b.Capacity)
	r := int64(b.Occupants) * int64(a.Capacity)
	switch {
	case l < r:
		return -1
	case l > r:
		return 1
	}
	return 0
}

func cheaper(a, b model.RackOccupancy) bool {
	if c := cmpRatio(a, b); c != 0 {
		return c < 0
	}
	if c := a.Distance.Cmp(b.Distance); c != 0 {
		return c < 0
	}
	return a.ID < b.ID
}

// Replay applies records in log order to a placement snapshot and returns product id -> rack id.
// A record whose old rack disagrees with the replayed state is reported as an error.
func Replay(snapshot []model.Placement, records []model.ReassignmentRecord) (map[uint64]uint64, error) {
	ledger := make(map[uint64]uint64, len(snapshot))
	for _, p := range snapshot {
		ledger[p.ProductID] = p.RackID
	}

	ordered := make([]model.ReassignmentRecord, len(records))
	copy(ordered, records)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].ID < ordered[j].ID })

	for _, rec := range ordered {
		at, ok := ledger[rec.ProductID]
		if !ok {
			return nil, fmt.Errorf("record %d: product %d has no placement", rec.ID, rec.ProductID)
		}
		if at != rec.OldRackID {
			return nil, fmt.Errorf("record %d: product %d is on rack %d, record says %d", rec.ID, rec.ProductID, at, rec.OldRackID)
		}
		ledger[rec.ProductID] = rec.NewRackID
	}
	return ledger, nil
}
