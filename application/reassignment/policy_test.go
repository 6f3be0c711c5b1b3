package reassignment

import (
	"testing"

	"github.com/muhammadheryan/warehouse/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func occ(id uint64, capacity, occupants int, distance int64) model.RackOccupancy {
	return model.RackOccupancy{
		RackEntity: model.RackEntity{ID: id, Capacity: capacity, Distance: decimal.NewFromInt(distance)},
		Occupants:  occupants,
	}
}

func TestSelectTarget(t *testing.T) {
	tests := []struct {
		name       string
		current    model.RackOccupancy
		candidates []model.RackOccupancy
		want       Decision
		wantRack   uint64
	}{
		{
			name:       "equal ratio resolved by distance",
			current:    occ(1, 2, 2, 1),
			candidates: []model.RackOccupancy{occ(2, 4, 1, 10), occ(6, 4, 1, 5)},
			want:       Move,
			wantRack:   6,
		},
		{
			name:       "only candidate full",
			current:    occ(1, 2, 2, 1),
			candidates: []model.RackOccupancy{occ(2, 3, 3, 1)},
			want:       NoTarget,
		},
		{
			name:    "no other racks",
			current: occ(1, 2, 1, 1),
			want:    NoTarget,
		},
		{
			name:       "lowest ratio wins over distance",
			current:    occ(1, 2, 2, 1),
			candidates: []model.RackOccupancy{occ(3, 4, 2, 1), occ(4, 10, 1, 50)},
			want:       Move,
			wantRack:   4,
		},
		{
			name:       "equal ratio and distance resolved by id",
			current:    occ(1, 2, 2, 1),
			candidates: []model.RackOccupancy{occ(9, 5, 1, 3), occ(7, 5, 1, 3)},
			want:       Move,
			wantRack:   7,
		},
		{
			name:       "already on the cheapest rack",
			current:    occ(3, 4, 1, 3),
			candidates: []model.RackOccupancy{occ(5, 4, 0, 7)},
			want:       Stay,
		},
		{
			name:       "tie with candidate keeps current rack",
			current:    occ(3, 4, 1, 5),
			candidates: []model.RackOccupancy{occ(5, 4, 0, 5)},
			want:       Stay,
		},
		{
			name:       "full candidates skipped",
			current:    occ(1, 2, 2, 1),
			candidates: []model.RackOccupancy{occ(2, 1, 1, 0), occ(3, 4, 1, 9)},
			want:       Move,
			wantRack:   3,
		},
		{
			name:       "current rack listed among candidates is ignored",
			current:    occ(1, 4, 1, 1),
			candidates: []model.RackOccupancy{occ(1, 4, 1, 1), occ(2, 4, 3, 1)},
			want:       Stay,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got, target := SelectTarget(tt.current, tt.candidates)
			assert.Equal(t, tt.want, got)
			if tt.want == Move {
				require.NotNil(t, target)
				assert.Equal(t, tt.wantRack, target.ID)
			} else {
				assert.Nil(t, target)
			}
		})
	}
}

func TestSelectTarget_SecondCallIsNoop(t *testing.T) {
	racks := map[uint64]model.RackOccupancy{
		1: occ(1, 2, 2, 1),
		2: occ(2, 4, 1, 10),
		6: occ(6, 4, 1, 5),
	}
	others := func(except uint64) []model.RackOccupancy {
		var res []model.RackOccupancy
		for _, id := range []uint64{1, 2, 6} {
			if id != except {
				res = append(res, racks[id])
			}
		}
		return res
	}

	decision, target := SelectTarget(racks[1], others(1))
	require.Equal(t, Move, decision)
	require.Equal(t, uint64(6), target.ID)

	// apply the move
	r1, r6 := racks[1], racks[6]
	r1.Occupants--
	r6.Occupants++
	racks[1], racks[6] = r1, r6

	decision, target = SelectTarget(racks[6], others(6))
	assert.Equal(t, Stay, decision)
	assert.Nil(t, target)
}

func TestReplay(t *testing.T) {
	snapshot := []model.Placement{
		{ProductID: 1, RackID: 1},
		{ProductID: 4, RackID: 1},
		{ProductID: 5, RackID: 2},
	}
	records := []model.ReassignmentRecord{
		{ID: 3, ProductID: 4, OldRackID: 6, NewRackID: 2},
		{ID: 1, ProductID: 4, OldRackID: 1, NewRackID: 6},
		{ID: 2, ProductID: 5, OldRackID: 2, NewRackID: 3},
	}

	got, err := Replay(snapshot, records)
	require.NoError(t, err)
	assert.Equal(t, map[uint64]uint64{1: 1, 4: 2, 5: 3}, got)
	assert.Equal(t, uint64(6), records[0].OldRackID, "input slice must not be reordered")
}

func TestReplay_Inconsistent(t *testing.T) {
	snapshot := []model.Placement{{ProductID: 4, RackID: 1}}

	_, err := Replay(snapshot, []model.ReassignmentRecord{{ID: 1, ProductID: 4, OldRackID: 2, NewRackID: 6}})
	assert.Error(t, err)

	_, err = Replay(snapshot, []model.ReassignmentRecord{{ID: 1, ProductID: 9, OldRackID: 1, NewRackID: 6}})
	assert.Error(t, err)
}
