package validator

import (
	"errors"
	"fmt"
)

// Sentinel error kinds, per spec §7's error table for the partitioner.
var (
	// ErrNegativeAdjustment is returned when total_weight is smaller than
	// the sum of the floored per-validator weights, so the largest-
	// remainder top-up would have to subtract a negative count.
	ErrNegativeAdjustment = errors.New("partition: negative weight adjustment")
	// ErrOverflow is returned when accumulating share segments would
	// overflow the addressable domain size.
	ErrOverflow = errors.New("partition: share segment overflow")
	// ErrEmptyValidatorSet is returned when there is no voting power to
	// distribute the domain across.
	ErrEmptyValidatorSet = errors.New("partition: empty or zero-power validator set")
	// ErrNotSorted is returned when the input set is not stable-sorted by
	// descending voting power, ascending address.
	ErrNotSorted = errors.New("partition: validator set is not sorted")
)

// Partition maps a validator set's voting power onto disjoint, contiguous
// segments of a totalWeight-sized evaluation domain.
//
// totalWeight MUST be positive. vs MUST already be Sorted() (descending
// voting power, ascending address) — Partition does not sort it for you, so
// that callers can detect an already-partitioned, re-validated set without a
// silent re-ordering changing share assignments out from under them.
//
// The algorithm is the unique largest-remainder allocation: each
// validator's weight is floor(voting_power * total_weight / total_voting_power),
// and the total_weight - sum(floors) validators left over by rounding each
// receive one extra unit of weight, in sorted order. This conserves
// total_weight exactly and is deterministic given float64 arithmetic over
// bounded integer inputs (spec §4.1); it does not claim bit-exact
// reproducibility for voting powers or total weights so large that the
// floating-point product loses precision.
func Partition(totalWeight uint32, vs ValidatorSet) ([]PartitionedValidator, error) {
	if !isSorted(vs.Validators) {
		return nil, ErrNotSorted
	}
	totalVotingPower := vs.TotalVotingPower()
	if totalVotingPower == 0 || len(vs.Validators) == 0 {
		return nil, ErrEmptyValidatorSet
	}

	q := float64(totalWeight) / float64(totalVotingPower)

	weights := make([]uint32, len(vs.Validators))
	var flooredSum uint64
	for i, v := range vs.Validators {
		w := uint32(float64(v.VotingPower) * q)
		weights[i] = w
		flooredSum += uint64(w)
	}

	if uint64(totalWeight) < flooredSum {
		return nil, ErrNegativeAdjustment
	}
	remainder := uint64(totalWeight) - flooredSum
	for i := uint64(0); i < remainder && i < uint64(len(weights)); i++ {
		weights[i]++
	}

	out := make([]PartitionedValidator, len(vs.Validators))
	var allocated uint64
	for i, v := range vs.Validators {
		start := allocated
		end := start + uint64(weights[i])
		if end < start {
			return nil, ErrOverflow
		}
		out[i] = PartitionedValidator{
			Validator:  v,
			Weight:     weights[i],
			ShareStart: start,
			ShareEnd:   end,
		}
		allocated = end
	}
	if allocated != uint64(totalWeight) {
		return nil, fmt.Errorf("%w: allocated %d, want %d", ErrOverflow, allocated, totalWeight)
	}
	return out, nil
}

func isSorted(vs []Validator) bool {
	for i := 1; i < len(vs); i++ {
		prev, cur := vs[i-1], vs[i]
		if prev.VotingPower < cur.VotingPower {
			return false
		}
		if prev.VotingPower == cur.VotingPower && prev.Address > cur.Address {
			return false
		}
	}
	return true
}
