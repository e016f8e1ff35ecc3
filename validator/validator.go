// Package validator models the weighted set of DKG participants and the
// partitioning of the evaluation domain across them.
//
// A Validator is stable-sorted by descending voting power, ties broken by
// ascending address, before any share-domain arithmetic touches it; this
// order is load-bearing for Partition (see partition.go) and MUST be
// preserved wherever a ValidatorSet is serialized or re-derived.
package validator

import (
	"sort"

	"github.com/drand/kyber"
)

// Validator is one participant in a DKG session.
type Validator struct {
	// Address is a stable identifier for this participant (e.g. a
	// validator's chain address). Used as the tie-break in sorting.
	Address string
	// VotingPower is this participant's stake weight.
	VotingPower uint64
	// EncryptionKey is this participant's public encryption key in G2.
	EncryptionKey kyber.Point
}

// ValidatorSet is an ordered list of Validators for one DKG session.
type ValidatorSet struct {
	Validators []Validator
}

// TotalVotingPower sums the voting power of every validator in the set.
func (vs ValidatorSet) TotalVotingPower() uint64 {
	var total uint64
	for _, v := range vs.Validators {
		total += v.VotingPower
	}
	return total
}

// Sorted returns a copy of vs stable-sorted by descending voting power, ties
// broken by ascending address. Partition requires this order; callers that
// construct a ValidatorSet from an unordered source (e.g. gossip) must call
// Sorted before partitioning.
func (vs ValidatorSet) Sorted() ValidatorSet {
	out := make([]Validator, len(vs.Validators))
	copy(out, vs.Validators)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].VotingPower != out[j].VotingPower {
			return out[i].VotingPower > out[j].VotingPower
		}
		return out[i].Address < out[j].Address
	})
	return ValidatorSet{Validators: out}
}

// PartitionedValidator is a Validator assigned a contiguous segment of the
// evaluation domain proportional to its voting power.
type PartitionedValidator struct {
	Validator
	// Weight is the number of domain indices assigned to this validator.
	Weight uint32
	// ShareStart is the first domain index (inclusive) in this validator's
	// segment.
	ShareStart uint64
	// ShareEnd is one past the last domain index (exclusive) in this
	// validator's segment. ShareEnd - ShareStart == Weight.
	ShareEnd uint64
}

// Segment returns the half-open index range [ShareStart, ShareEnd) assigned
// to this validator.
func (p PartitionedValidator) Segment() (start, end uint64) {
	return p.ShareStart, p.ShareEnd
}
