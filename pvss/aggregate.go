package pvss

import (
	"crypto/cipher"
	"fmt"
	"sort"

	"github.com/drand/kyber"
	"github.com/drand/kyber/pairing"

	"github.com/dedis-pvss/ferveo-go/poly"
	"github.com/dedis-pvss/ferveo-go/validator"
)

// Aggregate combines a set of dealer transcripts, indexed by dealer index
// (their position in the partitioned validator set), into one aggregate
// transcript (spec §4.4, C5). Each dealer's contribution is summed
// component-wise in the contributing dealers' ascending index order so that
// aggregation is deterministic regardless of arrival order (spec §5); group
// addition is commutative, so the summed result does not depend on this
// order, but the ordering still matters for the shape-consistency checks
// run against the first transcript encountered.
func Aggregate(suite pairing.Suite, domain *poly.Domain, dealerTranscripts map[uint32]*Transcript) (*Transcript, error) {
	if len(dealerTranscripts) == 0 {
		return nil, ErrEmptyDealerSet
	}

	indices := sortedDealerIndices(dealerTranscripts)
	first := dealerTranscripts[indices[0]]

	coeffsSum := clonePoints(first.Coeffs)
	sharesSum := make([][]kyber.Point, len(first.Shares))
	for i, s := range first.Shares {
		sharesSum[i] = clonePoints(s)
	}

	g1, g2 := suite.G1(), suite.G2()

	for _, idx := range indices[1:] {
		t := dealerTranscripts[idx]
		if len(t.Coeffs) != len(coeffsSum) {
			return nil, fmt.Errorf("%w: dealer %d has %d coefficients, want %d", ErrShareLengthMismatch, idx, len(t.Coeffs), len(coeffsSum))
		}
		if len(t.Shares) != len(sharesSum) {
			return nil, fmt.Errorf("%w: dealer %d has %d validators, want %d", ErrShareLengthMismatch, idx, len(t.Shares), len(sharesSum))
		}

		for k := range coeffsSum {
			coeffsSum[k] = g1.Point().Add(coeffsSum[k], t.Coeffs[k])
		}
		for i := range sharesSum {
			if len(t.Shares[i]) != len(sharesSum[i]) {
				return nil, fmt.Errorf("%w: dealer %d validator %d has %d shares, want %d", ErrShareLengthMismatch, idx, i, len(t.Shares[i]), len(sharesSum[i]))
			}
			for j := range sharesSum[i] {
				sharesSum[i][j] = g2.Point().Add(sharesSum[i][j], t.Shares[i][j])
			}
		}
	}

	sigma := g2.Point().Null()
	for _, idx := range indices {
		sigma = g2.Point().Add(sigma, dealerTranscripts[idx].Sigma)
	}

	commitment := commitmentFromCoeffs(g1, domain, coeffsSum)

	return &Transcript{
		Coeffs:     coeffsSum,
		Shares:     sharesSum,
		Sigma:      sigma,
		Commitment: commitment,
	}, nil
}

// VerifyAggregate re-derives the aggregate transcript's coeffs[0] from each
// contributing dealer's proof of knowledge and confirms it against the
// aggregate's own coeffs[0] (spec §4.4). It also re-runs Verify on the
// aggregate transcript itself, so that a forged aggregate cannot slip
// through even if every individual dealer's PoK is valid — the original
// reference implementation called the equivalent of Verify here but
// discarded its result, which this deliberately does not reproduce (see
// DESIGN.md). Returns the total weight contributed by the verified dealers.
func VerifyAggregate(suite pairing.Suite, pp PublicParams, agg *Transcript, dealerTranscripts map[uint32]*Transcript, partitioned []validator.PartitionedValidator, domain *poly.Domain, rand cipher.Stream) (uint32, error) {
	if len(dealerTranscripts) == 0 {
		return 0, ErrEmptyDealerSet
	}

	if err := Verify(suite, pp, agg, partitioned, domain, rand); err != nil {
		return 0, err
	}

	indices := sortedDealerIndices(dealerTranscripts)

	ySum := suite.G1().Point().Null()
	var weightSum uint32

	for _, idx := range indices {
		if int(idx) >= len(partitioned) {
			return 0, fmt.Errorf("%w: dealer index %d", ErrUnknownValidator, idx)
		}
		t := dealerTranscripts[idx]

		lhs := suite.Pair(t.Coeffs[0], pp.H)
		rhs := suite.Pair(pp.G, t.Sigma)
		if !lhs.Equal(rhs) {
			return 0, fmt.Errorf("%w: dealer %d", ErrInvalidSigma, idx)
		}

		ySum = suite.G1().Point().Add(ySum, t.Coeffs[0])
		weightSum += partitioned[idx].Weight
	}

	if !ySum.Equal(agg.Coeffs[0]) {
		return 0, ErrAggregateMismatch
	}

	return weightSum, nil
}

func sortedDealerIndices(m map[uint32]*Transcript) []uint32 {
	out := make([]uint32, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func clonePoints(points []kyber.Point) []kyber.Point {
	out := make([]kyber.Point, len(points))
	for i, p := range points {
		out[i] = p.Clone()
	}
	return out
}
