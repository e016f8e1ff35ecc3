package dkg

import (
	"crypto/cipher"
	"fmt"

	"github.com/drand/kyber"
	"github.com/drand/kyber/pairing"

	"github.com/dedis-pvss/ferveo-go/poly"
	"github.com/dedis-pvss/ferveo-go/pvss"
	"github.com/dedis-pvss/ferveo-go/validator"
)

// Session holds everything one DKG run needs once its validator set has
// been partitioned: the pairing suite, the immutable session params, the
// partitioned validator layout, the shared evaluation domain, and the
// dealer-indexed transcript set submitted so far.
//
// Params, Validators, and Domain never change after NewSession returns
// (spec §5's "shared state: none ... mutated after construction"); the only
// mutable state is the Transcripts map, which callers grow one Submit call
// at a time as dealer transcripts arrive over the network. Session itself
// applies no locking around that map — like the teacher library, this
// module is a purely synchronous, single-threaded core; serializing
// concurrent submissions is the surrounding networking collaborator's job
// (spec §5's scheduling model).
type Session struct {
	Suite      pairing.Suite
	Params     pvss.Params
	PP         pvss.PublicParams
	Validators []validator.PartitionedValidator
	Domain     *poly.Domain

	Transcripts map[uint32]*pvss.Transcript
}

// NewSession partitions vs across Params.TotalWeight and builds the shared
// evaluation domain, returning a ready-to-use Session.
func NewSession(suite pairing.Suite, params pvss.Params, vs validator.ValidatorSet) (*Session, error) {
	sorted := vs.Sorted()
	partitioned, err := validator.Partition(params.TotalWeight, sorted)
	if err != nil {
		return nil, fmt.Errorf("dkg: partition validator set: %w", err)
	}

	domainSize := poly.NextPowerOfTwo(int(params.TotalWeight))
	domain, err := poly.NewBLS12381Domain(suite.G1(), domainSize)
	if err != nil {
		return nil, fmt.Errorf("dkg: build evaluation domain: %w", err)
	}

	return &Session{
		Suite:       suite,
		Params:      params,
		PP:          pvss.NewPublicParams(suite.G1(), suite.G2()),
		Validators:  partitioned,
		Domain:      domain,
		Transcripts: make(map[uint32]*pvss.Transcript),
	}, nil
}

// Deal produces a new transcript dealing secret for this session's
// validator set and evaluation domain; it does not submit it — call Submit
// with the result once the dealer is ready to publish it.
func (s *Session) Deal(secret kyber.Scalar, rand cipher.Stream) (*pvss.Transcript, error) {
	return pvss.Deal(s.Suite, s.PP, int(s.Params.SecurityThreshold), secret, s.Validators, s.Domain, rand)
}

// Verify checks a dealer transcript against this session's validator set,
// without submitting it.
func (s *Session) Verify(t *pvss.Transcript, rand cipher.Stream) error {
	if err := pvss.Verify(s.Suite, s.PP, t, s.Validators, s.Domain, rand); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDealing, err)
	}
	return nil
}

// Submit verifies a dealer transcript and, if valid, records it under
// dealerIndex. An invalid transcript is discarded and not recorded (spec
// §7's InvalidDealing response: "discard that dealer's transcript,
// continue with others").
func (s *Session) Submit(dealerIndex uint32, t *pvss.Transcript, rand cipher.Stream) error {
	if int(dealerIndex) >= len(s.Validators) {
		return fmt.Errorf("%w: %d", ErrUnknownDealer, dealerIndex)
	}
	if err := s.Verify(t, rand); err != nil {
		return err
	}
	s.Transcripts[dealerIndex] = t
	return nil
}

// Aggregate combines every transcript submitted so far into one aggregate
// transcript.
func (s *Session) Aggregate() (*pvss.Transcript, error) {
	if len(s.Transcripts) == 0 {
		return nil, ErrNoAggregate
	}
	agg, err := pvss.Aggregate(s.Suite, s.Domain, s.Transcripts)
	if err != nil {
		return nil, err
	}
	return agg, nil
}

// VerifyAggregate re-derives agg's coeffs[0] from this session's submitted
// dealer transcripts and returns the total contributing weight, failing if
// that weight is not above the security threshold (a degree-t sharing needs
// weight t+1).
func (s *Session) VerifyAggregate(agg *pvss.Transcript, rand cipher.Stream) (uint32, error) {
	if len(s.Transcripts) == 0 {
		return 0, ErrNoAggregate
	}

	weight, err := pvss.VerifyAggregate(s.Suite, s.PP, agg, s.Transcripts, s.Validators, s.Domain, rand)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrAggregateMismatch, err)
	}

	if weight < s.Params.SecurityThreshold+1 {
		return weight, fmt.Errorf("%w: have %d, need %d", ErrInsufficientWeight, weight, s.Params.SecurityThreshold+1)
	}

	return weight, nil
}
