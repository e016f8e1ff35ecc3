// Package pvss implements the dealing (C3), verification (C4), and
// aggregation (C5) of Publicly Verifiable Secret Sharing transcripts over a
// bilinear pairing group, per spec §4.2-§4.4.
package pvss

import "github.com/drand/kyber"

// Params are the immutable, per-session DKG parameters (spec §3).
// RetryAfter is owned by the gossip/networking collaborator and is out of
// scope here (spec §1).
type Params struct {
	// Tau is this DKG session's identifier.
	Tau uint64
	// TotalWeight is the total size of the share domain (W in spec §3).
	TotalWeight uint32
	// SecurityThreshold is t in spec §3: the dealt polynomial has degree
	// SecurityThreshold, so recovering the shared secret takes a
	// contributing weight of at least SecurityThreshold+1.
	SecurityThreshold uint32
}

// PublicParams are the group generators every dealing and verification is
// computed against: g in G1, h in G2 (spec §3, §4.2's PubliclyVerifiableParams).
type PublicParams struct {
	G kyber.Point
	H kyber.Point
}

// NewPublicParams returns the PublicParams built from a pairing suite's
// standard base points: g is G1's base point, h is G2's base point.
func NewPublicParams(g1 kyber.Group, g2 kyber.Group) PublicParams {
	return PublicParams{
		G: g1.Point().Base(),
		H: g2.Point().Base(),
	}
}
