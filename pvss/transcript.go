package pvss

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/drand/kyber"
)

// Transcript is a single dealer's (or the aggregate's) PVSS output (spec §3).
//
// Coeffs are the Feldman commitments F_k = g^{phi_k} to the dealt
// polynomial's coefficients, one per coefficient (degree+1 entries), in G1.
//
// Shares holds, per validator (indexed the same way as the partitioned
// validator set), that validator's encrypted share evaluations in G2: one
// ciphertext per share index in [ShareStart, ShareEnd).
//
// Sigma is the dealer's proof of knowledge of the secret, h^s, in G2.
//
// Commitment is the polynomial's evaluation over the full share domain,
// g^{phi(omega^j)} for every j, in G1. It is left empty by Deal (spec §4.2
// step 6) and is populated by Aggregate, since only the aggregate transcript
// needs it in the common case; Verify computes it on the fly when checking a
// transcript whose Commitment field is still empty.
type Transcript struct {
	Coeffs     []kyber.Point
	Shares     [][]kyber.Point
	Sigma      kyber.Point
	Commitment []kyber.Point
}

// TranscriptConstantTerm returns coeffs[0] = g^{phi(0)}, the commitment to
// the dealt (or aggregated) secret. Downstream collaborators that build
// ciphertexts from the DKG's public key read this value; this module does
// not construct ciphertexts itself (spec §4 Non-goals).
func TranscriptConstantTerm(t *Transcript) kyber.Point {
	return t.Coeffs[0]
}

// MarshalBinary encodes the transcript as a sequence of uint32
// big-endian length prefixes followed by each point's canonical
// fixed-width compressed encoding (spec §6: deterministic, no padding,
// a given transcript always serializes to the same bytes).
func (t *Transcript) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer

	if err := writePoints(&buf, t.Coeffs); err != nil {
		return nil, fmt.Errorf("pvss: marshal coeffs: %w", err)
	}

	if err := binary.Write(&buf, binary.BigEndian, uint32(len(t.Shares))); err != nil {
		return nil, err
	}
	for i, s := range t.Shares {
		if err := writePoints(&buf, s); err != nil {
			return nil, fmt.Errorf("pvss: marshal shares[%d]: %w", i, err)
		}
	}

	sigma, err := t.Sigma.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("pvss: marshal sigma: %w", err)
	}
	buf.Write(sigma)

	if err := writePoints(&buf, t.Commitment); err != nil {
		return nil, fmt.Errorf("pvss: marshal commitment: %w", err)
	}

	return buf.Bytes(), nil
}

// UnmarshalTranscript decodes a Transcript produced by MarshalBinary,
// constructing points in the given groups (g1 for Coeffs/Commitment, g2 for
// Shares/Sigma). Non-canonical point encodings are rejected by the
// underlying group's UnmarshalBinary (spec §6).
func UnmarshalTranscript(g1, g2 kyber.Group, data []byte) (*Transcript, error) {
	r := bytes.NewReader(data)

	coeffs, err := readPoints(r, g1)
	if err != nil {
		return nil, fmt.Errorf("pvss: unmarshal coeffs: %w", err)
	}

	var nShares uint32
	if err := binary.Read(r, binary.BigEndian, &nShares); err != nil {
		return nil, fmt.Errorf("pvss: unmarshal share count: %w", err)
	}
	shares := make([][]kyber.Point, nShares)
	for i := range shares {
		s, err := readPoints(r, g2)
		if err != nil {
			return nil, fmt.Errorf("pvss: unmarshal shares[%d]: %w", i, err)
		}
		shares[i] = s
	}

	sigma := g2.Point()
	sigmaBytes := make([]byte, sigma.MarshalSize())
	if _, err := io.ReadFull(r, sigmaBytes); err != nil {
		return nil, fmt.Errorf("pvss: unmarshal sigma: %w", err)
	}
	if err := sigma.UnmarshalBinary(sigmaBytes); err != nil {
		return nil, fmt.Errorf("pvss: unmarshal sigma: %w", err)
	}

	commitment, err := readPoints(r, g1)
	if err != nil {
		return nil, fmt.Errorf("pvss: unmarshal commitment: %w", err)
	}

	return &Transcript{Coeffs: coeffs, Shares: shares, Sigma: sigma, Commitment: commitment}, nil
}

func writePoints(buf *bytes.Buffer, points []kyber.Point) error {
	if err := binary.Write(buf, binary.BigEndian, uint32(len(points))); err != nil {
		return err
	}
	for _, p := range points {
		b, err := p.MarshalBinary()
		if err != nil {
			return err
		}
		buf.Write(b)
	}
	return nil
}

func readPoints(r *bytes.Reader, g kyber.Group) ([]kyber.Point, error) {
	var n uint32
	if err := binary.Read(r, binary.BigEndian, &n); err != nil {
		return nil, err
	}
	out := make([]kyber.Point, n)
	for i := range out {
		p := g.Point()
		b := make([]byte, p.MarshalSize())
		if _, err := io.ReadFull(r, b); err != nil {
			return nil, err
		}
		if err := p.UnmarshalBinary(b); err != nil {
			return nil, err
		}
		out[i] = p
	}
	return out, nil
}
