package herumi

import (
	"fmt"

	"github.com/castellanlabs/castellan/config/features"
	"github.com/castellanlabs/castellan/config/params"
	"github.com/castellanlabs/castellan/crypto/bls/common"
	"github.com/herumi/bls-eth-go-binary/bls"
	"github.com/pkg/errors"
)

// Signature used in the BLS signature scheme.
type Signature struct {
	s *bls.Sign
}

// SignatureFromBytes creates a BLS signature from a BigEndian byte slice.
func SignatureFromBytes(sig []byte) (common.Signature, error) {
	if features.Get().SkipBLSVerify {
		return &Signature{}, nil
	}
	if len(sig) != params.BeaconConfig().BLSSignatureLength {
		return nil, fmt.Errorf("signature must be %d bytes", params.BeaconConfig().BLSSignatureLength)
	}
	if common.SignatureIsInfinite(sig) {
		return nil, common.ErrInfiniteSignature
	}
	signature := &bls.Sign{}
	if err := signature.Deserialize(sig); err != nil {
		return nil, errors.Wrap(err, "could not unmarshal bytes into signature")
	}
	return &Signature{s: signature}, nil
}

// Verify a bls signature given a public key and a message.
//
// In IETF draft BLS specification:
// Verify(PK, message, signature) -> VALID or INVALID: a verification
//      algorithm that outputs VALID if signature is a valid signature of
//      message under public key PK, and INVALID otherwise.
//
// In ETH2.0 specification:
// def Verify(PK: BLSPubkey, message: Bytes, signature: BLSSignature) -> bool
func (s *Signature) Verify(pubKey common.PublicKey, msg []byte) bool {
	if features.Get().SkipBLSVerify {
		return true
	}
	return s.s.VerifyByte(pubKey.(*PublicKey).p, msg)
}

// Marshal a signature into a BigEndian byte slice.
func (s *Signature) Marshal() []byte {
	if features.Get().SkipBLSVerify {
		return make([]byte, params.BeaconConfig().BLSSignatureLength)
	}
	return s.s.Serialize()
}

// Copy the signature to a new pointer reference.
func (s *Signature) Copy() common.Signature {
	ns := *s.s
	return &Signature{s: &ns}
}
