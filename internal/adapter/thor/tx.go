package thor

import (
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"math/rand/v2"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/rlp"
	"golang.org/x/crypto/blake2b"
)

// Clause is a single action inside a VeChain transaction. A nil To
// deploys a contract; this client only ever calls existing ones.
type Clause struct {
	To    *common.Address `rlp:"nil"`
	Value *big.Int
	Data  []byte
}

// txBody is the unsigned VeChain transaction layout. The RLP field order
// is fixed by the protocol; the signing hash is the blake2b-256 of this
// exact encoding.
type txBody struct {
	ChainTag     byte
	BlockRef     uint64
	Expiration   uint32
	Clauses      []Clause
	GasPriceCoef byte
	Gas          uint64
	DependsOn    *common.Hash `rlp:"nil"`
	Nonce        uint64
	Reserved     []uint
}

// signedTx is txBody plus the 65-byte recoverable signature appended as
// the final RLP list element.
type signedTx struct {
	ChainTag     byte
	BlockRef     uint64
	Expiration   uint32
	Clauses      []Clause
	GasPriceCoef byte
	Gas          uint64
	DependsOn    *common.Hash `rlp:"nil"`
	Nonce        uint64
	Reserved     []uint
	Signature    []byte
}

func newTxBody(chainTag byte, blockRef uint64, expiration uint32, clauses []Clause, gasPriceCoef byte, gas uint64) txBody {
	return txBody{
		ChainTag:     chainTag,
		BlockRef:     blockRef,
		Expiration:   expiration,
		Clauses:      clauses,
		GasPriceCoef: gasPriceCoef,
		Gas:          gas,
		Nonce:        rand.Uint64(),
		Reserved:     []uint{},
	}
}

// signingHash is the blake2b-256 digest of the RLP-encoded unsigned body.
func signingHash(body txBody) ([32]byte, error) {
	encoded, err := rlp.EncodeToBytes(body)
	if err != nil {
		return [32]byte{}, fmt.Errorf("encode transaction: %w", err)
	}
	return blake2b.Sum256(encoded), nil
}

// signTx signs body with key and returns the raw wire encoding together
// with the transaction id the network will assign. The id is the
// blake2b-256 of the signing hash concatenated with the origin address.
func signTx(body txBody, key *ecdsa.PrivateKey) (raw []byte, id string, err error) {
	hash, err := signingHash(body)
	if err != nil {
		return nil, "", err
	}

	sig, err := crypto.Sign(hash[:], key)
	if err != nil {
		return nil, "", fmt.Errorf("sign transaction: %w", err)
	}

	raw, err = rlp.EncodeToBytes(signedTx{
		ChainTag:     body.ChainTag,
		BlockRef:     body.BlockRef,
		Expiration:   body.Expiration,
		Clauses:      body.Clauses,
		GasPriceCoef: body.GasPriceCoef,
		Gas:          body.Gas,
		DependsOn:    body.DependsOn,
		Nonce:        body.Nonce,
		Reserved:     body.Reserved,
		Signature:    sig,
	})
	if err != nil {
		return nil, "", fmt.Errorf("encode signed transaction: %w", err)
	}

	origin := crypto.PubkeyToAddress(key.PublicKey)
	idHash := blake2b.Sum256(append(hash[:], origin.Bytes()...))
	return raw, hexutil.Encode(idHash[:]), nil
}
