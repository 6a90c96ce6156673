// Copyright (c) 2026, The qday Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package hashsig implements a toy Winternitz one-time signature over
// SHA3-256 hash chains, the building block of hash-based schemes like
// SPHINCS+. Security rests on nothing but the hash function, which is why
// hash-based signatures are the conservative post-quantum choice.
//
// This is the chain construction only: no checksum chains and no Merkle
// tree above the one-time keys, so a private key must sign exactly one
// message and the scheme is a teaching aid, not a signature library.
package hashsig

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"golang.org/x/crypto/sha3"
)

const (
	// DigestLen is the byte length of hashes and chain nodes.
	DigestLen = 32
	// ChainLen is the Winternitz parameter w: each chain has ChainLen
	// positions and signs one 4-bit chunk of the message digest.
	ChainLen = 16
	// NumChains is the number of chains, one per digest nibble.
	NumChains = 2 * DigestLen
	// SignatureLen is the byte length of a signature.
	SignatureLen = NumChains * DigestLen
)

// Common errors.
var (
	ErrInvalidSeed      = errors.New("hashsig: seed must be at least 16 bytes")
	ErrInvalidSignature = errors.New("hashsig: signature does not verify")
)

// PrivateKey holds the chain start values. It must sign one message only.
type PrivateKey struct {
	chains [NumChains][DigestLen]byte
}

// PublicKey is the hash of all chain end values.
type PublicKey [DigestLen]byte

// GenerateKey derives a keypair deterministically from seed: chain i
// starts at SHA3(seed ‖ i) and the public key hashes together all chain
// ends after ChainLen-1 steps.
func GenerateKey(seed []byte) (*PrivateKey, PublicKey, error) {
	if len(seed) < 16 {
		return nil, PublicKey{}, fmt.Errorf("%w: got %d bytes", ErrInvalidSeed, len(seed))
	}

	priv := &PrivateKey{}
	var idx [4]byte
	for i := 0; i < NumChains; i++ {
		binary.BigEndian.PutUint32(idx[:], uint32(i))
		priv.chains[i] = sha3.Sum256(append(append([]byte{}, seed...), idx[:]...))
	}

	return priv, priv.publicKey(), nil
}

func (priv *PrivateKey) publicKey() PublicKey {
	h := sha3.New256()
	for i := 0; i < NumChains; i++ {
		end := chain(priv.chains[i], ChainLen-1)
		h.Write(end[:])
	}
	var pub PublicKey
	copy(pub[:], h.Sum(nil))
	return pub
}

// chain applies SHA3 to node steps times.
func chain(node [DigestLen]byte, steps int) [DigestLen]byte {
	for s := 0; s < steps; s++ {
		node = sha3.Sum256(node[:])
	}
	return node
}

// chunks splits the message digest into NumChains 4-bit values.
func chunks(msg []byte) [NumChains]int {
	digest := sha3.Sum256(msg)
	var out [NumChains]int
	for i, b := range digest {
		out[2*i] = int(b >> 4)
		out[2*i+1] = int(b & 0x0f)
	}
	return out
}

// Sign walks each chain forward by the corresponding digest chunk and
// concatenates the reached nodes.
func (priv *PrivateKey) Sign(msg []byte) []byte {
	cs := chunks(msg)
	sig := make([]byte, 0, SignatureLen)
	for i := 0; i < NumChains; i++ {
		node := chain(priv.chains[i], cs[i])
		sig = append(sig, node[:]...)
	}
	return sig
}

// Verify completes each signature chain to its end (ChainLen-1 minus the
// chunk already walked by the signer), hashes the ends together and
// compares against the public key.
func Verify(pub PublicKey, msg, sig []byte) error {
	if len(sig) != SignatureLen {
		return fmt.Errorf("%w: length %d, want %d", ErrInvalidSignature, len(sig), SignatureLen)
	}

	cs := chunks(msg)
	h := sha3.New256()
	for i := 0; i < NumChains; i++ {
		var node [DigestLen]byte
		copy(node[:], sig[i*DigestLen:(i+1)*DigestLen])
		end := chain(node, ChainLen-1-cs[i])
		h.Write(end[:])
	}

	if !bytes.Equal(h.Sum(nil), pub[:]) {
		return ErrInvalidSignature
	}
	return nil
}
