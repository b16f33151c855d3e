// Package securerecord holds confirmed sensitive card fields encrypted
// in memory for the lifetime of one scan result.
//
// Each record owns a fresh random master key. The two fields are sealed
// independently under per-field subkeys derived with HKDF-SHA256, using
// AES-256-GCM so tampering with a ciphertext is detected at decrypt
// time. The key never leaves the record: there is no accessor for it,
// only the decrypted and masked views.
package securerecord

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/hkdf"
)

// ErrNotAvailable is returned by the accessors when a field cannot be
// recovered - the key was wiped or the ciphertext fails authentication.
var ErrNotAvailable = errors.New("securerecord: field not available")

const masterKeyLength = 32 // 256-bit master key

// HKDF info labels keep the two field subkeys independent even though
// they derive from the same master key.
const (
	infoCardNumber = "card-number"
	infoExpiryDate = "expiry-date"
)

// Record owns an ephemeral key and the two field ciphertexts. Create
// one per successful reconstruction via New; the zero value yields
// ErrNotAvailable from every accessor.
type Record struct {
	key              []byte
	cardNumberSealed []byte
	expirySealed     []byte
}

// New encrypts both plaintext fields under a fresh random key.
//
// Key generation reads from crypto/rand; a failure there is the only
// error path and callers should treat it as fatal for the attempt.
func New(cardNumber, expiryDate string) (*Record, error) {
	key := make([]byte, masterKeyLength)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, fmt.Errorf("generate record key: %w", err)
	}

	record := &Record{key: key}

	var err error
	record.cardNumberSealed, err = record.seal(infoCardNumber, []byte(cardNumber))
	if err != nil {
		return nil, fmt.Errorf("seal card number: %w", err)
	}
	record.expirySealed, err = record.seal(infoExpiryDate, []byte(expiryDate))
	if err != nil {
		return nil, fmt.Errorf("seal expiry date: %w", err)
	}

	return record, nil
}

// DecryptedCardNumber recovers the card number plaintext.
func (r *Record) DecryptedCardNumber() (string, error) {
	return r.open(infoCardNumber, r.cardNumberSealed)
}

// DecryptedExpiryDate recovers the expiry date plaintext ("MM/YYYY").
func (r *Record) DecryptedExpiryDate() (string, error) {
	return r.open(infoExpiryDate, r.expirySealed)
}

// MaskedCardNumber returns the display-safe form of the number: first
// four digits, '*' for the middle, last four digits, preserving total
// length. Numbers shorter than eight digits are fully masked.
func (r *Record) MaskedCardNumber() (string, error) {
	plaintext, err := r.open(infoCardNumber, r.cardNumberSealed)
	if err != nil {
		return "", err
	}

	length := len(plaintext)
	if length < 8 {
		return strings.Repeat("*", length), nil
	}

	var masked strings.Builder
	masked.Grow(length)
	masked.WriteString(plaintext[0:4])
	masked.WriteString(strings.Repeat("*", length-8))
	masked.WriteString(plaintext[length-4:])
	return masked.String(), nil
}

// Zero wipes the key material, best effort. Accessors return
// ErrNotAvailable afterwards. Calling Zero twice is harmless.
func (r *Record) Zero() {
	for i := range r.key {
		r.key[i] = 0
	}
	r.key = nil
}

// seal encrypts plaintext under the subkey for the given field label.
// The random nonce is prepended to the ciphertext, the layout slqrpdf
// style AEAD blobs use.
func (r *Record) seal(info string, plaintext []byte) ([]byte, error) {
	aead, err := r.fieldAEAD(info)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}

	return append(nonce, aead.Seal(nil, nonce, plaintext, nil)...), nil
}

// open decrypts a sealed blob. Any failure - wiped key, truncated
// blob, failed authentication - maps to ErrNotAvailable; the accessors
// never panic on malformed ciphertext.
func (r *Record) open(info string, sealed []byte) (string, error) {
	if len(r.key) != masterKeyLength || sealed == nil {
		return "", ErrNotAvailable
	}

	aead, err := r.fieldAEAD(info)
	if err != nil {
		return "", ErrNotAvailable
	}

	nonceSize := aead.NonceSize()
	if len(sealed) < nonceSize {
		return "", ErrNotAvailable
	}

	plaintext, err := aead.Open(nil, sealed[:nonceSize], sealed[nonceSize:], nil)
	if err != nil {
		return "", ErrNotAvailable
	}

	return string(plaintext), nil
}

// fieldAEAD builds the AES-256-GCM instance for one field, deriving
// the subkey from the master key with HKDF-SHA256 and the field label
// as the info string.
func (r *Record) fieldAEAD(info string) (cipher.AEAD, error) {
	subkey := make([]byte, masterKeyLength)
	kdf := hkdf.New(sha256.New, r.key, nil, []byte(info))
	if _, err := io.ReadFull(kdf, subkey); err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(subkey)
	if err != nil {
		return nil, err
	}

	return cipher.NewGCM(block)
}
