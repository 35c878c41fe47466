package sfdl

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/md5" //nolint:gosec // MD5 key derivation is fixed by the SFDL format
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// ivSize is the length of the initialization vector prepended to every value.
const ivSize = aes.BlockSize

const base64Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

// Cipher encrypts and decrypts single field values in the SFDL format:
// AES-128-CBC with PKCS#7 padding, keyed by the MD5 digest of the password,
// encoded as base64(iv || ciphertext).
//
// The format carries no authentication tag. MD5 key derivation is kept for
// compatibility with existing SFDL consumers and is not a strong KDF.
//
// A Cipher is safe for concurrent use when its random source is.
type Cipher struct {
	random io.Reader
}

// NewCipher returns a Cipher drawing initialization vectors from random.
// A nil random uses crypto/rand.Reader.
func NewCipher(random io.Reader) *Cipher {
	if random == nil {
		random = rand.Reader
	}
	return &Cipher{random: random}
}

var defaultCipher = NewCipher(nil)

// EncryptField encrypts plaintext with the default Cipher.
func EncryptField(plaintext, password string) (string, error) {
	return defaultCipher.EncryptField(plaintext, password)
}

// DecryptField decrypts encoded with the default Cipher.
func DecryptField(encoded, password string) (string, error) {
	return defaultCipher.DecryptField(encoded, password)
}

// DeriveKey returns the 16-byte AES key for password.
func DeriveKey(password string) []byte {
	sum := md5.Sum([]byte(password)) //nolint:gosec // see package docs
	return sum[:]
}

// EncryptField encrypts plaintext under password using a fresh random IV.
func (c *Cipher) EncryptField(plaintext, password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}
	if !utf8.ValidString(plaintext) {
		return "", ErrInvalidEncoding
	}

	block, err := aes.NewCipher(DeriveKey(password))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnknown, err)
	}

	padded := pkcs7Pad([]byte(plaintext), ivSize)
	out := make([]byte, ivSize+len(padded))
	iv := out[:ivSize]
	if _, err := io.ReadFull(c.random, iv); err != nil {
		return "", fmt.Errorf("%w: generate iv: %w", ErrUnknown, err)
	}

	cipher.NewCBCEncrypter(block, iv).CryptBlocks(out[ivSize:], padded)

	return base64.StdEncoding.EncodeToString(out), nil
}

// DecryptField decrypts a value produced by EncryptField.
//
// Malformed base64 yields a *DataError. A wrong password, corrupted
// ciphertext, or bad padding all yield ErrInvalidPassword.
func (c *Cipher) DecryptField(encoded, password string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", newDataError(encoded, err)
	}
	if len(raw) < ivSize {
		return "", &DataError{Reason: ReasonTruncated, Length: len(raw)}
	}

	iv, ciphertext := raw[:ivSize], raw[ivSize:]
	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return "", ErrInvalidPassword
	}

	block, err := aes.NewCipher(DeriveKey(password))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnknown, err)
	}

	plain := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plain, ciphertext)

	plain, ok := pkcs7Unpad(plain, aes.BlockSize)
	if !ok {
		return "", ErrInvalidPassword
	}
	if !utf8.Valid(plain) {
		return "", ErrInvalidEncoding
	}

	return string(plain), nil
}

// pkcs7Pad appends 1..blockSize bytes, each holding the pad length.
func pkcs7Pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	return append(data, bytes.Repeat([]byte{byte(n)}, n)...)
}

// pkcs7Unpad strips PKCS#7 padding, reporting false if it is malformed.
func pkcs7Unpad(data []byte, blockSize int) ([]byte, bool) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, false
	}
	n := int(data[len(data)-1])
	if n == 0 || n > blockSize {
		return nil, false
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, false
		}
	}
	return data[:len(data)-n], true
}

// newDataError classifies a base64 decode failure on input.
func newDataError(input string, err error) error {
	var corrupt base64.CorruptInputError
	if !errors.As(err, &corrupt) {
		return &DataError{Reason: ReasonLength, Length: len(input), Cause: err}
	}

	off := int(corrupt)
	if off < len(input) {
		switch b := input[off]; {
		case b == '=':
			return &DataError{Reason: ReasonPadding, Offset: off, Cause: err}
		case strings.IndexByte(base64Alphabet, b) < 0:
			return &DataError{Reason: ReasonByte, Offset: off, Byte: b, Cause: err}
		}
	}
	return &DataError{Reason: ReasonLength, Length: len(input), Cause: err}
}
