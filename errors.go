package sfdl

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrEmptyPassword indicates an encryption was attempted without a password.
	ErrEmptyPassword = errors.New("empty password")

	// ErrInvalidData indicates a field value is not valid base64 or is too
	// short to hold an initialization vector.
	ErrInvalidData = errors.New("invalid data")

	// ErrInvalidEncoding indicates a value is not valid UTF-8.
	ErrInvalidEncoding = errors.New("invalid encoding, expected utf-8")

	// ErrInvalidPassword indicates padding validation failed after decryption.
	// The format cannot tell a wrong password from corrupted ciphertext.
	ErrInvalidPassword = errors.New("invalid password")

	// ErrUnknown indicates an unexpected cipher failure.
	ErrUnknown = errors.New("unknown cipher error")

	// ErrAlreadyEncrypted indicates Encrypt was called on an encrypted file.
	ErrAlreadyEncrypted = errors.New("already encrypted")

	// ErrNotEncrypted indicates Decrypt was called on a plain file.
	ErrNotEncrypted = errors.New("not encrypted")

	// ErrNoPackages indicates the file has no package to transform.
	ErrNoPackages = errors.New("file has no packages")

	// ErrEncrypt indicates encryption of a field failed.
	ErrEncrypt = errors.New("encrypt failed")

	// ErrDecrypt indicates decryption of a field failed.
	ErrDecrypt = errors.New("decrypt failed")

	// ErrUnmarshal indicates the codec failed to unmarshal input data.
	ErrUnmarshal = errors.New("unmarshal failed")

	// ErrMarshal indicates the codec failed to marshal output data.
	ErrMarshal = errors.New("marshal failed")

	// ErrUnknownCodec indicates no codec is registered under a name.
	ErrUnknownCodec = errors.New("unknown codec")
)

// DataReason classifies why a field value could not be decoded.
type DataReason int

const (
	// ReasonLength means the input length is not a valid base64 length.
	ReasonLength DataReason = iota
	// ReasonByte means the input holds a byte outside the base64 alphabet.
	ReasonByte
	// ReasonPadding means the input holds misplaced padding.
	ReasonPadding
	// ReasonTruncated means the decoded value is shorter than an IV.
	ReasonTruncated
)

func (r DataReason) String() string {
	switch r {
	case ReasonLength:
		return "invalid length"
	case ReasonByte:
		return "invalid byte"
	case ReasonPadding:
		return "invalid padding"
	case ReasonTruncated:
		return "truncated"
	default:
		return "unknown"
	}
}

// DataError carries the decode diagnostic for a malformed field value.
// It unwraps to ErrInvalidData.
type DataError struct {
	Reason DataReason
	Length int   // Input length for ReasonLength, decoded length for ReasonTruncated
	Offset int   // Offending offset for ReasonByte and ReasonPadding
	Byte   byte  // Offending byte for ReasonByte
	Cause  error // Original decoder error, if any
}

func (e *DataError) Error() string {
	switch e.Reason {
	case ReasonLength:
		return fmt.Sprintf("%s: invalid input length %d", ErrInvalidData, e.Length)
	case ReasonByte:
		return fmt.Sprintf("%s: invalid byte %d at offset %d", ErrInvalidData, e.Byte, e.Offset)
	case ReasonPadding:
		return fmt.Sprintf("%s: invalid padding at offset %d", ErrInvalidData, e.Offset)
	case ReasonTruncated:
		return fmt.Sprintf("%s: decoded length %d is shorter than the iv", ErrInvalidData, e.Length)
	default:
		return ErrInvalidData.Error()
	}
}

func (e *DataError) Unwrap() error {
	return ErrInvalidData
}

// FieldError represents a failure transforming one sensitive field.
// It unwraps to both the operation sentinel (ErrEncrypt, ErrDecrypt) and
// the field-level cause.
type FieldError struct {
	Err       error  // Operation sentinel (ErrEncrypt, ErrDecrypt)
	Field     string // Path of the field that failed
	Operation string // "encrypt" or "decrypt"
	Cause     error  // Error from the cipher engine
}

func (e *FieldError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s field %s: %v", e.Operation, e.Field, e.Cause)
	}
	return fmt.Sprintf("%s field %s", e.Operation, e.Field)
}

func (e *FieldError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

// CodecError represents a marshal/unmarshal error.
type CodecError struct {
	Err         error  // Underlying sentinel error (ErrMarshal, ErrUnmarshal)
	ContentType string // Content type of the codec that failed
	Cause       error  // Original error from the codec
}

func (e *CodecError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Cause)
	}
	return e.Err.Error()
}

func (e *CodecError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

// IOError represents a file system I/O error.
type IOError struct {
	Op   string // "open", "read", "write"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("io error: %s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("io error: %s: %v", e.Op, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// newFieldError creates a FieldError for a failed field transformation.
func newFieldError(sentinel error, operation, field string, cause error) error {
	return &FieldError{
		Err:       sentinel,
		Field:     field,
		Operation: operation,
		Cause:     cause,
	}
}

// newCodecError creates a CodecError for marshal/unmarshal failures.
func newCodecError(sentinel error, contentType string, cause error) error {
	return &CodecError{
		Err:         sentinel,
		ContentType: contentType,
		Cause:       cause,
	}
}

// newIOError creates an IOError for a failed file system operation.
func newIOError(op, path string, err error) error {
	return &IOError{Op: op, Path: path, Err: err}
}
