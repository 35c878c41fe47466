package sfdl

import (
	"errors"
	"io/fs"
	"testing"
)

func TestDataError_Is(t *testing.T) {
	err := &DataError{Reason: ReasonLength, Length: 1}

	if !errors.Is(err, ErrInvalidData) {
		t.Error("DataError should unwrap to ErrInvalidData")
	}
	if errors.Is(err, ErrInvalidPassword) {
		t.Error("DataError should not match ErrInvalidPassword")
	}
}

func TestDataError_Message(t *testing.T) {
	tests := []struct {
		name string
		err  *DataError
		want string
	}{
		{
			name: "length",
			err:  &DataError{Reason: ReasonLength, Length: 1},
			want: "invalid data: invalid input length 1",
		},
		{
			name: "byte",
			err:  &DataError{Reason: ReasonByte, Offset: 7, Byte: '-'},
			want: "invalid data: invalid byte 45 at offset 7",
		},
		{
			name: "padding",
			err:  &DataError{Reason: ReasonPadding, Offset: 2},
			want: "invalid data: invalid padding at offset 2",
		},
		{
			name: "truncated",
			err:  &DataError{Reason: ReasonTruncated, Length: 12},
			want: "invalid data: decoded length 12 is shorter than the iv",
		},
		{
			name: "unknown reason",
			err:  &DataError{Reason: DataReason(99)},
			want: "invalid data",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDataReason_String(t *testing.T) {
	if got := ReasonByte.String(); got != "invalid byte" {
		t.Errorf("String() = %q, want %q", got, "invalid byte")
	}
	if got := DataReason(99).String(); got != "unknown" {
		t.Errorf("String() = %q, want %q", got, "unknown")
	}
}

func TestFieldError_Is(t *testing.T) {
	err := newFieldError(ErrDecrypt, "decrypt", "ConnectionInfo.Host", ErrInvalidPassword)

	if !errors.Is(err, ErrDecrypt) {
		t.Error("FieldError should unwrap to ErrDecrypt")
	}
	if !errors.Is(err, ErrInvalidPassword) {
		t.Error("FieldError should unwrap to its cause")
	}
	if errors.Is(err, ErrEncrypt) {
		t.Error("FieldError should not match ErrEncrypt")
	}
}

func TestFieldError_As(t *testing.T) {
	cause := &DataError{Reason: ReasonByte, Offset: 3, Byte: '!'}
	err := newFieldError(ErrDecrypt, "decrypt", "Uploader", cause)

	var de *DataError
	if !errors.As(err, &de) {
		t.Fatal("FieldError should expose a *DataError cause")
	}
	if de.Offset != 3 {
		t.Errorf("DataError.Offset = %d, want 3", de.Offset)
	}

	var fe *FieldError
	if !errors.As(err, &fe) {
		t.Fatal("errors.As should find *FieldError")
	}
	if fe.Field != "Uploader" || fe.Operation != "decrypt" {
		t.Errorf("FieldError = %+v", fe)
	}
}

func TestFieldError_Message(t *testing.T) {
	err := newFieldError(ErrEncrypt, "encrypt", "Description", ErrEmptyPassword)

	want := "encrypt field Description: empty password"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestFieldError_NoCause(t *testing.T) {
	err := &FieldError{Err: ErrEncrypt, Field: "Description", Operation: "encrypt"}

	want := "encrypt field Description"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, ErrEncrypt) {
		t.Error("FieldError without cause should still unwrap to ErrEncrypt")
	}
}

func TestCodecError_Is(t *testing.T) {
	cause := errors.New("XML syntax error on line 1")
	err := newCodecError(ErrUnmarshal, "application/xml", cause)

	if !errors.Is(err, ErrUnmarshal) {
		t.Error("CodecError should unwrap to ErrUnmarshal")
	}
	if !errors.Is(err, cause) {
		t.Error("CodecError should unwrap to its cause")
	}
	if errors.Is(err, ErrMarshal) {
		t.Error("CodecError should not match ErrMarshal")
	}
}

func TestCodecError_Message(t *testing.T) {
	err := newCodecError(ErrUnmarshal, "application/xml", errors.New("EOF"))

	want := "unmarshal failed: EOF"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	bare := &CodecError{Err: ErrMarshal}
	if got := bare.Error(); got != "marshal failed" {
		t.Errorf("Error() = %q, want %q", got, "marshal failed")
	}
}

func TestIOError(t *testing.T) {
	err := newIOError("open", "missing.sfdl", fs.ErrNotExist)

	if !errors.Is(err, fs.ErrNotExist) {
		t.Error("IOError should unwrap to the underlying error")
	}

	want := "io error: open missing.sfdl: file does not exist"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	noPath := newIOError("read", "", fs.ErrClosed)
	if got := noPath.Error(); got != "io error: read: file already closed" {
		t.Errorf("Error() = %q", got)
	}
}
