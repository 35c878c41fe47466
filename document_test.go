package sfdl

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// failCodec fails every call with err.
type failCodec struct{ err error }

func (c failCodec) ContentType() string         { return "application/x-fail" }
func (c failCodec) Marshal(any) ([]byte, error) { return nil, c.err }
func (c failCodec) Unmarshal([]byte, any) error { return c.err }

type failWriter struct{ err error }

func (w failWriter) Write([]byte) (int, error) { return 0, w.err }

func TestParse(t *testing.T) {
	f, err := Parse([]byte(plainXML))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	assertSameFile(t, f, sampleFile())
}

func TestParseString(t *testing.T) {
	f, err := ParseString(plainXML)
	if err != nil {
		t.Fatalf("ParseString() error: %v", err)
	}
	assertSameFile(t, f, sampleFile())
}

func TestParse_Invalid(t *testing.T) {
	_, err := ParseString("<SFDLFile><Port>")
	if !errors.Is(err, ErrUnmarshal) {
		t.Fatalf("ParseString() error = %v, want ErrUnmarshal", err)
	}

	var ce *CodecError
	if !errors.As(err, &ce) {
		t.Fatalf("error should be *CodecError, got %T", err)
	}
	if ce.ContentType != "application/xml" {
		t.Errorf("ContentType = %q, want %q", ce.ContentType, "application/xml")
	}
}

func TestReadFrom(t *testing.T) {
	f, err := ReadFrom(strings.NewReader(plainXML))
	if err != nil {
		t.Fatalf("ReadFrom() error: %v", err)
	}
	assertSameFile(t, f, sampleFile())
}

func TestReadFrom_Error(t *testing.T) {
	cause := errors.New("disk on fire")
	_, err := ReadFrom(errReader{err: cause})

	var ioe *IOError
	if !errors.As(err, &ioe) {
		t.Fatalf("ReadFrom() error should be *IOError, got %T", err)
	}
	if ioe.Op != "read" || !errors.Is(err, cause) {
		t.Errorf("IOError = %+v", ioe)
	}
}

func TestOpen_NotExist(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.sfdl")
	_, err := Open(path)

	var ioe *IOError
	if !errors.As(err, &ioe) {
		t.Fatalf("Open() error should be *IOError, got %T", err)
	}
	if ioe.Op != "open" || ioe.Path != path {
		t.Errorf("IOError = %+v", ioe)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Open() error = %v, want fs.ErrNotExist", err)
	}
}

func TestWrite_Open_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.sfdl")
	original := sampleFile()

	if err := original.Write(path); err != nil {
		t.Fatalf("Write() error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat() error: %v", err)
	}
	if perm := info.Mode().Perm(); perm&0o077 != 0 {
		t.Errorf("file mode = %o, should not be group or world accessible", perm)
	}

	restored, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	assertSameFile(t, restored, original)
}

func TestWrite_Encrypted_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "enc.sfdl")
	f := sampleFile()
	if err := f.Encrypt(testPassword); err != nil {
		t.Fatalf("Encrypt() error: %v", err)
	}
	if err := f.Write(path); err != nil {
		t.Fatalf("Write() error: %v", err)
	}

	restored, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	if !restored.Encrypted {
		t.Fatal("Encrypted flag lost on write")
	}
	if err := restored.Decrypt(testPassword); err != nil {
		t.Fatalf("Decrypt() error: %v", err)
	}
	assertSameFile(t, restored, sampleFile())
}

func TestWrite_BadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "out.sfdl")
	err := sampleFile().Write(path)

	var ioe *IOError
	if !errors.As(err, &ioe) {
		t.Fatalf("Write() error should be *IOError, got %T", err)
	}
	if ioe.Op != "write" || ioe.Path != path {
		t.Errorf("IOError = %+v", ioe)
	}
}

func TestWriteTo(t *testing.T) {
	var buf bytes.Buffer
	n, err := sampleFile().WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo() error: %v", err)
	}
	if n != int64(buf.Len()) {
		t.Errorf("WriteTo() = %d, wrote %d", n, buf.Len())
	}

	f, err := Parse(buf.Bytes())
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	assertSameFile(t, f, sampleFile())
}

func TestWriteTo_Error(t *testing.T) {
	cause := errors.New("pipe closed")
	_, err := sampleFile().WriteTo(failWriter{err: cause})

	var ioe *IOError
	if !errors.As(err, &ioe) || !errors.Is(err, cause) {
		t.Errorf("WriteTo() error = %v, want IOError wrapping cause", err)
	}
}

func TestMarshal_Parse(t *testing.T) {
	data, err := sampleFile().Marshal()
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	f, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	assertSameFile(t, f, sampleFile())
}

func TestDecode_CodecError(t *testing.T) {
	cause := errors.New("bad input")
	_, err := Decode(failCodec{err: cause}, []byte("x"))

	if !errors.Is(err, ErrUnmarshal) || !errors.Is(err, cause) {
		t.Fatalf("Decode() error = %v, want ErrUnmarshal wrapping cause", err)
	}

	var ce *CodecError
	if !errors.As(err, &ce) || ce.ContentType != "application/x-fail" {
		t.Errorf("CodecError = %+v", ce)
	}
}

func TestEncode_CodecError(t *testing.T) {
	cause := errors.New("unsupported")
	_, err := sampleFile().Encode(failCodec{err: cause})

	if !errors.Is(err, ErrMarshal) || !errors.Is(err, cause) {
		t.Errorf("Encode() error = %v, want ErrMarshal wrapping cause", err)
	}
}

func TestWriteCodec_EncodeErrorLeavesNoFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.fail")
	err := sampleFile().WriteCodec(failCodec{err: errors.New("nope")}, path)
	if !errors.Is(err, ErrMarshal) {
		t.Fatalf("WriteCodec() error = %v, want ErrMarshal", err)
	}
	if _, statErr := os.Stat(path); !errors.Is(statErr, fs.ErrNotExist) {
		t.Errorf("WriteCodec() should not create the file on encode failure")
	}
}
