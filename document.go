package sfdl

import (
	"bytes"
	"context"
	"io"
	"os"
)

// Parse decodes an SFDL XML document.
func Parse(data []byte) (*File, error) {
	return decode(XML(), data, "")
}

// ParseString decodes an SFDL XML document held in a string.
func ParseString(s string) (*File, error) {
	return Parse([]byte(s))
}

// ReadFrom decodes an SFDL XML document read from r.
func ReadFrom(r io.Reader) (*File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, newIOError("read", "", err)
	}
	return Parse(data)
}

// Open reads and decodes the SFDL XML document at path.
func Open(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, newIOError("open", path, err)
	}
	return decode(XML(), data, path)
}

// Decode decodes a descriptor with any codec, e.g. one obtained from
// LookupCodec.
func Decode(c Codec, data []byte) (*File, error) {
	return decode(c, data, "")
}

func decode(c Codec, data []byte, path string) (*File, error) {
	var f File
	err := c.Unmarshal(data, &f)
	if err == nil {
		f.applyDefaults()
		err = f.ConnectionInfo.validate()
	}
	if err != nil {
		err = newCodecError(ErrUnmarshal, c.ContentType(), err)
	}
	emitParseComplete(context.Background(), c.ContentType(), path, len(data), err)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// Marshal encodes f as an SFDL XML document.
func (f *File) Marshal() ([]byte, error) {
	return f.encode(XML(), "")
}

// Encode encodes f with any codec.
func (f *File) Encode(c Codec) ([]byte, error) {
	return f.encode(c, "")
}

func (f *File) encode(c Codec, path string) ([]byte, error) {
	data, err := c.Marshal(f)
	if err != nil {
		err = newCodecError(ErrMarshal, c.ContentType(), err)
	}
	emitWriteComplete(context.Background(), c.ContentType(), path, len(data), err)
	if err != nil {
		return nil, err
	}
	return data, nil
}

// WriteTo writes f as an SFDL XML document to w.
func (f *File) WriteTo(w io.Writer) (int64, error) {
	data, err := f.Marshal()
	if err != nil {
		return 0, err
	}
	n, err := io.Copy(w, bytes.NewReader(data))
	if err != nil {
		return n, newIOError("write", "", err)
	}
	return n, nil
}

// Write writes f as an SFDL XML document to path, replacing any existing file.
func (f *File) Write(path string) error {
	return f.WriteCodec(XML(), path)
}

// WriteCodec encodes f with c and writes the result to path.
func (f *File) WriteCodec(c Codec, path string) error {
	data, err := f.encode(c, path)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return newIOError("write", path, err)
	}
	return nil
}
