package yaml

import (
	"errors"
	"strings"
	"testing"

	"github.com/zoobzio/sfdl"
	sfdltest "github.com/zoobzio/sfdl/testing"
)

func TestNew(t *testing.T) {
	c := New()
	if c == nil {
		t.Error("New() should return non-nil codec")
	}
}

func TestContentType(t *testing.T) {
	c := New()
	if c.ContentType() != "application/yaml" {
		t.Errorf("ContentType() = %q, want %q", c.ContentType(), "application/yaml")
	}
}

func TestRegistered(t *testing.T) {
	if _, err := sfdl.LookupCodec("yaml"); err != nil {
		t.Fatalf("LookupCodec(yaml) error: %v", err)
	}
}

func TestDescriptorRoundTrip(t *testing.T) {
	original := sfdltest.PlainFile()

	data, err := original.Encode(New())
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	if !strings.Contains(string(data), "encryptionMode: TLS") {
		t.Errorf("expected yaml keys, got:\n%s", data)
	}

	restored, err := sfdl.Decode(New(), data)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if !sfdltest.Equal(restored, original) {
		t.Errorf("round-trip failed:\ngot  %+v\nwant %+v", restored, original)
	}
}

func TestEncryptedRoundTrip(t *testing.T) {
	data, err := sfdltest.EncryptedFile().Encode(New())
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}

	restored, err := sfdl.Decode(New(), data)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if err := restored.Decrypt(sfdltest.Password); err != nil {
		t.Fatalf("Decrypt() error: %v", err)
	}
	if !sfdltest.Equal(restored, sfdltest.PlainFile()) {
		t.Errorf("decrypted = %+v, want %+v", restored, sfdltest.PlainFile())
	}
}

func TestUnmarshalInvalid(t *testing.T) {
	_, err := sfdl.Decode(New(), []byte("invalid: yaml: content: ["))
	if !errors.Is(err, sfdl.ErrUnmarshal) {
		t.Errorf("Decode(invalid) error = %v, want ErrUnmarshal", err)
	}
}

func TestUnmarshalUnknownEnum(t *testing.T) {
	_, err := sfdl.Decode(New(), []byte("connectionInfo:\n  dataConnectionType: CARRIER_PIGEON\n"))
	if err == nil || !strings.Contains(err.Error(), "unknown data connection type") {
		t.Errorf("Decode() error = %v, want unknown data connection type", err)
	}
}
