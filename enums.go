package sfdl

import "fmt"

// DataConnectionType is the FTP data connection mode.
type DataConnectionType string

const (
	AutoPassive DataConnectionType = "AutoPassive"
	AutoActive  DataConnectionType = "AutoActive"
	EPRT        DataConnectionType = "EPRT"
	EPSV        DataConnectionType = "EPSV"
	PASV        DataConnectionType = "PASV"
	PASVEX      DataConnectionType = "PASVEX"
	PORT        DataConnectionType = "PORT"
)

// DataType is the FTP transfer type.
type DataType string

const (
	DataTypeBinary DataType = "Binary"
	DataTypeASCII  DataType = "ASCII"
)

// CharacterEncoding is the encoding used for remote file names.
type CharacterEncoding string

const (
	EncodingStandard CharacterEncoding = "Standard"
	EncodingUTF8     CharacterEncoding = "UTF8"
	EncodingUTF7     CharacterEncoding = "UTF7"
	EncodingASCII    CharacterEncoding = "ASCII"
)

// EncryptionMode is the transport security of the FTP connection.
// It is unrelated to field encryption.
type EncryptionMode string

const (
	EncryptionNone EncryptionMode = "None"
	EncryptionSSL  EncryptionMode = "SSL"
	EncryptionTLS  EncryptionMode = "TLS"
)

// validDataConnectionTypes contains all valid connection types for decoding.
var validDataConnectionTypes = map[DataConnectionType]bool{
	AutoPassive: true,
	AutoActive:  true,
	EPRT:        true,
	EPSV:        true,
	PASV:        true,
	PASVEX:      true,
	PORT:        true,
}

// validDataTypes contains all valid transfer types for decoding.
var validDataTypes = map[DataType]bool{
	DataTypeBinary: true,
	DataTypeASCII:  true,
}

// validCharacterEncodings contains all valid encodings for decoding.
var validCharacterEncodings = map[CharacterEncoding]bool{
	EncodingStandard: true,
	EncodingUTF8:     true,
	EncodingUTF7:     true,
	EncodingASCII:    true,
}

// validEncryptionModes contains all valid encryption modes for decoding.
var validEncryptionModes = map[EncryptionMode]bool{
	EncryptionNone: true,
	EncryptionSSL:  true,
	EncryptionTLS:  true,
}

// IsValid returns true if t is a known data connection type.
func (t DataConnectionType) IsValid() bool { return validDataConnectionTypes[t] }

// IsValid returns true if t is a known data type.
func (t DataType) IsValid() bool { return validDataTypes[t] }

// IsValid returns true if e is a known character encoding.
func (e CharacterEncoding) IsValid() bool { return validCharacterEncodings[e] }

// IsValid returns true if m is a known encryption mode.
func (m EncryptionMode) IsValid() bool { return validEncryptionModes[m] }

// UnmarshalText implements encoding.TextUnmarshaler, rejecting unknown values.
func (t *DataConnectionType) UnmarshalText(text []byte) error {
	v := DataConnectionType(text)
	if !v.IsValid() {
		return fmt.Errorf("unknown data connection type %q", text)
	}
	*t = v
	return nil
}

// UnmarshalText implements encoding.TextUnmarshaler, rejecting unknown values.
func (t *DataType) UnmarshalText(text []byte) error {
	v := DataType(text)
	if !v.IsValid() {
		return fmt.Errorf("unknown data type %q", text)
	}
	*t = v
	return nil
}

// UnmarshalText implements encoding.TextUnmarshaler, rejecting unknown values.
func (e *CharacterEncoding) UnmarshalText(text []byte) error {
	v := CharacterEncoding(text)
	if !v.IsValid() {
		return fmt.Errorf("unknown character encoding %q", text)
	}
	*e = v
	return nil
}

// UnmarshalText implements encoding.TextUnmarshaler, rejecting unknown values.
func (m *EncryptionMode) UnmarshalText(text []byte) error {
	v := EncryptionMode(text)
	if !v.IsValid() {
		return fmt.Errorf("unknown encryption mode %q", text)
	}
	*m = v
	return nil
}

// applyEnumDefaults fills enums left empty by an absent element with the
// values New writes.
func (c *ConnectionInfo) applyEnumDefaults() {
	if c.DataConnectionType == "" {
		c.DataConnectionType = AutoPassive
	}
	if c.DataType == "" {
		c.DataType = DataTypeBinary
	}
	if c.CharacterEncoding == "" {
		c.CharacterEncoding = EncodingStandard
	}
	if c.EncryptionMode == "" {
		c.EncryptionMode = EncryptionNone
	}
}

// validate rejects enum values that bypassed UnmarshalText, as happens with
// codecs that decode strings directly.
func (c *ConnectionInfo) validate() error {
	switch {
	case !c.DataConnectionType.IsValid():
		return fmt.Errorf("unknown data connection type %q", string(c.DataConnectionType))
	case !c.DataType.IsValid():
		return fmt.Errorf("unknown data type %q", string(c.DataType))
	case !c.CharacterEncoding.IsValid():
		return fmt.Errorf("unknown character encoding %q", string(c.CharacterEncoding))
	case !c.EncryptionMode.IsValid():
		return fmt.Errorf("unknown encryption mode %q", string(c.EncryptionMode))
	}
	return nil
}
