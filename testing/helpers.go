// Package testing provides test utilities for sfdl.
package testing

import (
	"encoding/xml"
	"io"
	"reflect"

	"github.com/zoobzio/sfdl"
)

// Password is the password the reference vectors were encrypted with.
const Password = "S3cr3tP4ssw0rd!"

// PlainXML is an unencrypted descriptor in the native format.
const PlainXML = `<?xml version="1.0"?>
<SFDLFile xmlns:xsd="http://www.w3.org/2001/XMLSchema" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">
  <Description>MyDescription</Description>
  <Uploader>MyUploader</Uploader>
  <SFDLFileVersion>6</SFDLFileVersion>
  <Encrypted>false</Encrypted>
  <ConnectionInfo>
    <Host>MyHost</Host>
    <Port>2121</Port>
    <Username>MyUsername</Username>
    <Password>MyPassword</Password>
    <AuthRequired>true</AuthRequired>
    <DataConnectionType>PASV</DataConnectionType>
    <DataType>Binary</DataType>
    <CharacterEncoding>UTF8</CharacterEncoding>
    <EncryptionMode>TLS</EncryptionMode>
    <ListMethod>ForceList</ListMethod>
    <DefaultPath>MyDefaultPath</DefaultPath>
    <ForceSingleConnection>false</ForceSingleConnection>
    <DataStaleDetection>true</DataStaleDetection>
    <SpecialServerMode>false</SpecialServerMode>
  </ConnectionInfo>
  <Packages>
    <SFDLPackage>
      <Packagename>Display Name</Packagename>
      <BulkFolderMode>true</BulkFolderMode>
      <BulkFolderList>
        <BulkFolder>
          <BulkFolderPath>MyBulkFolderPath</BulkFolderPath>
          <PackageName>MyPackageName</PackageName>
        </BulkFolder>
      </BulkFolderList>
    </SFDLPackage>
  </Packages>
  <MaxDownloadThreads>3</MaxDownloadThreads>
</SFDLFile>
`

// PlainFile returns the descriptor described by PlainXML.
func PlainFile() *sfdl.File {
	f := sfdl.New()
	f.Description = "MyDescription"
	f.Uploader = "MyUploader"
	f.ConnectionInfo.Host = "MyHost"
	f.ConnectionInfo.Port = 2121
	f.ConnectionInfo.Username = "MyUsername"
	f.ConnectionInfo.Password = "MyPassword"
	f.ConnectionInfo.AuthRequired = true
	f.ConnectionInfo.DataConnectionType = sfdl.PASV
	f.ConnectionInfo.CharacterEncoding = sfdl.EncodingUTF8
	f.ConnectionInfo.EncryptionMode = sfdl.EncryptionTLS
	f.ConnectionInfo.DefaultPath = "MyDefaultPath"
	f.Packages[0].SFDLPackage.PackageName = "Display Name"
	f.Packages[0].SFDLPackage.BulkFolderList.BulkFolder.BulkFolderPath = "MyBulkFolderPath"
	f.Packages[0].SFDLPackage.BulkFolderList.BulkFolder.PackageName = "MyPackageName"
	return f
}

// EncryptedFile returns PlainFile encrypted under Password with reference
// ciphertexts produced by existing SFDL tooling.
func EncryptedFile() *sfdl.File {
	f := PlainFile()
	f.Encrypted = true
	f.Description = "XzfqqoMjo1SmIOjtmZNLHXrF490d2n6lg+gTkRgCKoE="
	f.Uploader = "9UOvz1YkIDBCYa0QICNyHg3jl9WNcI6qxCP0C/hGVOk="
	f.ConnectionInfo.Host = "7KWh4OBnP4Jsef/L6IQLs+vdmeuqx0SdOUjcekxGeQk="
	f.ConnectionInfo.Username = "LwSvdBsjAOsb1LSK6SzJanRrAtAZrRitDEmKte6RJqo="
	f.ConnectionInfo.Password = "GBIBRNcq6XIkcN5DSUWpo6nlkdjdXTjQdTvA1y1ZCSc="
	f.ConnectionInfo.DefaultPath = "QLXmGG+Q45RX2dH4RVmzApj155uMQoMsSBdaZJQ2Z6Q="
	folder := &f.Packages[0].SFDLPackage.BulkFolderList.BulkFolder
	folder.BulkFolderPath = "u8TayXwCs5dvXGfT45eTfGdkWDVp3NZLC5/bQ+7foM4vdqWhK36gzA1TLsZzSea9"
	folder.PackageName = "fFbUrccronJv4nif7AnQr2b5CpePeafFT4dbzV+yvpU="
	return f
}

// Equal reports whether two descriptors hold the same values. The decoded
// root element name is ignored, so files from different codecs compare equal.
func Equal(a, b *sfdl.File) bool {
	x, y := a.Clone(), b.Clone()
	x.XMLName, y.XMLName = xml.Name{}, xml.Name{}
	if len(x.Packages) == 0 && len(y.Packages) == 0 {
		x.Packages, y.Packages = nil, nil
	}
	return reflect.DeepEqual(x, y)
}

// FixedRandom returns a reader that yields b forever. Use it with
// sfdl.NewCipher for deterministic IVs.
func FixedRandom(b byte) io.Reader {
	return fixedRandom(b)
}

type fixedRandom byte

func (r fixedRandom) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(r)
	}
	return len(p), nil
}

// FailingRandom returns a reader that always fails with err.
func FailingRandom(err error) io.Reader {
	return failingRandom{err: err}
}

type failingRandom struct{ err error }

func (r failingRandom) Read([]byte) (int, error) {
	return 0, r.err
}
