package sfdl

import "encoding/xml"

// Default namespace declarations on the SFDLFile root element.
const (
	DefaultXMLNSXsd = "http://www.w3.org/2001/XMLSchema"
	DefaultXMLNSXsi = "http://www.w3.org/2001/XMLSchema-instance"
)

// Defaults written by New.
const (
	DefaultVersion            = 6
	DefaultMaxDownloadThreads = 3
	DefaultPort               = 21
	DefaultListMethod         = "ForceList"
	DefaultPath               = "/"
)

// File is an SFDL download descriptor.
//
// Fields tagged sfdl:"sensitive" hold ciphertext while Encrypted is true
// and plaintext otherwise. See Encrypt and Decrypt.
type File struct {
	XMLName            xml.Name       `xml:"SFDLFile" json:"-" yaml:"-" msgpack:"-" bson:"-"`
	XMLNSXsd           string         `xml:"xmlns:xsd,attr" json:"xmlnsXsd" yaml:"xmlnsXsd"`
	XMLNSXsi           string         `xml:"xmlns:xsi,attr" json:"xmlnsXsi" yaml:"xmlnsXsi"`
	Description        string         `xml:"Description" json:"description" yaml:"description" sfdl:"sensitive"`
	Uploader           string         `xml:"Uploader" json:"uploader" yaml:"uploader" sfdl:"sensitive"`
	SFDLFileVersion    uint16         `xml:"SFDLFileVersion" json:"sfdlFileVersion" yaml:"sfdlFileVersion"`
	Encrypted          bool           `xml:"Encrypted" json:"encrypted" yaml:"encrypted"`
	ConnectionInfo     ConnectionInfo `xml:"ConnectionInfo" json:"connectionInfo" yaml:"connectionInfo"`
	Packages           []Package      `xml:"Packages" json:"packages" yaml:"packages"`
	MaxDownloadThreads uint16         `xml:"MaxDownloadThreads" json:"maxDownloadThreads" yaml:"maxDownloadThreads"`
}

// ConnectionInfo describes how to reach the server holding the packages.
type ConnectionInfo struct {
	Host                  string             `xml:"Host" json:"host" yaml:"host" sfdl:"sensitive"`
	Port                  uint16             `xml:"Port" json:"port" yaml:"port"`
	Username              string             `xml:"Username" json:"username" yaml:"username" sfdl:"sensitive"`
	Password              string             `xml:"Password" json:"password" yaml:"password" sfdl:"sensitive"`
	AuthRequired          bool               `xml:"AuthRequired" json:"authRequired" yaml:"authRequired"`
	DataConnectionType    DataConnectionType `xml:"DataConnectionType" json:"dataConnectionType" yaml:"dataConnectionType"`
	DataType              DataType           `xml:"DataType" json:"dataType" yaml:"dataType"`
	CharacterEncoding     CharacterEncoding  `xml:"CharacterEncoding" json:"characterEncoding" yaml:"characterEncoding"`
	EncryptionMode        EncryptionMode     `xml:"EncryptionMode" json:"encryptionMode" yaml:"encryptionMode"`
	ListMethod            string             `xml:"ListMethod" json:"listMethod" yaml:"listMethod"`
	DefaultPath           string             `xml:"DefaultPath" json:"defaultPath" yaml:"defaultPath" sfdl:"sensitive"`
	ForceSingleConnection bool               `xml:"ForceSingleConnection" json:"forceSingleConnection" yaml:"forceSingleConnection"`
	DataStaleDetection    bool               `xml:"DataStaleDetection" json:"dataStaleDetection" yaml:"dataStaleDetection"`
	SpecialServerMode     bool               `xml:"SpecialServerMode" json:"specialServerMode" yaml:"specialServerMode"`
}

// Package wraps a single SFDLPackage element.
type Package struct {
	SFDLPackage SfdlPackage `xml:"SFDLPackage" json:"sfdlPackage" yaml:"sfdlPackage"`
}

// SfdlPackage describes one downloadable package.
// PackageName is the display name and is never encrypted.
type SfdlPackage struct {
	PackageName    string         `xml:"Packagename" json:"packageName" yaml:"packageName"`
	BulkFolderMode bool           `xml:"BulkFolderMode" json:"bulkFolderMode" yaml:"bulkFolderMode"`
	BulkFolderList BulkFolderList `xml:"BulkFolderList" json:"bulkFolderList" yaml:"bulkFolderList"`
}

// BulkFolderList wraps the bulk folder of a package.
type BulkFolderList struct {
	BulkFolder BulkFolder `xml:"BulkFolder" json:"bulkFolder" yaml:"bulkFolder"`
}

// BulkFolder locates the remote folder to download.
type BulkFolder struct {
	BulkFolderPath string `xml:"BulkFolderPath" json:"bulkFolderPath" yaml:"bulkFolderPath" sfdl:"sensitive"`
	PackageName    string `xml:"PackageName" json:"packageName" yaml:"packageName" sfdl:"sensitive"`
}

// New returns an empty, unencrypted descriptor with a single package.
func New() *File {
	return &File{
		XMLNSXsd:        DefaultXMLNSXsd,
		XMLNSXsi:        DefaultXMLNSXsi,
		SFDLFileVersion: DefaultVersion,
		ConnectionInfo: ConnectionInfo{
			Port:               DefaultPort,
			DataConnectionType: AutoPassive,
			DataType:           DataTypeBinary,
			CharacterEncoding:  EncodingStandard,
			EncryptionMode:     EncryptionNone,
			ListMethod:         DefaultListMethod,
			DefaultPath:        DefaultPath,
			DataStaleDetection: true,
		},
		Packages: []Package{
			{SFDLPackage: SfdlPackage{BulkFolderMode: true}},
		},
		MaxDownloadThreads: DefaultMaxDownloadThreads,
	}
}

// Clone returns a deep copy of f.
func (f *File) Clone() *File {
	clone := *f
	if f.Packages != nil {
		clone.Packages = make([]Package, len(f.Packages))
		copy(clone.Packages, f.Packages)
	}
	return &clone
}

// Redacted returns a copy of f with the connection password replaced by mask.
// The receiver is not modified.
func (f *File) Redacted(mask string) *File {
	clone := f.Clone()
	if clone.ConnectionInfo.Password != "" {
		clone.ConnectionInfo.Password = mask
	}
	return clone
}
