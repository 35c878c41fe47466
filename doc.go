// Package sfdl parses, writes, and encrypts SFDL download descriptors.
//
// An SFDL file is an XML container describing a remote transfer job: the
// FTP connection, its credentials, and the package to fetch. Selected
// string fields are encrypted in place so the descriptor can be shared
// without exposing the server.
//
// # Basic Usage
//
//	f, err := sfdl.Open("release.sfdl")
//	if err != nil {
//	    return err
//	}
//
//	if err := f.Decrypt(password); err != nil {
//	    if errors.Is(err, sfdl.ErrInvalidPassword) {
//	        // ask again
//	    }
//	    return err
//	}
//
//	return f.Write("release.plain.sfdl")
//
// # Field Encryption
//
// Each sensitive value is encrypted independently:
//
//	key   = MD5(password)
//	iv    = 16 random bytes
//	value = base64(iv || AES-128-CBC(key, iv, PKCS7(plaintext)))
//
// This layout is fixed by existing SFDL tooling. MD5 is not a password
// hashing function and CBC carries no authentication tag; the format offers
// confidentiality against casual inspection only. A wrong password surfaces
// as ErrInvalidPassword when padding fails to validate, which is likely but
// not guaranteed.
//
// The sensitive fields are Description, Uploader, the connection Host,
// Username, Password and DefaultPath, and the BulkFolderPath and inner
// PackageName of the first package. SensitiveFields lists them.
//
// # Encrypted Flag
//
// File.Encrypted records which representation the sensitive fields hold.
// Encrypt requires it to be false and Decrypt requires it to be true. Both
// are all-or-nothing: the file is only modified when every field succeeds.
//
// # Codecs
//
// XML is the native format. Other codecs register themselves when their
// package is imported and can be used to inspect or convert descriptors:
//
//	import _ "github.com/zoobzio/sfdl/yaml"
//
//	c, _ := sfdl.LookupCodec("yaml")
//	out, _ := f.Encode(c)
//
// # Signals
//
// Encrypt, Decrypt, decoding, and encoding emit capitan signals carrying
// field counts, sizes, durations, and errors. Errors are always returned to
// the caller as well.
package sfdl
