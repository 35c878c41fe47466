package sfdl

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
)

// sensitiveField locates one value subject to field encryption.
// get and set assume the file has at least one package.
type sensitiveField struct {
	path string
	get  func(f *File) string
	set  func(f *File, v string)
}

// firstFolder returns the bulk folder of the first package.
//
// Only Packages[0] is encrypted. Files carrying more packages keep the
// remaining ones in plaintext, matching existing SFDL tooling.
func firstFolder(f *File) *BulkFolder {
	return &f.Packages[0].SFDLPackage.BulkFolderList.BulkFolder
}

// sensitiveFields is the fixed set of locations the transformer walks.
var sensitiveFields = []sensitiveField{
	{
		path: "Description",
		get:  func(f *File) string { return f.Description },
		set:  func(f *File, v string) { f.Description = v },
	},
	{
		path: "Uploader",
		get:  func(f *File) string { return f.Uploader },
		set:  func(f *File, v string) { f.Uploader = v },
	},
	{
		path: "ConnectionInfo.Host",
		get:  func(f *File) string { return f.ConnectionInfo.Host },
		set:  func(f *File, v string) { f.ConnectionInfo.Host = v },
	},
	{
		path: "ConnectionInfo.Username",
		get:  func(f *File) string { return f.ConnectionInfo.Username },
		set:  func(f *File, v string) { f.ConnectionInfo.Username = v },
	},
	{
		path: "ConnectionInfo.Password",
		get:  func(f *File) string { return f.ConnectionInfo.Password },
		set:  func(f *File, v string) { f.ConnectionInfo.Password = v },
	},
	{
		path: "ConnectionInfo.DefaultPath",
		get:  func(f *File) string { return f.ConnectionInfo.DefaultPath },
		set:  func(f *File, v string) { f.ConnectionInfo.DefaultPath = v },
	},
	{
		path: "Packages[0].SFDLPackage.BulkFolderList.BulkFolder.BulkFolderPath",
		get:  func(f *File) string { return firstFolder(f).BulkFolderPath },
		set:  func(f *File, v string) { firstFolder(f).BulkFolderPath = v },
	},
	{
		path: "Packages[0].SFDLPackage.BulkFolderList.BulkFolder.PackageName",
		get:  func(f *File) string { return firstFolder(f).PackageName },
		set:  func(f *File, v string) { firstFolder(f).PackageName = v },
	},
}

// Transformer applies field encryption to every sensitive field of a File
// and manages its Encrypted flag.
//
// A transform is all-or-nothing: new values are staged and written back only
// when every field succeeds. On failure the File is left untouched and the
// error is a *FieldError naming the field.
//
// A Transformer is safe for concurrent use, but a single File must not be
// transformed by two goroutines at once.
type Transformer struct {
	cipher      *Cipher
	parallelism int
}

// Option configures a Transformer.
type Option func(*Transformer)

// WithCipher sets the field cipher. The default draws IVs from crypto/rand.
func WithCipher(c *Cipher) Option {
	return func(t *Transformer) {
		if c != nil {
			t.cipher = c
		}
	}
}

// WithParallelism transforms up to n fields concurrently.
// Values below 2 transform sequentially.
func WithParallelism(n int) Option {
	return func(t *Transformer) {
		t.parallelism = n
	}
}

// NewTransformer creates a Transformer.
func NewTransformer(opts ...Option) *Transformer {
	t := &Transformer{
		cipher:      defaultCipher,
		parallelism: 1,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

var defaultTransformer = NewTransformer()

// Encrypt encrypts every sensitive field of f under password and marks f
// encrypted.
func (t *Transformer) Encrypt(ctx context.Context, f *File, password string) (err error) {
	if f.Encrypted {
		return ErrAlreadyEncrypted
	}
	if len(f.Packages) == 0 {
		return ErrNoPackages
	}

	start := time.Now()
	emitEncryptStart(ctx, len(sensitiveFields))
	defer func() {
		emitEncryptComplete(ctx, len(sensitiveFields), time.Since(start), err)
	}()

	values, err := t.transform(ctx, f, func(v string) (string, error) {
		return t.cipher.EncryptField(v, password)
	}, ErrEncrypt, "encrypt")
	if err != nil {
		return err
	}

	commit(f, values)
	f.Encrypted = true
	return nil
}

// Decrypt decrypts every sensitive field of f with password and marks f
// unencrypted.
func (t *Transformer) Decrypt(ctx context.Context, f *File, password string) (err error) {
	if !f.Encrypted {
		return ErrNotEncrypted
	}
	if len(f.Packages) == 0 {
		return ErrNoPackages
	}

	start := time.Now()
	emitDecryptStart(ctx, len(sensitiveFields))
	defer func() {
		emitDecryptComplete(ctx, len(sensitiveFields), time.Since(start), err)
	}()

	values, err := t.transform(ctx, f, func(v string) (string, error) {
		return t.cipher.DecryptField(v, password)
	}, ErrDecrypt, "decrypt")
	if err != nil {
		return err
	}

	commit(f, values)
	f.Encrypted = false
	return nil
}

// transform computes the new value of every sensitive field without
// modifying f.
func (t *Transformer) transform(ctx context.Context, f *File, fn func(string) (string, error), sentinel error, op string) ([]string, error) {
	values := make([]string, len(sensitiveFields))

	if t.parallelism < 2 {
		for i, sf := range sensitiveFields {
			v, err := fn(sf.get(f))
			if err != nil {
				return nil, newFieldError(sentinel, op, sf.path, err)
			}
			values[i] = v
		}
		return values, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(t.parallelism)
	for i, sf := range sensitiveFields {
		in := sf.get(f)
		g.Go(func() error {
			if gctx.Err() != nil {
				return nil
			}
			v, err := fn(in)
			if err != nil {
				return newFieldError(sentinel, op, sf.path, err)
			}
			values[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	// A cancelled parent context with no field error leaves values incomplete.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return values, nil
}

// commit writes staged values back to f.
func commit(f *File, values []string) {
	for i, sf := range sensitiveFields {
		sf.set(f, values[i])
	}
}

// Encrypt encrypts f in place with the default Transformer.
func (f *File) Encrypt(password string) error {
	return defaultTransformer.Encrypt(context.Background(), f, password)
}

// Decrypt decrypts f in place with the default Transformer.
func (f *File) Decrypt(password string) error {
	return defaultTransformer.Decrypt(context.Background(), f, password)
}
