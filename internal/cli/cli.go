// Package cli implements the sfdl command.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/zoobzio/sfdl"
	_ "github.com/zoobzio/sfdl/bson"
	_ "github.com/zoobzio/sfdl/json"
	_ "github.com/zoobzio/sfdl/msgpack"
	_ "github.com/zoobzio/sfdl/yaml"

	"github.com/zoobzio/sfdl/internal/config"
	"github.com/zoobzio/sfdl/internal/logger"
)

// Exit codes returned by Run.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// App runs sfdl commands.
type App struct {
	Stdout io.Writer
	Stderr io.Writer

	// Environ replaces the process environment when non-nil.
	Environ map[string]string
}

// runner carries the state of one command invocation.
type runner struct {
	cfg    *config.Config
	stdout io.Writer
}

type command struct {
	name     string
	args     []string
	summary  string
	password bool
	run      func(ctx context.Context, r *runner, args []string) error
}

var commands = []command{
	{
		name:     "encrypt",
		args:     []string{"in", "out"},
		summary:  "encrypt the sensitive fields of a descriptor",
		password: true,
		run:      runEncrypt,
	},
	{
		name:     "decrypt",
		args:     []string{"in", "out"},
		summary:  "decrypt the sensitive fields of a descriptor",
		password: true,
		run:      runDecrypt,
	},
	{
		name:    "show",
		args:    []string{"in"},
		summary: "print a descriptor, decrypting it when -password is given",
		run:     runShow,
	},
	{
		name:    "convert",
		args:    []string{"in", "out"},
		summary: "re-encode a descriptor in -format",
		run:     runConvert,
	},
	{
		name:    "fields",
		summary: "list the sensitive field paths",
		run:     runFields,
	},
}

func lookupCommand(name string) (command, bool) {
	for _, c := range commands {
		if c.name == name {
			return c, true
		}
	}
	return command{}, false
}

// Run executes the command named by args[0] and returns the exit code.
func (a *App) Run(ctx context.Context, args []string) int {
	if len(args) == 0 {
		a.usage()
		return ExitUsage
	}
	if args[0] == "help" || args[0] == "-h" || args[0] == "-help" || args[0] == "--help" {
		a.usage()
		return ExitOK
	}

	cmd, ok := lookupCommand(args[0])
	if !ok {
		fmt.Fprintf(a.Stderr, "sfdl: unknown command %q\n\n", args[0])
		a.usage()
		return ExitUsage
	}

	cfg, err := config.FromEnv(a.Environ)
	if err != nil {
		fmt.Fprintf(a.Stderr, "sfdl %s: %v\n", cmd.name, err)
		return ExitUsage
	}

	fs := flag.NewFlagSet("sfdl "+cmd.name, flag.ContinueOnError)
	fs.SetOutput(a.Stderr)
	fs.Usage = func() {
		fmt.Fprintf(a.Stderr, "usage: sfdl %s [flags] %s\n\n%s\n\nflags:\n", cmd.name, argList(cmd.args), cmd.summary)
		fs.PrintDefaults()
	}
	cfg.RegisterFlags(fs)
	if err := fs.Parse(args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitOK
		}
		return ExitUsage
	}
	if fs.NArg() != len(cmd.args) {
		fs.Usage()
		return ExitUsage
	}

	if err := cfg.Validate(cmd.password); err != nil {
		fmt.Fprintf(a.Stderr, "sfdl %s: %v\n", cmd.name, err)
		return ExitUsage
	}

	log, err := logger.NewLogger("sfdl", cfg.LogLevel, a.Stderr)
	if err != nil {
		fmt.Fprintf(a.Stderr, "sfdl %s: %v\n", cmd.name, err)
		return ExitUsage
	}
	log.Logger = log.With().Str("command", cmd.name).Logger()

	r := &runner{cfg: cfg, stdout: a.Stdout}
	start := time.Now()
	if err := cmd.run(log.WithContext(ctx), r, fs.Args()); err != nil {
		log.Debug().Err(err).Dur("duration", time.Since(start)).Msg("command failed")
		fmt.Fprintf(a.Stderr, "sfdl %s: %v\n", cmd.name, err)
		return ExitFailure
	}
	log.Debug().Dur("duration", time.Since(start)).Msg("command finished")
	return ExitOK
}

func (a *App) usage() {
	var b strings.Builder
	b.WriteString("usage: sfdl <command> [flags] [args]\n\ncommands:\n")
	for _, c := range commands {
		fmt.Fprintf(&b, "  %-8s %-10s %s\n", c.name, argList(c.args), c.summary)
	}
	b.WriteString("\nRun 'sfdl <command> -h' for the flags of a command.\n")
	fmt.Fprint(a.Stderr, b.String())
}

func argList(args []string) string {
	out := make([]string, len(args))
	for i, a := range args {
		out[i] = "<" + a + ">"
	}
	return strings.Join(out, " ")
}

// extCodecs maps file extensions to registered codec names. Anything else
// is read as SFDL XML.
var extCodecs = map[string]string{
	".json":    "json",
	".yaml":    "yaml",
	".yml":     "yaml",
	".msgpack": "msgpack",
	".mpk":     "msgpack",
	".bson":    "bson",
}

// codecForPath picks the input codec from the file extension.
func codecForPath(path string) sfdl.Codec {
	if name, ok := extCodecs[strings.ToLower(filepath.Ext(path))]; ok {
		if c, err := sfdl.LookupCodec(name); err == nil {
			return c
		}
	}
	return sfdl.XML()
}

// load reads and decodes the descriptor at path.
func load(path string) (*sfdl.File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &sfdl.IOError{Op: "open", Path: path, Err: err}
	}
	return sfdl.Decode(codecForPath(path), data)
}

func (r *runner) transformer() *sfdl.Transformer {
	return sfdl.NewTransformer(sfdl.WithParallelism(r.cfg.Parallelism))
}

func runEncrypt(ctx context.Context, r *runner, args []string) error {
	in, out := args[0], args[1]
	f, err := load(in)
	if err != nil {
		return err
	}
	if err := r.transformer().Encrypt(ctx, f, r.cfg.Password); err != nil {
		return err
	}
	return r.write(ctx, f, out, "descriptor encrypted")
}

func runDecrypt(ctx context.Context, r *runner, args []string) error {
	in, out := args[0], args[1]
	f, err := load(in)
	if err != nil {
		return err
	}
	if err := r.transformer().Decrypt(ctx, f, r.cfg.Password); err != nil {
		return err
	}
	return r.write(ctx, f, out, "descriptor decrypted")
}

func runConvert(ctx context.Context, r *runner, args []string) error {
	in, out := args[0], args[1]
	f, err := load(in)
	if err != nil {
		return err
	}
	return r.write(ctx, f, out, "descriptor converted")
}

// write encodes f in the configured format and writes it to path.
func (r *runner) write(ctx context.Context, f *sfdl.File, path, msg string) error {
	c, err := r.cfg.Codec()
	if err != nil {
		return err
	}
	if err := f.WriteCodec(c, path); err != nil {
		return err
	}
	logger.FromContext(ctx).Info().
		Str("path", path).
		Str("content_type", c.ContentType()).
		Bool("encrypted", f.Encrypted).
		Msg(msg)
	return nil
}

func runShow(ctx context.Context, r *runner, args []string) error {
	f, err := load(args[0])
	if err != nil {
		return err
	}

	if f.Encrypted && r.cfg.Password != "" {
		if err := r.transformer().Decrypt(ctx, f, r.cfg.Password); err != nil {
			return err
		}
	}
	if !r.cfg.Reveal {
		f = f.Masked()
	}

	c, err := r.cfg.Codec()
	if err != nil {
		return err
	}
	data, err := f.Encode(c)
	if err != nil {
		return err
	}
	if _, err := r.stdout.Write(data); err != nil {
		return &sfdl.IOError{Op: "write", Err: err}
	}
	return nil
}

func runFields(_ context.Context, r *runner, _ []string) error {
	for _, path := range sfdl.SensitiveFields() {
		if _, err := fmt.Fprintln(r.stdout, path); err != nil {
			return &sfdl.IOError{Op: "write", Err: err}
		}
	}
	return nil
}
