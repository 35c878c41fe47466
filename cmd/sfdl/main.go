// Command sfdl encrypts, decrypts, inspects and converts SFDL descriptors.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/zoobzio/sfdl/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	app := &cli.App{Stdout: os.Stdout, Stderr: os.Stderr}
	code := app.Run(ctx, os.Args[1:])
	stop()
	os.Exit(code)
}
