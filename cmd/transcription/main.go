package main

import (
	"context"
	"os"

	"jamesfarrell.me/audio-to-text/internal/cli"
)

func main() {
	os.Exit(cli.Execute(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}
