// Command superelliptify applies the superellipse handle transform to glyphs
// of a font and writes the result as SVG.
//
// Parameters come from, in increasing priority, the built-in defaults, a
// TOML configuration file, command line flags and a custom parameter string:
//
//	superelliptify --font Foo.otf --text OQ0 --tension 13 --scale quadratic -o out.svg
//	superelliptify --font Foo.otf --param "Superelliptify; tension:20; distribution:smart"
//	superelliptify param --config superelliptify.toml
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
