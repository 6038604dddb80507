// diamondctl prices a diamond from the terminal using the same artifact loader as the server.
//
// Usage:
//
//	diamondctl predict [--artifact=<path>] [--carat=0.7 --cut=Ideal ...] [--preview]
//	diamondctl inspect [--artifact=<path>] [--codecs=msgpack,json]
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/afero"

	"diamond-price-service/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := newRootCmd(cfg, afero.NewOsFs()).Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
