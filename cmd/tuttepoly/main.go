// Command tuttepoly computes the Tutte polynomial of each graph in an
// input batch, along with the chromatic or flow polynomial when
// requested, per SPEC_FULL.md §8.
package main

import (
	"os"

	"github.com/adamnemecek/TuttePolynomial/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
