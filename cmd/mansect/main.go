// Mansect is an interactive CLI that assembles DocBook manual sections
// from templates.
//
// Usage:
//
//	go build -o bin/mansect ./cmd/mansect
//	./bin/mansect templates check
//	./bin/mansect fill
package main

import (
	"os"

	"github.com/FxamarAboali/mansect/internal/mansect"
)

func main() {
	os.Exit(mansect.Main())
}
