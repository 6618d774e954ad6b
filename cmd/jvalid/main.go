// Program jvalid reports whether a file contains a valid JSON text.
//
// Usage:
//
//	jvalid [-v] <path>
//
// The path "-" reads standard input. Files ending in ".gz" or ".zst" are
// decompressed before checking. On success jvalid prints a confirmation and
// exits with status 0; otherwise it prints a diagnostic to stderr and exits
// with status 1.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/creachadair/jvalid"
	"github.com/creachadair/jvalid/internal/input"
)

var verbose = flag.Bool("v", false, "Log each token read by the recognizer")

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [-v] <path>\n\nOptions:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("jvalid: ")

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	src, err := input.ReadFile(flag.Arg(0))
	if err != nil {
		log.Fatalf("Reading input: %v", err)
	}

	r := jvalid.NewRecognizer(jvalid.NewScanner(src))
	if *verbose {
		r.SetTrace(func(tok jvalid.Token) {
			log.Printf("line %d offset %d: %v", tok.Line, tok.Span.Pos, tok)
		})
	}
	if err := r.Parse(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println("JSON parsed successfully.")
}
