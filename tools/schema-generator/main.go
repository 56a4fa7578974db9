// Command schema-generator writes the catalog JSON Schema that is embedded
// for validation. With --check it fails when the file on disk is stale.
package main

import (
	"bytes"
	"log"
	"os"

	"github.com/grovetools/cardvice/pkg/catalog"
	"github.com/spf13/pflag"
)

func main() {
	output := pflag.StringP("output", "o", "schema/catalog.schema.json", "Schema file to write")
	check := pflag.Bool("check", false, "Compare with the existing file instead of writing")
	pflag.Parse()

	generated, err := catalog.GenerateSchema()
	if err != nil {
		log.Fatalf("generating schema: %v", err)
	}
	generated = append(generated, '\n')

	if *check {
		current, err := os.ReadFile(*output)
		if err != nil {
			log.Fatalf("reading %s: %v", *output, err)
		}
		if !bytes.Equal(current, generated) {
			log.Fatalf("%s is out of date; run go generate ./schema", *output)
		}
		return
	}

	if err := os.WriteFile(*output, generated, 0644); err != nil {
		log.Fatalf("writing %s: %v", *output, err)
	}
	log.Printf("wrote %s", *output)
}
