// Command codegen generates the request, response, enum and error types of a
// REST-JSON AWS service from its Smithy JSON model.
//
//	go run ./cmd/codegen -model api-models/kafka.json -output internal/kafka/generated
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/nandemo-ya/mskgo/cmd/codegen/generator"
	"github.com/nandemo-ya/mskgo/cmd/codegen/parser"
)

func main() {
	var (
		modelPath   = flag.String("model", "api-models/kafka.json", "Path to Smithy model JSON file")
		outputDir   = flag.String("output", "internal/kafka/generated", "Output directory for generated code")
		packageName = flag.String("package", "generated", "Package name of the generated code")
		commonPkg   = flag.String("common", "github.com/nandemo-ya/mskgo/internal/common", "Import path of the package providing Timestamp")
	)
	flag.Parse()

	api, err := parser.ParseSmithyJSON(*modelPath)
	if err != nil {
		log.Fatalf("Failed to parse model: %v", err)
	}

	model, err := generator.Collect(api)
	if err != nil {
		log.Fatalf("Failed to collect shapes: %v", err)
	}

	if err := generator.New(*packageName, *outputDir, *commonPkg).Generate(api); err != nil {
		log.Fatalf("Failed to generate code: %v", err)
	}

	fmt.Printf("Generated %d operations, %d types, %d enums and %d errors to %s\n",
		len(model.Operations), len(model.Structs), len(model.Enums), len(model.Errors), *outputDir)
}
