package generator

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"text/template"

	"github.com/nandemo-ya/mskgo/cmd/codegen/parser"
)

const header = "// Code generated by cmd/codegen. DO NOT EDIT.\n\n"

// Generator writes the Go package for one Smithy service
type Generator struct {
	packageName string
	outputDir   string
	commonPkg   string
}

// New creates a new code generator. commonPkg is the import path of the
// package providing common.Timestamp.
func New(packageName, outputDir, commonPkg string) *Generator {
	return &Generator{
		packageName: packageName,
		outputDir:   outputDir,
		commonPkg:   commonPkg,
	}
}

// Generate writes types.go, enums.go, errors.go and operations.go
func (g *Generator) Generate(api *parser.SmithyAPI) error {
	model, err := Collect(api)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(g.outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	files := []struct {
		name string
		tmpl *template.Template
	}{
		{"types.go", typesTemplate},
		{"enums.go", enumsTemplate},
		{"errors.go", errorsTemplate},
		{"operations.go", operationsTemplate},
	}
	for _, f := range files {
		content, err := g.render(f.tmpl, model)
		if err != nil {
			return fmt.Errorf("%s: %w", f.name, err)
		}
		if err := g.writeFormattedFile(f.name, content); err != nil {
			return fmt.Errorf("%s: %w", f.name, err)
		}
	}
	return nil
}

// Render executes tmpl against model and returns gofmt'ed source
func (g *Generator) Render(tmpl *template.Template, model *Model) ([]byte, error) {
	content, err := g.render(tmpl, model)
	if err != nil {
		return nil, err
	}
	formatted, err := format.Source(content)
	if err != nil {
		return content, fmt.Errorf("failed to format Go code: %w", err)
	}
	return formatted, nil
}

func (g *Generator) render(tmpl *template.Template, model *Model) ([]byte, error) {
	data := struct {
		*Model
		Package   string
		CommonPkg string
	}{model, g.packageName, g.commonPkg}
	return g.executeTemplate(tmpl, data)
}

// writeFormattedFile writes formatted Go code to a file
func (g *Generator) writeFormattedFile(filename string, content []byte) error {
	formatted, err := format.Source(content)
	if err != nil {
		// If formatting fails, write unformatted for debugging
		if writeErr := os.WriteFile(filepath.Join(g.outputDir, filename+".unformatted"), content, 0644); writeErr != nil {
			return fmt.Errorf("failed to write unformatted file: %w", writeErr)
		}
		return fmt.Errorf("failed to format Go code: %w (unformatted version saved)", err)
	}

	fullPath := filepath.Join(g.outputDir, filename)
	if err := os.WriteFile(fullPath, formatted, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}

// executeTemplate executes a template with the given data
func (g *Generator) executeTemplate(tmpl *template.Template, data interface{}) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(header)
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.Bytes(), nil
}
