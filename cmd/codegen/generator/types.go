package generator

import (
	"fmt"
	"sort"
	"strings"
	"text/template"
	"unicode"

	"github.com/nandemo-ya/mskgo/cmd/codegen/parser"
)

// Model is the generator's view of a Smithy service
type Model struct {
	ServiceID      string
	SigningName    string
	EndpointPrefix string
	APIVersion     string
	Title          string
	UsesTimestamp  bool

	Structs    []StructInfo
	Enums      []EnumInfo
	Errors     []StructInfo
	Operations []OperationInfo
}

// StructInfo holds a generated structure
type StructInfo struct {
	Name       string
	Fields     []FieldInfo
	HTTPStatus int
	Fault      string
}

// FieldInfo holds information about a struct field
type FieldInfo struct {
	Name   string
	GoType string
	Tag    string
}

// EnumInfo holds a generated enum type
type EnumInfo struct {
	Name    string
	Members []parser.EnumMember
}

// OperationInfo holds one service operation
type OperationInfo struct {
	Name        string
	Method      string
	Path        string
	SuccessCode int
	Doc         string
}

type collector struct {
	api     *parser.SmithyAPI
	renames map[string]string
	model   *Model
}

// Collect walks the service closure of api and builds the Model. Operation
// inputs and outputs are renamed to <Operation>Request and <Operation>Response.
func Collect(api *parser.SmithyAPI) (*Model, error) {
	service, serviceName, err := api.GetServiceShape()
	if err != nil {
		return nil, err
	}

	c := &collector{
		api:     api,
		renames: map[string]string{},
		model: &Model{
			ServiceID:      service.StringTrait(parser.TraitAWSService, "sdkId"),
			SigningName:    service.StringTrait(parser.TraitSigV4, "name"),
			EndpointPrefix: service.StringTrait(parser.TraitAWSService, "endpointPrefix"),
			APIVersion:     service.Version,
			Title:          titleOf(service, serviceName),
		},
	}
	if c.model.ServiceID == "" {
		c.model.ServiceID = parser.GetShapeName(serviceName)
	}
	if c.model.SigningName == "" {
		c.model.SigningName = strings.ToLower(c.model.ServiceID)
	}
	if c.model.EndpointPrefix == "" {
		c.model.EndpointPrefix = c.model.SigningName
	}

	opNames := api.OperationNames()
	if len(opNames) == 0 {
		return nil, fmt.Errorf("service %s has no operations", serviceName)
	}

	for _, fqn := range opNames {
		op := api.Shapes[fqn]
		name := parser.GetShapeName(fqn)
		if op.Input != nil && op.Input.Target != "smithy.api#Unit" {
			c.renames[op.Input.Target] = name + "Request"
		}
		if op.Output != nil && op.Output.Target != "smithy.api#Unit" {
			c.renames[op.Output.Target] = name + "Response"
		}
	}

	seen := map[string]bool{}
	for _, fqn := range opNames {
		op := api.Shapes[fqn]
		name := parser.GetShapeName(fqn)

		binding, ok := op.GetHTTPBinding()
		if !ok {
			return nil, fmt.Errorf("operation %s has no http trait", name)
		}
		c.model.Operations = append(c.model.Operations, OperationInfo{
			Name:        name,
			Method:      binding.Method,
			Path:        binding.URI,
			SuccessCode: binding.Code,
			Doc:         docComment(name, op.Documentation()),
		})

		for i, ref := range []*parser.SmithyRef{op.Input, op.Output} {
			if ref == nil || ref.Target == "smithy.api#Unit" {
				suffix := "Request"
				if i == 1 {
					suffix = "Response"
				}
				c.model.Structs = append(c.model.Structs, StructInfo{Name: name + suffix})
				continue
			}
			if err := c.visit(ref.Target, seen); err != nil {
				return nil, err
			}
		}
		for _, ref := range op.Errors {
			if err := c.visit(ref.Target, seen); err != nil {
				return nil, err
			}
		}
	}
	for _, ref := range service.Errors {
		if err := c.visit(ref.Target, seen); err != nil {
			return nil, err
		}
	}

	sort.Slice(c.model.Structs, func(i, j int) bool { return c.model.Structs[i].Name < c.model.Structs[j].Name })
	sort.Slice(c.model.Enums, func(i, j int) bool { return c.model.Enums[i].Name < c.model.Enums[j].Name })
	sort.Slice(c.model.Errors, func(i, j int) bool { return c.model.Errors[i].Name < c.model.Errors[j].Name })
	return c.model, nil
}

// visit collects target and every aggregate shape it references
func (c *collector) visit(target string, seen map[string]bool) error {
	if seen[target] || strings.HasPrefix(target, "smithy.api#") {
		return nil
	}
	seen[target] = true

	shape, _ := c.api.ResolveShape(target)
	if shape == nil {
		return fmt.Errorf("shape %s not found", target)
	}

	switch {
	case shape.IsEnum():
		c.model.Enums = append(c.model.Enums, EnumInfo{
			Name:    parser.GetShapeName(target),
			Members: shape.GetEnumMembers(),
		})
	case shape.Type == "structure":
		info := StructInfo{Name: c.typeName(target)}
		names := make([]string, 0, len(shape.Members))
		for name := range shape.Members {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			member := shape.Members[name]
			field, err := c.field(name, member, seen)
			if err != nil {
				return fmt.Errorf("%s.%s: %w", info.Name, name, err)
			}
			info.Fields = append(info.Fields, field)
		}
		if shape.IsError() {
			info.HTTPStatus = shape.GetHTTPStatus()
			info.Fault = shape.GetErrorType()
			c.model.Errors = append(c.model.Errors, info)
		} else {
			c.model.Structs = append(c.model.Structs, info)
		}
	case shape.IsCollection():
		if shape.Member != nil {
			return c.visit(shape.Member.Target, seen)
		}
	case shape.IsMap():
		if shape.Value != nil {
			return c.visit(shape.Value.Target, seen)
		}
	}
	return nil
}

func (c *collector) field(name string, member *parser.SmithyMember, seen map[string]bool) (FieldInfo, error) {
	if err := c.visit(member.Target, seen); err != nil {
		return FieldInfo{}, err
	}
	goType, err := c.goType(member.Target, true)
	if err != nil {
		return FieldInfo{}, err
	}

	var tag []string
	switch loc := member.Location(); loc {
	case "":
		tag = append(tag, fmt.Sprintf(`json:"%s,omitempty"`, member.GetJSONName(name)))
	default:
		tag = append(tag, `json:"-"`,
			fmt.Sprintf(`location:"%s"`, loc),
			fmt.Sprintf(`locationName:"%s"`, member.LocationName(name)))
	}
	if member.IsRequired() {
		tag = append(tag, `required:"true"`)
	}

	return FieldInfo{Name: exportName(name), GoType: goType, Tag: strings.Join(tag, " ")}, nil
}

// goType maps a shape to its Go type. Scalars and structures are pointers
// at member level; enums, slices and maps are values.
func (c *collector) goType(target string, member bool) (string, error) {
	star := ""
	if member {
		star = "*"
	}

	switch target {
	case "smithy.api#String":
		return star + "string", nil
	case "smithy.api#Boolean", "smithy.api#PrimitiveBoolean":
		return star + "bool", nil
	case "smithy.api#Integer", "smithy.api#PrimitiveInteger":
		return star + "int32", nil
	case "smithy.api#Long", "smithy.api#PrimitiveLong":
		return star + "int64", nil
	case "smithy.api#Double", "smithy.api#PrimitiveDouble":
		return star + "float64", nil
	case "smithy.api#Timestamp":
		c.model.UsesTimestamp = true
		return star + "common.Timestamp", nil
	case "smithy.api#Blob":
		return "[]byte", nil
	}

	shape, _ := c.api.ResolveShape(target)
	if shape == nil {
		return "", fmt.Errorf("shape %s not found", target)
	}
	if shape.IsEnum() {
		return parser.GetShapeName(target), nil
	}

	switch shape.Type {
	case "string":
		return star + "string", nil
	case "boolean":
		return star + "bool", nil
	case "integer":
		return star + "int32", nil
	case "long":
		return star + "int64", nil
	case "double", "float":
		return star + "float64", nil
	case "timestamp":
		c.model.UsesTimestamp = true
		return star + "common.Timestamp", nil
	case "blob":
		return "[]byte", nil
	case "structure":
		return star + c.typeName(target), nil
	case "list", "set":
		elem, err := c.goType(shape.Member.Target, false)
		if err != nil {
			return "", err
		}
		return "[]" + elem, nil
	case "map":
		elem, err := c.goType(shape.Value.Target, false)
		if err != nil {
			return "", err
		}
		return "map[string]" + elem, nil
	}
	return "", fmt.Errorf("unsupported shape type %q for %s", shape.Type, target)
}

func (c *collector) typeName(target string) string {
	if name, ok := c.renames[target]; ok {
		return name
	}
	return parser.GetShapeName(target)
}

func exportName(name string) string {
	if name == "" {
		return name
	}
	r := []rune(name)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// titleOf prefers the service's cloudFormationName ("MSK") over its title
func titleOf(service *parser.SmithyShape, name string) string {
	if short := service.StringTrait(parser.TraitAWSService, "cloudFormationName"); short != "" {
		return "Amazon " + short + " control-plane"
	}
	if service.Traits != nil {
		if title, ok := service.Traits[parser.TraitTitle].(string); ok {
			return title
		}
	}
	return parser.GetShapeName(name)
}

// docComment turns "Creates a new MSK cluster." into "CreateCluster creates a new MSK cluster."
func docComment(name, doc string) string {
	doc = parser.FirstSentence(doc)
	if doc == "" {
		return name + " invokes the " + name + " operation."
	}
	r := []rune(doc)
	if len(r) > 1 && !unicode.IsUpper(r[1]) {
		r[0] = unicode.ToLower(r[0])
	}
	return name + " " + string(r)
}

var funcs = template.FuncMap{
	"quote": func(s string) string { return fmt.Sprintf("%q", s) },
}

var typesTemplate = template.Must(template.New("types").Funcs(funcs).Parse(`package {{.Package}}
{{if .UsesTimestamp}}
import (
	"{{.CommonPkg}}"
)
{{end}}
// Unit represents an empty response
type Unit = struct{}
{{range .Structs}}
// {{.Name}} represents the {{.Name}} structure
{{- if .Fields}}
type {{.Name}} struct {
{{- range .Fields}}
	{{.Name}} {{.GoType}} ` + "`{{.Tag}}`" + `
{{- end}}
}
{{- else}}
type {{.Name}} struct{}
{{- end}}
{{end}}`))

var enumsTemplate = template.Must(template.New("enums").Funcs(funcs).Parse(`package {{.Package}}
{{range $e := .Enums}}
// {{$e.Name}} represents the {{$e.Name}} enum type
type {{$e.Name}} string

// Enum values for {{$e.Name}}
const (
{{- range $e.Members}}
	{{$e.Name}}{{.Name}} {{$e.Name}} = {{quote .Value}}
{{- end}}
)

// Values returns all known values for {{$e.Name}}. Note that this can be expanded in the
// future, and so it is only as up to date as the client.
func ({{$e.Name}}) Values() []{{$e.Name}} {
	return []{{$e.Name}}{
{{- range $e.Members}}
		{{quote .Value}},
{{- end}}
	}
}

// Parse{{$e.Name}} returns the {{$e.Name}} constant whose wire value is exactly value.
func Parse{{$e.Name}}(value string) ({{$e.Name}}, error) {
	for _, v := range {{$e.Name}}("").Values() {
		if string(v) == value {
			return v, nil
		}
	}
	return "", &InvalidEnumValueError{Type: {{quote $e.Name}}, Value: value}
}
{{end}}`))

var errorsTemplate = template.Must(template.New("errors").Funcs(funcs).Parse(`package {{.Package}}

import (
	"fmt"

	"github.com/aws/smithy-go"
)
{{range .Errors}}
// {{.Name}} represents the {{.Name}} structure
type {{.Name}} struct {
{{- range .Fields}}
	{{.Name}} {{.GoType}} ` + "`{{.Tag}}`" + `
{{- end}}
}

// Error implements the error interface for {{.Name}}
func (e *{{.Name}}) Error() string {
	if e.Message == nil {
		return "{{.Name}}: AWS {{.Fault}} error (HTTP {{.HTTPStatus}})"
	}
	return fmt.Sprintf("{{.Name}}: %s", *e.Message)
}

// ErrorCode returns the AWS error code
func (e *{{.Name}}) ErrorCode() string {
	return {{quote .Name}}
}

// ErrorMessage returns the service supplied message
func (e *{{.Name}}) ErrorMessage() string {
	if e.Message == nil {
		return ""
	}
	return *e.Message
}

// ErrorFault indicates whether this is a client or server error
func (e *{{.Name}}) ErrorFault() smithy.ErrorFault {
{{- if eq .Fault "server"}}
	return smithy.FaultServer
{{- else}}
	return smithy.FaultClient
{{- end}}
}

// HTTPStatusCode returns the status the service answers with for this error
func (e *{{.Name}}) HTTPStatusCode() int {
	return {{.HTTPStatus}}
}
{{end}}
// NewError returns the modeled error for code, or nil when code is not a modeled error.
func NewError(code string, message, invalidParameter *string) error {
	switch code {
{{- range .Errors}}
	case {{quote .Name}}:
		return &{{.Name}}{Message: message, InvalidParameter: invalidParameter}
{{- end}}
	default:
		return nil
	}
}
`))

var operationsTemplate = template.Must(template.New("operations").Funcs(funcs).Parse(`package {{.Package}}

import (
	"context"
)

const (
	// ServiceID is the service identifier used in error messages and metrics.
	ServiceID = {{quote .ServiceID}}
	// SigningName is the SigV4 signing name of the service.
	SigningName = {{quote .SigningName}}
	// EndpointPrefix is the host prefix of the regional endpoint.
	EndpointPrefix = {{quote .EndpointPrefix}}
	// APIVersion is the model version the types were generated from.
	APIVersion = {{quote .APIVersion}}
)

// HTTPBinding describes how an operation maps onto the REST-JSON protocol.
type HTTPBinding struct {
	Method      string
	Path        string
	SuccessCode int
}

// Bindings maps operation names to their HTTP bindings.
var Bindings = map[string]HTTPBinding{
{{- range .Operations}}
	{{quote .Name}}: {Method: {{quote .Method}}, Path: {{quote .Path}}, SuccessCode: {{.SuccessCode}}},
{{- end}}
}

// {{.ServiceID}}API is the interface for the {{.Title}} API
type {{.ServiceID}}API interface {
{{- range $i, $op := .Operations}}
{{- if $i}}
{{end}}
	// {{$op.Doc}}
	{{$op.Name}}(ctx context.Context, input *{{$op.Name}}Request) (*{{$op.Name}}Response, error)
{{- end}}
}
`))
