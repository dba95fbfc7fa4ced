package parser

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"
	"strings"
	"unicode"
)

// Trait names the generator understands
const (
	TraitDocumentation = "smithy.api#documentation"
	TraitRequired      = "smithy.api#required"
	TraitJSONName      = "smithy.api#jsonName"
	TraitEnum          = "smithy.api#enum"
	TraitEnumValue     = "smithy.api#enumValue"
	TraitError         = "smithy.api#error"
	TraitHTTPError     = "smithy.api#httpError"
	TraitHTTP          = "smithy.api#http"
	TraitHTTPLabel     = "smithy.api#httpLabel"
	TraitHTTPQuery     = "smithy.api#httpQuery"
	TraitHTTPHeader    = "smithy.api#httpHeader"
	TraitTitle         = "smithy.api#title"
	TraitAWSService    = "aws.api#service"
	TraitSigV4         = "aws.auth#sigv4"
)

// SmithyAPI represents the parsed Smithy API definition
type SmithyAPI struct {
	Smithy   string                  `json:"smithy"`
	Metadata map[string]interface{}  `json:"metadata"`
	Shapes   map[string]*SmithyShape `json:"shapes"`
}

// SmithyShape represents a shape in the Smithy model
type SmithyShape struct {
	Type       string                   `json:"type"`
	Version    string                   `json:"version,omitempty"`
	Members    map[string]*SmithyMember `json:"members,omitempty"`
	Member     *SmithyMember            `json:"member,omitempty"` // For list types
	Key        *SmithyMember            `json:"key,omitempty"`    // For map types
	Value      *SmithyMember            `json:"value,omitempty"`  // For map types
	Traits     map[string]interface{}   `json:"traits,omitempty"`
	Target     string                   `json:"target,omitempty"`
	Input      *SmithyRef               `json:"input,omitempty"`
	Output     *SmithyRef               `json:"output,omitempty"`
	Errors     []SmithyRef              `json:"errors,omitempty"`
	Operations []SmithyRef              `json:"operations,omitempty"`

	// MemberOrder lists Members keys in model order
	MemberOrder []string `json:"-"`
}

// UnmarshalJSON decodes a shape and records the order of its members
func (s *SmithyShape) UnmarshalJSON(data []byte) error {
	type alias SmithyShape
	var raw struct {
		alias
		RawMembers json.RawMessage `json:"members"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = SmithyShape(raw.alias)
	if len(raw.RawMembers) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw.RawMembers, &s.Members); err != nil {
		return err
	}
	order, err := objectKeys(raw.RawMembers)
	if err != nil {
		return err
	}
	s.MemberOrder = order
	return nil
}

func objectKeys(data json.RawMessage) ([]string, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	var keys []string
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v", tok)
		}
		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, nil
}

// SmithyMember represents a member of a structure
type SmithyMember struct {
	Target string                 `json:"target"`
	Traits map[string]interface{} `json:"traits,omitempty"`
}

// SmithyRef represents a reference to another shape
type SmithyRef struct {
	Target string `json:"target"`
}

// HTTPBinding is the value of the smithy.api#http trait
type HTTPBinding struct {
	Method string
	URI    string
	Code   int
}

// EnumMember is one value of an enum shape
type EnumMember struct {
	Name  string // Go constant suffix, e.g. "TlsPlaintext"
	Value string // Wire value, e.g. "TLS_PLAINTEXT"
}

// ParseSmithyJSON parses a Smithy JSON file and returns the API definition
func ParseSmithyJSON(filename string) (*SmithyAPI, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return Parse(file)
}

// Parse reads a Smithy JSON AST
func Parse(r io.Reader) (*SmithyAPI, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read model: %w", err)
	}

	var api SmithyAPI
	if err := json.Unmarshal(data, &api); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	if len(api.Shapes) == 0 {
		return nil, fmt.Errorf("model has no shapes")
	}
	return &api, nil
}

// GetServiceShape returns the service shape from the API definition
func (api *SmithyAPI) GetServiceShape() (*SmithyShape, string, error) {
	for name, shape := range api.Shapes {
		if shape.Type == "service" {
			return shape, name, nil
		}
	}
	return nil, "", fmt.Errorf("no service shape found")
}

// OperationNames returns the fully qualified operation names of the service, sorted
func (api *SmithyAPI) OperationNames() []string {
	serviceShape, _, err := api.GetServiceShape()
	if err != nil {
		return nil
	}

	var names []string
	for _, opRef := range serviceShape.Operations {
		if shape, exists := api.Shapes[opRef.Target]; exists && shape.Type == "operation" {
			names = append(names, opRef.Target)
		}
	}
	sort.Slice(names, func(i, j int) bool {
		return GetShapeName(names[i]) < GetShapeName(names[j])
	})
	return names
}

// ResolveShape follows the target chain to get the actual shape
func (api *SmithyAPI) ResolveShape(target string) (*SmithyShape, string) {
	shape, exists := api.Shapes[target]
	if !exists {
		return nil, ""
	}

	if shape.Type == "" && shape.Target != "" {
		return api.ResolveShape(shape.Target)
	}

	return shape, target
}

// ErrorShapes returns the names of every structure carrying the error trait, sorted
func (api *SmithyAPI) ErrorShapes() []string {
	var names []string
	for name, shape := range api.Shapes {
		if shape.Type == "structure" && shape.IsError() {
			names = append(names, name)
		}
	}
	sort.Slice(names, func(i, j int) bool {
		return GetShapeName(names[i]) < GetShapeName(names[j])
	})
	return names
}

// GetShapeName extracts the simple name from a fully qualified shape name
func GetShapeName(fqn string) string {
	parts := strings.Split(fqn, "#")
	if len(parts) > 1 {
		return parts[1]
	}
	return fqn
}

// IsRequired checks if a member is required based on its traits
func (m *SmithyMember) IsRequired() bool {
	if m.Traits == nil {
		return false
	}
	_, required := m.Traits[TraitRequired]
	return required
}

// GetJSONName returns the JSON field name for a member. The MSK model names
// members in camelCase and sets jsonName on each, so the member name is the fallback.
func (m *SmithyMember) GetJSONName(fieldName string) string {
	if name, ok := m.stringTrait(TraitJSONName); ok {
		return name
	}
	return fieldName
}

// Location reports where a request member is bound: "uri", "querystring",
// "header", or "" for the JSON body.
func (m *SmithyMember) Location() string {
	if m.Traits == nil {
		return ""
	}
	if _, ok := m.Traits[TraitHTTPLabel]; ok {
		return "uri"
	}
	if _, ok := m.Traits[TraitHTTPQuery]; ok {
		return "querystring"
	}
	if _, ok := m.Traits[TraitHTTPHeader]; ok {
		return "header"
	}
	return ""
}

// LocationName returns the name of the label, query parameter or header a
// member is bound to. Labels are lower camel case, see LabelName.
func (m *SmithyMember) LocationName(fieldName string) string {
	for _, trait := range []string{TraitHTTPQuery, TraitHTTPHeader} {
		if name, ok := m.stringTrait(trait); ok {
			return name
		}
	}
	return LabelName(fieldName)
}

var uriLabel = regexp.MustCompile(`\{([A-Za-z0-9_]+)(\+?)\}`)

// LabelName lower-cases the first letter of a label: "ClusterArn" becomes "clusterArn"
func LabelName(name string) string {
	if name == "" {
		return name
	}
	r := []rune(name)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

// NormalizeURI rewrites every {Label} of a URI pattern with LabelName
func NormalizeURI(uri string) string {
	return uriLabel.ReplaceAllStringFunc(uri, func(m string) string {
		sub := uriLabel.FindStringSubmatch(m)
		return "{" + LabelName(sub[1]) + sub[2] + "}"
	})
}

// Documentation returns the member documentation as plain text
func (m *SmithyMember) Documentation() string {
	doc, _ := m.stringTrait(TraitDocumentation)
	return CleanDocumentation(doc)
}

func (m *SmithyMember) stringTrait(name string) (string, bool) {
	if m.Traits == nil {
		return "", false
	}
	v, ok := m.Traits[name].(string)
	return v, ok
}

// IsEnum checks if a shape is an enum
func (s *SmithyShape) IsEnum() bool {
	if s.Type == "enum" {
		return true
	}
	if s.Traits == nil {
		return false
	}
	_, hasEnum := s.Traits[TraitEnum]
	return hasEnum
}

// GetEnumMembers returns the enum values in model order
func (s *SmithyShape) GetEnumMembers() []EnumMember {
	var members []EnumMember

	if s.Traits != nil {
		if enumList, ok := s.Traits[TraitEnum].([]interface{}); ok {
			for _, item := range enumList {
				if enumItem, ok := item.(map[string]interface{}); ok {
					if value, ok := enumItem["value"].(string); ok {
						members = append(members, EnumMember{Name: EnumConstName(value), Value: value})
					}
				}
			}
		}
	}

	if len(members) == 0 && s.Type == "enum" {
		names := s.MemberOrder
		if len(names) != len(s.Members) {
			names = names[:0:0]
			for name := range s.Members {
				names = append(names, name)
			}
			sort.Strings(names)
		}
		for _, name := range names {
			value := name
			if v, ok := s.Members[name].stringTrait(TraitEnumValue); ok {
				value = v
			}
			members = append(members, EnumMember{Name: EnumConstName(value), Value: value})
		}
	}

	return members
}

// IsError checks if a structure is a modeled error
func (s *SmithyShape) IsError() bool {
	if s.Traits == nil {
		return false
	}
	_, ok := s.Traits[TraitError]
	return ok
}

// GetErrorType returns "client" or "server"
func (s *SmithyShape) GetErrorType() string {
	if s.Traits != nil {
		if v, ok := s.Traits[TraitError].(string); ok {
			return v
		}
	}
	return "client"
}

// GetHTTPStatus returns the httpError status, or the protocol default for the fault
func (s *SmithyShape) GetHTTPStatus() int {
	if s.Traits != nil {
		if v, ok := s.Traits[TraitHTTPError].(float64); ok {
			return int(v)
		}
	}
	if s.GetErrorType() == "server" {
		return 500
	}
	return 400
}

// GetHTTPBinding returns the http trait of an operation
func (s *SmithyShape) GetHTTPBinding() (HTTPBinding, bool) {
	if s.Traits == nil {
		return HTTPBinding{}, false
	}
	raw, ok := s.Traits[TraitHTTP].(map[string]interface{})
	if !ok {
		return HTTPBinding{}, false
	}

	binding := HTTPBinding{Code: 200}
	binding.Method, _ = raw["method"].(string)
	uri, _ := raw["uri"].(string)
	binding.URI = NormalizeURI(uri)
	if code, ok := raw["code"].(float64); ok {
		binding.Code = int(code)
	}
	if binding.Method == "" || binding.URI == "" {
		return HTTPBinding{}, false
	}
	return binding, true
}

// Documentation returns the shape documentation as plain text
func (s *SmithyShape) Documentation() string {
	if s.Traits == nil {
		return ""
	}
	doc, _ := s.Traits[TraitDocumentation].(string)
	return CleanDocumentation(doc)
}

// StringTrait returns a string valued entry of an object trait, e.g. ("aws.api#service", "sdkId")
func (s *SmithyShape) StringTrait(trait, key string) string {
	if s.Traits == nil {
		return ""
	}
	raw, ok := s.Traits[trait].(map[string]interface{})
	if !ok {
		return ""
	}
	v, _ := raw[key].(string)
	return v
}

// IsPrimitive checks if a shape is a primitive type
func (s *SmithyShape) IsPrimitive() bool {
	switch s.Type {
	case "string", "boolean", "byte", "short", "integer", "long",
		"float", "double", "bigInteger", "bigDecimal", "timestamp",
		"blob", "document":
		return true
	}
	return false
}

// IsCollection checks if a shape is a collection type
func (s *SmithyShape) IsCollection() bool {
	return s.Type == "list" || s.Type == "set"
}

// IsMap checks if a shape is a map type
func (s *SmithyShape) IsMap() bool {
	return s.Type == "map"
}

var (
	htmlTag    = regexp.MustCompile(`<[^>]*>`)
	whitespace = regexp.MustCompile(`\s+`)
)

// CleanDocumentation strips HTML from a documentation trait and collapses whitespace
func CleanDocumentation(doc string) string {
	doc = htmlTag.ReplaceAllString(doc, " ")
	doc = strings.NewReplacer("&lt;", "<", "&gt;", ">", "&amp;", "&", "&quot;", `"`).Replace(doc)
	return strings.TrimSpace(whitespace.ReplaceAllString(doc, " "))
}

// FirstSentence returns doc up to and including its first period
func FirstSentence(doc string) string {
	if i := strings.Index(doc, ". "); i >= 0 {
		return doc[:i+1]
	}
	return doc
}

// EnumConstName converts a wire value like "TLS_PLAINTEXT" into "TlsPlaintext"
func EnumConstName(value string) string {
	var b strings.Builder
	for _, part := range strings.FieldsFunc(value, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}) {
		lower := strings.ToLower(part)
		b.WriteString(strings.ToUpper(lower[:1]) + lower[1:])
	}
	return b.String()
}
