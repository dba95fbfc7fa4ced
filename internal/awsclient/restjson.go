package awsclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/aws/smithy-go/encoding/httpbinding"
)

// BuildRequest serializes input as a REST-JSON request. Fields tagged
// location:"uri" fill the {label} segments of pathPattern, fields tagged
// location:"querystring" become query parameters, and everything else is the
// JSON body of POST, PUT and PATCH requests.
func BuildRequest(ctx context.Context, endpoint, method, pathPattern string, input interface{}) (*http.Request, error) {
	v := indirect(reflect.ValueOf(input))
	if v.IsValid() && v.Kind() != reflect.Struct {
		return nil, fmt.Errorf("input must be a struct, got %s", v.Kind())
	}

	path := pathPattern
	query := map[string][]string{}
	if v.IsValid() {
		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}
			loc := f.Tag.Get("location")
			if loc == "" {
				continue
			}
			name := f.Tag.Get("locationName")
			if name == "" {
				name = f.Name
			}
			fv := v.Field(i)

			switch loc {
			case "uri":
				s, ok := scalarString(fv)
				if !ok || s == "" {
					return nil, fmt.Errorf("path parameter %s must not be empty", name)
				}
				path = strings.ReplaceAll(path, "{"+name+"}", httpbinding.EscapePath(s, true))
			case "querystring":
				if fv.Kind() == reflect.Slice {
					for j := 0; j < fv.Len(); j++ {
						if s, ok := scalarString(fv.Index(j)); ok {
							query[name] = append(query[name], s)
						}
					}
					continue
				}
				if s, ok := scalarString(fv); ok {
					query[name] = []string{s}
				}
			}
		}
	}
	if strings.ContainsAny(path, "{}") {
		return nil, fmt.Errorf("unresolved path parameters in %s", path)
	}

	var body io.Reader
	hasBody := method == http.MethodPost || method == http.MethodPut || method == http.MethodPatch
	if hasBody {
		payload := []byte("{}")
		if v.IsValid() {
			var err error
			payload, err = json.Marshal(v.Interface())
			if err != nil {
				return nil, fmt.Errorf("failed to marshal request: %w", err)
			}
		}
		body = bytes.NewReader(payload)
	}

	u := strings.TrimSuffix(endpoint, "/") + path
	if len(query) > 0 {
		u += "?" + encodeQuery(query)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if hasBody {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	return req, nil
}

// ValidateRequired reports every nil or empty member tagged required:"true",
// walking into nested structs, slices and maps of structs.
func ValidateRequired(input interface{}) error {
	rv := reflect.ValueOf(input)
	if !rv.IsValid() {
		return nil
	}
	if rv.Kind() == reflect.Ptr && rv.IsNil() {
		rv = reflect.New(rv.Type().Elem())
	}
	v := indirect(rv)
	if v.Kind() != reflect.Struct {
		return nil
	}

	var missing []string
	walkRequired(v, "", &missing)
	if len(missing) == 0 {
		return nil
	}
	return &InvalidParamsError{Context: v.Type().Name(), Fields: missing}
}

func walkRequired(v reflect.Value, prefix string, missing *[]string) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() || f.Anonymous {
			continue
		}
		fv := v.Field(i)
		name := prefix + f.Name

		if f.Tag.Get("required") == "true" && isMissing(fv, f.Tag.Get("location") == "uri") {
			*missing = append(*missing, name)
			continue
		}

		switch fv.Kind() {
		case reflect.Ptr:
			if !fv.IsNil() && fv.Elem().Kind() == reflect.Struct {
				walkRequired(fv.Elem(), name+".", missing)
			}
		case reflect.Struct:
			walkRequired(fv, name+".", missing)
		case reflect.Slice:
			if k := fv.Type().Elem().Kind(); k != reflect.Struct && k != reflect.Ptr {
				continue
			}
			for j := 0; j < fv.Len(); j++ {
				if elem := indirect(fv.Index(j)); elem.IsValid() && elem.Kind() == reflect.Struct {
					walkRequired(elem, fmt.Sprintf("%s[%d].", name, j), missing)
				}
			}
		}
	}
}

func isMissing(v reflect.Value, label bool) bool {
	switch v.Kind() {
	case reflect.Ptr:
		if v.IsNil() {
			return true
		}
		return label && v.Elem().Kind() == reflect.String && v.Elem().Len() == 0
	case reflect.Slice, reflect.Map, reflect.Interface:
		return v.IsNil()
	case reflect.String:
		return v.Len() == 0
	default:
		return false
	}
}

// DecodeResponse decodes a JSON response body into out. An empty body leaves out untouched.
func DecodeResponse(resp *http.Response, out interface{}) error {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 || out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode response body: %w", err)
	}
	return nil
}

// DecodeError builds an APIError from a non-success response. The error code comes
// from the X-Amzn-ErrorType header, then the body's __type or code member, and
// finally the HTTP status text.
func DecodeError(resp *http.Response) *APIError {
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		RequestID:  RequestID(resp),
	}

	data, _ := io.ReadAll(resp.Body)
	var body struct {
		Type             string `json:"__type"`
		Code             string `json:"code"`
		Message          string `json:"message"`
		MessageUpper     string `json:"Message"`
		InvalidParameter string `json:"invalidParameter"`
	}
	if len(bytes.TrimSpace(data)) > 0 {
		_ = json.Unmarshal(data, &body)
	}

	apiErr.Message = body.Message
	if apiErr.Message == "" {
		apiErr.Message = body.MessageUpper
	}
	apiErr.InvalidParameter = body.InvalidParameter

	switch {
	case resp.Header.Get("X-Amzn-ErrorType") != "":
		apiErr.Code = sanitizeErrorCode(resp.Header.Get("X-Amzn-ErrorType"))
	case body.Type != "":
		apiErr.Code = sanitizeErrorCode(body.Type)
	case body.Code != "":
		apiErr.Code = sanitizeErrorCode(body.Code)
	default:
		apiErr.Code = http.StatusText(resp.StatusCode)
	}

	return apiErr
}

// RequestID returns the AWS request id of a response.
func RequestID(resp *http.Response) string {
	if id := resp.Header.Get("X-Amzn-Requestid"); id != "" {
		return id
	}
	return resp.Header.Get("X-Amz-Request-Id")
}

// sanitizeErrorCode turns "aws.protocols#NotFoundException:http://..." into "NotFoundException".
func sanitizeErrorCode(code string) string {
	if i := strings.Index(code, ":"); i >= 0 {
		code = code[:i]
	}
	if i := strings.LastIndex(code, "#"); i >= 0 {
		code = code[i+1:]
	}
	return strings.TrimSpace(code)
}

func indirect(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

// scalarString formats a scalar, pointer-to-scalar or string enum. ok is false for nil and "".
func scalarString(v reflect.Value) (string, bool) {
	v = indirect(v)
	if !v.IsValid() {
		return "", false
	}
	switch v.Kind() {
	case reflect.String:
		return v.String(), v.Len() > 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10), true
	case reflect.Bool:
		return strconv.FormatBool(v.Bool()), true
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', -1, 64), true
	default:
		return "", false
	}
}

// encodeQuery sorts keys and keeps the order of repeated values. The SigV4
// signer rewrites the query afterwards and sorts repeated values, so the order
// seen by the service is not guaranteed.
func encodeQuery(query map[string][]string) string {
	keys := make([]string, 0, len(query))
	for k := range query {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var parts []string
	for _, k := range keys {
		for _, v := range query[k] {
			parts = append(parts, httpbinding.EscapePath(k, true)+"="+httpbinding.EscapePath(v, true))
		}
	}
	return strings.Join(parts, "&")
}
