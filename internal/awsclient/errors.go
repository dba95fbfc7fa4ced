package awsclient

import (
	"fmt"
	"strings"

	"github.com/aws/smithy-go"
)

// APIError is an error response returned by an AWS service.
type APIError struct {
	Code             string
	Message          string
	InvalidParameter string
	StatusCode       int
	RequestID        string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error %s", e.Code)
	}
	return fmt.Sprintf("api error %s: %s", e.Code, e.Message)
}

// ErrorCode returns the AWS error code
func (e *APIError) ErrorCode() string {
	return e.Code
}

// ErrorMessage returns the service supplied message
func (e *APIError) ErrorMessage() string {
	return e.Message
}

// ErrorFault indicates whether this is a client or server error
func (e *APIError) ErrorFault() smithy.ErrorFault {
	if e.StatusCode >= 500 {
		return smithy.FaultServer
	}
	return smithy.FaultClient
}

// ResponseError wraps an operation error with the HTTP metadata of the response.
type ResponseError struct {
	StatusCode int
	RequestID  string
	Err        error
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("https response error StatusCode: %d, RequestID: %s, %v", e.StatusCode, e.RequestID, e.Err)
}

func (e *ResponseError) Unwrap() error {
	return e.Err
}

// OperationError names the service operation that failed.
type OperationError struct {
	ServiceID     string
	OperationName string
	Err           error
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("operation error %s: %s, %v", e.ServiceID, e.OperationName, e.Err)
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

// InvalidParamsError lists every required member that was left unset.
type InvalidParamsError struct {
	Context string
	Fields  []string
}

func (e *InvalidParamsError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d validation error(s) found.", len(e.Fields))
	for _, f := range e.Fields {
		fmt.Fprintf(&b, "\n- missing required field, %s.%s.", e.Context, f)
	}
	return b.String()
}
