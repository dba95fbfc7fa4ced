// Package generated contains the request, response and shape types of the
// Amazon MSK control-plane API (service "kafka", version 2018-11-14).
//
// Everything except this file and enum_errors.go is produced by cmd/codegen from
// the Smithy model. Optional members are pointers, so an absent member and a
// zero value are distinguishable on the wire; the ptr package keeps literals short.
package generated
