// Package errs defines the sentinel errors returned by flowrec packages.
//
// Callers should compare with errors.Is, since most errors are returned
// wrapped with field or template context.
package errs

import "errors"

// Encoding errors.
var (
	// ErrEncodeFailure matches every error returned by a record's Encode or AppendTo.
	ErrEncodeFailure = errors.New("flow record encode failure")

	ErrInvalidIPv4Address = errors.New("value is not a valid IPv4 address")
	ErrInvalidIPv6Address = errors.New("value is not a valid IPv6 address")
	ErrInvalidMACAddress  = errors.New("MAC address must be exactly 6 bytes")
	ErrShortWrite         = errors.New("encoded length does not match declared record length")
)

// Template errors.
var (
	ErrUnknownElement     = errors.New("unknown information element")
	ErrFieldCountMismatch = errors.New("template field count does not match field list")
	ErrInvalidTemplateID  = errors.New("template id must be in range 256-65535")
	ErrTemplateNotFound   = errors.New("template not found")
)

// Spool errors.
var (
	ErrTemplateMismatch   = errors.New("record template does not match spool template")
	ErrSpoolFull          = errors.New("spool reached its maximum record count")
	ErrInvalidMaxRecords  = errors.New("max records must be positive")
	ErrInvalidCompression = errors.New("invalid compression type")
	ErrCorruptPayload     = errors.New("payload size is not a multiple of the record length")
)
