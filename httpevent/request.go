package httpevent

import (
	"encoding/base64"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/prognoshealth/gatewayevents/event"
)

// ErrBodyNotUTF8 reports that a base64 encoded request body decoded
// successfully but the resulting bytes are not valid UTF-8 text. It is only
// returned from BodyText; BodyBinary has no use for it.
var ErrBodyNotUTF8 = errors.New("decoded request body is not valid utf-8")

// Request is the payload delivered to a lambda function behind an api
// gateway v2 (http) proxy integration with payload format version 2.0.
// Lambda function URLs deliver the same shape.
//
// An absent body decodes as the empty string; the gateway never sends an
// explicit empty body, so the two cases are indistinguishable on the wire.
// When Body is present IsBase64Encoded dictates how BodyText and BodyBinary
// decode it.
type Request struct {
	Version string `json:"version"`
	event.RequestFields
	event.RequestContext `json:"requestContext"`
	Body                 string `json:"body,omitempty"`
	IsBase64Encoded      bool   `json:"isBase64Encoded"`
}

// BodyText returns the request body as text.
//
// An absent body returns ("", nil) regardless of the encoding flag. A body
// that is not base64 encoded is returned verbatim. A base64 encoded body is
// decoded and validated as UTF-8; the only possible failures are a base64
// decode error and ErrBodyNotUTF8.
func (r Request) BodyText() (string, error) {
	if r.Body == "" {
		return "", nil
	}

	if !r.IsBase64Encoded {
		return r.Body, nil
	}

	b, err := base64.StdEncoding.DecodeString(r.Body)
	if err != nil {
		return "", errors.Wrap(err, "unable to base64 decode request body")
	}

	if !utf8.Valid(b) {
		return "", ErrBodyNotUTF8
	}

	return string(b), nil
}

// BodyBinary returns the request body as bytes.
//
// An absent body returns (nil, nil). A body that is not base64 encoded is
// reinterpreted as its raw byte sequence and never fails. A base64 encoded
// body is decoded; the decode error is the only possible failure.
func (r Request) BodyBinary() ([]byte, error) {
	if r.Body == "" {
		return nil, nil
	}

	if !r.IsBase64Encoded {
		return []byte(r.Body), nil
	}

	b, err := base64.StdEncoding.DecodeString(r.Body)
	if err != nil {
		return nil, errors.Wrap(err, "unable to base64 decode request body")
	}

	return b, nil
}
