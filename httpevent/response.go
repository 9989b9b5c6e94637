package httpevent

import (
	"encoding/base64"

	"github.com/h2non/filetype"
	"github.com/h2non/filetype/types"

	"github.com/prognoshealth/gatewayevents/statustext"
)

const (
	contentTypeHeader = "Content-Type"

	mimeHTML   = "text/html; charset=utf-8"
	mimeJSON   = "application/json"
	mimeText   = "text/plain; charset=utf-8"
	mimeBinary = "application/octet-stream"

	unknownStatusText = "An unknown error occurred"
)

// Response is the payload a proxy integration lambda returns to the
// gateway. Construct one through the New* functions and adjust it with the
// fluent mutators; every one of them updates Body and IsBase64Encoded as a
// pair so the flag always describes the body's actual representation.
type Response struct {
	IsBase64Encoded bool              `json:"isBase64Encoded"`
	StatusCode      int               `json:"statusCode"`
	Body            string            `json:"body"`
	Headers         map[string]string `json:"headers"`
}

// sniffContentType matches byte signatures over a sample of at most the
// first 31 bytes and returns the detected mime type, falling back to
// application/octet-stream when nothing matches or the sample is empty.
func sniffContentType(b []byte) string {
	end := 0
	if len(b) > 0 {
		end = len(b) - 1
		if end > 31 {
			end = 31
		}
	}

	kind, err := filetype.Match(b[:end])
	if err != nil || kind == types.Unknown {
		return mimeBinary
	}

	return kind.MIME.Value
}

// NewFile returns a 200 response carrying b base64 encoded, with the
// Content-Type detected from b's leading byte signature.
func NewFile(b []byte) *Response {
	return &Response{
		IsBase64Encoded: true,
		StatusCode:      200,
		Body:            base64.StdEncoding.EncodeToString(b),
		Headers:         map[string]string{contentTypeHeader: sniffContentType(b)},
	}
}

// NewHTML returns a 200 text/html response with body verbatim.
func NewHTML(body string) *Response {
	return &Response{
		StatusCode: 200,
		Body:       body,
		Headers:    map[string]string{contentTypeHeader: mimeHTML},
	}
}

// NewJSON returns a 200 application/json response with body verbatim.
func NewJSON(body string) *Response {
	return &Response{
		StatusCode: 200,
		Body:       body,
		Headers:    map[string]string{contentTypeHeader: mimeJSON},
	}
}

// NewText returns a 200 text/plain response with body verbatim.
func NewText(body string) *Response {
	return &Response{
		StatusCode: 200,
		Body:       body,
		Headers:    map[string]string{contentTypeHeader: mimeText},
	}
}

// NewStatus returns a text/plain response for the given status code with
// the canonical reason phrase as its body. Unrecognized codes get the
// fallback text "An unknown error occurred" and still construct fine.
func NewStatus(code int) *Response {
	body, ok := statustext.Text(code)
	if !ok {
		body = unknownStatusText
	}

	return &Response{
		StatusCode: code,
		Body:       body,
		Headers:    map[string]string{contentTypeHeader: mimeText},
	}
}

// Header upserts a header. Last write wins on duplicate keys.
func (r *Response) Header(key, value string) *Response {
	r.Headers[key] = value
	return r
}

// Status replaces the status code. Body, encoding flag and headers are
// untouched.
func (r *Response) Status(code int) *Response {
	r.StatusCode = code
	return r
}

// WithText replaces the body with verbatim text and overwrites the
// Content-Type to text/plain.
func (r *Response) WithText(body string) *Response {
	r.Headers[contentTypeHeader] = mimeText
	r.Body = body
	r.IsBase64Encoded = false
	return r
}

// WithJSON replaces the body with verbatim text and overwrites the
// Content-Type to application/json.
func (r *Response) WithJSON(body string) *Response {
	r.Headers[contentTypeHeader] = mimeJSON
	r.Body = body
	r.IsBase64Encoded = false
	return r
}

// WithHTML replaces the body with verbatim text and overwrites the
// Content-Type to text/html.
func (r *Response) WithHTML(body string) *Response {
	r.Headers[contentTypeHeader] = mimeHTML
	r.Body = body
	r.IsBase64Encoded = false
	return r
}

// WithFile replaces the body with b base64 encoded and overwrites the
// Content-Type from b's leading byte signature.
func (r *Response) WithFile(b []byte) *Response {
	r.Headers[contentTypeHeader] = sniffContentType(b)
	r.Body = base64.StdEncoding.EncodeToString(b)
	r.IsBase64Encoded = true
	return r
}

// WithBody replaces body, encoding flag and Content-Type explicitly. The
// caller is responsible for body and isBase64 agreeing with each other.
func (r *Response) WithBody(body string, isBase64 bool, mime string) *Response {
	r.Headers[contentTypeHeader] = mime
	r.Body = body
	r.IsBase64Encoded = isBase64
	return r
}
