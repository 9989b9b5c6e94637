package httpevent

import (
	"encoding/base64"
	"encoding/json"
	"os"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func testRequest(t *testing.T) Request {
	t.Helper()

	content, err := os.ReadFile("testdata/request.json")
	assert.NoError(t, err)

	request := Request{}
	assert.NoError(t, json.Unmarshal(content, &request))

	return request
}

func TestRequest_decode(t *testing.T) {
	request := testRequest(t)

	assert.Equal(t, "2.0", request.Version)
	assert.Equal(t, "/test/orders", request.RawPath)
	assert.Equal(t, "expand=items", request.RawQueryString)
	assert.True(t, request.IsBase64Encoded)
	assert.Equal(t, "eyJvayI6dHJ1ZX0=", request.Body)
	assert.NotNil(t, request.Authorizer)
	assert.Equal(t, "admin", request.Authorizer.Lambda["role"])
	assert.Equal(t, "1234567890", request.Authorizer.JWT["sub"])
	assert.Nil(t, request.Authentication)
}

func TestRequest_accessors(t *testing.T) {
	request := testRequest(t)

	assert.Equal(t, "/test/orders", request.Path())
	assert.Equal(t, "POST", request.Method())
	assert.Equal(t, "HTTP/1.1", request.Protocol())
	assert.Equal(t, "192.168.0.1", request.SourceIP())
	assert.Equal(t, "agent", request.UserAgent())
	assert.Equal(t, "test", request.Stage)
	assert.Equal(t, map[string]string{"session": "abc123", "theme": "dark"}, request.CookieMap())
}

func TestRequest_BodyText(t *testing.T) {
	request := testRequest(t)

	body, err := request.BodyText()
	assert.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, body)
}

func TestRequest_BodyText_raw(t *testing.T) {
	request := Request{Body: "plain content"}

	body, err := request.BodyText()
	assert.NoError(t, err)
	assert.Equal(t, "plain content", body)
}

func TestRequest_BodyText_absent(t *testing.T) {
	// the encoding flag is irrelevant when there is no body
	for _, encoded := range []bool{false, true} {
		request := Request{IsBase64Encoded: encoded}

		body, err := request.BodyText()
		assert.NoError(t, err)
		assert.Equal(t, "", body)
	}
}

func TestRequest_BodyText_badBase64(t *testing.T) {
	request := Request{Body: "sefdfxsdf.d.dsd", IsBase64Encoded: true}

	_, err := request.BodyText()
	assert.Error(t, err)

	var corrupt base64.CorruptInputError
	assert.True(t, errors.As(err, &corrupt))
}

func TestRequest_BodyText_notUTF8(t *testing.T) {
	request := Request{
		Body:            base64.StdEncoding.EncodeToString([]byte{0xff, 0xfe, 0xfd}),
		IsBase64Encoded: true,
	}

	_, err := request.BodyText()
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrBodyNotUTF8))
}

func TestRequest_BodyBinary(t *testing.T) {
	payload := []byte{0x00, 0x01, 0xff, 0xfe}
	request := Request{
		Body:            base64.StdEncoding.EncodeToString(payload),
		IsBase64Encoded: true,
	}

	b, err := request.BodyBinary()
	assert.NoError(t, err)
	assert.Equal(t, payload, b)
}

func TestRequest_BodyBinary_raw(t *testing.T) {
	request := Request{Body: "plain content"}

	b, err := request.BodyBinary()
	assert.NoError(t, err)
	assert.Equal(t, []byte("plain content"), b)
}

func TestRequest_BodyBinary_absent(t *testing.T) {
	request := Request{IsBase64Encoded: true}

	b, err := request.BodyBinary()
	assert.NoError(t, err)
	assert.Nil(t, b)
}

func TestRequest_BodyBinary_badBase64(t *testing.T) {
	request := Request{Body: "sefdfxsdf.d.dsd", IsBase64Encoded: true}

	_, err := request.BodyBinary()
	assert.Error(t, err)
}

// BodyBinary must recover the exact bytes a file response was built from.
func TestRequest_BodyBinary_roundTrip(t *testing.T) {
	payload := []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0xff, 0x10, 0x20}

	response := NewFile(payload)
	request := Request{Body: response.Body, IsBase64Encoded: response.IsBase64Encoded}

	b, err := request.BodyBinary()
	assert.NoError(t, err)
	assert.Equal(t, payload, b)
}
