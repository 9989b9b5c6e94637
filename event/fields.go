package event

import "strings"

// RequestFields holds the top-level event members shared by the proxy
// integration and lambda authorizer request shapes. Header keys keep the
// case they arrived with; no folding is applied anywhere in this package.
type RequestFields struct {
	RouteKey              string            `json:"routeKey"`
	RawPath               string            `json:"rawPath"`
	RawQueryString        string            `json:"rawQueryString"`
	Cookies               []string          `json:"cookies,omitempty"`
	Headers               map[string]string `json:"headers"`
	QueryStringParameters map[string]string `json:"queryStringParameters,omitempty"`
	PathParameters        map[string]string `json:"pathParameters,omitempty"`
	StageVariables        map[string]string `json:"stageVariables,omitempty"`
}

// CookieMap parses the raw cookie list into a name/value map. It returns nil
// when the event carried no cookie list at all. Each raw entry is split on
// "=" and kept only when that yields exactly two parts, so entries with no
// "=" or more than one "=" are silently dropped.
func (f RequestFields) CookieMap() map[string]string {
	if f.Cookies == nil {
		return nil
	}

	cookies := make(map[string]string)

	for _, c := range f.Cookies {
		parts := strings.Split(c, "=")
		if len(parts) != 2 {
			continue
		}

		cookies[parts[0]] = parts[1]
	}

	return cookies
}

// Header returns the header value for key and whether it was present.
// Lookup is exact; keys are not case folded.
func (f RequestFields) Header(key string) (string, bool) {
	v, ok := f.Headers[key]
	return v, ok
}

// Query returns the query string parameter for key and whether it was
// present.
func (f RequestFields) Query(key string) (string, bool) {
	v, ok := f.QueryStringParameters[key]
	return v, ok
}

// Param returns the path parameter for key and whether it was present.
func (f RequestFields) Param(key string) (string, bool) {
	v, ok := f.PathParameters[key]
	return v, ok
}

// StageVariable returns the stage variable for key and whether it was
// present.
func (f RequestFields) StageVariable(key string) (string, bool) {
	v, ok := f.StageVariables[key]
	return v, ok
}
