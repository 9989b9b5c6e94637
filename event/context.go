package event

import "time"

// HTTPDescription describes the http request line and client details as
// reported by the gateway. All fields are UTF-8 text and may be empty.
type HTTPDescription struct {
	Method    string `json:"method"`
	Path      string `json:"path"`
	Protocol  string `json:"protocol"`
	SourceIP  string `json:"sourceIp"`
	UserAgent string `json:"userAgent"`
}

// Validity is a client certificate validity window. The bounds are opaque
// date strings passed through from the gateway, never parsed.
type Validity struct {
	NotBefore string `json:"notBefore"`
	NotAfter  string `json:"notAfter"`
}

// ClientCert carries the client certificate metadata present on mutually
// authenticated connections.
type ClientCert struct {
	ClientCertPem string   `json:"clientCertPem"`
	SubjectDN     string   `json:"subjectDN"`
	IssuerDN      string   `json:"issuerDN"`
	SerialNumber  string   `json:"serialNumber"`
	Validity      Validity `json:"validity"`
}

// Authentication wraps the client certificate block.
type Authentication struct {
	ClientCert ClientCert `json:"clientCert"`
}

// Authorizer holds the lambda and jwt authorizer outputs attached to proxy
// integration events. Both maps may be absent simultaneously; authorizer
// events themselves never carry this block.
type Authorizer struct {
	Lambda map[string]string `json:"lambda,omitempty"`
	JWT    map[string]string `json:"jwt,omitempty"`
}

// RequestContext identifies the AWS account, api and stage the event was
// delivered through, plus the request line metadata.
//
// Time and TimeEpoch are sourced independently by the gateway: Time is a
// pre-formatted string passed through verbatim and is not guaranteed
// consistent with TimeEpoch.
type RequestContext struct {
	AccountID      string          `json:"accountId"`
	APIID          string          `json:"apiId"`
	Authentication *Authentication `json:"authentication,omitempty"`
	Authorizer     *Authorizer     `json:"authorizer,omitempty"`
	DomainName     string          `json:"domainName"`
	DomainPrefix   string          `json:"domainPrefix"`
	HTTP           HTTPDescription `json:"http"`
	RequestID      string          `json:"requestId"`
	RouteKey       string          `json:"routeKey"`
	Stage          string          `json:"stage"`
	Time           string          `json:"time"`
	TimeEpoch      int64           `json:"timeEpoch"`
}

// Path returns the request line path. Empty when absent upstream.
func (c RequestContext) Path() string {
	return c.HTTP.Path
}

// Method returns the http method.
func (c RequestContext) Method() string {
	return c.HTTP.Method
}

// Protocol returns the http protocol, e.g. "HTTP/1.1".
func (c RequestContext) Protocol() string {
	return c.HTTP.Protocol
}

// SourceIP returns the client address as seen by the gateway.
func (c RequestContext) SourceIP() string {
	return c.HTTP.SourceIP
}

// UserAgent returns the client user agent string.
func (c RequestContext) UserAgent() string {
	return c.HTTP.UserAgent
}

// Timestamp returns the request time as a UTC instant derived from
// TimeEpoch. It never fails; a zero TimeEpoch yields the Unix epoch.
func (c RequestContext) Timestamp() time.Time {
	return time.UnixMilli(c.TimeEpoch).UTC()
}
