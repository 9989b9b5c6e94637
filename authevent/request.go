package authevent

import (
	"github.com/prognoshealth/gatewayevents/event"
)

// Request is the payload delivered to a lambda authorizer configured with
// payload format version 2.0 and simple responses.
//
// Derived accessors (CookieMap, Path, Method, Timestamp, ...) are promoted
// from the embedded event types; the remaining members are verbatim
// passthrough fields.
type Request struct {
	Version        string   `json:"version"`
	Type           string   `json:"type"`
	RouteARN       string   `json:"routeArn"`
	IdentitySource []string `json:"identitySource"`
	event.RequestFields
	event.RequestContext `json:"requestContext"`
}
