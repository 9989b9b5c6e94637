package authevent

// Response is the simple-response payload a lambda authorizer returns. The
// context map is surfaced to the downstream integration by the gateway.
type Response struct {
	IsAuthorized bool              `json:"isAuthorized"`
	Context      map[string]string `json:"context"`
}

// NewResponse returns an authorizer response with the given decision and
// context map.
func NewResponse(authorized bool, context map[string]string) Response {
	return Response{
		IsAuthorized: authorized,
		Context:      context,
	}
}

// NewSimpleResponse returns an authorizer response with the given decision
// and an empty context map.
func NewSimpleResponse(authorized bool) Response {
	return Response{
		IsAuthorized: authorized,
		Context:      map[string]string{},
	}
}
