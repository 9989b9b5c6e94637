package proxy

import (
	"context"

	"github.com/pkg/errors"

	"github.com/prognoshealth/gatewayevents/httpevent"
)

// RouteContext contains all the request information for a route when matched.
type RouteContext struct {
	Context context.Context
	Request httpevent.Request
	Params  map[string]string
}

// Body returns a string representation of the request body.
func (ctx *RouteContext) Body() (string, error) {
	body, err := ctx.Request.BodyText()
	if err != nil {
		return "", errors.Wrapf(err, "unable to decode request body for request %s", ctx.Request.RequestID)
	}

	return body, nil
}
