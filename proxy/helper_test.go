package proxy

import (
	"github.com/prognoshealth/gatewayevents/event"
	"github.com/prognoshealth/gatewayevents/httpevent"
)

func testHandler(context *RouteContext) (*httpevent.Response, error) {
	return httpevent.NewStatus(200), nil
}

func testRequest(method HttpMethod, path string) httpevent.Request {
	request := httpevent.Request{
		Version: "2.0",
		RequestFields: event.RequestFields{
			RawPath: path,
			Headers: map[string]string{},
		},
	}
	request.RequestContext.HTTP.Method = method.String()
	request.RequestContext.HTTP.Path = path

	return request
}
