// Package proxy provides routing for lambda functions that act as api
// gateway v2 (http) integrations. It matches decoded httpevent.Request
// values against regex routes and hands matched requests to handlers that
// build a *httpevent.Response.
//
// The router is designed to be as simplistic as possible and is not feature
// rich.
package proxy
