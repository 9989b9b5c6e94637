// Package authevent models the request a lambda authorizer receives from
// api gateway v2 (http) and the simple-response shape it returns. The
// request carries no body; everything else mirrors the proxy integration
// event.
package authevent
