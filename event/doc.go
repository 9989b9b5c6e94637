// Package event contains the value types shared by every api gateway v2
// (http) event shape: the request context with its nested http, client
// certificate and authorizer blocks, and the top-level members common to
// both the proxy integration and lambda authorizer payloads.
//
// All types are plain records decoded straight from the gateway's JSON.
// Accessors are pure projections over the decoded value and never mutate it.
package event
