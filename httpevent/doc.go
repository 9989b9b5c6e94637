// Package httpevent models the api gateway v2 (http) proxy integration
// payloads: the request event delivered to the lambda function, including
// base64 and raw body decoding, and a builder for the response payload the
// gateway expects back.
//
// The response builder keeps the body representation and the
// IsBase64Encoded flag paired at all times; no constructor or mutator can
// leave the two inconsistent.
package httpevent
