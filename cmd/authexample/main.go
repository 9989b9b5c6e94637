// Command authexample is a lambda authorizer that decides by path. It
// demonstrates the authorizer event model and the simple-response shape,
// including passing context through to the downstream integration.
package main

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/sirupsen/logrus"

	"github.com/prognoshealth/gatewayevents/authevent"
	"github.com/prognoshealth/gatewayevents/lambdalog"
)

func handler(ctx context.Context, request authevent.Request) (authevent.Response, error) {
	log := logrus.WithFields(lambdalog.Fields(ctx))
	log.WithField("path", request.Path()).Info("authorizing request")

	switch request.Path() {
	case "/deny":
		return authevent.NewSimpleResponse(false), nil
	case "/deny_with_context":
		return authevent.NewResponse(false, map[string]string{
			"type":      "failed",
			"user_type": "visitor",
		}), nil
	case "/pass_with_context":
		return authevent.NewResponse(true, map[string]string{
			"type":      "sudo",
			"user_type": "admin",
		}), nil
	default:
		return authevent.NewSimpleResponse(true), nil
	}
}

func main() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	lambda.Start(handler)
}
