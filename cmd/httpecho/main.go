// Command httpecho is a proxy integration lambda that echoes the decoded
// request event back to the caller as json. It is a deployable smoke test
// for an api gateway v2 (http) integration.
package main

import (
	"context"
	"encoding/json"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/sirupsen/logrus"

	"github.com/prognoshealth/gatewayevents/httpevent"
	"github.com/prognoshealth/gatewayevents/lambdalog"
)

func handler(ctx context.Context, request httpevent.Request) (*httpevent.Response, error) {
	log := logrus.WithFields(lambdalog.Fields(ctx))

	b, err := json.Marshal(request)
	if err != nil {
		log.WithError(err).Error("failed encoding request as json")
		return httpevent.NewStatus(500).WithText("Can not encode as json"), nil
	}

	log.WithFields(logrus.Fields{
		"method": request.Method(),
		"path":   request.Path(),
	}).Info("echoing request")

	return httpevent.NewJSON(string(b)), nil
}

func main() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	lambda.Start(handler)
}
