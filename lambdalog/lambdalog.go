// Package lambdalog derives structured logging fields from the lambda
// invocation context so every entrypoint binary logs the same invocation
// metadata.
package lambdalog

import (
	"context"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/sirupsen/logrus"
)

// Fields returns logrus fields describing the current invocation: function
// name/version, log group/stream, memory limit and, when the invocation
// context is available, the request id and invoked function arn.
func Fields(ctx context.Context) logrus.Fields {
	fields := logrus.Fields{
		"function_name":    lambdacontext.FunctionName,
		"function_version": lambdacontext.FunctionVersion,
		"log_group":        lambdacontext.LogGroupName,
		"log_stream":       lambdacontext.LogStreamName,
		"memory_limit_mb":  lambdacontext.MemoryLimitInMB,
	}

	if lctx, ok := lambdacontext.FromContext(ctx); ok {
		fields["request_id"] = lctx.AwsRequestID
		fields["invoked_arn"] = lctx.InvokedFunctionArn
	}

	return fields
}
