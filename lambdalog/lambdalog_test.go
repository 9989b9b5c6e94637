package lambdalog

import (
	"context"
	"testing"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/stretchr/testify/assert"
)

func TestFields(t *testing.T) {
	lambdacontext.FunctionName = "fn-test"
	lambdacontext.FunctionVersion = "7"
	lambdacontext.LogGroupName = "logGroupName-test"
	lambdacontext.LogStreamName = "logStreamName-test"
	lambdacontext.MemoryLimitInMB = 128

	lctx := lambdacontext.LambdaContext{
		AwsRequestID:       "req-1",
		InvokedFunctionArn: "arn:aws:lambda:us-east-1:xxxxx:function:fn-test",
	}
	ctx := lambdacontext.NewContext(context.Background(), &lctx)

	fields := Fields(ctx)

	assert.Equal(t, "fn-test", fields["function_name"])
	assert.Equal(t, "7", fields["function_version"])
	assert.Equal(t, "logGroupName-test", fields["log_group"])
	assert.Equal(t, "logStreamName-test", fields["log_stream"])
	assert.Equal(t, 128, fields["memory_limit_mb"])
	assert.Equal(t, "req-1", fields["request_id"])
	assert.Equal(t, "arn:aws:lambda:us-east-1:xxxxx:function:fn-test", fields["invoked_arn"])
}

func TestFields_noInvocationContext(t *testing.T) {
	fields := Fields(context.Background())

	assert.NotContains(t, fields, "request_id")
	assert.NotContains(t, fields, "invoked_arn")
}
