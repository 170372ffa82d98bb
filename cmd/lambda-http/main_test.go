package main

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"os"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-renderer/internal/shared/server/respond"
	"resume-renderer/internal/shared/telemetry"
)

func apiRequest(method, path, body string) events.APIGatewayV2HTTPRequest {
	return events.APIGatewayV2HTTPRequest{
		Version:  "2.0",
		RawPath:  path,
		Body:     body,
		Headers:  map[string]string{"content-type": "application/json"},
		RouteKey: "$default",
		RequestContext: events.APIGatewayV2HTTPRequestContext{
			HTTP: events.APIGatewayV2HTTPRequestContextHTTPDescription{
				Method: method,
				Path:   path,
			},
		},
	}
}

func TestHandlerHealth(t *testing.T) {
	resp, err := handler(context.Background(), apiRequest(http.MethodGet, "/api/v1/health", ""))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"ok":true,"formats":["docx","pdf"]}`, resp.Body)
}

func TestHandlerGeneratePDF(t *testing.T) {
	resp, err := handler(context.Background(), apiRequest(http.MethodPost, "/api/generate", `{"name":"Ada","format":"pdf"}`))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.True(t, resp.IsBase64Encoded)

	data, err := base64.StdEncoding.DecodeString(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-", string(data[:5]))
}

func TestHandlerBootstrapFailureHidesCause(t *testing.T) {
	var buf bytes.Buffer
	telemetry.SetOutput(&buf)
	t.Cleanup(func() { telemetry.SetOutput(os.Stdout) })

	calls := 0
	failing := &lambdaApp{build: func() (*ginadapter.GinLambdaV2, error) {
		calls++
		return nil, errors.New("staging dir /secret missing")
	}}

	for range 2 {
		resp, err := failing.handle(context.Background(), apiRequest(http.MethodGet, "/api/v1/health", ""))
		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		assert.Equal(t, "application/json", resp.Headers["Content-Type"])
		assert.JSONEq(t, `{"error":"`+respond.InternalErrorMessage+`"}`, resp.Body)
		assert.NotContains(t, resp.Body, "/secret")
	}
	assert.Equal(t, 1, calls)
	assert.Contains(t, buf.String(), "lambda.bootstrap_failed")
	assert.Contains(t, buf.String(), "staging dir /secret missing")
}
