package main

// Build the Lambda handler binary:
//   GOOS=linux GOARCH=arm64 CGO_ENABLED=0 go build -o bootstrap ./cmd/lambda-http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"

	"resume-renderer/internal/bootstrap"
	"resume-renderer/internal/shared/config"
	"resume-renderer/internal/shared/server/respond"
	"resume-renderer/internal/shared/telemetry"
)

// lambdaApp builds the router on the first invocation and reuses it for the
// life of the execution environment.
type lambdaApp struct {
	once  sync.Once
	build func() (*ginadapter.GinLambdaV2, error)
	proxy *ginadapter.GinLambdaV2
	err   error
}

var app = &lambdaApp{build: buildProxy}

func buildProxy() (*ginadapter.GinLambdaV2, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	built, err := bootstrap.Build(cfg)
	if err != nil {
		return nil, err
	}
	telemetry.Info("lambda.cold_start", map[string]any{
		"env":          cfg.Env,
		"staging_mode": cfg.StagingMode,
	})
	return ginadapter.NewV2(built.Router), nil
}

// handle answers bootstrap and proxy failures with the generic 500 body so
// API Gateway never substitutes its own error page.
func (a *lambdaApp) handle(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	a.once.Do(func() {
		a.proxy, a.err = a.build()
	})
	if a.err != nil {
		telemetry.Error("lambda.bootstrap_failed", map[string]any{"error": a.err.Error()})
		return errorResponse(http.StatusInternalServerError, respond.InternalErrorMessage), nil
	}

	resp, err := a.proxy.ProxyWithContext(ctx, req)
	if err != nil {
		telemetry.Error("lambda.proxy_failed", map[string]any{
			"error": err.Error(),
			"path":  req.RawPath,
		})
		return errorResponse(http.StatusInternalServerError, respond.InternalErrorMessage), nil
	}
	return resp, nil
}

func errorResponse(status int, message string) events.APIGatewayV2HTTPResponse {
	body, _ := json.Marshal(respond.ErrorResponse{Error: message})
	return events.APIGatewayV2HTTPResponse{
		StatusCode: status,
		Body:       string(body),
		Headers:    map[string]string{"Content-Type": "application/json"},
	}
}

func handler(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	return app.handle(ctx, req)
}

func main() {
	lambda.Start(handler)
}
