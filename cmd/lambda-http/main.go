package main

// Lambda entrypoint for the review API behind an API Gateway HTTP API:
//   GOOS=linux GOARCH=arm64 CGO_ENABLED=0 go build -o bootstrap ./cmd/lambda-http
// The function image must ship the lint tool for lint_issues to be populated.

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"

	"codereview-backend/internal/bootstrap"
	"codereview-backend/internal/shared/config"
	"codereview-backend/internal/shared/server/respond"
	"codereview-backend/internal/shared/telemetry"
)

// reviewProxy builds the app on the first invocation and reuses it while the
// execution environment stays warm.
type reviewProxy struct {
	once    sync.Once
	err     error
	adapter *ginadapter.GinLambdaV2
	load    func() config.Config
}

func (p *reviewProxy) init() {
	app, err := bootstrap.Build(p.load())
	if err != nil {
		p.err = err
		return
	}
	p.adapter = ginadapter.NewV2(app.Router)
}

func (p *reviewProxy) handle(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	p.once.Do(p.init)
	if p.err != nil {
		telemetry.Error("lambda.bootstrap_failed", map[string]any{"error": p.err})
		return errorResponse(http.StatusInternalServerError, "bootstrap failed"), nil
	}
	return p.adapter.ProxyWithContext(ctx, req)
}

func errorResponse(status int, message string) events.APIGatewayV2HTTPResponse {
	body, _ := json.Marshal(respond.ErrorResponse{Error: respond.ErrorBody{Code: "internal", Message: message}})
	return events.APIGatewayV2HTTPResponse{
		StatusCode: status,
		Body:       string(body),
		Headers:    map[string]string{"Content-Type": "application/json"},
	}
}

func main() {
	proxy := &reviewProxy{load: config.Load}
	lambda.Start(proxy.handle)
}
