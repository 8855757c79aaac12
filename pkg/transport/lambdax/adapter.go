// Package lambdax runs in-process handlers behind API Gateway proxy events.
package lambdax

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/aws/aws-lambda-go/events"
	"github.com/joeydtaylor/armory/pkg/core"
	"go.uber.org/zap"
)

// RequestFromEvent converts a proxy event. A missing queryStringParameters
// block stays nil.
func RequestFromEvent(ev events.APIGatewayProxyRequest) (core.Request, error) {
	body := []byte(ev.Body)
	if ev.IsBase64Encoded && ev.Body != "" {
		b, err := base64.StdEncoding.DecodeString(ev.Body)
		if err != nil {
			return core.Request{}, fmt.Errorf("decode body: %w", err)
		}
		body = b
	}
	return core.Request{
		Method:  ev.HTTPMethod,
		Path:    ev.Path,
		Query:   ev.QueryStringParameters,
		Headers: ev.Headers,
		Body:    body,
	}, nil
}

func ResponseToEvent(resp core.Response) events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		Body:       string(resp.Body),
	}
}

// Handler is the function handed to lambda.Start.
type Handler func(ctx context.Context, ev events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error)

// NewHandler looks up the named in-process handler once and adapts it.
func NewHandler(name string, zl *zap.Logger) (Handler, error) {
	h, ok := core.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("handler %q not registered", name)
	}
	return func(ctx context.Context, ev events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		req, err := RequestFromEvent(ev)
		if err != nil {
			zl.Error("bad proxy event", zap.Error(err), zap.String("requestId", ev.RequestContext.RequestID))
			return events.APIGatewayProxyResponse{}, err
		}
		resp, err := h(ctx, req)
		if err != nil {
			zl.Error("handler failed", zap.Error(err), zap.String("requestId", ev.RequestContext.RequestID))
			return events.APIGatewayProxyResponse{}, err
		}
		return ResponseToEvent(resp), nil
	}, nil
}
