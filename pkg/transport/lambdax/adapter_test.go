package lambdax

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/joeydtaylor/armory/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRequestFromEvent(t *testing.T) {
	req, err := RequestFromEvent(events.APIGatewayProxyRequest{
		HTTPMethod:            "GET",
		Path:                  "/items",
		QueryStringParameters: map[string]string{"name": "Eldertome"},
		Body:                  base64.StdEncoding.EncodeToString([]byte("raw")),
		IsBase64Encoded:       true,
	})
	require.NoError(t, err)
	assert.Equal(t, "GET", req.Method)
	assert.Equal(t, "/items", req.Path)
	assert.Equal(t, []byte("raw"), req.Body)
	v, ok := req.Param("name")
	assert.True(t, ok)
	assert.Equal(t, "Eldertome", v)

	req, err = RequestFromEvent(events.APIGatewayProxyRequest{})
	require.NoError(t, err)
	assert.Nil(t, req.Query)

	_, err = RequestFromEvent(events.APIGatewayProxyRequest{Body: "%%%", IsBase64Encoded: true})
	require.Error(t, err)
}

func TestNewHandler(t *testing.T) {
	core.Register("test.lambda", func(_ context.Context, req core.Request) (core.Response, error) {
		if req.Query == nil {
			return core.Response{}, errors.New("no params")
		}
		return core.Response{
			StatusCode: 200,
			Headers:    map[string]string{"Content-Type": "application/json"},
			Body:       []byte(`{"name":"` + req.Query["name"] + `"}`),
		}, nil
	})
	t.Cleanup(func() { core.Unregister("test.lambda") })

	h, err := NewHandler("test.lambda", zap.NewNop())
	require.NoError(t, err)

	out, err := h(context.Background(), events.APIGatewayProxyRequest{
		QueryStringParameters: map[string]string{"name": "Orb"},
	})
	require.NoError(t, err)
	assert.Equal(t, 200, out.StatusCode)
	assert.Equal(t, "application/json", out.Headers["Content-Type"])
	assert.Equal(t, `{"name":"Orb"}`, out.Body)

	_, err = h(context.Background(), events.APIGatewayProxyRequest{})
	require.Error(t, err)
}

func TestNewHandler_Unregistered(t *testing.T) {
	_, err := NewHandler("test.missing", zap.NewNop())
	require.Error(t, err)
}
