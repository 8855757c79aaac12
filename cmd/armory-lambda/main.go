package main

import (
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/joeydtaylor/armory/pkg/catalog"
	"github.com/joeydtaylor/armory/pkg/identify"
	"github.com/joeydtaylor/armory/pkg/middleware/logger"
	"github.com/joeydtaylor/armory/pkg/transport/lambdax"
	"go.uber.org/zap"
)

func main() {
	zl := logger.NewConsoleLog()
	defer func() { _ = zl.Sync() }()

	cat, err := catalog.ProvideCatalog(zl)
	if err != nil {
		zl.Fatal("catalog load failed", zap.Error(err))
	}
	identify.Register(identify.New(cat, zl))

	name := os.Getenv("ARMORY_HANDLER")
	if name == "" {
		name = identify.HandlerName
	}
	h, err := lambdax.NewHandler(name, zl)
	if err != nil {
		zl.Fatal("handler lookup failed", zap.Error(err))
	}
	lambda.Start(h)
}
