// Lambda entrypoint for the admin routes under /api/v1/admin.
package main

import (
	"context"
	"log"

	"github.com/aws/aws-lambda-go/events"
	awslambda "github.com/aws/aws-lambda-go/lambda"

	"leadportal-api/internal/config"
	"leadportal-api/pkg/lambda"
)

var adapter *lambda.Adapter

func init() {
	cfg, err := config.GetOptimizedConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	cm := lambda.GetConnectionManager()
	if err := cm.Initialize(cfg); err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}

	container, err := cm.GetContainer(context.Background())
	if err != nil {
		log.Fatalf("Failed to get container: %v", err)
	}

	adapter = lambda.NewAdapter(container.BuildRouter())
}

func handler(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return adapter.Handle(ctx, event)
}

func main() {
	awslambda.Start(handler)
}
