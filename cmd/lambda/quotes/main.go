package main

import (
	"context"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	awslambda "github.com/aws/aws-lambda-go/lambda"
	"github.com/sirupsen/logrus"

	"quotes-api/internal/handlers"
	"quotes-api/pkg/lambda"
)

func handler(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	container, err := lambda.GetConnectionManager().GetContainer(ctx)
	if err != nil {
		logrus.WithError(err).Error("Failed to initialize container")
		return proxyResponse(lambda.TextResponse(http.StatusInternalServerError, "Internal Server Error")), nil
	}

	req := &lambda.Request{
		Method:      event.HTTPMethod,
		Path:        event.Path,
		Headers:     event.Headers,
		QueryParams: event.QueryStringParameters,
		Body:        []byte(event.Body),
	}

	quoteHandler := handlers.NewQuoteHandler(container.QuoteService)

	resp, err := quoteHandler.Route(ctx, req)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"method": req.Method,
			"error":  err.Error(),
		}).Error("Request handling failed")
		return proxyResponse(lambda.TextResponse(http.StatusInternalServerError, "Internal Server Error")), nil
	}

	return proxyResponse(resp), nil
}

func proxyResponse(resp *lambda.Response) events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode:        resp.StatusCode,
		Headers:           map[string]string{},
		MultiValueHeaders: map[string][]string{},
		Body:              string(resp.Body),
		IsBase64Encoded:   false,
	}
}

func main() {
	awslambda.Start(handler)
}
