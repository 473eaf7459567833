package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

type fileInfo struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
}

type response struct {
	Data  []fileInfo `json:"data"`
	Total int        `json:"total"`
}

type errorMsg struct {
	ErrorMsg string `json:"error"`
}

func handleRequest(event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String("eu-north-1"),
	})

	responseHeaders := make(map[string]string)
	responseHeaders["Content-Type"] = "application/json"

	if err != nil {
		errorMsg := fmt.Sprintf("Error creating session %v", err)
		fmt.Println(errorMsg)
		return createResponse(500, responseHeaders, stringToJSON(errorMsg)), nil
	}

	svc := s3.New(sess)

	resp, err := svc.ListObjectsV2(&s3.ListObjectsV2Input{Bucket: aws.String(os.Getenv("BUCKET_NAME_GEN"))})
	if err != nil {
		errorMsg := fmt.Sprintf("Unable to list items in bucket %q, %v", os.Getenv("BUCKET_NAME_GEN"), err)
		fmt.Println(errorMsg)
		return createResponse(500, responseHeaders, stringToJSON(errorMsg)), nil
	}

	// keep only the generated MIDI files
	generated := []fileInfo{}
	for _, item := range resp.Contents {
		if strings.HasSuffix(*item.Key, ".mid") {
			generated = append(generated, fileInfo{*item.Key, *item.Size})
		}
	}

	limit, offset := parseParameters(&event)
	if limit < 0 || offset < 0 {
		errorMsg := fmt.Sprintf("limit or offset negative: limit %v offset %v", limit, offset)
		fmt.Println(errorMsg)
		return createResponse(400, responseHeaders, stringToJSON(errorMsg)), nil
	}
	if limit == 0 {
		limit = len(generated)
	}
	if offset > len(generated) {
		errorMsg := fmt.Sprintf("Offset cannot be greater than total number of files. offset: %v total: %v", offset, len(generated))
		fmt.Println(errorMsg)
		return createResponse(400, responseHeaders, stringToJSON(errorMsg)), nil
	}

	start := offset
	stop := minInt(offset+limit, len(generated))

	serverResponse := response{Data: generated[start:stop], Total: len(generated)}
	responseBody, err := json.Marshal(&serverResponse)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to serialize response %v %v", serverResponse, err)
		fmt.Println(errorMsg)
		return createResponse(500, responseHeaders, stringToJSON(errorMsg)), nil
	}

	return createResponse(200, responseHeaders, string(responseBody)), nil
}

func createResponse(statusCode int, headers map[string]string, body string) events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{StatusCode: statusCode, Headers: headers, Body: body}
}

func stringToJSON(msg string) string {
	jsonString, err := json.Marshal(&errorMsg{ErrorMsg: msg})
	if err != nil {
		fmt.Println("Failed to serialize error message", err)
		return `{"error":"internal error"}`
	}
	return string(jsonString)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func parseParameters(event *events.APIGatewayProxyRequest) (int, int) {
	limit, err := strconv.Atoi(event.QueryStringParameters["limit"])
	if err != nil {
		limit = 0
	}
	offset, err := strconv.Atoi(event.QueryStringParameters["offset"])
	if err != nil {
		offset = 0
	}
	return limit, offset
}

func main() {
	lambda.Start(handleRequest)
}

