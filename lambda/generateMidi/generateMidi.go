package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	midigen "github.com/Shoggoth269/MIDIGenerator"
	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

type Event struct {
	FileName string `json:"fileName"`
	Format   *int   `json:"format"`
	Seed     *int64 `json:"seed"`
}

type Response struct {
	Key     string `json:"key"`
	Format  uint16 `json:"format"`
	Tracks  uint16 `json:"tracks"`
	Message string `json:"message"`
}

type ErrorMsg struct {
	ErrorMsg string `json:"error"`
}

func HandleRequest(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	responseHeaders := make(map[string]string)
	responseHeaders["Content-Type"] = "application/json"

	sess, err := session.NewSession(&aws.Config{
		Region: aws.String("eu-north-1"),
	})
	if err != nil {
		errorMsg := fmt.Sprintf("Error creating session %v", err)
		fmt.Println(errorMsg)
		return createResponse(500, responseHeaders, stringToJSON(errorMsg)), nil
	}

	data := &Event{}
	err = json.Unmarshal([]byte(event.Body), data)
	if err != nil {
		errorMsg := fmt.Sprintf("Unable to parse body %v", event.Body)
		fmt.Println(errorMsg)
		return createResponse(400, responseHeaders, stringToJSON(errorMsg)), nil
	}
	if data.FileName == "" {
		errorMsg := "Missing fileName"
		fmt.Println(errorMsg)
		return createResponse(400, responseHeaders, stringToJSON(errorMsg)), nil
	}
	if data.Format != nil && (*data.Format < 0 || *data.Format > 2) {
		errorMsg := fmt.Sprintf("Format %v out of range", *data.Format)
		fmt.Println(errorMsg)
		return createResponse(400, responseHeaders, stringToJSON(errorMsg)), nil
	}

	var opts []midigen.Option
	if data.Seed != nil {
		opts = append(opts, midigen.WithSeed(*data.Seed))
	}
	generator := midigen.New(opts...)

	var file *midigen.File
	if data.Format != nil {
		file = generator.FileWithFormat(uint16(*data.Format))
	} else {
		file = generator.File()
	}

	uploader := s3manager.NewUploader(sess)
	midiRead, midiWrite := io.Pipe()

	go func() {
		_, err := file.WriteTo(midiWrite)
		midiWrite.CloseWithError(err)
	}()

	err = uploadMidi(data.FileName, midiRead, uploader)
	if err != nil {
		errorMsg := fmt.Sprintf("Unable to upload file %v: %v", data.FileName, err)
		fmt.Println(errorMsg)
		return createResponse(500, responseHeaders, stringToJSON(errorMsg)), nil
	}

	response := Response{
		Key:     data.FileName,
		Format:  file.Header.Format,
		Tracks:  file.Header.NumTracks,
		Message: "generated",
	}
	responseBody, err := json.Marshal(&response)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to serialize response %v %v", response, err)
		fmt.Println(errorMsg)
		return createResponse(500, responseHeaders, stringToJSON(errorMsg)), nil
	}

	return createResponse(200, responseHeaders, string(responseBody)), nil
}

func uploadMidi(s3key string, data io.Reader, uploader *s3manager.Uploader) error {
	fmt.Printf("starting upload of file %v\n", s3key)
	_, err := uploader.Upload(&s3manager.UploadInput{
		Bucket: aws.String(os.Getenv("BUCKET_NAME_GEN")),
		Key:    aws.String(s3key),
		Body:   data,
	})
	if err != nil {
		return err
	}
	return nil
}

func createResponse(statusCode int, headers map[string]string, body string) events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{StatusCode: statusCode, Headers: headers, Body: body}
}

func stringToJSON(msg string) string {
	jsonString, err := json.Marshal(&ErrorMsg{ErrorMsg: msg})
	if err != nil {
		fmt.Println("Failed to serialize error message", err)
		return `{"error":"internal error"}`
	}
	return string(jsonString)
}

func main() {
	lambda.Start(HandleRequest)
}
