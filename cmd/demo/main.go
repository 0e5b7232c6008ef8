// Command demo submits one transcription job to a running worker and renders
// the result.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"

	"ytscribe/types"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7D56F4")).
			MarginTop(1).
			MarginBottom(1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#874BFD")).
			Padding(1, 2)
)

func main() {
	server := flag.String("server", "http://localhost:8080", "Worker base URL")
	url := flag.String("url", "", "YouTube video URL (required)")
	requestID := flag.String("request-id", "", "Request id (default: demo-<timestamp>)")
	language := flag.String("language", "en", "Transcription language")
	bucket := flag.String("bucket", "", "S3 bucket (default: worker environment)")
	flag.Parse()

	if *url == "" {
		fmt.Println(errorStyle.Render("error: -url is required"))
		flag.Usage()
		os.Exit(1)
	}

	id := *requestID
	if id == "" {
		id = fmt.Sprintf("demo-%d", time.Now().Unix())
	}

	envelope := types.JobEnvelope{Input: types.JobInput{
		YouTubeURL: *url,
		RequestID:  id,
		Language:   *language,
		S3Bucket:   *bucket,
	}}

	fmt.Println(titleStyle.Render("ytscribe demo"))
	fmt.Println(infoStyle.Render(fmt.Sprintf("Submitting job %s to %s", id, *server)))

	result, err := submit(*server, envelope)
	if err != nil {
		fmt.Println(errorStyle.Render("request failed: " + err.Error()))
		os.Exit(1)
	}

	fmt.Println(boxStyle.Render(render(result)))
	if result.Status != types.StatusDone {
		os.Exit(1)
	}
}

func submit(server string, envelope types.JobEnvelope) (*types.JobResult, error) {
	body, err := json.Marshal(envelope)
	if err != nil {
		return nil, err
	}

	// Transcription is slow; leave the client timeout to the server side.
	client := &http.Client{}
	resp, err := client.Post(server+"/api/jobs", "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var result types.JobResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}
	return &result, nil
}

func render(result *types.JobResult) string {
	if result.Status == types.StatusDone {
		return fmt.Sprintf("%s\n\nrequest:  %s\nlanguage: %s\nsrt:      %s\nvtt:      %s",
			statusStyle.Render("DONE"),
			result.RequestID,
			result.Language,
			result.SRTPath,
			result.RawVTTPath,
		)
	}
	return fmt.Sprintf("%s\n\nrequest: %s\nerror:   %s",
		errorStyle.Render("ERROR"),
		result.RequestID,
		result.Error,
	)
}
