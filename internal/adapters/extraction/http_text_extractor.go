package extraction

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"showing-route-service/internal/platform/obs"
)

// HTTPTextExtractor implements TextExtractor against the external text
// extraction service (OCR-of-image and parsed-PDF text behind one endpoint).
type HTTPTextExtractor struct {
	session *http.Client
	baseURL string
	apiKey  string
}

func NewHTTPTextExtractor(baseURL, apiKey string) (*HTTPTextExtractor, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, errors.New("extractor base URL is empty")
	}

	return &HTTPTextExtractor{
		// OCR of large documents is slow; the timeout is generous.
		session: &http.Client{Timeout: 60 * time.Second},
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
	}, nil
}

type extractRequest struct {
	DocumentURL string `json:"document_url"`
}

type extractResponse struct {
	Text string `json:"text"`
}

// ExtractText submits a document handle and returns the extracted raw text.
func (e *HTTPTextExtractor) ExtractText(ctx context.Context, documentURL string) (_ string, err error) {
	defer obs.Time(ctx, "extractor.ExtractText")(&err)

	if strings.TrimSpace(documentURL) == "" {
		return "", errors.New("extract text: document URL must be non-empty")
	}

	payload, err := json.Marshal(extractRequest{DocumentURL: documentURL})
	if err != nil {
		return "", fmt.Errorf("marshal extract request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL+"/extract", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create extract request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if e.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+e.apiKey)
	}

	resp, err := e.session.Do(req)
	if err != nil {
		return "", fmt.Errorf("extract request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		b, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf(
			"extract text: service returned %d: %s",
			resp.StatusCode, strings.TrimSpace(string(b)),
		)
	}

	var er extractResponse
	if err := json.NewDecoder(resp.Body).Decode(&er); err != nil {
		return "", fmt.Errorf("decode extract response: %w", err)
	}

	return er.Text, nil
}
