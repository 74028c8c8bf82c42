// Package backend talks to the Mega City Cab REST API.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"megacitycab/internal/config"
	"megacitycab/internal/models"
	"megacitycab/pkg/logger"
)

var (
	// ErrTransport means no response came back at all.
	ErrTransport = errors.New("backend unreachable")
	// ErrUnauthorized is a 401; the caller's token is no longer accepted.
	ErrUnauthorized = errors.New("backend rejected credentials")
)

// APIError is any other non-2xx answer.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend returned %d", e.StatusCode)
	}
	return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Message)
}

// IsStatus reports whether err is an *APIError with the given status.
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == status
}

type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	logger     *logger.Logger
}

func NewClient(cfg *config.BackendConfig, log *logger.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		userAgent:  cfg.UserAgent,
		httpClient: &http.Client{Timeout: timeout},
		logger:     log,
	}
}

// part is one field of a multipart upload. Files carry a filename.
type part struct {
	name        string
	value       []byte
	fileName    string
	contentType string
}

func textPart(name, value string) part {
	return part{name: name, value: []byte(value)}
}

func jsonPart(name string, v interface{}) (part, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return part{}, fmt.Errorf("failed to marshal %s: %w", name, err)
	}
	return part{name: name, value: raw, contentType: "application/json"}, nil
}

func filePart(name string, upload *models.FileUpload) part {
	fileName := upload.FileName
	if fileName == "" {
		fileName = name
	}
	return part{name: name, value: upload.Data, fileName: fileName, contentType: upload.ContentType}
}

func (c *Client) getJSON(ctx context.Context, path, token string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, token, nil, "", out)
}

func (c *Client) sendJSON(ctx context.Context, method, path, token string, in, out interface{}) error {
	var body io.Reader
	contentType := ""
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(raw)
		contentType = "application/json"
	}
	return c.do(ctx, method, path, token, body, contentType, out)
}

func (c *Client) sendMultipart(ctx context.Context, method, path, token string, parts []part, out interface{}) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for _, p := range parts {
		header := make(textproto.MIMEHeader)
		disposition := fmt.Sprintf(`form-data; name="%s"`, escapeQuotes(p.name))
		if p.fileName != "" {
			disposition += fmt.Sprintf(`; filename="%s"`, escapeQuotes(p.fileName))
		}
		header.Set("Content-Disposition", disposition)
		switch {
		case p.contentType != "":
			header.Set("Content-Type", p.contentType)
		case p.fileName != "":
			header.Set("Content-Type", "application/octet-stream")
		}

		w, err := writer.CreatePart(header)
		if err != nil {
			return fmt.Errorf("failed to create part %s: %w", p.name, err)
		}
		if _, err := w.Write(p.value); err != nil {
			return fmt.Errorf("failed to write part %s: %w", p.name, err)
		}
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close multipart body: %w", err)
	}

	return c.do(ctx, method, path, token, &buf, writer.FormDataContentType(), out)
}

func (c *Client) do(ctx context.Context, method, path, token string, body io.Reader, contentType string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WithError(err).WithField("path", path).Warn("backend call failed")
		return fmt.Errorf("%w: %s %s: %v", ErrTransport, method, path, err)
	}
	defer resp.Body.Close()

	c.logger.LogBackendCall(method, path, resp.StatusCode, time.Since(start))

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: failed to read response: %v", ErrTransport, err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode, Message: errorMessage(raw)}
	}

	return decode(raw, out)
}

func decode(raw []byte, out interface{}) error {
	if out == nil {
		return nil
	}
	// Several endpoints answer with a bare text message.
	if s, ok := out.(*string); ok {
		var str string
		if json.Unmarshal(raw, &str) == nil {
			*s = str
		} else {
			*s = strings.TrimSpace(string(raw))
		}
		return nil
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return nil
}

func errorMessage(raw []byte) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if json.Unmarshal(raw, &body) == nil {
		if body.Message != "" {
			return body.Message
		}
		if body.Error != "" {
			return body.Error
		}
	}
	msg := strings.TrimSpace(string(raw))
	if len(msg) > 200 {
		msg = msg[:200]
	}
	if strings.HasPrefix(msg, "{") || strings.HasPrefix(msg, "<") {
		return ""
	}
	return msg
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
