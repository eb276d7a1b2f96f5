package telegram

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"
)

// methodGetUpdates метод Bot API, который держит соединение до poll timeout
const methodGetUpdates = "getUpdates"

// NewHTTPClient создаёт HTTP клиент для tgbotapi.
// Каждый вызов Bot API ограничен requestTimeout, getUpdates - requestTimeout+pollTimeout.
func NewHTTPClient(requestTimeout, pollTimeout time.Duration) *http.Client {
	return &http.Client{
		Transport: &timeoutTransport{
			base:           http.DefaultTransport,
			requestTimeout: requestTimeout,
			pollTimeout:    requestTimeout + pollTimeout,
		},
	}
}

// timeoutTransport выставляет таймаут по имени метода Bot API (последний сегмент пути)
type timeoutTransport struct {
	base           http.RoundTripper
	requestTimeout time.Duration
	pollTimeout    time.Duration
}

func (t *timeoutTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	timeout := t.requestTimeout
	if strings.HasSuffix(req.URL.Path, "/"+methodGetUpdates) {
		timeout = t.pollTimeout
	}
	if timeout <= 0 {
		return t.base.RoundTrip(req)
	}

	ctx, cancel := context.WithTimeout(req.Context(), timeout)
	resp, err := t.base.RoundTrip(req.WithContext(ctx))
	if err != nil {
		cancel()
		return nil, err
	}

	// Таймаут действует до закрытия тела ответа
	resp.Body = &cancelOnClose{ReadCloser: resp.Body, cancel: cancel}
	return resp, nil
}

type cancelOnClose struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (c *cancelOnClose) Close() error {
	err := c.ReadCloser.Close()
	c.cancel()
	return err
}
