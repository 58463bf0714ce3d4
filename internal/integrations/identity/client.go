package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client читает ID клиента установки один раз и кеширует его
// Источник: локальный файл client.json или HTTP адрес, отдающий тот же документ
type Client struct {
	file       string
	url        string
	httpClient *http.Client
	log        Logger

	once sync.Once
	id   string
	err  error
}

// NewClient создает клиента; url используется, только если file пустой
func NewClient(file, url string, timeout time.Duration, log Logger) *Client {
	return &Client{
		file: file,
		url:  url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// CallerID возвращает ID клиента установки
// Результат первого вызова (включая ошибку) кешируется
func (c *Client) CallerID(ctx context.Context) (string, error) {
	c.once.Do(func() {
		var info *ClientInfo
		switch {
		case c.file != "":
			info, c.err = c.readFile()
		case c.url != "":
			info, c.err = c.fetch(ctx)
		default:
			c.err = ErrNotConfigured
		}
		if c.err != nil {
			c.log.Error("Identity: failed to resolve caller id: %v", c.err)
			return
		}

		c.id = strings.TrimSpace(info.ID)
		if c.id == "" {
			c.err = ErrEmptyID
			c.log.Error("Identity: %v", c.err)
			return
		}
		c.log.Info("Identity: caller id=%s", c.id)
	})

	return c.id, c.err
}

func (c *Client) readFile() (*ClientInfo, error) {
	data, err := os.ReadFile(c.file)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read %s: %v", ErrInternal, c.file, err)
	}

	var info ClientInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, fmt.Errorf("%w: failed to decode %s: %v", ErrInvalidResponse, c.file, err)
	}

	return &info, nil
}

func (c *Client) fetch(ctx context.Context) (*ClientInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var info ClientInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &info, nil
}
