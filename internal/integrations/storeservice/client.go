package storeservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы со StoreService (салоны, услуги, сотрудники)
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента StoreService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetStore получает салон по ID
func (c *Client) GetStore(ctx context.Context, storeID int64) (*Store, error) {
	url := fmt.Sprintf("%s/internal/stores/%d", c.baseURL, storeID)

	var store Store
	if err := c.get(ctx, url, &store); err != nil {
		return nil, err
	}

	return &store, nil
}

// GetService получает услугу салона по ID
func (c *Client) GetService(ctx context.Context, storeID, serviceID int64) (*Service, error) {
	url := fmt.Sprintf("%s/internal/stores/%d/services/%d", c.baseURL, storeID, serviceID)

	var service Service
	if err := c.get(ctx, url, &service); err != nil {
		return nil, err
	}

	return &service, nil
}

// GetEmployees получает состав сотрудников салона
// Порядок списка сохраняется как есть - он определяет tie-break планировщика
func (c *Client) GetEmployees(ctx context.Context, storeID int64) ([]Employee, error) {
	url := fmt.Sprintf("%s/internal/stores/%d/employees", c.baseURL, storeID)

	var employees []Employee
	if err := c.get(ctx, url, &employees); err != nil {
		return nil, err
	}

	return employees, nil
}

// get выполняет GET запрос и декодирует JSON ответ
func (c *Client) get(ctx context.Context, url string, dest interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return c.notFound(url)
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}

// notFound выбирает sentinel ошибку по типу ресурса в URL
func (c *Client) notFound(url string) error {
	if strings.Contains(url, "/services/") {
		return ErrServiceNotFound
	}
	return ErrStoreNotFound
}
