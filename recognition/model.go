package recognition

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

const (
	StatusRecognized    = "recognized"
	StatusNotRecognized = "not recognized"
)

// Sample один аудиофайл, отправляемый в сервис
type Sample struct {
	FileName string
	Data     []byte
}

type VerifyResult struct {
	Status     string                 `json:"status"`
	Name       string                 `json:"name"`
	Confidence json.Number            `json:"confidence"`
	Message    string                 `json:"message"`
	Error      string                 `json:"error"`
	Scores     map[string]json.Number `json:"all_scores"`
}

type messageResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// APIError ответ сервиса с кодом отличным от 2xx
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("recognition service returned %d: %s", e.StatusCode, e.Message)
}

func newAPIError(statusCode int, body []byte) *APIError {
	var data messageResponse
	if err := json.Unmarshal(body, &data); err == nil && data.Error != "" {
		return &APIError{StatusCode: statusCode, Message: data.Error}
	}

	return &APIError{StatusCode: statusCode, Message: http.StatusText(statusCode)}
}

// IsAPIError отличает отказ сервиса от ошибки транспорта
func IsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}

	return nil, false
}
