// internal/infra/practicum/client.go
package practicum

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"homework_status_bot/internal/infra/metrics"

	"github.com/sirupsen/logrus"
)

const DefaultEndpoint = "https://practicum.yandex.ru/api/user_api/homework_statuses/"

// StatusResponse is a validated body of the status endpoint.
type StatusResponse struct {
	Homeworks []json.RawMessage
	// CurrentDate is nil when the server did not report one or reported a non-integer.
	CurrentDate *int64
	// CurrentDateInvalid is set when current_date was present but not an integer.
	CurrentDateInvalid bool
}

// Client fetches homework statuses.
type Client struct {
	endpoint   string
	token      string
	httpClient *http.Client
	logger     logrus.FieldLogger
}

func NewClient(endpoint, token string, timeout time.Duration, logger logrus.FieldLogger) *Client {
	return &Client{
		endpoint:   endpoint,
		token:      token,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// FetchStatuses requests homeworks updated since fromDate (epoch seconds).
func (c *Client) FetchStatuses(ctx context.Context, fromDate int64) (*StatusResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequest, err)
	}
	req.Header.Set("Authorization", "OAuth "+c.token)
	q := req.URL.Query()
	q.Set("from_date", strconv.FormatInt(fromDate, 10))
	req.URL.RawQuery = q.Encode()

	c.logger.WithField("from_date", fromDate).Debug("Requesting homework statuses")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.UpstreamDuration.WithLabelValues("error").Observe(time.Since(start).Seconds())
		return nil, fmt.Errorf("%w: %v", ErrRequest, err)
	}
	defer resp.Body.Close()
	metrics.UpstreamDuration.WithLabelValues(strconv.Itoa(resp.StatusCode)).Observe(time.Since(start).Seconds())

	if resp.StatusCode != http.StatusOK {
		return nil, &HTTPStatusError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: чтение тела ответа: %v", ErrRequest, err)
	}
	return ParseResponse(body)
}

// ParseResponse validates the shape of a status endpoint body.
func ParseResponse(body []byte) (*StatusResponse, error) {
	var raw json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if isEmptyValue(raw) {
		return nil, ErrEmptyResponse
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, ErrNotObject
	}

	homeworksRaw, ok := fields["homeworks"]
	if !ok {
		return nil, ErrMissingHomeworks
	}
	var homeworks []json.RawMessage
	if err := json.Unmarshal(homeworksRaw, &homeworks); err != nil || homeworks == nil {
		return nil, ErrHomeworksNotList
	}

	out := &StatusResponse{Homeworks: homeworks}
	if dateRaw, ok := fields["current_date"]; ok && string(dateRaw) != "null" {
		var date int64
		if err := json.Unmarshal(dateRaw, &date); err != nil {
			out.CurrentDateInvalid = true
		} else {
			out.CurrentDate = &date
		}
	}
	return out, nil
}

// isEmptyValue reports JSON values that carry nothing: null, false, 0, "", [] and {}.
func isEmptyValue(raw json.RawMessage) bool {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return false
	}
	switch t := v.(type) {
	case nil:
		return true
	case bool:
		return !t
	case float64:
		return t == 0
	case string:
		return t == ""
	case []any:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	}
	return false
}
