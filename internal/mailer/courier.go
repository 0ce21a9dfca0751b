package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	entity "disaster-alert/internal/domain"

	"github.com/pkg/errors"
)

const DefaultCourierBaseURL = "https://api.courier.com"

var ErrMissingToken = errors.New("courier authorization token is empty")

// Courier sends messages through the Courier send API.
// See https://www.courier.com/docs/reference/send/message/.
type Courier struct {
	baseURL string
	token   string
	client  *http.Client
}

func NewCourier(baseURL, token string, client *http.Client) (*Courier, error) {
	if token == "" {
		return nil, ErrMissingToken
	}
	if baseURL == "" {
		baseURL = DefaultCourierBaseURL
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &Courier{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		client:  client,
	}, nil
}

type courierRequest struct {
	Message courierMessage `json:"message"`
}

type courierMessage struct {
	To      courierRecipient  `json:"to"`
	Content courierContent    `json:"content"`
	Data    map[string]string `json:"data,omitempty"`
}

type courierRecipient struct {
	Email string `json:"email"`
}

type courierContent struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

func (c *Courier) Send(ctx context.Context, msg *entity.AlertEmail) (entity.ProviderResponse, error) {
	post, err := c.preparePost(msg)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/send", post)
	if err != nil {
		return nil, errors.Wrap(err, "error building courier request")
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &ProviderError{Provider: ProviderCourier, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ProviderError{Provider: ProviderCourier, StatusCode: resp.StatusCode, Err: err}
	}

	if resp.StatusCode/100 != 2 {
		type response struct {
			Message string `json:"message"`
		}
		r := &response{Message: fmt.Sprintf("failed to understand Courier response. content: %s", string(body))}
		_ = json.Unmarshal(body, r)
		return nil, &ProviderError{Provider: ProviderCourier, StatusCode: resp.StatusCode, Message: r.Message}
	}

	out := entity.ProviderResponse{}
	if len(bytes.TrimSpace(body)) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, &ProviderError{
			Provider:   ProviderCourier,
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("failed to understand Courier response. content: %s", string(body)),
			Err:        errors.Wrap(err, "error decoding courier response"),
		}
	}
	return out, nil
}

func (c *Courier) preparePost(msg *entity.AlertEmail) (io.Reader, error) {
	payload := courierRequest{
		Message: courierMessage{
			To:      courierRecipient{Email: msg.To},
			Content: courierContent{Title: msg.Title, Body: msg.Body},
			Data:    msg.Data,
		},
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "error marshaling courier message")
	}
	return bytes.NewReader(b), nil
}
