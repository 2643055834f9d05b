package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"tutorly/models"
)

// HTTPGateway talks to the remote appointments API over HTTP. All requests
// carry the stored bearer token; a 401 response clears that token as a side
// effect so the next authenticated action forces re-authentication. No
// request is retried automatically.
type HTTPGateway struct {
	BaseURL string
	Client  *http.Client
	Tokens  TokenStore
	Logger  *zap.Logger
}

// NewHTTPGateway builds a gateway for the given base URL.
func NewHTTPGateway(baseURL string, tokens TokenStore, logger *zap.Logger) *HTTPGateway {
	return &HTTPGateway{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  &http.Client{Timeout: 30 * time.Second},
		Tokens:  tokens,
		Logger:  logger,
	}
}

// List fetches appointments matching the participant filter and unwraps the
// pagination envelope into the flat doc list.
func (g *HTTPGateway) List(ctx context.Context, filter models.ParticipantFilter) ([]models.Appointment, error) {
	endpoint := g.BaseURL + "/appointments"
	if query := encodeWhere(filter); query != "" {
		endpoint += "?" + query
	}

	var envelope models.ListEnvelope
	if err := g.do(ctx, http.MethodGet, endpoint, nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Docs, nil
}

// Cancel issues the cancelled status transition for the given appointment.
func (g *HTTPGateway) Cancel(ctx context.Context, id string) error {
	endpoint := fmt.Sprintf("%s/appointments/%s", g.BaseURL, url.PathEscape(id))
	body := map[string]models.Status{"status": models.StatusCancelled}
	return g.do(ctx, http.MethodPatch, endpoint, body, nil)
}

// Create books a new appointment with the full payload.
func (g *HTTPGateway) Create(ctx context.Context, appt models.Appointment) (*models.Appointment, error) {
	endpoint := g.BaseURL + "/appointments"
	var envelope struct {
		Doc *models.Appointment `json:"doc"`
	}
	if err := g.do(ctx, http.MethodPost, endpoint, appt, &envelope); err != nil {
		return nil, err
	}
	if envelope.Doc == nil {
		return nil, malformedError(fmt.Errorf("create response missing doc"))
	}
	return envelope.Doc, nil
}

// CreateCheckoutSession requests a checkout redirect URL for the payload.
func (g *HTTPGateway) CreateCheckoutSession(ctx context.Context, payload models.CheckoutPayload) (string, error) {
	endpoint := g.BaseURL + "/api/stripe/checkout"
	body := map[string]models.CheckoutPayload{"appointmentData": payload}
	var out struct {
		URL string `json:"url"`
	}
	if err := g.do(ctx, http.MethodPost, endpoint, body, &out); err != nil {
		return "", err
	}
	if out.URL == "" {
		return "", malformedError(fmt.Errorf("checkout response missing url"))
	}
	return out.URL, nil
}

// do performs one request and decodes a 2xx response into out (when non-nil).
func (g *HTTPGateway) do(ctx context.Context, method, endpoint string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return transportError(err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return transportError(err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token, err := g.Tokens.Get(ctx); err == nil && token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := g.Client.Do(req)
	if err != nil {
		g.Logger.Warn("remote API unreachable", zap.String("endpoint", endpoint), zap.Error(err))
		return transportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		// Stored credentials are stale; drop them so the next
		// authenticated action forces re-authentication.
		if err := g.Tokens.Clear(ctx); err != nil {
			g.Logger.Warn("failed to clear bearer token after 401", zap.Error(err))
		}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return httpError(resp.StatusCode, serverMessage(resp.Body))
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return malformedError(err)
	}
	return nil
}

// serverMessage pulls the human-readable message out of an error body.
// The remote API answers with {message}, {error} or {errors:[{message}]}.
func serverMessage(body io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(body, 1<<16))
	if err != nil {
		return ""
	}
	var parsed struct {
		Message string `json:"message"`
		Error   string `json:"error"`
		Errors  []struct {
			Message string `json:"message"`
		} `json:"errors"`
	}
	if err := json.Unmarshal(data, &parsed); err != nil {
		return ""
	}
	switch {
	case parsed.Message != "":
		return parsed.Message
	case parsed.Error != "":
		return parsed.Error
	case len(parsed.Errors) > 0:
		return parsed.Errors[0].Message
	}
	return ""
}

// encodeWhere builds the where predicate: a boolean AND of field.in:id
// clauses over the non-empty participant groups.
func encodeWhere(filter models.ParticipantFilter) string {
	if filter.IsZero() {
		return ""
	}
	values := url.Values{}
	clause := 0
	add := func(field string, ids []string) {
		if len(ids) == 0 {
			return
		}
		key := fmt.Sprintf("where[and][%d][%s][in]", clause, field)
		values.Set(key, strings.Join(ids, ","))
		clause++
	}
	add("students", filter.StudentIDs)
	add("tutors", filter.TutorIDs)
	add("parents", filter.ParentIDs)
	return values.Encode()
}
