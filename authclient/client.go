// Package authclient exchanges credentials for a session against the remote
// login endpoint and normalizes the server's user representation into the
// canonical User shape.
package authclient

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/neurobridge/dashboard/session"
	"github.com/neurobridge/dashboard/users"
)

const loginPath = "/auth/login"

// Client talks to the remote auth API. The exchange is a single
// request/response; retries and timeouts belong to the injected transport.
type Client struct {
	baseURL    string
	httpClient *http.Client
	validate   *validator.Validate
}

// Option defines a function type to modify the Client instance.
type Option func(*Client)

// WithHTTPClient overrides the transport (primarily for tests and timeouts).
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// New creates a Client for the API at baseURL.
func New(baseURL string, options ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
		validate:   validator.New(),
	}
	for _, opt := range options {
		opt(c)
	}
	return c
}

type credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// rawUser is the user shape as the API returns it. The display name is
// optional in favour of firstName/lastName.
type rawUser struct {
	ID            string     `json:"id"`
	Email         string     `json:"email"`
	Name          string     `json:"name"`
	FirstName     string     `json:"firstName"`
	LastName      string     `json:"lastName"`
	Role          string     `json:"role"`
	InstitutionID string     `json:"institutionId"`
	CreatedAt     time.Time  `json:"createdAt"`
	LastLoginAt   *time.Time `json:"lastLoginAt"`
}

type loginResponse struct {
	AccessToken  string  `json:"accessToken"`
	RefreshToken string  `json:"refreshToken"`
	User         rawUser `json:"user"`
}

// LoginWithCredentials performs the login exchange. Any non-2xx response
// surfaces as *APIError carrying the status and, when present, the body's
// code field.
func (c *Client) LoginWithCredentials(ctx context.Context, email, password string) (*session.Session, error) {
	creds := credentials{Email: email, Password: password}
	if err := c.validate.Struct(creds); err != nil {
		return nil, errors.Wrap(err, "[Client.LoginWithCredentials] invalid credentials payload")
	}

	body, err := json.Marshal(creds)
	if err != nil {
		return nil, errors.Wrap(err, "[Client.LoginWithCredentials] marshal credentials")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+loginPath, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "[Client.LoginWithCredentials] build request")
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "[Client.LoginWithCredentials] do request")
	}
	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return nil, apiError(res)
	}

	var lr loginResponse
	if err := json.NewDecoder(res.Body).Decode(&lr); err != nil {
		return nil, errors.Wrap(err, "[Client.LoginWithCredentials] decode response")
	}

	user, err := normalizeUser(lr.User)
	if err != nil {
		return nil, errors.Wrap(err, "[Client.LoginWithCredentials] normalize user")
	}

	return &session.Session{
		AccessToken:  lr.AccessToken,
		RefreshToken: lr.RefreshToken,
		User:         user,
	}, nil
}

// apiError reads an optional {code} body from a failure response. An
// unparseable body still yields the status, just without a code.
func apiError(res *http.Response) *APIError {
	apiErr := &APIError{Status: res.StatusCode}
	var body struct {
		Code string `json:"code"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err == nil {
		apiErr.Code = body.Code
	}
	return apiErr
}

// normalizeUser maps the API user shape onto the canonical User. A missing
// display name is synthesized by joining the non-empty name parts, falling
// back to the email. An unknown role is an error, never a default.
func normalizeUser(raw rawUser) (users.User, error) {
	role, err := users.ParseRole(raw.Role)
	if err != nil {
		return users.User{}, err
	}

	name := raw.Name
	if name == "" {
		parts := make([]string, 0, 2)
		for _, part := range []string{raw.FirstName, raw.LastName} {
			if part != "" {
				parts = append(parts, part)
			}
		}
		name = strings.Join(parts, " ")
	}
	if name == "" {
		name = raw.Email
	}

	return users.User{
		ID:            raw.ID,
		Email:         raw.Email,
		Name:          name,
		Role:          role,
		InstitutionID: raw.InstitutionID,
		CreatedAt:     raw.CreatedAt,
		LastLoginAt:   raw.LastLoginAt,
	}, nil
}
