// Package authclient talks to the remote auth backend over HTTP.
package authclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

var _ port.AuthProvider = (*Client)(nil)

const (
	loginPath    = "/auth/login"
	registerPath = "/auth/register"
)

type (
	loginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	// The backend expects the name field capitalized, that is its
	// contract, not a typo.
	registerRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Name     string `json:"Name"`
	}

	authResponse struct {
		ID      string `json:"id"`
		Name    string `json:"name"`
		Email   string `json:"email"`
		Message string `json:"message"`
	}
)

type Client struct {
	baseURL string
	httpCl  *http.Client
}

func New(baseURL string, timeout time.Duration) Client {
	return Client{
		baseURL: baseURL,
		httpCl:  &http.Client{Timeout: timeout},
	}
}

func (c Client) Login(
	ctx context.Context, email, password string,
) (domain.User, error) {
	const op = "Client.Login"

	res, err := c.post(ctx, loginPath, loginRequest{email, password})
	if err != nil {
		return domain.User{}, fmt.Errorf("%s: %w", op, err)
	}

	return c.toUser(res, "", email), nil
}

func (c Client) Register(
	ctx context.Context, name, email, password string,
) (domain.User, error) {
	const op = "Client.Register"

	res, err := c.post(ctx, registerPath, registerRequest{email, password, name})
	if err != nil {
		return domain.User{}, fmt.Errorf("%s: %w", op, err)
	}

	return c.toUser(res, name, email), nil
}

func (c Client) post(
	ctx context.Context, path string, body any,
) (authResponse, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return authResponse{}, err
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data),
	)
	if err != nil {
		return authResponse{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	httpRes, err := c.httpCl.Do(req)
	if err != nil {
		return authResponse{}, err
	}
	defer httpRes.Body.Close()

	var res authResponse
	if err := json.NewDecoder(httpRes.Body).Decode(&res); err != nil {
		res = authResponse{}
	}

	if httpRes.StatusCode < 200 || httpRes.StatusCode > 299 {
		msg := res.Message
		if msg == "" {
			msg = fmt.Sprintf("auth backend returned status %d", httpRes.StatusCode)
		}
		return authResponse{}, &domain.AuthError{Message: msg}
	}

	return res, nil
}

// toUser prefers the identity returned by the backend and falls back to
// the submitted name and email only for fields the backend omits. The
// fallback covers backends that acknowledge without echoing identity.
func (c Client) toUser(res authResponse, name, email string) domain.User {
	u := domain.User{ID: res.ID, Name: res.Name, Email: res.Email}
	if u.ID == "" {
		u.ID = email
	}
	if u.Name == "" {
		u.Name = name
	}
	if u.Email == "" {
		u.Email = email
	}
	return u
}
