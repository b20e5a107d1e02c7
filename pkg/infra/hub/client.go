package hub

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/hubsync/pkg/domain/interfaces"
)

// DefaultBaseURL is the Docker Hub API endpoint.
const DefaultBaseURL = "https://hub.docker.com"

type client struct {
	baseURL    string
	username   string
	token      string
	httpClient *http.Client
}

// Option is a functional option for the Docker Hub client
type Option func(*client)

// WithBaseURL overrides the Docker Hub API endpoint
func WithBaseURL(baseURL string) Option {
	return func(c *client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient overrides the HTTP client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a Docker Hub registry client. username and token are
// the Docker Hub account and its personal access token.
func NewClient(username, token string, opts ...Option) interfaces.RegistryClient {
	c := &client{
		baseURL:  DefaultBaseURL,
		username: username,
		token:    token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type updateRequest struct {
	Description     string `json:"description"`
	FullDescription string `json:"full_description"`
}

// UpdateDescription logs in to Docker Hub and patches the repository's
// short and full description. A single attempt is made; any failure is
// returned to the caller as-is.
func (c *client) UpdateDescription(ctx context.Context, path, short, full string) error {
	jwt, err := c.login(ctx)
	if err != nil {
		return err
	}

	body, err := json.Marshal(&updateRequest{
		Description:     short,
		FullDescription: full,
	})
	if err != nil {
		return goerr.Wrap(err, "failed to marshal update request")
	}

	url := c.baseURL + "/v2/repositories/" + path + "/"
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, url, bytes.NewReader(body))
	if err != nil {
		return goerr.Wrap(err, "failed to create update request", goerr.V("url", url))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "JWT "+jwt)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return goerr.Wrap(err, "failed to call Docker Hub", goerr.V("path", path))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return goerr.New("Docker Hub returned an error",
			goerr.V("path", path),
			goerr.V("status", resp.StatusCode),
			goerr.V("body", string(msg)),
		)
	}

	return nil
}

// login exchanges the username and access token for a short-lived JWT.
func (c *client) login(ctx context.Context) (string, error) {
	body, err := json.Marshal(&loginRequest{
		Username: c.username,
		Password: c.token,
	})
	if err != nil {
		return "", goerr.Wrap(err, "failed to marshal login request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v2/users/login", bytes.NewReader(body))
	if err != nil {
		return "", goerr.Wrap(err, "failed to create login request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", goerr.Wrap(err, "failed to log in to Docker Hub")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", goerr.New("Docker Hub login failed",
			goerr.V("status", resp.StatusCode),
			goerr.V("username", c.username),
		)
	}

	var login loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&login); err != nil {
		return "", goerr.Wrap(err, "failed to decode login response")
	}
	if login.Token == "" {
		return "", goerr.New("Docker Hub login returned an empty token")
	}

	return login.Token, nil
}
