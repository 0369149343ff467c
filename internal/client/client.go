package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"secret_santa/internal/domain"
)

// Client is an HTTP client for the Secret Santa API
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient creates a new API client
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		token:   token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// SetToken updates the client's session token
func (c *Client) SetToken(token string) {
	c.token = token
}

// APIError is an error response from the server. Message is whatever the
// server put in its "error" field and may be empty.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("HTTP %d", e.Status)
	}
	return e.Message
}

type errorBody struct {
	Error string `json:"error"`
}

// Do performs an HTTP request, encoding body and decoding the response into result
func (c *Client) Do(ctx context.Context, method, path string, body, result any) error {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		var eb errorBody
		_ = json.Unmarshal(respBody, &eb)
		return &APIError{Status: resp.StatusCode, Message: eb.Error}
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to parse response: %w", err)
		}
	}
	return nil
}

// LoginResult is the server's answer to a successful login
type LoginResult struct {
	Token string             `json:"token"`
	User  domain.UserProfile `json:"user"`
}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register creates an account
func (c *Client) Register(ctx context.Context, username, password string) error {
	return c.Do(ctx, http.MethodPost, "/user", credentials{username, password}, nil)
}

// Login exchanges credentials for a session token
func (c *Client) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	var res LoginResult
	if err := c.Do(ctx, http.MethodPost, "/login", credentials{username, password}, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

type hostGameResult struct {
	Message string `json:"message"`
	GameID  uint   `json:"gameId"`
}

// HostGame submits a validated game and returns the stored game ID
func (c *Client) HostGame(ctx context.Context, userID uint, game domain.FormattedGame) (uint, error) {
	var res hostGameResult
	payload := domain.HostGameRequest{UserID: userID, FormattedGameData: game}
	if err := c.Do(ctx, http.MethodPost, "/games", payload, &res); err != nil {
		return 0, err
	}
	return res.GameID, nil
}

// HostedGames lists the games hosted by the signed-in user
func (c *Client) HostedGames(ctx context.Context) ([]domain.Game, error) {
	var res struct {
		Games []domain.Game `json:"games"`
	}
	if err := c.Do(ctx, http.MethodGet, "/games", nil, &res); err != nil {
		return nil, err
	}
	return res.Games, nil
}

// GetUserWishlist reads a user's wishlist rows
func (c *Client) GetUserWishlist(ctx context.Context, userID uint) ([]domain.WishlistEntry, error) {
	var entries []domain.WishlistEntry
	path := "/wishlist/" + strconv.FormatUint(uint64(userID), 10)
	if err := c.Do(ctx, http.MethodGet, path, nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// CreateUserWishlist adds one wish and returns the server's acknowledgment
func (c *Client) CreateUserWishlist(ctx context.Context, userID uint, wish domain.Wish, gameID uint) (string, error) {
	body := struct {
		ProductName string `json:"productName"`
		ProductLink string `json:"productLink"`
		UserID      uint   `json:"userId"`
		GameID      uint   `json:"gameId"`
	}{wish.ProductName, wish.ProductLink, userID, gameID}
	var res struct {
		Message string `json:"message"`
	}
	if err := c.Do(ctx, http.MethodPost, "/wishlist", body, &res); err != nil {
		return "", err
	}
	return res.Message, nil
}
