package api

import "context"

// AuthResponse is returned by login, register and validate.
type AuthResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Username    string `json:"username"`
	Email       string `json:"email"`
}

// Register creates a user account.
func (c *Client) Register(ctx context.Context, username, email, password string) (*AuthResponse, error) {
	in := map[string]string{"username": username, "email": email, "password": password}
	var out AuthResponse
	if err := c.do(ctx, "POST", "/users/register", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login exchanges credentials for an access token. The client keeps using the new token.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	in := map[string]string{"email": email, "password": password}
	var out AuthResponse
	if err := c.do(ctx, "POST", "/users/login", in, &out); err != nil {
		return nil, err
	}
	c.Token = out.AccessToken
	return &out, nil
}

// Validate checks that token is still valid.
func (c *Client) Validate(ctx context.Context, token string) (*AuthResponse, error) {
	var out AuthResponse
	if err := c.do(ctx, "POST", "/users/validate", map[string]string{"access_token": token}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
