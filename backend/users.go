package backend

import (
	"context"

	"posada/models"
)

// loginResponse is the raw login body: token fields plus the user and an
// optional roles list that lives outside the user object.
type loginResponse struct {
	AccessToken string             `json:"access_token"`
	TokenType   string             `json:"token_type"`
	User        models.CurrentUser `json:"user"`
	Roles       []string           `json:"roles,omitempty"`
}

// Login exchanges credentials for a bearer token and the current user.
func (c *Client) Login(ctx context.Context, credentials models.LoginCredentials) (*models.LoginResult, error) {
	var resp loginResponse
	if err := c.doPost(ctx, "/users/login", "", credentials, &resp); err != nil {
		return nil, err
	}
	user := resp.User
	if user.Roles == nil {
		user.Roles = resp.Roles
	}
	if user.Roles == nil {
		user.Roles = []string{}
	}
	return &models.LoginResult{
		AccessToken: resp.AccessToken,
		TokenType:   resp.TokenType,
		User:        user,
	}, nil
}

// currentUserResponse tolerates both shapes the backend returns for the
// session endpoint: a flat user or a {user, roles} wrapper.
type currentUserResponse struct {
	models.CurrentUser
	User  *models.CurrentUser `json:"user,omitempty"`
	Roles []string            `json:"roles,omitempty"`
}

// Me resolves the session claim set for a bearer token. A 401 comes back
// as an *APIError with IsUnauthorized() true.
func (c *Client) Me(ctx context.Context, token string) (*models.CurrentUser, error) {
	var resp currentUserResponse
	if err := c.doGet(ctx, "/users/me", token, &resp); err != nil {
		return nil, err
	}
	user := resp.CurrentUser
	if resp.User != nil {
		user = *resp.User
	}
	if user.Roles == nil {
		user.Roles = resp.Roles
	}
	if user.Roles == nil {
		user.Roles = []string{}
	}
	return &user, nil
}

// Logout invalidates the token on the backend.
func (c *Client) Logout(ctx context.Context, token string) error {
	return c.doPost(ctx, "/users/logout", token, struct{}{}, nil)
}

// Register creates a new user account.
func (c *Client) Register(ctx context.Context, data models.UserRegistrationData) (*models.User, error) {
	var user models.User
	if err := c.doPost(ctx, "/users/register", "", data, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ListUserOptions returns the reduced user list for admin selectors.
func (c *Client) ListUserOptions(ctx context.Context, token string) ([]models.UserOption, error) {
	var users []models.UserOption
	if err := c.doGet(ctx, "/users/", token, &users); err != nil {
		return nil, err
	}
	return users, nil
}
