package backend

import (
	"context"
	"errors"
	"net/http"

	domainErrors "github.com/ndavydov/storefront/internal/domain/errors"
)

// Credentials is what a successful login yields. Roles may be absent; older
// backend deployments return only the token.
type Credentials struct {
	Token string
	Roles []string
}

type credentialsPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string   `json:"token"`
	Roles []string `json:"roles,omitempty"`
}

// Login exchanges credentials for a bearer token. The backend does not tell
// the client why a login was rejected, so every rejection surfaces as
// ErrInvalidCredentials.
func (c *Client) Login(ctx context.Context, email, password string) (Credentials, error) {
	var resp loginResponse
	err := c.do(ctx, http.MethodPost, "/user/login", "", credentialsPayload{Email: email, Password: password}, &resp)
	if err != nil {
		var status *StatusError
		if errors.As(err, &status) {
			return Credentials{}, domainErrors.ErrInvalidCredentials
		}
		return Credentials{}, err
	}
	return Credentials{Token: resp.Token, Roles: resp.Roles}, nil
}

// Register creates an account. Any backend rejection maps to
// ErrRegistrationRejected; transport failures pass through.
func (c *Client) Register(ctx context.Context, email, password string) error {
	err := c.do(ctx, http.MethodPost, "/user/register", "", credentialsPayload{Email: email, Password: password}, nil)
	if err != nil {
		var status *StatusError
		if errors.As(err, &status) {
			return domainErrors.ErrRegistrationRejected
		}
		return err
	}
	return nil
}
