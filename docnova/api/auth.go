package api

import (
	"context"
	"encoding/json"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"

	"github.com/docnova/go-docnova-client/docnova/model"
)

type AuthService interface {
	// Authenticate exchanges credentials for the user record and its session
	// token. The credentials are validated locally before any call is made.
	Authenticate(ctx context.Context, creds model.Credentials) (*model.LoginResult, error)
}

type auth struct {
	client   Client
	validate *validator.Validate
}

func NewAuthService(client Client) AuthService {
	return &auth{client: client, validate: validator.New()}
}

func (a *auth) Authenticate(ctx context.Context, creds model.Credentials) (*model.LoginResult, error) {
	log.Debug("authenticating")

	if err := a.validate.Struct(creds); err != nil {
		return nil, asValidationError(err)
	}

	var raw json.RawMessage
	if err := a.client.PostJSONNoAuth(ctx, "/auth/login/dev", creds, &raw); err != nil {
		var re *RequestError
		if errors.As(err, &re) {
			return nil, &AuthError{RequestError: *re}
		}
		return nil, errors.Wrap(err, "authenticate")
	}

	token, err := extractJWT(raw)
	if err != nil {
		return nil, errors.Wrap(err, "login response")
	}
	if token == "" {
		return nil, &AuthError{RequestError: RequestError{Category: CategoryGeneric, ServerMessage: "no jwt in login response"}}
	}

	return &model.LoginResult{User: jx.Raw(raw), Token: token}, nil
}

func asValidationError(err error) error {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		return &ValidationError{Field: ve[0].Field(), Message: ve[0].Tag()}
	}
	return err
}

// extractJWT pulls the jwt field out of the otherwise opaque login response.
func extractJWT(raw []byte) (string, error) {
	var token string
	d := jx.DecodeBytes(raw)
	err := d.Obj(func(d *jx.Decoder, key string) error {
		if key == "jwt" {
			s, err := d.Str()
			if err != nil {
				return err
			}
			token = s
			return nil
		}
		return d.Skip()
	})
	return token, err
}
