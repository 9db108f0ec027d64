package auth

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/idtoken"
	"google.golang.org/api/option"

	"github.com/xyz-asif/voluntra/internal/config"
)

// InitFirebase initializes the Firebase Admin SDK and returns the Auth client
func InitFirebase(cfg *config.Config) (*auth.Client, error) {
	opt := option.WithCredentialsFile(cfg.FirebaseServiceAccountPath)
	app, err := firebase.NewApp(context.Background(), nil, opt)
	if err != nil {
		return nil, fmt.Errorf("error initializing firebase app: %v", err)
	}

	client, err := app.Auth(context.Background())
	if err != nil {
		return nil, fmt.Errorf("error getting firebase auth client: %v", err)
	}

	return client, nil
}

// GoogleUser represents the key information extracted from a validated
// Google ID token
type GoogleUser struct {
	UID           string
	Email         string
	Name          string
	Picture       string
	EmailVerified bool
}

// VerifyGoogleToken verifies a Google ID token against the configured
// OAuth client id
func VerifyGoogleToken(ctx context.Context, idTokenString, clientID string) (*GoogleUser, error) {
	payload, err := idtoken.Validate(ctx, idTokenString, clientID)
	if err != nil {
		return nil, fmt.Errorf("invalid google token: %v", err)
	}

	googleUser := &GoogleUser{
		UID: payload.Subject,
	}

	if email, ok := payload.Claims["email"].(string); ok {
		googleUser.Email = email
	}
	if name, ok := payload.Claims["name"].(string); ok {
		googleUser.Name = name
	}
	if picture, ok := payload.Claims["picture"].(string); ok {
		googleUser.Picture = picture
	}
	if verified, ok := payload.Claims["email_verified"].(bool); ok {
		googleUser.EmailVerified = verified
	}

	return googleUser, nil
}

// VerifyFirebaseToken verifies an ID token through the Firebase Admin SDK.
// Used when a service account is configured; carries the same claim set
// as the direct Google validation path.
func VerifyFirebaseToken(ctx context.Context, client *auth.Client, idTokenString string) (*GoogleUser, error) {
	token, err := client.VerifyIDToken(ctx, idTokenString)
	if err != nil {
		return nil, fmt.Errorf("invalid firebase token: %v", err)
	}

	googleUser := &GoogleUser{
		UID: token.UID,
	}

	if email, ok := token.Claims["email"].(string); ok {
		googleUser.Email = email
	}
	if name, ok := token.Claims["name"].(string); ok {
		googleUser.Name = name
	}
	if picture, ok := token.Claims["picture"].(string); ok {
		googleUser.Picture = picture
	}
	if verified, ok := token.Claims["email_verified"].(bool); ok {
		googleUser.EmailVerified = verified
	}

	return googleUser, nil
}
