package auth

import "context"

type Service interface {
	Signup(ctx context.Context, req SignupRequest) (AuthResponse, error)
	Signin(ctx context.Context, req SigninRequest) (AuthResponse, error)
	Me(ctx context.Context) (AuthResponse, error)
	StreamToken(ctx context.Context) (StreamTokenResponse, error)
	// VerifyStream authenticates an SSE handshake: it validates the stream
	// token and rejects principals whose account has been deactivated.
	VerifyStream(ctx context.Context, token string) (Identity, error)
}
