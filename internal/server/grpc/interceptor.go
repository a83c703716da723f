package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/vkozyrev/floodwatch/internal/common"
	"github.com/vkozyrev/floodwatch/internal/server/auth"
)

type ctxKey string

// UserIDKey is the context key the interceptor stores the authenticated
// caller's account id under.
const UserIDKey ctxKey = "userID"

const methodPrefix = "/floodwatch.service.FloodWatchService/"

// publicMethods are callable without an access token. Everything else
// requires a valid one.
var publicMethods = map[string]bool{
	methodPrefix + "CreateAccount":     true,
	methodPrefix + "SignIn":            true,
	methodPrefix + "RefreshToken":      true,
	methodPrefix + "SendPasswordReset": true,
	methodPrefix + "Ping":              true,
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	if publicMethods[info.FullMethod] {
		return handler(ctx, req)
	}

	var accessToken string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		values := md.Get(common.AccessTokenHeaderName)
		if len(values) > 0 {
			accessToken = values[0]
		}
	}
	if len(accessToken) == 0 {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	userID, err := auth.GetUserIDFromToken(accessToken, s.jwtSecret)
	if err != nil {
		// The exact expired-token message lets clients distinguish "refresh
		// and retry" from "sign in again".
		if errors.Is(err, common.ErrTokenExpired) {
			return nil, status.Error(codes.Unauthenticated, common.ErrTokenExpired.Error())
		}
		return nil, status.Error(codes.Unauthenticated, "invalid token")
	}

	ctx = context.WithValue(ctx, UserIDKey, userID)

	return handler(ctx, req)
}

// callerID extracts the authenticated account id set by the interceptor.
func callerID(ctx context.Context) (string, error) {
	id, ok := ctx.Value(UserIDKey).(string)
	if !ok || id == "" {
		return "", status.Error(codes.Unauthenticated, "missing token")
	}
	return id, nil
}
