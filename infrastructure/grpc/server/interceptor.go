package server

import (
	"context"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"debug-lab/auth"
	pb "debug-lab/proto/account"
)

// Map of methods that do not require JWT authentication.
// Using generated constants from the proto package for type-safety.
var publicMethods = map[string]struct{}{
	pb.AuthService_Login_FullMethodName:    {},
	pb.AuthService_Register_FullMethodName: {},
}

type contextKey string

const (
	UserIDKey contextKey = "user_id"
	RolesKey  contextKey = "roles"
)

// AuthInterceptor returns a unary interceptor enforcing JWT validation on
// incoming calls. With enabled set to false every call passes through,
// which keeps local setups usable without an account.
func AuthInterceptor(enabled bool) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any,
		info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		// 1. Skip authentication for public methods (Login/Register)
		if !enabled || isPublicMethod(info.FullMethod) {
			return handler(ctx, req)
		}

		// 2. Extract metadata (headers) from the incoming gRPC context
		md, ok := metadata.FromIncomingContext(ctx)
		if !ok {
			return nil, status.Error(codes.Unauthenticated, "metadata is missing")
		}

		// 3. Retrieve and validate the Authorization header
		values := md.Get("authorization")
		if len(values) == 0 {
			return nil, status.Error(codes.Unauthenticated, "authorization token is missing")
		}

		// Expecting the standard "Bearer <token>" format
		tokenStr := strings.TrimPrefix(values[0], "Bearer ")

		// 4. Validate the JWT and extract claims
		claims, err := auth.ValidateToken(tokenStr)
		if err != nil {
			return nil, status.Error(codes.Unauthenticated, "invalid or expired token")
		}

		// 5. Inject user identity into context for downstream service layers
		newCtx := context.WithValue(ctx, UserIDKey, claims.UserID)
		newCtx = context.WithValue(newCtx, RolesKey, claims.Roles)

		return handler(newCtx, req)
	}
}

// isPublicMethod checks if the current gRPC method is allowed without a token.
func isPublicMethod(method string) bool {
	_, ok := publicMethods[method]
	return ok
}
