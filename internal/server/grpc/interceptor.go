package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/dkravets/geoseek/internal/common"
	"github.com/dkravets/geoseek/internal/models"
	pb "github.com/dkravets/geoseek/internal/proto"
	"github.com/dkravets/geoseek/internal/server/auth"
)

type ctxKey string

const identityKey ctxKey = "identity"

// identityFromContext returns the caller identity placed by the
// interceptors. The zero Identity means the call was unauthenticated
// (only possible for Hello).
func identityFromContext(ctx context.Context) models.Identity {
	id, _ := ctx.Value(identityKey).(models.Identity)
	return id
}

// authenticate extracts and verifies the access token from the incoming
// metadata and returns a context carrying the caller identity.
func (s *GRPCServer) authenticate(ctx context.Context) (context.Context, error) {
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

	id, err := auth.GetIdentityFromToken(accessToken, s.jwtSecret)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "invalid token")
	}

	return context.WithValue(ctx, identityKey, id), nil
}

// accessTokenInterceptor requires a valid access token on every unary
// call except the Hello handshake that issues one.
func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	if info.FullMethod != pb.GeoSeekStore_Hello_FullMethodName {
		authCtx, err := s.authenticate(ctx)
		if err != nil {
			return nil, err
		}
		ctx = authCtx
	}

	return handler(ctx, req)
}

// wrappedStream overrides the context of a server stream so handlers see
// the authenticated identity.
type wrappedStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (w *wrappedStream) Context() context.Context {
	return w.ctx
}

func (s *GRPCServer) accessTokenStreamInterceptor(srv interface{}, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {

	ctx, err := s.authenticate(ss.Context())
	if err != nil {
		return err
	}

	return handler(srv, &wrappedStream{ServerStream: ss, ctx: ctx})
}
