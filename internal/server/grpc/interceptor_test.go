package grpc

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/dkravets/geoseek/internal/common"
	"github.com/dkravets/geoseek/internal/models"
	pb "github.com/dkravets/geoseek/internal/proto"
	"github.com/dkravets/geoseek/internal/server/auth"
)

// fakeWatchStream is a minimal server stream for handler tests.
type fakeWatchStream struct {
	grpc.ServerStream
	ctx  context.Context
	sent chan *pb.Snapshot
}

func (f *fakeWatchStream) Context() context.Context { return f.ctx }

func (f *fakeWatchStream) Send(s *pb.Snapshot) error {
	f.sent <- s
	return nil
}

func unaryInfo(method string) *grpc.UnaryServerInfo {
	return &grpc.UnaryServerInfo{FullMethod: method}
}

func TestAccessTokenInterceptor_HelloExempt(t *testing.T) {
	t.Parallel()
	s := newTestServer()

	called := false
	_, err := s.accessTokenInterceptor(context.Background(), nil,
		unaryInfo(pb.GeoSeekStore_Hello_FullMethodName),
		func(ctx context.Context, req interface{}) (interface{}, error) {
			called = true
			return nil, nil
		})
	require.NoError(t, err)
	assert.True(t, called)
}

func TestAccessTokenInterceptor_MissingToken(t *testing.T) {
	t.Parallel()
	s := newTestServer()

	_, err := s.accessTokenInterceptor(context.Background(), nil,
		unaryInfo(pb.GeoSeekStore_CreateGame_FullMethodName),
		func(ctx context.Context, req interface{}) (interface{}, error) {
			t.Fatal("handler must not run without a token")
			return nil, nil
		})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestAccessTokenInterceptor_InvalidToken(t *testing.T) {
	t.Parallel()
	s := newTestServer()

	ctx := metadata.NewIncomingContext(context.Background(),
		metadata.Pairs(common.AccessTokenHeaderName, "garbage"))

	_, err := s.accessTokenInterceptor(ctx, nil,
		unaryInfo(pb.GeoSeekStore_CreateGame_FullMethodName),
		func(ctx context.Context, req interface{}) (interface{}, error) {
			t.Fatal("handler must not run with a bad token")
			return nil, nil
		})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestAccessTokenInterceptor_ValidToken(t *testing.T) {
	t.Parallel()
	s := newTestServer()

	want := models.Identity{UID: "u1", DisplayName: "Alice"}
	tok, err := auth.GenerateToken(want, s.jwtSecret, time.Hour)
	require.NoError(t, err)

	ctx := metadata.NewIncomingContext(context.Background(),
		metadata.Pairs(common.AccessTokenHeaderName, tok))

	_, err = s.accessTokenInterceptor(ctx, nil,
		unaryInfo(pb.GeoSeekStore_CreateGame_FullMethodName),
		func(ctx context.Context, req interface{}) (interface{}, error) {
			assert.Equal(t, want, identityFromContext(ctx))
			return nil, nil
		})
	require.NoError(t, err)
}

func TestAccessTokenStreamInterceptor(t *testing.T) {
	t.Parallel()
	s := newTestServer()

	want := models.Identity{UID: "u1", DisplayName: "Alice"}
	tok, err := auth.GenerateToken(want, s.jwtSecret, time.Hour)
	require.NoError(t, err)

	ctx := metadata.NewIncomingContext(context.Background(),
		metadata.Pairs(common.AccessTokenHeaderName, tok))
	stream := &fakeWatchStream{ctx: ctx}

	err = s.accessTokenStreamInterceptor(nil, stream,
		&grpc.StreamServerInfo{FullMethod: pb.GeoSeekStore_Watch_FullMethodName},
		func(srv interface{}, ss grpc.ServerStream) error {
			assert.Equal(t, want, identityFromContext(ss.Context()))
			return nil
		})
	require.NoError(t, err)

	// Without metadata the stream is rejected.
	bare := &fakeWatchStream{ctx: context.Background()}
	err = s.accessTokenStreamInterceptor(nil, bare,
		&grpc.StreamServerInfo{FullMethod: pb.GeoSeekStore_Watch_FullMethodName},
		func(srv interface{}, ss grpc.ServerStream) error {
			t.Fatal("handler must not run without a token")
			return nil
		})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}
