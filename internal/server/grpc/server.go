// Package grpc exposes the session store over gRPC: a Hello handshake
// that issues access tokens, unary record operations, and a server-streaming
// Watch that pushes full game snapshots.
package grpc

import (
	"context"
	"net"
	"time"

	"google.golang.org/grpc"

	"github.com/dkravets/geoseek/internal/logging"
	pb "github.com/dkravets/geoseek/internal/proto"
	"github.com/dkravets/geoseek/internal/server/sessions"
)

type GRPCServer struct {
	pb.UnimplementedGeoSeekStoreServer
	address   string
	sessions  *sessions.Service
	logger    logging.Logger
	jwtSecret []byte
	tokenTTL  time.Duration
}

func NewGRPCServer(a string, l logging.Logger, svc *sessions.Service, secretKey string, tokenTTL time.Duration) (*GRPCServer, error) {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		sessions:  svc,
		jwtSecret: []byte(secretKey),
		tokenTTL:  tokenTTL,
	}, nil
}

func (s *GRPCServer) Run(ctx context.Context) error {

	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(s.accessTokenInterceptor),
		grpc.ChainStreamInterceptor(s.accessTokenStreamInterceptor),
	)

	pb.RegisterGeoSeekStoreServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
