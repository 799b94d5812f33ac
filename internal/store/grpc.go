package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/dkravets/geoseek/internal/common"
	"github.com/dkravets/geoseek/internal/models"
	pb "github.com/dkravets/geoseek/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// GRPCStore is a SessionStore backed by the geoseek store server.
type GRPCStore struct {
	conn        *grpc.ClientConn
	client      pb.GeoSeekStoreClient
	mu          sync.RWMutex
	accessToken string
}

// NewGRPCStore dials the store server and performs the identity handshake:
// the opaque {uid, displayName} pair is exchanged for an access token that
// all subsequent calls carry as metadata.
func NewGRPCStore(ctx context.Context, endpoint string, identity models.Identity) (*GRPCStore, error) {
	s := &GRPCStore{}

	conn, err := grpc.NewClient(endpoint,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor),
		grpc.WithStreamInterceptor(s.accessTokenStreamInterceptor),
	)
	if err != nil {
		return nil, fmt.Errorf("store dial: %w", err)
	}

	s.conn = conn
	s.client = pb.NewGeoSeekStoreClient(conn)

	resp, err := s.client.Hello(ctx, &pb.HelloRequest{Uid: identity.UID, DisplayName: identity.DisplayName})
	if err != nil {
		_ = conn.Close()
		return nil, mapStoreErr(err)
	}

	s.mu.Lock()
	s.accessToken = resp.GetAccessToken()
	s.mu.Unlock()

	return s, nil
}

// Close tears down the underlying connection.
func (s *GRPCStore) Close() error {
	return s.conn.Close()
}

func (s *GRPCStore) withToken(ctx context.Context) context.Context {
	s.mu.RLock()
	token := s.accessToken
	s.mu.RUnlock()
	if token == "" {
		return ctx
	}

	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.AccessTokenHeaderName, token)
	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCStore) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	return invoker(s.withToken(ctx), method, req, reply, cc, opts...)
}

func (s *GRPCStore) accessTokenStreamInterceptor(
	ctx context.Context,
	desc *grpc.StreamDesc,
	cc *grpc.ClientConn,
	method string,
	streamer grpc.Streamer,
	opts ...grpc.CallOption,
) (grpc.ClientStream, error) {
	return streamer(s.withToken(ctx), desc, cc, method, opts...)
}

// mapStoreErr translates gRPC status codes into the shared error taxonomy.
func mapStoreErr(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	switch st.Code() {
	case codes.NotFound:
		return fmt.Errorf("%w: %s", common.ErrNotFound, st.Message())
	case codes.FailedPrecondition:
		return fmt.Errorf("%w: %s", common.ErrSessionEnded, st.Message())
	case codes.PermissionDenied:
		return fmt.Errorf("%w: %s", common.ErrNotAuthorized, st.Message())
	case codes.Unavailable, codes.DeadlineExceeded:
		return fmt.Errorf("%w: %s", common.ErrStoreUnavailable, st.Message())
	default:
		return err
	}
}

func (s *GRPCStore) CreateGame(ctx context.Context, rec *GameRecord) (string, error) {
	resp, err := s.client.CreateGame(ctx, &pb.CreateGameRequest{Game: GameToProto(rec)})
	if err != nil {
		return "", mapStoreErr(err)
	}
	rec.ID = resp.GetId()
	return rec.ID, nil
}

func (s *GRPCStore) FindGameByCode(ctx context.Context, code string) (*GameRecord, error) {
	resp, err := s.client.FindGameByCode(ctx, &pb.FindGameByCodeRequest{GameCode: code})
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return GameFromProto(resp.GetGame()), nil
}

func (s *GRPCStore) UpdateGame(ctx context.Context, gameID string, upd GameUpdate) error {
	_, err := s.client.UpdateGame(ctx, &pb.UpdateGameRequest{GameId: gameID, Update: GameUpdateToProto(upd)})
	return mapStoreErr(err)
}

func (s *GRPCStore) PutPlayer(ctx context.Context, gameID string, rec *PlayerRecord) error {
	_, err := s.client.PutPlayer(ctx, &pb.PutPlayerRequest{GameId: gameID, Player: PlayerToProto(rec)})
	return mapStoreErr(err)
}

func (s *GRPCStore) UpdatePlayer(ctx context.Context, gameID, userID string, upd PlayerUpdate) error {
	_, err := s.client.UpdatePlayer(ctx, &pb.UpdatePlayerRequest{
		GameId: gameID,
		UserId: userID,
		Update: PlayerUpdateToProto(upd),
	})
	return mapStoreErr(err)
}

func (s *GRPCStore) Watch(ctx context.Context, gameID string) (<-chan Snapshot, func(), error) {
	streamCtx, cancel := context.WithCancel(ctx)

	stream, err := s.client.Watch(streamCtx, &pb.WatchRequest{GameId: gameID})
	if err != nil {
		cancel()
		return nil, nil, mapStoreErr(err)
	}

	ch := make(chan Snapshot, 1)
	go func() {
		defer close(ch)
		for {
			msg, err := stream.Recv()
			if err != nil {
				return
			}
			snap := SnapshotFromProto(msg)
			// Coalesce: keep only the latest snapshot buffered.
			select {
			case ch <- snap:
			default:
				select {
				case <-ch:
				default:
				}
				select {
				case ch <- snap:
				case <-streamCtx.Done():
					return
				}
			}
		}
	}()

	return ch, cancel, nil
}
