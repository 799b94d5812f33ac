package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dkravets/geoseek/internal/common"
	"github.com/dkravets/geoseek/internal/models"
	pb "github.com/dkravets/geoseek/internal/proto"
	"github.com/dkravets/geoseek/internal/server/auth"
	"github.com/dkravets/geoseek/internal/store"
)

// statusFromErr maps domain errors to gRPC status codes.
func statusFromErr(err error) error {
	switch {
	case errors.Is(err, common.ErrNotFound):
		return status.Error(codes.NotFound, "not found")
	case errors.Is(err, common.ErrSessionEnded):
		return status.Error(codes.FailedPrecondition, "session ended")
	case errors.Is(err, common.ErrNotAuthorized):
		return status.Error(codes.PermissionDenied, "not authorized")
	case errors.Is(err, common.ErrValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		return status.Error(codes.Internal, "internal error")
	}
}

func (s *GRPCServer) Hello(ctx context.Context, req *pb.HelloRequest) (*pb.HelloResponse, error) {
	if req.GetUid() == "" || req.GetDisplayName() == "" {
		return nil, status.Error(codes.InvalidArgument, "uid and display_name are required")
	}

	id := models.Identity{UID: req.GetUid(), DisplayName: req.GetDisplayName()}
	token, err := auth.GenerateToken(id, s.jwtSecret, s.tokenTTL)
	if err != nil {
		s.logger.Error(ctx, "token generation failed", "error", err)
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.HelloResponse{AccessToken: token}, nil
}

func (s *GRPCServer) CreateGame(ctx context.Context, req *pb.CreateGameRequest) (*pb.CreateGameResponse, error) {
	rec := store.GameFromProto(req.GetGame())
	if rec == nil {
		return nil, status.Error(codes.InvalidArgument, "game is required")
	}

	id := identityFromContext(ctx)
	if rec.HiderID != id.UID {
		return nil, status.Error(codes.PermissionDenied, "hider_id must match caller")
	}

	gameID, err := s.sessions.CreateGame(ctx, rec)
	if err != nil {
		return nil, statusFromErr(err)
	}

	return &pb.CreateGameResponse{Id: gameID}, nil
}

func (s *GRPCServer) FindGameByCode(ctx context.Context, req *pb.FindGameByCodeRequest) (*pb.FindGameByCodeResponse, error) {
	rec, err := s.sessions.FindGameByCode(ctx, req.GetGameCode())
	if err != nil {
		return nil, statusFromErr(err)
	}

	return &pb.FindGameByCodeResponse{Game: store.GameToProto(rec)}, nil
}

// writable rejects writes to games that have already ended.
func (s *GRPCServer) writable(ctx context.Context, gameID string) (*store.GameRecord, error) {
	rec, err := s.sessions.GetGame(ctx, gameID)
	if err != nil {
		return nil, statusFromErr(err)
	}
	if rec.Status == models.StatusEnded {
		return nil, status.Error(codes.FailedPrecondition, "session ended")
	}
	return rec, nil
}

func (s *GRPCServer) UpdateGame(ctx context.Context, req *pb.UpdateGameRequest) (*pb.UpdateGameResponse, error) {
	rec, err := s.writable(ctx, req.GetGameId())
	if err != nil {
		return nil, err
	}

	id := identityFromContext(ctx)
	if rec.HiderID != id.UID {
		return nil, status.Error(codes.PermissionDenied, "only the hider updates the game")
	}

	upd := store.GameUpdateFromProto(req.GetUpdate())
	// Ending a session is an operator action, never a player write.
	if upd.Status != nil && *upd.Status == models.StatusEnded {
		return nil, status.Error(codes.PermissionDenied, "players cannot end a session")
	}

	if err := s.sessions.UpdateGame(ctx, req.GetGameId(), upd); err != nil {
		return nil, statusFromErr(err)
	}

	return &pb.UpdateGameResponse{}, nil
}

func (s *GRPCServer) PutPlayer(ctx context.Context, req *pb.PutPlayerRequest) (*pb.PutPlayerResponse, error) {
	rec := store.PlayerFromProto(req.GetPlayer())
	if rec == nil {
		return nil, status.Error(codes.InvalidArgument, "player is required")
	}

	id := identityFromContext(ctx)
	if rec.UserID != id.UID {
		return nil, status.Error(codes.PermissionDenied, "user_id must match caller")
	}

	if _, err := s.writable(ctx, req.GetGameId()); err != nil {
		return nil, err
	}

	if err := s.sessions.PutPlayer(ctx, req.GetGameId(), rec); err != nil {
		return nil, statusFromErr(err)
	}

	return &pb.PutPlayerResponse{}, nil
}

func (s *GRPCServer) UpdatePlayer(ctx context.Context, req *pb.UpdatePlayerRequest) (*pb.UpdatePlayerResponse, error) {
	id := identityFromContext(ctx)
	if req.GetUserId() != id.UID {
		return nil, status.Error(codes.PermissionDenied, "players update only their own record")
	}

	if _, err := s.writable(ctx, req.GetGameId()); err != nil {
		return nil, err
	}

	upd := store.PlayerUpdateFromProto(req.GetUpdate())
	if err := s.sessions.UpdatePlayer(ctx, req.GetGameId(), req.GetUserId(), upd); err != nil {
		return nil, statusFromErr(err)
	}

	return &pb.UpdatePlayerResponse{}, nil
}

// Watch streams full snapshots: the current one immediately, then a fresh
// one after every mutation, until the client goes away.
func (s *GRPCServer) Watch(req *pb.WatchRequest, stream pb.GeoSeekStore_WatchServer) error {
	ctx := stream.Context()

	snaps, stop, err := s.sessions.Watch(ctx, req.GetGameId())
	if err != nil {
		return statusFromErr(err)
	}
	defer stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case snap, ok := <-snaps:
			if !ok {
				return nil
			}
			if err := stream.Send(store.SnapshotToProto(snap)); err != nil {
				return err
			}
		}
	}
}
