package store

import (
	"github.com/dkravets/geoseek/internal/models"
	pb "github.com/dkravets/geoseek/internal/proto"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Conversions between adapter records and the wire protocol. Used on both
// sides of the gRPC boundary so the store server and the client adapter
// cannot drift.

func locToProto(loc *models.Location) *pb.LatLng {
	if loc == nil {
		return nil
	}
	return &pb.LatLng{Lat: loc.Lat, Lng: loc.Lng}
}

func locFromProto(p *pb.LatLng) *models.Location {
	if p == nil {
		return nil
	}
	return &models.Location{Lat: p.GetLat(), Lng: p.GetLng()}
}

func encToProto(enc *models.EncryptedLocation) *pb.EncryptedLocation {
	if enc == nil {
		return nil
	}
	return &pb.EncryptedLocation{Encrypted: enc.Encrypted, Iv: enc.IV, Salt: enc.Salt}
}

func encFromProto(p *pb.EncryptedLocation) *models.EncryptedLocation {
	if p == nil {
		return nil
	}
	return &models.EncryptedLocation{Encrypted: p.GetEncrypted(), IV: p.GetIv(), Salt: p.GetSalt()}
}

// GameToProto converts a game record for the wire.
func GameToProto(rec *GameRecord) *pb.GameRecord {
	if rec == nil {
		return nil
	}
	return &pb.GameRecord{
		Id:                     rec.ID,
		GameCode:               rec.GameCode,
		HiderId:                rec.HiderID,
		HiderName:              rec.HiderName,
		EncryptedHiderLocation: encToProto(rec.EncryptedHiderLocation),
		LegacyHiderLocation:    locToProto(rec.LegacyHiderLocation),
		CircleOffset:           locToProto(&rec.CircleOffset),
		Status:                 string(rec.Status),
		Config: &pb.GameConfig{
			InitialRadiusMeters: rec.Config.InitialRadiusMeters,
			ShrinkIntervalMs:    rec.Config.ShrinkIntervalMs,
			ShrinkMeters:        rec.Config.ShrinkMeters,
		},
		StartTime:     rec.StartTime,
		CurrentRadius: rec.CurrentRadius,
		CreatedAt:     rec.CreatedAt,
	}
}

// GameFromProto converts a wire game record back to the adapter form.
func GameFromProto(p *pb.GameRecord) *GameRecord {
	if p == nil {
		return nil
	}
	rec := &GameRecord{
		ID:                     p.GetId(),
		GameCode:               p.GetGameCode(),
		HiderID:                p.GetHiderId(),
		HiderName:              p.GetHiderName(),
		EncryptedHiderLocation: encFromProto(p.GetEncryptedHiderLocation()),
		LegacyHiderLocation:    locFromProto(p.GetLegacyHiderLocation()),
		Status:                 models.GameStatus(p.GetStatus()),
		StartTime:              p.GetStartTime(),
		CurrentRadius:          p.GetCurrentRadius(),
		CreatedAt:              p.GetCreatedAt(),
	}
	if off := p.GetCircleOffset(); off != nil {
		rec.CircleOffset = models.Location{Lat: off.GetLat(), Lng: off.GetLng()}
	}
	if cfg := p.GetConfig(); cfg != nil {
		rec.Config = models.GameConfig{
			InitialRadiusMeters: cfg.GetInitialRadiusMeters(),
			ShrinkIntervalMs:    cfg.GetShrinkIntervalMs(),
			ShrinkMeters:        cfg.GetShrinkMeters(),
		}
	}
	return rec
}

// PlayerToProto converts a player record for the wire.
func PlayerToProto(rec *PlayerRecord) *pb.PlayerRecord {
	if rec == nil {
		return nil
	}
	return &pb.PlayerRecord{
		UserId:            rec.UserID,
		DisplayName:       rec.DisplayName,
		EncryptedLocation: encToProto(rec.EncryptedLocation),
		LegacyLocation:    locToProto(rec.LegacyLocation),
		LastUpdated:       rec.LastUpdated,
		FoundChicken:      rec.Found,
		JoinedAt:          rec.JoinedAt,
	}
}

// PlayerFromProto converts a wire player record back to the adapter form.
func PlayerFromProto(p *pb.PlayerRecord) *PlayerRecord {
	if p == nil {
		return nil
	}
	return &PlayerRecord{
		UserID:            p.GetUserId(),
		DisplayName:       p.GetDisplayName(),
		EncryptedLocation: encFromProto(p.GetEncryptedLocation()),
		LegacyLocation:    locFromProto(p.GetLegacyLocation()),
		LastUpdated:       p.GetLastUpdated(),
		Found:             p.GetFoundChicken(),
		JoinedAt:          p.GetJoinedAt(),
	}
}

// GameUpdateToProto converts a partial game update for the wire.
func GameUpdateToProto(upd GameUpdate) *pb.GameUpdate {
	out := &pb.GameUpdate{
		EncryptedHiderLocation:   encToProto(upd.EncryptedHiderLocation),
		ClearLegacyHiderLocation: upd.ClearLegacyHiderLocation,
	}
	if upd.Status != nil {
		out.Status = string(*upd.Status)
	}
	if upd.StartTime != nil {
		out.StartTime = *upd.StartTime
	}
	if upd.CurrentRadius != nil {
		out.CurrentRadius = wrapperspb.Double(*upd.CurrentRadius)
	}
	return out
}

// GameUpdateFromProto converts a wire partial game update.
func GameUpdateFromProto(p *pb.GameUpdate) GameUpdate {
	upd := GameUpdate{
		EncryptedHiderLocation:   encFromProto(p.GetEncryptedHiderLocation()),
		ClearLegacyHiderLocation: p.GetClearLegacyHiderLocation(),
	}
	if s := p.GetStatus(); s != "" {
		status := models.GameStatus(s)
		upd.Status = &status
	}
	if t := p.GetStartTime(); t != 0 {
		upd.StartTime = &t
	}
	if r := p.GetCurrentRadius(); r != nil {
		v := r.GetValue()
		upd.CurrentRadius = &v
	}
	return upd
}

// PlayerUpdateToProto converts a partial player update for the wire.
func PlayerUpdateToProto(upd PlayerUpdate) *pb.PlayerUpdate {
	out := &pb.PlayerUpdate{
		EncryptedLocation:   encToProto(upd.EncryptedLocation),
		ClearLegacyLocation: upd.ClearLegacyLocation,
	}
	if upd.LastUpdated != nil {
		out.LastUpdated = *upd.LastUpdated
	}
	if upd.Found != nil {
		out.FoundChicken = wrapperspb.Bool(*upd.Found)
	}
	return out
}

// PlayerUpdateFromProto converts a wire partial player update.
func PlayerUpdateFromProto(p *pb.PlayerUpdate) PlayerUpdate {
	upd := PlayerUpdate{
		EncryptedLocation:   encFromProto(p.GetEncryptedLocation()),
		ClearLegacyLocation: p.GetClearLegacyLocation(),
	}
	if t := p.GetLastUpdated(); t != 0 {
		upd.LastUpdated = &t
	}
	if f := p.GetFoundChicken(); f != nil {
		v := f.GetValue()
		upd.Found = &v
	}
	return upd
}

// SnapshotFromProto converts a wire snapshot.
func SnapshotFromProto(p *pb.Snapshot) Snapshot {
	players := make(map[string]*PlayerRecord, len(p.GetPlayers()))
	for _, pl := range p.GetPlayers() {
		players[pl.GetUserId()] = PlayerFromProto(pl)
	}
	return Snapshot{Game: GameFromProto(p.GetGame()), Players: players}
}

// SnapshotToProto converts a snapshot for the wire.
func SnapshotToProto(s Snapshot) *pb.Snapshot {
	players := make([]*pb.PlayerRecord, 0, len(s.Players))
	for _, pl := range s.Players {
		players = append(players, PlayerToProto(pl))
	}
	return &pb.Snapshot{Game: GameToProto(s.Game), Players: players}
}
