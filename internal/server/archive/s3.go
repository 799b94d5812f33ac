// Package archive uploads final game snapshots to S3-compatible object
// storage when a game ends.
package archive

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/dkravets/geoseek/internal/logging"
	"github.com/dkravets/geoseek/internal/store"
)

// Options configure the bucket and S3-compatible endpoint (MinIO in dev).
type Options struct {
	Region       string
	BaseEndpoint string
	Bucket       string
	RootUser     string
	RootPassword string
}

type S3Archiver struct {
	opts   Options
	logger logging.Logger
}

func NewS3Archiver(opts Options, logger logging.Logger) *S3Archiver {
	return &S3Archiver{opts: opts, logger: logger.With("module", "archive")}
}

func (a *S3Archiver) getClient(ctx context.Context) (*s3.Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(a.opts.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			a.opts.RootUser,
			a.opts.RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if a.opts.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(a.opts.BaseEndpoint)
		}
	})

	return client, nil
}

// storageKey groups archives by date so operators can prune by prefix.
func storageKey(gameID string) string {
	d := time.Now()
	return fmt.Sprintf("games/%d/%02d/%02d/%s.json", d.Year(), d.Month(), d.Day(), gameID)
}

// ArchiveGame writes the snapshot as a JSON object. Locations stay in
// their encrypted form; the archive never holds plaintext coordinates.
func (a *S3Archiver) ArchiveGame(ctx context.Context, snap store.Snapshot) error {
	if snap.Game == nil {
		return nil
	}

	body, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("error marshaling snapshot: %w", err)
	}

	client, err := a.getClient(ctx)
	if err != nil {
		return err
	}

	key := storageKey(snap.Game.ID)
	_, err = client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.opts.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("error uploading archive: %w", err)
	}

	a.logger.Info(ctx, "game archived", "game_id", snap.Game.ID, "key", key)
	return nil
}
