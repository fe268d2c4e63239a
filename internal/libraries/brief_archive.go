package libraries

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"hazel-brief-backend/internal/models"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// BriefArchive mirrors finished briefs into a GCS bucket as JSON, one object
// per brief. Export is best-effort; the interview never fails on it.
type BriefArchive struct {
	gcs    *storage.Client
	bucket string
}

// NewBriefArchive returns nil (disabled) when no bucket is configured.
func NewBriefArchive(ctx context.Context) (*BriefArchive, error) {
	bucket := os.Getenv("GCS_BRIEF_BUCKET")
	if bucket == "" {
		return nil, nil
	}

	// read base64 encoded service account JSON
	encoded := os.Getenv("GCP_SERVICE_ACCOUNT_CREDENTIALS")
	if encoded == "" {
		return nil, fmt.Errorf("GCP_SERVICE_ACCOUNT_CREDENTIALS not set")
	}

	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("failed to decode service account json: %w", err)
	}

	gcsClient, err := storage.NewClient(ctx, option.WithCredentialsJSON(decoded))
	if err != nil {
		return nil, fmt.Errorf("storage.NewClient: %w", err)
	}

	return &BriefArchive{gcs: gcsClient, bucket: bucket}, nil
}

func (a *BriefArchive) Export(ctx context.Context, brief *models.Brief) error {
	if a == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	payload, err := json.MarshalIndent(brief, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal brief: %w", err)
	}

	obj := a.gcs.Bucket(a.bucket).Object(fmt.Sprintf("briefs/%s.json", brief.UUID))
	w := obj.NewWriter(ctx)
	w.ContentType = "application/json"
	if _, err := w.Write(payload); err != nil {
		w.Close()
		return fmt.Errorf("write brief object: %w", err)
	}
	return w.Close()
}

func (a *BriefArchive) Close() {
	if a != nil && a.gcs != nil {
		a.gcs.Close()
	}
}
