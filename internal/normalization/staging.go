package normalization

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/Cour-de-cassation/juritj-collect/internal/decisions"
	"github.com/Cour-de-cassation/juritj-collect/pkg/storage"
)

type blobStaging struct {
	raw        storage.System
	normalized storage.System
	pageSize   int32
}

// NewBlobStaging adapts a pair of blob containers to the StagingStore
// contract: raw holds staged intake envelopes, normalized receives the
// pipeline output. pageSize bounds each listing call.
func NewBlobStaging(raw, normalized storage.System, pageSize int32) StagingStore {
	if pageSize < 1 {
		pageSize = storage.MaxListCap
	}
	return &blobStaging{
		raw:        raw,
		normalized: normalized,
		pageSize:   pageSize,
	}
}

func (b *blobStaging) List(ctx context.Context, marker string) (*ListPage, error) {
	result, err := b.raw.List(ctx, "", marker, b.pageSize)
	if err != nil {
		return nil, &InfrastructureError{Op: "list staging", Err: err}
	}

	keys := make([]string, 0, len(result.Blobs))
	for _, blob := range result.Blobs {
		keys = append(keys, blob.Key)
	}

	return &ListPage{Keys: keys, NextMarker: result.NextMarker}, nil
}

func (b *blobStaging) Get(ctx context.Context, key string) (*decisions.RawDecision, error) {
	result, err := b.raw.Download(ctx, key)
	if err != nil {
		return nil, &InfrastructureError{Op: "fetch", Key: key, Err: err}
	}
	defer result.Body.Close()

	var raw decisions.RawDecision
	if err := json.NewDecoder(result.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode staged decision %s: %w", key, err)
	}
	return &raw, nil
}

func (b *blobStaging) PutNormalized(ctx context.Context, key string, dec *decisions.NormalizedDecision) error {
	data, err := json.Marshal(dec)
	if err != nil {
		return fmt.Errorf("marshal normalized decision %s: %w", key, err)
	}

	if err := b.normalized.Upload(ctx, key, bytes.NewReader(data), "application/json"); err != nil {
		return &InfrastructureError{Op: "put normalized", Key: key, Err: err}
	}
	return nil
}

func (b *blobStaging) Delete(ctx context.Context, key string) error {
	if err := b.raw.Delete(ctx, key); err != nil {
		return &InfrastructureError{Op: "delete staged", Key: key, Err: err}
	}
	return nil
}
