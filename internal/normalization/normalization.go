// Package normalization implements the batch job that turns staged
// decision envelopes into normalized records: each pending item gets a
// deterministic identifier, cleaned text, ISO-8601 dates, and a
// publication-eligibility label before its metadata is upserted and
// the document moves from the staging area to the normalized area.
// Deleting the staged original is the commit point; anything left in
// staging is retried on the next run.
package normalization

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Cour-de-cassation/juritj-collect/internal/decisions"
)

// Pipeline orchestrates one normalization run over the staging area.
type Pipeline struct {
	staging  StagingStore
	metadata MetadataStore
	lists    CodeLists
	logger   *slog.Logger
}

// NewPipeline creates a Pipeline over the given stores and reference
// code lists.
func NewPipeline(
	staging StagingStore,
	metadata MetadataStore,
	lists CodeLists,
	logger *slog.Logger,
) *Pipeline {
	return &Pipeline{
		staging:  staging,
		metadata: metadata,
		lists:    lists,
		logger:   logger.With("system", "normalization"),
	}
}

// Run processes every pending staged decision sequentially and returns
// the successfully normalized records. A listing failure aborts the
// run; a per-item failure is logged with its staging key and step,
// the item stays in staging for the next run, and the batch continues.
func (p *Pipeline) Run(ctx context.Context) ([]decisions.NormalizedDecision, error) {
	logger := p.logger.With("correlationId", uuid.NewString())

	var results []decisions.NormalizedDecision
	marker := ""

	for {
		page, err := p.staging.List(ctx, marker)
		if err != nil {
			return nil, err
		}

		if len(page.Keys) == 0 && page.NextMarker == nil {
			if len(results) == 0 {
				logger.Info("no decisions found to normalize")
			}
			return results, nil
		}

		for _, key := range page.Keys {
			normalized, err := p.processItem(ctx, logger, key)
			if err != nil {
				logger.Error("normalization failed, decision left in staging",
					"key", key, "error", err)
				continue
			}
			results = append(results, *normalized)
		}

		if page.NextMarker == nil {
			return results, nil
		}
		marker = *page.NextMarker
	}
}

// processItem runs the per-decision state machine. Steps are strictly
// sequential; the staged original is deleted only after both the
// metadata upsert and the normalized write succeed.
func (p *Pipeline) processItem(
	ctx context.Context,
	logger *slog.Logger,
	key string,
) (*decisions.NormalizedDecision, error) {
	logger.Info("normalization starting", "key", key)

	raw, err := p.staging.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}

	meta := raw.Metadonnees

	id, err := GenerateUniqueID(meta)
	if err != nil {
		return nil, fmt.Errorf("generate identifier: %w", err)
	}
	logger.Info("decision identifier generated", "key", key, "id", id)

	cleaned := RemoveUnnecessaryCharacters(raw.DecisionIntegre)
	logger.Info("unnecessary characters removed", "key", key, "id", id)

	converted := NormalizeDatesToISO8601(logger, cleaned)
	logger.Info("decision dates converted to ISO-8601", "key", key, "id", id)

	status, err := ComputeLabelStatus(meta, p.lists, logger.With("id", id))
	if err != nil {
		return nil, fmt.Errorf("classify: %w", err)
	}

	meta.IDDecision = id
	meta.LabelStatus = status
	meta.FilenameSource = key

	if err := p.metadata.Upsert(ctx, id, meta); err != nil {
		return nil, fmt.Errorf("persist metadata: %w", err)
	}
	logger.Info("decision metadata persisted", "key", key, "id", id)

	normalized := &decisions.NormalizedDecision{
		DecisionNormalisee: converted,
		Metadonnees:        meta,
	}

	if err := p.staging.PutNormalized(ctx, key, normalized); err != nil {
		return nil, fmt.Errorf("relocate: %w", err)
	}
	logger.Info("decision saved in normalized area", "key", key, "id", id)

	if err := p.staging.Delete(ctx, key); err != nil {
		return nil, fmt.Errorf("delete staged: %w", err)
	}
	logger.Info("decision deleted from staging", "key", key, "id", id)

	return normalized, nil
}
