package decisions

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"path/filepath"
	"time"

	"github.com/Cour-de-cassation/juritj-collect/pkg/pagination"
	"github.com/Cour-de-cassation/juritj-collect/pkg/query"
	"github.com/Cour-de-cassation/juritj-collect/pkg/repository"
	"github.com/Cour-de-cassation/juritj-collect/pkg/storage"
)

type repo struct {
	db         *sql.DB
	staging    storage.System
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a decision repository implementing the System interface.
// The staging storage system receives raw decision envelopes from the
// intake endpoint.
func New(
	db *sql.DB,
	staging storage.System,
	logger *slog.Logger,
	pagination pagination.Config,
) System {
	return &repo{
		db:         db,
		staging:    staging,
		logger:     logger.With("system", "decisions"),
		pagination: pagination,
	}
}

func (r *repo) Handler(maxUploadSize int64) *Handler {
	return NewHandler(r, r.logger, r.pagination, maxUploadSize)
}

func (r *repo) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters Filters,
) (*pagination.PageResult[Decision], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "NomJuridiction", "FilenameSource")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count decisions: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	decisions, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanDecision)
	if err != nil {
		return nil, fmt.Errorf("query decisions: %w", err)
	}

	result := pagination.NewPageResult(decisions, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id string) (*Decision, error) {
	q, args := query.NewBuilder(projection).BuildSingle("IDDecision", id)

	d, err := repository.QueryOne(ctx, r.db, q, args, scanDecision)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &d, nil
}

// Upsert persists decision metadata keyed by its generated identifier.
// Re-normalizing the same staged decision overwrites the previous row,
// which keeps the batch idempotent across overlapping runs.
func (r *repo) Upsert(ctx context.Context, id string, meta Metadata) error {
	parties, err := json.Marshal(meta.Parties)
	if err != nil {
		return fmt.Errorf("marshal parties: %w", err)
	}

	var associated []byte
	if meta.DecisionAssociee != nil {
		associated, err = json.Marshal(meta.DecisionAssociee)
		if err != nil {
			return fmt.Errorf("marshal associated decision: %w", err)
		}
	}

	q := `
		INSERT INTO decisions(
			id, jurisdiction_id, jurisdiction_name, register_number, role_number,
			instruction_number, service_code, service_label, decision_date, creation_date,
			decision_code, decision_code_label, nac_code, nac_label, nature_code,
			nature_label, public, occultation_recommended, label_status, parties,
			associated_decision, filename_source
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)
		ON CONFLICT (id) DO UPDATE SET
			jurisdiction_id = EXCLUDED.jurisdiction_id,
			jurisdiction_name = EXCLUDED.jurisdiction_name,
			register_number = EXCLUDED.register_number,
			role_number = EXCLUDED.role_number,
			instruction_number = EXCLUDED.instruction_number,
			service_code = EXCLUDED.service_code,
			service_label = EXCLUDED.service_label,
			decision_date = EXCLUDED.decision_date,
			creation_date = EXCLUDED.creation_date,
			decision_code = EXCLUDED.decision_code,
			decision_code_label = EXCLUDED.decision_code_label,
			nac_code = EXCLUDED.nac_code,
			nac_label = EXCLUDED.nac_label,
			nature_code = EXCLUDED.nature_code,
			nature_label = EXCLUDED.nature_label,
			public = EXCLUDED.public,
			occultation_recommended = EXCLUDED.occultation_recommended,
			label_status = EXCLUDED.label_status,
			parties = EXCLUDED.parties,
			associated_decision = EXCLUDED.associated_decision,
			filename_source = EXCLUDED.filename_source,
			updated_at = now()`

	args := []any{
		id,
		meta.IDJuridiction,
		meta.NomJuridiction,
		meta.NumeroRegistre,
		meta.NumeroRoleGeneral,
		meta.NumeroMesureInstruction,
		meta.CodeService,
		meta.LibelleService,
		meta.DateDecision,
		meta.DateCreation,
		meta.CodeDecision,
		meta.LibelleCodeDecision,
		meta.CodeNAC,
		meta.LibelleNAC,
		meta.CodeNature,
		meta.LibelleNature,
		meta.Public,
		meta.RecommandationOccultation,
		meta.LabelStatus,
		parties,
		associated,
		meta.FilenameSource,
	}

	if _, err := r.db.ExecContext(ctx, q, args...); err != nil {
		return fmt.Errorf("upsert decision %s: %w", id, err)
	}

	r.logger.Info("decision metadata saved", "id", id, "labelStatus", meta.LabelStatus)
	return nil
}

// Collect stages a raw decision envelope for the normalization batch.
// The metadata is stamped with its collection date, source filename, and
// an initial label status before upload.
func (r *repo) Collect(ctx context.Context, cmd CollectCommand) (*RawDecision, error) {
	if err := cmd.Metadonnees.Validate(); err != nil {
		return nil, err
	}

	meta := cmd.Metadonnees
	meta.FilenameSource = sanitizeFilename(cmd.Filename)
	meta.DateCreation = time.Now().UTC().Format(time.RFC3339)
	if meta.LabelStatus == "" {
		meta.LabelStatus = LabelToBeTreated
	}

	envelope := &RawDecision{
		DecisionIntegre: string(cmd.Data),
		Metadonnees:     meta,
	}

	data, err := json.Marshal(envelope)
	if err != nil {
		return nil, fmt.Errorf("marshal decision envelope: %w", err)
	}

	key := meta.FilenameSource
	if err := r.staging.Upload(ctx, key, bytes.NewReader(data), "application/json"); err != nil {
		return nil, fmt.Errorf("stage decision %s: %w", key, err)
	}

	r.logger.Info("decision staged", "key", key, "jurisdiction", meta.IDJuridiction)
	return envelope, nil
}

func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	if name == "." || name == "" {
		name = "decision"
	}
	return url.PathEscape(name)
}
