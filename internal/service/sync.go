package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/RafaelZelak/AberturaDeBaseBitrix/internal/entity"
	"github.com/RafaelZelak/AberturaDeBaseBitrix/pkg/logger"
)

type SyncOptions struct {
	// DeleteReconciled removes cached records once they are created, upgraded or found in place.
	DeleteReconciled bool
}

// Sync runs reconciliation passes over the cached contracts. Passes never overlap.
type Sync struct {
	mu       sync.Mutex
	cache    ContractCache
	ledger   Ledger
	engine   *Engine
	ingest   *Ingest
	producer Producer
	opts     SyncOptions
}

func NewSync(cache ContractCache, ledger Ledger, engine *Engine, ingest *Ingest, producer Producer, opts SyncOptions) *Sync {
	return &Sync{
		cache:    cache,
		ledger:   ledger,
		engine:   engine,
		ingest:   ingest,
		producer: producer,
		opts:     opts,
	}
}

// ListPending returns cached records that have not reached a terminal outcome yet.
func (s *Sync) ListPending(ctx context.Context) ([]entity.CachedContract, error) {
	cached, err := s.cache.List()
	if err != nil {
		return nil, fmt.Errorf("list cache: %w", err)
	}

	processed, err := s.ledger.ProcessedHashes(ctx)
	if err != nil {
		return nil, fmt.Errorf("processed hashes: %w", err)
	}

	pending := make([]entity.CachedContract, 0, len(cached))

	for _, c := range cached {
		if _, ok := processed[c.Hash]; ok {
			continue
		}

		pending = append(pending, c)
	}

	return pending, nil
}

func (s *Sync) Reconciliations(ctx context.Context, filter entity.ReconciliationFilter) ([]entity.Reconciliation, error) {
	return s.ledger.Reconciliations(ctx, filter)
}

// Run reconciles every pending record. With fetch set, the mailbox is polled first;
// a mailbox failure is logged and the cached records are still reconciled.
func (s *Sync) Run(ctx context.Context, fetch bool) (entity.RunSummary, error) {
	if !s.mu.TryLock() {
		return entity.RunSummary{}, entity.ErrRunInProgress
	}
	defer s.mu.Unlock()

	summary := entity.RunSummary{
		RunID:     uuid.Must(uuid.NewV4()),
		StartedAt: time.Now(),
		Outcomes:  make(map[entity.Outcome]int),
	}

	ctx = logger.WithRunID(ctx, summary.RunID)

	if fetch && s.ingest != nil {
		n, err := s.ingest.Fetch(ctx)
		if err != nil {
			slog.ErrorContext(ctx, "fetch contract emails", "error", err)
		}

		summary.Fetched = n
	}

	pending, err := s.ListPending(ctx)
	if err != nil {
		return entity.RunSummary{}, err
	}

	slog.InfoContext(ctx, "reconciliation run started", "pending", len(pending))

	for _, c := range pending {
		if ctx.Err() != nil {
			summary.FinishedAt = time.Now()
			s.publish(ctx, summary)

			slog.WarnContext(ctx, "reconciliation run interrupted",
				"pending", len(pending), "cards", len(summary.Cards), "error", ctx.Err())

			return summary, ctx.Err()
		}

		res := s.reconcile(logger.WithRecordHash(ctx, c.Hash), summary.RunID, c)

		summary.Outcomes[res.Outcome]++

		if res.Card != nil {
			summary.Cards = append(summary.Cards, *res.Card)
		}
	}

	summary.FinishedAt = time.Now()
	s.publish(ctx, summary)

	slog.InfoContext(ctx, "reconciliation run finished",
		"pending", len(pending),
		"cards", len(summary.Cards),
		"duration", summary.FinishedAt.Sub(summary.StartedAt).String(),
	)

	return summary, nil
}

// publish announces the cards created so far, even after ctx is cancelled.
func (s *Sync) publish(ctx context.Context, summary entity.RunSummary) {
	if len(summary.Cards) == 0 || s.producer == nil {
		return
	}

	err := s.producer.SendRunFinished(context.WithoutCancel(ctx), summary.RunID, summary.Cards)
	if err != nil {
		slog.ErrorContext(ctx, "publish run finished event", "error", err)
	}
}

func (s *Sync) reconcile(ctx context.Context, runID uuid.UUID, c entity.CachedContract) entity.ReconcileResult {
	res, err := s.engine.Reconcile(ctx, c.Record)

	entry := entity.Reconciliation{
		ID:            uuid.Must(uuid.NewV4()),
		RunID:         runID,
		RecordHash:    c.Hash,
		TaxID:         c.Record.TaxID,
		ContractModel: c.Record.ContractModel,
		Outcome:       res.Outcome,
		CompanyID:     res.CompanyID,
		CreatedAt:     time.Now(),
	}

	if res.Card != nil {
		entry.CardID = res.Card.CardID
	}

	if err != nil {
		entry.Error = err.Error()

		if res.Outcome == entity.OutcomeFailed {
			slog.ErrorContext(ctx, "reconcile record", "tax_id", c.Record.TaxID, "error", err)
		} else {
			slog.WarnContext(ctx, "record skipped", "tax_id", c.Record.TaxID, "reason", err)
		}
	}

	// Saved even after cancellation: the CRM may already hold the mutation.
	saveErr := s.ledger.SaveReconciliation(context.WithoutCancel(ctx), entry)
	if saveErr != nil {
		slog.ErrorContext(ctx, "save reconciliation", "error", saveErr)
	}

	if s.opts.DeleteReconciled && saveErr == nil && reconciled(res.Outcome) {
		s.deleteReconciled(ctx, c.Hash, res.Outcome)
	}

	return res
}

// deleteReconciled drops a cached record unless a previous run left its company without a card.
func (s *Sync) deleteReconciled(ctx context.Context, hash string, outcome entity.Outcome) {
	if outcome == entity.OutcomeNoop {
		awaits, err := s.ledger.AwaitsCard(ctx, hash)
		if err != nil {
			slog.WarnContext(ctx, "check record awaiting card", "error", err)
			return
		}

		if awaits {
			slog.WarnContext(ctx, "company has no card from an earlier failed run, keeping cached record")
			return
		}
	}

	if err := s.cache.Delete(hash); err != nil {
		slog.WarnContext(ctx, "delete reconciled record", "error", err)
	}
}

func reconciled(o entity.Outcome) bool {
	switch o {
	case entity.OutcomeNoop, entity.OutcomeCreated, entity.OutcomeUpgraded, entity.OutcomeCardExists:
		return true
	default:
		return false
	}
}
