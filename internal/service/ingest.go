package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/RafaelZelak/AberturaDeBaseBitrix/internal/parser"
)

// Ingest turns contract emails into cached records.
type Ingest struct {
	mailbox Mailbox
	cache   ContractCache
}

func NewIngest(mailbox Mailbox, cache ContractCache) *Ingest {
	return &Ingest{
		mailbox: mailbox,
		cache:   cache,
	}
}

// Fetch polls the mailbox and caches every new, complete contract. It returns the number of records cached.
func (i *Ingest) Fetch(ctx context.Context) (int, error) {
	emails, err := i.mailbox.FetchContractEmails(ctx)
	if err != nil {
		return 0, fmt.Errorf("fetch contract emails: %w", err)
	}

	var cached int

	for _, e := range emails {
		c, err := parser.Parse(e.Body)
		if err != nil {
			slog.WarnContext(ctx, "skip contract email", "uid", e.UID, "subject", e.Subject, "reason", err)
			continue
		}

		hash := c.Hash()

		if i.cache.Exists(hash) {
			slog.DebugContext(ctx, "contract already cached", "contract", c.Number, "record_hash", hash)
			continue
		}

		created, err := i.cache.Save(hash, c.Record)
		if err != nil {
			return cached, fmt.Errorf("cache contract %s: %w", c.Number, err)
		}

		if created {
			cached++

			slog.InfoContext(ctx, "contract cached", "contract", c.Number, "record_hash", hash, "tax_id", c.Record.TaxID)
		}
	}

	slog.InfoContext(ctx, "contract emails processed", "emails", len(emails), "cached", cached)

	return cached, nil
}
