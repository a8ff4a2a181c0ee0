package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

type Outcome string

const (
	OutcomeNoop       Outcome = "noop"        // already affiliated with the expected system
	OutcomeCreated    Outcome = "created"     // company and card created
	OutcomeUpgraded   Outcome = "upgraded"    // affiliation upgraded and card created
	OutcomeCardExists Outcome = "card_exists" // company ready, active card already present
	OutcomeNoUpgrade  Outcome = "no_upgrade"  // affiliated elsewhere, no upgrade path
	OutcomeSkipped    Outcome = "skipped"     // malformed record
	OutcomeFailed     Outcome = "failed"      // unknown remote state or failed mutation
)

// Terminal outcomes are never reconciled again.
func (o Outcome) Terminal() bool {
	return o != OutcomeFailed
}

func (o Outcome) Valid() bool {
	switch o {
	case OutcomeNoop, OutcomeCreated, OutcomeUpgraded, OutcomeCardExists, OutcomeNoUpgrade, OutcomeSkipped, OutcomeFailed:
		return true
	default:
		return false
	}
}

// CardCreated is emitted only when reconciliation created a new card.
type CardCreated struct {
	LegalName     string `json:"razaoSocial"`
	TaxID         string `json:"cnpj"`
	CardID        string `json:"card_id"`
	ContractModel string `json:"modeloDeContrato"`
}

// ReconcileResult is what the engine reports for one record. Card is nil unless a card was created.
type ReconcileResult struct {
	Outcome   Outcome
	CompanyID string
	Card      *CardCreated
}

// Reconciliation is one ledger entry.
type Reconciliation struct {
	ID            uuid.UUID
	RunID         uuid.UUID
	RecordHash    string
	TaxID         string
	ContractModel string
	Outcome       Outcome
	CompanyID     string
	CardID        string
	Error         string
	CreatedAt     time.Time
}

type ReconciliationFilter struct {
	TaxID   string
	Outcome Outcome
	RunID   uuid.UUID
	Limit   uint64
	Offset  uint64
}

// RunSummary describes one full pass over the pending records.
type RunSummary struct {
	RunID      uuid.UUID
	StartedAt  time.Time
	FinishedAt time.Time
	Fetched    int
	Outcomes   map[Outcome]int
	Cards      []CardCreated
}
