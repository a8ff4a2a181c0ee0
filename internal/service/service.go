package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/RafaelZelak/AberturaDeBaseBitrix/internal/entity"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=../mocks/service.go -package=mocks

type CRM interface {
	FindCompanyByTaxID(ctx context.Context, taxID string) (entity.Company, error)
	CreateCompany(ctx context.Context, payload entity.CompanyPayload) (string, error)
	UpdateCompanyField(ctx context.Context, companyID, field string, value any) error
	ListActiveCards(ctx context.Context, companyID string, line entity.ProductLine) ([]entity.DealCard, error)
	CreateCard(ctx context.Context, line entity.ProductLine, payload entity.CardPayload) (string, error)
}

type ContractCache interface {
	Exists(hash string) bool
	Save(hash string, rec entity.ContractRecord) (bool, error)
	List() ([]entity.CachedContract, error)
	Delete(hash string) error
}

type Ledger interface {
	SaveReconciliation(ctx context.Context, rec entity.Reconciliation) error
	ProcessedHashes(ctx context.Context) (map[string]struct{}, error)
	AwaitsCard(ctx context.Context, hash string) (bool, error)
	Reconciliations(ctx context.Context, filter entity.ReconciliationFilter) ([]entity.Reconciliation, error)
}

type Producer interface {
	SendRunFinished(ctx context.Context, runID uuid.UUID, cards []entity.CardCreated) error
}

type Mailbox interface {
	FetchContractEmails(ctx context.Context) ([]entity.ContractEmail, error)
}

type Mailer interface {
	SendMessage(subject, message string, recipients []string, contentType string) error
}
