package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/RafaelZelak/AberturaDeBaseBitrix/internal/entity"
)

// Resolver reads the current product affiliation of a company from the CRM.
type Resolver struct {
	crm CRM
}

func NewResolver(crm CRM) *Resolver {
	return &Resolver{crm: crm}
}

// Resolve reports whether the company with taxID is affiliated with expected.
// A missing company is not an error: the returned state has no company id.
func (r *Resolver) Resolve(ctx context.Context, taxID string, expected entity.SystemCode) (entity.AffiliationState, bool, error) {
	company, err := r.crm.FindCompanyByTaxID(ctx, taxID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return entity.AffiliationState{TaxID: taxID}, false, nil
		}

		return entity.AffiliationState{}, false, fmt.Errorf("find company %s: %w", taxID, err)
	}

	state := entity.AffiliationState{
		CompanyID:     company.ID,
		TaxID:         taxID,
		CurrentSystem: company.System,
	}

	return state, state.CurrentSystem == expected, nil
}
