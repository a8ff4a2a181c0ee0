package bitrix

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/RafaelZelak/AberturaDeBaseBitrix/internal/entity"
)

type companyItem struct {
	ID     flexString `json:"ID"`
	TaxID  flexString `json:"UF_CRM_1701275490640"`
	System flexString `json:"UF_CRM_1708446996746"`
}

// FindCompanyByTaxID looks a company up by exact tax id match.
func (c *Client) FindCompanyByTaxID(ctx context.Context, taxID string) (entity.Company, error) {
	params := map[string]any{
		"filter": map[string]any{entity.CompanyFieldTaxID: taxID},
		"select": []string{"ID", entity.CompanyFieldTaxID, entity.CompanyFieldSystem},
	}

	raw, err := c.Call(ctx, "crm.company.list", params)
	if err != nil {
		return entity.Company{}, err
	}

	var items []companyItem

	err = json.Unmarshal(raw, &items)
	if err != nil {
		return entity.Company{}, fmt.Errorf("%w: decode companies: %w", entity.ErrNoResult, err)
	}

	if len(items) == 0 {
		return entity.Company{}, fmt.Errorf("company with tax id %s: %w", taxID, entity.ErrNotFound)
	}

	if len(items) > 1 {
		slog.WarnContext(ctx, "several companies share a tax id, using the first", "tax_id", taxID, "count", len(items))
	}

	return entity.Company{
		ID:     items[0].ID.String(),
		TaxID:  items[0].TaxID.String(),
		System: entity.SystemCode(items[0].System),
	}, nil
}

func (c *Client) CreateCompany(ctx context.Context, payload entity.CompanyPayload) (string, error) {
	fields := make(map[string]any, len(payload.Fields)+3) //nolint:mnd
	for k, v := range payload.Fields {
		fields[k] = v
	}

	fields["TITLE"] = payload.Title
	fields["EMAIL"] = payload.Emails
	fields["PHONE"] = payload.Phones

	raw, err := c.Call(ctx, "crm.company.add", map[string]any{"fields": fields})
	if err != nil {
		return "", err
	}

	id, err := parseID(raw)
	if err != nil {
		return "", fmt.Errorf("%w: crm.company.add: %w", entity.ErrNoResult, err)
	}

	return id, nil
}

func (c *Client) UpdateCompanyField(ctx context.Context, companyID, field string, value any) error {
	params := map[string]any{
		"id":     companyID,
		"fields": map[string]any{field: value},
	}

	raw, err := c.Call(ctx, "crm.company.update", params)
	if err != nil {
		return err
	}

	var ok bool

	err = json.Unmarshal(raw, &ok)
	if err != nil || !ok {
		return fmt.Errorf("%w: crm.company.update %s: result %s", entity.ErrNoResult, companyID, raw)
	}

	return nil
}
