package bitrix

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/RafaelZelak/AberturaDeBaseBitrix/internal/entity"
)

// maxItemPages bounds pagination of crm.item.list for a single company.
const maxItemPages = 20

type itemListResult struct {
	Items []struct {
		ID        flexString `json:"id"`
		StageID   string     `json:"stageId"`
		CompanyID flexString `json:"companyId"`
	} `json:"items"`
}

type itemAddResult struct {
	Item struct {
		ID flexString `json:"id"`
	} `json:"item"`
}

// ListActiveCards returns the company's cards in the line's pipeline that are not in a final stage.
func (c *Client) ListActiveCards(ctx context.Context, companyID string, line entity.ProductLine) ([]entity.DealCard, error) {
	var (
		cards []entity.DealCard
		start = 0
	)

	for page := 0; page < maxItemPages; page++ {
		params := map[string]any{
			"entityTypeId": line.EntityTypeID,
			"filter": map[string]any{
				"companyId":  companyID,
				"categoryId": line.CategoryID,
			},
			"select": []string{"id", "stageId", "companyId"},
			"start":  start,
		}

		env, err := c.call(ctx, "crm.item.list", params)
		if err != nil {
			return nil, err
		}

		var res itemListResult

		err = json.Unmarshal(env.Result, &res)
		if err != nil {
			return nil, fmt.Errorf("%w: decode crm.item.list: %w", entity.ErrNoResult, err)
		}

		for _, it := range res.Items {
			if IsFinalStage(it.StageID) {
				continue
			}

			cards = append(cards, entity.DealCard{
				ID:          it.ID.String(),
				CompanyID:   companyID,
				ProductLine: line.Name,
				StageID:     it.StageID,
			})
		}

		if env.Next == nil {
			return cards, nil
		}

		start = *env.Next
	}

	return cards, nil
}

// IsFinalStage reports whether a smart-process stage id is a success or failure stage.
func IsFinalStage(stageID string) bool {
	return strings.HasSuffix(stageID, ":SUCCESS") || strings.HasSuffix(stageID, ":FAIL")
}

func (c *Client) CreateCard(ctx context.Context, line entity.ProductLine, payload entity.CardPayload) (string, error) {
	fields := make(map[string]any, len(payload.Fields)+1)
	for k, v := range payload.Fields {
		fields[k] = v
	}

	fields["companyId"] = payload.CompanyID

	params := map[string]any{
		"entityTypeId": line.EntityTypeID,
		"fields":       fields,
	}

	raw, err := c.Call(ctx, "crm.item.add", params)
	if err != nil {
		return "", err
	}

	var res itemAddResult

	err = json.Unmarshal(raw, &res)
	if err != nil || res.Item.ID == "" {
		return "", fmt.Errorf("%w: crm.item.add: unexpected result %s", entity.ErrNoResult, raw)
	}

	return res.Item.ID.String(), nil
}
