package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/RafaelZelak/AberturaDeBaseBitrix/internal/entity"
)

const (
	cardWindow   = 30 * 24 * time.Hour
	dateLayout   = "2006-01-02"
	cardCurrency = "BRL"
)

// Engine reconciles one contract record against the CRM.
type Engine struct {
	crm      CRM
	resolver *Resolver
	now      func() time.Time
}

func NewEngine(crm CRM) *Engine {
	return &Engine{
		crm:      crm,
		resolver: NewResolver(crm),
		now:      time.Now,
	}
}

// WithClock replaces the clock used for card dates.
func (e *Engine) WithClock(now func() time.Time) *Engine {
	e.now = now
	return e
}

type fees struct {
	monthly string
	license string
}

// Reconcile drives one record through lookup, affiliation and card creation.
// The returned result always carries an outcome; Card is set only when a card was created.
func (e *Engine) Reconcile(ctx context.Context, rec entity.ContractRecord) (entity.ReconcileResult, error) {
	err := rec.Validate()
	if err != nil {
		return entity.ReconcileResult{Outcome: entity.OutcomeSkipped}, err
	}

	model, err := rec.Model()
	if err != nil {
		return entity.ReconcileResult{Outcome: entity.OutcomeSkipped}, err
	}

	f, err := sanitizeFees(rec)
	if err != nil {
		return entity.ReconcileResult{Outcome: entity.OutcomeSkipped}, err
	}

	state, affiliated, err := e.resolver.Resolve(ctx, rec.TaxID, model.ExpectedSystem)
	if err != nil {
		return entity.ReconcileResult{Outcome: entity.OutcomeFailed}, err
	}

	if affiliated {
		slog.InfoContext(ctx, "company already affiliated",
			"tax_id", rec.TaxID, "company_id", state.CompanyID, "system", state.CurrentSystem.Label())

		return entity.ReconcileResult{Outcome: entity.OutcomeNoop, CompanyID: state.CompanyID}, nil
	}

	var outcome entity.Outcome

	switch {
	case !state.Exists():
		id, err := e.crm.CreateCompany(ctx, companyPayload(rec, model, f))
		if err != nil {
			return entity.ReconcileResult{Outcome: entity.OutcomeFailed}, fmt.Errorf("create company: %w", err)
		}

		slog.InfoContext(ctx, "company created", "tax_id", rec.TaxID, "company_id", id)

		state.CompanyID = id
		outcome = entity.OutcomeCreated

	default:
		target, ok := model.Upgrade(state.CurrentSystem)
		if !ok {
			slog.InfoContext(ctx, "company affiliated with another system, no upgrade path",
				"tax_id", rec.TaxID,
				"company_id", state.CompanyID,
				"current", state.CurrentSystem.Label(),
				"expected", model.ExpectedSystem.Label(),
			)

			return entity.ReconcileResult{Outcome: entity.OutcomeNoUpgrade, CompanyID: state.CompanyID}, nil
		}

		err = e.crm.UpdateCompanyField(ctx, state.CompanyID, entity.CompanyFieldSystem, string(target))
		if err != nil {
			return entity.ReconcileResult{Outcome: entity.OutcomeFailed, CompanyID: state.CompanyID},
				fmt.Errorf("upgrade company %s: %w", state.CompanyID, err)
		}

		slog.InfoContext(ctx, "company affiliation upgraded",
			"company_id", state.CompanyID, "from", state.CurrentSystem.Label(), "to", target.Label())

		outcome = entity.OutcomeUpgraded
	}

	card, err := e.ensureCard(ctx, rec, model, f, state.CompanyID)
	if err != nil {
		return entity.ReconcileResult{Outcome: entity.OutcomeFailed, CompanyID: state.CompanyID}, err
	}

	if card == nil {
		// An upgrade without a new card is still recorded as upgraded.
		if outcome != entity.OutcomeUpgraded {
			outcome = entity.OutcomeCardExists
		}

		return entity.ReconcileResult{Outcome: outcome, CompanyID: state.CompanyID}, nil
	}

	return entity.ReconcileResult{Outcome: outcome, CompanyID: state.CompanyID, Card: card}, nil
}

// ensureCard creates a card unless the company already has an active one in the line.
func (e *Engine) ensureCard(
	ctx context.Context,
	rec entity.ContractRecord,
	model entity.ContractModel,
	f fees,
	companyID string,
) (*entity.CardCreated, error) {
	line := model.ProductLine()

	active, err := e.crm.ListActiveCards(ctx, companyID, line)
	if err != nil {
		return nil, fmt.Errorf("list active cards of %s: %w", companyID, err)
	}

	if len(active) > 0 {
		slog.InfoContext(ctx, "active card already exists",
			"company_id", companyID, "card_id", active[0].ID, "line", line.Name)

		return nil, nil //nolint:nilnil
	}

	id, err := e.crm.CreateCard(ctx, line, e.cardPayload(rec, model, f, companyID))
	if err != nil {
		return nil, fmt.Errorf("create card for %s: %w", companyID, err)
	}

	slog.InfoContext(ctx, "card created", "company_id", companyID, "card_id", id, "line", line.Name)

	return &entity.CardCreated{
		LegalName:     rec.LegalName,
		TaxID:         rec.TaxID,
		CardID:        id,
		ContractModel: model.Name,
	}, nil
}

func sanitizeFees(rec entity.ContractRecord) (fees, error) {
	var (
		f   fees
		err error
	)

	if strings.TrimSpace(rec.MonthlyFee) != "" {
		f.monthly, err = entity.SanitizeFee(rec.MonthlyFee)
		if err != nil {
			return fees{}, fmt.Errorf("monthly fee: %w", err)
		}
	}

	if strings.TrimSpace(rec.LicenseFee) != "" {
		f.license, err = entity.SanitizeFee(rec.LicenseFee)
		if err != nil {
			return fees{}, fmt.Errorf("license fee: %w", err)
		}
	}

	return f, nil
}

func companyPayload(rec entity.ContractRecord, model entity.ContractModel, f fees) entity.CompanyPayload {
	line := model.ProductLine()

	fields := map[string]any{
		entity.CompanyFieldTaxID:        rec.TaxID,
		entity.CompanyFieldSystem:       string(model.ExpectedSystem),
		entity.CompanyFieldSalesChannel: model.SalesChannelID,
		line.CompanyFields.Consultant:   rec.ConsultantName,
	}

	if f.license != "" {
		fields[line.CompanyFields.LicenseFee] = f.license
	}

	if f.monthly != "" {
		fields[line.CompanyFields.MonthlyFee] = f.monthly
	}

	if rec.DirectorName != "" {
		fields[entity.CompanyFieldDirector] = rec.DirectorName
	}

	return entity.CompanyPayload{
		Title:  rec.LegalName,
		Emails: typedValues(rec.ContactEmails(), "EMAIL"),
		Phones: typedValues(rec.ContactPhones(), "PHONE"),
		Fields: fields,
	}
}

func typedValues(values []string, typeID string) []entity.TypedValue {
	out := make([]entity.TypedValue, 0, len(values))
	for _, v := range values {
		out = append(out, entity.TypedValue{Value: v, ValueType: "WORK", TypeID: typeID})
	}

	return out
}

func (e *Engine) cardPayload(rec entity.ContractRecord, model entity.ContractModel, f fees, companyID string) entity.CardPayload {
	line := model.ProductLine()
	today := e.now()

	fields := map[string]any{
		"title":        rec.LegalName,
		"stageId":      line.NewStageID,
		"categoryId":   line.CategoryID,
		"assignedById": line.AssignedByID,
		"opened":       "N",
		"begindate":    today.Format(dateLayout),
		"closedate":    today.Add(cardWindow).Format(dateLayout),
		"currencyId":   cardCurrency,
	}

	set := func(field string, value any) {
		if field != "" {
			fields[field] = value
		}
	}

	set(line.CardFields.LegalName, rec.LegalName)
	set(line.CardFields.TaxID, rec.TaxID)
	set(line.CardFields.Email, rec.FirstEmail())
	set(line.CardFields.PackageSize, rec.CNPJQuantity)

	if f.monthly != "" {
		set(line.CardFields.MonthlyFee, f.monthly)
	}

	if model.ResellerID != 0 {
		set(line.CardFields.Reseller, model.ResellerID)
	}

	return entity.CardPayload{
		CompanyID: companyID,
		Fields:    fields,
	}
}
