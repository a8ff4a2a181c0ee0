package service_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/RafaelZelak/AberturaDeBaseBitrix/internal/entity"
	"github.com/RafaelZelak/AberturaDeBaseBitrix/internal/mocks"
	"github.com/RafaelZelak/AberturaDeBaseBitrix/internal/service"
)

var fixedNow = time.Date(2024, time.September, 10, 9, 30, 0, 0, time.UTC)

func sittaxRecord() entity.ContractRecord {
	return entity.ContractRecord{
		LegalName:      "Contabil Alfa LTDA",
		TaxID:          "12.345.678/0001-90",
		ContractModel:  "Sittax - Simples Nacional",
		ConsultantName: "Maria",
		DirectorName:   "João",
		Emails:         []string{"contato@alfa.com.br", "joao@alfa.com.br"},
		Phones:         []string{"+5511987654321"},
		MonthlyFee:     "R$ 1.234,56 (parcela)",
		LicenseFee:     "R$ 99,90",
		CNPJQuantity:   "25",
	}
}

func acessoriasRecord() entity.ContractRecord {
	rec := sittaxRecord()
	rec.ContractModel = "Acessórias"

	return rec
}

func acessoriasKomunicRecord() entity.ContractRecord {
	rec := sittaxRecord()
	rec.ContractModel = "Acessórias + Komunic"

	return rec
}

func line(t *testing.T, name entity.ProductLineName) entity.ProductLine {
	t.Helper()

	l, ok := entity.ProductLineByName(name)
	require.True(t, ok)

	return l
}

func newEngine(crm service.CRM) *service.Engine {
	return service.NewEngine(crm).WithClock(func() time.Time { return fixedNow })
}

func TestEngine_CreatesCompanyAndCard(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	ctrl := gomock.NewController(t)
	crm := mocks.NewMockCRM(ctrl)
	sittax := line(t, entity.ProductLineSittax)

	crm.EXPECT().FindCompanyByTaxID(ctx, "12.345.678/0001-90").
		Return(entity.Company{}, fmt.Errorf("lookup: %w", entity.ErrNotFound))

	crm.EXPECT().CreateCompany(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, p entity.CompanyPayload) (string, error) {
			require.Equal(t, "Contabil Alfa LTDA", p.Title)
			require.Equal(t, []entity.TypedValue{
				{Value: "contato@alfa.com.br", ValueType: "WORK", TypeID: "EMAIL"},
				{Value: "joao@alfa.com.br", ValueType: "WORK", TypeID: "EMAIL"},
			}, p.Emails)
			require.Equal(t, []entity.TypedValue{{Value: "+5511987654321", ValueType: "WORK", TypeID: "PHONE"}}, p.Phones)
			require.Equal(t, map[string]any{
				entity.CompanyFieldTaxID:        "12.345.678/0001-90",
				entity.CompanyFieldSystem:       "237",
				entity.CompanyFieldSalesChannel: 691,
				entity.CompanyFieldDirector:     "João",
				"UF_CRM_1727441490980":          "Maria",
				"UF_CRM_1727441546022":          "99.90",
				"UF_CRM_1727441557582":          "1234.56",
			}, p.Fields)

			return "77", nil
		})

	crm.EXPECT().ListActiveCards(ctx, "77", sittax).Return(nil, nil)

	crm.EXPECT().CreateCard(ctx, sittax, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ entity.ProductLine, p entity.CardPayload) (string, error) {
			require.Equal(t, "77", p.CompanyID)
			require.Equal(t, map[string]any{
				"title":                 "Contabil Alfa LTDA",
				"stageId":               "DT158_11:NEW",
				"categoryId":            11,
				"assignedById":          629,
				"opened":                "N",
				"begindate":             "2024-09-10",
				"closedate":             "2024-10-10",
				"currencyId":            "BRL",
				"ufCrm5_1737545372279":  "Contabil Alfa LTDA",
				"ufCrm5_1737545379350":  "12.345.678/0001-90",
				"ufCrm5_1710961669613":  "contato@alfa.com.br",
				"ufCrm25_1710505566404": "1234.56",
				"ufCrm25_1710505188682": "25",
				"ufCrm5_1736438430958":  815,
			}, p.Fields)

			return "900", nil
		})

	res, err := newEngine(crm).Reconcile(ctx, sittaxRecord())
	require.NoError(t, err)
	require.Equal(t, entity.ReconcileResult{
		Outcome:   entity.OutcomeCreated,
		CompanyID: "77",
		Card: &entity.CardCreated{
			LegalName:     "Contabil Alfa LTDA",
			TaxID:         "12.345.678/0001-90",
			CardID:        "900",
			ContractModel: "Sittax - Simples Nacional",
		},
	}, res)
}

func TestEngine_AlreadyAffiliated(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	ctrl := gomock.NewController(t)
	crm := mocks.NewMockCRM(ctrl)

	crm.EXPECT().FindCompanyByTaxID(ctx, gomock.Any()).
		Return(entity.Company{ID: "77", System: entity.SystemSittax}, nil)

	res, err := newEngine(crm).Reconcile(ctx, sittaxRecord())
	require.NoError(t, err)
	require.Equal(t, entity.ReconcileResult{Outcome: entity.OutcomeNoop, CompanyID: "77"}, res)
}

func TestEngine_Upgrades(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		record  entity.ContractRecord
		line    entity.ProductLineName
		current entity.SystemCode
		target  entity.SystemCode
	}{
		{
			name:    "acessorias company signs sittax",
			record:  sittaxRecord(),
			line:    entity.ProductLineSittax,
			current: entity.SystemAcessorias,
			target:  entity.SystemSittaxAcessorias,
		},
		{
			name:    "acessorias komunic company signs sittax",
			record:  sittaxRecord(),
			line:    entity.ProductLineSittax,
			current: entity.SystemAcessoriasKomunic,
			target:  entity.SystemSittaxAcessoriasKomunic,
		},
		{
			name:    "sittax company signs acessorias",
			record:  acessoriasRecord(),
			line:    entity.ProductLineAcessorias,
			current: entity.SystemSittax,
			target:  entity.SystemSittaxAcessorias,
		},
		{
			name:    "sittax company signs acessorias komunic",
			record:  acessoriasKomunicRecord(),
			line:    entity.ProductLineAcessorias,
			current: entity.SystemSittax,
			target:  entity.SystemSittaxAcessoriasKomunic,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx := context.Background()
			ctrl := gomock.NewController(t)
			crm := mocks.NewMockCRM(ctrl)
			l := line(t, tt.line)

			crm.EXPECT().FindCompanyByTaxID(ctx, gomock.Any()).
				Return(entity.Company{ID: "77", System: tt.current}, nil)
			crm.EXPECT().UpdateCompanyField(ctx, "77", entity.CompanyFieldSystem, string(tt.target)).Return(nil)
			crm.EXPECT().ListActiveCards(ctx, "77", l).Return([]entity.DealCard{}, nil)
			crm.EXPECT().CreateCard(ctx, l, gomock.Any()).Return("901", nil)

			res, err := newEngine(crm).Reconcile(ctx, tt.record)
			require.NoError(t, err)
			require.Equal(t, entity.OutcomeUpgraded, res.Outcome)
			require.Equal(t, "77", res.CompanyID)
			require.NotNil(t, res.Card)
			require.Equal(t, "901", res.Card.CardID)
		})
	}
}

func TestEngine_NoUpgradePath(t *testing.T) {
	t.Parallel()

	for _, current := range []entity.SystemCode{
		entity.SystemBestDoctor,
		entity.SystemSittaxAcessorias,
		entity.SystemUnknown,
	} {
		current := current
		t.Run(current.Label(), func(t *testing.T) {
			t.Parallel()

			ctx := context.Background()
			ctrl := gomock.NewController(t)
			crm := mocks.NewMockCRM(ctrl)

			crm.EXPECT().FindCompanyByTaxID(ctx, gomock.Any()).
				Return(entity.Company{ID: "77", System: current}, nil)

			res, err := newEngine(crm).Reconcile(ctx, sittaxRecord())
			require.NoError(t, err)
			require.Equal(t, entity.ReconcileResult{Outcome: entity.OutcomeNoUpgrade, CompanyID: "77"}, res)
		})
	}
}

func TestEngine_ActiveCardExists(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	ctrl := gomock.NewController(t)
	crm := mocks.NewMockCRM(ctrl)
	acessorias := line(t, entity.ProductLineAcessorias)

	crm.EXPECT().FindCompanyByTaxID(ctx, gomock.Any()).Return(entity.Company{}, entity.ErrNotFound)
	crm.EXPECT().CreateCompany(ctx, gomock.Any()).Return("77", nil)
	crm.EXPECT().ListActiveCards(ctx, "77", acessorias).
		Return([]entity.DealCard{{ID: "5", CompanyID: "77", ProductLine: entity.ProductLineAcessorias, StageID: "DT187_99:NEW"}}, nil)

	res, err := newEngine(crm).Reconcile(ctx, acessoriasRecord())
	require.NoError(t, err)
	require.Equal(t, entity.ReconcileResult{Outcome: entity.OutcomeCardExists, CompanyID: "77"}, res)
}

func TestEngine_UpgradeWithActiveCard(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	ctrl := gomock.NewController(t)
	crm := mocks.NewMockCRM(ctrl)
	acessorias := line(t, entity.ProductLineAcessorias)

	crm.EXPECT().FindCompanyByTaxID(ctx, gomock.Any()).
		Return(entity.Company{ID: "77", System: entity.SystemSittax}, nil)
	crm.EXPECT().UpdateCompanyField(ctx, "77", entity.CompanyFieldSystem, "655").Return(nil)
	crm.EXPECT().ListActiveCards(ctx, "77", acessorias).
		Return([]entity.DealCard{{ID: "5", CompanyID: "77", ProductLine: entity.ProductLineAcessorias, StageID: "DT187_99:NEW"}}, nil)

	res, err := newEngine(crm).Reconcile(ctx, acessoriasRecord())
	require.NoError(t, err)
	require.Equal(t, entity.ReconcileResult{Outcome: entity.OutcomeUpgraded, CompanyID: "77"}, res)
}

func TestEngine_SkipsMalformedRecords(t *testing.T) {
	t.Parallel()

	withTaxID := func(v string) entity.ContractRecord { r := sittaxRecord(); r.TaxID = v; return r }
	withName := func(v string) entity.ContractRecord { r := sittaxRecord(); r.LegalName = v; return r }
	withModel := func(v string) entity.ContractRecord { r := sittaxRecord(); r.ContractModel = v; return r }
	withFee := func(v string) entity.ContractRecord { r := sittaxRecord(); r.MonthlyFee = v; return r }

	tests := []struct {
		name   string
		record entity.ContractRecord
		err    error
	}{
		{name: "missing tax id", record: withTaxID(""), err: entity.ErrInvalidRecord},
		{name: "missing legal name", record: withName(""), err: entity.ErrInvalidRecord},
		{name: "unknown model", record: withModel("Best Doctors"), err: entity.ErrUnknownContractModel},
		{name: "unparseable fee", record: withFee("a combinar"), err: entity.ErrInvalidFee},
		{name: "negative fee", record: withFee("R$ -10,00"), err: entity.ErrInvalidFee},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			crm := mocks.NewMockCRM(ctrl)

			res, err := newEngine(crm).Reconcile(context.Background(), tt.record)
			require.ErrorIs(t, err, tt.err)
			require.Equal(t, entity.ReconcileResult{Outcome: entity.OutcomeSkipped}, res)
		})
	}
}

func TestEngine_UnknownRemoteState(t *testing.T) {
	t.Parallel()

	t.Run("lookup", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		ctrl := gomock.NewController(t)
		crm := mocks.NewMockCRM(ctrl)

		crm.EXPECT().FindCompanyByTaxID(ctx, gomock.Any()).
			Return(entity.Company{}, fmt.Errorf("%w: crm.company.list: unexpected status code 500", entity.ErrNoResult))

		res, err := newEngine(crm).Reconcile(ctx, sittaxRecord())
		require.ErrorIs(t, err, entity.ErrNoResult)
		require.Equal(t, entity.OutcomeFailed, res.Outcome)
		require.Nil(t, res.Card)
	})

	t.Run("card check", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		ctrl := gomock.NewController(t)
		crm := mocks.NewMockCRM(ctrl)

		crm.EXPECT().FindCompanyByTaxID(ctx, gomock.Any()).Return(entity.Company{}, entity.ErrNotFound)
		crm.EXPECT().CreateCompany(ctx, gomock.Any()).Return("77", nil)
		crm.EXPECT().ListActiveCards(ctx, "77", gomock.Any()).Return(nil, entity.ErrNoResult)

		res, err := newEngine(crm).Reconcile(ctx, sittaxRecord())
		require.ErrorIs(t, err, entity.ErrNoResult)
		require.Equal(t, entity.ReconcileResult{Outcome: entity.OutcomeFailed, CompanyID: "77"}, res)
	})

	t.Run("failed mutation", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		ctrl := gomock.NewController(t)
		crm := mocks.NewMockCRM(ctrl)

		crm.EXPECT().FindCompanyByTaxID(ctx, gomock.Any()).Return(entity.Company{}, entity.ErrNotFound)
		crm.EXPECT().CreateCompany(ctx, gomock.Any()).Return("", entity.ErrNoResult)

		res, err := newEngine(crm).Reconcile(ctx, sittaxRecord())
		require.ErrorIs(t, err, entity.ErrNoResult)
		require.Equal(t, entity.ReconcileResult{Outcome: entity.OutcomeFailed}, res)
	})
}

// A second pass against the CRM state left by the first one mutates nothing.
func TestEngine_Idempotent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		record  entity.ContractRecord
		system  entity.SystemCode
		outcome entity.Outcome
	}{
		{name: "after create", record: sittaxRecord(), system: entity.SystemSittax, outcome: entity.OutcomeNoop},
		{name: "after upgrade", record: sittaxRecord(), system: entity.SystemSittaxAcessorias, outcome: entity.OutcomeNoUpgrade},
		{name: "after acessorias create", record: acessoriasRecord(), system: entity.SystemAcessorias, outcome: entity.OutcomeNoop},
		{
			name:    "after komunic upgrade",
			record:  acessoriasKomunicRecord(),
			system:  entity.SystemSittaxAcessoriasKomunic,
			outcome: entity.OutcomeNoUpgrade,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx := context.Background()
			ctrl := gomock.NewController(t)
			crm := mocks.NewMockCRM(ctrl)

			crm.EXPECT().FindCompanyByTaxID(ctx, tt.record.TaxID).
				Return(entity.Company{ID: "77", TaxID: tt.record.TaxID, System: tt.system}, nil)

			res, err := newEngine(crm).Reconcile(ctx, tt.record)
			require.NoError(t, err)
			require.Equal(t, tt.outcome, res.Outcome)
			require.Nil(t, res.Card)
		})
	}
}

func TestResolver_Resolve(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	ctrl := gomock.NewController(t)
	crm := mocks.NewMockCRM(ctrl)
	r := service.NewResolver(crm)

	crm.EXPECT().FindCompanyByTaxID(ctx, "1").Return(entity.Company{}, entity.ErrNotFound)
	crm.EXPECT().FindCompanyByTaxID(ctx, "2").Return(entity.Company{ID: "20", System: entity.SystemAcessorias}, nil)
	crm.EXPECT().FindCompanyByTaxID(ctx, "3").Return(entity.Company{ID: "30"}, nil)
	crm.EXPECT().FindCompanyByTaxID(ctx, "4").Return(entity.Company{}, entity.ErrNoResult)

	state, ok, err := r.Resolve(ctx, "1", entity.SystemSittax)
	require.NoError(t, err)
	require.False(t, ok)
	require.False(t, state.Exists())
	require.Equal(t, "1", state.TaxID)

	state, ok, err = r.Resolve(ctx, "2", entity.SystemAcessorias)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, entity.AffiliationState{CompanyID: "20", TaxID: "2", CurrentSystem: entity.SystemAcessorias}, state)

	state, ok, err = r.Resolve(ctx, "3", entity.SystemSittax)
	require.NoError(t, err)
	require.False(t, ok)
	require.True(t, state.Exists())
	require.Equal(t, "Desconhecido", state.CurrentSystem.Label())

	_, _, err = r.Resolve(ctx, "4", entity.SystemSittax)
	require.ErrorIs(t, err, entity.ErrNoResult)
}
