package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/RafaelZelak/AberturaDeBaseBitrix/internal/entity"
	"github.com/RafaelZelak/AberturaDeBaseBitrix/internal/mocks"
	"github.com/RafaelZelak/AberturaDeBaseBitrix/internal/service"
)

func TestNotifier_Notify(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mailer := mocks.NewMockMailer(ctrl)

	n := service.NewNotifier(mailer, service.NotifierOptions{
		PortalURL: "https://portal.bitrix24.com.br/",
		Recipients: map[entity.ProductLineName][]string{
			entity.ProductLineSittax:     {"sittax@example.com"},
			entity.ProductLineAcessorias: {"acessorias@example.com", "ops@example.com"},
		},
	})

	cards := []entity.CardCreated{
		{LegalName: "Alfa", TaxID: "1", CardID: "10", ContractModel: "Openix - Sittax SN"},
		{LegalName: "Beta & Filhos", TaxID: "2", CardID: "20", ContractModel: "Acessórias + KOMUNIC"},
		{LegalName: "Gama", TaxID: "3", CardID: "30", ContractModel: "Acessórias"},
		{LegalName: "Delta", TaxID: "4", CardID: "40", ContractModel: "Best Doctors"},
	}

	mailer.EXPECT().SendMessage("Novos cards Sittax: 1", gomock.Any(), []string{"sittax@example.com"}, "text/html").
		DoAndReturn(func(_, body string, _ []string, _ string) error {
			require.Contains(t, body, `href="https://portal.bitrix24.com.br/crm/type/158/details/10/"`)
			require.Contains(t, body, "Alfa")
			require.NotContains(t, body, "Gama")

			return nil
		})

	mailer.EXPECT().SendMessage("Novos cards Acessórias: 2", gomock.Any(), []string{"acessorias@example.com", "ops@example.com"}, "text/html").
		DoAndReturn(func(_, body string, _ []string, _ string) error {
			require.Contains(t, body, `https://portal.bitrix24.com.br/crm/type/187/details/20/`)
			require.Contains(t, body, `https://portal.bitrix24.com.br/crm/type/187/details/30/`)
			require.Contains(t, body, "Beta &amp; Filhos")
			require.NotContains(t, body, "Delta")

			return nil
		})

	require.NoError(t, n.Notify(context.Background(), cards))
}

func TestNotifier_NotifyErrors(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mailer := mocks.NewMockMailer(ctrl)

	n := service.NewNotifier(mailer, service.NotifierOptions{
		PortalURL: "https://portal.bitrix24.com.br",
		Recipients: map[entity.ProductLineName][]string{
			entity.ProductLineSittax: {"sittax@example.com"},
		},
	})

	cards := []entity.CardCreated{
		{LegalName: "Alfa", CardID: "10", ContractModel: "Sittax - Simples Nacional"},
		{LegalName: "Gama", CardID: "30", ContractModel: "Acessórias"},
	}

	// Acessórias has no recipients and is not mailed.
	mailer.EXPECT().SendMessage(gomock.Any(), gomock.Any(), []string{"sittax@example.com"}, "text/html").
		Return(errors.New("smtp: 535"))

	err := n.Notify(context.Background(), cards)
	require.ErrorContains(t, err, "smtp: 535")
}
