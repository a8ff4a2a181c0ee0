package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"strings"

	"github.com/RafaelZelak/AberturaDeBaseBitrix/internal/entity"
)

var summaryTemplate = template.Must(template.New("summary").Parse(`<html><body>
<p>Novos cards criados no Bitrix24 ({{.Line}}):</p>
<table border="1" cellpadding="4" cellspacing="0">
<tr><th>Razão Social</th><th>CNPJ</th><th>Modelo de Contrato</th><th>Card</th></tr>
{{- range .Cards}}
<tr><td>{{.LegalName}}</td><td>{{.TaxID}}</td><td>{{.ContractModel}}</td><td><a href="{{.URL}}">{{.CardID}}</a></td></tr>
{{- end}}
</table>
</body></html>`))

type summaryCard struct {
	entity.CardCreated
	URL string
}

type NotifierOptions struct {
	PortalURL  string
	Recipients map[entity.ProductLineName][]string
}

// Notifier mails one summary of new cards per product line.
type Notifier struct {
	mailer Mailer
	opts   NotifierOptions
}

func NewNotifier(mailer Mailer, opts NotifierOptions) *Notifier {
	opts.PortalURL = strings.TrimSuffix(opts.PortalURL, "/")

	return &Notifier{
		mailer: mailer,
		opts:   opts,
	}
}

// Notify sends the summaries. A line without cards or recipients gets no email.
func (n *Notifier) Notify(ctx context.Context, cards []entity.CardCreated) error {
	byLine := make(map[entity.ProductLineName][]summaryCard)

	for _, c := range cards {
		model, ok := entity.ContractModelByName(c.ContractModel)
		if !ok {
			slog.WarnContext(ctx, "card with unknown contract model", "card_id", c.CardID, "model", c.ContractModel)
			continue
		}

		line := model.ProductLine()

		byLine[line.Name] = append(byLine[line.Name], summaryCard{
			CardCreated: c,
			URL:         fmt.Sprintf("%s/crm/type/%d/details/%s/", n.opts.PortalURL, line.EntityTypeID, c.CardID),
		})
	}

	var errs []error

	for _, line := range entity.ProductLines() {
		lineCards := byLine[line.Name]
		recipients := n.opts.Recipients[line.Name]

		if len(lineCards) == 0 {
			continue
		}

		if len(recipients) == 0 {
			slog.WarnContext(ctx, "no summary recipients", "line", line.Name, "cards", len(lineCards))
			continue
		}

		var buf bytes.Buffer

		err := summaryTemplate.Execute(&buf, struct {
			Line  string
			Cards []summaryCard
		}{Line: line.Label, Cards: lineCards})
		if err != nil {
			return fmt.Errorf("render %s summary: %w", line.Name, err)
		}

		subject := fmt.Sprintf("Novos cards %s: %d", line.Label, len(lineCards))

		err = n.mailer.SendMessage(subject, buf.String(), recipients, "text/html")
		if err != nil {
			errs = append(errs, fmt.Errorf("send %s summary: %w", line.Name, err))
			continue
		}

		slog.InfoContext(ctx, "summary sent", "line", line.Name, "cards", len(lineCards), "recipients", len(recipients))
	}

	return errors.Join(errs...)
}
