// Package parser extracts contract records from the notification emails of the contracts platform.
package parser

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"github.com/RafaelZelak/AberturaDeBaseBitrix/internal/entity"
)

const (
	labelContract      = "Contrato"
	labelContractModel = "Modelo de Contrato"
	labelConsultant    = "Consultor"
	labelLegalName     = "Razão Social"
	labelTaxID         = "CNPJ"
	labelEmail         = "E-mail"
	labelLicenseFee    = "Valor da Licença"
	labelMonthlyFee    = "Valor da Mensalidade"
	labelName          = "Nome"
	labelPhone         = "Telefone"
	labelCNPJQuantity  = "Qtd. CNPJ"
)

var (
	ErrNoContractNumber = fmt.Errorf("%w: contract number not found", entity.ErrInvalidRecord)
	ErrIncomplete       = fmt.Errorf("%w: incomplete contract data", entity.ErrInvalidRecord)
)

var (
	spaces    = regexp.MustCompile(`\s+`)
	nonDigits = regexp.MustCompile(`\D`)
	patterns  = map[string]*regexp.Regexp{}
)

func init() {
	for _, label := range []string{
		labelContract, labelContractModel, labelConsultant, labelLegalName, labelTaxID, labelEmail,
		labelLicenseFee, labelMonthlyFee, labelName, labelPhone, labelCNPJQuantity,
	} {
		// Values are "Label: value<br />", the label optionally bold and always right after a tag
		// or at a line start, so "Contrato:" does not match "Modelo de Contrato:".
		patterns[label] = regexp.MustCompile(`(?ms)(?:^|>)[ \t]*` + regexp.QuoteMeta(label) + `:(?:\s*</b>)?\s*(.*?)\s*<br\s*/?>`)
	}
}

// Contract is one parsed email.
type Contract struct {
	Number string
	Record entity.ContractRecord
}

// Hash is the cache key of the contract.
func (c Contract) Hash() string {
	return entity.ContractHash(c.Number)
}

// Parse scrapes the contract fields from an email body.
// Emails are taken in order (contractor, director, financial) as are names and phones (director, financial).
func Parse(body string) (Contract, error) {
	number := first(body, labelContract)
	if number == "" {
		return Contract{}, ErrNoContractNumber
	}

	names := all(body, labelName)
	phones := all(body, labelPhone)

	rec := entity.ContractRecord{
		LegalName:      first(body, labelLegalName),
		TaxID:          first(body, labelTaxID),
		ContractModel:  first(body, labelContractModel),
		ConsultantName: first(body, labelConsultant),
		Emails:         all(body, labelEmail),
		MonthlyFee:     first(body, labelMonthlyFee),
		LicenseFee:     first(body, labelLicenseFee),
		CNPJQuantity:   first(body, labelCNPJQuantity),
	}

	if len(names) > 0 {
		rec.DirectorName = names[0]
	}

	if len(rec.Emails) > 3 { //nolint:mnd
		rec.Emails = rec.Emails[:3]
	}

	for i, p := range phones {
		if i == 2 { //nolint:mnd
			break
		}

		if formatted, ok := FormatPhone(p); ok {
			rec.Phones = append(rec.Phones, formatted)
		}
	}

	if rec.LegalName == "" || rec.TaxID == "" || rec.ContractModel == "" || rec.ConsultantName == "" {
		return Contract{}, fmt.Errorf("%w: contract %s", ErrIncomplete, number)
	}

	rec.TaxID = FormatCNPJ(rec.TaxID)

	return Contract{Number: number, Record: rec}, nil
}

func first(body, label string) string {
	m := patterns[label].FindStringSubmatch(body)
	if m == nil {
		return ""
	}

	return clean(m[1])
}

func all(body, label string) []string {
	matches := patterns[label].FindAllStringSubmatch(body, -1)

	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, clean(m[1]))
	}

	return out
}

// clean strips markup and entities from a scraped value and collapses whitespace.
func clean(fragment string) string {
	var sb strings.Builder

	z := html.NewTokenizer(strings.NewReader(fragment))

	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if !errors.Is(z.Err(), io.EOF) {
				return ""
			}

			break
		}

		if tt == html.TextToken {
			sb.Write(z.Text())
		}
	}

	s := strings.ReplaceAll(sb.String(), "\u00a0", " ")

	return strings.TrimSpace(spaces.ReplaceAllString(s, " "))
}

// FormatCNPJ renders a 14 digit tax id as NN.NNN.NNN/NNNN-NN. Other values are returned unchanged.
func FormatCNPJ(cnpj string) string {
	digits := nonDigits.ReplaceAllString(cnpj, "")
	if len(digits) != 14 { //nolint:mnd
		return cnpj
	}

	return digits[:2] + "." + digits[2:5] + "." + digits[5:8] + "/" + digits[8:12] + "-" + digits[12:]
}

// FormatPhone normalizes a Brazilian phone to +55DDDNNNNNNNN.
func FormatPhone(phone string) (string, bool) {
	digits := nonDigits.ReplaceAllString(phone, "")

	switch {
	case len(digits) == 13 && strings.HasPrefix(digits, "55"):
		return "+" + digits, true
	case len(digits) == 10 || len(digits) == 11:
		return "+55" + digits, true
	default:
		return "", false
	}
}
