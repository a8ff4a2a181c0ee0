package entity

import (
	"crypto/md5" //nolint:gosec // content addressing, not security
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ContractRecord is the data scraped from one contract notification email.
type ContractRecord struct {
	LegalName      string   `json:"razaoSocial"       validate:"required"`
	TaxID          string   `json:"cnpj"              validate:"required"`
	ContractModel  string   `json:"modeloDeContrato"  validate:"required"`
	ConsultantName string   `json:"consultor"`
	DirectorName   string   `json:"diretor,omitempty"`
	Emails         []string `json:"emails"`
	Phones         []string `json:"phones"`
	MonthlyFee     string   `json:"valorMensalidade,omitempty"`
	LicenseFee     string   `json:"valorLicenca,omitempty"`
	CNPJQuantity   string   `json:"qtdCnpj,omitempty"`
}

// Validate checks the fields reconciliation cannot work without.
func (r ContractRecord) Validate() error {
	err := validate.Struct(r)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}

	return nil
}

// Model resolves the declared contract model.
func (r ContractRecord) Model() (ContractModel, error) {
	m, ok := ContractModelByName(r.ContractModel)
	if !ok {
		return ContractModel{}, fmt.Errorf("%w: %q", ErrUnknownContractModel, r.ContractModel)
	}

	return m, nil
}

// ContactEmails returns the non-empty emails in their original order.
func (r ContractRecord) ContactEmails() []string {
	return nonEmpty(r.Emails)
}

func (r ContractRecord) ContactPhones() []string {
	return nonEmpty(r.Phones)
}

func (r ContractRecord) FirstEmail() string {
	emails := r.ContactEmails()
	if len(emails) == 0 {
		return ""
	}

	return emails[0]
}

func nonEmpty(values []string) []string {
	out := make([]string, 0, len(values))

	for _, v := range values {
		v = strings.TrimSpace(v)
		if v != "" {
			out = append(out, v)
		}
	}

	return out
}

// CachedContract is a record together with the hash it is stored under.
type CachedContract struct {
	Hash   string
	Record ContractRecord
}

// ContractHash derives the cache key from the contract number of the source email.
func ContractHash(contractNumber string) string {
	sum := md5.Sum([]byte(contractNumber)) //nolint:gosec
	return hex.EncodeToString(sum[:])
}
