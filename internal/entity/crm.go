package entity

// Company is the subset of a CRM company the reconciliation reads.
type Company struct {
	ID     string
	TaxID  string
	System SystemCode
}

// AffiliationState is derived on demand from the CRM; it is never persisted.
type AffiliationState struct {
	CompanyID     string
	TaxID         string
	CurrentSystem SystemCode
}

// Exists reports whether the CRM has a company for the tax id.
func (a AffiliationState) Exists() bool {
	return a.CompanyID != ""
}

type DealCard struct {
	ID          string
	CompanyID   string
	ProductLine ProductLineName
	StageID     string
}

type TypedValue struct {
	Value     string `json:"VALUE"`
	ValueType string `json:"VALUE_TYPE"`
	TypeID    string `json:"TYPE_ID"`
}

// CompanyPayload is the field set sent to crm.company.add.
type CompanyPayload struct {
	Title  string
	Emails []TypedValue
	Phones []TypedValue
	Fields map[string]any
}

// CardPayload is the field set sent to crm.item.add.
type CardPayload struct {
	CompanyID string
	Fields    map[string]any
}
