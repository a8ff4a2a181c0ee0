package entity

import (
	"strings"
)

type ProductLineName string

const (
	ProductLineSittax     ProductLineName = "sittax"
	ProductLineAcessorias ProductLineName = "acessorias"
)

// Company custom fields shared by every product line.
const (
	CompanyFieldTaxID        = "UF_CRM_1701275490640"
	CompanyFieldSystem       = "UF_CRM_1708446996746"
	CompanyFieldSalesChannel = "UF_CRM_1723638730243"
	CompanyFieldDirector     = "UF_CRM_1725555192239"
)

// CompanyFields maps line specific company custom fields.
type CompanyFields struct {
	Consultant string
	LicenseFee string
	MonthlyFee string
}

// CardFields maps smart-process item custom fields. Empty names are not sent.
type CardFields struct {
	LegalName   string
	TaxID       string
	Email       string
	MonthlyFee  string
	PackageSize string
	Reseller    string
}

// ProductLine describes where and how a product line lives in the CRM.
type ProductLine struct {
	Name          ProductLineName
	Label         string
	EntityTypeID  int
	CategoryID    int
	NewStageID    string
	AssignedByID  int
	CompanyFields CompanyFields
	CardFields    CardFields
	upgrades      map[SystemCode]SystemCode
}

// Upgrade returns the combined system a company affiliated with current must move to.
func (p ProductLine) Upgrade(current SystemCode) (SystemCode, bool) {
	target, ok := p.upgrades[current]
	return target, ok
}

var productLines = map[ProductLineName]ProductLine{
	ProductLineSittax: {
		Name:         ProductLineSittax,
		Label:        "Sittax",
		EntityTypeID: 158,
		CategoryID:   11,
		NewStageID:   "DT158_11:NEW",
		AssignedByID: 629,
		CompanyFields: CompanyFields{
			Consultant: "UF_CRM_1727441490980",
			LicenseFee: "UF_CRM_1727441546022",
			MonthlyFee: "UF_CRM_1727441557582",
		},
		CardFields: CardFields{
			LegalName:   "ufCrm5_1737545372279",
			TaxID:       "ufCrm5_1737545379350",
			Email:       "ufCrm5_1710961669613",
			MonthlyFee:  "ufCrm25_1710505566404",
			PackageSize: "ufCrm25_1710505188682",
			Reseller:    "ufCrm5_1736438430958",
		},
		upgrades: map[SystemCode]SystemCode{
			SystemAcessorias:        SystemSittaxAcessorias,
			SystemAcessoriasKomunic: SystemSittaxAcessoriasKomunic,
		},
	},
	ProductLineAcessorias: {
		Name:         ProductLineAcessorias,
		Label:        "Acessórias",
		EntityTypeID: 187,
		CategoryID:   99,
		NewStageID:   "DT187_99:NEW",
		AssignedByID: 629,
		CompanyFields: CompanyFields{
			Consultant: "UF_CRM_1727438279465",
			LicenseFee: "UF_CRM_1727438009508",
			MonthlyFee: "UF_CRM_1727437983987",
		},
		CardFields: CardFields{
			LegalName:   "ufCrm25_1737492364136",
			TaxID:       "ufCrm25_1737656457068",
			Email:       "ufCrm25_1710505471575",
			MonthlyFee:  "ufCrm25_1710505566404",
			PackageSize: "ufCrm25_1710505188682",
		},
		upgrades: map[SystemCode]SystemCode{
			SystemSittax: SystemSittaxAcessorias,
		},
	},
}

func ProductLineByName(name ProductLineName) (ProductLine, bool) {
	p, ok := productLines[name]
	return p, ok
}

func ProductLines() []ProductLine {
	return []ProductLine{productLines[ProductLineSittax], productLines[ProductLineAcessorias]}
}

// ContractModel is the commercial model declared in a contract email.
type ContractModel struct {
	Name           string
	Line           ProductLineName
	ExpectedSystem SystemCode
	SalesChannelID int
	ResellerID     int
	upgrades       map[SystemCode]SystemCode
}

func (m ContractModel) ProductLine() ProductLine {
	return productLines[m.Line]
}

// Upgrade returns the combined system for a company affiliated with current.
// Model specific targets take precedence over the product line table.
func (m ContractModel) Upgrade(current SystemCode) (SystemCode, bool) {
	if target, ok := m.upgrades[current]; ok {
		return target, true
	}

	return m.ProductLine().Upgrade(current)
}

var contractModels = []ContractModel{
	{Name: "Sittax - Simples Nacional", Line: ProductLineSittax, ExpectedSystem: SystemSittax, SalesChannelID: 691, ResellerID: 815},
	{Name: "Openix - Sittax SN", Line: ProductLineSittax, ExpectedSystem: SystemSittax, SalesChannelID: 693, ResellerID: 813},
	{Name: "Acessórias", Line: ProductLineAcessorias, ExpectedSystem: SystemAcessorias, SalesChannelID: 691},
	{
		Name:           "Acessórias + Komunic",
		Line:           ProductLineAcessorias,
		ExpectedSystem: SystemAcessoriasKomunic,
		SalesChannelID: 693,
		upgrades: map[SystemCode]SystemCode{
			SystemSittax: SystemSittaxAcessoriasKomunic,
		},
	},
}

// ContractModelByName matches trimmed names case-insensitively.
func ContractModelByName(name string) (ContractModel, bool) {
	name = strings.TrimSpace(name)

	for _, m := range contractModels {
		if strings.EqualFold(m.Name, name) {
			return m, true
		}
	}

	return ContractModel{}, false
}
