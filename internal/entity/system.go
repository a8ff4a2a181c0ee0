package entity

// SystemCode is the CRM list value stored in the company product-system field.
type SystemCode string

const (
	SystemAcessorias              SystemCode = "233"
	SystemAcessoriasKomunic       SystemCode = "235"
	SystemSittax                  SystemCode = "237"
	SystemSittaxAcessorias        SystemCode = "655"
	SystemSittaxAcessoriasKomunic SystemCode = "699"
	SystemBestDoctor              SystemCode = "701"

	SystemUnknown SystemCode = ""
)

const unknownSystemLabel = "Desconhecido"

var systemLabels = map[SystemCode]string{
	SystemAcessorias:              "Acessórias",
	SystemSittax:                  "Sittax",
	SystemAcessoriasKomunic:       "Acessórias + KOMUNIC",
	SystemSittaxAcessorias:        "Sittax / Acessórias",
	SystemSittaxAcessoriasKomunic: "Sittax / Acessórias + KOMUNIC",
	SystemBestDoctor:              "Best Doctor",
}

var systemsByLabel = func() map[string]SystemCode {
	m := make(map[string]SystemCode, len(systemLabels))
	for code, label := range systemLabels {
		m[label] = code
	}

	return m
}()

// Label returns the human readable system name, "Desconhecido" for codes outside the closed set.
func (c SystemCode) Label() string {
	if label, ok := systemLabels[c]; ok {
		return label
	}

	return unknownSystemLabel
}

func (c SystemCode) Known() bool {
	_, ok := systemLabels[c]
	return ok
}

func (c SystemCode) String() string {
	return string(c)
}

func SystemByLabel(label string) (SystemCode, bool) {
	code, ok := systemsByLabel[label]
	return code, ok
}
