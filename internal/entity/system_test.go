package entity_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/RafaelZelak/AberturaDeBaseBitrix/internal/entity"
)

func TestSystemCode(t *testing.T) {
	t.Parallel()

	codes := map[entity.SystemCode]string{
		"233": "Acessórias",
		"237": "Sittax",
		"235": "Acessórias + KOMUNIC",
		"655": "Sittax / Acessórias",
		"699": "Sittax / Acessórias + KOMUNIC",
		"701": "Best Doctor",
	}

	for code, label := range codes {
		require.True(t, code.Known())
		require.Equal(t, label, code.Label())

		back, ok := entity.SystemByLabel(label)
		require.True(t, ok)
		require.Equal(t, code, back)
	}

	require.Equal(t, "Desconhecido", entity.SystemUnknown.Label())
	require.Equal(t, "Desconhecido", entity.SystemCode("999").Label())
	require.False(t, entity.SystemCode("999").Known())

	_, ok := entity.SystemByLabel("Desconhecido")
	require.False(t, ok)
}

func TestProductLine_Upgrade(t *testing.T) {
	t.Parallel()

	sittax, ok := entity.ProductLineByName(entity.ProductLineSittax)
	require.True(t, ok)

	acessorias, ok := entity.ProductLineByName(entity.ProductLineAcessorias)
	require.True(t, ok)

	tests := []struct {
		line    entity.ProductLine
		current entity.SystemCode
		target  entity.SystemCode
		ok      bool
	}{
		{line: sittax, current: entity.SystemAcessorias, target: entity.SystemSittaxAcessorias, ok: true},
		{line: sittax, current: entity.SystemAcessoriasKomunic, target: entity.SystemSittaxAcessoriasKomunic, ok: true},
		{line: sittax, current: entity.SystemSittaxAcessorias},
		{line: sittax, current: entity.SystemBestDoctor},
		{line: sittax, current: entity.SystemUnknown},
		{line: acessorias, current: entity.SystemSittax, target: entity.SystemSittaxAcessorias, ok: true},
		{line: acessorias, current: entity.SystemAcessoriasKomunic},
		{line: acessorias, current: entity.SystemSittaxAcessorias},
	}

	for _, tt := range tests {
		target, ok := tt.line.Upgrade(tt.current)
		require.Equal(t, tt.ok, ok, "%s %s", tt.line.Name, tt.current)
		require.Equal(t, tt.target, target, "%s %s", tt.line.Name, tt.current)
	}

	require.Len(t, entity.ProductLines(), 2)
	require.NotEqual(t, sittax.EntityTypeID, acessorias.EntityTypeID)
}

func TestContractModel_Upgrade(t *testing.T) {
	t.Parallel()

	tests := []struct {
		model   string
		current entity.SystemCode
		target  entity.SystemCode
		ok      bool
	}{
		{model: "Acessórias", current: entity.SystemSittax, target: entity.SystemSittaxAcessorias, ok: true},
		{model: "Acessórias + Komunic", current: entity.SystemSittax, target: entity.SystemSittaxAcessoriasKomunic, ok: true},
		{model: "Acessórias + Komunic", current: entity.SystemSittaxAcessoriasKomunic},
		{model: "Sittax - Simples Nacional", current: entity.SystemAcessorias, target: entity.SystemSittaxAcessorias, ok: true},
		{model: "Openix - Sittax SN", current: entity.SystemAcessoriasKomunic, target: entity.SystemSittaxAcessoriasKomunic, ok: true},
		{model: "Openix - Sittax SN", current: entity.SystemBestDoctor},
	}

	for _, tt := range tests {
		m, ok := entity.ContractModelByName(tt.model)
		require.True(t, ok, tt.model)

		target, ok := m.Upgrade(tt.current)
		require.Equal(t, tt.ok, ok, "%s %s", tt.model, tt.current)
		require.Equal(t, tt.target, target, "%s %s", tt.model, tt.current)
	}
}
