package entities

import "strings"

// SystemField is the closed set of row fields the platform knows how to
// extract and validate. Rules declare which of them are mandatory.
//
// Keeping this an enum (instead of free-form configured names matched by
// string comparison) means a mistyped field name fails at rule creation,
// not silently at ingestion.

type SystemField string

const (
	SystemFieldEmail         SystemField = "email"
	SystemFieldTelefone      SystemField = "telefone"
	SystemFieldNomeCliente   SystemField = "nome_cliente"
	SystemFieldValorCobranca SystemField = "valor_cobranca"
)

// DueDateVariable is the template variable filled in by the pipeline from
// the row's due date; callers never supply it themselves.
const DueDateVariable = "data_vencimento"

// ParseSystemField resolves a configured or inbound field name to the
// canonical enum value. Matching is case-insensitive and tolerates the
// separator variants seen in older rule configurations.
func ParseSystemField(name string) (SystemField, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.ReplaceAll(key, "-", "_")
	switch key {
	case "email", "e_mail":
		return SystemFieldEmail, true
	case "telefone", "phone", "celular":
		return SystemFieldTelefone, true
	case "nome_cliente", "nomecliente", "nome":
		return SystemFieldNomeCliente, true
	case "valor_cobranca", "valorcobranca", "valor":
		return SystemFieldValorCobranca, true
	}
	return "", false
}

// ValidateFormat applies the field-specific format rule, if any.
// Empty means the format is acceptable.
func (f SystemField) ValidateFormat(value string) bool {
	switch f {
	case SystemFieldEmail:
		return strings.Contains(value, "@")
	case SystemFieldTelefone:
		return strings.HasPrefix(value, "+")
	}
	return true
}
