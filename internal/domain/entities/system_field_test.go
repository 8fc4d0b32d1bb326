package entities

import "testing"

func TestParseSystemField(t *testing.T) {
	cases := []struct {
		name string
		want SystemField
		ok   bool
	}{
		{"email", SystemFieldEmail, true},
		{"E-Mail", SystemFieldEmail, true},
		{"telefone", SystemFieldTelefone, true},
		{"celular", SystemFieldTelefone, true},
		{"phone", SystemFieldTelefone, true},
		{"nome_cliente", SystemFieldNomeCliente, true},
		{"NomeCliente", SystemFieldNomeCliente, true},
		{"nome", SystemFieldNomeCliente, true},
		{"valor_cobranca", SystemFieldValorCobranca, true},
		{"valor", SystemFieldValorCobranca, true},
		{"  email  ", SystemFieldEmail, true},
		{"cpf", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParseSystemField(tc.name)
			if ok != tc.ok || got != tc.want {
				t.Fatalf("ParseSystemField(%q) = (%q, %t), want (%q, %t)", tc.name, got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestSystemField_ValidateFormat(t *testing.T) {
	if !SystemFieldEmail.ValidateFormat("cliente@example.com") {
		t.Fatal("valid email rejected")
	}
	if SystemFieldEmail.ValidateFormat("cliente.example.com") {
		t.Fatal("email without @ accepted")
	}
	if !SystemFieldTelefone.ValidateFormat("+5511999990000") {
		t.Fatal("valid phone rejected")
	}
	if SystemFieldTelefone.ValidateFormat("11999990000") {
		t.Fatal("phone without + accepted")
	}
	if !SystemFieldNomeCliente.ValidateFormat("qualquer nome") {
		t.Fatal("free-form fields have no format rule")
	}
}
