package response

import (
	"time"

	"cobranca_service/internal/domain/entities"
)

type TimingResponse struct {
	Mode   string `json:"mode"`
	Amount int    `json:"amount"`
	Unit   string `json:"unit"`
}

// BillingRuleResponse is the admin view of a rule. It includes the webhook
// token: the admin surface is where tenants copy it from.
type BillingRuleResponse struct {
	ID             string         `json:"id"`
	TenantID       string         `json:"tenant_id"`
	Name           string         `json:"name"`
	Active         bool           `json:"active"`
	Channel        string         `json:"channel"`
	Token          string         `json:"token"`
	Timing         TimingResponse `json:"timing"`
	Template       string         `json:"template"`
	RequiredFields []string       `json:"required_fields"`
	TemplateVars   []string       `json:"template_vars"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

func FromBillingRule(r entities.BillingRule) BillingRuleResponse {
	fields := make([]string, 0, len(r.RequiredFields))
	for _, f := range r.RequiredFields {
		fields = append(fields, string(f))
	}
	return BillingRuleResponse{
		ID:       r.ID,
		TenantID: r.TenantID,
		Name:     r.Name,
		Active:   r.Active,
		Channel:  string(r.Channel),
		Token:    r.Token,
		Timing: TimingResponse{
			Mode:   string(r.Timing.Mode),
			Amount: r.Timing.Amount,
			Unit:   string(r.Timing.Unit),
		},
		Template:       r.Template,
		RequiredFields: fields,
		TemplateVars:   r.TemplateVars,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}
