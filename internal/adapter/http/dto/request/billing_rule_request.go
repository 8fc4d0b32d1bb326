package request

import (
	"cobranca_service/internal/domain/entities"
	"cobranca_service/internal/usecase"
)

type TimingRequest struct {
	Mode   string `json:"mode" binding:"required"`
	Amount int    `json:"amount" binding:"required"`
	Unit   string `json:"unit" binding:"required"`
}

func (t TimingRequest) ToTiming() entities.Timing {
	return entities.Timing{
		Mode:   entities.TimingMode(t.Mode),
		Amount: t.Amount,
		Unit:   entities.TimingUnit(t.Unit),
	}
}

// CreateRuleRequest is the tenant-admin payload for a new billing rule.
// The webhook token is issued server-side and returned in the response.
type CreateRuleRequest struct {
	Name           string        `json:"name" binding:"required"`
	Channel        string        `json:"channel" binding:"required"`
	Timing         TimingRequest `json:"timing" binding:"required"`
	Template       string        `json:"template" binding:"required"`
	RequiredFields []string      `json:"required_fields"`
}

func (r CreateRuleRequest) ToInput(tenantID string) usecase.CreateRuleInput {
	return usecase.CreateRuleInput{
		TenantID:       tenantID,
		Name:           r.Name,
		Channel:        entities.NotificationChannel(r.Channel),
		Timing:         r.Timing.ToTiming(),
		Template:       r.Template,
		RequiredFields: r.RequiredFields,
	}
}

// UpdateRuleRequest is a patch; absent members keep the stored value.
type UpdateRuleRequest struct {
	Name           *string        `json:"name,omitempty"`
	Active         *bool          `json:"active,omitempty"`
	Channel        *string        `json:"channel,omitempty"`
	Timing         *TimingRequest `json:"timing,omitempty"`
	Template       *string        `json:"template,omitempty"`
	RequiredFields *[]string      `json:"required_fields,omitempty"`
}

func (r UpdateRuleRequest) ToInput() usecase.UpdateRuleInput {
	in := usecase.UpdateRuleInput{
		Name:           r.Name,
		Active:         r.Active,
		Template:       r.Template,
		RequiredFields: r.RequiredFields,
	}
	if r.Channel != nil {
		ch := entities.NotificationChannel(*r.Channel)
		in.Channel = &ch
	}
	if r.Timing != nil {
		timing := r.Timing.ToTiming()
		in.Timing = &timing
	}
	return in
}
