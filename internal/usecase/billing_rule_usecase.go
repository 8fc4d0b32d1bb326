package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"cobranca_service/internal/domain/entities"
	"cobranca_service/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrRuleNotFound         = errors.New("billing rule not found")
	ErrInvalidRuleID        = errors.New("invalid rule id")
	ErrInvalidTenantID      = errors.New("invalid tenant id")
	ErrInvalidRuleName      = errors.New("invalid rule name")
	ErrInvalidChannel       = errors.New("invalid notification channel")
	ErrInvalidTiming        = errors.New("invalid timing spec")
	ErrInvalidTemplate      = errors.New("invalid message template")
	ErrUnknownRequiredField = errors.New("unknown required field")
)

// CreateRuleInput carries the tenant-admin payload for a new rule.
// RequiredFields arrive as configured names and are resolved against the
// known system-field set; a name outside the set fails the whole create.
type CreateRuleInput struct {
	TenantID       string
	Name           string
	Channel        entities.NotificationChannel
	Timing         entities.Timing
	Template       string
	RequiredFields []string
}

// UpdateRuleInput is a patch: nil/zero members leave the current value.
type UpdateRuleInput struct {
	Name           *string
	Active         *bool
	Channel        *entities.NotificationChannel
	Timing         *entities.Timing
	Template       *string
	RequiredFields *[]string
}

// IBillingRuleUseCase exposes the tenant-admin rule operations. The webhook
// token is issued here and regenerated here; regeneration invalidates the
// old token immediately.

type IBillingRuleUseCase interface {
	CreateRule(ctx context.Context, in CreateRuleInput) (entities.BillingRule, error)
	UpdateRule(ctx context.Context, id string, in UpdateRuleInput) (entities.BillingRule, error)
	RegenerateToken(ctx context.Context, id string) (entities.BillingRule, error)
	GetByID(ctx context.Context, id string) (entities.BillingRule, error)
	ListByTenantID(ctx context.Context, tenantID string) ([]entities.BillingRule, error)
}

type BillingRuleUseCase struct {
	repo interfaces.IBillingRuleRepository
	now  func() time.Time
}

var _ IBillingRuleUseCase = (*BillingRuleUseCase)(nil)

func NewBillingRuleUseCase(repo interfaces.IBillingRuleRepository) *BillingRuleUseCase {
	return &BillingRuleUseCase{repo: repo, now: time.Now}
}

func (u *BillingRuleUseCase) CreateRule(ctx context.Context, in CreateRuleInput) (entities.BillingRule, error) {
	tenantID := strings.TrimSpace(in.TenantID)
	if tenantID == "" {
		return entities.BillingRule{}, ErrInvalidTenantID
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return entities.BillingRule{}, ErrInvalidRuleName
	}
	if !in.Channel.Valid() {
		return entities.BillingRule{}, ErrInvalidChannel
	}
	if !in.Timing.Valid() {
		return entities.BillingRule{}, ErrInvalidTiming
	}
	template := strings.TrimSpace(in.Template)
	if template == "" {
		return entities.BillingRule{}, ErrInvalidTemplate
	}

	fields, err := resolveRequiredFields(in.RequiredFields)
	if err != nil {
		return entities.BillingRule{}, err
	}

	now := u.now().UTC()
	rule := entities.BillingRule{
		ID:             uuid.NewString(),
		TenantID:       tenantID,
		Name:           name,
		Active:         true,
		Channel:        in.Channel,
		Token:          newWebhookToken(),
		Timing:         in.Timing,
		Template:       template,
		RequiredFields: fields,
		TemplateVars:   entities.ParseTemplateVariables(template),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	created, err := u.repo.Create(ctx, rule)
	if err != nil {
		log.Printf("[rule][usecase] create failed tenant_id=%s err=%v", tenantID, err)
		return entities.BillingRule{}, err
	}
	log.Printf("[rule][usecase] created rule_id=%s tenant_id=%s channel=%s", created.ID, tenantID, created.Channel)
	return created, nil
}

func (u *BillingRuleUseCase) UpdateRule(ctx context.Context, id string, in UpdateRuleInput) (entities.BillingRule, error) {
	rule, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.BillingRule{}, err
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return entities.BillingRule{}, ErrInvalidRuleName
		}
		rule.Name = name
	}
	if in.Active != nil {
		rule.Active = *in.Active
	}
	if in.Channel != nil {
		if !in.Channel.Valid() {
			return entities.BillingRule{}, ErrInvalidChannel
		}
		rule.Channel = *in.Channel
	}
	if in.Timing != nil {
		if !in.Timing.Valid() {
			return entities.BillingRule{}, ErrInvalidTiming
		}
		rule.Timing = *in.Timing
	}
	if in.Template != nil {
		template := strings.TrimSpace(*in.Template)
		if template == "" {
			return entities.BillingRule{}, ErrInvalidTemplate
		}
		rule.Template = template
		rule.TemplateVars = entities.ParseTemplateVariables(template)
	}
	if in.RequiredFields != nil {
		fields, err := resolveRequiredFields(*in.RequiredFields)
		if err != nil {
			return entities.BillingRule{}, err
		}
		rule.RequiredFields = fields
	}

	rule.UpdatedAt = u.now().UTC()
	updated, err := u.repo.Update(ctx, rule)
	if err != nil {
		log.Printf("[rule][usecase] update failed rule_id=%s err=%v", id, err)
		return entities.BillingRule{}, err
	}
	log.Printf("[rule][usecase] updated rule_id=%s active=%t", updated.ID, updated.Active)
	return updated, nil
}

// RegenerateToken issues a fresh webhook token. Callers still holding the
// previous token start getting token_invalido on the next request.
func (u *BillingRuleUseCase) RegenerateToken(ctx context.Context, id string) (entities.BillingRule, error) {
	rule, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.BillingRule{}, err
	}

	rule.Token = newWebhookToken()
	rule.UpdatedAt = u.now().UTC()
	updated, err := u.repo.Update(ctx, rule)
	if err != nil {
		log.Printf("[rule][usecase] token regeneration failed rule_id=%s err=%v", id, err)
		return entities.BillingRule{}, err
	}
	log.Printf("[rule][usecase] token regenerated rule_id=%s", updated.ID)
	return updated, nil
}

func (u *BillingRuleUseCase) GetByID(ctx context.Context, id string) (entities.BillingRule, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.BillingRule{}, ErrInvalidRuleID
	}

	rule, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.BillingRule{}, err
	}
	if rule.ID == "" {
		return entities.BillingRule{}, ErrRuleNotFound
	}
	return rule, nil
}

func (u *BillingRuleUseCase) ListByTenantID(ctx context.Context, tenantID string) ([]entities.BillingRule, error) {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return nil, ErrInvalidTenantID
	}
	return u.repo.ListByTenantID(ctx, tenantID)
}

func resolveRequiredFields(names []string) ([]entities.SystemField, error) {
	fields := make([]entities.SystemField, 0, len(names))
	seen := make(map[entities.SystemField]struct{}, len(names))
	for _, name := range names {
		f, ok := entities.ParseSystemField(name)
		if !ok {
			return nil, ErrUnknownRequiredField
		}
		if _, dup := seen[f]; dup {
			continue
		}
		seen[f] = struct{}{}
		fields = append(fields, f)
	}
	return fields, nil
}

// newWebhookToken builds the opaque path token external systems post to.
// Dashes are stripped so the token survives copy/paste into systems that
// mangle them.
func newWebhookToken() string {
	return strings.ReplaceAll(uuid.NewString()+uuid.NewString(), "-", "")
}
