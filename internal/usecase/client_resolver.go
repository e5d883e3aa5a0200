package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/polkiloo/freightorders/internal/config"
	domainErrors "github.com/polkiloo/freightorders/internal/domain/errors"
	"github.com/polkiloo/freightorders/internal/domain/model"
	"github.com/polkiloo/freightorders/internal/domain/repository"
	"github.com/polkiloo/freightorders/internal/pkg/idgen"
)

// ClientPolicy decides where the client of a new order comes from.
type ClientPolicy string

const (
	// ClientPolicySynthesize provisions a fresh client for every order and refuses caller ids.
	ClientPolicySynthesize ClientPolicy = config.ClientPolicySynthesize
	// ClientPolicyTrust requires the caller to name an existing client.
	ClientPolicyTrust ClientPolicy = config.ClientPolicyTrust
)

// Placeholder contact value stored on synthesized clients.
const clientContactPlaceholder = "N/A"

// ClientResolver picks the client_id bound to a new order.
type ClientResolver struct {
	policy  ClientPolicy
	clients repository.ClientRepository
	ids     idgen.Generator
}

// NewClientResolver constructs ClientResolver.
func NewClientResolver(policy ClientPolicy, clients repository.ClientRepository, ids idgen.Generator) (*ClientResolver, error) {
	switch policy {
	case ClientPolicySynthesize, ClientPolicyTrust:
	default:
		return nil, fmt.Errorf("unsupported client policy %q", policy)
	}
	return &ClientResolver{policy: policy, clients: clients, ids: ids}, nil
}

// Policy returns active provisioning policy.
func (r *ClientResolver) Policy() ClientPolicy {
	return r.policy
}

// Check verifies that draft agrees with the policy. It never touches the store.
func (r *ClientResolver) Check(draft model.OrderDraft) *domainErrors.ValidationError {
	supplied := strings.TrimSpace(draft.ClientID) != ""
	switch r.policy {
	case ClientPolicyTrust:
		if !supplied {
			return domainErrors.NewMissingFieldsError(FieldClientID)
		}
	case ClientPolicySynthesize:
		if supplied {
			return domainErrors.NewInvalidFieldsError(FieldClientID)
		}
	}
	return nil
}

// Resolve returns client id for draft, writing a synthesized client when the policy asks for it.
// Call Check first.
func (r *ClientResolver) Resolve(ctx context.Context, draft model.OrderDraft) (string, error) {
	if r.policy == ClientPolicyTrust {
		return strings.TrimSpace(draft.ClientID), nil
	}

	id := r.ids.NewID()
	client := &model.Client{
		ID:           id,
		Name:         syntheticClientName(id),
		ContactName:  clientContactPlaceholder,
		ContactPhone: clientContactPlaceholder,
	}
	created, err := r.clients.Create(ctx, client)
	if err != nil {
		return "", domainErrors.NewPersistenceError("create client", fmt.Errorf("%w: %w", domainErrors.ErrClientCreationFailed, err))
	}
	return created.ID, nil
}

func syntheticClientName(id string) string {
	short := strings.ReplaceAll(id, "-", "")
	if len(short) > 8 {
		short = short[:8]
	}
	return "client-" + short
}
