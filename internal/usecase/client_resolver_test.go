package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polkiloo/freightorders/internal/config"
	domainErrors "github.com/polkiloo/freightorders/internal/domain/errors"
	testhelpers "github.com/polkiloo/freightorders/internal/test"
)

func TestNewClientResolverRejectsUnknownPolicy(t *testing.T) {
	_, err := NewClientResolver("sometimes", &testhelpers.ClientRepositoryStub{}, &testhelpers.SequenceIDs{})
	require.Error(t, err)
}

func TestNewClientResolverAcceptsConfiguredPolicies(t *testing.T) {
	for _, policy := range []string{config.ClientPolicySynthesize, config.ClientPolicyTrust} {
		resolver, err := NewClientResolver(ClientPolicy(policy), &testhelpers.ClientRepositoryStub{}, &testhelpers.SequenceIDs{})
		require.NoError(t, err, policy)
		assert.Equal(t, ClientPolicy(policy), resolver.Policy())
	}
}

func TestClientResolverSynthesize(t *testing.T) {
	clients := &testhelpers.ClientRepositoryStub{}
	ids := &testhelpers.SequenceIDs{IDs: []string{"6ba7b810-9dad-41d1-80b4-00c04fd430c8"}}
	resolver, err := NewClientResolver(ClientPolicySynthesize, clients, ids)
	require.NoError(t, err)
	assert.Equal(t, ClientPolicySynthesize, resolver.Policy())

	draft := validDraft()
	assert.Nil(t, resolver.Check(draft))

	id, err := resolver.Resolve(context.Background(), draft)
	require.NoError(t, err)
	assert.Equal(t, "6ba7b810-9dad-41d1-80b4-00c04fd430c8", id)

	require.Len(t, clients.Created, 1)
	created := clients.Created[0]
	assert.Equal(t, id, created.ID)
	assert.Equal(t, "client-6ba7b810", created.Name)
	assert.Equal(t, "N/A", created.ContactName)
	assert.Equal(t, "N/A", created.ContactPhone)
}

func TestClientResolverSynthesizeRejectsCallerClientID(t *testing.T) {
	clients := &testhelpers.ClientRepositoryStub{}
	resolver, err := NewClientResolver(ClientPolicySynthesize, clients, &testhelpers.SequenceIDs{})
	require.NoError(t, err)

	draft := validDraft()
	draft.ClientID = "existing"
	verr := resolver.Check(draft)
	require.NotNil(t, verr)
	assert.Equal(t, []string{FieldClientID}, verr.Invalid)
	assert.Empty(t, clients.Created)
}

func TestClientResolverSynthesizeFailure(t *testing.T) {
	cause := errors.New("connection refused")
	resolver, err := NewClientResolver(ClientPolicySynthesize, &testhelpers.ClientRepositoryStub{Err: cause}, &testhelpers.SequenceIDs{})
	require.NoError(t, err)

	_, err = resolver.Resolve(context.Background(), validDraft())
	require.Error(t, err)
	assert.ErrorIs(t, err, domainErrors.ErrClientCreationFailed)
	assert.ErrorIs(t, err, cause)

	var pe *domainErrors.PersistenceError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "create client", pe.Op)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestClientResolverTrust(t *testing.T) {
	clients := &testhelpers.ClientRepositoryStub{}
	resolver, err := NewClientResolver(ClientPolicyTrust, clients, &testhelpers.SequenceIDs{})
	require.NoError(t, err)

	draft := validDraft()
	verr := resolver.Check(draft)
	require.NotNil(t, verr)
	assert.Equal(t, []string{FieldClientID}, verr.Missing)

	draft.ClientID = " client-42 "
	assert.Nil(t, resolver.Check(draft))

	id, err := resolver.Resolve(context.Background(), draft)
	require.NoError(t, err)
	assert.Equal(t, "client-42", id)
	assert.Empty(t, clients.Created, "trust policy must not write clients")
}

func TestSyntheticClientName(t *testing.T) {
	assert.Equal(t, "client-abc", syntheticClientName("abc"))
	assert.Equal(t, "client-12345678", syntheticClientName("1234-5678-9abc"))
}
