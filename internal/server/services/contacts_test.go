package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/contactdesk/internal/common"
	"github.com/dmitrijs2005/contactdesk/internal/logging"
	"github.com/dmitrijs2005/contactdesk/internal/server/models"
	"github.com/dmitrijs2005/contactdesk/internal/server/repositories/contacts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmit_Defaults(t *testing.T) {
	var stored *models.Contact
	repo := &fakeContactsRepo{createFn: func(_ context.Context, c *models.Contact) (*models.Contact, error) {
		stored = c
		return c, nil
	}}
	svc := NewContactService(repo, logging.Nop{})
	fixed := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	got, err := svc.Submit(context.Background(), "", "", "", true)
	require.NoError(t, err)
	require.Same(t, stored, got)

	assert.NotEmpty(t, got.ID)
	assert.Equal(t, models.StatusNew, got.Status)
	assert.Equal(t, "", got.Email)
	assert.Equal(t, "", got.Subject)
	assert.Equal(t, "", got.Message)
	assert.True(t, got.PBD)
	assert.Equal(t, fixed, got.CreatedAt)
}

func TestSubmit_StoreFailureIsPersistenceError(t *testing.T) {
	for _, repoErr := range []error{errors.New("disk full"), common.ErrPersistence, context.DeadlineExceeded} {
		repo := &fakeContactsRepo{createFn: func(context.Context, *models.Contact) (*models.Contact, error) {
			return nil, repoErr
		}}
		_, err := NewContactService(repo, logging.Nop{}).Submit(context.Background(), "", "hi", "", false)
		require.ErrorIs(t, err, common.ErrPersistence, "cause: %v", repoErr)
	}
}

func TestListByTenant(t *testing.T) {
	t.Run("passes tenant through", func(t *testing.T) {
		var gotPBD bool
		repo := &fakeContactsRepo{listFn: func(_ context.Context, pbd bool) ([]models.Contact, error) {
			gotPBD = pbd
			return []models.Contact{{ID: "1", PBD: pbd}}, nil
		}}
		list, err := NewContactService(repo, logging.Nop{}).ListByTenant(context.Background(), true)
		require.NoError(t, err)
		assert.True(t, gotPBD)
		assert.Len(t, list, 1)
	})

	t.Run("nil becomes empty", func(t *testing.T) {
		repo := &fakeContactsRepo{listFn: func(context.Context, bool) ([]models.Contact, error) { return nil, nil }}
		list, err := NewContactService(repo, logging.Nop{}).ListByTenant(context.Background(), false)
		require.NoError(t, err)
		assert.NotNil(t, list)
	})

	t.Run("error", func(t *testing.T) {
		repo := &fakeContactsRepo{listFn: func(context.Context, bool) ([]models.Contact, error) {
			return nil, common.ErrPersistence
		}}
		_, err := NewContactService(repo, logging.Nop{}).ListByTenant(context.Background(), false)
		require.ErrorIs(t, err, common.ErrPersistence)
	})
}

func TestMarkContacted(t *testing.T) {
	t.Run("empty id never reaches the store", func(t *testing.T) {
		repo := &fakeContactsRepo{setStatusFn: func(context.Context, string, models.Status) error {
			t.Fatal("store must not be called")
			return nil
		}}
		err := NewContactService(repo, logging.Nop{}).MarkContacted(context.Background(), "")
		require.ErrorIs(t, err, common.ErrValidation)
	})

	t.Run("sets CONTACTED", func(t *testing.T) {
		var got models.Status
		repo := &fakeContactsRepo{setStatusFn: func(_ context.Context, id string, s models.Status) error {
			got = s
			return nil
		}}
		require.NoError(t, NewContactService(repo, logging.Nop{}).MarkContacted(context.Background(), "id-1"))
		assert.Equal(t, models.StatusContacted, got)
	})

	t.Run("unknown id", func(t *testing.T) {
		repo := &fakeContactsRepo{setStatusFn: func(context.Context, string, models.Status) error {
			return common.ErrNotFound
		}}
		err := NewContactService(repo, logging.Nop{}).MarkContacted(context.Background(), "ghost")
		require.ErrorIs(t, err, common.ErrNotFound)
	})
}

func TestRemove(t *testing.T) {
	t.Run("empty id", func(t *testing.T) {
		err := NewContactService(&fakeContactsRepo{}, logging.Nop{}).Remove(context.Background(), " ")
		require.ErrorIs(t, err, common.ErrValidation)
	})

	t.Run("delegates", func(t *testing.T) {
		var gotID string
		repo := &fakeContactsRepo{deleteFn: func(_ context.Context, id string) error {
			gotID = id
			return nil
		}}
		require.NoError(t, NewContactService(repo, logging.Nop{}).Remove(context.Background(), "id-1"))
		assert.Equal(t, "id-1", gotID)
	})
}

func TestContactService_LifecycleOnMemoryStore(t *testing.T) {
	ctx := context.Background()
	svc := NewContactService(contacts.NewMemoryRepository(), logging.Nop{})

	pbdContact, err := svc.Submit(ctx, "", "hi", "", true)
	require.NoError(t, err)
	_, err = svc.Submit(ctx, "m@x.com", "", "", false)
	require.NoError(t, err)

	pbdList, err := svc.ListByTenant(ctx, true)
	require.NoError(t, err)
	require.Len(t, pbdList, 1)
	assert.Equal(t, pbdContact.ID, pbdList[0].ID)

	mesaList, err := svc.ListByTenant(ctx, false)
	require.NoError(t, err)
	require.Len(t, mesaList, 1)
	assert.False(t, mesaList[0].PBD)

	require.NoError(t, svc.MarkContacted(ctx, pbdContact.ID))
	require.NoError(t, svc.MarkContacted(ctx, pbdContact.ID))
	pbdList, _ = svc.ListByTenant(ctx, true)
	assert.Equal(t, models.StatusContacted, pbdList[0].Status)

	require.ErrorIs(t, svc.MarkContacted(ctx, "unknown"), common.ErrNotFound)
	require.NoError(t, svc.Remove(ctx, "unknown"))

	require.NoError(t, svc.Remove(ctx, pbdContact.ID))
	pbdList, _ = svc.ListByTenant(ctx, true)
	assert.Empty(t, pbdList)
}
