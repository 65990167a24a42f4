package contacts

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/contactdesk/internal/common"
	"github.com/dmitrijs2005/contactdesk/internal/server/models"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(cs []models.Contact) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.ID)
	}
	return out
}

func TestMemory_TenantIsolationAndOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	now := time.Now()

	for i, tc := range []struct {
		id  string
		pbd bool
	}{{"p1", true}, {"m1", false}, {"p2", true}, {"m2", false}, {"p3", true}} {
		_, err := repo.Create(ctx, sampleContact(tc.id, tc.pbd, now.Add(time.Duration(i)*time.Second)))
		require.NoError(t, err)
	}

	pbd, err := repo.ListByTenant(ctx, true)
	require.NoError(t, err)
	if diff := cmp.Diff([]string{"p1", "p2", "p3"}, ids(pbd)); diff != "" {
		t.Errorf("pbd tenant (-want +got):\n%s", diff)
	}

	mesa, err := repo.ListByTenant(ctx, false)
	require.NoError(t, err)
	if diff := cmp.Diff([]string{"m1", "m2"}, ids(mesa)); diff != "" {
		t.Errorf("mesa tenant (-want +got):\n%s", diff)
	}
}

func TestMemory_EmptyListIsNotNil(t *testing.T) {
	got, err := NewMemoryRepository().ListByTenant(context.Background(), true)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestMemory_SetStatus(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	_, err := repo.Create(ctx, sampleContact("id-1", true, time.Now()))
	require.NoError(t, err)

	require.NoError(t, repo.SetStatus(ctx, "id-1", models.StatusContacted))
	require.NoError(t, repo.SetStatus(ctx, "id-1", models.StatusContacted))

	got, err := repo.GetByID(ctx, "id-1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusContacted, got.Status)

	require.ErrorIs(t, repo.SetStatus(ctx, "ghost", models.StatusContacted), common.ErrNotFound)
}

func TestMemory_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	_, err := repo.Create(ctx, sampleContact("id-1", true, time.Now()))
	require.NoError(t, err)
	_, err = repo.Create(ctx, sampleContact("id-2", true, time.Now()))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, "id-1"))
	require.NoError(t, repo.Delete(ctx, "id-1"), "second delete is a no-op")
	require.NoError(t, repo.Delete(ctx, "ghost"))

	_, err = repo.GetByID(ctx, "id-1")
	require.ErrorIs(t, err, common.ErrNotFound)

	list, err := repo.ListByTenant(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"id-2"}, ids(list))
}

func TestMemory_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	c := sampleContact("id-1", false, time.Now())
	_, err := repo.Create(ctx, c)
	require.NoError(t, err)

	c.Subject = "changed"
	got, err := repo.GetByID(ctx, "id-1")
	require.NoError(t, err)
	assert.Equal(t, "hi", got.Subject)
}
