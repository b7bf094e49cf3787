package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/infrastructure/persistence/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = gdb.AutoMigrate(
		&models.TicketModel{},
		&models.TicketParticipantModel{},
		&models.TicketModeratorModel{},
	)
	require.NoError(t, err)

	return gdb
}

func createTicket(t *testing.T, title string, ownerID, categoryID uint) *ticket.Ticket {
	t.Helper()
	tk, err := ticket.NewTicket(title, "Test description", "Room 101", ownerID, categoryID)
	require.NoError(t, err)
	return tk
}

func TestTicketRepository_Save(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewTicketRepository(gdb)
	ctx := context.Background()

	t.Run("save new ticket successfully", func(t *testing.T) {
		tk := createTicket(t, "Broken projector", 1, 2)

		err := repo.Save(ctx, tk)
		assert.NoError(t, err)
		assert.NotZero(t, tk.ID())
	})

	t.Run("save ticket persists participants", func(t *testing.T) {
		tk := createTicket(t, "Flickering lights", 1, 2)
		require.NoError(t, tk.AddParticipant(3))
		require.NoError(t, tk.AddParticipant(4))

		err := repo.Save(ctx, tk)
		require.NoError(t, err)

		found, err := repo.GetByID(ctx, tk.ID())
		require.NoError(t, err)
		assert.ElementsMatch(t, []uint{3, 4}, found.ParticipantIDs())
	})
}

func TestTicketRepository_GetByID(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewTicketRepository(gdb)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		tk := createTicket(t, "Broken projector", 1, 2)
		require.NoError(t, repo.Save(ctx, tk))

		found, err := repo.GetByID(ctx, tk.ID())
		require.NoError(t, err)
		assert.Equal(t, tk.Title(), found.Title())
		assert.Equal(t, vo.StatusUnassigned, found.Status())
		assert.Equal(t, uint(1), found.OwnerID())
	})

	t.Run("not found", func(t *testing.T) {
		_, err := repo.GetByID(ctx, 9999)
		assert.Error(t, err)
	})
}

func TestTicketRepository_Update(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewTicketRepository(gdb)
	ctx := context.Background()

	tk := createTicket(t, "Broken projector", 1, 2)
	require.NoError(t, repo.Save(ctx, tk))

	t.Run("updates scalar fields", func(t *testing.T) {
		require.NoError(t, tk.UpdateInfo("Dead projector", "Room 204", 2))

		err := repo.Update(ctx, tk)
		require.NoError(t, err)

		found, err := repo.GetByID(ctx, tk.ID())
		require.NoError(t, err)
		assert.Equal(t, "Dead projector", found.Title())
		assert.Equal(t, "Room 204", found.Location())
	})

	t.Run("moderator addition moves status to assigned", func(t *testing.T) {
		require.NoError(t, tk.AddModerator(5))

		err := repo.Update(ctx, tk)
		require.NoError(t, err)

		found, err := repo.GetByID(ctx, tk.ID())
		require.NoError(t, err)
		assert.ElementsMatch(t, []uint{5}, found.ModeratorIDs())
		assert.Equal(t, vo.StatusAssigned, found.Status())
	})

	t.Run("membership removal prunes join rows", func(t *testing.T) {
		require.NoError(t, tk.AddParticipant(7))
		require.NoError(t, repo.Update(ctx, tk))

		tk.RemoveParticipant(7)
		require.NoError(t, repo.Update(ctx, tk))

		found, err := repo.GetByID(ctx, tk.ID())
		require.NoError(t, err)
		assert.NotContains(t, found.ParticipantIDs(), uint(7))
	})
}

func TestTicketRepository_Delete(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewTicketRepository(gdb)
	ctx := context.Background()

	t.Run("deletes ticket and join rows", func(t *testing.T) {
		tk := createTicket(t, "Broken projector", 1, 2)
		require.NoError(t, tk.AddParticipant(3))
		require.NoError(t, repo.Save(ctx, tk))

		err := repo.Delete(ctx, tk.ID())
		require.NoError(t, err)

		_, err = repo.GetByID(ctx, tk.ID())
		assert.Error(t, err)

		var count int64
		require.NoError(t, gdb.Model(&models.TicketParticipantModel{}).
			Where("ticket_id = ?", tk.ID()).Count(&count).Error)
		assert.Zero(t, count)
	})

	t.Run("delete missing ticket returns error", func(t *testing.T) {
		err := repo.Delete(ctx, 9999)
		assert.Error(t, err)
	})
}

func TestTicketRepository_List(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewTicketRepository(gdb)
	ctx := context.Background()

	owned := createTicket(t, "Owned ticket", 1, 2)
	require.NoError(t, repo.Save(ctx, owned))

	other := createTicket(t, "Other ticket", 2, 2)
	require.NoError(t, other.AddParticipant(1))
	require.NoError(t, repo.Save(ctx, other))

	unrelated := createTicket(t, "Unrelated ticket", 3, 4)
	require.NoError(t, repo.Save(ctx, unrelated))

	hidden := createTicket(t, "Hidden ticket", 1, 2)
	require.NoError(t, repo.Save(ctx, hidden))
	hidden.Hide()
	require.NoError(t, repo.Update(ctx, hidden))

	t.Run("scope own", func(t *testing.T) {
		tickets, total, err := repo.List(ctx, ticket.TicketFilter{
			Scope:  ticket.ScopeOwn,
			UserID: 1,
			Page:   1, PageSize: 20,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, tickets, 1)
		assert.Equal(t, "Owned ticket", tickets[0].Title())
	})

	t.Run("scope dashboard includes participating", func(t *testing.T) {
		_, total, err := repo.List(ctx, ticket.TicketFilter{
			Scope:  ticket.ScopeDashboard,
			UserID: 1,
			Page:   1, PageSize: 20,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
	})

	t.Run("scope all with hidden included", func(t *testing.T) {
		_, total, err := repo.List(ctx, ticket.TicketFilter{
			Scope:         ticket.ScopeAll,
			IncludeHidden: true,
			Page:          1, PageSize: 20,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(4), total)
	})

	t.Run("hidden excluded by default", func(t *testing.T) {
		_, total, err := repo.List(ctx, ticket.TicketFilter{
			Scope: ticket.ScopeAll,
			Page:  1, PageSize: 20,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
	})

	t.Run("category filter", func(t *testing.T) {
		catID := uint(4)
		tickets, total, err := repo.List(ctx, ticket.TicketFilter{
			Scope:      ticket.ScopeAll,
			CategoryID: &catID,
			Page:       1, PageSize: 20,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, tickets, 1)
		assert.Equal(t, "Unrelated ticket", tickets[0].Title())
	})

	t.Run("sort whitelist falls back on unknown field", func(t *testing.T) {
		_, _, err := repo.List(ctx, ticket.TicketFilter{
			Scope:  ticket.ScopeAll,
			SortBy: "1; DROP TABLE tickets",
			Page:   1, PageSize: 20,
		})
		assert.NoError(t, err)
	})
}

func TestTicketRepository_ReassignOwned(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewTicketRepository(gdb)
	ctx := context.Background()

	tk := createTicket(t, "Orphaned ticket", 9, 2)
	require.NoError(t, tk.AddParticipant(1))
	require.NoError(t, repo.Save(ctx, tk))

	err := repo.ReassignOwned(ctx, 9, 1)
	require.NoError(t, err)

	found, err := repo.GetByID(ctx, tk.ID())
	require.NoError(t, err)
	assert.Equal(t, uint(1), found.OwnerID())
	// The new owner must not remain a participant of its own ticket.
	assert.NotContains(t, found.ParticipantIDs(), uint(1))
}

func TestTicketRepository_CountByCategory(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewTicketRepository(gdb)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, createTicket(t, "First", 1, 2)))
	require.NoError(t, repo.Save(ctx, createTicket(t, "Second", 1, 2)))
	require.NoError(t, repo.Save(ctx, createTicket(t, "Third", 1, 5)))

	count, err := repo.CountByCategory(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	count, err = repo.CountByCategory(ctx, 8)
	require.NoError(t, err)
	assert.Zero(t, count)
}
