package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xyz-asif/voluntra/internal/store"
	apperrors "github.com/xyz-asif/voluntra/pkg/errors"
)

func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	st, err := store.Open(t.TempDir())
	require.NoError(t, err)
	return NewRepository(st)
}

func seedProfile(t *testing.T, repo *Repository, profile UserProfile) UserProfile {
	t.Helper()
	saved, err := repo.Upsert(context.Background(), profile)
	require.NoError(t, err)
	return *saved
}

func TestRepository_FindByID(t *testing.T) {
	repo := newTestRepo(t)
	seedProfile(t, repo, UserProfile{ID: "u1", Role: RoleVolunteer, DisplayName: "Ada"})

	got, err := repo.FindByID(context.Background(), "u1")
	require.NoError(t, err)
	require.Equal(t, "Ada", got.DisplayName)

	_, err = repo.FindByID(context.Background(), "nope")
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestRepository_UpsertRequiresID(t *testing.T) {
	repo := newTestRepo(t)
	_, err := repo.Upsert(context.Background(), UserProfile{DisplayName: "anon"})
	require.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestRepository_UpsertStripsSelfFromBlockList(t *testing.T) {
	repo := newTestRepo(t)
	saved := seedProfile(t, repo, UserProfile{
		ID:             "u1",
		Role:           RoleVolunteer,
		BlockedUserIDs: []string{"u2", "u1", "u3"},
	})
	require.Equal(t, []string{"u2", "u3"}, saved.BlockedUserIDs)
}

func TestRepository_VerifyAdmin(t *testing.T) {
	repo := newTestRepo(t)
	seedProfile(t, repo, UserProfile{ID: "admin", Role: RoleAdmin})
	seedProfile(t, repo, UserProfile{ID: "vol", Role: RoleVolunteer})

	require.True(t, repo.VerifyAdmin(context.Background(), "admin"))
	require.False(t, repo.VerifyAdmin(context.Background(), "vol"))
	require.False(t, repo.VerifyAdmin(context.Background(), "ghost"))
}

func TestRepository_BlockUser(t *testing.T) {
	repo := newTestRepo(t)
	seedProfile(t, repo, UserProfile{ID: "u1", Role: RoleVolunteer})
	seedProfile(t, repo, UserProfile{ID: "u2", Role: RoleVolunteer})

	blocker, err := repo.BlockUser(context.Background(), "u1", "u2")
	require.NoError(t, err)
	require.Equal(t, []string{"u2"}, blocker.BlockedUserIDs)

	// Blocking again is a no-op, not an error.
	blocker, err = repo.BlockUser(context.Background(), "u1", "u2")
	require.NoError(t, err)
	require.Equal(t, []string{"u2"}, blocker.BlockedUserIDs)
}

func TestRepository_BlockUser_SelfBlockRejected(t *testing.T) {
	repo := newTestRepo(t)
	seedProfile(t, repo, UserProfile{ID: "u1", Role: RoleVolunteer})

	_, err := repo.BlockUser(context.Background(), "u1", "u1")
	require.ErrorIs(t, err, apperrors.ErrInvalidOperation)
}

func TestRepository_BlockUser_UnknownUsers(t *testing.T) {
	repo := newTestRepo(t)
	seedProfile(t, repo, UserProfile{ID: "u1", Role: RoleVolunteer})

	_, err := repo.BlockUser(context.Background(), "u1", "ghost")
	require.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = repo.BlockUser(context.Background(), "ghost", "u1")
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestRepository_UnblockUser(t *testing.T) {
	repo := newTestRepo(t)
	seedProfile(t, repo, UserProfile{ID: "u1", Role: RoleVolunteer, BlockedUserIDs: []string{"u2"}})
	seedProfile(t, repo, UserProfile{ID: "u2", Role: RoleVolunteer})

	blocker, err := repo.UnblockUser(context.Background(), "u1", "u2")
	require.NoError(t, err)
	require.Empty(t, blocker.BlockedUserIDs)

	// Unblocking a user who is not blocked reports not found.
	_, err = repo.UnblockUser(context.Background(), "u1", "u2")
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestRepository_ListPublicProfiles_ExcludesRequesterAndBlocks(t *testing.T) {
	repo := newTestRepo(t)
	seedProfile(t, repo, UserProfile{ID: "me", Role: RoleVolunteer, DisplayName: "Me", BlockedUserIDs: []string{"hidden"}})
	seedProfile(t, repo, UserProfile{ID: "hidden", Role: RoleVolunteer, DisplayName: "Hidden"})
	seedProfile(t, repo, UserProfile{ID: "hater", Role: RoleVolunteer, DisplayName: "Hater", BlockedUserIDs: []string{"me"}})
	seedProfile(t, repo, UserProfile{ID: "friend", Role: RoleVolunteer, DisplayName: "Friend"})

	got, err := repo.ListPublicProfiles(context.Background(), ListFilters{}, "me")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "friend", got[0].ID)
}

func TestRepository_ListPublicProfiles_Filters(t *testing.T) {
	repo := newTestRepo(t)
	seedProfile(t, repo, UserProfile{ID: "u1", Role: RoleVolunteer, DisplayName: "Beth", Skills: []string{"First Aid"}})
	seedProfile(t, repo, UserProfile{ID: "u2", Role: RoleOrganization, DisplayName: "Acme Shelter", Location: "Porto"})
	seedProfile(t, repo, UserProfile{ID: "u3", Role: RoleVolunteer, DisplayName: "Carl", Bio: "first responder"})

	got, err := repo.ListPublicProfiles(context.Background(), ListFilters{Role: RoleOrganization}, "")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "u2", got[0].ID)

	// Keyword matches across display name, bio, location, and skills.
	got, err = repo.ListPublicProfiles(context.Background(), ListFilters{Keyword: "first"}, "")
	require.NoError(t, err)
	require.Len(t, got, 2)
}

func TestRepository_ListPublicProfiles_Sorting(t *testing.T) {
	repo := newTestRepo(t)
	seedProfile(t, repo, UserProfile{ID: "u1", Role: RoleVolunteer, DisplayName: "zoe"})
	seedProfile(t, repo, UserProfile{ID: "u2", Role: RoleVolunteer, DisplayName: "Alan"})
	seedProfile(t, repo, UserProfile{ID: "u3", Role: RoleVolunteer, DisplayName: "mira"})

	got, err := repo.ListPublicProfiles(context.Background(), ListFilters{}, "")
	require.NoError(t, err)
	require.Equal(t, []string{"u2", "u3", "u1"}, []string{got[0].ID, got[1].ID, got[2].ID})

	got, err = repo.ListPublicProfiles(context.Background(), ListFilters{SortOrder: "desc"}, "")
	require.NoError(t, err)
	require.Equal(t, "u1", got[0].ID)
}

func TestUserProfile_ToPublicProfileOmitsEmail(t *testing.T) {
	profile := UserProfile{ID: "u1", Email: "a@example.com", DisplayName: "Ada"}
	public := profile.ToPublicProfile()
	require.NotContains(t, public, "email")
	require.Equal(t, "Ada", public["displayName"])
}
