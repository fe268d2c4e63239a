package repo

import (
	"os"
	"sync"
	"testing"

	"hazel-brief-backend/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// The assignment guarantee leans on the database's row locking, so these
// tests need a real Postgres. Set TEST_DB_URL to run them.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DB_URL")
	if dsn == "" {
		t.Skip("TEST_DB_URL not set; skipping database tests")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Brief{}))
	return db
}

func seedBrief(t *testing.T, repo BriefRepoInterface) uuid.UUID {
	t.Helper()
	id, err := repo.CreateBrief(&models.Brief{
		Summary:             "Test brief",
		CoreDesignDirection: datatypes.NewJSONSlice([]string{"minimal"}),
		ClosingToCustomer:   "Thanks!",
	})
	require.NoError(t, err)
	return id
}

func TestCreateBriefOpensInPool(t *testing.T) {
	repo := NewBriefRepository(testDB(t))

	id := seedBrief(t, repo)

	brief, err := repo.GetBriefByID(id)
	require.NoError(t, err)
	assert.Equal(t, models.BriefStatusOpen, brief.Status)
	assert.Nil(t, brief.DesignerID)
	assert.Nil(t, brief.AssignedAt)

	open, err := repo.GetBriefsByStatus(models.BriefStatusOpen)
	require.NoError(t, err)
	found := false
	for _, b := range open {
		if b.UUID == id {
			found = true
		}
	}
	assert.True(t, found, "created brief should be in the open pool")
}

func TestAcceptBrief(t *testing.T) {
	repo := NewBriefRepository(testDB(t))
	id := seedBrief(t, repo)
	designer := uuid.New()

	brief, err := repo.AcceptBrief(id, designer)
	require.NoError(t, err)
	assert.Equal(t, models.BriefStatusAssigned, brief.Status)
	require.NotNil(t, brief.DesignerID)
	assert.Equal(t, designer, *brief.DesignerID)
	assert.NotNil(t, brief.AssignedAt)
}

func TestAcceptBriefNotFound(t *testing.T) {
	repo := NewBriefRepository(testDB(t))

	_, err := repo.AcceptBrief(uuid.New(), uuid.New())
	assert.ErrorIs(t, err, ErrBriefNotFound)
}

func TestAcceptBriefAlreadyAssigned(t *testing.T) {
	repo := NewBriefRepository(testDB(t))
	id := seedBrief(t, repo)
	winner := uuid.New()

	_, err := repo.AcceptBrief(id, winner)
	require.NoError(t, err)

	// always fails afterwards, regardless of caller
	_, err = repo.AcceptBrief(id, uuid.New())
	assert.ErrorIs(t, err, ErrAlreadyAssigned)
	_, err = repo.AcceptBrief(id, winner)
	assert.ErrorIs(t, err, ErrAlreadyAssigned)

	brief, err := repo.GetBriefByID(id)
	require.NoError(t, err)
	assert.Equal(t, winner, *brief.DesignerID)
}

func TestAcceptBriefConcurrentExactlyOneWinner(t *testing.T) {
	repo := NewBriefRepository(testDB(t))
	id := seedBrief(t, repo)

	designers := []uuid.UUID{uuid.New(), uuid.New()}
	errs := make([]error, len(designers))

	var wg sync.WaitGroup
	for i, d := range designers {
		wg.Add(1)
		go func(i int, d uuid.UUID) {
			defer wg.Done()
			_, errs[i] = repo.AcceptBrief(id, d)
		}(i, d)
	}
	wg.Wait()

	var winners, losers int
	var winner uuid.UUID
	for i, err := range errs {
		if err == nil {
			winners++
			winner = designers[i]
		} else {
			losers++
			assert.ErrorIs(t, err, ErrAlreadyAssigned)
		}
	}

	assert.Equal(t, 1, winners, "exactly one accept commits")
	assert.Equal(t, 1, losers)

	brief, err := repo.GetBriefByID(id)
	require.NoError(t, err)
	require.NotNil(t, brief.DesignerID)
	assert.Equal(t, winner, *brief.DesignerID)
}

func TestPromoteToDesigner(t *testing.T) {
	users := NewUserRepository(testDB(t))

	user, err := users.GetOrCreateByEmail(uuid.NewString() + "@example.com")
	require.NoError(t, err)
	assert.Equal(t, models.UserRoleCustomer, user.Role)

	// same identity resolves to the same row
	again, err := users.GetOrCreateByEmail(user.Email)
	require.NoError(t, err)
	assert.Equal(t, user.UUID, again.UUID)

	promoted, err := users.PromoteToDesigner(user.UUID)
	require.NoError(t, err)
	assert.Equal(t, models.UserRoleDesigner, promoted.Role)

	// idempotent
	promoted, err = users.PromoteToDesigner(user.UUID)
	require.NoError(t, err)
	assert.Equal(t, models.UserRoleDesigner, promoted.Role)
}
