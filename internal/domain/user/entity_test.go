package user_test

import (
	"testing"

	"github.com/fuelapp/v1/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestNewUser(t *testing.T) {
	t.Run("valid user", func(t *testing.T) {
		u, err := user.NewUser("Jamie@Example.com", "Jamie", "hunter2hunter2", bcrypt.MinCost)
		require.NoError(t, err)

		assert.Equal(t, "jamie@example.com", u.Email(), "email is lowercased")
		assert.Equal(t, "Jamie", u.Name())
		assert.Equal(t, user.RoleUser, u.Role())
		assert.True(t, u.IsActive())
		assert.Nil(t, u.Goals())
	})

	t.Run("missing email", func(t *testing.T) {
		_, err := user.NewUser("", "Jamie", "hunter2hunter2", bcrypt.MinCost)
		assert.ErrorIs(t, err, user.ErrEmailRequired)
	})

	t.Run("malformed email", func(t *testing.T) {
		_, err := user.NewUser("not-an-email", "Jamie", "hunter2hunter2", bcrypt.MinCost)
		assert.ErrorIs(t, err, user.ErrEmailInvalid)
	})

	t.Run("short password", func(t *testing.T) {
		_, err := user.NewUser("jamie@example.com", "Jamie", "short", bcrypt.MinCost)
		assert.ErrorIs(t, err, user.ErrPasswordTooShort)
	})
}

func TestNewUserHonorsBCryptCost(t *testing.T) {
	u, err := user.NewUser("jamie@example.com", "Jamie", "hunter2hunter2", 6)
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(u.PasswordHash()))
	require.NoError(t, err)
	assert.Equal(t, 6, cost)
}

func TestCheckPassword(t *testing.T) {
	u, err := user.NewUser("jamie@example.com", "Jamie", "hunter2hunter2", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NoError(t, u.CheckPassword("hunter2hunter2"))
	assert.Error(t, u.CheckPassword("wrong-password"))
}

func TestUpdatePassword(t *testing.T) {
	u, err := user.NewUser("jamie@example.com", "Jamie", "hunter2hunter2", bcrypt.MinCost)
	require.NoError(t, err)

	require.NoError(t, u.UpdatePassword("new-password-1", bcrypt.MinCost))
	assert.NoError(t, u.CheckPassword("new-password-1"))
	assert.Error(t, u.CheckPassword("hunter2hunter2"))

	assert.ErrorIs(t, u.UpdatePassword("short", bcrypt.MinCost), user.ErrPasswordTooShort)
}

func TestSetGoals(t *testing.T) {
	u, err := user.NewUser("jamie@example.com", "Jamie", "hunter2hunter2", bcrypt.MinCost)
	require.NoError(t, err)

	require.NoError(t, u.SetGoals(user.MacroGoals{Calories: 2200, Protein: 160, Carbs: 220, Fat: 70}))
	require.NotNil(t, u.Goals())
	assert.Equal(t, 160.0, u.Goals().Protein)

	assert.ErrorIs(t, u.SetGoals(user.MacroGoals{Calories: -1}), user.ErrNegativeGoal)
}
