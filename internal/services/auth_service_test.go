package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestRegisterHashesPassword(t *testing.T) {
	env := setupServiceEnv(t)

	user, err := env.auth.Register(RegisterInput{
		Email:    "worker@example.com",
		Password: "password123",
		Name:     "Worker",
	})
	require.NoError(t, err)
	require.NotEqual(t, "password123", user.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("password123")))
}

func TestRegisterNormalizesEmail(t *testing.T) {
	env := setupServiceEnv(t)

	user, err := env.auth.Register(RegisterInput{
		Email:    "  Worker@Example.COM ",
		Password: "password123",
		Name:     "Worker",
	})
	require.NoError(t, err)
	require.Equal(t, "worker@example.com", user.Email)

	// The normalized form collides with any casing of the same address.
	_, err = env.auth.Register(RegisterInput{
		Email:    "WORKER@example.com",
		Password: "password123",
		Name:     "Another",
	})
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterManagerFlag(t *testing.T) {
	env := setupServiceEnv(t)

	manager, err := env.auth.Register(RegisterInput{
		Email:           "boss@example.com",
		Password:        "password123",
		Name:            "Boss",
		ManagerPassword: testManagerAccessCode,
	})
	require.NoError(t, err)
	require.True(t, manager.IsManager)

	worker, err := env.auth.Register(RegisterInput{
		Email:           "worker@example.com",
		Password:        "password123",
		Name:            "Worker",
		ManagerPassword: "not-the-code",
	})
	require.NoError(t, err)
	require.False(t, worker.IsManager)
}

func TestRegisterShortPasswordRejected(t *testing.T) {
	env := setupServiceEnv(t)

	_, err := env.auth.Register(RegisterInput{
		Email:    "worker@example.com",
		Password: "short",
		Name:     "Worker",
	})
	require.ErrorIs(t, err, ErrPasswordTooShort)
}

func TestLoginSameErrorForUnknownEmailAndWrongPassword(t *testing.T) {
	env := setupServiceEnv(t)

	_, err := env.auth.Register(RegisterInput{
		Email:    "worker@example.com",
		Password: "password123",
		Name:     "Worker",
	})
	require.NoError(t, err)

	_, err = env.auth.Login(LoginInput{Email: "worker@example.com", Password: "wrongpassword"})
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = env.auth.Login(LoginInput{Email: "ghost@example.com", Password: "password123"})
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginAcceptsMixedCaseEmail(t *testing.T) {
	env := setupServiceEnv(t)

	_, err := env.auth.Register(RegisterInput{
		Email:    "worker@example.com",
		Password: "password123",
		Name:     "Worker",
	})
	require.NoError(t, err)

	user, err := env.auth.Login(LoginInput{Email: "Worker@Example.com", Password: "password123"})
	require.NoError(t, err)
	require.Equal(t, "worker@example.com", user.Email)
}
