package auth

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginChecker_UserFor(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()

	loginChecker := NewLoginChecker(time.Hour, db)
	require.NotNil(t, loginChecker)

	ctx := context.Background()

	mock.ExpectHGetAll(sessionKeyPrefix + "invalid token").SetVal(map[string]string{})
	user, err := loginChecker.UserFor(ctx, "invalid token")
	require.NoError(t, err)
	assert.Nil(t, user)

	testToken := "test-token"
	sessionKey := sessionKeyPrefix + testToken
	fields := map[string]string{
		fieldCreatedAt: fmt.Sprintf("%d", time.Now().Unix()),
		fieldUserID:    testUser.ID,
		fieldEmail:     testUser.Email,
	}

	mock.ExpectHGetAll(sessionKey).SetVal(fields)
	user, err = loginChecker.UserFor(ctx, testToken)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, testUser.ID, user.ID)
	assert.Equal(t, testUser.Email, user.Email)

	fields[fieldCreatedAt] = fmt.Sprintf("%d", time.Now().Add(-2*time.Hour).Unix())
	mock.ExpectHGetAll(sessionKey).SetVal(fields)
	user, err = loginChecker.UserFor(ctx, testToken)
	require.NoError(t, err)
	assert.Nil(t, user, "expired session")

	mock.ExpectHGetAll(sessionKey).SetErr(errors.New("redis down"))
	_, err = loginChecker.UserFor(ctx, testToken)
	assert.Error(t, err)

	require.NoError(t, mock.ExpectationsWereMet())
}
