package auth

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/2beens/motivly/internal/store"

	"github.com/go-redis/redismock/v8"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

var (
	testEmail        = "ada@example.com"
	testPassword     = "testpass"
	testPasswordHash = "$2a$14$6Gmhg85si2etd3K9oB8nYu1cxfbrdmhkg6wI6OXsa88IF4L2r/L9i" // testpass
	testUser         = User{
		ID:           "5f0c4a3e-1111-2222-3333-444455556666",
		Email:        testEmail,
		PasswordHash: testPasswordHash,
	}
	testCredentials = Credentials{
		Email:    testEmail,
		Password: testPassword,
	}
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		// INFO: https://github.com/go-redis/redis/issues/1029
		goleak.IgnoreTopFunction(
			"github.com/go-redis/redis/v8/internal/pool.(*ConnPool).reaper",
		),
	)
}

type fakeUsers struct {
	mu    sync.Mutex
	users map[string]User
}

func newFakeUsers(users ...User) *fakeUsers {
	f := &fakeUsers{users: map[string]User{}}
	for _, u := range users {
		f.users[u.Email] = u
	}
	return f
}

func (f *fakeUsers) Insert(_ context.Context, u User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[u.Email]; ok {
		return store.Classify("users", "insert", &pgconn.PgError{Code: "23505"})
	}
	f.users[u.Email] = u
	return nil
}

func (f *fakeUsers) ByEmail(_ context.Context, email string) (*User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[email]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func TestAuthService_Signup(t *testing.T) {
	db, _ := redismock.NewClientMock()
	defer db.Close()

	users := newFakeUsers()
	authService := NewAuthService(users, time.Hour, db)
	authService.HashFunc = func(p string) (string, error) { return "hashed:" + p, nil }
	authService.NewIDFunc = func() string { return "new-id" }

	ctx := context.Background()
	user, err := authService.Signup(ctx, Credentials{Email: "  Bob@Example.com ", Password: "longenough"})
	require.NoError(t, err)
	assert.Equal(t, "new-id", user.ID)
	assert.Equal(t, "bob@example.com", user.Email)
	assert.Equal(t, "hashed:longenough", users.users["bob@example.com"].PasswordHash)

	_, err = authService.Signup(ctx, Credentials{Email: "bob@example.com", Password: "longenough"})
	assert.ErrorIs(t, err, ErrEmailTaken)

	_, err = authService.Signup(ctx, Credentials{Email: "not-an-email", Password: "longenough"})
	assert.Error(t, err)
	_, err = authService.Signup(ctx, Credentials{Email: "eve@example.com", Password: "short"})
	assert.Error(t, err)
}

func TestAuthService_Login(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()

	authService := NewAuthService(newFakeUsers(testUser), time.Hour, db)
	require.NotNil(t, authService)
	assert.Equal(t, time.Hour, authService.ttl)

	testToken := "test_token"
	authService.RandStringFunc = func(s int) (string, error) {
		return testToken, nil
	}

	now := time.Now()
	sessionKey := sessionKeyPrefix + testToken
	mock.ExpectHSet(sessionKey,
		fieldCreatedAt, now.Unix(),
		fieldUserID, testUser.ID,
		fieldEmail, testUser.Email,
	).SetVal(3)
	mock.ExpectSAdd(tokensSetKey, testToken).SetVal(1)
	token, user, err := authService.Login(context.Background(), testCredentials, now)
	require.NoError(t, err)
	assert.Equal(t, testToken, token)
	assert.Equal(t, testUser.ID, user.ID)
	require.NoError(t, mock.ExpectationsWereMet())

	// test failed login again
	token, user, err = authService.Login(context.Background(), Credentials{
		Email:    testEmail,
		Password: "invalid_pass",
	}, now)
	assert.ErrorIs(t, err, ErrWrongCredentials)
	assert.Empty(t, token)
	assert.Nil(t, user)

	_, _, err = authService.Login(context.Background(), Credentials{
		Email:    "nobody@example.com",
		Password: testPassword,
	}, now)
	assert.ErrorIs(t, err, ErrWrongCredentials)
}

func TestAuthService_Logout(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()

	authService := NewAuthService(newFakeUsers(testUser), time.Hour, db)

	sessionKey := sessionKeyPrefix + "tok"
	mock.ExpectHGetAll(sessionKey).SetVal(map[string]string{
		fieldCreatedAt: fmt.Sprintf("%d", time.Now().Unix()),
		fieldUserID:    testUser.ID,
		fieldEmail:     testUser.Email,
	})
	mock.ExpectDel(sessionKey).SetVal(1)
	mock.ExpectSRem(tokensSetKey, "tok").SetVal(1)

	user, err := authService.Logout(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, testUser.ID, user.ID)

	mock.ExpectHGetAll(sessionKeyPrefix + "gone").SetVal(map[string]string{})
	_, err = authService.Logout(context.Background(), "gone")
	assert.ErrorIs(t, err, errNoSession)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthService_ScanAndClean(t *testing.T) {
	ttl := time.Hour
	now := time.Now()
	then := now.Add(-2 * time.Hour)

	rdb, mock := redismock.NewClientMock()
	defer rdb.Close()

	authService := NewAuthService(newFakeUsers(), ttl, rdb)
	require.NotNil(t, authService)

	t1, t2, t3 := "token1", "token2", "token3"
	mock.ExpectSMembers(tokensSetKey).SetVal([]string{t1, t2, t3})
	mock.ExpectHGet(sessionKeyPrefix+t1, fieldCreatedAt).SetVal(fmt.Sprintf("%d", then.Unix()))
	mock.ExpectHGet(sessionKeyPrefix+t2, fieldCreatedAt).SetVal(fmt.Sprintf("%d", now.Unix()))
	mock.ExpectHGet(sessionKeyPrefix+t3, fieldCreatedAt).RedisNil()
	// t1 is too old, t3 lost its hash
	mock.ExpectDel(sessionKeyPrefix + t1).SetVal(1)
	mock.ExpectSRem(tokensSetKey, t1).SetVal(1)
	mock.ExpectDel(sessionKeyPrefix + t3).SetVal(0)
	mock.ExpectSRem(tokensSetKey, t3).SetVal(1)

	authService.ScanAndClean(context.Background())
	require.NoError(t, mock.ExpectationsWereMet())
}
