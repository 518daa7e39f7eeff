package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/2beens/motivly/internal/session"
	"github.com/2beens/motivly/internal/store"
	"github.com/2beens/motivly/pkg"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultTTL       = 24 * 7 * time.Hour
	sessionKeyPrefix = "motivly-session||"
	tokensSetKey     = "motivly-sessions"

	fieldCreatedAt = "created_at"
	fieldUserID    = "user_id"
	fieldEmail     = "email"
)

var (
	ErrWrongCredentials = errors.New("wrong credentials")
	ErrEmailTaken       = errors.New("email already registered")
)

type Credentials struct {
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type usersRepo interface {
	Insert(ctx context.Context, u User) error
	ByEmail(ctx context.Context, email string) (*User, error)
}

type Service struct {
	users       usersRepo
	redisClient *redis.Client
	ttl         time.Duration
	// ability to inject random string generator func for tokens (for unit and dev testing)
	RandStringFunc func(s int) (string, error)
	HashFunc       func(password string) (string, error)
	NewIDFunc      func() string
}

func NewAuthService(
	users usersRepo,
	ttl time.Duration,
	redisClient *redis.Client,
) *Service {
	return &Service{
		users:          users,
		ttl:            ttl,
		redisClient:    redisClient,
		RandStringFunc: pkg.RandomToken,
		HashFunc:       hashPassword,
		NewIDFunc:      uuid.NewString,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Signup creates a user with a bcrypt hashed password.
func (as *Service) Signup(ctx context.Context, creds Credentials) (*session.User, error) {
	creds.Email = normalizeEmail(creds.Email)
	if err := pkg.Validate(creds); err != nil {
		return nil, err
	}

	hash, err := as.HashFunc(creds.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := User{
		ID:           as.NewIDFunc(),
		Email:        creds.Email,
		PasswordHash: hash,
	}
	if err := as.users.Insert(ctx, u); err != nil {
		if store.IsUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return &session.User{ID: u.ID, Email: u.Email}, nil
}

// Login checks the credentials and opens a session, returning its token.
func (as *Service) Login(ctx context.Context, creds Credentials, createdAt time.Time) (string, *session.User, error) {
	u, err := as.users.ByEmail(ctx, normalizeEmail(creds.Email))
	if err != nil {
		return "", nil, err
	}
	if u == nil || !passwordMatches(creds.Password, u.PasswordHash) {
		return "", nil, ErrWrongCredentials
	}

	token, err := as.RandStringFunc(35)
	if err != nil {
		return "", nil, err
	}

	sessionKey := sessionKeyPrefix + token
	cmdSet := as.redisClient.HSet(ctx, sessionKey,
		fieldCreatedAt, createdAt.Unix(),
		fieldUserID, u.ID,
		fieldEmail, u.Email,
	)
	if err := cmdSet.Err(); err != nil {
		return "", nil, err
	}

	// add token to list of sessions
	cmdSAdd := as.redisClient.SAdd(ctx, tokensSetKey, token)
	if err := cmdSAdd.Err(); err != nil {
		return "", nil, err
	}

	return token, &session.User{ID: u.ID, Email: u.Email}, nil
}

// Logout ends the session and reports the user it belonged to.
func (as *Service) Logout(ctx context.Context, token string) (*session.User, error) {
	sessionKey := sessionKeyPrefix + token
	cmd := as.redisClient.HGetAll(ctx, sessionKey)
	if err := cmd.Err(); err != nil {
		return nil, err
	}
	user, _, err := sessionFromHash(cmd.Val())
	if err != nil {
		return nil, err
	}

	if err := as.redisClient.Del(ctx, sessionKey).Err(); err != nil {
		return nil, err
	}

	// remove token from the list of sessions
	cmdSRem := as.redisClient.SRem(ctx, tokensSetKey, token)
	if err := cmdSRem.Err(); err != nil {
		return nil, err
	}

	return user, nil
}

// ScanAndClean will run through all sessions, check the TTL, and clean them if old
func (as *Service) ScanAndClean(ctx context.Context) {
	cmd := as.redisClient.SMembers(ctx, tokensSetKey)
	if err := cmd.Err(); err != nil {
		log.Errorf("!!! auth service, scan and clean, get sessions: %s", err)
		return
	}

	sessionTokens := cmd.Val()
	if len(sessionTokens) == 0 {
		log.Debugln("=> auth service, scan and clean abort, no sessions")
		return
	}

	log.Debugf("=> auth service, scan and clean [%d sessions] start ...", len(sessionTokens))
	var toRemove []string
	for _, token := range sessionTokens {
		sessionKey := sessionKeyPrefix + token
		cmd := as.redisClient.HGet(ctx, sessionKey, fieldCreatedAt)
		if errors.Is(cmd.Err(), redis.Nil) {
			toRemove = append(toRemove, token)
			continue
		}
		if err := cmd.Err(); err != nil {
			log.Errorf("=> auth service, scan and clean token %s: %s", token, err)
			continue
		}

		createdAtUnix, err := strconv.ParseInt(cmd.Val(), 10, 64)
		if err != nil {
			log.Errorf("=> auth service, scan and clean token %s: %s", token, err)
			continue
		}

		if time.Since(time.Unix(createdAtUnix, 0)) > as.ttl {
			log.Debugf("=>\twill clean the session with token: %s", token)
			toRemove = append(toRemove, token)
		}
	}

	for _, token := range toRemove {
		sessionKey := sessionKeyPrefix + token
		if err := as.redisClient.Del(ctx, sessionKey).Err(); err != nil {
			log.Errorf("=> auth service, clean token %s: %s", token, err)
			continue
		}

		// remove token from the list of sessions
		if err := as.redisClient.SRem(ctx, tokensSetKey, token).Err(); err != nil {
			log.Errorf("=> auth service, clean token %s: %s", token, err)
			continue
		}
	}
}

var errNoSession = errors.New("no such session")

func sessionFromHash(fields map[string]string) (*session.User, time.Time, error) {
	if len(fields) == 0 || fields[fieldUserID] == "" {
		return nil, time.Time{}, errNoSession
	}
	createdAtUnix, err := strconv.ParseInt(fields[fieldCreatedAt], 10, 64)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("parse session created at: %w", err)
	}
	user := &session.User{
		ID:    fields[fieldUserID],
		Email: fields[fieldEmail],
	}
	return user, time.Unix(createdAtUnix, 0), nil
}
