package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	log "github.com/sirupsen/logrus"
)

type execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// Tables lists every table Migrate creates, in creation order.
var Tables = []string{
	"users",
	"profiles",
	"notification_settings",
	"notification_preferences",
	"push_subscriptions",
	"wellbeing_checkins",
	"morning_states",
	"daily_slots",
	"daily_intentions",
	"daily_reflections",
	"rituals",
	"stress_reasons",
	"resource_events",
	"sessions",
	"goals",
	"user_weekly_slots",
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            TEXT PRIMARY KEY,
		email         TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS profiles (
		id           TEXT PRIMARY KEY,
		username     TEXT UNIQUE,
		display_name TEXT,
		updated_at   TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS notification_settings (
		id          BIGSERIAL PRIMARY KEY,
		user_id     TEXT NOT NULL UNIQUE,
		max_per_day INT NOT NULL DEFAULT 3
	)`,
	`CREATE TABLE IF NOT EXISTS notification_preferences (
		user_id         TEXT PRIMARY KEY,
		morning_enabled BOOLEAN NOT NULL DEFAULT false,
		morning_time    TEXT NOT NULL DEFAULT '08:00',
		midday_enabled  BOOLEAN NOT NULL DEFAULT false,
		midday_time     TEXT NOT NULL DEFAULT '12:00',
		evening_enabled BOOLEAN NOT NULL DEFAULT false,
		evening_time    TEXT NOT NULL DEFAULT '21:30',
		updated_at      TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS push_subscriptions (
		id         BIGSERIAL PRIMARY KEY,
		user_id    TEXT NOT NULL,
		endpoint   TEXT NOT NULL UNIQUE,
		p256dh     TEXT,
		auth       TEXT,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS wellbeing_checkins (
		id           BIGSERIAL PRIMARY KEY,
		user_id      TEXT NOT NULL,
		created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
		day          DATE,
		stress_level INT,
		note         TEXT,
		question     TEXT,
		moment       TEXT NOT NULL DEFAULT 'evening',
		UNIQUE (user_id, day, moment)
	)`,
	`CREATE TABLE IF NOT EXISTS morning_states (
		id              BIGSERIAL PRIMARY KEY,
		user_id         TEXT NOT NULL,
		day_date        DATE NOT NULL,
		created_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
		mood_level      INT,
		energy_level    INT,
		priorities      TEXT[],
		sleep_bed_time  TEXT,
		sleep_wake_time TEXT,
		UNIQUE (user_id, day_date)
	)`,
	`CREATE TABLE IF NOT EXISTS daily_slots (
		id         BIGSERIAL PRIMARY KEY,
		user_id    TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		slot       TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS daily_intentions (
		id         BIGSERIAL PRIMARY KEY,
		user_id    TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		intention  TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS daily_reflections (
		id             BIGSERIAL PRIMARY KEY,
		user_id        TEXT NOT NULL,
		day_date       DATE NOT NULL,
		mindset_note   TEXT,
		gratitude_note TEXT,
		updated_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
		UNIQUE (user_id, day_date)
	)`,
	`CREATE TABLE IF NOT EXISTS rituals (
		id          BIGSERIAL PRIMARY KEY,
		user_id     TEXT NOT NULL,
		moment      TEXT NOT NULL,
		focus       TEXT,
		title       TEXT NOT NULL,
		description TEXT,
		is_active   BOOLEAN NOT NULL DEFAULT true,
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
		UNIQUE (user_id, moment)
	)`,
	`CREATE TABLE IF NOT EXISTS stress_reasons (
		id         BIGSERIAL PRIMARY KEY,
		user_id    TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		reason     TEXT NOT NULL,
		category   TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS resource_events (
		id               BIGSERIAL PRIMARY KEY,
		user_id          TEXT NOT NULL,
		source           TEXT NOT NULL,
		resource_type    TEXT NOT NULL,
		resource_key     TEXT,
		duration_seconds INT,
		occurred_at      TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS sessions (
		id               BIGSERIAL PRIMARY KEY,
		user_id          TEXT NOT NULL,
		performed_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
		duration_minutes INT,
		kind             TEXT,
		template_key     TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS goals (
		id                BIGSERIAL PRIMARY KEY,
		user_id           TEXT NOT NULL,
		per_week_sessions INT NOT NULL,
		is_active         BOOLEAN NOT NULL DEFAULT true,
		created_at        TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS user_weekly_slots (
		id          BIGSERIAL PRIMARY KEY,
		user_id     TEXT NOT NULL,
		day_index   SMALLINT NOT NULL CHECK (day_index BETWEEN 0 AND 6),
		time_of_day TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_checkins_user_created ON wellbeing_checkins (user_id, created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_sessions_user_performed ON sessions (user_id, performed_at)`,
	`CREATE INDEX IF NOT EXISTS idx_resource_events_user_occurred ON resource_events (user_id, occurred_at)`,
}

// Migrate creates every table the service uses. It is idempotent.
func Migrate(ctx context.Context, db execer) error {
	for i, stmt := range schema {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migrate statement %d: %w", i, err)
		}
	}
	log.Debugf("db migrated, %d tables ensured", len(Tables))
	return nil
}

// DropAll removes every table created by Migrate. Used by tests and the admin CLI.
func DropAll(ctx context.Context, db execer) error {
	for i := len(Tables) - 1; i >= 0; i-- {
		if _, err := db.Exec(ctx, "DROP TABLE IF EXISTS "+Tables[i]); err != nil {
			return fmt.Errorf("drop %s: %w", Tables[i], err)
		}
	}
	return nil
}
