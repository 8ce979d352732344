package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v4/pgxpool"
)

type Storage struct {
	DB *pgxpool.Pool
}

func New(ctx context.Context, storagePath string) (*Storage, error) {
	const op = "storage.postgresql.New"

	db, err := pgxpool.Connect(ctx, storagePath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{DB: db}, nil
}

func (s *Storage) Stop() {
	s.DB.Close()
}

func (s *Storage) HealthCheck(ctx context.Context) error {
	return s.DB.Ping(ctx)
}

// Migrate создаёт таблицы, если их ещё нет. Повторный вызов безопасен.
func (s *Storage) Migrate(ctx context.Context) error {
	const op = "storage.postgresql.Migrate"

	if _, err := s.DB.Exec(ctx, schema); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

const schema = `
CREATE TABLE IF NOT EXISTS publications (
	id          BIGSERIAL PRIMARY KEY,
	title       TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	category    TEXT NOT NULL DEFAULT '',
	image       TEXT NOT NULL DEFAULT '',
	file_url    TEXT,
	date        TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS albums (
	id    BIGSERIAL PRIMARY KEY,
	title TEXT NOT NULL,
	cover TEXT NOT NULL DEFAULT '',
	date  TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS photos (
	id       BIGSERIAL PRIMARY KEY,
	album_id BIGINT NOT NULL REFERENCES albums(id) ON DELETE CASCADE,
	url      TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS photos_album_id_idx ON photos (album_id);

CREATE TABLE IF NOT EXISTS achievements (
	id    BIGSERIAL PRIMARY KEY,
	title TEXT NOT NULL,
	year  INTEGER NOT NULL DEFAULT 0,
	type  TEXT NOT NULL DEFAULT '',
	icon  TEXT NOT NULL DEFAULT '',
	color TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS portfolio (
	id           BIGSERIAL PRIMARY KEY,
	title        TEXT NOT NULL,
	organization TEXT NOT NULL DEFAULT '',
	category     TEXT NOT NULL DEFAULT '',
	image        TEXT NOT NULL DEFAULT '',
	date         TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS reviews (
	id     BIGSERIAL PRIMARY KEY,
	author TEXT NOT NULL,
	role   TEXT NOT NULL DEFAULT '',
	text   TEXT NOT NULL,
	rating INTEGER NOT NULL DEFAULT 5,
	status TEXT NOT NULL DEFAULT 'pending',
	likes  INTEGER NOT NULL DEFAULT 0,
	date   TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS messages (
	id      BIGSERIAL PRIMARY KEY,
	name    TEXT NOT NULL,
	email   TEXT NOT NULL,
	phone   TEXT NOT NULL DEFAULT '',
	subject TEXT NOT NULL DEFAULT '',
	message TEXT NOT NULL,
	status  TEXT NOT NULL DEFAULT 'new',
	date    TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS audio (
	id       BIGSERIAL PRIMARY KEY,
	title    TEXT NOT NULL,
	artist   TEXT NOT NULL DEFAULT '',
	category TEXT NOT NULL DEFAULT '',
	file_url TEXT NOT NULL DEFAULT '',
	duration TEXT NOT NULL DEFAULT '0:00'
);

CREATE TABLE IF NOT EXISTS videos (
	id          BIGSERIAL PRIMARY KEY,
	title       TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	category    TEXT NOT NULL DEFAULT '',
	thumbnail   TEXT NOT NULL DEFAULT '',
	video_url   TEXT NOT NULL DEFAULT '',
	vk_iframe   TEXT NOT NULL DEFAULT '',
	duration    TEXT NOT NULL DEFAULT '0:00',
	views       INTEGER NOT NULL DEFAULT 0,
	date        TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS pages (
	id         TEXT PRIMARY KEY,
	title      TEXT NOT NULL DEFAULT '',
	content    TEXT NOT NULL DEFAULT '',
	image_url  TEXT NOT NULL DEFAULT '',
	updated_at TIMESTAMPTZ
);

CREATE TABLE IF NOT EXISTS kv_store (
	key   TEXT PRIMARY KEY,
	value JSONB NOT NULL
);
`
