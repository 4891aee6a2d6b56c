package db

const schemaDDL = `
CREATE TABLE IF NOT EXISTS user_account (
    id         SERIAL PRIMARY KEY,
    username   TEXT NOT NULL UNIQUE,
    password   TEXT NOT NULL,
    realname   TEXT NOT NULL DEFAULT '',
    role       TEXT NOT NULL DEFAULT 'member',
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS conversation (
    id         UUID PRIMARY KEY,
    user_id    INT NOT NULL REFERENCES user_account (id) ON DELETE CASCADE,
    title      TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS message (
    id              UUID PRIMARY KEY,
    conversation_id UUID NOT NULL REFERENCES conversation (id) ON DELETE CASCADE,
    role            TEXT NOT NULL,
    content         TEXT NOT NULL,
    created_at      TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS memory (
    id         SERIAL PRIMARY KEY,
    user_id    INT NOT NULL REFERENCES user_account (id) ON DELETE CASCADE,
    content    TEXT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS task (
    id         SERIAL PRIMARY KEY,
    user_id    INT NOT NULL REFERENCES user_account (id) ON DELETE CASCADE,
    title      TEXT NOT NULL,
    done       BOOLEAN NOT NULL DEFAULT FALSE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS custom_command (
    id         SERIAL PRIMARY KEY,
    user_id    INT NOT NULL REFERENCES user_account (id) ON DELETE CASCADE,
    name       TEXT NOT NULL,
    prompt     TEXT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    UNIQUE (user_id, name)
);

CREATE TABLE IF NOT EXISTS avatar (
    id           UUID PRIMARY KEY,
    user_id      INT NOT NULL REFERENCES user_account (id) ON DELETE CASCADE,
    content_type TEXT NOT NULL,
    data         BYTEA NOT NULL,
    created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_conversation_user ON conversation (user_id);
CREATE INDEX IF NOT EXISTS idx_message_conversation ON message (conversation_id);
CREATE INDEX IF NOT EXISTS idx_memory_user ON memory (user_id);
CREATE INDEX IF NOT EXISTS idx_task_user ON task (user_id);
CREATE INDEX IF NOT EXISTS idx_avatar_user ON avatar (user_id, created_at DESC);
`
