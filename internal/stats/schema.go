package stats

// Schema is the relational layout for durable accounts and aggregate stats.
// It is declared for a future persistence pass and is not wired into any
// runtime path: the server keeps everything in memory today.
const Schema = `
CREATE TABLE IF NOT EXISTS users (
    id           BIGSERIAL PRIMARY KEY,
    username     TEXT NOT NULL UNIQUE,
    display_name TEXT NOT NULL,
    created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS user_stats (
    user_id       BIGINT PRIMARY KEY REFERENCES users(id),
    kills         BIGINT NOT NULL DEFAULT 0,
    deaths        BIGINT NOT NULL DEFAULT 0,
    wins          BIGINT NOT NULL DEFAULT 0,
    matches       BIGINT NOT NULL DEFAULT 0,
    score_total   BIGINT NOT NULL DEFAULT 0,
    updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);
`
