package store

// SchemaSQL creates the single key-value table backing the store.
const SchemaSQL = `
CREATE TABLE IF NOT EXISTS kv (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`
