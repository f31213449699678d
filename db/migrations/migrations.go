package migrations

import "embed"

// FS carries the SQL migration files for the campaigns schema. They are
// applied at startup through golang-migrate's iofs driver.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version the running binary expects.
const Version = 1
