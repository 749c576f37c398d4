package migrations

import "embed"

// FS embeds the SQL migrations for the warehouse tables and the shared
// alert table. golang-migrate reads them through the iofs driver.
//
//go:embed *.sql
var FS embed.FS

const Version = 1
