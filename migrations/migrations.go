// Package migrations embeds the SQL schema so the binary can migrate the
// database on start-up.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
