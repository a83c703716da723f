// Package migrations embeds the sqlite schema for the on-device store.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
