// Package migrations содержит встроенные SQL миграции схемы базы данных.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
