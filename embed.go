// Package inventoryapi embebe las migraciones SQL para aplicarlas al arranque.
package inventoryapi

import "embed"

//go:embed migrations/*.sql
var Migrations embed.FS
