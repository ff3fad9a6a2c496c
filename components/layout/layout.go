// Package layout holds the page chrome shared by every module's templates.
package layout

import "embed"

//go:embed *.html
var FS embed.FS
