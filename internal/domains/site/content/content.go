// Package content giữ nội dung marketing mặc định, embed vào binary
package content

import _ "embed"

//go:embed site.yaml
var Default []byte
