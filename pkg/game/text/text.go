// Package text holds the user-facing strings printed by the generator tools.
package text

import (
	_ "embed"

	"github.com/leonelquinteros/gotext"
)

//go:embed en.po
var enPo []byte

var catalog = load(enPo)

func load(data []byte) *gotext.Po {
	po := gotext.NewPo()
	po.Parse(data)
	return po
}

// Get returns the translation for key, formatted with args. Unknown keys come
// back unchanged.
func Get(key string, args ...interface{}) string {
	return catalog.Get(key, args...)
}
