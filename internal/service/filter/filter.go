package filter

import "github.com/jgivc/extprobe/internal/entity"

// ByLang returns extensions with exactly matching lang in original order.
func ByLang(exts []entity.Extension, lang string) []entity.Extension {
	res := make([]entity.Extension, 0)
	for _, ext := range exts {
		if ext.Lang == lang {
			res = append(res, ext)
		}
	}

	return res
}
