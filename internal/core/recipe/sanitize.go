package recipe

import "strings"

// 換行轉空白，彎引號轉直引號；輸出不含任何被替換字元，因此重複套用結果不變
var sanitizer = strings.NewReplacer(
	"\r", " ",
	"\n", " ",
	"“", `"`,
	"”", `"`,
	"„", `"`,
	"‟", `"`,
	"‘", "'",
	"’", "'",
	"‚", "'",
	"‛", "'",
)

// Sanitize 正規化換行與引號
func Sanitize(s string) string {
	return sanitizer.Replace(s)
}
