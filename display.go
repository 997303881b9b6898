package nav

import "strings"

// DisplayScheme prefixes every display alias.
const DisplayScheme = "https://"

// HomeDisplay is the alias of the site's landing page.
const HomeDisplay = DisplayScheme + "lapage"

// homeStems are lowercased stems that identify the landing page.
var homeStems = map[string]bool{
	"home":  true,
	"index": true,
}

// Stem returns filename without its extension. Leading dots do not start an
// extension, so ".html" is its own stem.
func Stem(filename string) string {
	i := strings.LastIndexByte(filename, '.')
	if i <= 0 || strings.Trim(filename[:i], ".") == "" {
		return filename
	}
	return filename[:i]
}

// DeriveDisplay returns the display alias for a document.
//
// A non-blank declared alias is used as is. Otherwise the alias is built from
// the lowercased stem: landing pages map to HomeDisplay, everything else keeps
// only ASCII letters and digits. When nothing survives the filter the whole
// lowercased stem is used so the alias is never empty.
func DeriveDisplay(filename, declared string) string {
	if declared = strings.TrimSpace(declared); declared != "" {
		return declared
	}

	stem := strings.ToLower(Stem(filename))
	if homeStems[stem] {
		return HomeDisplay
	}

	cleaned := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return r
		}
		return -1
	}, stem)
	if cleaned == "" {
		cleaned = stem
	}
	return DisplayScheme + cleaned
}
