package holiday

import (
	"os"
	"strings"
)

// supportedCountries maps country codes to the locale tags that imply
// them. The order matters: the first match wins.
var supportedCountries = []struct {
	code    string
	locales []string
}{
	{"RU", []string{"ru_RU", "ru_BY", "ru_KZ", "ru_UZ", "ru_LV"}},
	{"BY", []string{"be_BY", "ru_BY"}},
	{"KZ", []string{"kk_KZ", "ru_KZ"}},
	{"US", []string{"en_US", "en"}},
	{"UZ", []string{"uz_UZ", "ru_UZ"}},
	{"TR", []string{"tr_TR"}},
	{"LV", []string{"lv_LV", "ru_LV"}},
}

// DetectCountry derives a 2-letter country code from the locale
// environment (LC_ALL over LC_TIME over LANG).
//
// When no locale variable is set at all the result is "US" (via the
// assumed en_US default); when a variable is set but unrecognized the
// result is "RU".
func DetectCountry() string {
	raw := ""
	for _, name := range []string{"LC_ALL", "LC_TIME", "LANG"} {
		if v := os.Getenv(name); v != "" {
			raw = v
			break
		}
	}
	if raw == "" {
		raw = "en_US.UTF-8"
	}

	name := raw
	if i := strings.IndexByte(name, '.'); i >= 0 {
		name = name[:i]
	}
	if i := strings.IndexByte(name, '@'); i >= 0 {
		name = name[:i]
	}

	for _, c := range supportedCountries {
		for _, l := range c.locales {
			if name == l {
				return c.code
			}
		}
	}

	// Fall back to the locale's own country suffix when it names a
	// supported country ("de_US" still means US data).
	if i := strings.IndexByte(name, '_'); i >= 0 {
		suffix := name[i+1:]
		for _, c := range supportedCountries {
			if c.code == suffix {
				return suffix
			}
		}
	}

	return "RU"
}
