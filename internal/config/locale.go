package config

import (
	"os"
	"strings"

	"golang.org/x/text/language"
)

// twelveHourRegions are regions whose conventional clock is 12-hour.
//
//nolint:gochecknoglobals // Compile-time constant lookup table.
var twelveHourRegions = map[string]bool{
	"US": true, "CA": true, "AU": true, "NZ": true, "IN": true, "PH": true,
	"PK": true, "BD": true, "EG": true, "SA": true, "MY": true, "CO": true,
	"SV": true, "HN": true, "NI": true, "JO": true, "KR": true, "TW": true,
}

// ResolveHourCycle turns a configured hour cycle into "12" or "24". "auto"
// consults the locale: an explicit -u-hc- extension wins, then the region.
// An empty locale reads LC_ALL, LC_TIME and LANG in that order.
func ResolveHourCycle(setting, locale string) string {
	switch setting {
	case HourCycle12, HourCycle24:
		return setting
	}
	if locale == "" {
		locale = envLocale(os.Getenv)
	}
	return hourCycleForLocale(locale)
}

func hourCycleForLocale(locale string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		return HourCycle24
	}

	switch tag.TypeForKey("hc") {
	case "h11", "h12":
		return HourCycle12
	case "h23", "h24":
		return HourCycle24
	}

	region, confidence := tag.Region()
	if confidence == language.No {
		return HourCycle24
	}
	if twelveHourRegions[region.String()] {
		return HourCycle12
	}
	return HourCycle24
}

// envLocale converts a POSIX locale such as "en_US.UTF-8" to a BCP 47 tag.
func envLocale(getenv func(string) string) string {
	for _, key := range []string{"LC_ALL", "LC_TIME", "LANG"} {
		v := getenv(key)
		if v == "" || v == "C" || v == "POSIX" {
			continue
		}
		if i := strings.IndexAny(v, ".@"); i >= 0 {
			v = v[:i]
		}
		return strings.ReplaceAll(v, "_", "-")
	}
	return ""
}
