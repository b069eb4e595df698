package serpflights

import "strings"

// airlineCodes maps common airline display names to IATA codes so that
// callers can filter by either form. Unknown names pass through
// upper-cased, which already is the right thing for raw codes.
var airlineCodes = map[string]string{
	"american":        "AA",
	"united":          "UA",
	"delta":           "DL",
	"southwest":       "WN",
	"jetblue":         "B6",
	"alaska":          "AS",
	"frontier":        "F9",
	"spirit":          "NK",
	"hawaiian":        "HA",
	"air canada":      "AC",
	"westjet":         "WS",
	"lufthansa":       "LH",
	"british airways": "BA",
	"air france":      "AF",
	"klm":             "KL",
	"iberia":          "IB",
	"swiss":           "LX",
	"austrian":        "OS",
	"finnair":         "AY",
	"sas":             "SK",
	"ryanair":         "FR",
	"easyjet":         "U2",
	"turkish":         "TK",
	"emirates":        "EK",
	"qatar":           "QR",
	"etihad":          "EY",
	"singapore":       "SQ",
	"cathay pacific":  "CX",
	"japan airlines":  "JL",
	"ana":             "NH",
	"korean air":      "KE",
	"qantas":          "QF",
	"air new zealand": "NZ",
	"latam":           "LA",
	"avianca":         "AV",
	"copa":            "CM",
	"aeromexico":      "AM",
}

// ResolveAirlineCode turns an airline name or code into an IATA code.
func ResolveAirlineCode(nameOrCode string) string {
	s := strings.TrimSpace(nameOrCode)
	if code, ok := airlineCodes[strings.ToLower(s)]; ok {
		return code
	}
	return strings.ToUpper(s)
}

// resolveAirlineList resolves a list of names/codes into a CSV of codes.
func resolveAirlineList(list []string) string {
	codes := make([]string, 0, len(list))
	for _, entry := range list {
		if entry = strings.TrimSpace(entry); entry != "" {
			codes = append(codes, ResolveAirlineCode(entry))
		}
	}
	return strings.Join(codes, ",")
}

// travelClassParam maps a travel class name to the provider's numeric
// parameter. Unknown classes fall back to economy.
func travelClassParam(class string) string {
	switch strings.ToLower(strings.TrimSpace(class)) {
	case "premium_economy", "premium economy", "premium":
		return "2"
	case "business", "business class":
		return "3"
	case "first", "first class":
		return "4"
	default:
		return "1"
	}
}

// timeRangeParam maps a named time-of-day preference to the provider's
// "start,end" hour range. Empty for unknown preferences.
func timeRangeParam(pref string) string {
	switch strings.ToLower(strings.TrimSpace(pref)) {
	case "morning":
		return "6,12"
	case "afternoon":
		return "12,18"
	case "evening":
		return "18,23"
	default:
		return ""
	}
}
