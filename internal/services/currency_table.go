package services

// CurrencyInfo is the best-effort enrichment derived from a landing city.
// An empty CountryCode means the city could not be resolved and the USD
// fallback is in effect.
type CurrencyInfo struct {
	CountryCode string `json:"countryCode,omitempty"`
	Country     string `json:"country"`
	Currency    string `json:"currency"`
	Symbol      string `json:"symbol"`
}

type currencyEntry struct {
	Currency string
	Symbol   string
}

// ISO 3166-1 alpha-2 country code to local currency.
var countryCurrencyTable = map[string]currencyEntry{
	// Europe
	"AT": {"EUR", "€"},
	"BE": {"EUR", "€"},
	"BG": {"BGN", "лв"},
	"HR": {"EUR", "€"},
	"CY": {"EUR", "€"},
	"CZ": {"CZK", "Kč"},
	"DK": {"DKK", "kr"},
	"EE": {"EUR", "€"},
	"FI": {"EUR", "€"},
	"FR": {"EUR", "€"},
	"DE": {"EUR", "€"},
	"GR": {"EUR", "€"},
	"HU": {"HUF", "Ft"},
	"IE": {"EUR", "€"},
	"IT": {"EUR", "€"},
	"LV": {"EUR", "€"},
	"LT": {"EUR", "€"},
	"LU": {"EUR", "€"},
	"MT": {"EUR", "€"},
	"NL": {"EUR", "€"},
	"PL": {"PLN", "zł"},
	"PT": {"EUR", "€"},
	"RO": {"RON", "lei"},
	"SK": {"EUR", "€"},
	"SI": {"EUR", "€"},
	"ES": {"EUR", "€"},
	"SE": {"SEK", "kr"},
	"GB": {"GBP", "£"},
	"UK": {"GBP", "£"},
	"CH": {"CHF", "CHF"},
	"NO": {"NOK", "kr"},
	"IS": {"ISK", "kr"},
	"RU": {"RUB", "₽"},
	"UA": {"UAH", "₴"},
	"TR": {"TRY", "₺"},

	// Asia
	"JP": {"JPY", "¥"},
	"CN": {"CNY", "¥"},
	"KR": {"KRW", "₩"},
	"HK": {"HKD", "HK$"},
	"TW": {"TWD", "NT$"},
	"SG": {"SGD", "S$"},
	"MY": {"MYR", "RM"},
	"TH": {"THB", "฿"},
	"VN": {"VND", "₫"},
	"ID": {"IDR", "Rp"},
	"PH": {"PHP", "₱"},
	"IN": {"INR", "₹"},
	"PK": {"PKR", "₨"},
	"BD": {"BDT", "৳"},
	"LK": {"LKR", "Rs"},
	"NP": {"NPR", "₨"},
	"AE": {"AED", "د.إ"},
	"SA": {"SAR", "﷼"},
	"QA": {"QAR", "﷼"},
	"KW": {"KWD", "د.ك"},
	"BH": {"BHD", "BD"},
	"OM": {"OMR", "﷼"},
	"IL": {"ILS", "₪"},
	"JO": {"JOD", "JD"},
	"LB": {"LBP", "ل.ل"},
	"KH": {"KHR", "៛"},
	"MM": {"MMK", "K"},
	"LA": {"LAK", "₭"},

	// Americas
	"US": {"USD", "$"},
	"CA": {"CAD", "C$"},
	"MX": {"MXN", "MX$"},
	"BR": {"BRL", "R$"},
	"AR": {"ARS", "AR$"},
	"CL": {"CLP", "CLP$"},
	"CO": {"COP", "COL$"},
	"PE": {"PEN", "S/"},
	"VE": {"VES", "Bs"},
	"EC": {"USD", "$"},
	"UY": {"UYU", "$U"},
	"PY": {"PYG", "₲"},
	"BO": {"BOB", "Bs"},
	"CR": {"CRC", "₡"},
	"PA": {"USD", "$"},
	"GT": {"GTQ", "Q"},
	"CU": {"CUP", "₱"},
	"DO": {"DOP", "RD$"},
	"JM": {"JMD", "J$"},
	"PR": {"USD", "$"},

	// Oceania
	"AU": {"AUD", "A$"},
	"NZ": {"NZD", "NZ$"},
	"FJ": {"FJD", "FJ$"},
	"PG": {"PGK", "K"},

	// Africa
	"ZA": {"ZAR", "R"},
	"EG": {"EGP", "E£"},
	"MA": {"MAD", "د.م."},
	"TN": {"TND", "د.ت"},
	"KE": {"KES", "KSh"},
	"NG": {"NGN", "₦"},
	"GH": {"GHS", "GH₵"},
	"TZ": {"TZS", "TSh"},
	"ET": {"ETB", "Br"},
	"UG": {"UGX", "USh"},
	"RW": {"RWF", "FRw"},
	"MU": {"MUR", "₨"},
	"SC": {"SCR", "₨"},
}

func fallbackCurrencyInfo() CurrencyInfo {
	return CurrencyInfo{Currency: "USD", Symbol: "$", Country: "Unknown"}
}
