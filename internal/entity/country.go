package entity

// dialCodeToISO2 maps international dialing prefixes to ISO-2 country codes.
// Fixed at build time. Shared prefixes resolve to the dominant market
// (+1 -> US, +7 -> RU).
var dialCodeToISO2 = map[string]string{
	"+1":   "US",
	"+7":   "RU",
	"+20":  "EG",
	"+27":  "ZA",
	"+30":  "GR",
	"+31":  "NL",
	"+32":  "BE",
	"+33":  "FR",
	"+34":  "ES",
	"+36":  "HU",
	"+39":  "IT",
	"+40":  "RO",
	"+41":  "CH",
	"+43":  "AT",
	"+44":  "GB",
	"+45":  "DK",
	"+46":  "SE",
	"+47":  "NO",
	"+48":  "PL",
	"+49":  "DE",
	"+52":  "MX",
	"+54":  "AR",
	"+55":  "BR",
	"+56":  "CL",
	"+57":  "CO",
	"+60":  "MY",
	"+61":  "AU",
	"+62":  "ID",
	"+63":  "PH",
	"+64":  "NZ",
	"+65":  "SG",
	"+66":  "TH",
	"+81":  "JP",
	"+82":  "KR",
	"+84":  "VN",
	"+86":  "CN",
	"+90":  "TR",
	"+91":  "IN",
	"+92":  "PK",
	"+351": "PT",
	"+352": "LU",
	"+353": "IE",
	"+354": "IS",
	"+358": "FI",
	"+420": "CZ",
	"+421": "SK",
	"+966": "SA",
	"+971": "AE",
	"+972": "IL",
}

// CountryFromDialCode resolves a dialing prefix (e.g. "+46") to its ISO-2
// country code. Unmapped prefixes return "" — silently, by contract.
func CountryFromDialCode(code string) string {
	return dialCodeToISO2[code]
}
