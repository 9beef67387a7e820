// Package match implements the vehicle lookup core: make-alias
// normalization, year-range resolution, record matching, and free-text
// query parsing.
package match

import "strings"

// makeAliases maps informal spellings and nicknames to canonical make
// names. Curated from the tickets the pricing team sees most often.
var makeAliases = map[string]string{
	// Canonical names that plain first-letter capitalization would
	// mangle. Keeping them here makes NormalizeMake idempotent.
	"bmw":             "BMW",
	"gmc":             "GMC",
	"mercedes-benz":   "Mercedes-Benz",
	"land rover":      "Land Rover",
	"rolls-royce":     "Rolls-Royce",
	"alfa romeo":      "Alfa Romeo",
	"aston martin":    "Aston Martin",
	"harley-davidson": "Harley-Davidson",

	"chevy":         "Chevrolet",
	"chev":          "Chevrolet",
	"chevorlet":     "Chevrolet",
	"chevrolete":    "Chevrolet",
	"vw":            "Volkswagen",
	"volkswagon":    "Volkswagen",
	"volkwagen":     "Volkswagen",
	"mercedes":      "Mercedes-Benz",
	"benz":          "Mercedes-Benz",
	"mercedesbenz":  "Mercedes-Benz",
	"mercedez":      "Mercedes-Benz",
	"mb":            "Mercedes-Benz",
	"beemer":        "BMW",
	"bimmer":        "BMW",
	"landrover":     "Land Rover",
	"land-rover":    "Land Rover",
	"rangerover":    "Land Rover",
	"range rover":   "Land Rover",
	"alfa":          "Alfa Romeo",
	"alfaromeo":     "Alfa Romeo",
	"aston":         "Aston Martin",
	"astonmartin":   "Aston Martin",
	"rolls":         "Rolls-Royce",
	"rollsroyce":    "Rolls-Royce",
	"rolls royce":   "Rolls-Royce",
	"gmc truck":     "GMC",
	"caddy":         "Cadillac",
	"cadilac":       "Cadillac",
	"cady":          "Cadillac",
	"linc":          "Lincoln",
	"lincon":        "Lincoln",
	"toyta":         "Toyota",
	"toyoda":        "Toyota",
	"toyata":        "Toyota",
	"hyundia":       "Hyundai",
	"hundai":        "Hyundai",
	"hyndai":        "Hyundai",
	"hyundi":        "Hyundai",
	"kia motors":    "Kia",
	"nisan":         "Nissan",
	"nissian":       "Nissan",
	"datsun":        "Nissan",
	"infinity":      "Infiniti",
	"mitsu":         "Mitsubishi",
	"mitsubushi":    "Mitsubishi",
	"mitsibishi":    "Mitsubishi",
	"suzy":          "Suzuki",
	"subie":         "Subaru",
	"subura":        "Subaru",
	"suburu":        "Subaru",
	"porche":        "Porsche",
	"porshe":        "Porsche",
	"porsch":        "Porsche",
	"jag":           "Jaguar",
	"jagwar":        "Jaguar",
	"lambo":         "Lamborghini",
	"masarati":      "Maserati",
	"maseratti":     "Maserati",
	"ferarri":       "Ferrari",
	"ferari":        "Ferrari",
	"tesla motors":  "Tesla",
	"chrystler":     "Chrysler",
	"crysler":       "Chrysler",
	"chrysler corp": "Chrysler",
	"dodge ram":     "Ram",
	"harley":        "Harley-Davidson",
	"hd":            "Harley-Davidson",
	"olds":          "Oldsmobile",
	"oldsmobil":     "Oldsmobile",
	"pontiac gm":    "Pontiac",
	"vetteville":    "Chevrolet",
	"acura honda":   "Acura",
}

// NormalizeMake maps an informal make spelling to its canonical name.
// Unrecognized input falls back to capitalizing the first letter of the
// trimmed text. It never fails: every input yields some make string.
func NormalizeMake(input string) string {
	key := strings.ToLower(strings.TrimSpace(input))
	if canonical, ok := makeAliases[key]; ok {
		return canonical
	}
	if key == "" {
		return ""
	}
	return strings.ToUpper(key[:1]) + key[1:]
}
