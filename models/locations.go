package models

import "strings"

// Port сопоставление одного порта с id во всех операторских API
type Port struct {
	Label        string // человекочитаемое название
	SealinkName  string // Sealink работает с названиями
	MakruzzID    string // строковый id локации Makruzz
	GreenOceanID int    // числовой id локации Green Ocean
}

// ports справочник портов Андаманских островов.
// Алиасы покрывают официальные переименования (Havelock -> Swaraj Dweep, Neil -> Shaheed Dweep).
var ports = map[string]Port{
	"port-blair": {Label: "Port Blair", SealinkName: "Port Blair", MakruzzID: "1", GreenOceanID: 1},
	"havelock":   {Label: "Havelock", SealinkName: "Havelock", MakruzzID: "2", GreenOceanID: 2},
	"neil":       {Label: "Neil Island", SealinkName: "Neil Island", MakruzzID: "3", GreenOceanID: 3},
	"baratang":   {Label: "Baratang", SealinkName: "Baratang", MakruzzID: "4", GreenOceanID: 4},
}

var portAliases = map[string]string{
	"portblair":     "port-blair",
	"port blair":    "port-blair",
	"swaraj-dweep":  "havelock",
	"swaraj dweep":  "havelock",
	"shaheed-dweep": "neil",
	"shaheed dweep": "neil",
	"neil-island":   "neil",
	"neil island":   "neil",
}

// ResolvePort находит порт по слагу или алиасу
func ResolvePort(name string) (Port, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := portAliases[key]; ok {
		key = canonical
	}
	p, ok := ports[key]
	return p, ok
}
