// Package language holds the catalog of languages the translation endpoint
// accepts. The catalog is static reference data embedded at build time.
package language

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Language is an immutable value identifying a supported language.
// Two languages are equal when their ISO codes match.
type Language struct {
	FullName string `json:"fullName"`
	ISO639   string `json:"iso639"`
}

// Auto is the sentinel used to request server-side language detection.
// It is valid only as a source language.
var Auto = Language{FullName: "Automatic", ISO639: "auto"}

// Equal reports whether both values denote the same language.
func (l Language) Equal(other Language) bool {
	return l.ISO639 == other.ISO639
}

// IsAuto reports whether l is the auto-detect sentinel.
func (l Language) IsAuto() bool {
	return l.ISO639 == Auto.ISO639
}

func (l Language) String() string {
	return fmt.Sprintf("%s (%s)", l.FullName, l.ISO639)
}

//go:embed languages.json
var catalogJSON []byte

var byISO map[string]Language

func init() {
	var list []Language
	if err := json.Unmarshal(catalogJSON, &list); err != nil {
		panic(fmt.Sprintf("language: bad embedded catalog: %v", err))
	}
	byISO = make(map[string]Language, len(list)+1)
	for _, l := range list {
		byISO[l.ISO639] = l
	}
	byISO[Auto.ISO639] = Auto
}

// FromISO looks up a catalog entry by ISO code. Matching is case-insensitive
// except for the region suffix of the two Chinese variants, which the
// endpoint expects verbatim.
func FromISO(code string) (Language, bool) {
	if l, ok := byISO[code]; ok {
		return l, true
	}
	l, ok := byISO[strings.ToLower(code)]
	return l, ok
}

// Supported reports whether l is in the catalog (the auto sentinel counts).
func Supported(l Language) bool {
	_, ok := byISO[l.ISO639]
	return ok
}

// All returns the catalog sorted by full name, excluding the auto sentinel.
func All() []Language {
	list := make([]Language, 0, len(byISO)-1)
	for _, l := range byISO {
		if l.IsAuto() {
			continue
		}
		list = append(list, l)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].FullName < list[j].FullName })
	return list
}
