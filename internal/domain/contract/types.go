// Package contract holds the audit domain model: risk and safe items, the
// aggregate analysis, its validation against the output schema, and the
// deterministic scoring rules.
package contract

import (
	"strings"

	"github.com/Gopesh111/TrueClause/pkg/errors"
)

// RiskLevel is the severity of a deviation.
type RiskLevel string

const (
	RiskLevelHigh   RiskLevel = "HIGH"
	RiskLevelMedium RiskLevel = "MEDIUM"
)

// ParseRiskLevel maps s case-insensitively onto a canonical RiskLevel.
func ParseRiskLevel(s string) (RiskLevel, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(RiskLevelHigh):
		return RiskLevelHigh, true
	case string(RiskLevelMedium):
		return RiskLevelMedium, true
	default:
		return "", false
	}
}

func (l RiskLevel) String() string { return string(l) }

// IsHigh compares case-insensitively; providers are free in their casing.
func (l RiskLevel) IsHigh() bool {
	return strings.EqualFold(strings.TrimSpace(string(l)), string(RiskLevelHigh))
}

// IsValid reports whether l names a known level in any letter case.
func (l RiskLevel) IsValid() bool {
	_, ok := ParseRiskLevel(string(l))
	return ok
}

// Canonical returns the upper-case spelling, or l unchanged if unknown.
func (l RiskLevel) Canonical() RiskLevel {
	if c, ok := ParseRiskLevel(string(l)); ok {
		return c
	}
	return l
}

// Category is the area of the signer's interests a deviation affects.
type Category string

const (
	CategoryFinancial Category = "Financial"
	CategoryCareer    Category = "Career"
	CategoryPrivacy   Category = "Privacy"
	CategoryLegal     Category = "Legal"
	CategoryFreedom   Category = "Freedom"
)

var categories = []Category{CategoryFinancial, CategoryCareer, CategoryPrivacy, CategoryLegal, CategoryFreedom}

// Categories returns the enumeration in display order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// ParseCategory maps s case-insensitively onto a canonical Category.
func ParseCategory(s string) (Category, bool) {
	s = strings.TrimSpace(s)
	for _, c := range categories {
		if strings.EqualFold(s, string(c)) {
			return c, true
		}
	}
	return "", false
}

func (c Category) String() string { return string(c) }

// IsValid reports whether c names a known category in any letter case.
func (c Category) IsValid() bool {
	_, ok := ParseCategory(string(c))
	return ok
}

// Language is the language explanatory fields are written in.  Quoted
// clause text always stays in the document's own language.
type Language string

const (
	LanguageEnglish  Language = "English"
	LanguageHindi    Language = "Hindi"
	LanguageHinglish Language = "Hinglish"
)

var languages = []Language{LanguageEnglish, LanguageHindi, LanguageHinglish}

// Languages returns the supported explanation languages.
func Languages() []Language {
	out := make([]Language, len(languages))
	copy(out, languages)
	return out
}

// ParseLanguage maps s case-insensitively onto a supported Language.
func ParseLanguage(s string) (Language, error) {
	s = strings.TrimSpace(s)
	for _, l := range languages {
		if strings.EqualFold(s, string(l)) {
			return l, nil
		}
	}
	return "", errors.Newf(errors.CodeUnsupportedLanguage, "unsupported language %q; expected English, Hindi or Hinglish", s)
}

func (l Language) String() string { return string(l) }

// DocumentType keys a rulebook.  The built-in keys are below; the rule
// catalog is the source of truth for which types exist and their labels.
type DocumentType string

const (
	DocumentEmployment DocumentType = "employment"
	DocumentRental     DocumentType = "rental"
	DocumentFreelance  DocumentType = "freelance"
	DocumentNDA        DocumentType = "nda"
	DocumentToS        DocumentType = "tos"
	DocumentGeneric    DocumentType = "generic"
)

func (d DocumentType) String() string { return string(d) }

//Personal.AI order the ending
