// Package contract derives a normalized contract type from a posting's title and
// whatever raw contract text the source exposes.
package contract

import (
	"strings"

	"github.com/amishk599/bankradar/internal/textnorm"
)

// Type is the closed set of contract types a posting can carry.
type Type string

const (
	Internship              Type = "internship"
	Apprenticeship          Type = "apprenticeship"
	FixedTerm               Type = "fixed-term"
	Freelance               Type = "freelance"
	InternationalAssignment Type = "international-assignment"
	Permanent               Type = "permanent"
	Unspecified             Type = "unspecified"
)

// Types lists every contract type in display order.
var Types = []Type{Internship, Apprenticeship, FixedTerm, Freelance, InternationalAssignment, Permanent, Unspecified}

type term struct {
	words string
	typ   Type
}

// specificTerms are checked in order; the first term present decides.
var specificTerms = []term{
	{"stage", Internship},
	{"internship", Internship},
	{"intern", Internship},
	{"interns", Internship},
	{"stagiaire", Internship},
	{"summer internship", Internship},
	{"alternance", Apprenticeship},
	{"apprentissage", Apprenticeship},
	{"apprenticeship", Apprenticeship},
	{"alternant", Apprenticeship},
	{"alternante", Apprenticeship},
	{"apprenti", Apprenticeship},
	{"apprentie", Apprenticeship},
	{"work study", Apprenticeship},
	{"contrat pro", Apprenticeship},
	{"contrat de professionnalisation", Apprenticeship},
	{"professionalisation", Apprenticeship},
	{"cdd", FixedTerm},
	{"contrat a duree determinee", FixedTerm},
	{"fixed term", FixedTerm},
	{"temporary", FixedTerm},
	{"contract", FixedTerm},
	{"interim", FixedTerm},
	{"freelance", Freelance},
	{"independant", Freelance},
	{"contractor", Freelance},
	{"v i e", InternationalAssignment},
	{"vie", InternationalAssignment},
	{"international assignment", InternationalAssignment},
	{"graduate program", Permanent},
	{"graduate programme", Permanent},
	{"graduate", Permanent},
	{"trainee program", Permanent},
	{"part time", Permanent},
	{"temps partiel", Permanent},
	{"full time", Permanent},
}

var seniorityTerms = []string{
	"analyst", "associate", "vp", "vice president", "director", "managing director",
	"manager", "specialist", "executive", "officer", "engineer", "lead", "head",
}

var permanentTerms = []string{
	"cdi", "contrat a duree indeterminee", "permanent", "regular",
}

// Normalize maps the raw contract text and title to a Type. Terms match whole
// words only, so "review" never reads as "vie" and "international" never as
// "intern".
func Normalize(title, raw string) Type {
	text := " " + textnorm.Words(raw+" "+title) + " "
	if strings.TrimSpace(text) == "" {
		return Unspecified
	}
	has := func(words string) bool {
		return strings.Contains(text, " "+words+" ")
	}

	for _, t := range specificTerms {
		if has(t.words) {
			return t.typ
		}
	}
	for _, w := range seniorityTerms {
		if has(w) {
			return Permanent
		}
	}
	for _, w := range permanentTerms {
		if has(w) {
			return Permanent
		}
	}
	return Unspecified
}

// Valid reports whether t is one of the known contract types.
func (t Type) Valid() bool {
	for _, known := range Types {
		if t == known {
			return true
		}
	}
	return false
}
