package normalization

import (
	"regexp"
	"time"

	"github.com/Cour-de-cassation/juritj-collect/internal/decisions"
)

var (
	jurisdictionIDPattern = regexp.MustCompile(`^TJ[0-9]{5}$`)
	registerPattern       = regexp.MustCompile(`^[0-9A-Za-z]$`)
	roleNumberPattern     = regexp.MustCompile(`^[0-9]{2}/[0-9]{5}$`)
	decisionDatePattern   = regexp.MustCompile(`^[0-9]{8}$`)
	instructionPattern    = regexp.MustCompile(`^[0-9A-Za-z]{10}$`)
)

// GenerateUniqueID derives the deterministic decision identifier from
// metadata by concatenating the jurisdiction identifier, register
// number, role number, decision date, and, when present, the
// instruction-measure number. Identical metadata always yields the
// identical identifier. A missing or malformed mandatory field returns
// a ValidationError.
func GenerateUniqueID(meta decisions.Metadata) (string, error) {
	if !jurisdictionIDPattern.MatchString(meta.IDJuridiction) {
		return "", &ValidationError{Field: "idJuridiction", Reason: "must match TJ followed by 5 digits"}
	}
	if !registerPattern.MatchString(meta.NumeroRegistre) {
		return "", &ValidationError{Field: "numeroRegistre", Reason: "must be a single alphanumeric character"}
	}
	if !roleNumberPattern.MatchString(meta.NumeroRoleGeneral) {
		return "", &ValidationError{Field: "numeroRoleGeneral", Reason: "must match NN/NNNNN"}
	}
	if !decisionDatePattern.MatchString(meta.DateDecision) {
		return "", &ValidationError{Field: "dateDecision", Reason: "must be 8 digits (YYYYMMDD)"}
	}
	if _, err := time.Parse("20060102", meta.DateDecision); err != nil {
		return "", &ValidationError{Field: "dateDecision", Reason: "not a valid calendar date"}
	}

	id := meta.IDJuridiction + meta.NumeroRegistre + meta.NumeroRoleGeneral + meta.DateDecision

	if meta.NumeroMesureInstruction != "" {
		if !instructionPattern.MatchString(meta.NumeroMesureInstruction) {
			return "", &ValidationError{Field: "numeroMesureInstruction", Reason: "must be 10 alphanumeric characters"}
		}
		id += meta.NumeroMesureInstruction
	}

	return id, nil
}
