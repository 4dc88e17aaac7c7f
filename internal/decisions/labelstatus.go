package decisions

// LabelStatus is the publication-eligibility outcome assigned during
// normalization. Ignored statuses are terminal for downstream label
// processing; the decision record itself is still persisted.
type LabelStatus string

const (
	LabelToBeTreated                  LabelStatus = "toBeTreated"
	LabelIgnoredDateIncoherente       LabelStatus = "ignored_dateDecisionIncoherente"
	LabelIgnoredNonPublique           LabelStatus = "ignored_decisionNonPublique"
	LabelIgnoredPartiellementPublique LabelStatus = "ignored_codeNACdeDecisionPartiellementPublique"
	LabelIgnoredNACNonPublique        LabelStatus = "ignored_codeNACdeDecisionNonPublique"
	LabelIgnoredNonTransmisCC         LabelStatus = "ignored_codeNACnonTransmisCC"
)

// Valid reports whether s is a known label status.
func (s LabelStatus) Valid() bool {
	switch s {
	case LabelToBeTreated,
		LabelIgnoredDateIncoherente,
		LabelIgnoredNonPublique,
		LabelIgnoredPartiellementPublique,
		LabelIgnoredNACNonPublique,
		LabelIgnoredNonTransmisCC:
		return true
	}
	return false
}

// Ignored reports whether s excludes the decision from label processing.
func (s LabelStatus) Ignored() bool {
	return s.Valid() && s != LabelToBeTreated
}
