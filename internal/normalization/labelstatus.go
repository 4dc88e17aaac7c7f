package normalization

import (
	"log/slog"
	"time"

	"github.com/Cour-de-cassation/juritj-collect/internal/decisions"
)

// ComputeLabelStatus classifies a decision's publication eligibility.
// Rules are evaluated in order and the first match wins:
//
//  1. decision date strictly after creation date
//  2. decision flagged non-public
//  3. decision month more than six months before creation month
//  4. NAC code marks the decision partially public
//  5. NAC code marks the decision not public
//  6. decision code not transmissible to the Cour de cassation
//
// When no rule matches, a pre-existing valid label status passes
// through; otherwise the decision is marked to be treated. Malformed
// dates return a ValidationError since the date rules cannot be
// evaluated without them.
func ComputeLabelStatus(
	meta decisions.Metadata,
	lists CodeLists,
	logger *slog.Logger,
) (decisions.LabelStatus, error) {
	dateCreation, err := parseMetadataDate(meta.DateCreation)
	if err != nil {
		return "", &ValidationError{Field: "dateCreation", Reason: "not a parseable date"}
	}

	dateDecision, err := parseMetadataDate(meta.DateDecision)
	if err != nil {
		return "", &ValidationError{Field: "dateDecision", Reason: "not a parseable date"}
	}

	if dateDecision.After(dateCreation) {
		logger.Warn("decision date is after creation date",
			"rule", "dateOrder", "labelStatus", decisions.LabelIgnoredDateIncoherente)
		return decisions.LabelIgnoredDateIncoherente, nil
	}

	if !meta.Public {
		logger.Info("decision is not public",
			"rule", "public", "labelStatus", decisions.LabelIgnoredNonPublique)
		return decisions.LabelIgnoredNonPublique, nil
	}

	if olderThanSixMonths(dateCreation, dateDecision) {
		logger.Warn("decision date is more than six months before creation date",
			"rule", "dateAge", "labelStatus", decisions.LabelIgnoredDateIncoherente)
		return decisions.LabelIgnoredDateIncoherente, nil
	}

	if lists.NACPartiallyPublic(meta.CodeNAC) {
		logger.Info("NAC code marks the decision partially public",
			"rule", "nacPartiallyPublic", "codeNAC", meta.CodeNAC,
			"labelStatus", decisions.LabelIgnoredPartiellementPublique)
		return decisions.LabelIgnoredPartiellementPublique, nil
	}

	if lists.NACNotPublic(meta.CodeNAC) {
		logger.Info("NAC code marks the decision not public",
			"rule", "nacNotPublic", "codeNAC", meta.CodeNAC,
			"labelStatus", decisions.LabelIgnoredNACNonPublique)
		return decisions.LabelIgnoredNACNonPublique, nil
	}

	if !lists.Transmissible(meta.CodeDecision) {
		logger.Warn("decision code is not transmissible",
			"rule", "transmissible", "codeDecision", meta.CodeDecision,
			"labelStatus", decisions.LabelIgnoredNonTransmisCC)
		return decisions.LabelIgnoredNonTransmisCC, nil
	}

	if meta.LabelStatus.Valid() {
		return meta.LabelStatus, nil
	}
	return decisions.LabelToBeTreated, nil
}

// olderThanSixMonths compares at month granularity: the day of month
// is ignored on both sides.
func olderThanSixMonths(dateCreation, dateDecision time.Time) bool {
	decisionMonth := time.Date(dateDecision.Year(), dateDecision.Month(), 1, 0, 0, 0, 0, time.UTC)
	threshold := time.Date(dateCreation.Year(), dateCreation.Month(), 1, 0, 0, 0, 0, time.UTC).
		AddDate(0, -6, 0)
	return decisionMonth.Before(threshold)
}

var metadataDateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"20060102",
}

func parseMetadataDate(value string) (time.Time, error) {
	var err error
	for _, layout := range metadataDateLayouts {
		var t time.Time
		if t, err = time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, err
}
