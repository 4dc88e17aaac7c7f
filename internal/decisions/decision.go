// Package decisions implements the judicial decision domain for JuriTJ Collect.
// It provides the metadata contract shared with sending jurisdictions, the
// intake endpoint that stages raw decisions, and the PostgreSQL-backed
// metadata store consumed by the normalization batch.
package decisions

import (
	"fmt"
	"time"
)

// Metadata carries the attributes transmitted alongside a decision.
// JSON field names follow the wire contract with the sending jurisdictions.
type Metadata struct {
	IDDecision                string              `json:"idDecision,omitempty"`
	IDJuridiction             string              `json:"idJuridiction"`
	NomJuridiction            string              `json:"nomJuridiction"`
	NumeroRegistre            string              `json:"numeroRegistre"`
	NumeroRoleGeneral         string              `json:"numeroRoleGeneral"`
	NumeroMesureInstruction   string              `json:"numeroMesureInstruction,omitempty"`
	CodeService               string              `json:"codeService"`
	LibelleService            string              `json:"libelleService"`
	DateDecision              string              `json:"dateDecision"`
	DateCreation              string              `json:"dateCreation,omitempty"`
	CodeDecision              string              `json:"codeDecision"`
	LibelleCodeDecision       string              `json:"libelleCodeDecision"`
	CodeNAC                   string              `json:"codeNAC"`
	LibelleNAC                string              `json:"libelleNAC"`
	CodeNature                string              `json:"codeNature"`
	LibelleNature             string              `json:"libelleNature"`
	Public                    bool                `json:"public"`
	RecommandationOccultation bool                `json:"recommandationOccultation"`
	LabelStatus               LabelStatus         `json:"labelStatus,omitempty"`
	Parties                   []Party             `json:"parties"`
	DecisionAssociee          *AssociatedDecision `json:"decisionAssociee,omitempty"`
	FilenameSource            string              `json:"filenameSource,omitempty"`
}

// Party identifies a party to the decision.
type Party struct {
	Type     string `json:"type"`
	Nom      string `json:"nom"`
	Prenom   string `json:"prenom,omitempty"`
	Civilite string `json:"civilite,omitempty"`
	Fonction string `json:"fonction,omitempty"`
}

// AssociatedDecision references a related decision from the same case.
type AssociatedDecision struct {
	NumeroRegistre          string `json:"numeroRegistre"`
	NumeroRoleGeneral       string `json:"numeroRoleGeneral"`
	IDJuridiction           string `json:"idJuridiction"`
	Date                    string `json:"date"`
	NumeroMesureInstruction string `json:"numeroMesureInstruction,omitempty"`
}

// RawDecision is the JSON envelope staged in the raw container by the
// intake endpoint and drained by the normalization batch.
type RawDecision struct {
	DecisionIntegre string   `json:"decisionIntegre"`
	Metadonnees     Metadata `json:"metadonnees"`
}

// NormalizedDecision is the envelope written to the normalized container
// and returned by the normalization batch.
type NormalizedDecision struct {
	DecisionNormalisee string   `json:"decisionNormalisee"`
	Metadonnees        Metadata `json:"metadonnees"`
}

// Decision is a persisted decision metadata record.
type Decision struct {
	Metadata
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CollectCommand carries the data needed to stage a newly received decision.
// Data holds the raw document bytes as transmitted by the jurisdiction.
type CollectCommand struct {
	Data        []byte
	Filename    string
	Metadonnees Metadata
}

// Validate checks that all mandatory intake fields are present.
func (m *Metadata) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"idJuridiction", m.IDJuridiction},
		{"nomJuridiction", m.NomJuridiction},
		{"numeroRegistre", m.NumeroRegistre},
		{"numeroRoleGeneral", m.NumeroRoleGeneral},
		{"codeService", m.CodeService},
		{"dateDecision", m.DateDecision},
		{"codeDecision", m.CodeDecision},
		{"codeNAC", m.CodeNAC},
		{"codeNature", m.CodeNature},
	}

	for _, f := range required {
		if f.value == "" {
			return fmt.Errorf("%w: %s", ErrMissingField, f.name)
		}
	}

	if len(m.Parties) == 0 {
		return fmt.Errorf("%w: parties", ErrMissingField)
	}

	return nil
}
