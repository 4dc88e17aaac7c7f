package decisions

import (
	"encoding/json"
	"net/url"

	"github.com/Cour-de-cassation/juritj-collect/pkg/query"
	"github.com/Cour-de-cassation/juritj-collect/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "decisions", "d").
	Project("id", "IDDecision").
	Project("jurisdiction_id", "IDJuridiction").
	Project("jurisdiction_name", "NomJuridiction").
	Project("register_number", "NumeroRegistre").
	Project("role_number", "NumeroRoleGeneral").
	Project("instruction_number", "NumeroMesureInstruction").
	Project("service_code", "CodeService").
	Project("service_label", "LibelleService").
	Project("decision_date", "DateDecision").
	Project("creation_date", "DateCreation").
	Project("decision_code", "CodeDecision").
	Project("decision_code_label", "LibelleCodeDecision").
	Project("nac_code", "CodeNAC").
	Project("nac_label", "LibelleNAC").
	Project("nature_code", "CodeNature").
	Project("nature_label", "LibelleNature").
	Project("public", "Public").
	Project("occultation_recommended", "RecommandationOccultation").
	Project("label_status", "LabelStatus").
	Project("parties", "Parties").
	Project("associated_decision", "DecisionAssociee").
	Project("filename_source", "FilenameSource").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

var defaultSort = query.SortField{
	Field:      "CreatedAt",
	Descending: true,
}

// Filters contains optional filtering criteria for decision queries.
// Nil fields are ignored. LabelStatus, IDJuridiction, CodeNAC, and Public
// use exact matching; FilenameSource uses case-insensitive contains matching.
type Filters struct {
	LabelStatus    *string `json:"labelStatus,omitempty"`
	IDJuridiction  *string `json:"idJuridiction,omitempty"`
	CodeNAC        *string `json:"codeNAC,omitempty"`
	Public         *bool   `json:"public,omitempty"`
	FilenameSource *string `json:"filenameSource,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereEquals("LabelStatus", f.LabelStatus).
		WhereEquals("IDJuridiction", f.IDJuridiction).
		WhereEquals("CodeNAC", f.CodeNAC).
		WhereEquals("Public", f.Public).
		WhereContains("FilenameSource", f.FilenameSource)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if v := values.Get("labelStatus"); v != "" {
		f.LabelStatus = &v
	}

	if v := values.Get("idJuridiction"); v != "" {
		f.IDJuridiction = &v
	}

	if v := values.Get("codeNAC"); v != "" {
		f.CodeNAC = &v
	}

	if v := values.Get("public"); v != "" {
		b := v == "true"
		f.Public = &b
	}

	if v := values.Get("filenameSource"); v != "" {
		f.FilenameSource = &v
	}

	return f
}

func scanDecision(s repository.Scanner) (Decision, error) {
	var (
		d          Decision
		parties    []byte
		associated []byte
	)

	err := s.Scan(
		&d.IDDecision,
		&d.IDJuridiction,
		&d.NomJuridiction,
		&d.NumeroRegistre,
		&d.NumeroRoleGeneral,
		&d.NumeroMesureInstruction,
		&d.CodeService,
		&d.LibelleService,
		&d.DateDecision,
		&d.DateCreation,
		&d.CodeDecision,
		&d.LibelleCodeDecision,
		&d.CodeNAC,
		&d.LibelleNAC,
		&d.CodeNature,
		&d.LibelleNature,
		&d.Public,
		&d.RecommandationOccultation,
		&d.LabelStatus,
		&parties,
		&associated,
		&d.FilenameSource,
		&d.CreatedAt,
		&d.UpdatedAt,
	)
	if err != nil {
		return d, err
	}

	if len(parties) > 0 {
		if err := json.Unmarshal(parties, &d.Parties); err != nil {
			return d, err
		}
	}
	if len(associated) > 0 {
		if err := json.Unmarshal(associated, &d.DecisionAssociee); err != nil {
			return d, err
		}
	}

	return d, nil
}
