package normalization_test

import (
	"errors"
	"testing"

	"github.com/Cour-de-cassation/juritj-collect/internal/decisions"
	"github.com/Cour-de-cassation/juritj-collect/internal/normalization"
)

func validMetadata() decisions.Metadata {
	return decisions.Metadata{
		IDJuridiction:           "TJ75011",
		NumeroRegistre:          "A",
		NumeroRoleGeneral:       "01/12345",
		DateDecision:            "20221121",
		NumeroMesureInstruction: "0123456789",
	}
}

func TestGenerateUniqueID(t *testing.T) {
	id, err := normalization.GenerateUniqueID(validMetadata())
	if err != nil {
		t.Fatalf("GenerateUniqueID() error = %v", err)
	}

	want := "TJ75011A01/12345202211210123456789"
	if id != want {
		t.Errorf("GenerateUniqueID() = %q, want %q", id, want)
	}
}

func TestGenerateUniqueIDWithoutInstructionNumber(t *testing.T) {
	meta := validMetadata()
	meta.NumeroMesureInstruction = ""

	id, err := normalization.GenerateUniqueID(meta)
	if err != nil {
		t.Fatalf("GenerateUniqueID() error = %v", err)
	}

	want := "TJ75011A01/1234520221121"
	if id != want {
		t.Errorf("GenerateUniqueID() = %q, want %q", id, want)
	}
}

func TestGenerateUniqueIDDeterministic(t *testing.T) {
	first, err := normalization.GenerateUniqueID(validMetadata())
	if err != nil {
		t.Fatalf("first call error = %v", err)
	}
	second, err := normalization.GenerateUniqueID(validMetadata())
	if err != nil {
		t.Fatalf("second call error = %v", err)
	}

	if first != second {
		t.Errorf("identifier not deterministic: %q != %q", first, second)
	}
}

func TestGenerateUniqueIDValidation(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*decisions.Metadata)
		wantField string
	}{
		{
			name:      "missing jurisdiction",
			mutate:    func(m *decisions.Metadata) { m.IDJuridiction = "" },
			wantField: "idJuridiction",
		},
		{
			name:      "jurisdiction wrong prefix",
			mutate:    func(m *decisions.Metadata) { m.IDJuridiction = "CA75011" },
			wantField: "idJuridiction",
		},
		{
			name:      "jurisdiction wrong length",
			mutate:    func(m *decisions.Metadata) { m.IDJuridiction = "TJ750" },
			wantField: "idJuridiction",
		},
		{
			name:      "register too long",
			mutate:    func(m *decisions.Metadata) { m.NumeroRegistre = "AB" },
			wantField: "numeroRegistre",
		},
		{
			name:      "register missing",
			mutate:    func(m *decisions.Metadata) { m.NumeroRegistre = "" },
			wantField: "numeroRegistre",
		},
		{
			name:      "role number malformed",
			mutate:    func(m *decisions.Metadata) { m.NumeroRoleGeneral = "1/12345" },
			wantField: "numeroRoleGeneral",
		},
		{
			name:      "decision date not numeric",
			mutate:    func(m *decisions.Metadata) { m.DateDecision = "2022-1-21" },
			wantField: "dateDecision",
		},
		{
			name:      "decision date not a calendar date",
			mutate:    func(m *decisions.Metadata) { m.DateDecision = "20221332" },
			wantField: "dateDecision",
		},
		{
			name:      "instruction number wrong length",
			mutate:    func(m *decisions.Metadata) { m.NumeroMesureInstruction = "012345" },
			wantField: "numeroMesureInstruction",
		},
		{
			name:      "instruction number bad characters",
			mutate:    func(m *decisions.Metadata) { m.NumeroMesureInstruction = "01234-6789" },
			wantField: "numeroMesureInstruction",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := validMetadata()
			tt.mutate(&meta)

			_, err := normalization.GenerateUniqueID(meta)
			if err == nil {
				t.Fatal("expected error, got nil")
			}

			var ve *normalization.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("error type = %T, want *ValidationError", err)
			}
			if ve.Field != tt.wantField {
				t.Errorf("field = %q, want %q", ve.Field, tt.wantField)
			}
		})
	}
}
