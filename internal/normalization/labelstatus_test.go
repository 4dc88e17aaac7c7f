package normalization_test

import (
	"errors"
	"testing"

	"github.com/Cour-de-cassation/juritj-collect/internal/decisions"
	"github.com/Cour-de-cassation/juritj-collect/internal/normalization"
)

func testLists() normalization.CodeLists {
	return normalization.NewCodeLists(
		[]string{"27A", "27B"},
		[]string{"14A", "14B"},
		[]string{"0aA", "55B"},
	)
}

func classifiable() decisions.Metadata {
	return decisions.Metadata{
		DateCreation: "2023-01-10T08:00:00Z",
		DateDecision: "20230105",
		Public:       true,
		CodeNAC:      "88F",
		CodeDecision: "0aA",
	}
}

func TestComputeLabelStatus(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*decisions.Metadata)
		want   decisions.LabelStatus
	}{
		{
			name:   "well formed decision is to be treated",
			mutate: func(m *decisions.Metadata) {},
			want:   decisions.LabelToBeTreated,
		},
		{
			name: "decision date one day after creation",
			mutate: func(m *decisions.Metadata) {
				m.DateDecision = "20230111"
			},
			want: decisions.LabelIgnoredDateIncoherente,
		},
		{
			name: "date order rule wins over non public",
			mutate: func(m *decisions.Metadata) {
				m.DateDecision = "20230111"
				m.Public = false
			},
			want: decisions.LabelIgnoredDateIncoherente,
		},
		{
			name: "non public decision",
			mutate: func(m *decisions.Metadata) {
				m.Public = false
			},
			want: decisions.LabelIgnoredNonPublique,
		},
		{
			name: "decision seven months before creation",
			mutate: func(m *decisions.Metadata) {
				m.DateDecision = "20220630"
			},
			want: decisions.LabelIgnoredDateIncoherente,
		},
		{
			name: "decision exactly six months before creation passes",
			mutate: func(m *decisions.Metadata) {
				m.DateDecision = "20220701"
			},
			want: decisions.LabelToBeTreated,
		},
		{
			name: "partially public NAC code",
			mutate: func(m *decisions.Metadata) {
				m.CodeNAC = "14A"
			},
			want: decisions.LabelIgnoredPartiellementPublique,
		},
		{
			name: "not public NAC code",
			mutate: func(m *decisions.Metadata) {
				m.CodeNAC = "27B"
			},
			want: decisions.LabelIgnoredNACNonPublique,
		},
		{
			name: "decision code not transmissible",
			mutate: func(m *decisions.Metadata) {
				m.CodeDecision = "9zZ"
			},
			want: decisions.LabelIgnoredNonTransmisCC,
		},
		{
			name: "existing valid label status passes through",
			mutate: func(m *decisions.Metadata) {
				m.LabelStatus = decisions.LabelToBeTreated
			},
			want: decisions.LabelToBeTreated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := classifiable()
			tt.mutate(&meta)

			got, err := normalization.ComputeLabelStatus(meta, testLists(), discardLogger())
			if err != nil {
				t.Fatalf("ComputeLabelStatus() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ComputeLabelStatus() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestComputeLabelStatusMalformedDates(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*decisions.Metadata)
	}{
		{
			name: "malformed creation date",
			mutate: func(m *decisions.Metadata) {
				m.DateCreation = "not-a-date"
			},
		},
		{
			name: "empty decision date",
			mutate: func(m *decisions.Metadata) {
				m.DateDecision = ""
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := classifiable()
			tt.mutate(&meta)

			_, err := normalization.ComputeLabelStatus(meta, testLists(), discardLogger())
			if err == nil {
				t.Fatal("expected error, got nil")
			}

			var ve *normalization.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("error type = %T, want *ValidationError", err)
			}
		})
	}
}
