package importer_test

import (
	"errors"
	"strings"
	"testing"

	"spirit11/internal/domain"
	"spirit11/internal/importer"
	"spirit11/internal/stats"
)

const header = "Name,University,Category,Total Runs,Balls Faced,Innings Played,Wickets,Overs Bowled,Runs Conceded\n"

func TestParse(t *testing.T) {
	csv := header +
		"Chamika Chandimal,University of the Visual & Performing Arts,Batsman,530,588,10,0,3,21\n" +
		"Dimuth Dhananjaya,University of the Visual & Performing Arts,All-Rounder,250,208,10,8,40,240\n" +
		"\n" +
		"Danushka Kumara, University of Moratuwa , Bowler , 20, 30, 4, 12, 36, 180\n"

	players, err := importer.ParseString(csv)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(players) != 3 {
		t.Fatalf("got %d players, want 3", len(players))
	}

	first := players[0]
	if first.Category != domain.CategoryBatsman || first.Stats.TotalRuns != 530 || first.Stats.RunsConceded != 21 {
		t.Errorf("first = %+v", first)
	}
	if first.Stats.Value != 650_000 {
		t.Errorf("first value = %d, want 650000", first.Stats.Value)
	}
	if players[2].University != "University of Moratuwa" || players[2].Category != domain.CategoryBowler {
		t.Errorf("fields not trimmed: %+v", players[2])
	}
	for _, p := range players {
		if !stats.Verify(p) {
			t.Errorf("%s: derived stats not computed", p.Name)
		}
	}
}

func TestParseRejectsMalformedRows(t *testing.T) {
	tests := []struct {
		name   string
		row    string
		want   error
		column string
	}{
		{"non-numeric counter", "A,U,Batsman,12x,10,1,0,0,0", importer.ErrNotANumber, "Total Runs"},
		{"empty counter", "A,U,Batsman,12,,1,0,0,0", importer.ErrNotANumber, "Balls Faced"},
		{"negative counter", "A,U,Bowler,12,10,1,-1,0,0", importer.ErrNegative, "Wickets"},
		{"unknown category", "A,U,Keeper,12,10,1,0,0,0", importer.ErrUnknownCategory, "Category"},
		{"missing name", " ,U,Batsman,12,10,1,0,0,0", importer.ErrMissingName, "Name"},
		{"short row", "A,U,Batsman,12,10", importer.ErrColumnCount, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			csv := header + "Ok Player,U,Batsman,1,1,1,0,0,0\n" + tt.row + "\n"
			_, err := importer.ParseString(csv)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
			var rowErr *importer.RowError
			if !errors.As(err, &rowErr) {
				t.Fatalf("err is %T, want *RowError", err)
			}
			if rowErr.Line != 3 || rowErr.Column != tt.column {
				t.Errorf("RowError = line %d column %q, want line 3 column %q", rowErr.Line, rowErr.Column, tt.column)
			}
		})
	}
}

func TestParseEmpty(t *testing.T) {
	for _, in := range []string{"", header, header + "\n\n"} {
		if _, err := importer.ParseString(in); !errors.Is(err, importer.ErrEmpty) {
			t.Errorf("Parse(%q) err = %v, want ErrEmpty", strings.TrimSpace(in), err)
		}
	}
}

func TestParseBrokenQuoting(t *testing.T) {
	_, err := importer.ParseString(header + "\"Unclosed,Uni,Batsman,1,1,1,0,0,0\n")
	if !errors.Is(err, importer.ErrMalformed) {
		t.Fatalf("err = %v, want ErrMalformed", err)
	}
}

func TestParseRepeatedPlayerLastRowWins(t *testing.T) {
	players, err := importer.ParseString(header +
		"Chamika Chandimal,UVPA,Batsman,100,100,2,0,0,0\n" +
		"Danushka Kumara,Moratuwa,Bowler,25,40,3,10,36,198\n" +
		"Chamika Chandimal,UVPA,Batsman,530,588,10,0,3,21\n" +
		"Chamika Chandimal,Kelaniya,Batsman,1,1,1,0,0,0\n")
	if err != nil {
		t.Fatal(err)
	}
	if len(players) != 3 {
		t.Fatalf("got %d players, want 3", len(players))
	}
	if players[0].Name != "Chamika Chandimal" || players[0].University != "UVPA" || players[0].Stats.TotalRuns != 530 {
		t.Errorf("players[0] = %+v, want the later UVPA row", players[0])
	}
	if players[1].Name != "Danushka Kumara" || players[2].University != "Kelaniya" {
		t.Errorf("order changed: %s, %s", players[1].Name, players[2].University)
	}
}
