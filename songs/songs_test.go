package songs

import (
	"testing"

	"twohtsounds/models"
)

func TestNormalizeSongDefaultsAndTrims(t *testing.T) {
	song := models.Song{
		Title: "  Midnight Train  ",
		Musicians: []models.SongMusician{
			{Name: " Jane ", Instrument: " Guitar "},
			{Name: "", Instrument: ""},
		},
	}

	if err := normalizeSong(&song); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if song.Title != "Midnight Train" {
		t.Errorf("title not trimmed: %q", song.Title)
	}
	if song.IsOriginal == nil || !*song.IsOriginal {
		t.Error("isOriginal must default to true")
	}
	if len(song.Musicians) != 1 {
		t.Fatalf("blank credit rows must be dropped, got %v", song.Musicians)
	}
	if song.Musicians[0] != (models.SongMusician{Name: "Jane", Instrument: "Guitar"}) {
		t.Errorf("credit not trimmed: %+v", song.Musicians[0])
	}
}

func TestNormalizeSongKeepsExplicitCover(t *testing.T) {
	cover := false
	song := models.Song{Title: "Yesterday", IsOriginal: &cover}
	if err := normalizeSong(&song); err != nil {
		t.Fatal(err)
	}
	if *song.IsOriginal {
		t.Error("explicit isOriginal=false must survive normalization")
	}
}

func TestNormalizeSongRejectsBadInput(t *testing.T) {
	noTitle := models.Song{Title: "   "}
	if err := normalizeSong(&noTitle); err == nil {
		t.Error("blank title must be rejected")
	}

	halfCredit := models.Song{
		Title:     "Riff",
		Musicians: []models.SongMusician{{Name: "Jane", Instrument: ""}},
	}
	if err := normalizeSong(&halfCredit); err == nil {
		t.Error("credit with missing instrument must be rejected")
	}
}
