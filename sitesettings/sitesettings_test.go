package sitesettings

import (
	"errors"
	"testing"

	"twohtsounds/apperrors"
	"twohtsounds/models"
)

func TestDefaultSettings(t *testing.T) {
	defaults := DefaultSettings()

	if defaults.HeroTitle != "2HTSounds" {
		t.Errorf("heroTitle default = %q", defaults.HeroTitle)
	}
	if err := validateSettings(&defaults); err != nil {
		t.Errorf("defaults must pass their own validation: %v", err)
	}
}

func TestValidateSettingsRequiresAllContentFields(t *testing.T) {
	mutations := map[string]func(*models.SiteSettings){
		"heroTitle":        func(s *models.SiteSettings) { s.HeroTitle = "" },
		"heroDescription":  func(s *models.SiteSettings) { s.HeroDescription = "  " },
		"aboutSectionText": func(s *models.SiteSettings) { s.AboutSectionText = "" },
		"aboutPageContent": func(s *models.SiteSettings) { s.AboutPageContent = "\n" },
	}

	for field, mutate := range mutations {
		settings := DefaultSettings()
		mutate(&settings)

		err := validateSettings(&settings)
		var ve *apperrors.ValidationError
		if !errors.As(err, &ve) {
			t.Errorf("blank %s: expected ValidationError, got %v", field, err)
		}
	}
}

func TestValidateSettingsContactFieldsOptional(t *testing.T) {
	settings := DefaultSettings()
	settings.ContactEmail = ""
	settings.ContactPhone = ""
	if err := validateSettings(&settings); err != nil {
		t.Errorf("contact fields are optional: %v", err)
	}
}
