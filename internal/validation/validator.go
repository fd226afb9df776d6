package validation

import (
	"regexp"
	"strings"

	"vidlearn/internal/domain"
)

var (
	videoIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)
	difficulties   = []string{"easy", "medium", "hard"}
	tiers          = []string{string(domain.TierQuick), string(domain.TierFull)}
)

// Validator checks generation requests before any network call is made.
type Validator struct{}

func NewValidator() *Validator {
	return &Validator{}
}

// ValidateVideoID accepts exactly eleven characters from [A-Za-z0-9_-].
func (v *Validator) ValidateVideoID(videoID string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(videoID) == "" {
		errors = append(errors, domain.NewMissingFieldError("videoId"))
	} else if !IsValidVideoID(videoID) {
		errors = append(errors, domain.NewInvalidFormatError("videoId", videoID))
	}

	return errors
}

// ValidateQuizRequest checks the video id plus the optional tier and difficulty.
func (v *Validator) ValidateQuizRequest(videoID, tier, difficulty string) domain.ValidationErrors {
	errors := v.ValidateVideoID(videoID)

	if tier != "" && !contains(tiers, tier) {
		errors = append(errors, domain.NewUnsupportedValueError("tier", tier, tiers...))
	}
	if ve := v.ValidateDifficulty(difficulty); len(ve) > 0 {
		errors = append(errors, ve...)
	}

	return errors
}

// ValidateDifficulty allows an empty value, which means the default.
func (v *Validator) ValidateDifficulty(difficulty string) domain.ValidationErrors {
	if difficulty == "" || contains(difficulties, strings.ToLower(difficulty)) {
		return nil
	}
	return domain.ValidationErrors{domain.NewUnsupportedValueError("difficulty", difficulty, difficulties...)}
}

func (v *Validator) ValidateKind(kind string) domain.ValidationErrors {
	if domain.ContentKind(kind).Valid() {
		return nil
	}
	allowed := make([]string, 0, len(domain.AllKinds))
	for _, k := range domain.AllKinds {
		allowed = append(allowed, k.String())
	}
	return domain.ValidationErrors{domain.NewUnsupportedValueError("kind", kind, allowed...)}
}

func IsValidVideoID(s string) bool {
	return videoIDPattern.MatchString(s)
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
