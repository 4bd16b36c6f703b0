package domain

import "time"

// Tier is the athlete's subscription plan. It drives prompt selection and
// fallback template dispatch.
type Tier string

const (
	TierBasic   Tier = "basic"
	TierPlus    Tier = "plus"
	TierPremium Tier = "premium"
	TierPro     Tier = "pro"
)

func (t Tier) Valid() bool {
	switch t {
	case TierBasic, TierPlus, TierPremium, TierPro:
		return true
	}
	return false
}

// HasGallery reports whether the tier includes the extra-images gallery section.
func (t Tier) HasGallery() bool {
	return t == TierPlus || t == TierPremium || t == TierPro
}

type AmateurStatus string

const (
	StatusAmateur      AmateurStatus = "amateur"
	StatusProfessional AmateurStatus = "professional"
)

// AthleteProfile is the validated generation input. Immutable per request.
type AthleteProfile struct {
	Tier               Tier          `json:"tier" validate:"required,oneof=basic plus premium pro"`
	Sport              string        `json:"sport" validate:"required,notblank"`
	Name               string        `json:"name" validate:"required,notblank"`
	BirthDate          string        `json:"birthDate" validate:"required,notblank"`
	Grade              string        `json:"grade" validate:"required,notblank"`
	Team               string        `json:"team" validate:"required,notblank"`
	Titles             string        `json:"titles" validate:"required,notblank"`
	Contact            string        `json:"contact" validate:"required,notblank"`
	AmateurStatus      AmateurStatus `json:"amateurStatus,omitempty" validate:"omitempty,oneof=amateur professional"`
	PrimaryImageURL    string        `json:"primaryImageUrl" validate:"required,url"`
	StyleHint          string        `json:"styleHint,omitempty"`
	ExtraImageURLs     []string      `json:"extraImageUrls,omitempty" validate:"omitempty,dive,url"`
	BackgroundImageURL string        `json:"backgroundImageUrl,omitempty" validate:"omitempty,url"`
	YouTubeURL         string        `json:"youtubeUrl,omitempty" validate:"omitempty,url"`
	InstagramURL       string        `json:"instagramUrl,omitempty" validate:"omitempty,url"`
	FacebookURL        string        `json:"facebookUrl,omitempty" validate:"omitempty,url"`
}

// Status returns the amateur status, defaulting to professional when absent.
func (p *AthleteProfile) Status() AmateurStatus {
	if p.AmateurStatus == "" {
		return StatusProfessional
	}
	return p.AmateurStatus
}

// GenerationResult is the success payload of a landing-page generation request.
type GenerationResult struct {
	OK             bool   `json:"ok"`
	URL            string `json:"url"`
	ID             string `json:"id"`
	Tier           Tier   `json:"tier"`
	UsedFallback   bool   `json:"usedFallback"`
	VariantID      int    `json:"variantId"`
	BackgroundUsed string `json:"backgroundUsed"`
}

// Artifact is the durable record of one generated landing page.
type Artifact struct {
	ID           string    `json:"id"`
	Tier         Tier      `json:"tier"`
	Sport        string    `json:"sport"`
	AthleteName  string    `json:"athleteName"`
	StoragePath  string    `json:"storagePath"`
	PublicURL    string    `json:"publicUrl"`
	UsedFallback bool      `json:"usedFallback"`
	VariantID    int       `json:"variantId"`
	CreatedAt    time.Time `json:"createdAt"`
}
