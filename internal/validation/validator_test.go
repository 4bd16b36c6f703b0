package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prosport1/ProSport/internal/domain"
	perrors "github.com/prosport1/ProSport/pkg/errors"
)

func validProfile() *domain.AthleteProfile {
	return &domain.AthleteProfile{
		Tier:            domain.TierBasic,
		Sport:           "Jiu-Jitsu",
		Name:            "Ana Silva",
		BirthDate:       "1998-03-12",
		Grade:           "Black belt",
		Team:            "Alliance",
		Titles:          "World champion 2023",
		Contact:         "5521999998888",
		PrimaryImageURL: "https://cdn.example.com/ana.jpg",
	}
}

func TestValidProfilePasses(t *testing.T) {
	v, err := New()
	require.NoError(t, err)

	require.NoError(t, v.ValidateProfile(validProfile()))
}

func TestAllViolationsReported(t *testing.T) {
	v, err := New()
	require.NoError(t, err)

	p := validProfile()
	p.Team = ""
	p.Titles = "   "

	vErr := requireValidationError(t, v.ValidateProfile(p))
	assert.Contains(t, vErr.Fields, "team")
	assert.Contains(t, vErr.Fields, "titles")
	assert.Len(t, vErr.Fields, 2)
}

func TestTierMembership(t *testing.T) {
	v, err := New()
	require.NoError(t, err)

	p := validProfile()
	p.Tier = "platinum"

	vErr := requireValidationError(t, v.ValidateProfile(p))
	assert.Contains(t, vErr.Fields, "tier")
}

func TestAmateurStatusMembership(t *testing.T) {
	v, err := New()
	require.NoError(t, err)

	p := validProfile()
	p.AmateurStatus = "semi-pro"

	vErr := requireValidationError(t, v.ValidateProfile(p))
	assert.Contains(t, vErr.Fields, "amateurStatus")

	p.AmateurStatus = domain.StatusAmateur
	require.NoError(t, v.ValidateProfile(p))
}

func TestURLFieldsChecked(t *testing.T) {
	v, err := New()
	require.NoError(t, err)

	p := validProfile()
	p.PrimaryImageURL = "not a url"
	p.InstagramURL = "also not a url"
	p.ExtraImageURLs = []string{"https://cdn.example.com/a.jpg", "nope"}

	vErr := requireValidationError(t, v.ValidateProfile(p))
	assert.Contains(t, vErr.Fields, "primaryImageUrl")
	assert.Contains(t, vErr.Fields, "instagramUrl")
	assert.Contains(t, vErr.Fields, "extraImageUrls[1]")
}

func requireValidationError(t *testing.T, err error) *perrors.ValidationError {
	t.Helper()
	require.Error(t, err)
	var vErr *perrors.ValidationError
	require.True(t, errors.As(err, &vErr), "expected *errors.ValidationError, got %T", err)
	return vErr
}
