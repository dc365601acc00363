package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/disgoorg/snowflake/v2"

	"github.com/inhouse-league/stackbot/internal/modules/matchmaking/application/ports"
	"github.com/inhouse-league/stackbot/internal/modules/matchmaking/domain"
)

// RatedProfile pairs a stored profile with its display-scale value.
type RatedProfile struct {
	Profile domain.Profile
	Value   float64
}

// RegisterInput contains the input for the Register use case.
type RegisterInput struct {
	GuildID snowflake.ID
	UserID  snowflake.ID
	Name    string
}

// RegisterOutput contains the result of the Register use case.
type RegisterOutput struct {
	Profile domain.Profile
	Created bool // false when an existing registration was renamed
}

// SetRolesInput contains the input for the SetRoles use case.
type SetRolesInput struct {
	GuildID snowflake.ID
	UserID  snowflake.ID
	Roles   []domain.Role
}

// SetRolesOutput contains the result of the SetRoles use case.
type SetRolesOutput struct {
	Profile domain.Profile
}

// SetCaptainEligibilityInput contains the input for the
// SetCaptainEligibility use case.
type SetCaptainEligibilityInput struct {
	GuildID  snowflake.ID
	UserID   snowflake.ID
	Eligible bool
}

// SetCaptainEligibilityOutput contains the result of the
// SetCaptainEligibility use case.
type SetCaptainEligibilityOutput struct {
	Profile domain.Profile
}

// ProfileInput contains the input for the Profile use case.
type ProfileInput struct {
	GuildID snowflake.ID
	UserID  snowflake.ID
}

// ProfileOutput contains the result of the Profile use case.
type ProfileOutput struct {
	RatedProfile
}

// RosterService handles player registration and preference management.
type RosterService struct {
	profiles domain.ProfileRepository
	scale    ports.RatingScale
}

// NewRosterService creates a new RosterService.
func NewRosterService(profiles domain.ProfileRepository, scale ports.RatingScale) *RosterService {
	return &RosterService{
		profiles: profiles,
		scale:    scale,
	}
}

// Register creates a profile with the default rating prior, or renames
// an existing one without touching its rating or exclusion ledger.
func (r *RosterService) Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error) {
	profile, err := r.profiles.Get(ctx, input.GuildID, input.UserID)
	switch {
	case errors.Is(err, domain.ErrProfileNotFound):
		profile = domain.NewProfile(input.GuildID, input.UserID, input.Name)
		if err := r.profiles.Save(ctx, profile); err != nil {
			return nil, fmt.Errorf("saving profile: %w", err)
		}
		return &RegisterOutput{Profile: profile, Created: true}, nil
	case err != nil:
		return nil, fmt.Errorf("loading profile: %w", err)
	}

	profile.Name = input.Name
	profile.UpdatedAt = time.Now().UTC()
	if err := r.profiles.Save(ctx, profile); err != nil {
		return nil, fmt.Errorf("saving profile: %w", err)
	}
	return &RegisterOutput{Profile: profile}, nil
}

// SetRoles replaces the player's preferred roles.
func (r *RosterService) SetRoles(ctx context.Context, input SetRolesInput) (*SetRolesOutput, error) {
	profile, err := r.load(ctx, input.GuildID, input.UserID)
	if err != nil {
		return nil, err
	}

	profile.Roles = input.Roles
	profile.UpdatedAt = time.Now().UTC()
	if err := r.profiles.Save(ctx, profile); err != nil {
		return nil, fmt.Errorf("saving profile: %w", err)
	}
	return &SetRolesOutput{Profile: profile}, nil
}

// SetCaptainEligibility flags whether the player may be picked as a
// draft captain.
func (r *RosterService) SetCaptainEligibility(
	ctx context.Context,
	input SetCaptainEligibilityInput,
) (*SetCaptainEligibilityOutput, error) {
	profile, err := r.load(ctx, input.GuildID, input.UserID)
	if err != nil {
		return nil, err
	}

	profile.CaptainEligible = input.Eligible
	profile.UpdatedAt = time.Now().UTC()
	if err := r.profiles.Save(ctx, profile); err != nil {
		return nil, fmt.Errorf("saving profile: %w", err)
	}
	return &SetCaptainEligibilityOutput{Profile: profile}, nil
}

// Profile returns the player's registration with its display rating.
func (r *RosterService) Profile(ctx context.Context, input ProfileInput) (*ProfileOutput, error) {
	profile, err := r.load(ctx, input.GuildID, input.UserID)
	if err != nil {
		return nil, err
	}

	return &ProfileOutput{RatedProfile: RatedProfile{
		Profile: profile,
		Value:   r.scale.DisplayValue(ports.Rating{Mu: profile.Mu, Sigma: profile.Sigma}),
	}}, nil
}

func (r *RosterService) load(ctx context.Context, guildID, userID snowflake.ID) (domain.Profile, error) {
	profile, err := r.profiles.Get(ctx, guildID, userID)
	if errors.Is(err, domain.ErrProfileNotFound) {
		return domain.Profile{}, ErrNotRegistered
	}
	if err != nil {
		return domain.Profile{}, fmt.Errorf("loading profile: %w", err)
	}
	return profile, nil
}
