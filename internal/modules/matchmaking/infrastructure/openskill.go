package infrastructure

import (
	"github.com/intinig/go-openskill/rating"
	"github.com/intinig/go-openskill/types"

	"github.com/inhouse-league/stackbot/internal/modules/matchmaking/application/ports"
)

// Display-scale transform: the stored OpenSkill mu is centered on 25,
// and the roster UI talks in MMR-like numbers.
const (
	displayAnchor = 25.0
	displayFactor = 75.0
)

// OpenSkillScale maps stored OpenSkill ratings onto the display scalar
// the engine compares, and predicts match outcomes.
type OpenSkillScale struct{}

// NewOpenSkillScale creates a new OpenSkillScale.
func NewOpenSkillScale() OpenSkillScale {
	return OpenSkillScale{}
}

// DisplayValue converts a rating to its display scalar, floored at
// zero.
func (OpenSkillScale) DisplayValue(r ports.Rating) float64 {
	value := (r.Mu - displayAnchor) * displayFactor
	if value < 0 {
		return 0
	}
	return value
}

// PredictWin returns the probability of the radiant roster beating the
// dire roster.
func (OpenSkillScale) PredictWin(radiant, dire []ports.Rating) float64 {
	probs := rating.PredictWin([]types.Team{openskillTeam(radiant), openskillTeam(dire)}, nil)
	return probs[0]
}

func openskillTeam(ratings []ports.Rating) types.Team {
	team := make(types.Team, len(ratings))
	for i, r := range ratings {
		team[i] = types.Rating{Mu: r.Mu, Sigma: r.Sigma, Z: 3}
	}
	return team
}

// Ensure OpenSkillScale implements RatingScale.
var _ ports.RatingScale = OpenSkillScale{}
