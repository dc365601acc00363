package infrastructure

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/disgoorg/snowflake/v2"
	_ "github.com/mattn/go-sqlite3"

	"github.com/inhouse-league/stackbot/internal/modules/matchmaking/application/ports"
	"github.com/inhouse-league/stackbot/internal/modules/matchmaking/domain"
)

// Store persists player profiles and the append-only match log in a
// single SQLite database.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the database at dbPath and applies the
// schema.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	store := &Store{db: db}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS profiles (
		guild_id TEXT NOT NULL,
		user_id TEXT NOT NULL,
		name TEXT NOT NULL,
		roles TEXT NOT NULL DEFAULT '',
		captain_eligible INTEGER NOT NULL DEFAULT 0,
		mu REAL NOT NULL,
		sigma REAL NOT NULL,
		exclusion_count INTEGER NOT NULL DEFAULT 0,
		created_at INTEGER NOT NULL,
		updated_at INTEGER NOT NULL,
		PRIMARY KEY (guild_id, user_id)
	);

	CREATE TABLE IF NOT EXISTS matches (
		id TEXT PRIMARY KEY,
		guild_id TEXT NOT NULL,
		provenance TEXT NOT NULL,
		radiant TEXT NOT NULL,
		dire TEXT NOT NULL,
		first_pick TEXT NOT NULL,
		radiant_win_probability REAL NOT NULL,
		created_at INTEGER NOT NULL
	);
	`

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}

	// Databases created before the fairness ledger existed lack the
	// exclusion_count column. SQLite has no IF NOT EXISTS for ALTER
	// TABLE, so check pragma_table_info first.
	if err := s.ensureColumn("profiles", "exclusion_count",
		`ALTER TABLE profiles ADD COLUMN exclusion_count INTEGER NOT NULL DEFAULT 0`); err != nil {
		return err
	}
	if err := s.ensureColumn("matches", "radiant_win_probability",
		`ALTER TABLE matches ADD COLUMN radiant_win_probability REAL NOT NULL DEFAULT 0.5`); err != nil {
		return err
	}

	return nil
}

func (s *Store) ensureColumn(table, column, ddl string) error {
	var count int
	err := s.db.QueryRow(
		`SELECT COUNT(*) FROM pragma_table_info(?) WHERE name = ?`,
		table, column,
	).Scan(&count)
	if err != nil {
		return fmt.Errorf("checking %s.%s column: %w", table, column, err)
	}

	if count == 0 {
		if _, err := s.db.Exec(ddl); err != nil {
			return fmt.Errorf("adding %s.%s column: %w", table, column, err)
		}
	}
	return nil
}

// Save inserts or replaces the profile keyed by (guild, user).
func (s *Store) Save(ctx context.Context, profile domain.Profile) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO profiles
			(guild_id, user_id, name, roles, captain_eligible, mu, sigma, exclusion_count, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		profile.GuildID.String(),
		profile.UserID.String(),
		profile.Name,
		encodeRoles(profile.Roles),
		boolToInt(profile.CaptainEligible),
		profile.Mu,
		profile.Sigma,
		profile.ExclusionCount,
		profile.CreatedAt.UnixMilli(),
		profile.UpdatedAt.UnixMilli(),
	)
	return err
}

// Get returns the profile for the given guild and user, or
// domain.ErrProfileNotFound.
func (s *Store) Get(ctx context.Context, guildID, userID snowflake.ID) (domain.Profile, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT guild_id, user_id, name, roles, captain_eligible, mu, sigma, exclusion_count, created_at, updated_at
		FROM profiles WHERE guild_id = ? AND user_id = ?
	`, guildID.String(), userID.String())

	profile, err := scanProfile(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Profile{}, domain.ErrProfileNotFound
	}
	return profile, err
}

// List resolves profiles in request order. Any missing registration
// fails the whole lookup with domain.ErrProfileNotFound.
func (s *Store) List(ctx context.Context, guildID snowflake.ID, userIDs []snowflake.ID) ([]domain.Profile, error) {
	profiles := make([]domain.Profile, 0, len(userIDs))
	for _, userID := range userIDs {
		profile, err := s.Get(ctx, guildID, userID)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}
	return profiles, nil
}

// ApplyExclusions writes the post-selection exclusion counts in one
// transaction.
func (s *Store) ApplyExclusions(ctx context.Context, guildID snowflake.ID, counts map[snowflake.ID]int) error {
	if len(counts) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for userID, count := range counts {
		_, err := tx.ExecContext(ctx, `
			UPDATE profiles SET exclusion_count = ?, updated_at = ?
			WHERE guild_id = ? AND user_id = ?
		`, count, time.Now().UTC().UnixMilli(), guildID.String(), userID.String())
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Record appends the finalized plan to the match log.
func (s *Store) Record(ctx context.Context, plan *domain.MatchPlan, radiantWinProb float64) error {
	radiant, err := json.Marshal(teamRecord(plan.Radiant))
	if err != nil {
		return fmt.Errorf("encoding radiant roster: %w", err)
	}
	dire, err := json.Marshal(teamRecord(plan.Dire))
	if err != nil {
		return fmt.Errorf("encoding dire roster: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO matches (id, guild_id, provenance, radiant, dire, first_pick, radiant_win_probability, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		plan.ID.String(),
		plan.GuildID.String(),
		string(plan.Provenance),
		string(radiant),
		string(dire),
		plan.FirstPick.String(),
		radiantWinProb,
		plan.CreatedAt.UnixMilli(),
	)
	return err
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(row rowScanner) (domain.Profile, error) {
	var (
		guildID, userID string
		roles           string
		eligible        int
		createdAt       int64
		updatedAt       int64
		profile         domain.Profile
	)
	err := row.Scan(
		&guildID,
		&userID,
		&profile.Name,
		&roles,
		&eligible,
		&profile.Mu,
		&profile.Sigma,
		&profile.ExclusionCount,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return domain.Profile{}, err
	}

	profile.GuildID, err = snowflake.Parse(guildID)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("parsing guild id %q: %w", guildID, err)
	}
	profile.UserID, err = snowflake.Parse(userID)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("parsing user id %q: %w", userID, err)
	}
	profile.Roles, err = decodeRoles(roles)
	if err != nil {
		return domain.Profile{}, err
	}
	profile.CaptainEligible = eligible == 1
	profile.CreatedAt = time.UnixMilli(createdAt).UTC()
	profile.UpdatedAt = time.UnixMilli(updatedAt).UTC()
	return profile, nil
}

// rosterEntry is the JSON shape of one player inside a recorded match.
// Role is empty on drafted plans, which carry no role assignment.
type rosterEntry struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Role  string  `json:"role,omitempty"`
}

func teamRecord(team domain.Team) []rosterEntry {
	entries := make([]rosterEntry, len(team.Players))
	for i, p := range team.Players {
		entries[i] = rosterEntry{
			ID:    p.ID.String(),
			Name:  p.Name,
			Value: p.Value,
		}
		if i < len(team.Roles) {
			entries[i].Role = team.Roles[i].String()
		}
	}
	return entries
}

func encodeRoles(roles []domain.Role) string {
	if len(roles) == 0 {
		return ""
	}
	parts := make([]string, len(roles))
	for i, r := range roles {
		parts[i] = r.String()
	}
	return strings.Join(parts, ",")
}

func decodeRoles(s string) ([]domain.Role, error) {
	if s == "" {
		return nil, nil
	}
	roles, ok := domain.ParseRoles(s)
	if !ok {
		return nil, fmt.Errorf("invalid stored roles %q", s)
	}
	return roles, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Ensure Store implements the repository and recorder contracts.
var (
	_ domain.ProfileRepository = (*Store)(nil)
	_ ports.MatchRecorder      = (*Store)(nil)
)
