package client_view

import (
	"sort"

	client_api "github.com/abhinav1singhal/social-dining/internal/client/api"
)

// State is which of the mutually exclusive session screens to render.
// Exactly one applies to any snapshot; Loading supersedes the rest
// until the first fetch lands.
type State int

const (
	StateLoading State = iota
	StateJoin
	StateLobby
	StateVoting
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateJoin:
		return "join"
	case StateLobby:
		return "lobby"
	case StateVoting:
		return "voting"
	default:
		return "unknown"
	}
}

// Derive maps (snapshot, local identity) to a render state:
// no identity means Join, identity with no recommendations means
// Lobby, and a non-empty recommendation set means Voting. Voting is
// terminal; nothing transitions back to Lobby.
func Derive(snapshot *client_api.Snapshot, participantID string, loading bool) State {
	if loading || snapshot == nil {
		return StateLoading
	}
	if participantID == "" {
		return StateJoin
	}
	if len(snapshot.Recommendations) == 0 {
		return StateLobby
	}
	return StateVoting
}

// Rank orders recommendations by aggregate score descending, breaking
// ties by vote count descending. The input is left untouched.
func Rank(recs []client_api.Recommendation) []client_api.Recommendation {
	ranked := make([]client_api.Recommendation, len(recs))
	copy(ranked, recs)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].VoteCount > ranked[j].VoteCount
	})
	return ranked
}

// Leader is the top-ranked recommendation, or nil before generation.
func Leader(recs []client_api.Recommendation) *client_api.Recommendation {
	if len(recs) == 0 {
		return nil
	}
	ranked := Rank(recs)
	return &ranked[0]
}

// IsHost checks the server-reported host flag for the given
// participant. An identity the server no longer lists (removed
// server-side, stale local cache) evaluates to false rather than
// failing, so host-only affordances just disappear.
func IsHost(participants []client_api.Participant, participantID string) bool {
	if participantID == "" {
		return false
	}
	for _, p := range participants {
		if p.ID == participantID {
			return p.IsHost
		}
	}
	return false
}

// LoveItCount and NahCount recover per-direction tallies from the net
// score and total count. Exact only while every vote is +1 or -1 and
// vote_count counts all votes; revisit if the server ever changes
// those semantics.
func LoveItCount(rec client_api.Recommendation) int {
	return (rec.Score + rec.VoteCount) / 2
}

func NahCount(rec client_api.Recommendation) int {
	return (rec.VoteCount - rec.Score) / 2
}
