package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	client_action "github.com/abhinav1singhal/social-dining/internal/client/action"
	client_api "github.com/abhinav1singhal/social-dining/internal/client/api"
	client_identity "github.com/abhinav1singhal/social-dining/internal/client/identity"
	client_sync "github.com/abhinav1singhal/social-dining/internal/client/sync"
	client_view "github.com/abhinav1singhal/social-dining/internal/client/view"
)

type console struct {
	api        *client_api.Client
	identities *client_identity.Store
	scanner    *bufio.Scanner

	sessionID string
	sync      *client_sync.Synchronizer
	actions   *client_action.Dispatcher
}

func (c *console) prompt(label string) (string, bool) {
	fmt.Print(label)
	if !c.scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.scanner.Text()), true
}

func (c *console) CreateSession(ctx context.Context) error {
	hostName, ok := c.prompt("Your name: ")
	if !ok || hostName == "" {
		return fmt.Errorf("a host name is required")
	}

	location, ok := c.prompt("Location (e.g. 'San Francisco, CA'): ")
	if !ok || location == "" {
		return fmt.Errorf("a location is required")
	}

	var scheduledTime *time.Time
	raw, ok := c.prompt("Scheduled time (2006-01-02 15:04, empty to skip): ")
	if ok && raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02 15:04", raw, time.Local)
		if err != nil {
			return fmt.Errorf("unparseable time %q: %w", raw, err)
		}
		scheduledTime = &parsed
	}

	actions := client_action.New(c.api, c.identities)
	session, err := actions.CreateSession(ctx, hostName, location, scheduledTime)
	if err != nil {
		return err
	}

	fmt.Printf("Session created! ID: %s\n", session.ID)
	fmt.Printf("Invite link: %s\n", session.InviteLink)
	fmt.Println("Share the link, then join your own session below.")

	c.mount(ctx, session.ID)
	return nil
}

func (c *console) OpenSession(ctx context.Context) error {
	sessionID, ok := c.prompt("Session ID: ")
	if !ok || sessionID == "" {
		return fmt.Errorf("a session id is required")
	}

	c.mount(ctx, sessionID)
	return nil
}

// mount starts polling the given session and rebinds the dispatcher so
// write actions trigger an immediate re-fetch.
func (c *console) mount(ctx context.Context, sessionID string) {
	c.unmount()

	c.sessionID = sessionID
	c.sync = client_sync.New(c.api, sessionID)
	c.sync.Start(ctx)
	c.actions = client_action.New(c.api, c.identities,
		client_action.WithRefresher(c.sync),
	)
}

func (c *console) unmount() {
	if c.sync != nil {
		c.sync.Stop()
	}
	c.sessionID = ""
	c.sync = nil
	c.actions = nil
}

func (c *console) Join(ctx context.Context) error {
	name, ok := c.prompt("Your name: ")
	if !ok || name == "" {
		return fmt.Errorf("a name is required")
	}

	dietary, _ := c.prompt("Dietary restrictions (empty to skip): ")
	cuisine, _ := c.prompt("Cuisine preferences (empty to skip): ")
	budget, _ := c.prompt("Budget tier, $ to $$$$ (empty to skip): ")
	vibe, _ := c.prompt("Vibe (empty to skip): ")

	participant, err := c.actions.Join(ctx, c.sessionID, client_api.JoinRequest{
		Name:                name,
		DietaryRestrictions: dietary,
		CuisinePreferences:  cuisine,
		BudgetTier:          budget,
		Vibe:                vibe,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Joined as %s\n", participant.Name)
	return nil
}

func (c *console) Generate(ctx context.Context) error {
	fmt.Println("Asking the AI for restaurant picks, this can take a while...")
	if err := c.actions.Generate(ctx, c.sessionID); err != nil {
		return err
	}
	fmt.Println("Recommendations are in!")
	return nil
}

func (c *console) Vote(ctx context.Context, recs []client_api.Recommendation) error {
	pick, err := c.pickRecommendation(recs)
	if err != nil {
		return err
	}

	raw, ok := c.prompt("Love it or nah? (+/-): ")
	if !ok {
		return fmt.Errorf("input read failed")
	}

	var score int
	switch raw {
	case "+":
		score = client_api.ScoreLoveIt
	case "-":
		score = client_api.ScoreNah
	default:
		return fmt.Errorf("expected + or -, got %q", raw)
	}

	if err := c.actions.Vote(ctx, c.sessionID, pick.BusinessID, score); err != nil {
		if errors.Is(err, client_action.ErrNoIdentity) {
			return fmt.Errorf("you have not joined this session on this device")
		}
		return err
	}

	fmt.Println("Vote recorded")
	return nil
}

func (c *console) Book(ctx context.Context, recs []client_api.Recommendation) error {
	leader := client_view.Leader(recs)
	if leader == nil {
		return fmt.Errorf("nothing to book yet")
	}

	raw, ok := c.prompt(fmt.Sprintf("Book a table at %s? (yes/no): ", leader.Name))
	if !ok {
		return fmt.Errorf("input read failed")
	}
	confirmed := strings.EqualFold(raw, "yes") || strings.EqualFold(raw, "y")

	result, err := c.actions.Book(ctx, c.sessionID, leader.BusinessID, confirmed)
	if err != nil {
		if errors.Is(err, client_action.ErrNotConfirmed) {
			fmt.Println("Booking cancelled")
			return nil
		}
		return err
	}

	fmt.Printf("Agent: %s\n", result.Message)
	if result.Reference != nil {
		fmt.Printf("Reference: %s\n", *result.Reference)
	}
	return nil
}

func (c *console) Leave(ctx context.Context) error {
	if err := c.actions.Leave(ctx, c.sessionID); err != nil {
		return err
	}
	c.unmount()
	fmt.Println("Left the session on this device")
	return nil
}

func (c *console) pickRecommendation(recs []client_api.Recommendation) (client_api.Recommendation, error) {
	raw, ok := c.prompt(fmt.Sprintf("Restaurant number (1-%d): ", len(recs)))
	if !ok {
		return client_api.Recommendation{}, fmt.Errorf("input read failed")
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 || n > len(recs) {
		return client_api.Recommendation{}, fmt.Errorf("no restaurant numbered %q", raw)
	}
	return recs[n-1], nil
}

func (c *console) renderSession(ctx context.Context) (client_view.State, []client_api.Recommendation) {
	snapshot, loading, fetchErr := c.sync.State()

	participantID, err := c.identities.Get(ctx, c.sessionID)
	if err != nil {
		fmt.Printf("Identity lookup failed: %v\n", err)
	}

	state := client_view.Derive(snapshot, participantID, loading)

	fmt.Printf("\n=== Session %s [%s] ===\n", c.sessionID, state)
	if fetchErr != nil {
		fmt.Printf("! Last refresh failed: %v (showing last known state)\n", fetchErr)
	}

	if snapshot == nil {
		return state, nil
	}

	if snapshot.Session.Location != "" {
		fmt.Printf("Location: %s\n", snapshot.Session.Location)
	}
	if snapshot.Session.ScheduledTime != nil {
		fmt.Printf("When: %s\n", snapshot.Session.ScheduledTime.Local().Format("Mon Jan 2, 3:04 PM"))
	}

	fmt.Printf("Participants (%d):\n", len(snapshot.Participants))
	for _, p := range snapshot.Participants {
		badge := ""
		if p.IsHost {
			badge = " [host]"
		}
		marker := ""
		if p.ID == participantID {
			marker = " (you)"
		}
		fmt.Printf("  - %s%s%s\n", p.Name, badge, marker)
	}

	if analysis := snapshot.Session.ConflictAnalysis; analysis != nil {
		if analysis.HasConflicts {
			fmt.Printf("Conflicts: %s\n", strings.Join(analysis.Conflicts, "; "))
		}
		fmt.Printf("Group read: %s\n", analysis.Resolution)
	}

	ranked := client_view.Rank(snapshot.Recommendations)
	if len(ranked) > 0 {
		fmt.Println("Restaurants:")
		for i, rec := range ranked {
			leader := ""
			if i == 0 {
				leader = " << leading"
			}
			fmt.Printf("%d. %s (%s, %.1f)%s\n", i+1, rec.Name, rec.Price, rec.Rating, leader)
			fmt.Printf("   Love it: %d | Nah: %d\n", client_view.LoveItCount(rec), client_view.NahCount(rec))
			fmt.Printf("   %s\n", rec.AIReasoning)
			if rec.WhyPicked != nil {
				fmt.Printf("   Why picked: %s\n", *rec.WhyPicked)
			}
			if len(rec.TradeOffs) > 0 {
				fmt.Printf("   Trade-offs: %s\n", strings.Join(rec.TradeOffs, "; "))
			}
		}
	}

	if snapshot.Session.BookingStatus != "" && snapshot.Session.BookingStatus != "none" {
		if snapshot.Session.BookingMessage != nil {
			fmt.Printf("Booking: %s\n", *snapshot.Session.BookingMessage)
		}
		if snapshot.Session.BookingReference != nil {
			fmt.Printf("Booking reference: %s\n", *snapshot.Session.BookingReference)
		}
	}

	return state, ranked
}

// sessionLoop drives the mounted session: render the derived screen,
// offer the actions that screen allows, repeat until the user leaves.
func (c *console) sessionLoop(ctx context.Context) {
	for c.sync != nil {
		state, ranked := c.renderSession(ctx)

		participantID, _ := c.identities.Get(ctx, c.sessionID)
		var isHost bool
		if snapshot, _, _ := c.sync.State(); snapshot != nil {
			isHost = client_view.IsHost(snapshot.Participants, participantID)
		}

		switch state {
		case client_view.StateLoading:
			fmt.Println("Loading... press Enter to re-check, 0 to go back")
		case client_view.StateJoin:
			fmt.Println("1. Join this session")
			fmt.Println("0. Back")
		case client_view.StateLobby:
			if isHost {
				fmt.Println("1. Get restaurant recommendations")
			}
			fmt.Println("2. Leave session")
			fmt.Println("0. Back")
		case client_view.StateVoting:
			fmt.Println("1. Vote on a restaurant")
			if isHost {
				fmt.Println("2. Book the leader")
			}
			fmt.Println("3. Leave session")
			fmt.Println("0. Back")
		}
		fmt.Print("> ")

		if !c.scanner.Scan() {
			c.unmount()
			return
		}
		input := strings.TrimSpace(c.scanner.Text())

		var err error
		switch {
		case input == "0":
			c.unmount()
			return
		case input == "":
			// Re-render with whatever the poller picked up meanwhile.
		case state == client_view.StateJoin && input == "1":
			err = c.Join(ctx)
		case state == client_view.StateLobby && input == "1" && isHost:
			err = c.Generate(ctx)
		case state == client_view.StateLobby && input == "2":
			err = c.Leave(ctx)
		case state == client_view.StateVoting && input == "1":
			err = c.Vote(ctx, ranked)
		case state == client_view.StateVoting && input == "2" && isHost:
			err = c.Book(ctx, ranked)
		case state == client_view.StateVoting && input == "3":
			err = c.Leave(ctx)
		default:
			fmt.Println("Invalid choice")
		}
		if err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	}
}

func getenv(key string, defaultVal string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return defaultVal
}

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	identityPath, err := client_identity.DefaultPath()
	if err != nil {
		fmt.Printf("Failed to resolve identity store path: %v\n", err)
		os.Exit(1)
	}
	identities, err := client_identity.Open(getenv("IDENTITY_DB_PATH", identityPath))
	if err != nil {
		fmt.Printf("Failed to open identity store: %v\n", err)
		os.Exit(1)
	}
	defer identities.Close()

	c := &console{
		api:        client_api.New(getenv("API_BASE_URL", client_api.DefaultBaseURL)),
		identities: identities,
		scanner:    bufio.NewScanner(os.Stdin),
	}
	defer c.unmount()

	ctx := context.Background()

	for {
		fmt.Println("\n=== Social Dining Console Client ===")
		fmt.Println("1. Create a session")
		fmt.Println("2. Open a session")
		fmt.Println("0. Exit")
		fmt.Print("> ")

		if !c.scanner.Scan() {
			return
		}

		switch strings.TrimSpace(c.scanner.Text()) {
		case "1":
			if err := c.CreateSession(ctx); err != nil {
				fmt.Printf("Error: %v\n", err)
			} else {
				c.sessionLoop(ctx)
			}
		case "2":
			if err := c.OpenSession(ctx); err != nil {
				fmt.Printf("Error: %v\n", err)
			} else {
				c.sessionLoop(ctx)
			}
		case "0":
			fmt.Println("Bye!")
			return
		default:
			fmt.Println("Invalid choice")
		}
	}
}
