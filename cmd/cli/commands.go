package main

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(playersCmd)
	rootCmd.AddCommand(addPlayerCmd)
	rootCmd.AddCommand(removePlayerCmd)
	rootCmd.AddCommand(matchesCmd)
	rootCmd.AddCommand(scheduleCmd)
	rootCmd.AddCommand(resultCmd)
	rootCmd.AddCommand(quickMatchCmd)
	rootCmd.AddCommand(roundCmd)
	rootCmd.AddCommand(standingsCmd)
	rootCmd.AddCommand(commentaryCmd)
	rootCmd.AddCommand(metricsCmd)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest("GET", "/health", "")
	},
}

var playersCmd = &cobra.Command{
	Use:   "players",
	Short: "List the players on the roster",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest("GET", "/players", "")
	},
}

var addPlayerCmd = &cobra.Command{
	Use:   "add-player [name]",
	Short: "Register a new player",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		body := fmt.Sprintf(`{"name": %q}`, args[0])
		return performRequest("POST", "/players", body)
	},
}

var removePlayerCmd = &cobra.Command{
	Use:   "remove-player [id]",
	Short: "Remove a player from the roster",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest("DELETE", "/players/"+args[0], "")
	},
}

var matchesCmd = &cobra.Command{
	Use:   "matches",
	Short: "List the match ledger",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest("GET", "/matches", "")
	},
}

var scheduleCmd = &cobra.Command{
	Use:   "schedule [player1-id] [player2-id]",
	Short: "Schedule a match between two players",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		body := fmt.Sprintf(`{"player1_id": %q, "player2_id": %q}`, args[0], args[1])
		return performRequest("POST", "/matches", body)
	},
}

var resultCmd = &cobra.Command{
	Use:   "result [match-id] [score1] [score2]",
	Short: "Record a final score for a match",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		score1, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid score1: %w", err)
		}
		score2, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("invalid score2: %w", err)
		}
		body := fmt.Sprintf(`{"score1": %d, "score2": %d}`, score1, score2)
		return performRequest("POST", fmt.Sprintf("/matches/%s/result", args[0]), body)
	},
}

var quickMatchCmd = &cobra.Command{
	Use:   "quick-match",
	Short: "Schedule a match between two random players",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest("POST", "/matches/quick", "")
	},
}

var roundCmd = &cobra.Command{
	Use:   "round",
	Short: "Generate a full round of matches",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest("POST", "/matches/round", "")
	},
}

var standingsCmd = &cobra.Command{
	Use:   "standings",
	Short: "Show the current standings",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest("GET", "/standings", "")
	},
}

var commentaryCmd = &cobra.Command{
	Use:   "commentary",
	Short: "Ask the AI caster for tournament commentary",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest("POST", "/commentary", "")
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest("GET", "/metrics", "")
	},
}

func performRequest(method, endpoint, body string) error {
	url := host + endpoint
	fmt.Printf("Making %s request to %s\n", method, url)

	req, err := http.NewRequest(method, url, strings.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(respBody))

	return nil
}
