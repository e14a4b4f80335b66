package commentary

import "net/http"

// APIClient calls the Gemini generateContent REST endpoint.
type APIClient struct {
	httpClient *http.Client
	BaseURL    string
	apiKey     string
	model      string
}

const (
	// FallbackEmptyResponse is shown when the service answered but with no
	// usable text.
	FallbackEmptyResponse = "The tournament is heating up! Keep playing to generate more insights."

	// FallbackFailure is shown when the call itself failed.
	FallbackFailure = "The AI commentator is currently on a coffee break. (Check API Key)"

	// FallbackNoPlayers is shown before the roster has anyone on it.
	FallbackNoPlayers = "Add some players to get the tournament started!"
)

// generateContentRequest is the wire format of the generateContent call.
type generateContentRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}
