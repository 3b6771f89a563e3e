package model

type ToggleRequestBody struct {
	String int `json:"string"`
	Fret   int `json:"fret"`
}

type MatchRequestBody struct {
	Positions []Fret `json:"positions"`
}

type MatchResponse struct {
	Matches []MatchResult `json:"matches"`
}

type MatchResult struct {
	Name    string `json:"name"`
	Pattern string `json:"pattern"`
	Covered int    `json:"covered"`
}

type BoardResponse struct {
	Id        string        `json:"id"`
	Selection []Fret        `json:"selection"`
	Notes     []string      `json:"notes"`
	Matches   []MatchResult `json:"matches"`
}

type FretboardResponse struct {
	Strings []string   `json:"strings"`
	Notes   [][]string `json:"notes"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
