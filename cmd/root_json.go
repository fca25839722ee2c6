package cmd

// jsonOutputPayload defines the JSON summary schema.
type jsonOutputPayload struct {
	Processed        int     `json:"processed"`
	Total            int     `json:"total"`
	ElapsedSeconds   float64 `json:"elapsed_seconds"`
	RemainingSeconds float64 `json:"remaining_seconds"`
	Rate             float64 `json:"rate"`
	Error            string  `json:"error,omitempty"`
}

// buildJSONOutput assembles the JSON payload from a run result.
func buildJSONOutput(result runResult, runErr error) jsonOutputPayload {
	payload := jsonOutputPayload{
		Processed:        result.processed,
		Total:            result.total,
		ElapsedSeconds:   result.stats.Elapsed.Seconds(),
		RemainingSeconds: result.stats.Remaining.Seconds(),
		Rate:             result.stats.Rate,
	}
	if runErr != nil {
		payload.Error = runErr.Error()
	}
	return payload
}
