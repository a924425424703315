package response

const (
	VoiceStatusSuccess = "success"
	VoiceStatusError   = "error"
)

type ChatResponse struct {
	Reply        string  `json:"reply"`
	GeneratedSQL *string `json:"generated_sql"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type VoiceResponse struct {
	Response string `json:"response"`
	Status   string `json:"status"`
}
