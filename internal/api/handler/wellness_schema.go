package handler

// surveyListItemResponse is the lightweight survey view used in list
// responses. It intentionally omits questions to keep payloads small.
type surveyListItemResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// surveySubmitRequest carries arbitrary answers keyed by question id.
// Answers are acknowledged but not persisted yet.
type surveySubmitRequest struct {
	Answers map[string]any `json:"answers"`
}

type surveySubmitResponse struct {
	Message  string `json:"message"`
	SurveyID string `json:"survey_id"`
}
