package fiber

import "process-mining-service/internal/assistant/core/usecase"

type ChatRequest struct {
	Message string `json:"message" example:"Which team is the most active?"`
	Dataset string `json:"dataset,omitempty" example:"salesforce"`
}

type ChatResponse struct {
	MessageID string `json:"message_id" example:"3f1c2a9e-6a51-4d8e-9c57-1d1f0b7e3a10"`
	Answer    string `json:"answer"`
	Source    string `json:"source" example:"llm"`
	Model     string `json:"model,omitempty" example:"gpt-4o-mini"`
}

func toChatResponse(r usecase.AskResult) ChatResponse {
	return ChatResponse{
		MessageID: r.MessageID,
		Answer:    r.Answer,
		Source:    r.Source,
		Model:     r.Model,
	}
}
