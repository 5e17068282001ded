package request_models

type SendMessageRequest struct {
	ReceiverID string `json:"receiver_id" binding:"required,uuid4"`
	Content    string `json:"content" binding:"required,max=4000"`
}
