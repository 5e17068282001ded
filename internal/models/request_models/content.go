package request_models

type UpsertArticleRequest struct {
	Title     string `json:"title" binding:"required,max=160"`
	Body      string `json:"body" binding:"required"`
	CoverPath string `json:"cover_path"`
}

type CreateCommentRequest struct {
	Body string `json:"body" binding:"required,max=2000"`
}

type CreateTicketRequest struct {
	Subject string `json:"subject" binding:"required,max=160"`
	Body    string `json:"body" binding:"required"`
}

type TicketReplyRequest struct {
	Body string `json:"body" binding:"required,max=4000"`
}
