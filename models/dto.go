package models

// TagInput is a caller-supplied tag reference; resolution maps it to a
// persisted Tag by name.
type TagInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type CreateQuestionRequest struct {
	Title   string     `json:"title" validate:"required"`
	Text    string     `json:"text" validate:"required"`
	AskedBy string     `json:"askedBy" validate:"required"`
	Tags    []TagInput `json:"tags" validate:"required,min=1,dive"`
}

type VoteRequest struct {
	Qid      string `json:"qid" validate:"required"`
	Username string `json:"username" validate:"required"`
}

type VoteResponse struct {
	Msg       string   `json:"msg"`
	UpVotes   []string `json:"upVotes"`
	DownVotes []string `json:"downVotes"`
}

type CreateAnswerRequest struct {
	Qid   string `json:"qid" validate:"required"`
	Text  string `json:"text" validate:"required"`
	AnsBy string `json:"ansBy" validate:"required"`
}

type CreateCommentRequest struct {
	ID        string `json:"id" validate:"required"`
	Type      string `json:"type" validate:"required,oneof=question answer"`
	Text      string `json:"text" validate:"required"`
	CommentBy string `json:"commentBy" validate:"required"`
}

type SignupRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type ResetPasswordRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// TagCount pairs a tag name with the number of questions referencing it.
type TagCount struct {
	Name string `json:"name"`
	Qcnt int    `json:"qcnt"`
}
