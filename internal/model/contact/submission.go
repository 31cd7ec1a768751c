package contact

import "time"

// Form is the payload collected by the contact section.
type Form struct {
	Name    string `json:"name" validate:"required,max=120"`
	Email   string `json:"email" validate:"required,email,max=254"`
	Subject string `json:"subject" validate:"required,max=200"`
	Message string `json:"message" validate:"required,max=5000"`
}

// Submission is a stored contact form.
type Submission struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// Receipt is returned to the visitor once a submission is accepted.
type Receipt struct {
	ID     string `json:"id"`
	Notice string `json:"notice"`
}
