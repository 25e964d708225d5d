package ticket

import (
	"fmt"
	"time"

	"cordwain/internal/shared/biztime"
)

// Language marks which side of a bilingual comment a text belongs to.
// The factory writes German, suppliers write English; which one renders
// as primary depends on the viewer's role, not on storage.
type Language string

const (
	LangGerman  Language = "de"
	LangEnglish Language = "en"
)

func (l Language) IsValid() bool {
	return l == LangGerman || l == LangEnglish
}

// Other returns the opposite side of the language pair.
func (l Language) Other() Language {
	if l == LangGerman {
		return LangEnglish
	}
	return LangGerman
}

// Attachment is a file hanging off a comment.
type Attachment struct {
	FileName    string `json:"file_name"`
	URL         string `json:"url"`
	Size        int64  `json:"size"`
	ContentType string `json:"content_type"`
}

// Comment is one message in a ticket thread. Both language variants may be
// present; a valid comment carries at least one non-empty variant or at
// least one attachment.
type Comment struct {
	id          uint
	ticketID    uint
	authorID    uint
	authorName  string
	textDE      string
	textEN      string
	attachments []Attachment
	createdAt   time.Time
}

func NewComment(
	ticketID uint,
	authorID uint,
	authorName string,
	textDE, textEN string,
	attachments []Attachment,
) (*Comment, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}
	if len(textDE) == 0 && len(textEN) == 0 && len(attachments) == 0 {
		return nil, fmt.Errorf("comment requires a message or an attachment")
	}
	if len(textDE) > 5000 || len(textEN) > 5000 {
		return nil, fmt.Errorf("comment exceeds maximum length of 5000 characters")
	}

	return &Comment{
		ticketID:    ticketID,
		authorID:    authorID,
		authorName:  authorName,
		textDE:      textDE,
		textEN:      textEN,
		attachments: append([]Attachment(nil), attachments...),
		createdAt:   biztime.NowUTC(),
	}, nil
}

func ReconstructComment(
	id uint,
	ticketID uint,
	authorID uint,
	authorName string,
	textDE, textEN string,
	attachments []Attachment,
	createdAt time.Time,
) (*Comment, error) {
	if id == 0 {
		return nil, fmt.Errorf("comment ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}

	return &Comment{
		id:          id,
		ticketID:    ticketID,
		authorID:    authorID,
		authorName:  authorName,
		textDE:      textDE,
		textEN:      textEN,
		attachments: append([]Attachment(nil), attachments...),
		createdAt:   createdAt,
	}, nil
}

func (c *Comment) ID() uint {
	return c.id
}

func (c *Comment) TicketID() uint {
	return c.ticketID
}

func (c *Comment) AuthorID() uint {
	return c.authorID
}

func (c *Comment) AuthorName() string {
	return c.authorName
}

// Text returns the variant for the given language; may be empty.
func (c *Comment) Text(lang Language) string {
	if lang == LangGerman {
		return c.textDE
	}
	return c.textEN
}

// HasText reports whether the given variant is present.
func (c *Comment) HasText(lang Language) bool {
	return len(c.Text(lang)) > 0
}

func (c *Comment) Attachments() []Attachment {
	return append([]Attachment(nil), c.attachments...)
}

func (c *Comment) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Comment) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("comment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("comment ID cannot be zero")
	}
	c.id = id
	return nil
}

// Clone returns an independent copy.
func (c *Comment) Clone() *Comment {
	clone := *c
	clone.attachments = append([]Attachment(nil), c.attachments...)
	return &clone
}
