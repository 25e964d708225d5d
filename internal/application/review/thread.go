package review

import (
	"context"
	"strings"

	"cordwain/internal/domain/ticket"
	apperrors "cordwain/internal/shared/errors"
	"cordwain/internal/shared/logger"
	"cordwain/internal/shared/services/markdown"
)

// Role is the viewer's role as supplied by the identity collaborator. It
// only selects comment-rendering defaults; authorization lives elsewhere.
type Role string

const (
	RoleSupplier Role = "supplier"
	RoleInternal Role = "internal"
	RoleAdmin    Role = "admin"
)

// PrimaryLanguage returns the language a role reads first. Factory staff
// work in German, suppliers in English.
func PrimaryLanguage(role Role) ticket.Language {
	switch role {
	case RoleInternal, RoleAdmin:
		return ticket.LangGerman
	default:
		return ticket.LangEnglish
	}
}

// ReplyLanguage returns the language preselected in the reply form.
func ReplyLanguage(role Role) ticket.Language {
	return PrimaryLanguage(role)
}

// ShowsBothVariants reports whether the role sees both language variants
// side by side.
func ShowsBothVariants(role Role) bool {
	return role == RoleInternal || role == RoleAdmin
}

// RenderedComment is one thread message prepared for display.
type RenderedComment struct {
	CommentID     uint                `json:"comment_id"`
	Author        string              `json:"author"`
	Text          string              `json:"text"`
	HTML          string              `json:"html"`
	SecondaryText string              `json:"secondary_text,omitempty"`
	Attachments   []ticket.Attachment `json:"attachments,omitempty"`
	CreatedAt     int64               `json:"created_at"`
}

// Thread prepares bilingual comment threads for display and builds
// outgoing comment payloads, auto-translating the missing variant on a
// best-effort basis.
type Thread struct {
	translator Translator
	renderer   markdown.Service
	log        logger.Interface
}

func NewThread(translator Translator, renderer markdown.Service, log logger.Interface) *Thread {
	return &Thread{
		translator: translator,
		renderer:   renderer,
		log:        log.Named("comment-thread"),
	}
}

// BuildPayload validates and assembles a new comment. A comment needs at
// least one non-empty message or one attachment; this is checked before
// anything leaves the client. Translation failure leaves the other variant
// blank and never blocks submission.
func (t *Thread) BuildPayload(
	ctx context.Context,
	authorID uint,
	authorName string,
	text string,
	lang ticket.Language,
	attachments []ticket.Attachment,
) (CommentPayload, error) {
	text = strings.TrimSpace(text)
	if text == "" && len(attachments) == 0 {
		return CommentPayload{}, apperrors.NewValidationError("comment requires a message or an attachment")
	}
	if !lang.IsValid() {
		return CommentPayload{}, apperrors.NewValidationError("invalid comment language")
	}

	payload := CommentPayload{
		AuthorID:    authorID,
		AuthorName:  authorName,
		Attachments: attachments,
	}
	setVariant(&payload, lang, text)

	if text != "" {
		translated, err := t.translator.Translate(ctx, text, lang, lang.Other())
		if err != nil {
			// Best effort only: the untranslated side stays blank.
			t.log.Warnw("auto-translation failed", "error", err, "source_lang", string(lang))
		} else {
			setVariant(&payload, lang.Other(), translated)
		}
	}

	return payload, nil
}

func setVariant(payload *CommentPayload, lang ticket.Language, text string) {
	if lang == ticket.LangGerman {
		payload.TextDE = text
	} else {
		payload.TextEN = text
	}
}

// Render prepares a ticket's thread for one viewer. The primary variant
// follows the role; when a comment lacks it, the other variant stands in
// so the message is never invisible. Elevated roles additionally get the
// secondary variant for side-by-side display.
func (t *Thread) Render(tkt *ticket.Ticket, role Role) []RenderedComment {
	primary := PrimaryLanguage(role)

	comments := tkt.Comments()
	rendered := make([]RenderedComment, 0, len(comments))
	for _, c := range comments {
		text := c.Text(primary)
		if text == "" {
			text = c.Text(primary.Other())
		}

		html, err := t.renderer.ToHTMLSanitized(text)
		if err != nil {
			t.log.Warnw("failed to render comment markdown", "comment_id", c.ID(), "error", err)
			html = ""
		}

		rc := RenderedComment{
			CommentID:   c.ID(),
			Author:      c.AuthorName(),
			Text:        text,
			HTML:        html,
			Attachments: c.Attachments(),
			CreatedAt:   c.CreatedAt().UnixMilli(),
		}
		if ShowsBothVariants(role) && c.HasText(primary.Other()) {
			rc.SecondaryText = c.Text(primary.Other())
		}
		rendered = append(rendered, rc)
	}
	return rendered
}
