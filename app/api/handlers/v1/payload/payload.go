package payload

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notes-service/business/v1/note"
	"github.com/ribgsilva/notes-service/platform/errs"
)

// multipartContentField is the form field multipart clients upload content in.
const multipartContentField = "f:1"

var errMalformed = errs.New(errs.InvalidArgument, "Bad Request, malformed note!")

// Normalizer turns one request body encoding into a note.Payload.
type Normalizer interface {
	Normalize(ctx *gin.Context) (note.Payload, error)
}

// For picks the normalizer of a content type; no content type means plain text.
func For(contentType string) Normalizer {
	switch contentType {
	case "", gin.MIMEPlain:
		return Text{}
	case gin.MIMEMultipartPOSTForm:
		return Multipart{}
	case gin.MIMEPOSTForm:
		return Form{}
	default:
		return JSON{}
	}
}

// Parse normalizes the body of ctx according to its Content-Type.
func Parse(ctx *gin.Context) (note.Payload, error) {
	return For(ctx.ContentType()).Normalize(ctx)
}

// Text takes the whole body as content.
type Text struct{}

func (Text) Normalize(ctx *gin.Context) (note.Payload, error) {
	body, err := ctx.GetRawData()
	if err != nil {
		return note.Payload{}, errs.Wrap(errs.InvalidArgument, errMalformed.Error(), err)
	}
	return note.NewPayload("", string(body), nil), nil
}

// Multipart reads form fields, content from "f:1" falling back to "content".
type Multipart struct{}

func (Multipart) Normalize(ctx *gin.Context) (note.Payload, error) {
	form, err := ctx.MultipartForm()
	if err != nil {
		return note.Payload{}, errs.Wrap(errs.InvalidArgument, errMalformed.Error(), err)
	}
	first := func(key string) string {
		if v := form.Value[key]; len(v) > 0 {
			return v[0]
		}
		return ""
	}
	content := first(multipartContentField)
	if content == "" {
		content = first("content")
	}
	return note.NewPayload(first("title"), content, form.Value["categories"]), nil
}

// Form reads an url-encoded body, categories may repeat.
type Form struct{}

func (Form) Normalize(ctx *gin.Context) (note.Payload, error) {
	if err := ctx.Request.ParseForm(); err != nil {
		return note.Payload{}, errs.Wrap(errs.InvalidArgument, errMalformed.Error(), err)
	}
	return note.NewPayload(ctx.PostForm("title"), ctx.PostForm("content"), ctx.PostFormArray("categories")), nil
}

// JSON reads {"title", "content", "categories"}; categories may be a single string.
type JSON struct{}

type jsonBody struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	Categories labels `json:"categories"`
}

type labels []string

func (l *labels) UnmarshalJSON(data []byte) error {
	var one string
	if err := json.Unmarshal(data, &one); err == nil {
		*l = labels{one}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return errors.New("categories must be a string or a list of strings")
	}
	*l = many
	return nil
}

func (JSON) Normalize(ctx *gin.Context) (note.Payload, error) {
	raw, err := ctx.GetRawData()
	if err != nil {
		return note.Payload{}, errs.Wrap(errs.InvalidArgument, errMalformed.Error(), err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return note.Payload{}, nil
	}
	var body jsonBody
	if err := json.Unmarshal(raw, &body); err != nil {
		return note.Payload{}, errs.Wrap(errs.InvalidArgument, errMalformed.Error(), err)
	}
	return note.NewPayload(body.Title, body.Content, body.Categories), nil
}
