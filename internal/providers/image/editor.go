package image

import (
	"context"
	"errors"

	"imagestudio/internal/domain"
	"imagestudio/internal/imaging"
	"imagestudio/internal/infra"
	"imagestudio/internal/providers/genai"
)

// Request asks for one edit of one source image. Inputs are never mutated.
type Request struct {
	Source    imaging.Asset
	Prompt    string
	RequestID string
}

// Result is the displayable outcome of a successful edit.
type Result struct {
	DataURL  string
	MIMEType string
}

// Editor is the single-method boundary in front of the generative provider,
// so it can be swapped or stubbed without touching session or handler logic.
type Editor interface {
	Edit(ctx context.Context, req Request) (*Result, error)
}

// GeminiClient is the slice of the genai client the editor needs.
type GeminiClient interface {
	EditImage(ctx context.Context, req genai.EditRequest) (*genai.EditedImage, error)
	Model() string
}

// GeminiEditor adapts the Gemini client to the Editor port. Provider failures
// are logged with their raw cause and reported to callers only as
// domain.ErrGenerationFailed.
type GeminiEditor struct {
	client GeminiClient
	logger *infra.Logger
}

func NewGeminiEditor(client GeminiClient, logger *infra.Logger) *GeminiEditor {
	return &GeminiEditor{client: client, logger: logger}
}

func (e *GeminiEditor) Edit(ctx context.Context, req Request) (*Result, error) {
	edited, err := e.client.EditImage(ctx, genai.EditRequest{
		Data:      req.Source.Base64,
		MIMEType:  req.Source.MIMEType,
		Prompt:    req.Prompt,
		RequestID: req.RequestID,
	})
	if err != nil {
		if errors.Is(err, genai.ErrNoImageReturned) {
			return nil, domain.ErrNoImageReturned
		}
		e.logger.Warn().
			Err(err).
			Str("model", e.client.Model()).
			Str("request_id", req.RequestID).
			Msg("image: gemini edit failed")
		return nil, domain.ErrGenerationFailed
	}
	return &Result{
		DataURL:  imaging.DataURL(edited.MIMEType, edited.Data),
		MIMEType: edited.MIMEType,
	}, nil
}

var _ Editor = (*GeminiEditor)(nil)
