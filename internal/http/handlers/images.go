package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"imagestudio/internal/domain"
	"imagestudio/internal/imaging"
	"imagestudio/internal/middleware"
	"imagestudio/internal/studio"
)

// downloadFilename is fixed irrespective of the result's actual MIME type.
const downloadFilename = "edited-image.png"

type sourceResponse struct {
	MIME    string `json:"mime"`
	DataURL string `json:"data_url"`
}

type editRequest struct {
	Prompt string `json:"prompt"`
}

type editResponse struct {
	MIME    string `json:"mime"`
	DataURL string `json:"data_url"`
}

// UploadSource accepts a multipart upload, encodes it, and makes it the
// session's source image. Any previous result or error is discarded.
func (a *App) UploadSource(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, a.Config.MaxUploadBytes)
	file, header, err := r.FormFile("image")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			a.error(w, r, http.StatusRequestEntityTooLarge, codeUploadTooLarge)
			return
		}
		a.error(w, r, http.StatusBadRequest, codeValidation)
		return
	}
	defer file.Close()

	asset, err := imaging.Encode(file, header.Header.Get("Content-Type"))
	if err != nil {
		a.Logger.Warn().Err(err).
			Str("request_id", middleware.RequestIDFromContext(r.Context())).
			Str("filename", header.Filename).
			Msg("handlers: source upload unreadable")
		a.failure(w, r, err)
		return
	}

	session := a.ensureSession(w, r)
	session.SelectSource(asset)

	a.json(w, http.StatusOK, sourceResponse{MIME: asset.MIMEType, DataURL: asset.DataURL})
}

// EditImage runs one generation attempt for the session's source image.
func (a *App) EditImage(w http.ResponseWriter, r *http.Request) {
	var req editRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, r, http.StatusBadRequest, codeBadRequest)
		return
	}

	session, ok := a.session(r)
	if !ok {
		a.failure(w, r, domain.ErrNoSession)
		return
	}

	result, err := session.Generate(r.Context(), a.Editor, studio.GenerateInput{
		Prompt:    req.Prompt,
		RequestID: middleware.RequestIDFromContext(r.Context()),
	})
	if err != nil {
		a.failure(w, r, studio.FailureClass(err))
		return
	}

	a.json(w, http.StatusOK, editResponse{MIME: result.MIMEType, DataURL: result.DataURL})
}

// Result returns the latest successful edit for the session.
func (a *App) Result(w http.ResponseWriter, r *http.Request) {
	session, ok := a.session(r)
	if !ok {
		a.failure(w, r, domain.ErrNoResult)
		return
	}
	result, err := session.Result()
	if err != nil {
		a.failure(w, r, err)
		return
	}
	a.json(w, http.StatusOK, editResponse{MIME: result.MIMEType, DataURL: result.DataURL})
}

// DownloadResult streams the decoded result bytes as an attachment under the
// fixed download filename.
func (a *App) DownloadResult(w http.ResponseWriter, r *http.Request) {
	session, ok := a.session(r)
	if !ok {
		a.failure(w, r, domain.ErrNoResult)
		return
	}
	result, err := session.Result()
	if err != nil {
		a.failure(w, r, err)
		return
	}

	asset, err := imaging.ParseDataURL(result.DataURL)
	if err != nil {
		a.failure(w, r, domain.ErrGenerationFailed)
		return
	}
	data, err := asset.Bytes()
	if err != nil {
		a.failure(w, r, domain.ErrGenerationFailed)
		return
	}

	w.Header().Set("Content-Type", result.MIMEType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", downloadFilename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

type sessionStateResponse struct {
	Phase         string `json:"phase"`
	SourceDataURL string `json:"source_data_url,omitempty"`
	Prompt        string `json:"prompt,omitempty"`
	ResultDataURL string `json:"result_data_url,omitempty"`
	ResultMIME    string `json:"result_mime,omitempty"`
	Error         string `json:"error,omitempty"`
}

// SessionState reports the session's current phase so the page can restore
// itself after a reload.
func (a *App) SessionState(w http.ResponseWriter, r *http.Request) {
	session, ok := a.session(r)
	if !ok {
		a.json(w, http.StatusOK, sessionStateResponse{Phase: studio.PhaseIdle.String()})
		return
	}
	state := session.Snapshot()
	resp := sessionStateResponse{
		Phase:         state.Phase.String(),
		SourceDataURL: state.SourceDataURL,
		Prompt:        state.Prompt,
		ResultDataURL: state.ResultDataURL,
		ResultMIME:    state.ResultMIME,
	}
	if state.Failure != nil {
		resp.Error = localize(middleware.LocaleFromContext(r.Context()), failureCode(state.Failure))
	}
	a.json(w, http.StatusOK, resp)
}

func failureCode(err error) string {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return codeValidation
	case errors.Is(err, domain.ErrFileRead):
		return codeFileRead
	case errors.Is(err, domain.ErrNoImageReturned):
		return codeNoImageReturned
	case errors.Is(err, domain.ErrEditInFlight):
		return codeEditInFlight
	default:
		return codeGenerationFailed
	}
}
