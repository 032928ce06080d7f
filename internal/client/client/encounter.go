package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/medico/internal/client/models"
)

const (
	imagesField      = "imagenes"
	defaultImageType = "image/jpeg"
)

// SubmitEncounter records an attended appointment with its images in one
// multipart request.
//
// Every attachment is opened before anything is sent. If any open fails,
// the files already opened are closed and no request is made. Otherwise
// all files are closed exactly once after the request, whatever its
// outcome; a close failure is logged and does not change the result.
//
// On success Detections[i] of the result belongs to attachment i.
func (c *HTTPClient) SubmitEncounter(ctx context.Context, p models.EncounterPayload) (*models.EncounterResult, error) {
	files, err := c.openAttachments(p.Attachments)
	if err != nil {
		return nil, err
	}
	defer c.closeAll(ctx, p.Attachments, files)

	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)
	contentType := mw.FormDataContentType()

	written := make(chan error, 1)
	go func() {
		err := writeEncounterForm(mw, p, files)
		if err == nil {
			err = mw.Close()
		}
		pw.CloseWithError(err)
		written <- err
	}()

	req, err := c.newRequest(ctx, http.MethodPost, "/Medico/atencion", nil, pr)
	if err != nil {
		pr.CloseWithError(err)
		<-written
		return nil, err
	}
	req.Header.Set("Content-Type", contentType)
	c.authorize(ctx, req)

	resp, err := c.send(req)
	// The transport normally closes the body itself; closing here as well
	// guarantees the writer goroutine is released before files are closed.
	_ = pr.Close()
	if werr := <-written; werr != nil && !errors.Is(werr, io.ErrClosedPipe) {
		if resp != nil {
			resp.Body.Close()
		}
		return nil, fmt.Errorf("%w: write images: %v", ErrResource, werr)
	}
	if err != nil {
		return nil, err
	}

	var res models.EncounterResult
	if err := c.interpret(ctx, resp, &res); err != nil {
		return nil, err
	}
	if len(res.Detections) != len(p.Attachments) {
		return nil, fmt.Errorf("%w: got detections for %d images, submitted %d",
			ErrMalformedResponse, len(res.Detections), len(p.Attachments))
	}
	return &res, nil
}

// openAttachments opens every attachment in order. On failure it closes
// what it had opened so far before returning.
func (c *HTTPClient) openAttachments(atts []models.Attachment) ([]io.ReadCloser, error) {
	files := make([]io.ReadCloser, 0, len(atts))
	for _, a := range atts {
		f, err := c.openFile(a.Path)
		if err != nil {
			c.closeAll(context.Background(), atts, files)
			return nil, fmt.Errorf("%w: open %q: %v", ErrResource, displayName(a), err)
		}
		files = append(files, f)
	}
	return files, nil
}

func (c *HTTPClient) closeAll(ctx context.Context, atts []models.Attachment, files []io.ReadCloser) {
	for i, f := range files {
		if err := f.Close(); err != nil {
			c.log.Warn(ctx, "closing attachment failed", "file", displayName(atts[i]), "error", err)
		}
	}
}

func writeEncounterForm(mw *multipart.Writer, p models.EncounterPayload, files []io.ReadCloser) error {
	fields := [][2]string{
		{"cita_id", string(p.VisitID)},
		{"sistema", p.System},
		{"diagnostico", p.Diagnosis},
		{"recomendaciones", p.Recommendations},
	}
	for _, kv := range fields {
		if err := mw.WriteField(kv[0], kv[1]); err != nil {
			return err
		}
	}

	for i, a := range p.Attachments {
		name := displayName(a)
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition",
			fmt.Sprintf(`form-data; name="%s"; filename="%s"`, imagesField, escapeQuotes(name)))
		h.Set("Content-Type", imageContentType(name, a.Path))

		part, err := mw.CreatePart(h)
		if err != nil {
			return err
		}
		if _, err := io.Copy(part, files[i]); err != nil {
			return fmt.Errorf("copy %q: %w", name, err)
		}
	}
	return nil
}

func displayName(a models.Attachment) string {
	if a.Name != "" {
		return a.Name
	}
	return filepath.Base(a.Path)
}

// imageContentType guesses from the display name, then the path, and
// falls back to JPEG, which is what the backend expects by default.
func imageContentType(name, path string) string {
	for _, candidate := range []string{name, path} {
		ct := mime.TypeByExtension(strings.ToLower(filepath.Ext(candidate)))
		if strings.HasPrefix(ct, "image/") {
			return ct
		}
	}
	return defaultImageType
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
