package models

import (
	"errors"
	"fmt"
	"strings"
)

var ErrMissingField = errors.New("missing required field")

// Attachment is a local image selected for upload.
type Attachment struct {
	Name string
	Path string
}

// EncounterPayload is everything recorded for one attended appointment.
type EncounterPayload struct {
	VisitID         ID
	System          string
	Diagnosis       string
	Recommendations string
	Attachments     []Attachment
}

// Validate checks the form-level rules: a visit reference and all three
// clinical texts must be present. Attachments are optional.
func (p EncounterPayload) Validate() error {
	fields := []struct {
		name, value string
	}{
		{"visit", string(p.VisitID)},
		{"system", p.System},
		{"diagnosis", p.Diagnosis},
		{"recommendations", p.Recommendations},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%w: %s", ErrMissingField, f.name)
		}
	}
	return nil
}

// Detection is one label the backend's image analysis found in an image.
type Detection struct {
	Class      string  `json:"clase"`
	Confidence float64 `json:"confianza"`
}

// EncounterResult is the backend's answer to a successful submission.
// Detections[i] belongs to the i-th submitted attachment.
type EncounterResult struct {
	Message     string        `json:"mensaje"`
	EncounterID ID            `json:"atencion_id"`
	Detections  [][]Detection `json:"detecciones"`
}

// AttachmentDetections pairs an attachment with what was found in it.
type AttachmentDetections struct {
	Attachment Attachment
	Detections []Detection
}

// Pair zips attachments with Detections by position. It fails when the
// lengths differ, since positions would no longer line up.
func (r *EncounterResult) Pair(attachments []Attachment) ([]AttachmentDetections, error) {
	if len(r.Detections) != len(attachments) {
		return nil, fmt.Errorf("got detections for %d images, submitted %d", len(r.Detections), len(attachments))
	}
	out := make([]AttachmentDetections, len(attachments))
	for i, a := range attachments {
		out[i] = AttachmentDetections{Attachment: a, Detections: r.Detections[i]}
	}
	return out, nil
}

// Best returns the most confident detection, or false when there is none.
func Best(ds []Detection) (Detection, bool) {
	if len(ds) == 0 {
		return Detection{}, false
	}
	best := ds[0]
	for _, d := range ds[1:] {
		if d.Confidence > best.Confidence {
			best = d
		}
	}
	return best, true
}
