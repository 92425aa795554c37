package history

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/resume-analyzer/internal/schemas"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// CurrentVersion is the history document version this program writes.
const CurrentVersion = 1

// document is the on-disk envelope for the file backend.
type document struct {
	Version int                    `json:"version"`
	Records []types.AnalysisRecord `json:"records"`
}

const recordSchema = `{
  "type": "object",
  "required": ["filename", "match_score", "semantic_score", "suggestions", "resume_text", "job_text"],
  "properties": {
    "id": {"type": "string"},
    "created_at": {"type": "string"},
    "filename": {"type": "string"},
    "match_score": {"type": "number"},
    "semantic_score": {"type": "number"},
    "suggestions": {"type": ["array", "null"], "items": {"type": "string"}},
    "resume_text": {"type": "string"},
    "job_text": {"type": "string"}
  }
}`

// documentSchema validates the versioned envelope.
const documentSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["version", "records"],
  "properties": {
    "version": {"type": "integer", "minimum": 1},
    "records": {"type": "array", "items": ` + recordSchema + `}
  }
}`

// legacySchema validates the bare record array written before versioning.
const legacySchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "array",
  "items": ` + recordSchema + `
}`

// decodeDocument parses either a versioned envelope or a legacy bare array.
// Records missing an ID are assigned one derived from their position, so
// repeated loads of the same legacy document agree.
func decodeDocument(source string, data []byte) ([]types.AnalysisRecord, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return []types.AnalysisRecord{}, nil
	}

	var records []types.AnalysisRecord
	if trimmed[0] == '[' {
		if err := validate(source, legacySchema, trimmed); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return nil, &CorruptHistoryError{Source: source, Message: "failed to decode records", Cause: err}
		}
	} else {
		var probe struct {
			Version int `json:"version"`
		}
		if err := json.Unmarshal(trimmed, &probe); err != nil {
			return nil, &CorruptHistoryError{Source: source, Message: "failed to decode document", Cause: err}
		}
		if probe.Version > CurrentVersion {
			return nil, &UnsupportedVersionError{Version: probe.Version, Supported: CurrentVersion}
		}
		if err := validate(source, documentSchema, trimmed); err != nil {
			return nil, err
		}
		var doc document
		if err := json.Unmarshal(trimmed, &doc); err != nil {
			return nil, &CorruptHistoryError{Source: source, Message: "failed to decode records", Cause: err}
		}
		records = doc.Records
	}

	out := make([]types.AnalysisRecord, 0, len(records))
	for i, rec := range records {
		if rec.ID == uuid.Nil {
			rec.ID = legacyID(i, rec)
		}
		out = append(out, rec.Clone())
	}
	return out, nil
}

func legacyID(index int, rec types.AnalysisRecord) uuid.UUID {
	name := fmt.Sprintf("resume-analyzer/legacy/%d/%s", index, rec.Filename)
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(name))
}

func validate(source, schema string, data []byte) error {
	if err := schemas.ValidateJSONString(schema, string(data)); err != nil {
		return &CorruptHistoryError{Source: source, Message: "schema validation failed", Cause: err}
	}
	return nil
}

// encodeDocument serializes records in the current envelope format.
func encodeDocument(records []types.AnalysisRecord) ([]byte, error) {
	if records == nil {
		records = []types.AnalysisRecord{}
	}
	return json.MarshalIndent(document{Version: CurrentVersion, Records: records}, "", "  ")
}
