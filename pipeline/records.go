package pipeline

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/docsieve/docsieve/model"
)

// CollectionInput is the JSON request describing one collection: the
// documents to process and the persona and task to rank them for.
type CollectionInput struct {
	Documents []InputDocument `json:"documents"`
	Persona   PersonaSpec     `json:"persona"`
	Job       JobSpec         `json:"job_to_be_done"`
}

// InputDocument names one document in a collection
type InputDocument struct {
	Filename string `json:"filename"`
	Title    string `json:"title,omitempty"`
}

// PersonaSpec carries the free-text role description
type PersonaSpec struct {
	Role string `json:"role"`
}

// JobSpec carries the free-text task description
type JobSpec struct {
	Task string `json:"task"`
}

// CollectionOutput is the JSON record produced for one collection.
type CollectionOutput struct {
	Metadata           OutputMetadata     `json:"metadata"`
	ExtractedSections  []ExtractedSection `json:"extracted_sections"`
	SubsectionAnalysis []SubsectionEntry  `json:"subsection_analysis"`
}

// OutputMetadata echoes the request plus a processing timestamp
type OutputMetadata struct {
	InputDocuments      []string `json:"input_documents"`
	Persona             string   `json:"persona"`
	JobToBeDone         string   `json:"job_to_be_done"`
	ProcessingTimestamp string   `json:"processing_timestamp"`
}

// ExtractedSection is one ranked section in the collection output
type ExtractedSection struct {
	Document       string `json:"document"`
	SectionTitle   string `json:"section_title"`
	ImportanceRank int    `json:"importance_rank"`
	PageNumber     int    `json:"page_number"`
}

// SubsectionEntry carries the refined text for one ranked section
type SubsectionEntry struct {
	Document       string `json:"document"`
	RefinedText    string `json:"refined_text"`
	PageNumber     int    `json:"page_number"`
	ImportanceRank int    `json:"importance_rank"`
}

// LoadInput reads and decodes a collection input file.
func LoadInput(path string) (*CollectionInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read collection input: %w", err)
	}
	var input CollectionInput
	if err := json.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("decode collection input: %w", err)
	}
	return &input, nil
}

// WriteOutline writes an outline record as indented JSON.
func WriteOutline(path string, outline *model.Outline) error {
	return writeJSON(path, outline)
}

// WriteOutput writes a collection output record as indented JSON.
func WriteOutput(path string, output *CollectionOutput) error {
	return writeJSON(path, output)
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
