package vocab

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Danokhov/pro-mnemo-app/internal/database"
	"github.com/Danokhov/pro-mnemo-app/pkg/models"
	"github.com/xuri/excelize/v2"
)

// ImportConfig defines where each catalog field lives in the source file
type ImportConfig struct {
	FilePath            string // Path to the Excel or CSV file
	WordColumn          string // Column with the German word
	TranslationColumn   string // Column with the translation
	TranscriptionColumn string // Column with the transcription
	PartOfSpeechColumn  string // Column with the part of speech
	TopicColumn         string // Column with the topic name
	MnemonicColumn      string // Column with the mnemonic anchor
	ExamplesColumn      string // Column with usage examples
	SheetName           string // Name of the sheet to import
	StartRow            int    // The row to start importing from (1-based)
}

// DefaultImportConfig returns the default column layout
func DefaultImportConfig() ImportConfig {
	return ImportConfig{
		WordColumn:          "A",
		TranslationColumn:   "B",
		TranscriptionColumn: "C",
		PartOfSpeechColumn:  "D",
		TopicColumn:         "E",
		MnemonicColumn:      "F",
		ExamplesColumn:      "G",
		SheetName:           "Sheet1",
		StartRow:            2, // Skip the header row
	}
}

// ImportResult holds the outcome of an import run
type ImportResult struct {
	TotalProcessed int
	Imported       int
	Skipped        int
	Errors         []string
}

var errSkipRow = errors.New("skipping row")

// ImportCatalog imports catalog entries from an Excel or CSV file into
// the words table. Entry ids are derived from the normalized word text,
// so re-importing the same file is idempotent.
func ImportCatalog(ctx context.Context, config ImportConfig, words *database.WordRepository, topics *database.TopicRepository) (*ImportResult, error) {
	ext := strings.ToLower(filepath.Ext(config.FilePath))
	if ext == ".csv" {
		return importFromCSV(ctx, config, words, topics)
	}
	return importFromExcel(ctx, config, words, topics)
}

// importFromExcel imports catalog entries from an Excel sheet
func importFromExcel(ctx context.Context, config ImportConfig, words *database.WordRepository, topics *database.TopicRepository) (*ImportResult, error) {
	f, err := excelize.OpenFile(config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(config.SheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %v", err)
	}

	result := &ImportResult{Errors: make([]string, 0)}
	for i, row := range rows {
		if i < config.StartRow-1 {
			continue
		}
		result.TotalProcessed++
		if err := importRow(ctx, row, config, words, topics, result); err != nil {
			if errors.Is(err, errSkipRow) {
				result.Skipped++
				continue
			}
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", i+1, err))
		}
	}
	return result, nil
}

// importFromCSV imports catalog entries from a CSV file with the same
// column layout
func importFromCSV(ctx context.Context, config ImportConfig, words *database.WordRepository, topics *database.TopicRepository) (*ImportResult, error) {
	file, err := os.Open(config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %v", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // Allow variable number of fields
	reader.LazyQuotes = true

	result := &ImportResult{Errors: make([]string, 0)}
	rowNum := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading CSV: %v", err)
		}

		rowNum++
		if rowNum < config.StartRow {
			continue
		}
		result.TotalProcessed++
		if err := importRow(ctx, row, config, words, topics, result); err != nil {
			if errors.Is(err, errSkipRow) {
				result.Skipped++
				continue
			}
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", rowNum, err))
		}
	}
	return result, nil
}

// importRow maps one source row onto a catalog entry and stores it
func importRow(ctx context.Context, row []string, config ImportConfig, words *database.WordRepository, topics *database.TopicRepository, result *ImportResult) error {
	word := cell(row, config.WordColumn)
	translation := cell(row, config.TranslationColumn)
	if strings.TrimSpace(word) == "" || strings.TrimSpace(translation) == "" {
		return errSkipRow
	}

	entry := models.VocabEntry{
		ID:            catalogID(word),
		Word:          strings.TrimSpace(word),
		Translation:   strings.TrimSpace(translation),
		Transcription: strings.TrimSpace(cell(row, config.TranscriptionColumn)),
		PartOfSpeech:  strings.TrimSpace(cell(row, config.PartOfSpeechColumn)),
		Mnemonic:      strings.TrimSpace(cell(row, config.MnemonicColumn)),
		Examples:      strings.TrimSpace(cell(row, config.ExamplesColumn)),
	}

	if topicName := strings.TrimSpace(cell(row, config.TopicColumn)); topicName != "" {
		entry.Topics = []string{topicName}
		if _, err := topics.GetOrCreate(ctx, topicName); err != nil {
			return err
		}
	}

	if err := words.Upsert(ctx, &entry); err != nil {
		return err
	}
	result.Imported++
	return nil
}

// catalogID derives a stable entry id from the word text. Imported
// entries share the id scheme with synthesized ids minus the temp marker,
// so re-imports land on the same row.
func catalogID(word string) string {
	return "w_" + strings.TrimPrefix(SynthesizeID(word), "temp_")
}

// cell returns the value of the named spreadsheet column in a row,
// or "" when the row is too short
func cell(row []string, column string) string {
	if column == "" {
		return ""
	}
	idx := columnToIndex(column)
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// columnToIndex converts a spreadsheet column letter ("A", "B", ... "AA")
// to a zero-based index
func columnToIndex(column string) int {
	column = strings.ToUpper(strings.TrimSpace(column))
	idx := 0
	for _, r := range column {
		if r < 'A' || r > 'Z' {
			return -1
		}
		idx = idx*26 + int(r-'A') + 1
	}
	return idx - 1
}
