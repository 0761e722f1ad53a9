package gemini

import (
	"embed"
	"fmt"

	"github.com/toon-format/toon-go"
	"github.com/visionffe/visionffe-api/internal/domain"
	"go.yaml.in/yaml/v3"
)

//go:embed prompts/*.yml
var promptFiles embed.FS

// promptTemplate is one prompt file: the instruction plus its generation settings.
type promptTemplate struct {
	Instruction        string         `yaml:"instruction"`
	ResponseMimeType   string         `yaml:"response_mime_type"`
	ResponseSchema     map[string]any `yaml:"response_schema"`
	ResponseModalities []string       `yaml:"response_modalities"`
}

func (p promptTemplate) generationConfig() *GenerationConfig {
	return &GenerationConfig{
		ResponseMimeType:   p.ResponseMimeType,
		ResponseSchema:     p.ResponseSchema,
		ResponseModalities: p.ResponseModalities,
	}
}

type promptSet struct {
	identify   promptTemplate
	extract    promptTemplate
	categorize promptTemplate
}

func loadPrompts() (promptSet, error) {
	var set promptSet
	for name, dst := range map[string]*promptTemplate{
		"identify":   &set.identify,
		"extract":    &set.extract,
		"categorize": &set.categorize,
	} {
		if err := loadPrompt(name, dst); err != nil {
			return promptSet{}, err
		}
	}

	table, err := marshalCategoryTable()
	if err != nil {
		return promptSet{}, err
	}
	set.categorize.Instruction = fmt.Sprintf(set.categorize.Instruction, table)

	return set, nil
}

func loadPrompt(name string, dst *promptTemplate) error {
	file, err := promptFiles.Open("prompts/" + name + ".yml")
	if err != nil {
		return fmt.Errorf("failed to open %s prompt: %w", name, err)
	}
	defer file.Close() //nolint:errcheck

	if err := yaml.NewDecoder(file).Decode(dst); err != nil {
		return fmt.Errorf("failed to decode %s prompt: %w", name, err)
	}
	if dst.Instruction == "" {
		return fmt.Errorf("%s prompt has no instruction", name)
	}
	return nil
}

type categoryRow struct {
	Label    string
	Singular string
}

// marshalCategoryTable renders the canonical categories as a TOON table for the categorize prompt.
func marshalCategoryTable() (string, error) {
	categories := domain.Categories()
	rows := make([]categoryRow, len(categories))
	for i, c := range categories {
		rows[i] = categoryRow{Label: string(c), Singular: c.Singular()}
	}

	table, err := toon.MarshalString(struct{ Categories []categoryRow }{Categories: rows}, toon.WithLengthMarkers(true))
	if err != nil {
		return "", fmt.Errorf("failed to marshal category table: %w", err)
	}
	return table, nil
}
