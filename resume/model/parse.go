package model

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/tidwall/gjson"
	"github.com/xeipuuv/gojsonschema"
)

// requestSchema pins the structural assumptions the assembler relies on.
// Scalar fields are left untyped; the normalizer coerces them.
const requestSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "format":          { "type": ["string", "null"] },
    "accentColor":     { "type": ["string", "null"] },
    "skills":          { "type": ["string", "array", "number", "boolean", "null"] },
    "workExperiences": { "type": ["array", "null"], "items": { "type": ["object", "null"] } },
    "educations":      { "type": ["array", "null"], "items": { "type": ["object", "null"] } }
  }
}`

var (
	compiledSchema = mustCompileSchema(requestSchema)
	validate       = validator.New(validator.WithRequiredStructEnabled())
)

type requestRules struct {
	Format      string `validate:"omitempty,oneof=docx pdf"`
	AccentColor string `validate:"omitempty,hexcolor"`
}

func mustCompileSchema(schema string) *gojsonschema.Schema {
	compiled, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(schema))
	if err != nil {
		panic(fmt.Sprintf("compile request schema: %v", err))
	}
	return compiled
}

// ParseRequest decodes a generate request body. An empty body is treated as
// an empty object. Errors wrap ErrInvalidInput or ErrUnsupportedFormat.
func ParseRequest(body []byte) (Request, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		body = []byte("{}")
	}
	if !gjson.ValidBytes(body) {
		return Request{}, fmt.Errorf("%w: malformed JSON body", ErrInvalidInput)
	}
	if err := validateShape(body); err != nil {
		return Request{}, err
	}

	root := gjson.ParseBytes(body)
	rawFormat := Text(root.Get("format"))
	resume := ParseResume(root)

	rules := requestRules{
		Format:      strings.ToLower(rawFormat),
		AccentColor: resume.AccentColor,
	}
	if err := validateRules(rules, rawFormat); err != nil {
		return Request{}, err
	}

	format := FormatDOCX
	if rules.Format != "" {
		format = Format(rules.Format)
	}
	return Request{Format: format, Resume: resume}, nil
}

// ParseFormat maps a format selector to a Format. Empty means docx.
func ParseFormat(raw string) (Format, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if normalized == "" {
		return FormatDOCX, nil
	}
	if err := validateRules(requestRules{Format: normalized}, raw); err != nil {
		return "", err
	}
	return Format(normalized), nil
}

// ParseResume extracts a ResumeInput from a decoded JSON object.
func ParseResume(root gjson.Result) ResumeInput {
	resume := ResumeInput{
		Name:        Text(root.Get("name")),
		Email:       Text(root.Get("email")),
		Phone:       Text(root.Get("phone")),
		LinkedIn:    Text(root.Get("linkedin")),
		Summary:     Text(root.Get("summary")),
		AccentColor: Text(root.Get("accentColor")),
		Skills:      SplitSkills(root.Get("skills")),
	}

	for _, item := range root.Get("workExperiences").Array() {
		resume.WorkExperiences = append(resume.WorkExperiences, WorkExperience{
			JobTitle:       Text(item.Get("jobTitle")),
			Company:        Text(item.Get("company")),
			Location:       Text(item.Get("location")),
			DateFrom:       Text(item.Get("dateFrom")),
			DateTo:         Text(item.Get("dateTo")),
			IsPresent:      Flag(item.Get("isPresent")),
			JobDescription: Text(item.Get("jobDescription")),
		})
	}

	for _, item := range root.Get("educations").Array() {
		resume.Educations = append(resume.Educations, Education{
			Degree:    Text(item.Get("degree")),
			School:    Text(item.Get("school")),
			DateFrom:  Text(item.Get("dateFrom")),
			DateTo:    Text(item.Get("dateTo")),
			IsPresent: Flag(item.Get("isPresent")),
		})
	}

	return resume
}

func validateShape(body []byte) error {
	result, err := compiledSchema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if result.Valid() {
		return nil
	}

	verr := &ValidationError{Errors: make([]FieldError, 0, len(result.Errors()))}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		verr.Errors = append(verr.Errors, FieldError{Field: field, Message: desc.Description()})
	}
	return verr
}

func validateRules(rules requestRules, rawFormat string) error {
	err := validate.Struct(rules)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	for _, fe := range fieldErrs {
		switch fe.Field() {
		case "Format":
			return fmt.Errorf("%w %q", ErrUnsupportedFormat, rawFormat)
		case "AccentColor":
			return fmt.Errorf("%w: accentColor must be a hex color such as #1F3864", ErrInvalidInput)
		}
	}
	return fmt.Errorf("%w: %v", ErrInvalidInput, err)
}
