package validate

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var v = validator.New()

// decode round-trips the tool-call arguments map through JSON into a
// typed struct, the way the teacher's handlers assert
// params["field"].(type) but generalized into one schema-driven step.
func decode(args map[string]any, dst any) error {
	raw, err := json.Marshal(args)
	if err != nil {
		return fieldError("(root)", "decode", fmt.Sprintf("arguments are not encodable: %v", err))
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fieldError("(root)", "decode", fmt.Sprintf("arguments do not match the expected shape: %v", err))
	}
	return nil
}

// structError turns the first go-playground/validator failure into our
// field-path Error shape.
func structError(err error) *Error {
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return fieldError("(root)", "validate", err.Error())
	}
	fe := verrs[0]
	return fieldError(fe.Field(), fe.Tag(), fmt.Sprintf("failed constraint %q", fe.Tag()))
}

func validateCriterion(idx int, c SearchCriterionInput) *Error {
	field := fmt.Sprintf("searchCriteria[%d]", idx)
	if c.Op != "exists" && c.Op != "not_exists" && c.Value == "" {
		return fieldError(field+".value", "required_unless_exists", "value is required unless op is exists/not_exists")
	}
	if c.Type == "noteProperty" {
		// property recognition is the compiler's job (C2); C3 only
		// enforces shape, not the note-property enumeration.
	}
	return nil
}

// SearchNotes validates the search_notes tool's arguments.
func SearchNotes(args map[string]any) (*SearchNotesInput, error) {
	var in SearchNotesInput
	if err := decode(args, &in); err != nil {
		return nil, err
	}
	if err := v.Struct(&in); err != nil {
		return nil, structError(err)
	}
	if in.Text == "" && len(in.SearchCriteria) == 0 {
		return nil, fieldError("text", "required_without_criteria", "one of text or searchCriteria is required")
	}
	if in.Limit != nil && *in.Limit < 1 {
		return nil, fieldError("limit", "min", "limit must be at least 1 when provided")
	}
	for i, c := range in.SearchCriteria {
		if err := validateCriterion(i, c); err != nil {
			return nil, err
		}
	}
	return &in, nil
}

// ResolveNoteID validates the resolve_note_id tool's arguments.
func ResolveNoteID(args map[string]any) (*ResolveNoteIDInput, error) {
	var in ResolveNoteIDInput
	if err := decode(args, &in); err != nil {
		return nil, err
	}
	if err := v.Struct(&in); err != nil {
		return nil, structError(err)
	}
	if in.MaxResults == 0 {
		in.MaxResults = 3
	}
	if in.MaxResults < 1 {
		in.MaxResults = 1
	}
	if in.MaxResults > 10 {
		in.MaxResults = 10
	}
	return &in, nil
}

// GetNote validates the get_note tool's arguments.
func GetNote(args map[string]any) (*GetNoteInput, error) {
	var in GetNoteInput
	if err := decode(args, &in); err != nil {
		return nil, err
	}
	if err := v.Struct(&in); err != nil {
		return nil, structError(err)
	}
	if in.IncludeContent == nil {
		t := true
		in.IncludeContent = &t
	}
	return &in, nil
}

// CreateNote validates the create_note tool's arguments.
func CreateNote(args map[string]any) (*CreateNoteInput, error) {
	var in CreateNoteInput
	if err := decode(args, &in); err != nil {
		return nil, err
	}
	if err := v.Struct(&in); err != nil {
		return nil, structError(err)
	}
	if in.Type == "code" && in.MimeType == "" {
		return nil, fieldError("mime", "required_for_code", "mime is required when type is \"code\"")
	}
	return &in, nil
}

// UpdateNote validates the update_note tool's arguments.
func UpdateNote(args map[string]any) (*UpdateNoteInput, error) {
	var in UpdateNoteInput
	if err := decode(args, &in); err != nil {
		return nil, err
	}
	if err := v.Struct(&in); err != nil {
		return nil, structError(err)
	}
	if in.Title == "" && in.Content == "" {
		return nil, fieldError("title", "required_without_content", "at least one of title or content is required")
	}
	if in.Revision == nil {
		t := true
		in.Revision = &t
	}
	return &in, nil
}

// AppendNote validates the append_note tool's arguments.
func AppendNote(args map[string]any) (*AppendNoteInput, error) {
	var in AppendNoteInput
	if err := decode(args, &in); err != nil {
		return nil, err
	}
	if err := v.Struct(&in); err != nil {
		return nil, structError(err)
	}
	if in.Revision == nil {
		f := false
		in.Revision = &f
	}
	return &in, nil
}

// DeleteNote validates the delete_note tool's arguments.
func DeleteNote(args map[string]any) (*DeleteNoteInput, error) {
	var in DeleteNoteInput
	if err := decode(args, &in); err != nil {
		return nil, err
	}
	if err := v.Struct(&in); err != nil {
		return nil, structError(err)
	}
	return &in, nil
}
