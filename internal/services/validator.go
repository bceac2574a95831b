package services

import (
	"github.com/Stsam98/employee-service/internal/models"
)

// requiredFields must be present and non-empty on creation; recognizedFields
// is the full set the API accepts, anything else in a payload is ignored.
var (
	requiredFields   = []string{"name", "surname", "position"}
	recognizedFields = []string{"name", "surname", "position", "city"}
)

// validateCreatePayload checks a creation payload. Rules are applied in
// order: required fields first, then types for whatever is present.
func validateCreatePayload(payload map[string]any) *models.ValidationError {
	var missing []string
	for _, field := range requiredFields {
		value, ok := payload[field]
		if !ok || value == nil {
			missing = append(missing, field)
			continue
		}
		if s, isString := value.(string); isString && s == "" {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return &models.ValidationError{Kind: models.MissingFields, Fields: missing}
	}

	return validateFieldTypes(payload)
}

// validateUpdatePayload checks a partial update payload. Fields omitted from
// the payload are not an error; a required field present but empty is.
func validateUpdatePayload(payload map[string]any) *models.ValidationError {
	var empty []string
	for _, field := range requiredFields {
		value, ok := payload[field]
		if !ok {
			continue
		}
		if value == nil {
			empty = append(empty, field)
			continue
		}
		if s, isString := value.(string); isString && s == "" {
			empty = append(empty, field)
		}
	}
	if len(empty) > 0 {
		return &models.ValidationError{Kind: models.EmptyRequiredFields, Fields: empty}
	}

	return validateFieldTypes(payload)
}

// validateFieldTypes requires every recognized field present in the payload
// to be a JSON string. A null city is allowed and clears the value.
func validateFieldTypes(payload map[string]any) *models.ValidationError {
	var invalid []string
	for _, field := range recognizedFields {
		value, ok := payload[field]
		if !ok || value == nil {
			continue
		}
		if _, isString := value.(string); !isString {
			invalid = append(invalid, field)
		}
	}
	if len(invalid) > 0 {
		return &models.ValidationError{Kind: models.InvalidFieldTypes, Fields: invalid}
	}

	return nil
}

// extractFields pulls the recognized fields out of a validated payload.
// Unrecognized keys never reach the repository.
func extractFields(payload map[string]any) *models.EmployeeFields {
	fields := &models.EmployeeFields{}

	if value, ok := payload["name"].(string); ok {
		fields.Name = &value
	}
	if value, ok := payload["surname"].(string); ok {
		fields.Surname = &value
	}
	if value, ok := payload["position"].(string); ok {
		fields.Position = &value
	}
	if value, ok := payload["city"]; ok {
		fields.CitySet = true
		if s, isString := value.(string); isString {
			fields.City = &s
		}
	}

	return fields
}
