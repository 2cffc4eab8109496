package events

import (
	"time"

	"twohtsounds/apperrors"

	"go.mongodb.org/mongo-driver/bson"
)

// updateFieldsFromInput whitelists the editable event fields and converts
// them to their stored representation. Unknown keys are ignored rather
// than rejected; bookingId and timestamps are never client-writable.
func updateFieldsFromInput(input map[string]any) (bson.M, error) {
	fields := bson.M{}

	stringKeys := map[string]string{
		"title":       "title",
		"description": "description",
		"venue":       "venue",
		"address":     "address",
		"city":        "city",
		"state":       "state",
		"ticketUrl":   "ticketurl",
		"price":       "price",
		"imageUrl":    "imageurl",
	}
	for jsonKey, bsonKey := range stringKeys {
		if raw, ok := input[jsonKey]; ok {
			s, ok := raw.(string)
			if !ok {
				return nil, apperrors.Validation("Field %q must be a string", jsonKey)
			}
			if (jsonKey == "title" || jsonKey == "description") && s == "" {
				return nil, apperrors.Validation("Field %q must not be empty", jsonKey)
			}
			fields[bsonKey] = s
		}
	}

	if raw, ok := input["isPublic"]; ok {
		b, ok := raw.(bool)
		if !ok {
			return nil, apperrors.Validation("Field \"isPublic\" must be a boolean")
		}
		fields["ispublic"] = b
	}

	if raw, ok := input["date"]; ok {
		s, ok := raw.(string)
		if !ok {
			return nil, apperrors.Validation("Field \"date\" must be an RFC 3339 string")
		}
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return nil, apperrors.Validation("Field \"date\" must be an RFC 3339 string")
		}
		fields["date"] = t.UTC()
	}

	if len(fields) == 0 {
		return nil, apperrors.Validation("No editable fields supplied")
	}
	return fields, nil
}
