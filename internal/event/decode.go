package event

import "github.com/mitchellh/mapstructure"

// DecodePayload decodes an event payload into T.
// Payloads published in-process already carry the struct; payloads that
// crossed a serialization boundary arrive as maps and are decoded by field tag.
func DecodePayload[T any](input interface{}) (T, error) {
	if v, ok := input.(T); ok {
		return v, nil
	}
	if p, ok := input.(*T); ok && p != nil {
		return *p, nil
	}

	var result T
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &result,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return result, err
	}
	return result, dec.Decode(input)
}
