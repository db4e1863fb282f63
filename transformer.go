package remodel

// Transformer transforms a resolved field value before it is assigned onto
// the model
//
// it is invoked whenever a transformer is registered for a field - even when
// no candidate resolved (in which case value is nil) - and the second return
// determines whether the field is set at all; return false to suppress the
// field (an existing default for the field is left in place)
type Transformer func(value any, record Record) (any, bool)

// Transformers is a map of Transformer by target field name
//
// an absent entry means no transformation for that field
type Transformers map[string]Transformer

func (ts Transformers) copy() Transformers {
	result := make(Transformers, len(ts))
	for k, v := range ts {
		result[k] = v
	}
	return result
}
