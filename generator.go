package remodel

import "fmt"

// idField receives the record's positional index when no candidate resolves
const idField = "id"

// Defaults is a partial model merged into each model before field resolution
//
// a resolved (or transformed) field overwrites its default; an unresolved
// field leaves the default in place
type Defaults Model

// Generator is the record-to-model generator interface
type Generator interface {
	// Models maps each source record into a Model
	//
	// the result always has the same length and ordering as records - one
	// model per record, regardless of how many of its fields resolved
	//
	// options can be any of: Transformers, Defaults, PostProcessor or PostProcessorFunc
	Models(records []Record, options ...any) ([]Model, error)
	// Extend creates a new Generator adding the specified field mappings and options
	Extend(mappings FieldMappings, options ...any) (Generator, error)
}

// NewGenerator creates a new record-to-model generator
//
// mappings drives which fields appear on generated models - each target field
// is resolved by scanning its Candidates in order and taking the first
// defined value
//
// options can be any of: Transformers, Defaults, PostProcessor or PostProcessorFunc
func NewGenerator(mappings FieldMappings, options ...any) (Generator, error) {
	result := &generator{
		mappings:     FieldMappings{},
		transformers: Transformers{},
		defaults:     Defaults{},
	}
	for k, v := range mappings {
		result.mappings[k] = v
	}
	if err := result.addOptions(options...); err != nil {
		return nil, err
	}
	return result, nil
}

// MustNewGenerator is the same as NewGenerator, except it panics on error
func MustNewGenerator(mappings FieldMappings, options ...any) Generator {
	g, err := NewGenerator(mappings, options...)
	if err != nil {
		panic(err)
	}
	return g
}

// Generate maps records into models using a one-off generator
//
// options can be any of: Transformers, Defaults, PostProcessor or PostProcessorFunc
func Generate(records []Record, mappings FieldMappings, options ...any) ([]Model, error) {
	g, err := NewGenerator(mappings, options...)
	if err != nil {
		return nil, err
	}
	return g.Models(records)
}

type generator struct {
	mappings      FieldMappings
	transformers  Transformers
	defaults      Defaults
	postProcessor PostProcessor
}

var _ Generator = (*generator)(nil)

func (g *generator) Models(records []Record, options ...any) ([]Model, error) {
	transformers, defaults, postProcessor, err := g.modelOptions(options...)
	if err != nil {
		return nil, err
	}
	result := make([]Model, 0, len(records))
	for i, record := range records {
		result = append(result, g.model(record, i, transformers, defaults, postProcessor))
	}
	return result, nil
}

func (g *generator) model(record Record, index int, transformers Transformers, defaults Defaults, postProcessor PostProcessor) Model {
	model := make(Model, len(defaults)+len(g.mappings))
	for k, v := range defaults {
		model[k] = v
	}
	for field, candidates := range g.mappings {
		if len(candidates) == 0 {
			continue
		}
		value, defined := candidates.resolve(record)
		if !defined && field == idField {
			value, defined = index, true
		}
		if transformer, ok := transformers[field]; ok {
			value, defined = transformer(value, record)
		}
		if defined {
			model[field] = value
		}
	}
	if postProcessor != nil {
		model = postProcessor.PostProcess(model, record, index)
	}
	return model
}

func (g *generator) Extend(mappings FieldMappings, options ...any) (Generator, error) {
	result := &generator{
		mappings:      g.mappings.copy(),
		transformers:  g.transformers.copy(),
		defaults:      Defaults(Model(g.defaults).copy()),
		postProcessor: g.postProcessor,
	}
	for k, v := range mappings {
		result.mappings[k] = v
	}
	if err := result.addOptions(options...); err != nil {
		return nil, err
	}
	return result, nil
}

func (g *generator) addOptions(options ...any) error {
	for _, o := range options {
		if o != nil {
			switch option := o.(type) {
			case Transformers:
				for k, v := range option {
					g.transformers[k] = v
				}
			case Defaults:
				for k, v := range option {
					g.defaults[k] = v
				}
			case PostProcessor:
				g.postProcessor = option
			default:
				if ppf, ok := o.(func(Model, Record, int) Model); ok {
					g.postProcessor = PostProcessorFunc(ppf)
				} else {
					return fmt.Errorf("unknown option type: %T", o)
				}
			}
		}
	}
	return nil
}

// modelOptions merges per-call options over the generator's own - copies are
// taken before merging so the generator is never mutated by a call
func (g *generator) modelOptions(options ...any) (transformers Transformers, defaults Defaults, postProcessor PostProcessor, err error) {
	transformers = g.transformers
	transformersCopied := false
	defaults = g.defaults
	defaultsCopied := false
	postProcessor = g.postProcessor
	for _, o := range options {
		if o != nil {
			switch option := o.(type) {
			case Transformers:
				if !transformersCopied {
					transformersCopied = true
					transformers = g.transformers.copy()
				}
				for k, v := range option {
					transformers[k] = v
				}
			case Defaults:
				if !defaultsCopied {
					defaultsCopied = true
					defaults = Defaults(Model(g.defaults).copy())
				}
				for k, v := range option {
					defaults[k] = v
				}
			case PostProcessor:
				postProcessor = option
			default:
				if ppf, ok := o.(func(Model, Record, int) Model); ok {
					postProcessor = PostProcessorFunc(ppf)
				} else {
					return nil, nil, nil, fmt.Errorf("unknown option type: %T", o)
				}
			}
		}
	}
	return transformers, defaults, postProcessor, nil
}

func (m Model) copy() Model {
	result := make(Model, len(m))
	for k, v := range m {
		result[k] = v
	}
	return result
}
