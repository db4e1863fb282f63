package remodel

// PostProcessor is an interface that can be passed as an option to
// NewGenerator (or Generator.Models)
//
// it is called once per record, after all fields are resolved, and its return
// value is used as the final model for that record
//
// only one post-process hook runs per call - a later PostProcessor option
// replaces an earlier one
type PostProcessor interface {
	PostProcess(model Model, record Record, index int) Model
}

// PostProcessorFunc is a func implementation of PostProcessor
type PostProcessorFunc func(model Model, record Record, index int) Model

var _ PostProcessor = (PostProcessorFunc)(nil)

func (f PostProcessorFunc) PostProcess(model Model, record Record, index int) Model {
	return f(model, record, index)
}
