package sim

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/roversim/server/internal/data"
	"github.com/roversim/server/internal/object"
)

// TemplateFactory builds units from the YAML template table. Types without a
// template cannot be constructed — that is the creation-failure path the
// registry reports to its caller.
type TemplateFactory struct {
	templates *data.TemplateTable
	log       *zap.Logger
}

func NewTemplateFactory(templates *data.TemplateTable, log *zap.Logger) *TemplateFactory {
	if log == nil {
		log = zap.NewNop()
	}
	return &TemplateFactory{templates: templates, log: log}
}

// Create implements object.Factory.
func (f *TemplateFactory) Create(params object.CreateParams) (object.Object, error) {
	tmpl := f.templates.Get(params.Type)
	if tmpl == nil {
		f.log.Warn("no template for object type", zap.Stringer("type", params.Type))
		return nil, fmt.Errorf("no template for type %s", params.Type)
	}
	return newUnit(params, tmpl), nil
}
