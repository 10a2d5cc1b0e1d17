package stamp

// StaticBuilder turns bound values into the fixed text of a static element.
type StaticBuilder func(v *Values) (string, error)

// DynamicBuilder turns bound values into the render function of a dynamic element.
type DynamicBuilder func(v *Values) (RenderFunc, error)

// Field declares one bindable attribute of an element.
type Field struct {
	// Name is the field name and the primary attribute key.
	Name string

	// Abbreviations are tried in order when Name is absent.
	Abbreviations []string

	// Convert turns the raw attribute text into the typed value.
	// Nil keeps the raw string.
	Convert Converter

	// Required fails binding when no attribute matches and no Default is set.
	Required bool

	// Default is applied when no attribute matches. Nil means no default.
	Default any

	// Description is shown by tooling such as the CLI elements listing.
	Description string
}

// keys returns the attribute keys tried for this field, in order.
func (f Field) keys() []string {
	keys := make([]string, 0, 1+len(f.Abbreviations))
	keys = append(keys, f.Name)
	return append(keys, f.Abbreviations...)
}

func (f Field) convert(raw string) (any, error) {
	if f.Convert == nil {
		return raw, nil
	}
	return f.Convert(raw)
}

// ElementDescriptor is what a producer author declares to make an element
// available to templates.
type ElementDescriptor struct {
	Name        string
	Kind        Kind
	Fields      []Field
	Description string

	// Override replaces an existing registration with the same name.
	Override bool

	// Static must be set for KindStatic, Dynamic for KindDynamic.
	Static  StaticBuilder
	Dynamic DynamicBuilder
}

// Validate checks the descriptor is registrable.
func (d ElementDescriptor) Validate() error {
	if d.Name == "" {
		return NewInvalidDescriptorError(d.Name, ReasonEmptyName)
	}

	switch d.Kind {
	case KindStatic:
		if d.Static == nil {
			return NewInvalidDescriptorError(d.Name, ReasonMissingStatic)
		}
	case KindDynamic:
		if d.Dynamic == nil {
			return NewInvalidDescriptorError(d.Name, ReasonMissingDynamic)
		}
	default:
		return NewInvalidDescriptorError(d.Name, ReasonUnknownKind)
	}

	seen := make(map[string]struct{}, len(d.Fields))
	for _, f := range d.Fields {
		if f.Name == "" {
			return NewInvalidDescriptorError(d.Name, ReasonEmptyFieldName)
		}
		if _, dup := seen[f.Name]; dup {
			return NewInvalidDescriptorError(d.Name, ReasonDuplicateField)
		}
		seen[f.Name] = struct{}{}
	}
	return nil
}

// FieldNames returns declared field names in declaration order.
func (d ElementDescriptor) FieldNames() []string {
	names := make([]string, len(d.Fields))
	for i, f := range d.Fields {
		names[i] = f.Name
	}
	return names
}
