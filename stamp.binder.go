package stamp

import "errors"

// Bind applies attrs to the descriptor's fields in declaration order and
// builds the element.
//
// For each field the primary key is looked up first, then each abbreviation.
// A found value is converted and its raw pair recorded on the element for
// render-to-template; otherwise the default applies (nothing recorded);
// otherwise a required field fails; otherwise the field stays unset.
func Bind(desc *ElementDescriptor, attrs Attributes, env Environment) (*Element, error) {
	values := newValues(desc.Name, env)
	var consumed Attributes

	for _, field := range desc.Fields {
		key, raw, found := lookupField(attrs, field)
		switch {
		case found:
			typed, err := field.convert(raw)
			if err != nil {
				return nil, NewAttributeConversionError(desc.Name, field.Name, raw, err)
			}
			values.set(field.Name, typed)
			consumed = append(consumed, Attribute{Key: key, Value: raw})
		case field.Default != nil:
			values.set(field.Name, field.Default)
		case field.Required:
			return nil, NewRequiredFieldMissingError(desc.Name, field.Name)
		}
	}

	el := &Element{
		name:  desc.Name,
		kind:  desc.Kind,
		attrs: consumed,
	}

	switch desc.Kind {
	case KindDynamic:
		fn, err := desc.Dynamic(values)
		if err != nil {
			return nil, NewBuildError(desc.Name, err)
		}
		if fn == nil {
			return nil, NewBuildError(desc.Name, errors.New(ReasonNilRenderFunc))
		}
		el.render = fn
	default:
		text, err := desc.Static(values)
		if err != nil {
			return nil, NewBuildError(desc.Name, err)
		}
		el.text = text
	}

	return el, nil
}

// lookupField returns the first attribute matching the field's primary key or,
// failing that, its abbreviations in order.
func lookupField(attrs Attributes, field Field) (key, raw string, found bool) {
	for _, k := range field.keys() {
		if v, ok := attrs.Get(k); ok {
			return k, v, true
		}
	}
	return "", "", false
}
