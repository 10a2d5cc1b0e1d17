package stamp

import (
	"context"
)

func formatFields() []Field {
	return []Field{
		{
			Name:          AttrFormat,
			Abbreviations: []string{AbbrFormat},
			Description:   DescFieldValueFormat,
		},
		caseField(),
	}
}

func parameterElement() ElementDescriptor {
	fields := []Field{
		{
			Name:        AttrName,
			Required:    true,
			Description: DescFieldParamName,
		},
		{
			Name:          AttrValue,
			Abbreviations: []string{AbbrValue},
			Description:   DescFieldParamValue,
		},
	}
	return ElementDescriptor{
		Name:        ElementParameter,
		Kind:        KindDynamic,
		Description: DescParameter,
		Fields:      append(fields, formatFields()...),
		Dynamic: func(v *Values) (RenderFunc, error) {
			path := v.String(AttrName)
			fallback, hasFallback := v.Get(AttrValue)
			format := v.String(AttrFormat)
			casing := v.Casing(AttrCase)
			return func(_ context.Context, data any) (string, error) {
				val, ok := LookupPath(data, path)
				if !ok {
					if !hasFallback {
						return "", nil
					}
					val = fallback
				}
				return casing.Apply(FormatValue(val, format)), nil
			}, nil
		},
	}
}

func valueElement() ElementDescriptor {
	return ElementDescriptor{
		Name:        ElementValue,
		Kind:        KindDynamic,
		Description: DescValue,
		Fields:      formatFields(),
		Dynamic: func(v *Values) (RenderFunc, error) {
			format := v.String(AttrFormat)
			casing := v.Casing(AttrCase)
			return func(_ context.Context, data any) (string, error) {
				return casing.Apply(FormatValue(data, format)), nil
			}, nil
		},
	}
}

func jsonElement() ElementDescriptor {
	return ElementDescriptor{
		Name:        ElementJSON,
		Kind:        KindDynamic,
		Description: DescJSON,
		Fields: []Field{
			{
				Name:          AttrPath,
				Abbreviations: []string{AbbrPath},
				Required:      true,
				Description:   DescFieldJSONPath,
			},
			{
				Name:          AttrDefault,
				Abbreviations: []string{AbbrDefault},
				Default:       "",
				Description:   DescFieldDefault,
			},
		},
		Dynamic: func(v *Values) (RenderFunc, error) {
			path := v.String(AttrPath)
			fallback := v.String(AttrDefault)
			return func(_ context.Context, data any) (string, error) {
				val, ok := LookupPath(data, path)
				if !ok {
					return fallback, nil
				}
				return stringify(val), nil
			}, nil
		},
	}
}
