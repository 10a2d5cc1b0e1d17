// Package stamp provides a template-string engine with pluggable elements.
//
// Templates contain delimiter-bounded placeholders with an optional query
// string of attributes:
//
//	Order {counter?name=orders&value=1000} created {datetime?format=date} id {guid?f=N}
//
// # Basic Usage
//
// Create an engine, parse once and render many times:
//
//	engine := stamp.MustNew()
//	format, err := engine.Parse("Hello {@user.name}, ticket #{counter?n=tickets&v=1}")
//	out, err := format.Render(ctx, map[string]any{
//	    "user": map[string]any{"name": "Alice"},
//	})
//	// out: "Hello Alice, ticket #1"
//
// # Template Syntax
//
// A placeholder is start + name + separator + attributes + end. The defaults
// are "{", "}" and "?"; WithBoundaries changes them:
//
//	engine := stamp.MustNew(stamp.WithBoundaries("${", "}", "|"))
//	format := engine.MustParse("${guid|format=B}")
//
// Attributes are URL-query encoded. A doubled boundary token is an escape for
// the single token: "{{x}}" renders as "{x}". Unknown names and unterminated
// placeholders stay in the output as written; Format.Unknown lists the
// unknown names with similar registered ones. One level of nested boundary
// pairs is allowed inside attribute values:
//
//	{value?format={0:00.00}}
//
// "{@path}" is shorthand for "{parameter?name=path}" and "{@path=fallback}"
// also sets the value attribute.
//
// # Built-in Elements
//
// guid, datetime, counter, parameter, value, json, env, text, newline,
// machine and process. See BuiltinElements.
//
// # Custom Elements
//
// Declare fields and a builder, then register:
//
//	engine.MustRegister(stamp.ElementDescriptor{
//	    Name: "greet",
//	    Kind: stamp.KindStatic,
//	    Fields: []stamp.Field{
//	        {Name: "who", Abbreviations: []string{"w"}, Required: true},
//	    },
//	    Static: func(v *stamp.Values) (string, error) {
//	        return "Hello, " + v.String("who") + "!", nil
//	    },
//	})
//	out, _ := engine.Execute(ctx, "{greet?w=World}", nil)
//
// # Counters
//
// Counter elements share state through the engine's CounterStore. The default
// store is in memory; redis, postgres and sqlite drivers are available through
// OpenCounterStore or a YAML Config.
package stamp
