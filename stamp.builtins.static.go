package stamp

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

func envElement() ElementDescriptor {
	return ElementDescriptor{
		Name:        ElementEnv,
		Kind:        KindStatic,
		Description: DescEnv,
		Fields: []Field{
			{Name: AttrName, Required: true, Description: DescFieldEnvName},
			{Name: AttrDefault, Abbreviations: []string{AbbrDefault}, Default: "", Description: DescFieldDefault},
		},
		Static: func(v *Values) (string, error) {
			if val, ok := os.LookupEnv(v.String(AttrName)); ok {
				return val, nil
			}
			return v.String(AttrDefault), nil
		},
	}
}

func textElement() ElementDescriptor {
	return ElementDescriptor{
		Name:        ElementText,
		Kind:        KindStatic,
		Description: DescText,
		Fields: []Field{
			{Name: AttrValue, Abbreviations: []string{AbbrValue}, Required: true, Description: DescFieldText},
			caseField(),
		},
		Static: func(v *Values) (string, error) {
			return v.Casing(AttrCase).Apply(v.String(AttrValue)), nil
		},
	}
}

func newlineElement() ElementDescriptor {
	return ElementDescriptor{
		Name:        ElementNewline,
		Kind:        KindStatic,
		Description: DescNewline,
		Fields: []Field{
			{Name: AttrCount, Abbreviations: []string{AbbrCount}, Convert: ConvertInt, Default: 1, Description: DescFieldNewlineCount},
		},
		Static: func(v *Values) (string, error) {
			n := v.Int(AttrCount)
			if n > MaxNewlineCount {
				return "", fmt.Errorf(ErrFmtNewlineCount, n, MaxNewlineCount)
			}
			return strings.Repeat(Newline, max(n, 0)), nil
		},
	}
}

func machineElement() ElementDescriptor {
	return ElementDescriptor{
		Name:        ElementMachine,
		Kind:        KindStatic,
		Description: DescMachine,
		Fields:      []Field{caseField()},
		Static: func(v *Values) (string, error) {
			host, err := os.Hostname()
			if err != nil {
				return "", err
			}
			return v.Casing(AttrCase).Apply(host), nil
		},
	}
}

func processElement() ElementDescriptor {
	return ElementDescriptor{
		Name:        ElementProcess,
		Kind:        KindStatic,
		Description: DescProcess,
		Static: func(_ *Values) (string, error) {
			return strconv.Itoa(os.Getpid()), nil
		},
	}
}
